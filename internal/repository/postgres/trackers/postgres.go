package trackers

import (
	"context"
	"errors"

	entriesdomain "pet-tracker-go/internal/domain/entries"
	trackersdomain "pet-tracker-go/internal/domain/trackers"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(trackersdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) List(ctx context.Context, petID string) ([]trackersdomain.Tracker, error) {
	query := r.db.WithContext(ctx).
		Preload("Options").
		Order("id desc")
	if petID != "" {
		query = query.Where("pet_id = ?", petID)
	}

	var trackers []trackersdomain.Tracker
	if err := query.Find(&trackers).Error; err != nil {
		return nil, err
	}
	return trackers, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*trackersdomain.Tracker, error) {
	var tracker trackersdomain.Tracker
	if err := r.db.WithContext(ctx).
		Preload("Options").
		First(&tracker, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, trackersdomain.ErrTrackerNotFound
		}
		return nil, err
	}
	return &tracker, nil
}

func (r *PostgresRepository) Create(ctx context.Context, tracker *trackersdomain.Tracker) error {
	return r.db.WithContext(ctx).Create(tracker).Error
}

func (r *PostgresRepository) UpdateName(ctx context.Context, id uint, name string) error {
	result := r.db.WithContext(ctx).
		Model(&trackersdomain.Tracker{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return trackersdomain.ErrTrackerNotFound
	}
	return nil
}

func (r *PostgresRepository) ReplaceOptions(ctx context.Context, id uint, options []trackersdomain.FormOption) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tracker_id = ?", id).
			Delete(&trackersdomain.FormOption{}).Error; err != nil {
			return err
		}
		if len(options) == 0 {
			return nil
		}
		for i := range options {
			options[i].ID = 0
			options[i].TrackerID = id
		}
		return tx.Create(&options).Error
	})
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var tracker trackersdomain.Tracker
		if err := tx.First(&tracker, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return trackersdomain.ErrTrackerNotFound
			}
			return err
		}

		var entryIDs []uint
		if err := tx.Model(&entriesdomain.Entry{}).
			Where("tracker_id = ?", id).
			Pluck("id", &entryIDs).Error; err != nil {
			return err
		}
		if len(entryIDs) > 0 {
			if err := tx.Where("entry_id IN ?", entryIDs).
				Delete(&entriesdomain.EntryData{}).Error; err != nil {
				return err
			}
			if err := tx.Where("entry_id IN ?", entryIDs).
				Delete(&entriesdomain.EntryImage{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("tracker_id = ?", id).
			Delete(&entriesdomain.Entry{}).Error; err != nil {
			return err
		}
		if err := tx.Where("tracker_id = ?", id).
			Delete(&trackersdomain.FormOption{}).Error; err != nil {
			return err
		}

		return tx.Delete(&trackersdomain.Tracker{}, id).Error
	})
}
