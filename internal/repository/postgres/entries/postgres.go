package entries

import (
	"context"
	"errors"

	entriesdomain "pet-tracker-go/internal/domain/entries"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(entriesdomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) List(ctx context.Context, trackerID uint) ([]entriesdomain.Entry, error) {
	query := r.db.WithContext(ctx).
		Preload("Data").
		Preload("Images").
		Order("created_at desc, id desc")
	if trackerID != 0 {
		query = query.Where("tracker_id = ?", trackerID)
	}

	var entries []entriesdomain.Entry
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id uint) (*entriesdomain.Entry, error) {
	var entry entriesdomain.Entry
	if err := r.db.WithContext(ctx).
		Preload("Data").
		Preload("Images").
		First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entriesdomain.ErrEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PostgresRepository) Create(ctx context.Context, entry *entriesdomain.Entry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *PostgresRepository) ReplaceData(ctx context.Context, id uint, data []entriesdomain.EntryData) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("entry_id = ?", id).
			Delete(&entriesdomain.EntryData{}).Error; err != nil {
			return err
		}
		if len(data) == 0 {
			return nil
		}
		for i := range data {
			data[i].ID = 0
			data[i].EntryID = id
		}
		return tx.Create(&data).Error
	})
}

func (r *PostgresRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var entry entriesdomain.Entry
		if err := tx.First(&entry, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entriesdomain.ErrEntryNotFound
			}
			return err
		}

		if err := tx.Where("entry_id = ?", id).
			Delete(&entriesdomain.EntryData{}).Error; err != nil {
			return err
		}
		if err := tx.Where("entry_id = ?", id).
			Delete(&entriesdomain.EntryImage{}).Error; err != nil {
			return err
		}

		return tx.Delete(&entriesdomain.Entry{}, id).Error
	})
}
