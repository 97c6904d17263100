package pets

import (
	"context"
	"errors"
	"time"

	entriesdomain "pet-tracker-go/internal/domain/entries"
	petsdomain "pet-tracker-go/internal/domain/pets"
	trackersdomain "pet-tracker-go/internal/domain/trackers"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]petsdomain.Pet, error) {
	var pets []petsdomain.Pet
	if err := r.db.WithContext(ctx).
		Order("last_modified desc").
		Find(&pets).Error; err != nil {
		return nil, err
	}
	return pets, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, petID string) (*petsdomain.Pet, error) {
	var pet petsdomain.Pet
	if err := r.db.WithContext(ctx).
		Where("pet_id = ?", petID).
		First(&pet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, petsdomain.ErrPetNotFound
		}
		return nil, err
	}
	return &pet, nil
}

func (r *PostgresRepository) Create(ctx context.Context, pet *petsdomain.Pet) error {
	return r.db.WithContext(ctx).Create(pet).Error
}

func (r *PostgresRepository) Update(ctx context.Context, pet *petsdomain.Pet) error {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).
		Model(&petsdomain.Pet{}).
		Where("pet_id = ?", pet.PetID).
		Updates(map[string]interface{}{
			"name":          pet.Name,
			"gender":        pet.Gender,
			"species":       pet.Species,
			"breed":         pet.Breed,
			"age":           pet.Age,
			"last_modified": now,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return petsdomain.ErrPetNotFound
	}
	pet.LastModified = now
	return nil
}

// Delete walks the whole tree child-first inside one transaction, so
// the cascade guarantee does not depend on the store's referential
// actions.
func (r *PostgresRepository) Delete(ctx context.Context, petID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pet petsdomain.Pet
		if err := tx.Where("pet_id = ?", petID).First(&pet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return petsdomain.ErrPetNotFound
			}
			return err
		}

		var entryIDs []uint
		if err := tx.Model(&entriesdomain.Entry{}).
			Where("pet_id = ?", petID).
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
		if err := tx.Where("pet_id = ?", petID).
			Delete(&entriesdomain.Entry{}).Error; err != nil {
			return err
		}

		var trackerIDs []uint
		if err := tx.Model(&trackersdomain.Tracker{}).
			Where("pet_id = ?", petID).
			Pluck("id", &trackerIDs).Error; err != nil {
			return err
		}
		if len(trackerIDs) > 0 {
			if err := tx.Where("tracker_id IN ?", trackerIDs).
				Delete(&trackersdomain.FormOption{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("pet_id = ?", petID).
			Delete(&trackersdomain.Tracker{}).Error; err != nil {
			return err
		}

		return tx.Where("pet_id = ?", petID).
			Delete(&petsdomain.Pet{}).Error
	})
}
