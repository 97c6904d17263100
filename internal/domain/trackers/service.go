package trackers

import (
	"context"
	"fmt"
	"strings"

	"pet-tracker-go/internal/domain/fieldtypes"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListTrackers(ctx context.Context, petID string) ([]Tracker, error) {
	return s.repo.List(ctx, strings.TrimSpace(petID))
}

func (s *Service) GetTracker(ctx context.Context, id uint) (*Tracker, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) CreateTracker(ctx context.Context, input CreateTrackerInput) (*Tracker, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: tracker name is required", ErrInvalidInput)
	}
	petID := strings.TrimSpace(input.PetID)
	if petID == "" {
		return nil, fmt.Errorf("%w: pet is required", ErrInvalidInput)
	}

	options, err := buildOptions(input.Options)
	if err != nil {
		return nil, err
	}

	tracker := Tracker{
		PetID:   petID,
		Name:    name,
		Options: options,
	}

	// The pet id is not re-checked here; an unknown pet surfaces as a
	// foreign key violation from the store.
	if err := s.repo.Create(ctx, &tracker); err != nil {
		return nil, err
	}

	return &tracker, nil
}

func (s *Service) UpdateTracker(ctx context.Context, input UpdateTrackerInput) (*Tracker, error) {
	// An empty patch is a no-op, not an error.
	if input.Name == nil && input.Options == nil {
		return s.repo.GetByID(ctx, input.ID)
	}

	var name string
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: tracker name is required", ErrInvalidInput)
		}
	}

	var options []FormOption
	if input.Options != nil {
		var err error
		options, err = buildOptions(input.Options)
		if err != nil {
			return nil, err
		}
	}

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetByID(ctx, input.ID); err != nil {
			return err
		}
		if input.Name != nil {
			if err := tx.UpdateName(ctx, input.ID, name); err != nil {
				return err
			}
		}
		if input.Options != nil {
			if err := tx.ReplaceOptions(ctx, input.ID, options); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, input.ID)
}

func (s *Service) DeleteTracker(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func buildOptions(inputs []FormOptionInput) ([]FormOption, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one field is required", ErrInvalidInput)
	}

	options := make([]FormOption, 0, len(inputs))
	for _, opt := range inputs {
		fieldName := strings.TrimSpace(opt.FieldName)
		if fieldName == "" {
			return nil, fmt.Errorf("%w: field name is required", ErrInvalidInput)
		}
		if !fieldtypes.IsValid(opt.FieldType) {
			return nil, fmt.Errorf("%w: unknown field type %q", ErrInvalidInput, opt.FieldType)
		}
		options = append(options, FormOption{
			FieldName: fieldName,
			FieldType: fieldtypes.FieldType(opt.FieldType),
		})
	}

	return options, nil
}
