package pets

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListPets(ctx context.Context) ([]Pet, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetPet(ctx context.Context, petID string) (*Pet, error) {
	return s.repo.GetByID(ctx, petID)
}

func (s *Service) CreatePet(ctx context.Context, input CreatePetInput) (*Pet, error) {
	name := strings.TrimSpace(input.Name)
	gender := strings.TrimSpace(input.Gender)
	species := strings.TrimSpace(input.Species)
	breed := strings.TrimSpace(input.Breed)

	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if gender == "" {
		return nil, fmt.Errorf("%w: gender is required", ErrInvalidInput)
	}
	if species == "" {
		return nil, fmt.Errorf("%w: species is required", ErrInvalidInput)
	}
	if breed == "" {
		return nil, fmt.Errorf("%w: breed is required", ErrInvalidInput)
	}
	if input.Age < 0 {
		return nil, fmt.Errorf("%w: age must be 0 or greater", ErrInvalidInput)
	}

	pet := Pet{
		PetID:   uuid.NewString(),
		Name:    name,
		Gender:  gender,
		Species: species,
		Breed:   breed,
		Age:     input.Age,
	}

	if err := s.repo.Create(ctx, &pet); err != nil {
		return nil, err
	}

	return &pet, nil
}

func (s *Service) UpdatePet(ctx context.Context, input UpdatePetInput) (*Pet, error) {
	pet, err := s.repo.GetByID(ctx, input.PetID)
	if err != nil {
		return nil, err
	}

	// An empty patch is a no-op, not an error.
	if input.Name == nil && input.Gender == nil && input.Species == nil &&
		input.Breed == nil && input.Age == nil {
		return pet, nil
	}

	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
		}
		pet.Name = trimmed
	}
	if input.Gender != nil {
		trimmed := strings.TrimSpace(*input.Gender)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: gender is required", ErrInvalidInput)
		}
		pet.Gender = trimmed
	}
	if input.Species != nil {
		trimmed := strings.TrimSpace(*input.Species)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: species is required", ErrInvalidInput)
		}
		pet.Species = trimmed
	}
	if input.Breed != nil {
		trimmed := strings.TrimSpace(*input.Breed)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: breed is required", ErrInvalidInput)
		}
		pet.Breed = trimmed
	}
	if input.Age != nil {
		if *input.Age < 0 {
			return nil, fmt.Errorf("%w: age must be 0 or greater", ErrInvalidInput)
		}
		pet.Age = *input.Age
	}

	if err := s.repo.Update(ctx, pet); err != nil {
		return nil, err
	}

	return pet, nil
}

func (s *Service) DeletePet(ctx context.Context, petID string) error {
	return s.repo.Delete(ctx, petID)
}
