package inmemory

import (
	"context"
	"sort"
	"time"

	petsdomain "pet-tracker-go/internal/domain/pets"
)

type petRepo struct {
	store *Store
}

func (r *petRepo) List(_ context.Context) ([]petsdomain.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]petsdomain.Pet, 0, len(r.store.pets))
	for _, pet := range r.store.pets {
		result = append(result, pet)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LastModified.After(result[j].LastModified)
	})
	return result, nil
}

func (r *petRepo) GetByID(_ context.Context, petID string) (*petsdomain.Pet, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	pet, ok := r.store.pets[petID]
	if !ok {
		return nil, petsdomain.ErrPetNotFound
	}
	return &pet, nil
}

func (r *petRepo) Create(_ context.Context, pet *petsdomain.Pet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if pet.LastModified.IsZero() {
		pet.LastModified = time.Now().UTC()
	}
	r.store.pets[pet.PetID] = *pet
	return nil
}

func (r *petRepo) Update(_ context.Context, pet *petsdomain.Pet) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.pets[pet.PetID]; !ok {
		return petsdomain.ErrPetNotFound
	}
	pet.LastModified = time.Now().UTC()
	r.store.pets[pet.PetID] = *pet
	return nil
}

func (r *petRepo) Delete(_ context.Context, petID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.pets[petID]; !ok {
		return petsdomain.ErrPetNotFound
	}

	r.store.deleteEntriesByPet(petID)
	r.store.deleteTrackersByPet(petID)
	delete(r.store.pets, petID)
	return nil
}
