package pets

import "context"

type Repository interface {
	// List returns all pets, most recently modified first.
	List(ctx context.Context) ([]Pet, error)
	GetByID(ctx context.Context, petID string) (*Pet, error)
	Create(ctx context.Context, pet *Pet) error
	// Update persists every mutable column of the pet and refreshes its
	// last-modified timestamp.
	Update(ctx context.Context, pet *Pet) error
	// Delete removes the pet together with its trackers, options,
	// entries and entry data/images.
	Delete(ctx context.Context, petID string) error
}
