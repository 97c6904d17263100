package trackers

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	// List returns trackers with their options, newest first. An empty
	// petID returns every tracker.
	List(ctx context.Context, petID string) ([]Tracker, error)
	GetByID(ctx context.Context, id uint) (*Tracker, error)
	// Create persists the tracker and its nested options in one call.
	Create(ctx context.Context, tracker *Tracker) error
	UpdateName(ctx context.Context, id uint, name string) error
	// ReplaceOptions deletes every option row of the tracker and inserts
	// the given set. Old option ids do not survive.
	ReplaceOptions(ctx context.Context, id uint, options []FormOption) error
	// Delete removes the tracker together with its options, entries and
	// entry data/images.
	Delete(ctx context.Context, id uint) error
}
