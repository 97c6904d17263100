package entries

import "context"

type Repository interface {
	Transaction(ctx context.Context, fn func(Repository) error) error
	// List returns entries with their data and images, newest first.
	// trackerID zero returns every entry.
	List(ctx context.Context, trackerID uint) ([]Entry, error)
	GetByID(ctx context.Context, id uint) (*Entry, error)
	// Create persists the entry and its nested data rows in one call.
	Create(ctx context.Context, entry *Entry) error
	// ReplaceData deletes every data row of the entry and inserts the
	// given set. Old data row ids do not survive.
	ReplaceData(ctx context.Context, id uint, data []EntryData) error
	// Delete removes the entry together with its data and images.
	Delete(ctx context.Context, id uint) error
}
