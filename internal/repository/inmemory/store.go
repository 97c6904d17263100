// Package inmemory is a map-backed implementation of the repository
// interfaces with the same ordering, replacement and cascade semantics
// as the postgres repositories. It backs handler tests and local runs
// without a database. Transactions are plain function calls, not
// atomic; that is adequate for its purpose.
package inmemory

import (
	"sync"

	entriesdomain "pet-tracker-go/internal/domain/entries"
	petsdomain "pet-tracker-go/internal/domain/pets"
	trackersdomain "pet-tracker-go/internal/domain/trackers"
)

type Store struct {
	mu sync.RWMutex

	pets     map[string]petsdomain.Pet
	trackers map[uint]trackersdomain.Tracker
	entries  map[uint]entriesdomain.Entry

	nextTrackerID uint
	nextOptionID  uint
	nextEntryID   uint
	nextDataID    uint
	nextImageID   uint
}

func NewStore() *Store {
	return &Store{
		pets:          make(map[string]petsdomain.Pet),
		trackers:      make(map[uint]trackersdomain.Tracker),
		entries:       make(map[uint]entriesdomain.Entry),
		nextTrackerID: 1,
		nextOptionID:  1,
		nextEntryID:   1,
		nextDataID:    1,
		nextImageID:   1,
	}
}

func (s *Store) Pets() petsdomain.Repository {
	return &petRepo{store: s}
}

func (s *Store) Trackers() trackersdomain.Repository {
	return &trackerRepo{store: s}
}

func (s *Store) Entries() entriesdomain.Repository {
	return &entryRepo{store: s}
}

// deleteTrackersByPet and deleteEntriesByPet run under the caller's
// lock and implement the pet-level cascade.
func (s *Store) deleteEntriesByPet(petID string) {
	for id, entry := range s.entries {
		if entry.PetID == petID {
			delete(s.entries, id)
		}
	}
}

func (s *Store) deleteTrackersByPet(petID string) {
	for id, tracker := range s.trackers {
		if tracker.PetID == petID {
			delete(s.trackers, id)
		}
	}
}

func (s *Store) deleteEntriesByTracker(trackerID uint) {
	for id, entry := range s.entries {
		if entry.TrackerID == trackerID {
			delete(s.entries, id)
		}
	}
}

func copyTracker(t trackersdomain.Tracker) trackersdomain.Tracker {
	options := make([]trackersdomain.FormOption, len(t.Options))
	copy(options, t.Options)
	t.Options = options
	return t
}

func copyEntry(e entriesdomain.Entry) entriesdomain.Entry {
	data := make([]entriesdomain.EntryData, len(e.Data))
	copy(data, e.Data)
	images := make([]entriesdomain.EntryImage, len(e.Images))
	copy(images, e.Images)
	e.Data = data
	e.Images = images
	return e
}
