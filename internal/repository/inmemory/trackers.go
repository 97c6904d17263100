package inmemory

import (
	"context"
	"sort"

	trackersdomain "pet-tracker-go/internal/domain/trackers"
)

type trackerRepo struct {
	store *Store
}

func (r *trackerRepo) Transaction(_ context.Context, fn func(trackersdomain.Repository) error) error {
	return fn(r)
}

func (r *trackerRepo) List(_ context.Context, petID string) ([]trackersdomain.Tracker, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]trackersdomain.Tracker, 0, len(r.store.trackers))
	for _, tracker := range r.store.trackers {
		if petID != "" && tracker.PetID != petID {
			continue
		}
		result = append(result, copyTracker(tracker))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *trackerRepo) GetByID(_ context.Context, id uint) (*trackersdomain.Tracker, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tracker, ok := r.store.trackers[id]
	if !ok {
		return nil, trackersdomain.ErrTrackerNotFound
	}
	result := copyTracker(tracker)
	return &result, nil
}

func (r *trackerRepo) Create(_ context.Context, tracker *trackersdomain.Tracker) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.pets[tracker.PetID]; !ok {
		// Mirrors the foreign key violation a real store would raise.
		return errUnknownPet
	}

	tracker.ID = r.store.nextTrackerID
	r.store.nextTrackerID++
	for i := range tracker.Options {
		tracker.Options[i].ID = r.store.nextOptionID
		tracker.Options[i].TrackerID = tracker.ID
		r.store.nextOptionID++
	}

	r.store.trackers[tracker.ID] = copyTracker(*tracker)
	return nil
}

func (r *trackerRepo) UpdateName(_ context.Context, id uint, name string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tracker, ok := r.store.trackers[id]
	if !ok {
		return trackersdomain.ErrTrackerNotFound
	}
	tracker.Name = name
	r.store.trackers[id] = tracker
	return nil
}

func (r *trackerRepo) ReplaceOptions(_ context.Context, id uint, options []trackersdomain.FormOption) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	tracker, ok := r.store.trackers[id]
	if !ok {
		return trackersdomain.ErrTrackerNotFound
	}

	replaced := make([]trackersdomain.FormOption, 0, len(options))
	for _, opt := range options {
		opt.ID = r.store.nextOptionID
		opt.TrackerID = id
		r.store.nextOptionID++
		replaced = append(replaced, opt)
	}
	tracker.Options = replaced
	r.store.trackers[id] = tracker
	return nil
}

func (r *trackerRepo) Delete(_ context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.trackers[id]; !ok {
		return trackersdomain.ErrTrackerNotFound
	}

	r.store.deleteEntriesByTracker(id)
	delete(r.store.trackers, id)
	return nil
}
