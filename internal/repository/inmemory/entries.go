package inmemory

import (
	"context"
	"errors"
	"sort"
	"time"

	entriesdomain "pet-tracker-go/internal/domain/entries"
)

var errUnknownPet = errors.New("unknown pet id")

type entryRepo struct {
	store *Store
}

func (r *entryRepo) Transaction(_ context.Context, fn func(entriesdomain.Repository) error) error {
	return fn(r)
}

func (r *entryRepo) List(_ context.Context, trackerID uint) ([]entriesdomain.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]entriesdomain.Entry, 0, len(r.store.entries))
	for _, entry := range r.store.entries {
		if trackerID != 0 && entry.TrackerID != trackerID {
			continue
		}
		result = append(result, copyEntry(entry))
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

func (r *entryRepo) GetByID(_ context.Context, id uint) (*entriesdomain.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	entry, ok := r.store.entries[id]
	if !ok {
		return nil, entriesdomain.ErrEntryNotFound
	}
	result := copyEntry(entry)
	return &result, nil
}

func (r *entryRepo) Create(_ context.Context, entry *entriesdomain.Entry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entry.ID = r.store.nextEntryID
	r.store.nextEntryID++
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	for i := range entry.Data {
		entry.Data[i].ID = r.store.nextDataID
		entry.Data[i].EntryID = entry.ID
		r.store.nextDataID++
	}
	for i := range entry.Images {
		entry.Images[i].ID = r.store.nextImageID
		entry.Images[i].EntryID = entry.ID
		r.store.nextImageID++
	}

	r.store.entries[entry.ID] = copyEntry(*entry)
	return nil
}

func (r *entryRepo) ReplaceData(_ context.Context, id uint, data []entriesdomain.EntryData) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	entry, ok := r.store.entries[id]
	if !ok {
		return entriesdomain.ErrEntryNotFound
	}

	replaced := make([]entriesdomain.EntryData, 0, len(data))
	for _, d := range data {
		d.ID = r.store.nextDataID
		d.EntryID = id
		r.store.nextDataID++
		replaced = append(replaced, d)
	}
	entry.Data = replaced
	r.store.entries[id] = entry
	return nil
}

func (r *entryRepo) Delete(_ context.Context, id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.entries[id]; !ok {
		return entriesdomain.ErrEntryNotFound
	}
	delete(r.store.entries, id)
	return nil
}
