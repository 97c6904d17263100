package trackers

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrackerRepo struct {
	trackers     map[uint]*Tracker
	nextID       uint
	nextOptionID uint
}

func newFakeTrackerRepo() *fakeTrackerRepo {
	return &fakeTrackerRepo{
		trackers:     make(map[uint]*Tracker),
		nextID:       1,
		nextOptionID: 1,
	}
}

func (r *fakeTrackerRepo) Transaction(_ context.Context, fn func(Repository) error) error {
	return fn(r)
}

func (r *fakeTrackerRepo) List(_ context.Context, petID string) ([]Tracker, error) {
	result := make([]Tracker, 0, len(r.trackers))
	for _, tracker := range r.trackers {
		if petID != "" && tracker.PetID != petID {
			continue
		}
		result = append(result, *tracker)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *fakeTrackerRepo) GetByID(_ context.Context, id uint) (*Tracker, error) {
	tracker, ok := r.trackers[id]
	if !ok {
		return nil, ErrTrackerNotFound
	}
	copied := *tracker
	copied.Options = append([]FormOption(nil), tracker.Options...)
	return &copied, nil
}

func (r *fakeTrackerRepo) Create(_ context.Context, tracker *Tracker) error {
	tracker.ID = r.nextID
	r.nextID++
	for i := range tracker.Options {
		tracker.Options[i].ID = r.nextOptionID
		tracker.Options[i].TrackerID = tracker.ID
		r.nextOptionID++
	}
	copied := *tracker
	copied.Options = append([]FormOption(nil), tracker.Options...)
	r.trackers[tracker.ID] = &copied
	return nil
}

func (r *fakeTrackerRepo) UpdateName(_ context.Context, id uint, name string) error {
	tracker, ok := r.trackers[id]
	if !ok {
		return ErrTrackerNotFound
	}
	tracker.Name = name
	return nil
}

func (r *fakeTrackerRepo) ReplaceOptions(_ context.Context, id uint, options []FormOption) error {
	tracker, ok := r.trackers[id]
	if !ok {
		return ErrTrackerNotFound
	}
	replaced := make([]FormOption, 0, len(options))
	for _, opt := range options {
		opt.ID = r.nextOptionID
		opt.TrackerID = id
		r.nextOptionID++
		replaced = append(replaced, opt)
	}
	tracker.Options = replaced
	return nil
}

func (r *fakeTrackerRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.trackers[id]; !ok {
		return ErrTrackerNotFound
	}
	delete(r.trackers, id)
	return nil
}

func validCreateInput() CreateTrackerInput {
	return CreateTrackerInput{
		Name:  "Medication Log",
		PetID: "pet-1",
		Options: []FormOptionInput{
			{FieldName: "Medication", FieldType: "Text"},
			{FieldName: "Dosage", FieldType: "Decimal"},
			{FieldName: "Date Given", FieldType: "Date"},
		},
	}
}

func TestCreateTracker(t *testing.T) {
	service := NewService(newFakeTrackerRepo())

	tracker, err := service.CreateTracker(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.NotZero(t, tracker.ID)
	assert.Len(t, tracker.Options, 3)
	for _, opt := range tracker.Options {
		assert.Equal(t, tracker.ID, opt.TrackerID)
		assert.NotZero(t, opt.ID)
	}
}

func TestCreateTrackerValidation(t *testing.T) {
	service := NewService(newFakeTrackerRepo())

	cases := []struct {
		name   string
		mutate func(*CreateTrackerInput)
	}{
		{"empty name", func(in *CreateTrackerInput) { in.Name = " " }},
		{"empty pet id", func(in *CreateTrackerInput) { in.PetID = "" }},
		{"no options", func(in *CreateTrackerInput) { in.Options = nil }},
		{"empty field name", func(in *CreateTrackerInput) { in.Options[0].FieldName = "" }},
		{"unknown field type", func(in *CreateTrackerInput) { in.Options[0].FieldType = "Boolean" }},
		{"lowercase field type", func(in *CreateTrackerInput) { in.Options[0].FieldType = "text" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validCreateInput()
			tc.mutate(&input)
			_, err := service.CreateTracker(context.Background(), input)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdateTrackerReplacesOptions(t *testing.T) {
	service := NewService(newFakeTrackerRepo())

	tracker, err := service.CreateTracker(context.Background(), validCreateInput())
	require.NoError(t, err)

	oldIDs := make(map[uint]bool)
	for _, opt := range tracker.Options {
		oldIDs[opt.ID] = true
	}

	updated, err := service.UpdateTracker(context.Background(), UpdateTrackerInput{
		ID: tracker.ID,
		Options: []FormOptionInput{
			{FieldName: "Medication", FieldType: "Text"},
			{FieldName: "Dosage", FieldType: "Decimal"},
			{FieldName: "Date Given", FieldType: "Date"},
			{FieldName: "Notes", FieldType: "Text"},
		},
	})
	require.NoError(t, err)

	assert.Len(t, updated.Options, 4)
	for _, opt := range updated.Options {
		assert.False(t, oldIDs[opt.ID], "old option identity %d survived the replacement", opt.ID)
	}
}

func TestUpdateTrackerNameOnly(t *testing.T) {
	service := NewService(newFakeTrackerRepo())

	tracker, err := service.CreateTracker(context.Background(), validCreateInput())
	require.NoError(t, err)

	name := "Updated Medication Log"
	updated, err := service.UpdateTracker(context.Background(), UpdateTrackerInput{
		ID:   tracker.ID,
		Name: &name,
	})
	require.NoError(t, err)

	assert.Equal(t, name, updated.Name)
	assert.Len(t, updated.Options, 3, "options must be untouched when not supplied")
	assert.Equal(t, tracker.Options[0].ID, updated.Options[0].ID)
}

func TestUpdateTrackerNotFound(t *testing.T) {
	service := NewService(newFakeTrackerRepo())

	name := "Whatever"
	_, err := service.UpdateTracker(context.Background(), UpdateTrackerInput{ID: 42, Name: &name})
	assert.ErrorIs(t, err, ErrTrackerNotFound)
}

func TestListTrackersNewestFirst(t *testing.T) {
	service := NewService(newFakeTrackerRepo())

	first, err := service.CreateTracker(context.Background(), validCreateInput())
	require.NoError(t, err)
	second, err := service.CreateTracker(context.Background(), validCreateInput())
	require.NoError(t, err)

	trackers, err := service.ListTrackers(context.Background(), "pet-1")
	require.NoError(t, err)
	require.Len(t, trackers, 2)
	assert.Equal(t, second.ID, trackers[0].ID)
	assert.Equal(t, first.ID, trackers[1].ID)
}
