package entries

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListEntries(ctx context.Context, trackerID uint) ([]Entry, error) {
	return s.repo.List(ctx, trackerID)
}

func (s *Service) GetEntry(ctx context.Context, id uint) (*Entry, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) CreateEntry(ctx context.Context, input CreateEntryInput) (*Entry, error) {
	if input.TrackerID == 0 {
		return nil, fmt.Errorf("%w: tracker is required", ErrInvalidInput)
	}
	petID := strings.TrimSpace(input.PetID)
	if petID == "" {
		return nil, fmt.Errorf("%w: pet is required", ErrInvalidInput)
	}

	entry := Entry{
		TrackerID: input.TrackerID,
		PetID:     petID,
		Data:      buildData(input.Data),
	}

	if err := s.repo.Create(ctx, &entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (s *Service) UpdateEntry(ctx context.Context, input UpdateEntryInput) (*Entry, error) {
	// An omitted data array means no data mutation at all.
	if input.Data == nil {
		return s.repo.GetByID(ctx, input.ID)
	}

	data := buildData(*input.Data)

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if _, err := tx.GetByID(ctx, input.ID); err != nil {
			return err
		}
		return tx.ReplaceData(ctx, input.ID, data)
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, input.ID)
}

func (s *Service) DeleteEntry(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// buildData keeps whatever field names, types and values the client
// submitted. The field type is deliberately not checked against the
// registry here: historical entries may carry types their tracker no
// longer declares, and they must keep round-tripping.
func buildData(inputs []EntryDataInput) []EntryData {
	data := make([]EntryData, 0, len(inputs))
	for _, d := range inputs {
		data = append(data, EntryData{
			FieldName:  d.FieldName,
			FieldType:  d.FieldType,
			FieldValue: d.FieldValue,
		})
	}
	return data
}
