package trackers

import "pet-tracker-go/internal/domain/fieldtypes"

// Tracker is a user-defined schema: a named set of typed field
// definitions scoped to one pet.
type Tracker struct {
	ID      uint         `gorm:"primaryKey"`
	PetID   string       `gorm:"column:pet_id;index;not null"`
	Name    string       `gorm:"not null"`
	Options []FormOption `gorm:"foreignKey:TrackerID"`
}

func (Tracker) TableName() string { return "trackers" }

// FormOption is one field definition within a tracker. Option rows are
// replaced wholesale on tracker update, so their ids are not stable
// across edits.
type FormOption struct {
	ID        uint                `gorm:"primaryKey"`
	TrackerID uint                `gorm:"column:tracker_id;index;not null"`
	FieldName string              `gorm:"column:field_name;not null"`
	FieldType fieldtypes.FieldType `gorm:"column:field_type;not null"`
}

func (FormOption) TableName() string { return "form_options" }

type FormOptionInput struct {
	FieldName string
	FieldType string
}

type CreateTrackerInput struct {
	Name    string
	PetID   string
	Options []FormOptionInput
}

// UpdateTrackerInput: a nil Name leaves the name alone; a nil Options
// slice leaves the option set alone. A non-nil Options slice replaces
// the full set.
type UpdateTrackerInput struct {
	ID      uint
	Name    *string
	Options []FormOptionInput
}
