package entries

import "time"

// Entry is one timestamped record logged against a tracker. The pet id
// is carried redundantly so pet-level queries and cascades do not need
// a join through trackers.
type Entry struct {
	ID        uint         `gorm:"primaryKey"`
	TrackerID uint         `gorm:"column:tracker_id;index;not null"`
	PetID     string       `gorm:"column:pet_id;index;not null"`
	CreatedAt time.Time    `gorm:"column:created_at;autoCreateTime"`
	Data      []EntryData  `gorm:"foreignKey:EntryID"`
	Images    []EntryImage `gorm:"foreignKey:EntryID"`
}

func (Entry) TableName() string { return "entries" }

// EntryData copies the field name and type from the tracker's options
// at write time. Renaming or retyping an option later never rewrites
// what an old entry recorded. Values are stored as the literal text the
// client submitted.
type EntryData struct {
	ID         uint   `gorm:"primaryKey"`
	EntryID    uint   `gorm:"column:entry_id;index;not null"`
	FieldName  string `gorm:"column:field_name;not null"`
	FieldType  string `gorm:"column:field_type;not null"`
	FieldValue string `gorm:"column:field_value;not null"`
}

func (EntryData) TableName() string { return "entry_data" }

type EntryImage struct {
	ID      uint   `gorm:"primaryKey"`
	EntryID uint   `gorm:"column:entry_id;index;not null"`
	URL     string `gorm:"column:url;not null"`
}

func (EntryImage) TableName() string { return "entry_images" }

type EntryDataInput struct {
	FieldName  string
	FieldType  string
	FieldValue string
}

type CreateEntryInput struct {
	TrackerID uint
	PetID     string
	Data      []EntryDataInput
}

// UpdateEntryInput: a nil Data pointer means the data set is untouched;
// a non-nil pointer replaces it wholesale, even with an empty set.
type UpdateEntryInput struct {
	ID   uint
	Data *[]EntryDataInput
}
