package pets

import "time"

type Pet struct {
	PetID        string    `gorm:"primaryKey;column:pet_id"`
	Name         string    `gorm:"not null"`
	Gender       string    `gorm:"not null"`
	Species      string    `gorm:"not null"`
	Breed        string    `gorm:"not null"`
	Age          int       `gorm:"not null"`
	LastModified time.Time `gorm:"column:last_modified;autoUpdateTime"`
}

func (Pet) TableName() string { return "pets" }

type CreatePetInput struct {
	Name    string
	Gender  string
	Species string
	Breed   string
	Age     int
}

// UpdatePetInput carries partial-update semantics: nil fields are left
// untouched.
type UpdatePetInput struct {
	PetID   string
	Name    *string
	Gender  *string
	Species *string
	Breed   *string
	Age     *int
}
