// Package fieldtypes enumerates the field types a tracker option may
// declare. Field values are always stored as text; the type only tells
// clients how to render and edit a value.
package fieldtypes

type FieldType string

const (
	Text    FieldType = "Text"
	Date    FieldType = "Date"
	Decimal FieldType = "Decimal"
	Integer FieldType = "Integer"
	Image   FieldType = "Image"
)

var all = []FieldType{Text, Date, Decimal, Integer, Image}

func All() []FieldType {
	result := make([]FieldType, len(all))
	copy(result, all)
	return result
}

func IsValid(value string) bool {
	for _, t := range all {
		if string(t) == value {
			return true
		}
	}
	return false
}

func (t FieldType) String() string {
	return string(t)
}
