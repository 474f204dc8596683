package yummly

import "github.com/yummly/client-go/internal/api"

// MetadataKind names one of the fixed metadata dictionaries the backend
// serves.
type MetadataKind string

// Recognized metadata kinds.
const (
	MetadataIngredient MetadataKind = "ingredient"
	MetadataHoliday    MetadataKind = "holiday"
	MetadataAllergy    MetadataKind = "allergy"
	MetadataDiet       MetadataKind = "diet"
	MetadataCuisine    MetadataKind = "cuisine"
	MetadataCourse     MetadataKind = "course"
	MetadataTechnique  MetadataKind = "technique"
	MetadataSource     MetadataKind = "source"
	MetadataBrand      MetadataKind = "brand"
)

// metadataKinds is the fixed set of dictionaries the backend serves.
var metadataKinds = []MetadataKind{
	MetadataIngredient,
	MetadataHoliday,
	MetadataAllergy,
	MetadataDiet,
	MetadataCuisine,
	MetadataCourse,
	MetadataTechnique,
	MetadataSource,
	MetadataBrand,
}

// MetadataKinds returns the recognized metadata kinds.
func MetadataKinds() []MetadataKind {
	kinds := make([]MetadataKind, len(metadataKinds))
	copy(kinds, metadataKinds)
	return kinds
}

// Recognized reports whether k is in the recognized metadata set.
func (k MetadataKind) Recognized() bool {
	for _, known := range metadataKinds {
		if k == known {
			return true
		}
	}
	return false
}

// MetadataEntry is a single entry in a metadata dictionary. Which fields are
// populated varies by kind: ingredients carry Term, most other kinds carry
// ID and Description.
type MetadataEntry struct {
	ID                 string
	Type               string
	Description        string
	Term               string
	SearchValue        string
	LocalesAvailableIn []string
}

func newMetadataEntry(resp api.MetadataEntryResponse) MetadataEntry {
	return MetadataEntry{
		ID:                 resp.ID,
		Type:               resp.Type,
		Description:        resp.Description,
		Term:               resp.Term,
		SearchValue:        resp.SearchValue,
		LocalesAvailableIn: resp.LocalesAvailableIn,
	}
}
