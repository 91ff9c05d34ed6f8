package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PropertyType is the discriminator tag of a listing reference.
// A booking stores (PropertyType, PropertyID) instead of a single
// foreign key because the two listing kinds live in separate tables.
type PropertyType string

const (
	PropertyTypePG     PropertyType = "PG"
	PropertyTypeHostel PropertyType = "Hostel"
)

func (t PropertyType) Valid() bool {
	return t == PropertyTypePG || t == PropertyTypeHostel
}

// Table returns the table holding listings of this kind, "" for unknown tags.
func (t PropertyType) Table() string {
	switch t {
	case PropertyTypePG:
		return "pgs"
	case PropertyTypeHostel:
		return "hostels"
	}
	return ""
}

// Listing is the shared shape of both property tables. PG and Hostel
// embed it so the two tables stay structurally identical.
type Listing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	OwnerID   uint                        `gorm:"index;column:owner_id" json:"owner_id"`
	Name      string                      `gorm:"size:255" json:"name"`
	Location  string                      `gorm:"size:255" json:"location"`
	Contact   string                      `gorm:"size:64" json:"contact"`
	Features  datatypes.JSONSlice[string] `json:"features"`
	Price     float64                     `json:"price"`
	Photos    datatypes.JSONSlice[string] `json:"photos"`
	Amenities datatypes.JSONSlice[string] `json:"amenities"`

	Owner *PublicUser `gorm:"-" json:"owner,omitempty"`
}

// HasAllAmenities reports whether the listing's amenity set is a
// superset of want. Empty want always matches.
func (l *Listing) HasAllAmenities(want []string) bool {
	if len(want) == 0 {
		return true
	}
	have := make(map[string]bool, len(l.Amenities))
	for _, a := range l.Amenities {
		have[a] = true
	}
	for _, w := range want {
		if !have[w] {
			return false
		}
	}
	return true
}

type PG struct {
	Listing
}

func (PG) TableName() string { return "pgs" }

type Hostel struct {
	Listing
}

func (Hostel) TableName() string { return "hostels" }
