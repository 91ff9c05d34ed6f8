package services

import (
	"errors"
	"fmt"

	"pgstay-backend/models"

	"gorm.io/gorm"
)

var (
	ErrUnknownPropertyType = errors.New("unknown property type")
	ErrPropertyNotFound    = errors.New("property not found")
)

// ResolveProperty dereferences a booking's (propertyType, propertyId)
// pair: select the table by tag, then fetch by id. Two steps because PGs
// and hostels live in separate tables rather than one polymorphic table.
func ResolveProperty(db *gorm.DB, t models.PropertyType, id uint) (*models.Listing, error) {
	if !t.Valid() {
		return nil, ErrUnknownPropertyType
	}

	var listing models.Listing
	if err := db.Table(t.Table()).Where("id = ?", id).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("resolve %s %d: %w", t, id, err)
	}
	return &listing, nil
}
