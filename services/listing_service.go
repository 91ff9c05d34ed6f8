package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"pgstay-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrNotListingOwner = errors.New("not authorized to manage this listing")
)

// ListingService handles one listing kind. The same code serves /pg and
// /hostels by instantiating it once per kind; the two tables are
// structurally identical.
type ListingService struct {
	DB   *gorm.DB
	Kind models.PropertyType
}

func NewListingService(db *gorm.DB, kind models.PropertyType) *ListingService {
	return &ListingService{DB: db, Kind: kind}
}

type ListingFilter struct {
	Location  string
	MaxPrice  *float64
	Amenities []string
}

type ListingInput struct {
	Name      string
	Location  string
	Contact   string
	Features  []string
	Price     float64
	Photos    []string
	Amenities []string
}

// ListingUpdate carries partial updates; nil means "leave unchanged".
type ListingUpdate struct {
	Name      *string
	Location  *string
	Contact   *string
	Price     *float64
	Features  []string
	Amenities []string
	Photos    []string
}

func (s *ListingService) table() *gorm.DB {
	return s.DB.Table(s.Kind.Table())
}

// List applies the public filters. Location is a case-insensitive
// substring match, price an inclusive maximum. The amenity superset check
// runs in Go: amenities are a JSON column and result sets are small.
func (s *ListingService) List(f ListingFilter) ([]models.Listing, error) {
	q := s.table()
	if loc := strings.TrimSpace(f.Location); loc != "" {
		q = q.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(loc)+"%")
	}
	if f.MaxPrice != nil {
		q = q.Where("price <= ?", *f.MaxPrice)
	}

	var listings []models.Listing
	if err := q.Order("created_at DESC").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", s.Kind.Table(), err)
	}

	filtered := make([]models.Listing, 0, len(listings))
	for i := range listings {
		if listings[i].HasAllAmenities(f.Amenities) {
			filtered = append(filtered, listings[i])
		}
	}

	s.attachOwners(filtered)
	return filtered, nil
}

func (s *ListingService) Get(id uint) (*models.Listing, error) {
	listing, err := s.fetch(id)
	if err != nil {
		return nil, err
	}
	one := []models.Listing{*listing}
	s.attachOwners(one)
	return &one[0], nil
}

func (s *ListingService) fetch(id uint) (*models.Listing, error) {
	var listing models.Listing
	if err := s.table().Where("id = ?", id).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to fetch %s %d: %w", s.Kind, id, err)
	}
	return &listing, nil
}

func (s *ListingService) Create(ownerID uint, in ListingInput) (*models.Listing, error) {
	listing := models.Listing{
		OwnerID:   ownerID,
		Name:      strings.TrimSpace(in.Name),
		Location:  strings.TrimSpace(in.Location),
		Contact:   strings.TrimSpace(in.Contact),
		Features:  datatypes.NewJSONSlice(emptyIfNil(in.Features)),
		Price:     in.Price,
		Photos:    datatypes.NewJSONSlice(emptyIfNil(in.Photos)),
		Amenities: datatypes.NewJSONSlice(emptyIfNil(in.Amenities)),
	}

	if err := s.table().Create(&listing).Error; err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", s.Kind, err)
	}

	one := []models.Listing{listing}
	s.attachOwners(one)
	return &one[0], nil
}

// Update mutates a listing after the ownership check. New photos replace
// the existing list wholesale, matching create semantics.
func (s *ListingService) Update(id, actorID uint, actorRole models.UserRole, upd ListingUpdate) (*models.Listing, error) {
	listing, err := s.fetch(id)
	if err != nil {
		return nil, err
	}
	if !CanManageListing(listing.OwnerID, actorID, actorRole) {
		return nil, ErrNotListingOwner
	}

	if upd.Name != nil {
		listing.Name = strings.TrimSpace(*upd.Name)
	}
	if upd.Location != nil {
		listing.Location = strings.TrimSpace(*upd.Location)
	}
	if upd.Contact != nil {
		listing.Contact = strings.TrimSpace(*upd.Contact)
	}
	if upd.Price != nil {
		listing.Price = *upd.Price
	}
	if upd.Features != nil {
		listing.Features = datatypes.NewJSONSlice(upd.Features)
	}
	if upd.Amenities != nil {
		listing.Amenities = datatypes.NewJSONSlice(upd.Amenities)
	}
	if upd.Photos != nil {
		listing.Photos = datatypes.NewJSONSlice(upd.Photos)
	}

	if err := s.table().Save(listing).Error; err != nil {
		return nil, fmt.Errorf("failed to update %s %d: %w", s.Kind, id, err)
	}

	one := []models.Listing{*listing}
	s.attachOwners(one)
	return &one[0], nil
}

func (s *ListingService) Delete(id, actorID uint, actorRole models.UserRole) error {
	listing, err := s.fetch(id)
	if err != nil {
		return err
	}
	if !CanManageListing(listing.OwnerID, actorID, actorRole) {
		return ErrNotListingOwner
	}

	if err := s.table().Where("id = ?", id).Delete(&models.Listing{}).Error; err != nil {
		return fmt.Errorf("failed to delete %s %d: %w", s.Kind, id, err)
	}
	return nil
}

// attachOwners loads the owning users and embeds their public view, the
// way the API has always populated `owner`. Best-effort: a lookup failure
// leaves owner empty rather than failing the listing response.
func (s *ListingService) attachOwners(listings []models.Listing) {
	if len(listings) == 0 {
		return
	}

	idSet := make(map[uint]bool, len(listings))
	ids := make([]uint, 0, len(listings))
	for i := range listings {
		if id := listings[i].OwnerID; id != 0 && !idSet[id] {
			idSet[id] = true
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return
	}

	var users []models.User
	if err := s.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
		log.Printf("warning: failed to load listing owners: %v", err)
		return
	}

	byID := make(map[uint]models.PublicUser, len(users))
	for i := range users {
		byID[users[i].ID] = users[i].Public()
	}
	for i := range listings {
		if pub, ok := byID[listings[i].OwnerID]; ok {
			owner := pub
			listings[i].Owner = &owner
		}
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
