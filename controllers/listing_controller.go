package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"pgstay-backend/middleware"
	"pgstay-backend/services"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
)

// ListingController serves one listing kind; the router wires one
// instance for /pg and one for /hostels.
type ListingController struct {
	Service *services.ListingService
	Photos  *services.PhotoService
}

func NewListingController(service *services.ListingService, photos *services.PhotoService) *ListingController {
	return &ListingController{Service: service, Photos: photos}
}

func splitCSV(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// GetListings handles GET with optional location, price (max) and
// amenities (all-match) filters.
func (lc *ListingController) GetListings(c *gin.Context) {
	filter := services.ListingFilter{Location: c.Query("location")}

	if raw := strings.TrimSpace(c.Query("price")); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid price filter")
			return
		}
		filter.MaxPrice = &price
	}
	if raw := strings.TrimSpace(c.Query("amenities")); raw != "" {
		filter.Amenities = splitCSV(raw)
	}

	listings, err := lc.Service.List(filter)
	if err != nil {
		log.Printf("❌ DB ERROR: %v", err)
		utils.JSONErrorDetail(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	c.JSON(http.StatusOK, listings)
}

func (lc *ListingController) GetListing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	listing, err := lc.Service.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrListingNotFound) {
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("%s not found", lc.Service.Kind))
			return
		}
		utils.JSONErrorDetail(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	c.JSON(http.StatusOK, listing)
}

// CreateListing accepts a multipart form with name, location, contact,
// features, price, amenities and up to 4 photos.
func (lc *ListingController) CreateListing(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Property name is required")
		return
	}
	location := strings.TrimSpace(c.PostForm("location"))
	contact := strings.TrimSpace(c.PostForm("contact"))
	if location == "" || contact == "" {
		utils.JSONError(c, http.StatusBadRequest, "Location and contact are required")
		return
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("price")), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "A numeric price is required")
		return
	}

	photos, err := lc.uploadPhotos(c)
	if err != nil {
		if errors.Is(err, services.ErrTooManyPhotos) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("❌ Photo upload failed: %v", err)
		utils.JSONErrorDetail(c, http.StatusInternalServerError, "Photo upload failed", err)
		return
	}

	listing, err := lc.Service.Create(middleware.GetUserID(c), services.ListingInput{
		Name:      name,
		Location:  location,
		Contact:   contact,
		Features:  splitCSV(c.PostForm("features")),
		Price:     price,
		Photos:    photos,
		Amenities: splitCSV(c.PostForm("amenities")),
	})
	if err != nil {
		log.Printf("❌ DB ERROR: %v", err)
		utils.JSONErrorDetail(c, http.StatusInternalServerError, "Database error", err)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

func (lc *ListingController) UpdateListing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var upd services.ListingUpdate
	if v, ok := c.GetPostForm("name"); ok {
		upd.Name = &v
	}
	if v, ok := c.GetPostForm("location"); ok {
		upd.Location = &v
	}
	if v, ok := c.GetPostForm("contact"); ok {
		upd.Contact = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		price, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid price")
			return
		}
		upd.Price = &price
	}
	if v, ok := c.GetPostForm("features"); ok {
		upd.Features = splitCSV(v)
	}
	if v, ok := c.GetPostForm("amenities"); ok {
		upd.Amenities = splitCSV(v)
	}

	photos, err := lc.uploadPhotos(c)
	if err != nil {
		if errors.Is(err, services.ErrTooManyPhotos) {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONErrorDetail(c, http.StatusInternalServerError, "Photo upload failed", err)
		return
	}
	if len(photos) > 0 {
		upd.Photos = photos
	}

	listing, err := lc.Service.Update(id, middleware.GetUserID(c), middleware.GetRole(c), upd)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrListingNotFound):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("%s not found", lc.Service.Kind))
		case errors.Is(err, services.ErrNotListingOwner):
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized")
		default:
			log.Printf("❌ Update Error for %s %d: %v", lc.Service.Kind, id, err)
			utils.JSONErrorDetail(c, http.StatusInternalServerError, "Update failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, listing)
}

func (lc *ListingController) DeleteListing(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := lc.Service.Delete(id, middleware.GetUserID(c), middleware.GetRole(c)); err != nil {
		switch {
		case errors.Is(err, services.ErrListingNotFound):
			utils.JSONError(c, http.StatusNotFound, fmt.Sprintf("%s not found", lc.Service.Kind))
		case errors.Is(err, services.ErrNotListingOwner):
			utils.JSONError(c, http.StatusUnauthorized, "Not authorized")
		default:
			log.Printf("❌ DB Error during deletion (%s %d): %v", lc.Service.Kind, id, err)
			utils.JSONErrorDetail(c, http.StatusInternalServerError, "Failed to delete listing", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s removed", lc.Service.Kind)})
}

func (lc *ListingController) uploadPhotos(c *gin.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	files := form.File["photos"]
	if len(files) == 0 {
		return nil, nil
	}
	return lc.Photos.UploadListingPhotos(c.Request.Context(), files)
}
