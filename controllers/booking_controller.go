package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"pgstay-backend/middleware"
	"pgstay-backend/models"
	"pgstay-backend/services"
	"pgstay-backend/statemachine"
	"pgstay-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Service *services.BookingService
}

func NewBookingController(service *services.BookingService) *BookingController {
	return &BookingController{Service: service}
}

type createBookingRequest struct {
	PropertyType models.PropertyType `json:"propertyType" binding:"required"`
	PropertyID   uint                `json:"propertyId" binding:"required"`
}

// CreateBooking records a booking for the authenticated user. The
// property reference tag is validated here; listing existence is not.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := bc.Service.Create(middleware.GetUserID(c), req.PropertyType, req.PropertyID)
	if err != nil {
		if errors.Is(err, services.ErrUnknownPropertyType) {
			utils.JSONError(c, http.StatusBadRequest, "propertyType must be PG or Hostel")
			return
		}
		utils.JSONErrorDetail(c, http.StatusInternalServerError, "Failed to create booking", err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// GetMyBookings lists the caller's bookings with each property resolved.
func (bc *BookingController) GetMyBookings(c *gin.Context) {
	bookings, err := bc.Service.ListForUser(middleware.GetUserID(c))
	if err != nil {
		utils.JSONErrorDetail(c, http.StatusInternalServerError, "Failed to retrieve bookings", err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// PayBooking confirms payment for a booking.
func (bc *BookingController) PayBooking(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking id")
		return
	}

	booking, err := bc.Service.ConfirmPayment(uint(id))
	if err != nil {
		var invalid *statemachine.InvalidTransitionError
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found")
		case errors.As(err, &invalid):
			utils.JSONError(c, http.StatusBadRequest, invalid.Error())
		default:
			utils.JSONErrorDetail(c, http.StatusInternalServerError, "Failed to confirm payment", err)
		}
		return
	}

	c.JSON(http.StatusOK, booking)
}
