package services

import (
	"errors"
	"fmt"
	"log"

	"pgstay-backend/models"
	"pgstay-backend/statemachine"
	"pgstay-backend/utils"

	"gorm.io/gorm"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingService wraps *gorm.DB for the booking lifecycle. Notifier is
// optional; without it payment confirmations simply skip the email.
type BookingService struct {
	DB       *gorm.DB
	Notifier *NotificationService
}

func NewBookingService(db *gorm.DB, notifier *NotificationService) *BookingService {
	return &BookingService{DB: db, Notifier: notifier}
}

// BookingWithProperty is a booking plus its resolved listing. Property is
// null when the stored reference no longer resolves.
type BookingWithProperty struct {
	models.Booking
	Property *models.Listing `json:"property"`
}

// Create records a booking against a tagged listing reference. The tag
// must be a known kind; whether the listing itself exists is not checked
// here — dangling references surface as a null property at read time.
func (s *BookingService) Create(userID uint, t models.PropertyType, propertyID uint) (*models.Booking, error) {
	if !t.Valid() {
		return nil, ErrUnknownPropertyType
	}

	booking := &models.Booking{
		UserID:        userID,
		PropertyType:  t,
		PropertyID:    propertyID,
		Status:        models.BookingPending,
		PaymentStatus: models.PaymentNotPaid,
	}
	if err := s.DB.Create(booking).Error; err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return booking, nil
}

// ListForUser returns the user's bookings, each resolved through the
// property resolver. One lookup per booking, no batching; acceptable
// because result sets are small.
func (s *BookingService) ListForUser(userID uint) ([]BookingWithProperty, error) {
	var bookings []models.Booking
	if err := s.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}

	out := make([]BookingWithProperty, 0, len(bookings))
	for _, bk := range bookings {
		property, err := ResolveProperty(s.DB, bk.PropertyType, bk.PropertyID)
		if err != nil && !errors.Is(err, ErrPropertyNotFound) && !errors.Is(err, ErrUnknownPropertyType) {
			return nil, err
		}
		out = append(out, BookingWithProperty{Booking: bk, Property: property})
	}
	return out, nil
}

// ConfirmPayment moves Pending → Confirmed and Not Paid → Paid as one
// record update. Confirming an already-confirmed booking is a no-op
// success, so the terminal state never reverts. The notification is
// best-effort: the client gets success once the update lands.
func (s *BookingService) ConfirmPayment(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}

	if booking.Status == models.BookingConfirmed && booking.PaymentStatus == models.PaymentPaid {
		return &booking, nil
	}

	if err := statemachine.CanTransition(booking.Status, models.BookingConfirmed, statemachine.ActorUser); err != nil {
		return nil, err
	}

	if err := s.DB.Model(&booking).Updates(map[string]interface{}{
		"status":         models.BookingConfirmed,
		"payment_status": models.PaymentPaid,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to confirm payment for booking %d: %w", bookingID, err)
	}
	booking.Status = models.BookingConfirmed
	booking.PaymentStatus = models.PaymentPaid

	s.notifyPaymentConfirmed(&booking)
	return &booking, nil
}

func (s *BookingService) notifyPaymentConfirmed(booking *models.Booking) {
	if s.Notifier == nil {
		return
	}

	var user models.User
	if err := s.DB.First(&user, booking.UserID).Error; err != nil {
		log.Printf("warning: booking %d: cannot load user for notification: %v", booking.ID, err)
		return
	}

	propertyName := string(booking.PropertyType)
	if property, err := ResolveProperty(s.DB, booking.PropertyType, booking.PropertyID); err == nil {
		propertyName = property.Name
	}

	s.Notifier.Enqueue(utils.BuildBookingConfirmedEmail(user.Email, user.Name, propertyName, booking.ID))
}
