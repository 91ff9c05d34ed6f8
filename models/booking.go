package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "Pending"
	BookingConfirmed BookingStatus = "Confirmed"
	// BookingCancelled is declared in the schema but no endpoint sets it.
	BookingCancelled BookingStatus = "Cancelled"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentNotPaid PaymentStatus = "Not Paid"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID       uint         `gorm:"index;column:user_id" json:"user_id"`
	PropertyType PropertyType `gorm:"size:16;column:property_type" json:"propertyType"`
	PropertyID   uint         `gorm:"index;column:property_id" json:"propertyId"`

	Status        BookingStatus `gorm:"size:32" json:"status"`
	PaymentStatus PaymentStatus `gorm:"size:32;column:payment_status" json:"paymentStatus"`
}
