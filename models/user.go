package models

import (
	"time"

	"gorm.io/gorm"
)

type UserRole string

const (
	RoleResident UserRole = "resident"
	RoleOwner    UserRole = "owner"
	RoleAdmin    UserRole = "admin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleResident, RoleOwner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Name     string   `gorm:"size:255" json:"name"`
	Email    string   `gorm:"uniqueIndex;size:150" json:"email"`
	Password string   `gorm:"size:255" json:"-"` // store hashed password, never return in JSON
	Role     UserRole `gorm:"size:32" json:"role"`
	Contact  string   `gorm:"size:64" json:"contact,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// PublicUser is the owner view embedded in listing responses.
type PublicUser struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact,omitempty"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Contact: u.Contact,
	}
}
