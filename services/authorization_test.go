package services

import (
	"testing"

	"pgstay-backend/models"
)

func TestCanManageListing(t *testing.T) {
	const ownerID = 10

	tests := []struct {
		name    string
		actorID uint
		role    models.UserRole
		want    bool
	}{
		{"owner may mutate own listing", ownerID, models.RoleOwner, true},
		{"admin may mutate any listing", 99, models.RoleAdmin, true},
		{"other owner denied", 11, models.RoleOwner, false},
		{"resident denied", 12, models.RoleResident, false},
		{"admin id without admin role denied", 99, models.RoleOwner, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanManageListing(ownerID, tt.actorID, tt.role); got != tt.want {
				t.Errorf("CanManageListing(%d, %d, %s) = %v, want %v",
					ownerID, tt.actorID, tt.role, got, tt.want)
			}
		})
	}
}
