package services

import "pgstay-backend/models"

// CanManageListing decides whether the acting user may mutate a listing:
// permitted for the owning user and for admins, denied for everyone else.
// Every mutating listing endpoint for both kinds goes through this one
// predicate.
func CanManageListing(ownerID, actorID uint, actorRole models.UserRole) bool {
	return actorID == ownerID || actorRole == models.RoleAdmin
}
