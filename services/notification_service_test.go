package services

import (
	"testing"

	"pgstay-backend/utils"
)

func TestNotificationServiceDrainsOnShutdown(t *testing.T) {
	ns := NewNotificationService(1)

	// without SMTP config sends are mocked, so these must all complete
	for i := 0; i < 5; i++ {
		ns.Enqueue(utils.BuildBookingConfirmedEmail("user@test.local", "User", "Drain PG", uint(i+1)))
	}
	ns.Shutdown()
}

func TestNotificationServiceIgnoresNil(t *testing.T) {
	ns := NewNotificationService(1)
	ns.Enqueue(nil)
	ns.Shutdown()
}
