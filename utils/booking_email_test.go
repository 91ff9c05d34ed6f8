package utils

import (
	"strings"
	"testing"
)

func TestBuildBookingConfirmedEmail(t *testing.T) {
	n := BuildBookingConfirmedEmail("guest@test.local", "Priya", "Green Nest PG", 42)

	if n.To != "guest@test.local" {
		t.Errorf("to = %q", n.To)
	}
	if !strings.Contains(n.Subject, "42") {
		t.Errorf("subject %q missing booking id", n.Subject)
	}
	if !strings.Contains(n.Message, "Green Nest PG") || !strings.Contains(n.Message, "Priya") {
		t.Errorf("plain body missing details: %q", n.Message)
	}
	if !strings.Contains(n.HTML, "Green Nest PG") {
		t.Errorf("html body missing property name")
	}
}

func TestSendEmailNotificationMockFallback(t *testing.T) {
	// no SMTP env in tests, so the mock path must report success
	n := BuildBookingConfirmedEmail("guest@test.local", "Priya", "Green Nest PG", 1)
	if err := SendEmailNotification(n); err != nil {
		t.Errorf("mock send returned %v", err)
	}
}
