package statemachine

import (
	"errors"
	"testing"

	"pgstay-backend/models"
)

func TestCanTransition(t *testing.T) {
	if err := CanTransition(models.BookingPending, models.BookingConfirmed, ActorUser); err != nil {
		t.Errorf("Pending -> Confirmed by user should be allowed: %v", err)
	}

	if err := CanTransition(models.BookingConfirmed, models.BookingPending, ActorUser); err == nil {
		t.Error("Confirmed -> Pending must never be allowed")
	}

	err := CanTransition(models.BookingPending, models.BookingConfirmed, "ghost")
	var invalid *InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Errorf("unknown actor: got %v, want InvalidTransitionError", err)
	}
}

func TestCancelledIsUnreachable(t *testing.T) {
	for _, from := range []models.BookingStatus{models.BookingPending, models.BookingConfirmed} {
		for _, next := range ValidTransitionsFrom(from) {
			if next == models.BookingCancelled {
				t.Errorf("no transition should reach Cancelled, found one from %s", from)
			}
		}
	}
}

func TestConfirmedIsTerminal(t *testing.T) {
	if nexts := ValidTransitionsFrom(models.BookingConfirmed); len(nexts) != 0 {
		t.Errorf("Confirmed should be terminal, got transitions to %v", nexts)
	}
}
