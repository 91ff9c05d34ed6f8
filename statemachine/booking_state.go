package statemachine

import (
	"pgstay-backend/models"
)

// Actors that can drive booking transitions.
const (
	ActorUser   = "user"
	ActorSystem = "system"
)

// Transition defines a valid booking state change and who can perform it
type Transition struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor string
}

// validTransitions is the authoritative state machine definition.
// Payment is one-directional: once Confirmed there is no way back.
// Cancelled exists in the schema but has no inbound transition here; no
// endpoint cancels a booking.
var validTransitions = []Transition{
	{From: models.BookingPending, To: models.BookingConfirmed, Actor: ActorUser},
}

type transitionKey struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.BookingStatus) []models.BookingStatus {
	var nexts []models.BookingStatus
	seen := map[models.BookingStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// InvalidTransitionError reports a state change the machine does not
// allow. Callers treat it as a caller error, not a fault.
type InvalidTransitionError struct {
	From  models.BookingStatus
	To    models.BookingStatus
	Actor string
}

func (e *InvalidTransitionError) Error() string {
	return "invalid transition: " + string(e.From) + " to " + string(e.To) +
		" is not allowed for actor '" + e.Actor + "'. " +
		"Valid transitions from " + string(e.From) + " are: " + describeValidFrom(e.From)
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.BookingStatus, actor string) error {
	if transitionMap[transitionKey{From: from, To: to, Actor: actor}] {
		return nil
	}
	return &InvalidTransitionError{From: from, To: to, Actor: actor}
}

func describeValidFrom(status models.BookingStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
