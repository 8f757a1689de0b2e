package statemachine

import (
	"errors"
	"fmt"

	"github.com/harshrathod2434/Madras-Meals/models"
)

// Policy controls how strictly status updates are validated.
//
// The admin console only ever offers the forward transition for an order's
// current status, but the mutation itself historically accepted any known
// status so that admins could correct mistakes. PolicyPermissive keeps that
// behavior; PolicyStrict enforces the adjacency graph below.
type Policy int

const (
	PolicyPermissive Policy = iota
	PolicyStrict
)

// ErrUnknownStatus is returned when the target status is not a known one.
var ErrUnknownStatus = errors.New("unknown order status")

// Transition defines a valid forward state change.
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative adjacency graph: the happy path
// pending → preparing → ready → delivered, with cancellation reachable from
// any non-terminal state.
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusPreparing},
	{From: models.StatusPreparing, To: models.StatusReady},
	{From: models.StatusReady, To: models.StatusDelivered},
	{From: models.StatusPending, To: models.StatusCancelled},
	{From: models.StatusPreparing, To: models.StatusCancelled},
	{From: models.StatusReady, To: models.StatusCancelled},
}

type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state.
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// CanTransition checks whether an order may move from one status to another
// under the given policy. Both policies reject unknown target statuses;
// PolicyPermissive accepts any known target beyond that, including re-applying
// the current status.
func CanTransition(from, to models.OrderStatus, policy Policy) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}
	if policy == PolicyPermissive {
		return nil
	}
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("invalid transition: %s → %s. Valid transitions from %s are: %s",
		from, to, from, describeValidFrom(from))
}

func describeValidFrom(status models.OrderStatus) string {
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

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
