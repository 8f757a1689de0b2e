package statemachine

import (
	"errors"
	"testing"

	"github.com/harshrathod2434/Madras-Meals/models"
)

func TestCanTransitionStrict(t *testing.T) {
	tests := []struct {
		from, to models.OrderStatus
		want     bool
	}{
		{models.StatusPending, models.StatusPreparing, true},
		{models.StatusPreparing, models.StatusReady, true},
		{models.StatusReady, models.StatusDelivered, true},
		{models.StatusPending, models.StatusCancelled, true},
		{models.StatusPreparing, models.StatusCancelled, true},
		{models.StatusReady, models.StatusCancelled, true},
		// No skipping ahead
		{models.StatusPending, models.StatusReady, false},
		{models.StatusPending, models.StatusDelivered, false},
		{models.StatusPreparing, models.StatusDelivered, false},
		// No going backwards
		{models.StatusPreparing, models.StatusPending, false},
		{models.StatusReady, models.StatusPreparing, false},
		// Nothing leaves a terminal state
		{models.StatusDelivered, models.StatusPending, false},
		{models.StatusDelivered, models.StatusCancelled, false},
		{models.StatusCancelled, models.StatusPending, false},
		{models.StatusCancelled, models.StatusDelivered, false},
		// Re-applying the current status is not a strict transition
		{models.StatusPreparing, models.StatusPreparing, false},
	}
	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to, PolicyStrict)
		if got := err == nil; got != tt.want {
			t.Errorf("CanTransition(%q, %q, strict) = %v, want allowed=%v", tt.from, tt.to, err, tt.want)
		}
	}
}

func TestCanTransitionPermissive(t *testing.T) {
	// Permissive accepts any known target, including re-applies and jumps.
	for _, from := range models.AllStatuses {
		for _, to := range models.AllStatuses {
			if err := CanTransition(from, to, PolicyPermissive); err != nil {
				t.Errorf("CanTransition(%q, %q, permissive) = %v, want nil", from, to, err)
			}
		}
	}
}

func TestCanTransitionUnknownStatus(t *testing.T) {
	for _, policy := range []Policy{PolicyPermissive, PolicyStrict} {
		err := CanTransition(models.StatusPending, "shipped", policy)
		if !errors.Is(err, ErrUnknownStatus) {
			t.Errorf("policy %v: expected ErrUnknownStatus, got: %v", policy, err)
		}
	}
}

func TestValidTransitionsFrom(t *testing.T) {
	tests := []struct {
		from models.OrderStatus
		want []models.OrderStatus
	}{
		{models.StatusPending, []models.OrderStatus{models.StatusPreparing, models.StatusCancelled}},
		{models.StatusPreparing, []models.OrderStatus{models.StatusReady, models.StatusCancelled}},
		{models.StatusReady, []models.OrderStatus{models.StatusDelivered, models.StatusCancelled}},
		{models.StatusDelivered, nil},
		{models.StatusCancelled, nil},
	}
	for _, tt := range tests {
		got := ValidTransitionsFrom(tt.from)
		if len(got) != len(tt.want) {
			t.Errorf("ValidTransitionsFrom(%q) = %v, want %v", tt.from, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ValidTransitionsFrom(%q) = %v, want %v", tt.from, got, tt.want)
				break
			}
		}
	}
}
