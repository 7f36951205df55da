package order_test

import (
	"testing"

	"agrirent/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestStateMachine_AllowedNextStates(t *testing.T) {
	sm := order.Transitions()

	testCases := []struct {
		from     order.Status
		expected []order.Status
	}{
		{order.Draft, []order.Status{order.InterestRaised}},
		{order.InterestRaised, []order.Status{order.UnderReview, order.Accepted, order.Rejected, order.Cancelled}},
		{order.UnderReview, []order.Status{order.Accepted, order.Rejected}},
		{order.Accepted, []order.Status{order.PickupScheduled}},
		{order.PickupScheduled, []order.Status{order.Active}},
		{order.Active, []order.Status{order.Completed}},
		{order.Completed, []order.Status{order.Closed}},
		{order.Closed, nil},
		{order.Rejected, nil},
		{order.Cancelled, nil},
		{order.Unknown, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.from.String(), func(t *testing.T) {
			assert.ElementsMatch(t, tc.expected, sm.AllowedNextStates(tc.from))
		})
	}
}

func TestStateMachine_CanTransitionAgreesWithAllowedNextStates(t *testing.T) {
	sm := order.Transitions()
	all := append(order.AllStatuses(), order.Unknown)

	for _, from := range all {
		allowed := sm.AllowedNextStates(from)
		for _, to := range all {
			assert.Equal(t, contains(allowed, to), sm.CanTransition(from, to),
				"%s -> %s", from, to)
		}
	}
}

func TestStateMachine_NoSelfTransitions(t *testing.T) {
	sm := order.Transitions()
	for _, s := range order.AllStatuses() {
		assert.False(t, sm.CanTransition(s, s), s.String())
	}
}

func TestStateMachine_TerminalStatesAreFinal(t *testing.T) {
	sm := order.Transitions()
	for _, s := range order.AllStatuses() {
		if !s.IsTerminal() {
			continue
		}
		for _, to := range order.AllStatuses() {
			assert.False(t, sm.CanTransition(s, to), "%s -> %s", s, to)
		}
	}
}

func TestStateMachine_AllowedNextStatesReturnsCopy(t *testing.T) {
	sm := order.Transitions()
	next := sm.AllowedNextStates(order.InterestRaised)
	next[0] = order.Closed

	assert.False(t, sm.CanTransition(order.InterestRaised, order.Closed))
}

func contains(list []order.Status, s order.Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
