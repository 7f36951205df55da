package order

import "slices"

// StateMachine decides which order status changes are legal. It is built once
// from a fixed table and never mutated, so a single instance is shared by all
// callers.
//
// Rules:
//   - a transition is valid only if the table lists `to` for `from`
//   - self transitions are always rejected
//   - terminal states (Closed, Rejected, Cancelled) have no outgoing transitions
//   - statuses missing from the table have no outgoing transitions
type StateMachine struct {
	allowed map[Status][]Status
}

var defaultStateMachine = newStateMachine(map[Status][]Status{
	Draft:           {InterestRaised},
	InterestRaised:  {UnderReview, Accepted, Rejected, Cancelled},
	UnderReview:     {Accepted, Rejected},
	Accepted:        {PickupScheduled},
	PickupScheduled: {Active},
	Active:          {Completed},
	Completed:       {Closed},
})

// Transitions returns the order state machine.
func Transitions() StateMachine {
	return defaultStateMachine
}

func newStateMachine(table map[Status][]Status) StateMachine {
	allowed := make(map[Status][]Status, len(table))
	for from, targets := range table {
		if from.IsTerminal() {
			continue
		}
		next := make([]Status, 0, len(targets))
		for _, to := range targets {
			if to != from && !slices.Contains(next, to) {
				next = append(next, to)
			}
		}
		slices.Sort(next)
		allowed[from] = next
	}
	return StateMachine{allowed: allowed}
}

// CanTransition reports whether an order in `from` may move to `to`.
// Pure and deterministic.
func (m StateMachine) CanTransition(from, to Status) bool {
	if from == to {
		return false
	}
	return slices.Contains(m.allowed[from], to)
}

// AllowedNextStates returns the statuses reachable from `from` in one step,
// in lifecycle order. The result is a copy; an empty slice means none.
func (m StateMachine) AllowedNextStates(from Status) []Status {
	return slices.Clone(m.allowed[from])
}
