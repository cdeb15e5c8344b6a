package contract

// Status of a contract. Transitions are guarded by the entity:
//
//	pending   → scheduled, cancelled
//	scheduled → active, cancelled
//	active    → cancelled
//	cancelled is terminal
//
// scheduled→active is not stored: it is derived from the scheduled start
// via EffectiveStatus so reads never mutate state.
type Status string

const (
	StatusPending   Status = "pending"
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusActive, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled
}

// Occupying reports whether a contract in this status blocks its units
// for overlapping date ranges.
func (s Status) Occupying() bool {
	switch s {
	case StatusPending, StatusScheduled, StatusActive:
		return true
	default:
		return false
	}
}

var allowedTransitions = map[Status][]Status{
	StatusPending:   {StatusScheduled, StatusCancelled},
	StatusScheduled: {StatusActive, StatusCancelled},
	StatusActive:    {StatusCancelled},
	StatusCancelled: {},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
