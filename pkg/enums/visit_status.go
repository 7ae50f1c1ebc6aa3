package enums

import "fmt"

// VisitStatus is the binary per-customer flag indicating whether the agent has
// recorded a visit today.
type VisitStatus string

const (
	VisitStatusVisited   VisitStatus = "Visited"
	VisitStatusUnvisited VisitStatus = "Unvisited"
)

var validVisitStatuses = []VisitStatus{
	VisitStatusVisited,
	VisitStatusUnvisited,
}

// String implements fmt.Stringer.
func (v VisitStatus) String() string {
	return string(v)
}

// IsValid reports whether the value is a known VisitStatus.
func (v VisitStatus) IsValid() bool {
	for _, candidate := range validVisitStatuses {
		if candidate == v {
			return true
		}
	}
	return false
}

// Toggle returns the opposite status.
func (v VisitStatus) Toggle() VisitStatus {
	if v == VisitStatusVisited {
		return VisitStatusUnvisited
	}
	return VisitStatusVisited
}

// ParseVisitStatus converts raw input into a VisitStatus.
func ParseVisitStatus(value string) (VisitStatus, error) {
	for _, candidate := range validVisitStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid visit status %q", value)
}
