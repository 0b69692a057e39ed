// Application status graph:
//
//	pending ──► reviewing ──► shortlisted ──► interviewed ──► offered ──► hired
//	    │            │             │               │             │
//	    ├────────────┴─────────────┴───────────────┴─────────────┴──► rejected
//	    └──────────────────────── (applicant) ──────────────────────► withdrawn
//
// hired, rejected and withdrawn are terminal. Every non-terminal state may be
// rejected by the employer or withdrawn by the applicant.
package domain

import "fmt"

const (
	StatusPending     = "pending"
	StatusReviewing   = "reviewing"
	StatusShortlisted = "shortlisted"
	StatusInterviewed = "interviewed"
	StatusOffered     = "offered"
	StatusHired       = "hired"
	StatusRejected    = "rejected"
	StatusWithdrawn   = "withdrawn"
)

// statusTransitions lists every allowed (from → to) pair.
var statusTransitions = map[string][]string{
	StatusPending:     {StatusReviewing, StatusShortlisted, StatusRejected, StatusWithdrawn},
	StatusReviewing:   {StatusShortlisted, StatusInterviewed, StatusRejected, StatusWithdrawn},
	StatusShortlisted: {StatusInterviewed, StatusOffered, StatusRejected, StatusWithdrawn},
	StatusInterviewed: {StatusOffered, StatusRejected, StatusWithdrawn},
	StatusOffered:     {StatusHired, StatusRejected, StatusWithdrawn},
	// hired, rejected and withdrawn are terminal
}

// ParseApplicationStatus converts a raw string to a known status, returning
// an error for unknown values.
func ParseApplicationStatus(s string) (string, error) {
	switch s {
	case StatusPending, StatusReviewing, StatusShortlisted, StatusInterviewed,
		StatusOffered, StatusHired, StatusRejected, StatusWithdrawn:
		return s, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// TransitionAllowed returns true when moving from → to is permitted by the
// status graph.
func TransitionAllowed(from, to string) bool {
	allowed, ok := statusTransitions[from]
	if !ok {
		return false // terminal state
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// TerminalStatus reports whether a status has no outgoing transitions.
func TerminalStatus(s string) bool {
	_, ok := statusTransitions[s]
	return !ok
}
