package domain_test

import (
	"testing"

	"github.com/WorkNestHQ/job_service/internal/domain"
)

// ── ParseApplicationStatus ─────────────────────────────────────────────────

func TestParseApplicationStatus_ValidValues(t *testing.T) {
	valid := []string{
		"pending", "reviewing", "shortlisted", "interviewed",
		"offered", "hired", "rejected", "withdrawn",
	}
	for _, s := range valid {
		got, err := domain.ParseApplicationStatus(s)
		if err != nil {
			t.Errorf("ParseApplicationStatus(%q) returned unexpected error: %v", s, err)
		}
		if got != s {
			t.Errorf("ParseApplicationStatus(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParseApplicationStatus_InvalidValue(t *testing.T) {
	if _, err := domain.ParseApplicationStatus("promoted"); err == nil {
		t.Error("ParseApplicationStatus(\"promoted\") expected error, got nil")
	}
}

func TestParseApplicationStatus_EmptyString(t *testing.T) {
	if _, err := domain.ParseApplicationStatus(""); err == nil {
		t.Error("ParseApplicationStatus(\"\") expected error, got nil")
	}
}

// ── TransitionAllowed — valid (forward) transitions ────────────────────────

func TestTransitionAllowed_ValidForward(t *testing.T) {
	cases := []struct {
		from string
		to   string
	}{
		{domain.StatusPending, domain.StatusReviewing},
		{domain.StatusPending, domain.StatusShortlisted},
		{domain.StatusReviewing, domain.StatusShortlisted},
		{domain.StatusReviewing, domain.StatusInterviewed},
		{domain.StatusShortlisted, domain.StatusInterviewed},
		{domain.StatusShortlisted, domain.StatusOffered},
		{domain.StatusInterviewed, domain.StatusOffered},
		{domain.StatusOffered, domain.StatusHired},
	}
	for _, c := range cases {
		if !domain.TransitionAllowed(c.from, c.to) {
			t.Errorf("TransitionAllowed(%s → %s) should be true", c.from, c.to)
		}
	}
}

// ── TransitionAllowed — rejection and withdrawal from every non-terminal ───

func TestTransitionAllowed_ToRejectedAndWithdrawn(t *testing.T) {
	nonTerminals := []string{
		domain.StatusPending,
		domain.StatusReviewing,
		domain.StatusShortlisted,
		domain.StatusInterviewed,
		domain.StatusOffered,
	}
	for _, from := range nonTerminals {
		if !domain.TransitionAllowed(from, domain.StatusRejected) {
			t.Errorf("TransitionAllowed(%s → rejected) should be true", from)
		}
		if !domain.TransitionAllowed(from, domain.StatusWithdrawn) {
			t.Errorf("TransitionAllowed(%s → withdrawn) should be true", from)
		}
	}
}

// ── TransitionAllowed — terminal states have no outgoing transitions ───────

func TestTransitionAllowed_FromTerminal(t *testing.T) {
	terminals := []string{domain.StatusHired, domain.StatusRejected, domain.StatusWithdrawn}
	targets := []string{
		domain.StatusPending,
		domain.StatusReviewing,
		domain.StatusShortlisted,
		domain.StatusInterviewed,
		domain.StatusOffered,
		domain.StatusHired,
		domain.StatusRejected,
		domain.StatusWithdrawn,
	}
	for _, from := range terminals {
		if !domain.TerminalStatus(from) {
			t.Errorf("TerminalStatus(%s) should be true", from)
		}
		for _, to := range targets {
			if domain.TransitionAllowed(from, to) {
				t.Errorf("TransitionAllowed(%s → %s) should be false", from, to)
			}
		}
	}
}

// ── No backward movement through the pipeline ──────────────────────────────

func TestTransitionAllowed_NoBackward(t *testing.T) {
	cases := []struct {
		from string
		to   string
	}{
		{domain.StatusReviewing, domain.StatusPending},
		{domain.StatusShortlisted, domain.StatusReviewing},
		{domain.StatusInterviewed, domain.StatusShortlisted},
		{domain.StatusOffered, domain.StatusInterviewed},
	}
	for _, c := range cases {
		if domain.TransitionAllowed(c.from, c.to) {
			t.Errorf("TransitionAllowed(%s → %s) should be false", c.from, c.to)
		}
	}
}
