package domain

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func cleanTravel(t *testing.T) *Travel {
	t.Helper()
	tr, err := NewTravel(42, date(2024, 1, 1), date(2024, 1, 5), "paris", date(2024, 1, 1))
	if err != nil {
		t.Fatalf("new travel: %v", err)
	}
	return tr
}

func TestNewTravel_UppercasesDestination(t *testing.T) {
	tr := cleanTravel(t)
	if tr.Destination != "PARIS" {
		t.Fatalf("expected PARIS, got %q", tr.Destination)
	}
	if tr.PendingRevision() {
		t.Fatalf("new travel must be clean")
	}
}

func TestNewTravel_RejectsBadInput(t *testing.T) {
	if _, err := NewTravel(42, date(2024, 1, 5), date(2024, 1, 1), "paris", time.Now()); KindOf(err) != KindInvalidArgument {
		t.Fatalf("expected invalid argument for end before start, got %v", err)
	}
	if _, err := NewTravel(42, date(2024, 1, 1), date(2024, 1, 5), "   ", time.Now()); KindOf(err) != KindInvalidArgument {
		t.Fatalf("expected invalid argument for empty destination, got %v", err)
	}
	// equal dates are allowed
	if _, err := NewTravel(42, date(2024, 1, 1), date(2024, 1, 1), "rome", time.Now()); err != nil {
		t.Fatalf("equal start/end should be valid: %v", err)
	}
}

func TestSubmitRevision_SetsAllProposedFields(t *testing.T) {
	tr := cleanTravel(t)
	now := date(2024, 1, 10)
	if err := tr.SubmitRevision(date(2024, 2, 1), date(2024, 2, 5), "rome", now); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !tr.PendingRevision() {
		t.Fatalf("expected pending sub-state")
	}
	if tr.ProposedStartDate == nil || tr.ProposedEndDate == nil || tr.ProposedDestination == nil || tr.EditRequestDate == nil {
		t.Fatalf("proposed fields must all be set: %+v", tr)
	}
	if *tr.ProposedDestination != "ROME" {
		t.Fatalf("proposed destination not normalized: %q", *tr.ProposedDestination)
	}
	// actual fields untouched
	if tr.Destination != "PARIS" || !tr.StartDate.Equal(date(2024, 1, 1)) {
		t.Fatalf("actual fields changed by submit: %+v", tr)
	}
}

func TestSubmitRevision_InvalidDatesLeaveStateClean(t *testing.T) {
	tr := cleanTravel(t)
	err := tr.SubmitRevision(date(2024, 2, 5), date(2024, 2, 1), "rome", time.Now())
	if KindOf(err) != KindInvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if tr.PendingRevision() || tr.ProposedStartDate != nil || tr.ProposedEndDate != nil || tr.ProposedDestination != nil {
		t.Fatalf("failed submit must not leave partial state: %+v", tr)
	}
}

func TestApproveRevision_FoldsProposalAndClears(t *testing.T) {
	tr := cleanTravel(t)
	if err := tr.SubmitRevision(date(2024, 2, 1), date(2024, 2, 5), "rome", date(2024, 1, 10)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := tr.ApproveRevision(date(2024, 1, 11)); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if !tr.StartDate.Equal(date(2024, 2, 1)) || !tr.EndDate.Equal(date(2024, 2, 5)) || tr.Destination != "ROME" {
		t.Fatalf("proposal not folded: %+v", tr)
	}
	if tr.PendingRevision() || tr.ProposedStartDate != nil || tr.ProposedEndDate != nil || tr.ProposedDestination != nil {
		t.Fatalf("approve must clear all proposed fields: %+v", tr)
	}
}

func TestRejectRevision_DiscardsProposal(t *testing.T) {
	tr := cleanTravel(t)
	if err := tr.SubmitRevision(date(2024, 2, 1), date(2024, 2, 5), "rome", date(2024, 1, 10)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := tr.RejectRevision(date(2024, 1, 11)); err != nil {
		t.Fatalf("reject: %v", err)
	}
	if tr.Destination != "PARIS" || !tr.StartDate.Equal(date(2024, 1, 1)) {
		t.Fatalf("reject must not touch actual fields: %+v", tr)
	}
	if tr.PendingRevision() {
		t.Fatalf("reject must clear the revision sub-state")
	}
}

func TestApproveReject_RequirePending(t *testing.T) {
	tr := cleanTravel(t)
	if err := tr.ApproveRevision(time.Now()); KindOf(err) != KindFailedPrecondition {
		t.Fatalf("approve on clean record: expected failed precondition, got %v", err)
	}
	if err := tr.RejectRevision(time.Now()); KindOf(err) != KindFailedPrecondition {
		t.Fatalf("reject on clean record: expected failed precondition, got %v", err)
	}
}

func TestReplace_KeepsPendingRevision(t *testing.T) {
	tr := cleanTravel(t)
	if err := tr.SubmitRevision(date(2024, 2, 1), date(2024, 2, 5), "rome", date(2024, 1, 10)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := tr.Replace(date(2024, 3, 1), date(2024, 3, 5), "lisbon", date(2024, 1, 12)); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if tr.Destination != "LISBON" {
		t.Fatalf("replace did not apply: %+v", tr)
	}
	if !tr.PendingRevision() {
		t.Fatalf("replace must leave the pending proposal intact")
	}
}
