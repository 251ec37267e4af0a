package domain

import (
	"strings"
	"time"
)

// Travel is the core aggregate: a travel record owned by a tourist, managed
// by admins. Its revision sub-state has exactly two values: clean (no
// proposed fields) and pending (all proposed fields set). Partial proposed
// state is never observable and never persisted.
type Travel struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"user_id"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Destination string    `json:"destination"`

	ProposedStartDate   *time.Time `json:"proposed_start_date,omitempty"`
	ProposedEndDate     *time.Time `json:"proposed_end_date,omitempty"`
	ProposedDestination *string    `json:"proposed_destination,omitempty"`
	EditRequestDate     *time.Time `json:"edit_request_date,omitempty"`

	CreatedDate time.Time `json:"created_date"`
	UpdatedDate time.Time `json:"updated_date"`
}

// PendingRevision reports whether a proposed edit is outstanding.
func (t *Travel) PendingRevision() bool {
	return t.EditRequestDate != nil
}

// ValidateDates enforces the date-ordering rule shared by actual and
// proposed date pairs: the end may equal but never precede the start.
func ValidateDates(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return E(KindInvalidArgument, "start date and end date are required")
	}
	if end.Before(start) {
		return E(KindInvalidArgument, "end date must not be earlier than start date")
	}
	return nil
}

// NormalizeDestination trims and upper-cases a destination. Destinations are
// stored upper-cased.
func NormalizeDestination(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", E(KindInvalidArgument, "destination is required")
	}
	return strings.ToUpper(s), nil
}

// NewTravel builds a clean record for the given owner.
func NewTravel(ownerID int64, start, end time.Time, destination string, now time.Time) (*Travel, error) {
	if err := ValidateDates(start, end); err != nil {
		return nil, err
	}
	dest, err := NormalizeDestination(destination)
	if err != nil {
		return nil, err
	}
	return &Travel{
		OwnerID:     ownerID,
		StartDate:   start,
		EndDate:     end,
		Destination: dest,
		CreatedDate: now,
		UpdatedDate: now,
	}, nil
}

// Replace overwrites the actual fields directly (admin update). A pending
// revision, if any, is left untouched.
func (t *Travel) Replace(start, end time.Time, destination string, now time.Time) error {
	if err := ValidateDates(start, end); err != nil {
		return err
	}
	dest, err := NormalizeDestination(destination)
	if err != nil {
		return err
	}
	t.StartDate = start
	t.EndDate = end
	t.Destination = dest
	t.UpdatedDate = now
	return nil
}

// SubmitRevision records a proposed edit, replacing any outstanding one.
// All proposed fields and the edit request date are set together.
func (t *Travel) SubmitRevision(start, end time.Time, destination string, now time.Time) error {
	if err := ValidateDates(start, end); err != nil {
		return err
	}
	dest, err := NormalizeDestination(destination)
	if err != nil {
		return err
	}
	t.ProposedStartDate = &start
	t.ProposedEndDate = &end
	t.ProposedDestination = &dest
	t.EditRequestDate = &now
	t.UpdatedDate = now
	return nil
}

// ApproveRevision folds the proposed fields into the actual fields and
// clears the revision sub-state.
func (t *Travel) ApproveRevision(now time.Time) error {
	if !t.PendingRevision() {
		return E(KindFailedPrecondition, "no proposed revisions to approve")
	}
	t.StartDate = *t.ProposedStartDate
	t.EndDate = *t.ProposedEndDate
	t.Destination = *t.ProposedDestination
	t.clearRevision(now)
	return nil
}

// RejectRevision discards the proposed fields.
func (t *Travel) RejectRevision(now time.Time) error {
	if !t.PendingRevision() {
		return E(KindFailedPrecondition, "no proposed revisions to reject")
	}
	t.clearRevision(now)
	return nil
}

func (t *Travel) clearRevision(now time.Time) {
	t.ProposedStartDate = nil
	t.ProposedEndDate = nil
	t.ProposedDestination = nil
	t.EditRequestDate = nil
	t.UpdatedDate = now
}
