package ports

import (
	"time"

	"github.com/tripfolio/travel-platform/internal/core/domain"
)

// Audit event types emitted by the travel service.
const (
	AuditTravelCreated           = "travel.created"
	AuditTravelUpdated           = "travel.updated"
	AuditTravelRevisionSubmitted = "travel.revision_submitted"
	AuditTravelRevisionApproved  = "travel.revision_approved"
	AuditTravelRevisionRejected  = "travel.revision_rejected"
	AuditTravelDeleted           = "travel.deleted"
)

// AuditEvent records one completed mutation for the audit stream.
type AuditEvent struct {
	Type       string      `json:"type"`
	TravelID   int64       `json:"travel_id"`
	ActorID    int64       `json:"actor_id"`
	ActorRole  domain.Role `json:"actor_role"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// AuditPublisher accepts audit events for asynchronous delivery. Publishing
// is best effort: a failed delivery is logged, never surfaced to the caller.
type AuditPublisher interface {
	Enqueue(event AuditEvent)
}
