package ports

import (
	"context"
	"time"

	"github.com/tripfolio/travel-platform/internal/core/domain"
)

// AuthContext identifies the authenticated caller of one request. It is
// derived once by the gateway guard, forwarded as call metadata, and never
// persisted.
type AuthContext struct {
	UserID int64
	Role   domain.Role
}

type CreateTravelInput struct {
	OwnerID     int64
	StartDate   time.Time
	EndDate     time.Time
	Destination string
}

type UpdateTravelInput struct {
	ID          int64
	StartDate   time.Time
	EndDate     time.Time
	Destination string
}

type SubmitRevisionInput struct {
	ID          int64
	StartDate   time.Time
	EndDate     time.Time
	Destination string
}

type ListTravelsInput struct {
	Page  int
	Limit int
	Sort  SortField
	Order SortOrder
}

// TravelPage is one page of a travel listing.
type TravelPage struct {
	Items        []*domain.Travel
	TotalCount   int64
	TotalPages   int
	CurrentPage  int
	ItemsPerPage int
}

// TravelService is the remote surface of the travel service. Every operation
// re-validates the caller against the supplied AuthContext; the gateway's
// role check is not trusted downstream.
type TravelService interface {
	CreateTravel(ctx context.Context, caller AuthContext, in CreateTravelInput) (*domain.Travel, error)
	GetTravel(ctx context.Context, caller AuthContext, id int64) (*domain.Travel, error)
	ListTravels(ctx context.Context, caller AuthContext, in ListTravelsInput) (*TravelPage, error)
	UpdateTravel(ctx context.Context, caller AuthContext, in UpdateTravelInput) (*domain.Travel, error)
	SubmitRevision(ctx context.Context, caller AuthContext, in SubmitRevisionInput) (*domain.Travel, error)
	ApproveRevision(ctx context.Context, caller AuthContext, id int64) (*domain.Travel, error)
	RejectRevision(ctx context.Context, caller AuthContext, id int64) (*domain.Travel, error)
	DeleteTravel(ctx context.Context, caller AuthContext, id int64) error
}
