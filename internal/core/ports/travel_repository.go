package ports

import (
	"context"
	"strings"

	"github.com/tripfolio/travel-platform/internal/core/domain"
)

// SortField selects the column a travel listing is ordered by.
type SortField string

const (
	SortCreatedDate     SortField = "createdDate"
	SortEditRequestDate SortField = "editRequestDate"
)

// ParseSortField maps a raw sort value; unrecognized values default to
// createdDate.
func ParseSortField(s string) SortField {
	if SortField(s) == SortEditRequestDate {
		return SortEditRequestDate
	}
	return SortCreatedDate
}

// SortOrder is the listing direction.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ParseSortOrder maps a raw order value case-insensitively; unrecognized
// values default to DESC.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// TravelQuery is an offset-paginated, sorted listing filter. OwnerID zero
// means no owner filter (admin view).
type TravelQuery struct {
	OwnerID int64
	Page    int
	Limit   int
	Sort    SortField
	Order   SortOrder
}

// TravelRepository defines the record store owned by the travel service.
type TravelRepository interface {
	Create(ctx context.Context, travel *domain.Travel) (*domain.Travel, error)
	FindByID(ctx context.Context, id int64) (*domain.Travel, error)
	// List returns one page of records plus the total count matching the
	// filter (before pagination).
	List(ctx context.Context, q TravelQuery) ([]*domain.Travel, int64, error)
	Update(ctx context.Context, travel *domain.Travel) error
	Delete(ctx context.Context, id int64) error
}
