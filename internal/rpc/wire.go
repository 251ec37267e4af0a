package rpc

import (
	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
)

// Wire payloads shared by the internal services and their clients. Dates use
// the Timestamp pair form; ids are plain integers.

type SignUpRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	FullName string `json:"fullname"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID    int64  `json:"id"`
	Token string `json:"token"`
}

type UserPayload struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullname"`
	Role     string `json:"role"`
}

type RolePayload struct {
	Role string `json:"role"`
}

type ValidateTokenRequest struct {
	Token string `json:"token"`
}

type ValidateTokenResponse struct {
	Valid bool `json:"valid"`
}

type CreateTravelRequest struct {
	UserID      int64     `json:"user_id"`
	StartDate   Timestamp `json:"start_date"`
	EndDate     Timestamp `json:"end_date"`
	Destination string    `json:"destination"`
}

type UpdateTravelRequest struct {
	StartDate   Timestamp `json:"start_date"`
	EndDate     Timestamp `json:"end_date"`
	Destination string    `json:"destination"`
}

type SubmitRevisionRequest struct {
	ProposedStartDate   Timestamp `json:"proposed_start_date"`
	ProposedEndDate     Timestamp `json:"proposed_end_date"`
	ProposedDestination string    `json:"proposed_destination"`
}

type TravelPayload struct {
	ID                  int64      `json:"id"`
	UserID              int64      `json:"user_id"`
	StartDate           Timestamp  `json:"start_date"`
	EndDate             Timestamp  `json:"end_date"`
	Destination         string     `json:"destination"`
	ProposedStartDate   *Timestamp `json:"proposed_start_date,omitempty"`
	ProposedEndDate     *Timestamp `json:"proposed_end_date,omitempty"`
	ProposedDestination *string    `json:"proposed_destination,omitempty"`
	EditRequestDate     *Timestamp `json:"edit_request_date,omitempty"`
	CreatedDate         Timestamp  `json:"created_date"`
	UpdatedDate         Timestamp  `json:"updated_date"`
}

type ListTravelsResponse struct {
	Items        []TravelPayload `json:"items"`
	TotalCount   int64           `json:"total_count"`
	TotalPages   int             `json:"total_pages"`
	CurrentPage  int             `json:"current_page"`
	ItemsPerPage int             `json:"items_per_page"`
}

func UserToPayload(u *domain.User) UserPayload {
	return UserPayload{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Role:     string(u.Role),
	}
}

func PayloadToUser(p UserPayload) *domain.User {
	return &domain.User{
		ID:       p.ID,
		Username: p.Username,
		FullName: p.FullName,
		Role:     domain.Role(p.Role),
	}
}

func TravelToPayload(t *domain.Travel) TravelPayload {
	return TravelPayload{
		ID:                  t.ID,
		UserID:              t.OwnerID,
		StartDate:           NewTimestamp(t.StartDate),
		EndDate:             NewTimestamp(t.EndDate),
		Destination:         t.Destination,
		ProposedStartDate:   NewTimestampPtr(t.ProposedStartDate),
		ProposedEndDate:     NewTimestampPtr(t.ProposedEndDate),
		ProposedDestination: t.ProposedDestination,
		EditRequestDate:     NewTimestampPtr(t.EditRequestDate),
		CreatedDate:         NewTimestamp(t.CreatedDate),
		UpdatedDate:         NewTimestamp(t.UpdatedDate),
	}
}

func PayloadToTravel(p TravelPayload) *domain.Travel {
	return &domain.Travel{
		ID:                  p.ID,
		OwnerID:             p.UserID,
		StartDate:           p.StartDate.Time(),
		EndDate:             p.EndDate.Time(),
		Destination:         p.Destination,
		ProposedStartDate:   p.ProposedStartDate.TimePtr(),
		ProposedEndDate:     p.ProposedEndDate.TimePtr(),
		ProposedDestination: p.ProposedDestination,
		EditRequestDate:     p.EditRequestDate.TimePtr(),
		CreatedDate:         p.CreatedDate.Time(),
		UpdatedDate:         p.UpdatedDate.Time(),
	}
}

func TravelPageToResponse(page *ports.TravelPage) ListTravelsResponse {
	items := make([]TravelPayload, 0, len(page.Items))
	for _, t := range page.Items {
		items = append(items, TravelToPayload(t))
	}
	return ListTravelsResponse{
		Items:        items,
		TotalCount:   page.TotalCount,
		TotalPages:   page.TotalPages,
		CurrentPage:  page.CurrentPage,
		ItemsPerPage: page.ItemsPerPage,
	}
}
