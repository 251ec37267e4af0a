package handler

import (
	"time"

	"github.com/tripfolio/travel-platform/internal/core/domain"
)

// Request schemas for the external surface. Field limits follow the account
// rules: short alphanumeric usernames, passwords without spaces, and a closed
// role set.

type signupRequest struct {
	Username string `json:"username" validate:"required,min=5,max=20,alphanum"`
	Password string `json:"password" validate:"required,min=6,max=100,excludesall=0x20"`
	FullName string `json:"fullname" validate:"required,min=6,max=100"`
	Role     string `json:"role" validate:"required,oneof=admin tourist"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type travelRequest struct {
	UserID      int64  `json:"user_id"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Destination string `json:"destination" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// parseDate accepts RFC3339 or a bare calendar date.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.Ef(domain.KindInvalidArgument, "invalid date %q", s)
	}
	return t.UTC(), nil
}
