package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
)

// TravelHandler fronts the travel service. Every call forwards the caller
// identity resolved by the guard; the travel service applies its own
// authorization on top of the gateway's role check.
type TravelHandler struct {
	travel ports.TravelService
}

func NewTravelHandler(travel ports.TravelService) *TravelHandler {
	return &TravelHandler{travel: travel}
}

func (h *TravelHandler) Create(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	in, err := bindTravelInput(c)
	if err != nil {
		return err
	}

	travel, err := h.travel.CreateTravel(c.Request().Context(), who, ports.CreateTravelInput{
		OwnerID:     in.ownerID,
		StartDate:   in.start,
		EndDate:     in.end,
		Destination: in.destination,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, travel)
}

func (h *TravelHandler) Get(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	travel, err := h.travel.GetTravel(c.Request().Context(), who, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, travel)
}

func (h *TravelHandler) List(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	result, err := h.travel.ListTravels(c.Request().Context(), who, ports.ListTravelsInput{
		Page:  page,
		Limit: limit,
		Sort:  ports.ParseSortField(c.QueryParam("sort")),
		Order: ports.ParseSortOrder(c.QueryParam("sortOrder")),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]any{
		"items":          result.Items,
		"total_count":    result.TotalCount,
		"total_pages":    result.TotalPages,
		"current_page":   result.CurrentPage,
		"items_per_page": result.ItemsPerPage,
	})
}

func (h *TravelHandler) Update(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	in, err := bindTravelInput(c)
	if err != nil {
		return err
	}

	travel, err := h.travel.UpdateTravel(c.Request().Context(), who, ports.UpdateTravelInput{
		ID:          id,
		StartDate:   in.start,
		EndDate:     in.end,
		Destination: in.destination,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, travel)
}

func (h *TravelHandler) SubmitRevision(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	in, err := bindTravelInput(c)
	if err != nil {
		return err
	}

	travel, err := h.travel.SubmitRevision(c.Request().Context(), who, ports.SubmitRevisionInput{
		ID:          id,
		StartDate:   in.start,
		EndDate:     in.end,
		Destination: in.destination,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, travel)
}

func (h *TravelHandler) ApproveRevision(c echo.Context) error {
	return h.resolveRevision(c, h.travel.ApproveRevision, "revision approved")
}

func (h *TravelHandler) RejectRevision(c echo.Context) error {
	return h.resolveRevision(c, h.travel.RejectRevision, "revision rejected")
}

func (h *TravelHandler) Delete(c echo.Context) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.travel.DeleteTravel(c.Request().Context(), who, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "travel record deleted"})
}

type resolveFn func(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error)

func (h *TravelHandler) resolveRevision(c echo.Context, resolve resolveFn, message string) error {
	who, err := caller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if _, err := resolve(c.Request().Context(), who, id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: message})
}

type travelInput struct {
	ownerID     int64
	start, end  time.Time
	destination string
}

func bindTravelInput(c echo.Context) (*travelInput, error) {
	var req travelRequest
	if err := c.Bind(&req); err != nil {
		return nil, domain.E(domain.KindInvalidArgument, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	return &travelInput{
		ownerID:     req.UserID,
		start:       start,
		end:         end,
		destination: req.Destination,
	}, nil
}
