// Package api exposes the travel core over the internal HTTP surface. Every
// request carries the caller identity as metadata headers set by the gateway;
// the handlers hand that identity to the core, which re-checks authorization
// itself.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
	"github.com/tripfolio/travel-platform/internal/rpc"
)

type Handler struct {
	travel ports.TravelService
}

func NewHandler(travel ports.TravelService) *Handler {
	return &Handler{travel: travel}
}

func (h *Handler) Create(c echo.Context) error {
	caller, err := rpc.AuthFromHeaders(c.Request().Header)
	if err != nil {
		return err
	}
	var req rpc.CreateTravelRequest
	if err := c.Bind(&req); err != nil {
		return domain.E(domain.KindInvalidArgument, "invalid payload")
	}

	travel, err := h.travel.CreateTravel(c.Request().Context(), caller, ports.CreateTravelInput{
		OwnerID:     req.UserID,
		StartDate:   req.StartDate.Time(),
		EndDate:     req.EndDate.Time(),
		Destination: req.Destination,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, rpc.TravelToPayload(travel))
}

func (h *Handler) Get(c echo.Context) error {
	caller, err := rpc.AuthFromHeaders(c.Request().Header)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	travel, err := h.travel.GetTravel(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rpc.TravelToPayload(travel))
}

func (h *Handler) List(c echo.Context) error {
	caller, err := rpc.AuthFromHeaders(c.Request().Header)
	if err != nil {
		return err
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	in := ports.ListTravelsInput{
		Page:  page,
		Limit: limit,
		Sort:  ports.ParseSortField(c.QueryParam("sort")),
		Order: ports.ParseSortOrder(c.QueryParam("sortOrder")),
	}

	result, err := h.travel.ListTravels(c.Request().Context(), caller, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rpc.TravelPageToResponse(result))
}

func (h *Handler) Update(c echo.Context) error {
	caller, err := rpc.AuthFromHeaders(c.Request().Header)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req rpc.UpdateTravelRequest
	if err := c.Bind(&req); err != nil {
		return domain.E(domain.KindInvalidArgument, "invalid payload")
	}

	travel, err := h.travel.UpdateTravel(c.Request().Context(), caller, ports.UpdateTravelInput{
		ID:          id,
		StartDate:   req.StartDate.Time(),
		EndDate:     req.EndDate.Time(),
		Destination: req.Destination,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rpc.TravelToPayload(travel))
}

func (h *Handler) SubmitRevision(c echo.Context) error {
	caller, err := rpc.AuthFromHeaders(c.Request().Header)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req rpc.SubmitRevisionRequest
	if err := c.Bind(&req); err != nil {
		return domain.E(domain.KindInvalidArgument, "invalid payload")
	}

	travel, err := h.travel.SubmitRevision(c.Request().Context(), caller, ports.SubmitRevisionInput{
		ID:          id,
		StartDate:   req.ProposedStartDate.Time(),
		EndDate:     req.ProposedEndDate.Time(),
		Destination: req.ProposedDestination,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rpc.TravelToPayload(travel))
}

func (h *Handler) ApproveRevision(c echo.Context) error {
	return h.resolveRevision(c, h.travel.ApproveRevision)
}

func (h *Handler) RejectRevision(c echo.Context) error {
	return h.resolveRevision(c, h.travel.RejectRevision)
}

func (h *Handler) resolveRevision(c echo.Context, resolve func(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error)) error {
	caller, err := rpc.AuthFromHeaders(c.Request().Header)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	travel, err := resolve(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rpc.TravelToPayload(travel))
}

func (h *Handler) Delete(c echo.Context) error {
	caller, err := rpc.AuthFromHeaders(c.Request().Header)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.travel.DeleteTravel(c.Request().Context(), caller, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.E(domain.KindInvalidArgument, "invalid travel id")
	}
	return id, nil
}
