package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
	"github.com/tripfolio/travel-platform/internal/rpc"
)

// TravelClient calls the travel service over internal HTTP, forwarding the
// caller identity as metadata on every request.
type TravelClient struct {
	rpc *rpc.Client
}

func NewTravelClient(baseURL string, timeout time.Duration) *TravelClient {
	return &TravelClient{rpc: rpc.NewClient(baseURL, timeout)}
}

func (c *TravelClient) CreateTravel(ctx context.Context, caller ports.AuthContext, in ports.CreateTravelInput) (*domain.Travel, error) {
	var payload rpc.TravelPayload
	err := c.rpc.Do(ctx, http.MethodPost, "/internal/v1/travels", &caller, rpc.CreateTravelRequest{
		UserID:      in.OwnerID,
		StartDate:   rpc.NewTimestamp(in.StartDate),
		EndDate:     rpc.NewTimestamp(in.EndDate),
		Destination: in.Destination,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return rpc.PayloadToTravel(payload), nil
}

func (c *TravelClient) GetTravel(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error) {
	var payload rpc.TravelPayload
	if err := c.rpc.Do(ctx, http.MethodGet, fmt.Sprintf("/internal/v1/travels/%d", id), &caller, nil, &payload); err != nil {
		return nil, err
	}
	return rpc.PayloadToTravel(payload), nil
}

func (c *TravelClient) ListTravels(ctx context.Context, caller ports.AuthContext, in ports.ListTravelsInput) (*ports.TravelPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(in.Page))
	params.Set("limit", strconv.Itoa(in.Limit))
	params.Set("sort", string(in.Sort))
	params.Set("sortOrder", string(in.Order))

	var resp rpc.ListTravelsResponse
	if err := c.rpc.Do(ctx, http.MethodGet, "/internal/v1/travels?"+params.Encode(), &caller, nil, &resp); err != nil {
		return nil, err
	}

	items := make([]*domain.Travel, 0, len(resp.Items))
	for _, p := range resp.Items {
		items = append(items, rpc.PayloadToTravel(p))
	}
	return &ports.TravelPage{
		Items:        items,
		TotalCount:   resp.TotalCount,
		TotalPages:   resp.TotalPages,
		CurrentPage:  resp.CurrentPage,
		ItemsPerPage: resp.ItemsPerPage,
	}, nil
}

func (c *TravelClient) UpdateTravel(ctx context.Context, caller ports.AuthContext, in ports.UpdateTravelInput) (*domain.Travel, error) {
	var payload rpc.TravelPayload
	err := c.rpc.Do(ctx, http.MethodPut, fmt.Sprintf("/internal/v1/travels/%d", in.ID), &caller, rpc.UpdateTravelRequest{
		StartDate:   rpc.NewTimestamp(in.StartDate),
		EndDate:     rpc.NewTimestamp(in.EndDate),
		Destination: in.Destination,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return rpc.PayloadToTravel(payload), nil
}

func (c *TravelClient) SubmitRevision(ctx context.Context, caller ports.AuthContext, in ports.SubmitRevisionInput) (*domain.Travel, error) {
	var payload rpc.TravelPayload
	err := c.rpc.Do(ctx, http.MethodPost, fmt.Sprintf("/internal/v1/travels/%d/revision", in.ID), &caller, rpc.SubmitRevisionRequest{
		ProposedStartDate:   rpc.NewTimestamp(in.StartDate),
		ProposedEndDate:     rpc.NewTimestamp(in.EndDate),
		ProposedDestination: in.Destination,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return rpc.PayloadToTravel(payload), nil
}

func (c *TravelClient) ApproveRevision(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error) {
	var payload rpc.TravelPayload
	if err := c.rpc.Do(ctx, http.MethodPost, fmt.Sprintf("/internal/v1/travels/%d/revision/approve", id), &caller, nil, &payload); err != nil {
		return nil, err
	}
	return rpc.PayloadToTravel(payload), nil
}

func (c *TravelClient) RejectRevision(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error) {
	var payload rpc.TravelPayload
	if err := c.rpc.Do(ctx, http.MethodPost, fmt.Sprintf("/internal/v1/travels/%d/revision/reject", id), &caller, nil, &payload); err != nil {
		return nil, err
	}
	return rpc.PayloadToTravel(payload), nil
}

func (c *TravelClient) DeleteTravel(ctx context.Context, caller ports.AuthContext, id int64) error {
	return c.rpc.Do(ctx, http.MethodDelete, fmt.Sprintf("/internal/v1/travels/%d", id), &caller, nil, nil)
}

var _ ports.TravelService = (*TravelClient)(nil)
