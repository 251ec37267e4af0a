package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
	"github.com/tripfolio/travel-platform/internal/rpc"
)

type stubTravel struct {
	createFn  func(ctx context.Context, caller ports.AuthContext, in ports.CreateTravelInput) (*domain.Travel, error)
	getFn     func(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error)
	listFn    func(ctx context.Context, caller ports.AuthContext, in ports.ListTravelsInput) (*ports.TravelPage, error)
	updateFn  func(ctx context.Context, caller ports.AuthContext, in ports.UpdateTravelInput) (*domain.Travel, error)
	submitFn  func(ctx context.Context, caller ports.AuthContext, in ports.SubmitRevisionInput) (*domain.Travel, error)
	approveFn func(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error)
	rejectFn  func(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error)
	deleteFn  func(ctx context.Context, caller ports.AuthContext, id int64) error
}

func (s *stubTravel) CreateTravel(ctx context.Context, caller ports.AuthContext, in ports.CreateTravelInput) (*domain.Travel, error) {
	return s.createFn(ctx, caller, in)
}

func (s *stubTravel) GetTravel(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error) {
	return s.getFn(ctx, caller, id)
}

func (s *stubTravel) ListTravels(ctx context.Context, caller ports.AuthContext, in ports.ListTravelsInput) (*ports.TravelPage, error) {
	return s.listFn(ctx, caller, in)
}

func (s *stubTravel) UpdateTravel(ctx context.Context, caller ports.AuthContext, in ports.UpdateTravelInput) (*domain.Travel, error) {
	return s.updateFn(ctx, caller, in)
}

func (s *stubTravel) SubmitRevision(ctx context.Context, caller ports.AuthContext, in ports.SubmitRevisionInput) (*domain.Travel, error) {
	return s.submitFn(ctx, caller, in)
}

func (s *stubTravel) ApproveRevision(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error) {
	return s.approveFn(ctx, caller, id)
}

func (s *stubTravel) RejectRevision(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error) {
	return s.rejectFn(ctx, caller, id)
}

func (s *stubTravel) DeleteTravel(ctx context.Context, caller ports.AuthContext, id int64) error {
	return s.deleteFn(ctx, caller, id)
}

func sampleTravel() *domain.Travel {
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Travel{
		ID:          3,
		OwnerID:     42,
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 7),
		Destination: "LISBON",
		CreatedDate: start,
		UpdatedDate: start,
	}
}

func doRequest(e *echo.Echo, method, target string, caller *ports.AuthContext, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if caller != nil {
		rpc.SetAuthHeaders(req.Header, *caller)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreate_ForwardsCallerMetadata(t *testing.T) {
	stub := &stubTravel{
		createFn: func(ctx context.Context, caller ports.AuthContext, in ports.CreateTravelInput) (*domain.Travel, error) {
			if caller.UserID != 1 || caller.Role != domain.RoleAdmin {
				t.Fatalf("unexpected caller: %+v", caller)
			}
			if in.OwnerID != 42 || in.Destination != "Lisbon" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return sampleTravel(), nil
		},
	}
	e := NewRouter(stub, nil, zerolog.Nop())

	caller := ports.AuthContext{UserID: 1, Role: domain.RoleAdmin}
	body := `{"user_id":42,"start_date":{"seconds":1777680000},"end_date":{"seconds":1778284800},"destination":"Lisbon"}`
	rec := doRequest(e, http.MethodPost, "/internal/v1/travels", &caller, body)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["destination"] != "LISBON" || resp["user_id"] != float64(42) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestCreate_MissingMetadataIsUnauthenticated(t *testing.T) {
	stub := &stubTravel{
		createFn: func(ctx context.Context, caller ports.AuthContext, in ports.CreateTravelInput) (*domain.Travel, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	e := NewRouter(stub, nil, zerolog.Nop())

	body := `{"user_id":42,"start_date":{"seconds":1},"end_date":{"seconds":2},"destination":"Lisbon"}`
	rec := doRequest(e, http.MethodPost, "/internal/v1/travels", nil, body)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "UNAUTHENTICATED") {
		t.Fatalf("expected UNAUTHENTICATED kind, got %s", rec.Body.String())
	}
}

func TestList_ParsesQueryDefaults(t *testing.T) {
	stub := &stubTravel{
		listFn: func(ctx context.Context, caller ports.AuthContext, in ports.ListTravelsInput) (*ports.TravelPage, error) {
			if in.Sort != ports.SortCreatedDate || in.Order != ports.SortDesc {
				t.Fatalf("unexpected defaults: %+v", in)
			}
			return &ports.TravelPage{
				Items:        []*domain.Travel{sampleTravel()},
				TotalCount:   1,
				TotalPages:   1,
				CurrentPage:  1,
				ItemsPerPage: 10,
			}, nil
		},
	}
	e := NewRouter(stub, nil, zerolog.Nop())

	caller := ports.AuthContext{UserID: 42, Role: domain.RoleTourist}
	rec := doRequest(e, http.MethodGet, "/internal/v1/travels?sort=bogus&sortOrder=weird", &caller, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["total_count"] != float64(1) || resp["current_page"] != float64(1) {
		t.Fatalf("unexpected page: %+v", resp)
	}
}

func TestList_PassesSortParams(t *testing.T) {
	stub := &stubTravel{
		listFn: func(ctx context.Context, caller ports.AuthContext, in ports.ListTravelsInput) (*ports.TravelPage, error) {
			if in.Page != 2 || in.Limit != 5 || in.Sort != ports.SortEditRequestDate || in.Order != ports.SortAsc {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.TravelPage{CurrentPage: 2, ItemsPerPage: 5}, nil
		},
	}
	e := NewRouter(stub, nil, zerolog.Nop())

	caller := ports.AuthContext{UserID: 1, Role: domain.RoleAdmin}
	rec := doRequest(e, http.MethodGet, "/internal/v1/travels?page=2&limit=5&sort=editRequestDate&sortOrder=asc", &caller, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestApprove_NoPendingRevisionIs412(t *testing.T) {
	stub := &stubTravel{
		approveFn: func(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error) {
			return nil, domain.E(domain.KindFailedPrecondition, "no proposed revisions to approve")
		},
	}
	e := NewRouter(stub, nil, zerolog.Nop())

	caller := ports.AuthContext{UserID: 1, Role: domain.RoleAdmin}
	rec := doRequest(e, http.MethodPost, "/internal/v1/travels/3/revision/approve", &caller, "")

	if rec.Code != http.StatusPreconditionFailed {
		t.Fatalf("expected 412, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "FAILED_PRECONDITION") {
		t.Fatalf("expected FAILED_PRECONDITION kind, got %s", rec.Body.String())
	}
}

func TestDelete_NoContent(t *testing.T) {
	stub := &stubTravel{
		deleteFn: func(ctx context.Context, caller ports.AuthContext, id int64) error {
			if id != 3 {
				t.Fatalf("expected id 3, got %d", id)
			}
			return nil
		},
	}
	e := NewRouter(stub, nil, zerolog.Nop())

	caller := ports.AuthContext{UserID: 1, Role: domain.RoleAdmin}
	rec := doRequest(e, http.MethodDelete, "/internal/v1/travels/3", &caller, "")

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestGet_BadIDIsInvalidArgument(t *testing.T) {
	stub := &stubTravel{
		getFn: func(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	e := NewRouter(stub, nil, zerolog.Nop())

	caller := ports.AuthContext{UserID: 1, Role: domain.RoleAdmin}
	rec := doRequest(e, http.MethodGet, "/internal/v1/travels/zero", &caller, "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSubmitRevision_PendingFieldsInPayload(t *testing.T) {
	stub := &stubTravel{
		submitFn: func(ctx context.Context, caller ports.AuthContext, in ports.SubmitRevisionInput) (*domain.Travel, error) {
			travel := sampleTravel()
			if err := travel.SubmitRevision(in.StartDate, in.EndDate, in.Destination, time.Now().UTC()); err != nil {
				return nil, err
			}
			return travel, nil
		},
	}
	e := NewRouter(stub, nil, zerolog.Nop())

	caller := ports.AuthContext{UserID: 42, Role: domain.RoleTourist}
	body := `{"proposed_start_date":{"seconds":1778284800},"proposed_end_date":{"seconds":1778889600},"proposed_destination":"Porto"}`
	rec := doRequest(e, http.MethodPost, "/internal/v1/travels/3/revision", &caller, body)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var payload rpc.TravelPayload
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if payload.ProposedDestination == nil || *payload.ProposedDestination != "PORTO" {
		t.Fatalf("expected proposed destination PORTO, got %+v", payload.ProposedDestination)
	}
	if payload.EditRequestDate == nil || payload.ProposedStartDate == nil || payload.ProposedEndDate == nil {
		t.Fatalf("expected full proposed field group, got %+v", payload)
	}
}
