package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
	"github.com/tripfolio/travel-platform/internal/rpc"
)

func signUpInput(username, password, fullName string, role domain.Role) ports.SignUpInput {
	return ports.SignUpInput{Username: username, Password: password, FullName: fullName, Role: role}
}

func TestTravelClient_ForwardsCallerMetadata(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("user-id"); got != "42" {
			t.Fatalf("user-id metadata missing, got %q", got)
		}
		if got := r.Header.Get("role"); got != "tourist" {
			t.Fatalf("role metadata missing, got %q", got)
		}
		now := time.Now().UTC()
		_ = json.NewEncoder(w).Encode(rpc.TravelPayload{
			ID: 1, UserID: 42,
			StartDate:   rpc.NewTimestamp(now),
			EndDate:     rpc.NewTimestamp(now),
			Destination: "PARIS",
			CreatedDate: rpc.NewTimestamp(now),
			UpdatedDate: rpc.NewTimestamp(now),
		})
	}))
	defer srv.Close()

	c := NewTravelClient(srv.URL, time.Second)
	caller := ports.AuthContext{UserID: 42, Role: domain.RoleTourist}

	travel, err := c.GetTravel(context.Background(), caller, 1)
	if err != nil {
		t.Fatalf("get travel: %v", err)
	}
	if travel.ID != 1 || travel.OwnerID != 42 || travel.Destination != "PARIS" {
		t.Fatalf("unexpected travel: %+v", travel)
	}
	if travel.PendingRevision() {
		t.Fatalf("payload without proposed fields must decode clean")
	}
}

func TestTravelClient_ListPassesQueryAndDecodesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "2" || q.Get("limit") != "5" || q.Get("sort") != "createdDate" || q.Get("sortOrder") != "ASC" {
			t.Fatalf("unexpected query: %v", q)
		}
		_ = json.NewEncoder(w).Encode(rpc.ListTravelsResponse{
			Items: []rpc.TravelPayload{}, TotalCount: 11, TotalPages: 3, CurrentPage: 2, ItemsPerPage: 5,
		})
	}))
	defer srv.Close()

	c := NewTravelClient(srv.URL, time.Second)
	caller := ports.AuthContext{UserID: 1, Role: domain.RoleAdmin}

	page, err := c.ListTravels(context.Background(), caller, ports.ListTravelsInput{
		Page: 2, Limit: 5, Sort: ports.SortCreatedDate, Order: ports.SortAsc,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if page.TotalCount != 11 || page.TotalPages != 3 || page.CurrentPage != 2 || page.ItemsPerPage != 5 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestTravelClient_FailedPreconditionSurvives(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code, body := rpc.EncodeError(domain.E(domain.KindFailedPrecondition, "no proposed revisions to approve"))
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	c := NewTravelClient(srv.URL, time.Second)
	caller := ports.AuthContext{UserID: 1, Role: domain.RoleAdmin}

	_, err := c.ApproveRevision(context.Background(), caller, 1)
	if domain.KindOf(err) != domain.KindFailedPrecondition {
		t.Fatalf("expected failed precondition, got %v", err)
	}
}
