package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tripfolio/travel-platform/internal/core/domain"
	"github.com/tripfolio/travel-platform/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// TravelService owns the travel record lifecycle and its revision state
// machine. Every operation re-checks the caller identity supplied as call
// metadata; the gateway's own role check is never trusted here.
type TravelService struct {
	repo     ports.TravelRepository
	identity ports.IdentityDirectory
	audit    ports.AuditPublisher
	logger   zerolog.Logger
	now      func() time.Time
}

// NewTravelService wires the record store, the identity directory used to
// verify record owners, and an optional audit publisher (nil disables it).
func NewTravelService(repo ports.TravelRepository, identity ports.IdentityDirectory, audit ports.AuditPublisher, logger zerolog.Logger) *TravelService {
	return &TravelService{
		repo:     repo,
		identity: identity,
		audit:    audit,
		logger:   logger,
		now:      time.Now,
	}
}

func (s *TravelService) CreateTravel(ctx context.Context, caller ports.AuthContext, in ports.CreateTravelInput) (*domain.Travel, error) {
	if err := requireAdmin(caller, "only admins can create travel records"); err != nil {
		return nil, err
	}

	// The designated owner must exist and currently hold the tourist role.
	// This is a deliberate remote call so a stale or mistyped owner id is
	// caught before the record exists.
	owner, err := s.identity.GetUserByID(ctx, in.OwnerID)
	if err != nil || owner.Role != domain.RoleTourist {
		return nil, domain.E(domain.KindPermissionDenied, "user does not exist or is not a tourist")
	}

	travel, err := domain.NewTravel(in.OwnerID, in.StartDate, in.EndDate, in.Destination, s.now().UTC())
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, travel)
	if err != nil {
		return nil, s.internal(err, "create travel failed")
	}

	s.logger.Info().Int64("travel_id", created.ID).Int64("owner_id", created.OwnerID).Msg("travel record created")
	s.publish(ports.AuditTravelCreated, created.ID, caller)
	return created, nil
}

func (s *TravelService) GetTravel(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error) {
	travel, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := requireAdminOrOwner(caller, travel); err != nil {
		return nil, err
	}
	return travel, nil
}

func (s *TravelService) ListTravels(ctx context.Context, caller ports.AuthContext, in ports.ListTravelsInput) (*ports.TravelPage, error) {
	page := in.Page
	if page < 1 {
		page = defaultPage
	}
	limit := in.Limit
	if limit < 1 {
		limit = defaultLimit
	}

	q := ports.TravelQuery{
		Page:  page,
		Limit: limit,
		Sort:  in.Sort,
		Order: in.Order,
	}
	// Tourists only ever see their own records; the filter is applied in
	// the store query, never after the fact.
	if caller.Role != domain.RoleAdmin {
		q.OwnerID = caller.UserID
	}

	items, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, s.internal(err, "list travels failed")
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &ports.TravelPage{
		Items:        items,
		TotalCount:   total,
		TotalPages:   totalPages,
		CurrentPage:  page,
		ItemsPerPage: limit,
	}, nil
}

func (s *TravelService) UpdateTravel(ctx context.Context, caller ports.AuthContext, in ports.UpdateTravelInput) (*domain.Travel, error) {
	if err := requireAdmin(caller, "only admins can update travel records"); err != nil {
		return nil, err
	}

	travel, err := s.find(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if err := travel.Replace(in.StartDate, in.EndDate, in.Destination, s.now().UTC()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, travel); err != nil {
		return nil, s.internal(err, "update travel failed")
	}

	s.publish(ports.AuditTravelUpdated, travel.ID, caller)
	return travel, nil
}

func (s *TravelService) SubmitRevision(ctx context.Context, caller ports.AuthContext, in ports.SubmitRevisionInput) (*domain.Travel, error) {
	travel, err := s.find(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if caller.Role != domain.RoleTourist || travel.OwnerID != caller.UserID {
		return nil, domain.E(domain.KindPermissionDenied, "you do not have permission to submit a revision for this travel record")
	}

	if err := travel.SubmitRevision(in.StartDate, in.EndDate, in.Destination, s.now().UTC()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, travel); err != nil {
		return nil, s.internal(err, "submit revision failed")
	}

	s.logger.Info().Int64("travel_id", travel.ID).Int64("owner_id", travel.OwnerID).Msg("revision submitted")
	s.publish(ports.AuditTravelRevisionSubmitted, travel.ID, caller)
	return travel, nil
}

func (s *TravelService) ApproveRevision(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error) {
	if err := requireAdmin(caller, "only admins can approve revisions"); err != nil {
		return nil, err
	}

	travel, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := travel.ApproveRevision(s.now().UTC()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, travel); err != nil {
		return nil, s.internal(err, "approve revision failed")
	}

	s.logger.Info().Int64("travel_id", travel.ID).Msg("revision approved")
	s.publish(ports.AuditTravelRevisionApproved, travel.ID, caller)
	return travel, nil
}

func (s *TravelService) RejectRevision(ctx context.Context, caller ports.AuthContext, id int64) (*domain.Travel, error) {
	if err := requireAdmin(caller, "only admins can reject revisions"); err != nil {
		return nil, err
	}

	travel, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := travel.RejectRevision(s.now().UTC()); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, travel); err != nil {
		return nil, s.internal(err, "reject revision failed")
	}

	s.logger.Info().Int64("travel_id", travel.ID).Msg("revision rejected")
	s.publish(ports.AuditTravelRevisionRejected, travel.ID, caller)
	return travel, nil
}

func (s *TravelService) DeleteTravel(ctx context.Context, caller ports.AuthContext, id int64) error {
	if err := requireAdmin(caller, "only admins can remove travel records"); err != nil {
		return err
	}

	if _, err := s.find(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return err
		}
		return s.internal(err, "delete travel failed")
	}

	s.logger.Info().Int64("travel_id", id).Msg("travel record deleted")
	s.publish(ports.AuditTravelDeleted, id, caller)
	return nil
}

func (s *TravelService) find(ctx context.Context, id int64) (*domain.Travel, error) {
	travel, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, err
		}
		return nil, s.internal(err, "travel lookup failed")
	}
	return travel, nil
}

func (s *TravelService) publish(eventType string, travelID int64, caller ports.AuthContext) {
	if s.audit == nil {
		return
	}
	s.audit.Enqueue(ports.AuditEvent{
		Type:       eventType,
		TravelID:   travelID,
		ActorID:    caller.UserID,
		ActorRole:  caller.Role,
		OccurredAt: s.now().UTC(),
	})
}

func (s *TravelService) internal(err error, msg string) error {
	s.logger.Error().Err(err).Msg(msg)
	return domain.E(domain.KindInternal, "internal server error")
}

func requireAdmin(caller ports.AuthContext, denied string) error {
	if caller.Role != domain.RoleAdmin {
		return domain.E(domain.KindPermissionDenied, denied)
	}
	return nil
}

func requireAdminOrOwner(caller ports.AuthContext, travel *domain.Travel) error {
	if caller.Role == domain.RoleAdmin || travel.OwnerID == caller.UserID {
		return nil
	}
	return domain.E(domain.KindPermissionDenied, "unauthorized")
}

var _ ports.TravelService = (*TravelService)(nil)
