package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/SamDTech/realtor-api/internal/domain"
	"github.com/SamDTech/realtor-api/internal/events"
	"github.com/SamDTech/realtor-api/internal/repository"
	apperrors "github.com/SamDTech/realtor-api/pkg/util"
)

// HomeService coordinates listing CRUD and buyer inquiries. Mutations and
// inquiry reads are bound to the owning realtor.
type HomeService struct {
	homes      repository.HomeRepository
	inquiries  repository.InquiryRepository
	dispatcher events.Dispatcher
}

// NewHomeService builds the service.
func NewHomeService(homes repository.HomeRepository, inquiries repository.InquiryRepository, dispatcher events.Dispatcher) *HomeService {
	return &HomeService{homes: homes, inquiries: inquiries, dispatcher: dispatcher}
}

// List returns listings matching the filter.
func (s *HomeService) List(ctx context.Context, filter domain.HomeFilter) ([]*domain.Home, error) {
	return s.homes.List(ctx, filter)
}

// Get returns one listing by id.
func (s *HomeService) Get(ctx context.Context, id int64) (*domain.Home, error) {
	home, err := s.homes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("home", nil)
		}
		return nil, err
	}
	return home, nil
}

// Create stores a listing owned by the acting realtor.
func (s *HomeService) Create(ctx context.Context, home *domain.Home, realtorID int64) (*domain.Home, error) {
	home.RealtorID = realtorID
	if err := s.homes.Create(ctx, home); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:    events.EventHomeCreated,
			HomeID:  home.ID,
			UserID:  realtorID,
			Payload: map[string]any{"city": home.City},
		})
	}
	return home, nil
}

// Update applies a partial update after the ownership check.
func (s *HomeService) Update(ctx context.Context, id int64, update domain.HomeUpdate, actorID int64) (*domain.Home, error) {
	if err := s.checkOwnership(ctx, id, actorID); err != nil {
		return nil, err
	}
	home, err := s.homes.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("home", nil)
		}
		return nil, err
	}
	return home, nil
}

// Delete removes a listing after the ownership check.
func (s *HomeService) Delete(ctx context.Context, id int64, actorID int64) error {
	if err := s.checkOwnership(ctx, id, actorID); err != nil {
		return err
	}
	if err := s.homes.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("home", nil)
		}
		return err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:   events.EventHomeDeleted,
			HomeID: id,
			UserID: actorID,
		})
	}
	return nil
}

// Inquire records a buyer message against a listing.
func (s *HomeService) Inquire(ctx context.Context, homeID, buyerID int64, message string) (*domain.Inquiry, error) {
	owner, err := s.homes.GetOwner(ctx, homeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("home", nil)
		}
		return nil, err
	}

	inquiry := &domain.Inquiry{
		HomeID:    homeID,
		RealtorID: owner,
		BuyerID:   buyerID,
		Message:   message,
	}
	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:    events.EventInquiryCreated,
			HomeID:  homeID,
			UserID:  buyerID,
			Payload: map[string]any{"realtor_id": owner},
		})
	}
	return inquiry, nil
}

// ListInquiries returns a listing's inquiries to its owning realtor.
func (s *HomeService) ListInquiries(ctx context.Context, homeID, actorID int64) ([]*domain.Inquiry, error) {
	if err := s.checkOwnership(ctx, homeID, actorID); err != nil {
		return nil, err
	}
	return s.inquiries.ListByHome(ctx, homeID)
}

// checkOwnership resolves the owning realtor and compares it to the actor.
// A missing listing is reported as not found, never as an ownership verdict.
func (s *HomeService) checkOwnership(ctx context.Context, homeID, actorID int64) error {
	owner, err := s.homes.GetOwner(ctx, homeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("home", nil)
		}
		return err
	}
	if owner != actorID {
		return apperrors.NewForbidden("not the owner of this home")
	}
	return nil
}
