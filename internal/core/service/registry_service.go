package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/idekita/idekita-api/internal/core/domain"
	"github.com/idekita/idekita-api/internal/core/ports"
)

// AvailabilityCache remembers handles known to be taken, so repeated
// keystroke probes for popular names skip the store. Only negative results
// are cached: "available" can go stale the moment someone else commits.
type AvailabilityCache interface {
	IsKnownTaken(ctx context.Context, handle string) (bool, error)
	MarkTaken(ctx context.Context, handle string) error
}

type registryService struct {
	repo   ports.RegistryRepository
	cache  AvailabilityCache
	policy domain.HandlePolicy
	log    zerolog.Logger
}

// NewRegistryService returns a RegistryService implementation. cache may be
// nil, in which case every probe hits the store.
func NewRegistryService(repo ports.RegistryRepository, cache AvailabilityCache, policy domain.HandlePolicy, log zerolog.Logger) ports.RegistryService {
	return &registryService{repo: repo, cache: cache, policy: policy, log: log}
}

// CheckAvailability reports whether the handle could currently be claimed.
// Advisory only; Register re-checks at commit time.
func (s *registryService) CheckAvailability(ctx context.Context, handle string) (bool, error) {
	if !s.policy.Valid(handle) {
		return false, nil
	}

	if s.cache != nil {
		taken, err := s.cache.IsKnownTaken(ctx, handle)
		if err != nil {
			s.log.Warn().Err(err).Str("handle", handle).Msg("availability cache read failed, falling through")
		} else if taken {
			return false, nil
		}
	}

	exists, err := s.repo.ReservationExists(ctx, handle)
	if err != nil {
		return false, fmt.Errorf("check availability: %w", err)
	}
	if exists {
		s.cacheTaken(ctx, handle)
		return false, nil
	}
	return true, nil
}

// Register claims the handle and writes the profile in one commit. The
// client-side probe is never trusted: uniqueness is enforced by the
// reservation insert's key-absence precondition inside the commit.
func (s *registryService) Register(ctx context.Context, in ports.RegisterInput) (*domain.UserProfile, error) {
	if !s.policy.Valid(in.Handle) {
		return nil, domain.ErrInvalidHandle
	}

	now := time.Now().UTC()
	profile := &domain.UserProfile{
		UID:         in.UID,
		Username:    in.Handle,
		DisplayName: in.DisplayName,
		Email:       in.Email,
		PhotoURL:    in.PhotoURL,
		Bio:         fmt.Sprintf("%s telah terdaftar resmi sebagai Idekiawan! Selamat datang di iDekita - Jembatani ide dan realisasi", in.DisplayName),
		Reports:     0,
		Title:       domain.DefaultTitleSlots(),
		Notifications: []domain.Notification{{
			Message:   "Selamat bergabung di iDekita 😉!",
			CreatedAt: now,
		}},
		DateJoined: now,
	}
	res := &domain.HandleReservation{Handle: in.Handle, UID: in.UID}

	if err := s.repo.Reserve(ctx, profile, res); err != nil {
		if errors.Is(err, domain.ErrHandleTaken) {
			s.cacheTaken(ctx, in.Handle)
			return nil, err
		}
		if errors.Is(err, domain.ErrAlreadyRegistered) {
			return nil, err
		}
		s.log.Error().Err(err).Str("handle", in.Handle).Str("uid", in.UID).Msg("registration commit failed")
		return nil, fmt.Errorf("register: %w", err)
	}

	s.cacheTaken(ctx, in.Handle)
	s.log.Info().Str("handle", in.Handle).Str("uid", in.UID).Msg("username registered")
	return profile, nil
}

func (s *registryService) cacheTaken(ctx context.Context, handle string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.MarkTaken(ctx, handle); err != nil {
		s.log.Warn().Err(err).Str("handle", handle).Msg("failed to cache taken handle")
	}
}
