package ports

import (
	"context"

	"github.com/idekita/idekita-api/internal/core/domain"
)

// RegistryRepository defines persistence operations for profiles and
// username reservations.
type RegistryRepository interface {
	// ReservationExists reports whether the handle is already claimed.
	// The result can go stale before the caller commits; Reserve is the
	// only authority on uniqueness.
	ReservationExists(ctx context.Context, handle string) (bool, error)

	// Reserve writes the profile and its HandleReservation as one atomic
	// commit. The reservation insert is conditional on the handle key being
	// absent at commit time: a concurrent claim of the same handle surfaces
	// as domain.ErrHandleTaken with neither document written. A profile
	// that already carries a username fails with domain.ErrAlreadyRegistered.
	Reserve(ctx context.Context, profile *domain.UserProfile, res *domain.HandleReservation) error

	FindProfile(ctx context.Context, uid string) (*domain.UserProfile, error)
}
