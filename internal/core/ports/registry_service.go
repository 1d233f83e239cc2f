package ports

import (
	"context"

	"github.com/idekita/idekita-api/internal/core/domain"
)

// RegisterInput carries everything needed to complete a registration. UID
// and the display fields come from the external auth provider's token; the
// handle is the user's choice.
type RegisterInput struct {
	UID         string
	Handle      string
	DisplayName string
	Email       string
	PhotoURL    string
}

// RegistryService defines use-case operations for claiming usernames.
type RegistryService interface {
	// CheckAvailability reports whether the handle could currently be
	// claimed: syntax-valid and no reservation on record. A true result is
	// advisory only; Register re-checks at commit time.
	CheckAvailability(ctx context.Context, handle string) (bool, error)

	// Register claims the handle for the user and creates their profile in
	// one atomic commit. Fails with domain.ErrInvalidHandle on bad syntax,
	// domain.ErrHandleTaken when the handle was claimed first, and
	// domain.ErrAlreadyRegistered when the profile already has a username.
	Register(ctx context.Context, in RegisterInput) (*domain.UserProfile, error)
}
