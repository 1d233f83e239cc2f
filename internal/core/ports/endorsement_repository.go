package ports

import (
	"context"

	"github.com/idekita/idekita-api/internal/core/domain"
)

// EndorsementRepository defines persistence operations for endorsements.
type EndorsementRepository interface {
	// Exists reports whether an endorsement is recorded for (postID, uid).
	// Point-in-time read; callers must not use it to authorize a write.
	Exists(ctx context.Context, postID domain.PostID, uid string) (bool, error)

	// CreateWithIncrement inserts the endorsement record and increments the
	// post's cloud count as one atomic commit. The insert is conditional on
	// the endorsement key being absent at commit time; a conflicting
	// concurrent commit surfaces as domain.ErrAlreadyEndorsed and leaves no
	// partial state.
	CreateWithIncrement(ctx context.Context, e *domain.Endorsement) error
}
