package ports

import (
	"context"

	"github.com/idekita/idekita-api/internal/core/domain"
)

// EndorsementService defines use-case operations for endorsing posts.
type EndorsementService interface {
	// HasEndorsed reports whether uid has already endorsed the post.
	// Side-effect free; used to render the already-endorsed state.
	HasEndorsed(ctx context.Context, postID domain.PostID, uid string) (bool, error)

	// AddEndorsement records exactly one endorsement for (postID, uid) and
	// bumps the post's cloud count by one, atomically. Returns
	// domain.ErrAlreadyEndorsed on a repeat call; the count never moves
	// twice for the same pair.
	AddEndorsement(ctx context.Context, postID domain.PostID, uid string) error
}
