package ports

import (
	"context"
	"time"

	"github.com/idekita/idekita-api/internal/core/domain"
)

// FeedQuery carries the range-query parameters for one feed page.
type FeedQuery struct {
	// StartAfter, when non-nil, restricts the scan to posts created strictly
	// before this instant (the previous page's last item).
	StartAfter *time.Time
	// Limit is the maximum number of posts to return.
	Limit int
}

// PostRepository defines read operations over the cross-author post
// collection. This subsystem never writes posts except through the
// endorsement count increment.
type PostRepository interface {
	// ListByCreated returns up to q.Limit posts ordered by creation time
	// descending, newest first.
	ListByCreated(ctx context.Context, q FeedQuery) ([]*domain.Post, error)

	FindByID(ctx context.Context, id domain.PostID) (*domain.Post, error)
}
