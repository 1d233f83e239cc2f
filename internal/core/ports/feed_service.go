package ports

import (
	"context"
	"time"

	"github.com/idekita/idekita-api/internal/core/domain"
)

// FeedPage is one page of the feed. End is the short-page heuristic: true
// when fewer posts came back than were asked for. A short page can occur
// without being the true end when writers are racing the scan; acceptable
// for a best-effort feed.
type FeedPage struct {
	Posts []*domain.Post
	End   bool
	// NextCursor is the creation timestamp of the last post on the page,
	// zero when the page is empty. Feed it to NextPage to resume.
	NextCursor time.Time
}

// FeedService produces the cursor-resumable post feed. The service holds no
// state between calls; the browsing session owns its accumulated posts and
// end flag.
type FeedService interface {
	FirstPage(ctx context.Context, pageSize int) (*FeedPage, error)
	NextPage(ctx context.Context, cursor time.Time, pageSize int) (*FeedPage, error)
}
