package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/idekita/idekita-api/internal/core/ports"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

// feedService pages through the cross-author post collection. Every page
// orders by creation time descending. The resume key must be an immutable
// field: paging on update time would let edited posts move between pages
// mid-session.
type feedService struct {
	repo ports.PostRepository
	log  zerolog.Logger
}

// NewFeedService returns a FeedService implementation.
func NewFeedService(repo ports.PostRepository, log zerolog.Logger) ports.FeedService {
	return &feedService{repo: repo, log: log}
}

func (s *feedService) FirstPage(ctx context.Context, pageSize int) (*ports.FeedPage, error) {
	return s.page(ctx, nil, pageSize)
}

func (s *feedService) NextPage(ctx context.Context, cursor time.Time, pageSize int) (*ports.FeedPage, error) {
	return s.page(ctx, &cursor, pageSize)
}

func (s *feedService) page(ctx context.Context, after *time.Time, pageSize int) (*ports.FeedPage, error) {
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	posts, err := s.repo.ListByCreated(ctx, ports.FeedQuery{StartAfter: after, Limit: pageSize})
	if err != nil {
		s.log.Error().Err(err).Msg("feed query failed")
		return nil, fmt.Errorf("feed page: %w", err)
	}

	page := &ports.FeedPage{
		Posts: posts,
		// Short page means exhausted. A racing writer can make this fire
		// early; tolerable for a best-effort feed.
		End: len(posts) < pageSize,
	}
	if len(posts) > 0 {
		page.NextCursor = posts[len(posts)-1].DateCreated
	}
	return page, nil
}
