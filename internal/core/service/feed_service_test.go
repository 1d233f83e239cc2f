package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/idekita/idekita-api/internal/core/domain"
	"github.com/idekita/idekita-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubPostRepo struct {
	posts   []*domain.Post
	listErr error
}

// ListByCreated applies the same ordering and cursor filter the Mongo
// repository issues.
func (r *stubPostRepo) ListByCreated(_ context.Context, q ports.FeedQuery) ([]*domain.Post, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}

	var matched []*domain.Post
	for _, p := range r.posts {
		if q.StartAfter != nil && !p.DateCreated.Before(*q.StartAfter) {
			continue
		}
		matched = append(matched, p)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].DateCreated.After(matched[j].DateCreated)
	})
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id domain.PostID) (*domain.Post, error) {
	for _, p := range r.posts {
		if p.PostID() == id {
			return p, nil
		}
	}
	return nil, domain.ErrPostNotFound
}

// seedPosts creates n posts, one minute apart, newest last-created.
func seedPosts(n int) []*domain.Post {
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	posts := make([]*domain.Post, 0, n)
	for i := 0; i < n; i++ {
		created := base.Add(time.Duration(i) * time.Minute)
		posts = append(posts, &domain.Post{
			ID:          fmt.Sprintf("author/idea-%02d", i),
			AuthorUID:   "author",
			Slug:        fmt.Sprintf("idea-%02d", i),
			Title:       fmt.Sprintf("Idea %02d", i),
			DateCreated: created,
			// Older posts edited recently: update time deliberately does
			// not track creation order.
			DateUpdated: base.Add(time.Duration(n-i) * time.Hour),
		})
	}
	return posts
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestFeed_FirstThenNextNoOverlap(t *testing.T) {
	repo := &stubPostRepo{posts: seedPosts(25)}
	svc := NewFeedService(repo, discardLogger)

	first, err := svc.FirstPage(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(first.Posts) != 10 {
		t.Fatalf("first page len = %d, want 10", len(first.Posts))
	}
	if first.End {
		t.Fatal("full first page must not report end")
	}

	next, err := svc.NextPage(context.Background(), first.NextCursor, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(next.Posts) != 10 {
		t.Fatalf("next page len = %d, want 10", len(next.Posts))
	}

	seen := make(map[string]bool)
	for _, p := range first.Posts {
		seen[p.ID] = true
	}
	for _, p := range next.Posts {
		if seen[p.ID] {
			t.Fatalf("post %s appears on both pages", p.ID)
		}
		if !p.DateCreated.Before(first.NextCursor) {
			t.Fatalf("post %s is not strictly older than the cursor", p.ID)
		}
	}
}

func TestFeed_OrderedNewestFirst(t *testing.T) {
	repo := &stubPostRepo{posts: seedPosts(12)}
	svc := NewFeedService(repo, discardLogger)

	page, err := svc.FirstPage(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(page.Posts); i++ {
		if page.Posts[i].DateCreated.After(page.Posts[i-1].DateCreated) {
			t.Fatalf("page not ordered by creation time descending at index %d", i)
		}
	}
	// Creation time decides order even when update times disagree.
	if page.Posts[0].Slug != "idea-11" {
		t.Fatalf("newest-created post should lead, got %s", page.Posts[0].Slug)
	}
}

func TestFeed_ShortPageSignalsEnd(t *testing.T) {
	repo := &stubPostRepo{posts: seedPosts(17)}
	svc := NewFeedService(repo, discardLogger)

	first, err := svc.FirstPage(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if first.End {
		t.Fatal("page of exactly 10 must not report end")
	}

	next, err := svc.NextPage(context.Background(), first.NextCursor, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(next.Posts) != 7 {
		t.Fatalf("next page len = %d, want 7", len(next.Posts))
	}
	if !next.End {
		t.Fatal("short page (7 < 10) must report end")
	}
}

func TestFeed_EmptyCollection(t *testing.T) {
	repo := &stubPostRepo{}
	svc := NewFeedService(repo, discardLogger)

	page, err := svc.FirstPage(context.Background(), 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Posts) != 0 || !page.End {
		t.Fatalf("empty feed: %+v", page)
	}
	if !page.NextCursor.IsZero() {
		t.Fatal("empty page must carry a zero cursor")
	}
}

func TestFeed_PageSizeBounds(t *testing.T) {
	repo := &stubPostRepo{posts: seedPosts(60)}
	svc := NewFeedService(repo, discardLogger)

	// Non-positive size falls back to the default.
	page, err := svc.FirstPage(context.Background(), 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Posts) != defaultPageSize {
		t.Fatalf("default page len = %d, want %d", len(page.Posts), defaultPageSize)
	}

	// Oversized requests are capped.
	page, err = svc.FirstPage(context.Background(), 500)
	if err != nil {
		t.Fatal(err)
	}
	if len(page.Posts) != maxPageSize {
		t.Fatalf("capped page len = %d, want %d", len(page.Posts), maxPageSize)
	}
}

func TestFeed_StoreErrorPropagates(t *testing.T) {
	repo := &stubPostRepo{listErr: errors.New("store unavailable")}
	svc := NewFeedService(repo, discardLogger)

	if _, err := svc.FirstPage(context.Background(), 10); err == nil {
		t.Fatal("expected error from failing store")
	}
}
