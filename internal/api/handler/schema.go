package handler

import (
	"time"

	"github.com/idekita/idekita-api/internal/core/domain"
)

// registerRequest is the body of POST /register. The handle's real syntax
// check lives in the domain policy; the tag only bounds obviously broken
// input before it reaches the service.
type registerRequest struct {
	Username string `json:"username" validate:"required,max=64"`
}

type profileResponse struct {
	UID         string    `json:"uid"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Email       string    `json:"email"`
	PhotoURL    string    `json:"photo_url"`
	Bio         string    `json:"bio"`
	DateJoined  time.Time `json:"date_joined"`
}

func toProfileResponse(p *domain.UserProfile) profileResponse {
	return profileResponse{
		UID:         p.UID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Email:       p.Email,
		PhotoURL:    p.PhotoURL,
		Bio:         p.Bio,
		DateJoined:  p.DateJoined,
	}
}

type availabilityResponse struct {
	Username  string `json:"username"`
	Valid     bool   `json:"valid"`
	Available bool   `json:"available"`
}

type endorsementResponse struct {
	Post     string `json:"post"`
	Endorsed bool   `json:"endorsed"`
}

type feedPostResponse struct {
	AuthorUID   string    `json:"author_uid"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Background  string    `json:"background"`
	Cloud       int64     `json:"cloud"`
	DateCreated time.Time `json:"date_created"`
	DateUpdated time.Time `json:"date_updated"`
}

type feedResponse struct {
	Posts []feedPostResponse `json:"posts"`
	End   bool               `json:"end"`
	// NextCursor is the value to pass back as ?after= for the next page.
	// Omitted on an empty page.
	NextCursor *time.Time `json:"next_cursor,omitempty"`
}

func toFeedResponse(posts []*domain.Post, end bool, next time.Time) feedResponse {
	items := make([]feedPostResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, feedPostResponse{
			AuthorUID:   p.AuthorUID,
			Slug:        p.Slug,
			Title:       p.Title,
			Background:  p.Background,
			Cloud:       p.Cloud,
			DateCreated: p.DateCreated,
			DateUpdated: p.DateUpdated,
		})
	}
	resp := feedResponse{Posts: items, End: end}
	if !next.IsZero() {
		resp.NextCursor = &next
	}
	return resp
}
