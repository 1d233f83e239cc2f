package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrPostNotFound = errors.New("post not found")
var ErrAlreadyEndorsed = errors.New("post already endorsed by this user")
var ErrProfileNotFound = errors.New("profile not found")
var ErrHandleTaken = errors.New("username already taken")
var ErrInvalidHandle = errors.New("invalid username")
var ErrAlreadyRegistered = errors.New("profile already has a username")

// PostID identifies a post by its author and slug. Posts belong to exactly
// one author; the slug is unique within that author's posts.
type PostID struct {
	AuthorUID string `json:"author_uid" bson:"author_uid"`
	Slug      string `json:"slug" bson:"slug"`
}

// Key returns the document key used as the post's _id.
func (id PostID) Key() string {
	return fmt.Sprintf("%s/%s", id.AuthorUID, id.Slug)
}

// Post is the core aggregate. Cloud is a cached projection of the number of
// Endorsement records for this post; it is only ever mutated transactionally
// alongside an Endorsement insert, never recomputed by scanning.
type Post struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	AuthorUID   string    `json:"author_uid" bson:"author_uid"`
	Slug        string    `json:"slug" bson:"slug"`
	Title       string    `json:"title" bson:"title"`
	Content     string    `json:"content" bson:"content"`
	Background  string    `json:"background" bson:"background"`
	Cloud       int64     `json:"cloud" bson:"cloud"`
	DateCreated time.Time `json:"date_created" bson:"date_created"`
	DateUpdated time.Time `json:"date_updated" bson:"date_updated"`
}

// PostID reconstructs the identity pair from the post's own fields.
func (p *Post) PostID() PostID {
	return PostID{AuthorUID: p.AuthorUID, Slug: p.Slug}
}
