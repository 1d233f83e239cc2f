package domain

import (
	"fmt"
	"time"
)

// Endorsement is a permanent approval fact: at most one per (post, user)
// pair, ever. It is created exactly once and never mutated or deleted.
type Endorsement struct {
	PostID    PostID    `json:"post_id" bson:"post_id"`
	UID       string    `json:"uid" bson:"uid"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Key returns the document key used as the endorsement's _id. Key uniqueness
// in the store is what enforces the one-per-(post,user) invariant at commit
// time, not any prior read.
func (e Endorsement) Key() string {
	return EndorsementKey(e.PostID, e.UID)
}

// EndorsementKey builds the composite document key for a (post, user) pair.
func EndorsementKey(postID PostID, uid string) string {
	return fmt.Sprintf("%s/%s", postID.Key(), uid)
}
