package domain

import "time"

// TitleSlots is the fixed set of role badges a profile can hold. Every
// profile carries all keys; unearned slots stay empty.
type TitleSlots struct {
	Journey     string `json:"journey" bson:"journey"`
	Supporter   string `json:"supporter" bson:"supporter"`
	Supported   string `json:"supported" bson:"supported"`
	Reporter    string `json:"reporter" bson:"reporter"`
	Category    string `json:"category" bson:"category"`
	Tech        string `json:"tech" bson:"tech"`
	Farm        string `json:"farm" bson:"farm"`
	Creative    string `json:"creative" bson:"creative"`
	Health      string `json:"health" bson:"health"`
	Accountant  string `json:"accountant" bson:"accountant"`
	Application string `json:"application" bson:"application"`
	Trading     string `json:"trading" bson:"trading"`
}

// DefaultTitleSlots returns the slots assigned to every new member.
func DefaultTitleSlots() TitleSlots {
	return TitleSlots{Journey: "buntel"}
}

// Notification is a short message shown on the member's profile. Only the
// most recent few are retained.
type Notification struct {
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// UserProfile is keyed by the uid assigned by the external auth provider.
// Username stays empty until registration completes; it transitions from
// empty to set exactly once and is never reassigned.
type UserProfile struct {
	UID           string         `json:"uid" bson:"_id"`
	Username      string         `json:"username" bson:"username"`
	DisplayName   string         `json:"display_name" bson:"display_name"`
	Email         string         `json:"email" bson:"email"`
	PhotoURL      string         `json:"photo_url" bson:"photo_url"`
	Bio           string         `json:"bio" bson:"bio"`
	Reports       int64          `json:"reports" bson:"reports"`
	Title         TitleSlots     `json:"title" bson:"title"`
	Notifications []Notification `json:"notifications" bson:"notifications"`
	DateJoined    time.Time      `json:"date_joined" bson:"date_joined"`
}

// HandleReservation claims a username. It is keyed by the handle string
// itself, so its existence in the store is the global-uniqueness proof.
// Created in the same commit that sets the owning profile's username; never
// reassigned.
type HandleReservation struct {
	Handle string `json:"handle" bson:"_id"`
	UID    string `json:"uid" bson:"uid"`
}
