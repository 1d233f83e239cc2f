package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/idekita/idekita-api/internal/core/domain"
)

const (
	collectionUsers     = "users"
	collectionUsernames = "usernames"
)

// RegistryRepository implements ports.RegistryRepository using MongoDB. The
// usernames collection is keyed by the handle string itself: inserting into
// it is the commit-time uniqueness check.
type RegistryRepository struct {
	db *mongo.Database
}

func NewRegistryRepository(db *mongo.Database) *RegistryRepository {
	return &RegistryRepository{db: db}
}

type profileDoc struct {
	UID           string                `bson:"_id"`
	Username      string                `bson:"username"`
	DisplayName   string                `bson:"display_name"`
	Email         string                `bson:"email"`
	PhotoURL      string                `bson:"photo_url"`
	Bio           string                `bson:"bio"`
	Reports       int64                 `bson:"reports"`
	Title         domain.TitleSlots     `bson:"title"`
	Notifications []domain.Notification `bson:"notifications"`
	DateJoined    time.Time             `bson:"date_joined"`
}

// ReservationExists reports whether the handle document is present. Point
// in time only; Reserve is the authority.
func (r *RegistryRepository) ReservationExists(ctx context.Context, handle string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	err := r.db.Collection(collectionUsernames).FindOne(ctx, bson.M{"_id": handle}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("reservation lookup: %w", err)
	}
	return true, nil
}

// Reserve writes the profile and the handle reservation inside one
// transaction. The reservation insert rides on the _id unique key: a
// concurrent claim of the same handle makes the second insert fail with a
// duplicate key, the transaction aborts, and neither document lands. A
// profile that already carries a username aborts with ErrAlreadyRegistered
// before any write takes effect.
func (r *RegistryRepository) Reserve(ctx context.Context, profile *domain.UserProfile, res *domain.HandleReservation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	session, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var existing profileDoc
		err := r.db.Collection(collectionUsers).FindOne(sc, bson.M{"_id": profile.UID}).Decode(&existing)
		if err == nil && existing.Username != "" {
			return nil, domain.ErrAlreadyRegistered
		}
		if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("find profile: %w", err)
		}

		if _, err := r.db.Collection(collectionUsernames).InsertOne(sc, bson.M{"_id": res.Handle, "uid": res.UID}); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrHandleTaken
			}
			return nil, fmt.Errorf("insert reservation: %w", err)
		}

		doc := profileDoc{
			UID:           profile.UID,
			Username:      profile.Username,
			DisplayName:   profile.DisplayName,
			Email:         profile.Email,
			PhotoURL:      profile.PhotoURL,
			Bio:           profile.Bio,
			Reports:       profile.Reports,
			Title:         profile.Title,
			Notifications: profile.Notifications,
			DateJoined:    profile.DateJoined.UTC(),
		}
		_, err = r.db.Collection(collectionUsers).ReplaceOne(sc,
			bson.M{"_id": profile.UID}, doc, options.Replace().SetUpsert(true))
		if err != nil {
			return nil, fmt.Errorf("write profile: %w", err)
		}
		return nil, nil
	})
	return err
}

func (r *RegistryRepository) FindProfile(ctx context.Context, uid string) (*domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc profileDoc
	err := r.db.Collection(collectionUsers).FindOne(ctx, bson.M{"_id": uid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	return &domain.UserProfile{
		UID:           doc.UID,
		Username:      doc.Username,
		DisplayName:   doc.DisplayName,
		Email:         doc.Email,
		PhotoURL:      doc.PhotoURL,
		Bio:           doc.Bio,
		Reports:       doc.Reports,
		Title:         doc.Title,
		Notifications: doc.Notifications,
		DateJoined:    doc.DateJoined,
	}, nil
}
