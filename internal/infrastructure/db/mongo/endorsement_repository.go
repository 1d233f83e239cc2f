package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/idekita/idekita-api/internal/core/domain"
)

const collectionEndorsements = "clouds"

// EndorsementRepository implements ports.EndorsementRepository using MongoDB.
type EndorsementRepository struct {
	db *mongo.Database
}

func NewEndorsementRepository(db *mongo.Database) *EndorsementRepository {
	return &EndorsementRepository{db: db}
}

type endorsementDoc struct {
	ID        string `bson:"_id"`
	AuthorUID string `bson:"author_uid"`
	Slug      string `bson:"slug"`
	UID       string `bson:"uid"`
	CreatedAt int64  `bson:"created_at"`
}

// Exists reports whether an endorsement document is present for the pair.
func (r *EndorsementRepository) Exists(ctx context.Context, postID domain.PostID, uid string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	key := domain.EndorsementKey(postID, uid)
	err := r.db.Collection(collectionEndorsements).FindOne(ctx, bson.M{"_id": key}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("endorsement lookup: %w", err)
	}
	return true, nil
}

// CreateWithIncrement inserts the endorsement and increments the post's
// cloud count inside one transaction. The endorsement _id is the (post,
// user) composite, so a unique-key violation at insert time is the
// commit-time absence check: the losing writer of a race gets
// domain.ErrAlreadyEndorsed and the increment is rolled back with the rest
// of the transaction.
func (r *EndorsementRepository) CreateWithIncrement(ctx context.Context, e *domain.Endorsement) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	session, err := r.db.Client().StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		doc := endorsementDoc{
			ID:        e.Key(),
			AuthorUID: e.PostID.AuthorUID,
			Slug:      e.PostID.Slug,
			UID:       e.UID,
			CreatedAt: e.CreatedAt.Unix(),
		}
		if _, err := r.db.Collection(collectionEndorsements).InsertOne(sc, doc); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return nil, domain.ErrAlreadyEndorsed
			}
			return nil, fmt.Errorf("insert endorsement: %w", err)
		}

		res, err := r.db.Collection(collectionPosts).UpdateOne(sc,
			bson.M{"_id": e.PostID.Key()},
			bson.M{"$inc": bson.M{"cloud": 1}},
		)
		if err != nil {
			return nil, fmt.Errorf("increment cloud count: %w", err)
		}
		if res.MatchedCount == 0 {
			return nil, domain.ErrPostNotFound
		}
		return nil, nil
	})
	return err
}
