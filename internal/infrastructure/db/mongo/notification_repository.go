package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/idekita/idekita-api/internal/core/domain"
)

// NotificationRepository appends notifications to profile documents.
type NotificationRepository struct {
	col *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) *NotificationRepository {
	return &NotificationRepository{col: db.Collection(collectionUsers)}
}

// Append prepends n to the recipient's notification list and trims it to
// keep entries, in a single update.
func (r *NotificationRepository) Append(ctx context.Context, uid string, n domain.Notification, keep int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$push": bson.M{
			"notifications": bson.M{
				"$each":     bson.A{n},
				"$position": 0,
				"$slice":    keep,
			},
		},
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": uid}, update)
	if err != nil {
		return fmt.Errorf("append notification: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
