package ports

import (
	"context"

	"github.com/idekita/idekita-api/internal/core/domain"
)

// NotificationInput is one message headed for a member's profile.
type NotificationInput struct {
	RecipientUID string
	Message      string
}

// NotificationService delivers profile notifications.
type NotificationService interface {
	Push(ctx context.Context, in NotificationInput) error
}

// NotificationRepository persists profile notifications.
type NotificationRepository interface {
	// Append prepends n to the recipient's notification list, keeping only
	// the newest keep entries.
	Append(ctx context.Context, uid string, n domain.Notification, keep int) error
}
