package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/idekita/idekita-api/internal/core/domain"
	"github.com/idekita/idekita-api/internal/core/ports"
)

const keptNotifications = 20

type notificationService struct {
	repo ports.NotificationRepository
	log  zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(repo ports.NotificationRepository, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, log: log}
}

// Push prepends the message to the recipient's profile, trimming the list to
// the retained window.
func (s *notificationService) Push(ctx context.Context, in ports.NotificationInput) error {
	n := domain.Notification{Message: in.Message, CreatedAt: time.Now().UTC()}
	if err := s.repo.Append(ctx, in.RecipientUID, n, keptNotifications); err != nil {
		return fmt.Errorf("push notification: %w", err)
	}
	s.log.Debug().Str("uid", in.RecipientUID).Msg("notification delivered")
	return nil
}
