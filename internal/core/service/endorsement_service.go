package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/idekita/idekita-api/internal/core/domain"
	"github.com/idekita/idekita-api/internal/core/ports"
)

// Notifier accepts notifications for asynchronous delivery. Implemented by
// the queue dispatcher; a nil Notifier disables delivery.
type Notifier interface {
	Enqueue(in ports.NotificationInput)
}

type endorsementService struct {
	repo     ports.EndorsementRepository
	notifier Notifier
	log      zerolog.Logger
}

// NewEndorsementService returns an EndorsementService implementation.
func NewEndorsementService(repo ports.EndorsementRepository, notifier Notifier, log zerolog.Logger) ports.EndorsementService {
	return &endorsementService{repo: repo, notifier: notifier, log: log}
}

// HasEndorsed reports whether uid has already endorsed the post.
func (s *endorsementService) HasEndorsed(ctx context.Context, postID domain.PostID, uid string) (bool, error) {
	return s.repo.Exists(ctx, postID, uid)
}

// AddEndorsement records one endorsement and bumps the post's cloud count.
// The existence guard lives in the repository's conditional commit, not
// here: a prior HasEndorsed read must never authorize the write, because two
// callers can both observe absence and race each other to commit.
func (s *endorsementService) AddEndorsement(ctx context.Context, postID domain.PostID, uid string) error {
	e := &domain.Endorsement{
		PostID:    postID,
		UID:       uid,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateWithIncrement(ctx, e); err != nil {
		if errors.Is(err, domain.ErrAlreadyEndorsed) || errors.Is(err, domain.ErrPostNotFound) {
			return err
		}
		s.log.Error().Err(err).Str("post", postID.Key()).Str("uid", uid).Msg("endorsement commit failed")
		return fmt.Errorf("add endorsement: %w", err)
	}

	s.log.Info().Str("post", postID.Key()).Str("uid", uid).Msg("endorsement recorded")

	if s.notifier != nil && postID.AuthorUID != uid {
		s.notifier.Enqueue(ports.NotificationInput{
			RecipientUID: postID.AuthorUID,
			Message:      fmt.Sprintf("Ide %s baru saja mendapatkan dukungan baru 💪", postID.Slug),
		})
	}

	return nil
}
