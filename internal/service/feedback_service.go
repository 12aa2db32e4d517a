package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campuskit/campus-services/internal/model"
	"github.com/campuskit/campus-services/internal/notifier"
	"github.com/campuskit/campus-services/internal/store"
)

type FeedbackService struct {
	feedback *store.FeedbackStore
	notify   *notifier.Client
	log      zerolog.Logger
}

func NewFeedbackService(feedback *store.FeedbackStore, notify *notifier.Client, log zerolog.Logger) *FeedbackService {
	return &FeedbackService{
		feedback: feedback,
		notify:   notify,
		log:      log.With().Str("component", "feedback_service").Logger(),
	}
}

func (s *FeedbackService) List() []model.Feedback {
	return s.feedback.List()
}

// Create stores the feedback, then sends a best-effort notification to the
// sink. The notification outcome never affects the returned record: a
// delivery failure is logged and swallowed so the caller's 201 stands.
func (s *FeedbackService) Create(ctx context.Context, course string, rating int, comment string) model.Feedback {
	f := s.feedback.Create(course, rating, comment)

	message := fmt.Sprintf("New feedback added for course %s: %s", course, comment)
	if err := s.notify.Notify(ctx, message); err != nil {
		s.log.Error().Err(err).Msg("Could not reach notification service")
	} else {
		s.log.Info().Str("message", message).Msg("Sent notification")
	}

	return f
}
