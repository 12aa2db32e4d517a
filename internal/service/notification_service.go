package service

import (
	"github.com/rs/zerolog"

	"github.com/campuskit/campus-services/internal/model"
	"github.com/campuskit/campus-services/internal/store"
)

// fallbackMessage is recorded when the inbound payload carries no message.
const fallbackMessage = "No message provided"

type NotificationService struct {
	notifications *store.NotificationStore
	log           zerolog.Logger
}

func NewNotificationService(notifications *store.NotificationStore, log zerolog.Logger) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		log:           log.With().Str("component", "notification_service").Logger(),
	}
}

func (s *NotificationService) List() []model.Notification {
	return s.notifications.List()
}

// Record wraps the inbound message in the sink's prefix, stamps it and
// appends it to the log. The log line stands in for a real delivery
// channel (email, push).
func (s *NotificationService) Record(message string) model.Notification {
	if message == "" {
		message = fallbackMessage
	}
	n := s.notifications.Append("Notification: " + message)
	s.log.Info().Int("id", n.ID).Msg(n.Message)
	return n
}
