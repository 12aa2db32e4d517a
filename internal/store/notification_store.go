package store

import (
	"sync"
	"time"

	"github.com/campuskit/campus-services/internal/model"
)

// NotificationStore is the sink's append-only log. Entries are never
// mutated or deleted.
type NotificationStore struct {
	mu      sync.Mutex
	entries []model.Notification
	now     func() time.Time
}

// NewNotificationStore returns an empty notification log.
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{now: time.Now}
}

// List returns all notifications in arrival order.
func (s *NotificationStore) List() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Notification, len(s.entries))
	copy(out, s.entries)
	return out
}

// Append records a message, stamping the current server time.
func (s *NotificationStore) Append(message string) model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := model.Notification{
		ID:        len(s.entries) + 1,
		Message:   message,
		Timestamp: s.now().Format(time.RFC3339),
	}
	s.entries = append(s.entries, n)
	return n
}
