package store

import (
	"sync"

	"github.com/campuskit/campus-services/internal/model"
)

// FeedbackStore owns the feedback service's record list.
type FeedbackStore struct {
	mu      sync.Mutex
	entries []model.Feedback
}

// NewFeedbackStore returns an empty feedback store.
func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{}
}

// List returns all feedback in insertion order.
func (s *FeedbackStore) List() []model.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Feedback, len(s.entries))
	copy(out, s.entries)
	return out
}

// Create appends a new feedback record and returns it with its assigned id.
func (s *FeedbackStore) Create(course string, rating int, comment string) model.Feedback {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := model.Feedback{
		ID:      len(s.entries) + 1,
		Course:  course,
		Rating:  rating,
		Comment: comment,
	}
	s.entries = append(s.entries, f)
	return f
}
