// Package store holds the in-memory stores backing the catalogue, feedback
// and notification services. The original design relied on single-threaded
// request execution to keep its global lists consistent; here every store
// serializes id assignment and append behind one mutex so the count+1 ids
// stay unique under concurrent requests. All state is lost on restart.
package store

import (
	"sync"

	"github.com/campuskit/campus-services/internal/model"
)

// CourseStore owns the catalogue's course list.
type CourseStore struct {
	mu      sync.Mutex
	courses []model.Course
}

// NewCourseStore returns an empty course store.
func NewCourseStore() *CourseStore {
	return &CourseStore{}
}

// List returns all courses in insertion order.
func (s *CourseStore) List() []model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Course, len(s.courses))
	copy(out, s.courses)
	return out
}

// Create appends a new course and returns it with its assigned id.
func (s *CourseStore) Create(code, title string) model.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := model.Course{
		ID:    len(s.courses) + 1,
		Code:  code,
		Title: title,
	}
	s.courses = append(s.courses, c)
	return c
}
