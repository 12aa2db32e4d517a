package service

import (
	"github.com/campuskit/campus-services/internal/model"
	"github.com/campuskit/campus-services/internal/store"
)

type CourseService struct {
	courses *store.CourseStore
}

func NewCourseService(courses *store.CourseStore) *CourseService {
	return &CourseService{courses: courses}
}

func (s *CourseService) List() []model.Course {
	return s.courses.List()
}

func (s *CourseService) Create(code, title string) model.Course {
	return s.courses.Create(code, title)
}
