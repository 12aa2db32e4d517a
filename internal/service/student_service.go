package service

import (
	"context"

	"github.com/campuskit/campus-services/internal/model"
	"github.com/campuskit/campus-services/internal/repository"
)

type StudentService struct {
	students *repository.StudentRepository
}

func NewStudentService(students *repository.StudentRepository) *StudentService {
	return &StudentService{students: students}
}

func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}
	if students == nil {
		students = []model.Student{}
	}
	return students, nil
}

func (s *StudentService) Get(ctx context.Context, id int) (*model.Student, error) {
	return s.students.GetByID(ctx, id)
}

func (s *StudentService) Create(ctx context.Context, name, email string) (*model.Student, error) {
	return s.students.Create(ctx, name, email)
}

func (s *StudentService) Update(ctx context.Context, id int, req model.UpdateStudentRequest) (*model.Student, error) {
	return s.students.Update(ctx, id, req)
}

func (s *StudentService) Delete(ctx context.Context, id int) error {
	return s.students.Delete(ctx, id)
}

// RecordAttendance appends one record to the student's attendance history
// and returns the full updated history. The append is a read-modify-write
// in handler memory, not an atomic server-side array append: concurrent
// submissions for the same student can lose a record (last writer wins).
// Sequential submissions always land in submission order.
func (s *StudentService) RecordAttendance(ctx context.Context, id int, date, status string) ([]model.AttendanceRecord, error) {
	attendance, err := s.students.GetAttendance(ctx, id)
	if err != nil {
		return nil, err
	}

	attendance = append(attendance, model.AttendanceRecord{Date: date, Status: status})

	if err := s.students.SetAttendance(ctx, id, attendance); err != nil {
		return nil, err
	}
	return attendance, nil
}
