package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuskit/campus-services/internal/model"
)

var (
	// ErrStudentNotFound means no row matched the requested id.
	ErrStudentNotFound = errors.New("student not found")
	// ErrNoFields means a partial update carried no updatable fields.
	ErrNoFields = errors.New("no updatable fields provided")
)

// StudentRepository handles student data access. All methods acquire
// connections from the shared pool for the duration of one statement, so
// every exit path releases its connection.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// List retrieves all students ordered by ascending id. The ordering is a
// contract: callers diff or paginate over it.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, attendance FROM students ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []model.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// GetByID retrieves a single student.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT id, name, email, attendance FROM students WHERE id = $1`, id)
	s, err := scanStudent(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts a new student with an empty attendance array and returns
// the row with its database-assigned id.
func (r *StudentRepository) Create(ctx context.Context, name, email string) (*model.Student, error) {
	s := model.Student{Name: name, Email: email, Attendance: []model.AttendanceRecord{}}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (name, email, attendance) VALUES ($1, $2, '[]'::jsonb) RETURNING id`,
		name, email,
	).Scan(&s.ID)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Update applies a partial update in a single statement and returns the
// full updated row. Omitted fields are left untouched in storage.
func (r *StudentRepository) Update(ctx context.Context, id int, req model.UpdateStudentRequest) (*model.Student, error) {
	set, args := buildStudentUpdate(req)
	if len(set) == 0 {
		return nil, ErrNoFields
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE students SET %s WHERE id = $%d RETURNING id, name, email, attendance`,
		strings.Join(set, ", "), len(args))

	s, err := scanStudent(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Delete removes a student row.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	var deleted int
	err := r.pool.QueryRow(ctx,
		`DELETE FROM students WHERE id = $1 RETURNING id`, id).Scan(&deleted)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrStudentNotFound
	}
	return err
}

// GetAttendance fetches only the attendance array for a student.
func (r *StudentRepository) GetAttendance(ctx context.Context, id int) ([]model.AttendanceRecord, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT attendance FROM students WHERE id = $1`, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return decodeAttendance(raw)
}

// SetAttendance overwrites a student's attendance array. Combined with
// GetAttendance this is a read-modify-write: two concurrent appends to the
// same student can race and the last writer wins. That matches the
// documented behavior of this service; see DESIGN.md before "fixing" it.
func (r *StudentRepository) SetAttendance(ctx context.Context, id int, records []model.AttendanceRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx,
		`UPDATE students SET attendance = $1::jsonb WHERE id = $2`, raw, id)
	return err
}

// buildStudentUpdate collects SET clauses for the fields present in the
// request. Clause text is static; values are parameterized.
func buildStudentUpdate(req model.UpdateStudentRequest) ([]string, []interface{}) {
	var set []string
	var args []interface{}
	if req.Name != nil {
		args = append(args, *req.Name)
		set = append(set, "name = $"+strconv.Itoa(len(args)))
	}
	if req.Email != nil {
		args = append(args, *req.Email)
		set = append(set, "email = $"+strconv.Itoa(len(args)))
	}
	return set, args
}

func scanStudent(row pgx.Row) (model.Student, error) {
	var s model.Student
	var raw []byte
	if err := row.Scan(&s.ID, &s.Name, &s.Email, &raw); err != nil {
		return model.Student{}, err
	}
	att, err := decodeAttendance(raw)
	if err != nil {
		return model.Student{}, err
	}
	s.Attendance = att
	return s, nil
}

// decodeAttendance unmarshals the stored JSONB value, treating SQL NULL
// and JSON null as an empty history.
func decodeAttendance(raw []byte) ([]model.AttendanceRecord, error) {
	if len(raw) == 0 {
		return []model.AttendanceRecord{}, nil
	}
	var records []model.AttendanceRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode attendance: %w", err)
	}
	if records == nil {
		records = []model.AttendanceRecord{}
	}
	return records, nil
}
