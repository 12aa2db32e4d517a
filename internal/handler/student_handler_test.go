package handler_test

import (
	"context"
	"net/http"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/campuskit/campus-services/internal/handler"
	"github.com/campuskit/campus-services/internal/model"
	"github.com/campuskit/campus-services/internal/repository"
	"github.com/campuskit/campus-services/internal/router"
	"github.com/campuskit/campus-services/internal/service"
)

// newStudentProfile spins up the full HTTP surface against a real database,
// skipping when none is configured. The students table is reset so ids
// start at 1.
func newStudentProfile(t *testing.T) *gin.Engine {
	t.Helper()
	_ = godotenv.Load("../../.env")
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatalf("db: %v", err)
	}
	t.Cleanup(pool.Close)

	if _, err := pool.Exec(context.Background(), `TRUNCATE students RESTART IDENTITY`); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	svc := service.NewStudentService(repository.NewStudentRepository(pool))
	return router.StudentProfile(handler.NewStudentHandler(svc), testConfig())
}

func TestStudentLifecycle(t *testing.T) {
	r := newStudentProfile(t)

	// Fresh table lists as an empty array, not null.
	w := doJSON(t, r, http.MethodGet, "/students", nil)
	if w.Code != http.StatusOK || w.Body.String() != "[]" {
		t.Fatalf("expected 200 [], got %d %q", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/students", gin.H{"name": "Ana", "email": "ana@x.test"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created model.Student
	decode(t, w, &created)
	if created.ID != 1 || created.Name != "Ana" || created.Email != "ana@x.test" {
		t.Fatalf("unexpected student: %+v", created)
	}
	if created.Attendance == nil || len(created.Attendance) != 0 {
		t.Fatalf("expected empty attendance array, got %#v", created.Attendance)
	}

	w = doJSON(t, r, http.MethodGet, "/students/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var fetched model.Student
	decode(t, w, &fetched)
	if fetched.Name != "Ana" || fetched.Email != "ana@x.test" {
		t.Fatalf("round trip mismatch: %+v", fetched)
	}

	w = doJSON(t, r, http.MethodDelete, "/students/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var msg map[string]string
	decode(t, w, &msg)
	if msg["message"] != "Deleted" {
		t.Fatalf("unexpected delete body: %v", msg)
	}

	w = doJSON(t, r, http.MethodGet, "/students/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", w.Code)
	}
}

func TestCreateStudentValidation(t *testing.T) {
	r := newStudentProfile(t)

	for _, body := range []gin.H{
		{"name": "Ana"},
		{"email": "ana@x.test"},
		{},
	} {
		w := doJSON(t, r, http.MethodPost, "/students", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("body %v: expected 400, got %d", body, w.Code)
		}
	}
}

func TestUpdateStudentPartial(t *testing.T) {
	r := newStudentProfile(t)

	doJSON(t, r, http.MethodPost, "/students", gin.H{"name": "Ana", "email": "ana@x.test"})

	// Name-only update leaves the email untouched.
	w := doJSON(t, r, http.MethodPut, "/students/1", gin.H{"name": "Ana Maria"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var updated model.Student
	decode(t, w, &updated)
	if updated.Name != "Ana Maria" || updated.Email != "ana@x.test" {
		t.Fatalf("partial update touched the wrong fields: %+v", updated)
	}

	// Empty payload is a 400.
	w = doJSON(t, r, http.MethodPut, "/students/1", gin.H{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on empty update, got %d", w.Code)
	}

	// Unknown id is a 404.
	w = doJSON(t, r, http.MethodPut, "/students/42", gin.H{"name": "X"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestRecordAttendanceSequential(t *testing.T) {
	r := newStudentProfile(t)

	doJSON(t, r, http.MethodPost, "/students", gin.H{"name": "Ana", "email": "ana@x.test"})

	w := doJSON(t, r, http.MethodPost, "/students/1/attendance", gin.H{"date": "2025-01-01", "status": "Present"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		ID         int                      `json:"id"`
		Attendance []model.AttendanceRecord `json:"attendance"`
	}
	decode(t, w, &resp)
	if resp.ID != 1 || len(resp.Attendance) != 1 {
		t.Fatalf("unexpected attendance response: %+v", resp)
	}
	if resp.Attendance[0].Date != "2025-01-01" || resp.Attendance[0].Status != "Present" {
		t.Fatalf("unexpected record: %+v", resp.Attendance[0])
	}

	w = doJSON(t, r, http.MethodPost, "/students/1/attendance", gin.H{"date": "2025-01-02", "status": "Absent"})
	decode(t, w, &resp)
	if len(resp.Attendance) != 2 {
		t.Fatalf("expected 2 records, got %d", len(resp.Attendance))
	}
	if resp.Attendance[0].Date != "2025-01-01" || resp.Attendance[1].Date != "2025-01-02" {
		t.Fatalf("records not in submission order: %+v", resp.Attendance)
	}

	// Missing fields and unknown students are rejected.
	w = doJSON(t, r, http.MethodPost, "/students/1/attendance", gin.H{"date": "2025-01-03"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	w = doJSON(t, r, http.MethodPost, "/students/42/attendance", gin.H{"date": "2025-01-03", "status": "Present"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
