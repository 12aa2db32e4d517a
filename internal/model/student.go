package model

// AttendanceRecord is one entry in a student's attendance history. Records
// are only ever appended, never edited or removed individually.
type AttendanceRecord struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

// Student is a profile row owned by Postgres. Attendance is persisted as a
// JSONB array inside the row.
type Student struct {
	ID         int                `json:"id"`
	Name       string             `json:"name"`
	Email      string             `json:"email"`
	Attendance []AttendanceRecord `json:"attendance"`
}

// CreateStudentRequest is the payload for creating a student.
type CreateStudentRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// UpdateStudentRequest is the payload for partially updating a student.
// Pointer fields distinguish "absent" from "set to empty": omitted fields
// are left untouched in storage.
type UpdateStudentRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// RecordAttendanceRequest is the payload for appending one attendance
// record to a student.
type RecordAttendanceRequest struct {
	Date   string `json:"date" binding:"required"`
	Status string `json:"status" binding:"required"`
}
