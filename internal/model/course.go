package model

// Course is a catalogue entry. Lives only in process memory.
type Course struct {
	ID    int    `json:"id"`
	Code  string `json:"code"`
	Title string `json:"title"`
}

// CreateCourseRequest is the payload for adding a course.
type CreateCourseRequest struct {
	Code  string `json:"code" binding:"required"`
	Title string `json:"title" binding:"required"`
}
