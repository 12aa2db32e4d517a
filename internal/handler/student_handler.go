package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/campus-services/internal/model"
	"github.com/campuskit/campus-services/internal/repository"
	"github.com/campuskit/campus-services/internal/response"
	"github.com/campuskit/campus-services/internal/service"
	"github.com/campuskit/campus-services/internal/validator"
)

const studentNotFoundMsg = "Student not found"

type StudentHandler struct {
	students *service.StudentService
}

func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// List godoc
// GET /students
func (h *StudentHandler) List(c *gin.Context) {
	students, err := h.students.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "database error")
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Get godoc
// GET /students/:id
func (h *StudentHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid student id")
		return
	}

	student, err := h.students.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			response.Error(c, http.StatusNotFound, studentNotFoundMsg)
			return
		}
		response.Error(c, http.StatusInternalServerError, "database error")
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Create godoc
// POST /students
func (h *StudentHandler) Create(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	student, err := h.students.Create(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "database error")
		return
	}
	response.JSON(c, http.StatusCreated, student)
}

// Update godoc
// PUT /students/:id
//
// Partial update: only fields present in the body are written; an empty
// field set is a 400.
func (h *StudentHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid student id")
		return
	}

	var req model.UpdateStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload")
		return
	}

	student, err := h.students.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoFields):
			response.Error(c, http.StatusBadRequest, "No updatable fields provided")
		case errors.Is(err, repository.ErrStudentNotFound):
			response.Error(c, http.StatusNotFound, studentNotFoundMsg)
		default:
			response.Error(c, http.StatusInternalServerError, "database error")
		}
		return
	}
	response.JSON(c, http.StatusOK, student)
}

// Delete godoc
// DELETE /students/:id
func (h *StudentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid student id")
		return
	}

	if err := h.students.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			response.Error(c, http.StatusNotFound, studentNotFoundMsg)
			return
		}
		response.Error(c, http.StatusInternalServerError, "database error")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Deleted"})
}

// RecordAttendance godoc
// POST /students/:id/attendance
func (h *StudentHandler) RecordAttendance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid student id")
		return
	}

	var req model.RecordAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	attendance, err := h.students.RecordAttendance(c.Request.Context(), id, req.Date, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			response.Error(c, http.StatusNotFound, studentNotFoundMsg)
			return
		}
		response.Error(c, http.StatusInternalServerError, "database error")
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"id": id, "attendance": attendance})
}
