package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/campus-services/internal/model"
	"github.com/campuskit/campus-services/internal/response"
	"github.com/campuskit/campus-services/internal/service"
	"github.com/campuskit/campus-services/internal/validator"
)

type CourseHandler struct {
	courses *service.CourseService
}

func NewCourseHandler(courses *service.CourseService) *CourseHandler {
	return &CourseHandler{courses: courses}
}

// List godoc
// GET /courses
func (h *CourseHandler) List(c *gin.Context) {
	courses := h.courses.List()
	if courses == nil {
		courses = []model.Course{}
	}
	response.JSON(c, http.StatusOK, courses)
}

// Create godoc
// POST /courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req model.CreateCourseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	course := h.courses.Create(req.Code, req.Title)
	response.JSON(c, http.StatusCreated, course)
}
