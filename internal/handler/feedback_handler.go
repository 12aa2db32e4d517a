package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/campus-services/internal/model"
	"github.com/campuskit/campus-services/internal/response"
	"github.com/campuskit/campus-services/internal/service"
	"github.com/campuskit/campus-services/internal/validator"
)

type FeedbackHandler struct {
	feedback *service.FeedbackService
}

func NewFeedbackHandler(feedback *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedback: feedback}
}

// List godoc
// GET /feedback
func (h *FeedbackHandler) List(c *gin.Context) {
	entries := h.feedback.List()
	if entries == nil {
		entries = []model.Feedback{}
	}
	response.JSON(c, http.StatusOK, entries)
}

// Create godoc
// POST /feedback
//
// Returns 201 with the created record whether or not the downstream
// notification could be delivered.
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req model.CreateFeedbackRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.ValidationError(c, fields)
		return
	}

	f := h.feedback.Create(c.Request.Context(), req.Course, req.Rating, req.Comment)
	response.JSON(c, http.StatusCreated, f)
}
