package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campuskit/campus-services/internal/model"
	"github.com/campuskit/campus-services/internal/response"
	"github.com/campuskit/campus-services/internal/service"
)

type NotificationHandler struct {
	notifications *service.NotificationService
}

func NewNotificationHandler(notifications *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// Notify godoc
// POST /notify
//
// The message field is optional; a missing one is recorded with a
// placeholder. Malformed JSON still yields a 400.
func (h *NotificationHandler) Notify(c *gin.Context) {
	var req model.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload")
		return
	}

	n := h.notifications.Record(req.Message)
	response.JSON(c, http.StatusCreated, n)
}

// List godoc
// GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	entries := h.notifications.List()
	if entries == nil {
		entries = []model.Notification{}
	}
	response.JSON(c, http.StatusOK, entries)
}
