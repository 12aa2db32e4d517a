package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campuskit/campus-services/internal/config"
	"github.com/campuskit/campus-services/internal/handler"
	"github.com/campuskit/campus-services/internal/response"
)

// newEngine builds a gin engine with the middleware every service shares:
// CORS (the browser frontend calls these APIs cross-origin), request IDs
// and a health endpoint.
func newEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	r.Use(cors.New(corsConfig))

	r.Use(response.RequestIDMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

// Catalogue wires the course catalogue routes.
func Catalogue(h *handler.CourseHandler, cfg *config.Config) *gin.Engine {
	r := newEngine(cfg)
	r.GET("/courses", h.List)
	r.POST("/courses", h.Create)
	return r
}

// Feedback wires the feedback routes.
func Feedback(h *handler.FeedbackHandler, cfg *config.Config) *gin.Engine {
	r := newEngine(cfg)
	r.GET("/feedback", h.List)
	r.POST("/feedback", h.Create)
	return r
}

// Notification wires the notification sink routes.
func Notification(h *handler.NotificationHandler, cfg *config.Config) *gin.Engine {
	r := newEngine(cfg)
	r.POST("/notify", h.Notify)
	r.GET("/notifications", h.List)
	return r
}

// StudentProfile wires the student profile routes.
func StudentProfile(h *handler.StudentHandler, cfg *config.Config) *gin.Engine {
	r := newEngine(cfg)

	// Liveness message for humans poking the service in a browser.
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Hello from student-profile service (with Postgres DB)! "+
			"This is a line of text to let you know that the API service is running smoothly with full CRUD capability")
	})

	r.GET("/students", h.List)
	r.POST("/students", h.Create)
	r.GET("/students/:id", h.Get)
	r.PUT("/students/:id", h.Update)
	r.DELETE("/students/:id", h.Delete)
	r.POST("/students/:id/attendance", h.RecordAttendance)
	return r
}
