package main

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/campuskit/campus-services/internal/config"
	"github.com/campuskit/campus-services/internal/handler"
	"github.com/campuskit/campus-services/internal/logger"
	"github.com/campuskit/campus-services/internal/notifier"
	"github.com/campuskit/campus-services/internal/router"
	"github.com/campuskit/campus-services/internal/server"
	"github.com/campuskit/campus-services/internal/service"
	"github.com/campuskit/campus-services/internal/store"
	"github.com/campuskit/campus-services/internal/validator"
)

func main() {
	cfg := config.Load("5002")

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("notify_url", cfg.NotifyURL).
		Msg("Starting feedback service")

	validator.Setup()

	notifyClient := notifier.New(cfg.NotifyURL, cfg.NotifyTimeout)
	feedbackService := service.NewFeedbackService(store.NewFeedbackStore(), notifyClient, log)
	feedbackHandler := handler.NewFeedbackHandler(feedbackService)

	r := router.Feedback(feedbackHandler, cfg)
	server.Run(r, cfg.ServerPort, log)
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
