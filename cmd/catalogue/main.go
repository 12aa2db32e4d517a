package main

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/campuskit/campus-services/internal/config"
	"github.com/campuskit/campus-services/internal/handler"
	"github.com/campuskit/campus-services/internal/logger"
	"github.com/campuskit/campus-services/internal/router"
	"github.com/campuskit/campus-services/internal/server"
	"github.com/campuskit/campus-services/internal/service"
	"github.com/campuskit/campus-services/internal/store"
	"github.com/campuskit/campus-services/internal/validator"
)

func main() {
	cfg := config.Load("5000")

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().Str("port", cfg.ServerPort).Msg("Starting course catalogue service")

	validator.Setup()

	courseService := service.NewCourseService(store.NewCourseStore())
	courseHandler := handler.NewCourseHandler(courseService)

	r := router.Catalogue(courseHandler, cfg)
	server.Run(r, cfg.ServerPort, log)
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
