package main

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/campuskit/campus-services/internal/config"
	"github.com/campuskit/campus-services/internal/database"
	"github.com/campuskit/campus-services/internal/handler"
	"github.com/campuskit/campus-services/internal/logger"
	"github.com/campuskit/campus-services/internal/repository"
	"github.com/campuskit/campus-services/internal/router"
	"github.com/campuskit/campus-services/internal/server"
	"github.com/campuskit/campus-services/internal/service"
	"github.com/campuskit/campus-services/internal/validator"
)

func main() {
	cfg := config.Load("5001")

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().Str("port", cfg.ServerPort).Msg("Starting student profile service")

	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The database may still be coming up when this process starts; the
	// retry budget inside Connect covers that. Exhausting it means the
	// service must not serve at all.
	pool, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	studentRepo := repository.NewStudentRepository(pool)
	studentService := service.NewStudentService(studentRepo)
	studentHandler := handler.NewStudentHandler(studentService)

	r := router.StudentProfile(studentHandler, cfg)
	server.Run(r, cfg.ServerPort, log)
}

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
