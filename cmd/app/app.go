package app

import (
	"log"

	"oncolearn/internal/config"
	"oncolearn/internal/database"
	"oncolearn/internal/logger"
	"oncolearn/internal/repository"
	"oncolearn/internal/service"
	"oncolearn/internal/session"
	"oncolearn/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	sessions, err := session.NewRedisStore(cfg)
	if err != nil {
		log.Fatalf("failed to initialize session store: %v", err)
	}

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, minioClient, sessions)

	logger.Log.Info("application dependencies initialized")

	return db, services
}
