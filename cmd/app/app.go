package app

import (
	"log"

	"whisp/internal/config"
	"whisp/internal/database"
	"whisp/internal/notifier"
	"whisp/internal/repository"
	"whisp/internal/service"
	"whisp/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	// moderation channel
	discord := notifier.NewDiscordNotifier(cfg)

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient, discord)

	return db, repo, services
}
