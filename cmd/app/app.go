package app

import (
	"context"
	"log"

	"personalsite/internal/config"
	"personalsite/internal/database"
	"personalsite/internal/repository"
	"personalsite/internal/service"
	"personalsite/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	// администратор существует ровно в одном экземпляре,
	// пароль обновляется на каждом старте
	if err := services.Auth.EnsureAdmin(context.Background()); err != nil {
		log.Fatalf("Не удалось инициализировать администратора: %v", err)
	}

	return db, repo, services
}
