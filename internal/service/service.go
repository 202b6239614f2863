package service

import (
	"personalsite/internal/config"
	"personalsite/internal/repository"
	"personalsite/internal/storage"
)

type Service struct {
	Auth     AuthService
	Post     PostService
	Comment  CommentService
	Settings SettingsService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.FileStorage) *Service {
	return &Service{
		Auth:     NewAuthService(rep.User, cfg),
		Post:     NewPostService(rep.Post, rep.User),
		Comment:  NewCommentService(rep.Comment, rep.Post),
		Settings: NewSettingsService(rep.Settings, storage),
	}
}
