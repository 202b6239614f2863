package repository

import (
	"context"
	"encoding/json"
	"personalsite/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByIdentity(ctx context.Context, emailOrName string) (*models.User, error)
	ValidateCredentials(ctx context.Context, emailOrName, password string) (*models.User, error)
	UpdatePassword(ctx context.Context, userID, password string) error
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetBySlug(ctx context.Context, slug string) (*models.Post, error)
	GetAll(ctx context.Context) ([]models.Post, error)
	SlugExists(ctx context.Context, slug, excludePostID string) (bool, error)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, slug string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	GetByPostSlug(ctx context.Context, postSlug, sort string, limit, offset int) ([]models.Comment, error)
	GetReplies(ctx context.Context, parentID string) ([]models.Comment, error)
	Like(ctx context.Context, postSlug, commentID string) (*models.Comment, error)
	Delete(ctx context.Context, postSlug, commentID string) error
}

// SettingsRepository — хранилище "ровно один документ на ключ".
// Upsert по первичному ключу делает инвариант структурным.
type SettingsRepository interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value interface{}) error
}

type Repository struct {
	User     UserRepository
	Post     PostRepository
	Comment  CommentRepository
	Settings SettingsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:     NewUserRepository(db),
		Post:     NewPostRepository(db),
		Comment:  NewCommentRepository(db),
		Settings: NewSettingsRepository(db),
	}
}
