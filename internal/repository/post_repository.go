package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"personalsite/internal/models"
)

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO posts
		(post_id, slug, title, excerpt, content, category, tags, cover_image, read_time,
		 author_name, author_avatar, author_bio, created_at, updated_at)
		VALUES
		(:post_id, :slug, :title, :excerpt, :content, :category, :tags, :cover_image, :read_time,
		 :author_name, :author_avatar, :author_bio, :created_at, :updated_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("slug %s уже используется: %w", post.Slug, ErrConflict)
		}
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *postRepository) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE slug = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост %s: %w", slug, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *postRepository) GetAll(ctx context.Context) ([]models.Post, error) {
	query := `SELECT * FROM posts ORDER BY created_at DESC`

	var posts []models.Post
	err := r.db.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка постов: %w", err)
	}

	return posts, nil
}

// SlugExists проверяет занятость slug, исключая собственный пост при обновлении.
// Это ранний отказ, настоящую гарантию даёт уникальный индекс.
func (r *postRepository) SlugExists(ctx context.Context, slug, excludePostID string) (bool, error) {
	query := `SELECT COUNT(*) FROM posts WHERE slug = $1 AND post_id <> $2`

	var count int
	err := r.db.GetContext(ctx, &count, query, slug, excludePostID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке slug: %w", err)
	}

	return count > 0, nil
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = time.Now()

	query := `
		UPDATE posts SET
			slug = :slug,
			title = :title,
			excerpt = :excerpt,
			content = :content,
			category = :category,
			tags = :tags,
			cover_image = :cover_image,
			read_time = :read_time,
			updated_at = :updated_at
		WHERE post_id = :post_id
	`

	result, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("slug %s уже используется: %w", post.Slug, ErrConflict)
		}
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост %s: %w", post.PostID, ErrNotFound)
	}

	return nil
}

func (r *postRepository) Delete(ctx context.Context, slug string) error {
	query := `DELETE FROM posts WHERE slug = $1`

	result, err := r.db.ExecContext(ctx, query, slug)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост %s: %w", slug, ErrNotFound)
	}

	return nil
}
