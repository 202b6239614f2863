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

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = uuid.New().String()
	}

	comment.Likes = 0
	comment.CreatedAt = time.Now()

	query := `
		INSERT INTO comments (comment_id, post_slug, parent_id, author_name, content, likes, created_at)
		VALUES (:comment_id, :post_slug, :parent_id, :author_name, :content, :likes, :created_at)
	`

	_, err := r.db.NamedExecContext(ctx, query, comment)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	query := `SELECT * FROM comments WHERE comment_id = $1`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("комментарий %s: %w", commentID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении комментария: %w", err)
	}

	return &comment, nil
}

// GetByPostSlug возвращает только корневые комментарии, ответы
// догружаются отдельно через GetReplies
func (r *commentRepository) GetByPostSlug(ctx context.Context, postSlug, sort string, limit, offset int) ([]models.Comment, error) {
	orderBy := "created_at DESC"
	switch sort {
	case "oldest":
		orderBy = "created_at ASC"
	case "mostLiked":
		orderBy = "likes DESC, created_at DESC"
	}

	query := fmt.Sprintf(`
		SELECT * FROM comments
		WHERE post_slug = $1 AND parent_id IS NULL
		ORDER BY %s
		LIMIT $2 OFFSET $3
	`, orderBy)

	var comments []models.Comment
	err := r.db.SelectContext(ctx, &comments, query, postSlug, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) GetReplies(ctx context.Context, parentID string) ([]models.Comment, error) {
	query := `SELECT * FROM comments WHERE parent_id = $1 ORDER BY created_at ASC`

	var replies []models.Comment
	err := r.db.SelectContext(ctx, &replies, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ответов: %w", err)
	}

	return replies, nil
}

// Like — атомарный инкремент на стороне БД, одновременные лайки
// не теряются (никакого read-modify-write в приложении)
func (r *commentRepository) Like(ctx context.Context, postSlug, commentID string) (*models.Comment, error) {
	query := `
		UPDATE comments SET likes = likes + 1
		WHERE comment_id = $1 AND post_slug = $2
		RETURNING comment_id, post_slug, parent_id, author_name, content, likes, created_at
	`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID, postSlug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("комментарий %s: %w", commentID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при лайке комментария: %w", err)
	}

	return &comment, nil
}

func (r *commentRepository) Delete(ctx context.Context, postSlug, commentID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1 AND post_slug = $2`

	result, err := r.db.ExecContext(ctx, query, commentID, postSlug)
	if err != nil {
		return fmt.Errorf("ошибка при удалении комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("комментарий %s: %w", commentID, ErrNotFound)
	}

	return nil
}
