package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"personalsite/internal/models"
	"personalsite/internal/repository"
)

type CreateCommentRequest struct {
	Name     string  `json:"name"`
	Content  string  `json:"content"`
	ParentID *string `json:"parentId"`
}

var ErrNameContentRequired = errors.New("имя и текст комментария обязательны")

type CommentService interface {
	ListComments(ctx context.Context, postSlug, sort string, page, limit int) ([]models.Comment, error)
	CreateComment(ctx context.Context, postSlug string, req CreateCommentRequest) (*models.Comment, error)
	LikeComment(ctx context.Context, postSlug, commentID string) (*models.Comment, error)
	DeleteComment(ctx context.Context, postSlug, commentID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

func (c *commentService) ListComments(ctx context.Context, postSlug, sort string, page, limit int) ([]models.Comment, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	comments, err := c.commentRepo.GetByPostSlug(ctx, postSlug, sort, limit, offset)
	if err != nil {
		return nil, err
	}

	// ответы подгружаются к каждому корневому комментарию, один уровень
	for i := range comments {
		replies, err := c.commentRepo.GetReplies(ctx, comments[i].CommentID)
		if err != nil {
			return nil, err
		}
		comments[i].Replies = replies
	}

	return comments, nil
}

func (c *commentService) CreateComment(ctx context.Context, postSlug string, req CreateCommentRequest) (*models.Comment, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrNameContentRequired
	}

	// комментарий всегда ссылается на существующий пост
	if _, err := c.postRepo.GetBySlug(ctx, postSlug); err != nil {
		return nil, err
	}

	// ответ ссылается на существующий комментарий того же поста
	if req.ParentID != nil && *req.ParentID != "" {
		parent, err := c.commentRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent.PostSlug != postSlug {
			return nil, fmt.Errorf("родительский комментарий из другого поста: %w", repository.ErrNotFound)
		}
	} else {
		req.ParentID = nil
	}

	comment := &models.Comment{
		PostSlug:   postSlug,
		ParentID:   req.ParentID,
		AuthorName: req.Name,
		Content:    req.Content,
	}

	if err := c.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (c *commentService) LikeComment(ctx context.Context, postSlug, commentID string) (*models.Comment, error) {
	return c.commentRepo.Like(ctx, postSlug, commentID)
}

func (c *commentService) DeleteComment(ctx context.Context, postSlug, commentID string) error {
	return c.commentRepo.Delete(ctx, postSlug, commentID)
}
