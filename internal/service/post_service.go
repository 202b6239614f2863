package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"personalsite/internal/models"
	"personalsite/internal/repository"
)

type CreatePostRequest struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"coverImage"`
	ReadTime   int      `json:"readTime"`
	AuthorID   string   `json:"-"`
}

type UpdatePostRequest struct {
	Slug       string   `json:"slug"`
	Title      string   `json:"title"`
	Excerpt    string   `json:"excerpt"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"coverImage"`
	ReadTime   int      `json:"readTime"`
}

var (
	ErrTitleContentRequired = errors.New("заголовок и содержание обязательны")

	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugDashRuns     = regexp.MustCompile(`-{2,}`)
)

type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, slug string) (*models.Post, error)
	CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, slug string, req UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, slug string) error
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return p.postRepo.GetAll(ctx)
}

func (p *postService) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	return p.postRepo.GetBySlug(ctx, slug)
}

func (p *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrTitleContentRequired
	}

	slug := req.Slug
	if slug == "" {
		slug = Slugify(req.Title)
	}

	// ранний отказ, гонку двух одинаковых slug разрешит уникальный индекс
	exists, err := p.postRepo.SlugExists(ctx, slug, "")
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("slug %s уже используется: %w", slug, repository.ErrConflict)
	}

	post := &models.Post{
		Slug:       slug,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Category:   req.Category,
		Tags:       req.Tags,
		CoverImage: req.CoverImage,
		ReadTime:   req.ReadTime,
	}

	if post.ReadTime == 0 {
		post.ReadTime = estimateReadTime(req.Content)
	}

	// автор копируется в пост при записи
	if req.AuthorID != "" {
		author, err := p.userRepo.GetUserByID(ctx, req.AuthorID)
		if err == nil {
			post.AuthorName = author.Name
			post.AuthorAvatar = author.Avatar
			post.AuthorBio = author.Bio
		}
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, slug string, req UpdatePostRequest) (*models.Post, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, ErrTitleContentRequired
	}

	post, err := p.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	newSlug := req.Slug
	if newSlug == "" {
		newSlug = post.Slug
	}

	// при смене slug проверяем занятость среди остальных постов
	if newSlug != post.Slug {
		exists, err := p.postRepo.SlugExists(ctx, newSlug, post.PostID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("slug %s уже используется: %w", newSlug, repository.ErrConflict)
		}
	}

	post.Slug = newSlug
	post.Title = req.Title
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.Category = req.Category
	post.Tags = req.Tags
	post.CoverImage = req.CoverImage
	post.ReadTime = req.ReadTime

	if post.ReadTime == 0 {
		post.ReadTime = estimateReadTime(req.Content)
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, slug string) error {
	return p.postRepo.Delete(ctx, slug)
}

// Slugify делает URL-безопасный идентификатор из заголовка
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugInvalidChars.ReplaceAllString(slug, "")
	slug = slugDashRuns.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func estimateReadTime(content string) int {
	words := len(strings.Fields(content))
	minutes := words / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}
