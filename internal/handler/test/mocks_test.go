package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"personalsite/internal/models"
	"personalsite/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.User, string, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, emailOrName, password string) (*models.User, string, error) {
	args := m.Called(ctx, emailOrName, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) IssueToken(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) VerifyToken(tokenString string) *models.Claims {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*models.Claims)
}

func (m *MockAuthService) EnsureAdmin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, slug string) (*models.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, req service.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) UpdatePost(ctx context.Context, slug string, req service.UpdatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, slug, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListComments(ctx context.Context, postSlug, sort string, page, limit int) ([]models.Comment, error) {
	args := m.Called(ctx, postSlug, sort, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Comment), args.Error(1)
}

func (m *MockCommentService) CreateComment(ctx context.Context, postSlug string, req service.CreateCommentRequest) (*models.Comment, error) {
	args := m.Called(ctx, postSlug, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) LikeComment(ctx context.Context, postSlug, commentID string) (*models.Comment, error) {
	args := m.Called(ctx, postSlug, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, postSlug, commentID string) error {
	args := m.Called(ctx, postSlug, commentID)
	return args.Error(0)
}

type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) GetAbout(ctx context.Context) (*models.About, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.About), args.Error(1)
}

func (m *MockSettingsService) UpdateAbout(ctx context.Context, contentZh, contentEn string) error {
	args := m.Called(ctx, contentZh, contentEn)
	return args.Error(0)
}

func (m *MockSettingsService) GetProjectConfig(ctx context.Context) (*models.ProjectConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectConfig), args.Error(1)
}

func (m *MockSettingsService) UpdateProjectConfig(ctx context.Context, selectedProjects, order []string) (*models.ProjectConfig, error) {
	args := m.Called(ctx, selectedProjects, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProjectConfig), args.Error(1)
}

func (m *MockSettingsService) UploadResume(ctx context.Context, fileName string, file io.Reader, size int64) (*models.ResumeMeta, error) {
	args := m.Called(ctx, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResumeMeta), args.Error(1)
}

func (m *MockSettingsService) GetResume(ctx context.Context) (*models.ResumeMeta, io.ReadCloser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*models.ResumeMeta), args.Get(1).(io.ReadCloser), args.Error(2)
}
