package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"personalsite/internal/models"
	"personalsite/internal/repository"
	"personalsite/internal/storage"
)

const (
	settingAbout    = "about"
	settingProjects = "projects"
	settingResume   = "resume"
)

var ErrAboutContentRequired = errors.New("содержимое about не может быть пустым")

type SettingsService interface {
	GetAbout(ctx context.Context) (*models.About, error)
	UpdateAbout(ctx context.Context, contentZh, contentEn string) error
	GetProjectConfig(ctx context.Context) (*models.ProjectConfig, error)
	UpdateProjectConfig(ctx context.Context, selectedProjects, order []string) (*models.ProjectConfig, error)
	UploadResume(ctx context.Context, fileName string, file io.Reader, size int64) (*models.ResumeMeta, error)
	GetResume(ctx context.Context) (*models.ResumeMeta, io.ReadCloser, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	storage      storage.FileStorage
}

func NewSettingsService(settingsRepo repository.SettingsRepository, storage storage.FileStorage) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		storage:      storage,
	}
}

func (s *settingsService) GetAbout(ctx context.Context) (*models.About, error) {
	raw, err := s.settingsRepo.Get(ctx, settingAbout)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// до первого сохранения отдаём заготовку
			return &models.About{
				ContentZh: defaultAboutZh,
				ContentEn: defaultAboutEn,
			}, nil
		}
		return nil, err
	}

	var about models.About
	if err := json.Unmarshal(raw, &about); err != nil {
		return nil, fmt.Errorf("ошибка разбора содержимого about: %w", err)
	}

	return &about, nil
}

func (s *settingsService) UpdateAbout(ctx context.Context, contentZh, contentEn string) error {
	if contentZh == "" || contentEn == "" {
		return ErrAboutContentRequired
	}

	about := models.About{
		ContentZh: contentZh,
		ContentEn: contentEn,
		UpdatedAt: time.Now(),
	}

	return s.settingsRepo.Set(ctx, settingAbout, about)
}

func (s *settingsService) GetProjectConfig(ctx context.Context) (*models.ProjectConfig, error) {
	raw, err := s.settingsRepo.Get(ctx, settingProjects)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return &models.ProjectConfig{
				SelectedProjects: []string{},
				Order:            []string{},
			}, nil
		}
		return nil, err
	}

	var cfg models.ProjectConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации проектов: %w", err)
	}

	return &cfg, nil
}

func (s *settingsService) UpdateProjectConfig(ctx context.Context, selectedProjects, order []string) (*models.ProjectConfig, error) {
	if selectedProjects == nil {
		selectedProjects = []string{}
	}
	if order == nil {
		order = []string{}
	}

	cfg := models.ProjectConfig{
		SelectedProjects: selectedProjects,
		Order:            order,
	}

	if err := s.settingsRepo.Set(ctx, settingProjects, cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (s *settingsService) UploadResume(ctx context.Context, fileName string, file io.Reader, size int64) (*models.ResumeMeta, error) {
	objectName, err := s.storage.UploadFile(ctx, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки резюме: %w", err)
	}

	meta := &models.ResumeMeta{
		FileName:    fileName,
		ObjectName:  objectName,
		ContentType: "application/pdf",
		Size:        size,
		UploadedAt:  time.Now(),
	}

	if err := s.settingsRepo.Set(ctx, settingResume, meta); err != nil {
		// метаданные не записались, файл в хранилище не оставляем
		if delErr := s.storage.DeleteFile(ctx, objectName); delErr != nil {
			log.Printf("Не удалось удалить осиротевший файл %s: %v", objectName, delErr)
		}
		return nil, fmt.Errorf("ошибка сохранения метаданных резюме: %w", err)
	}

	return meta, nil
}

func (s *settingsService) GetResume(ctx context.Context) (*models.ResumeMeta, io.ReadCloser, error) {
	raw, err := s.settingsRepo.Get(ctx, settingResume)
	if err != nil {
		return nil, nil, err
	}

	var meta models.ResumeMeta
	if err := json.Unmarshal(raw, &meta); err != nil {
		return nil, nil, fmt.Errorf("ошибка разбора метаданных резюме: %w", err)
	}

	reader, err := s.storage.GetFile(ctx, meta.ObjectName)
	if err != nil {
		return nil, nil, err
	}

	return &meta, reader, nil
}

const defaultAboutZh = `# 👋 你好

这里还没有内容，请在管理后台填写「关于我」页面。
`

const defaultAboutEn = `# 👋 Hi there

Nothing here yet. Fill in the "About" page from the admin panel.
`
