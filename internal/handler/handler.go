package handlers

import (
	"github.com/go-playground/validator/v10"

	"personalsite/internal/config"
	"personalsite/internal/models"
	"personalsite/internal/service"

	"net/http"
)

// ClaimsContextKey — под этим ключом middleware кладёт проверенные
// claims сессии в контекст запроса
const ClaimsContextKey = "claims"

type Handlers struct {
	AuthService     service.AuthService
	PostService     service.PostService
	CommentService  service.CommentService
	SettingsService service.SettingsService
	Cfg             *config.Config
	Validate        *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		AuthService:     services.Auth,
		PostService:     services.Post,
		CommentService:  services.Comment,
		SettingsService: services.Settings,
		Cfg:             config,
		Validate:        validator.New(),
	}
}

// currentClaims возвращает nil, если сессии нет — это не ошибка
func currentClaims(r *http.Request) *models.Claims {
	claims, _ := r.Context().Value(ClaimsContextKey).(*models.Claims)
	return claims
}

func isAdmin(r *http.Request) bool {
	return currentClaims(r).IsAdmin()
}
