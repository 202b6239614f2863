package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"unicode/utf8"

	"personalsite/internal/models"
	"personalsite/internal/repository"
	"personalsite/internal/service"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required"`
}

type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

type UserResponse struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
}

type AuthCheckResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user"`
}

var patternEmail = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func safeUser(user *models.User) *UserResponse {
	return &UserResponse{
		UserID: user.UserID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		Avatar: user.Avatar,
	}
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	// email verification
	if !patternEmail.MatchString(req.Email) {
		WriteError(w, "Неверный формат email", http.StatusBadRequest)
		return
	}

	// password verification
	if utf8.RuneCountInString(req.Password) < 6 {
		WriteError(w, "Пароль должен быть не менее 6 символов", http.StatusBadRequest)
		return
	}

	if req.Name == "" {
		WriteError(w, "Имя не может быть пустым", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	serviceReq := service.RegisterRequest{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	}

	// registering a user in the service
	user, token, err := h.AuthService.Register(r.Context(), serviceReq)
	if err != nil {
		// занятые email/имя и зарезервированный логин — 400 наружу
		if errors.Is(err, repository.ErrConflict) {
			WriteError(w, "Email или имя уже заняты", http.StatusBadRequest)
			return
		}
		writeServiceError(w, err)
		return
	}

	h.setAuthCookie(w, token)
	WriteSuccess(w, map[string]interface{}{
		"success": true,
		"user":    safeUser(user),
	}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.EmailOrUsername, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.setAuthCookie(w, token)
	WriteSuccess(w, map[string]interface{}{
		"success": true,
		"message": "Вход выполнен",
		"user":    safeUser(user),
	}, http.StatusOK)
}

func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	// токен без состояния, сервер ничего не отзывает — только чистим cookie
	h.clearAuthCookie(w)
	WriteSuccess(w, map[string]bool{"success": true}, http.StatusOK)
}

// GetCurrentUser никогда не возвращает ошибку: нет сессии — authenticated:false
func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	claims := currentClaims(r)
	if claims == nil {
		WriteSuccess(w, AuthCheckResponse{Authenticated: false, User: nil}, http.StatusOK)
		return
	}

	WriteSuccess(w, AuthCheckResponse{
		Authenticated: true,
		User: &UserResponse{
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
			Role:   claims.Role,
		},
	}, http.StatusOK)
}

func (h *Handlers) CheckAuth(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]bool{"isAdmin": isAdmin(r)}, http.StatusOK)
}
