package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"personalsite/internal/models"
	"personalsite/internal/service"
)

type PostsGetResponse struct {
	Posts []models.Post `json:"posts"`
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	WriteSuccess(w, PostsGetResponse{Posts: posts}, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.PostService.GetPost(r.Context(), slug)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	// мутации постов доступны только администратору,
	// до сервиса неавторизованный запрос не доходит
	claims := currentClaims(r)
	if !claims.IsAdmin() {
		WriteError(w, "Требуются права администратора", http.StatusUnauthorized)
		return
	}

	var req struct {
		Slug       string   `json:"slug"`
		Title      string   `json:"title" validate:"required"`
		Excerpt    string   `json:"excerpt"`
		Content    string   `json:"content" validate:"required"`
		Category   string   `json:"category"`
		Tags       []string `json:"tags"`
		CoverImage string   `json:"coverImage"`
		ReadTime   int      `json:"readTime"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Заголовок и содержание обязательны", http.StatusBadRequest)
		return
	}

	serviceReq := service.CreatePostRequest{
		Slug:       req.Slug,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Category:   req.Category,
		Tags:       req.Tags,
		CoverImage: req.CoverImage,
		ReadTime:   req.ReadTime,
		AuthorID:   claims.UserID,
	}

	post, err := h.PostService.CreatePost(r.Context(), serviceReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r) {
		WriteError(w, "Требуются права администратора", http.StatusUnauthorized)
		return
	}

	slug := mux.Vars(r)["slug"]

	var req service.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), slug, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r) {
		WriteError(w, "Требуются права администратора", http.StatusUnauthorized)
		return
	}

	slug := mux.Vars(r)["slug"]

	if err := h.PostService.DeletePost(r.Context(), slug); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Пост успешно удален"}, http.StatusOK)
}
