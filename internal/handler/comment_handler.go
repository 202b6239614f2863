package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"personalsite/internal/models"
	"personalsite/internal/service"
)

func (h *Handlers) GetComments(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	sort := r.URL.Query().Get("sort")
	if sort == "" {
		sort = "newest"
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	comments, err := h.CommentService.ListComments(r.Context(), slug, sort, page, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	if comments == nil {
		comments = []models.Comment{}
	}

	WriteSuccess(w, comments, http.StatusOK)
}

// CreateComment доступен без авторизации — комментируют посетители
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var req service.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	comment, err := h.CommentService.CreateComment(r.Context(), slug, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusCreated)
}

// LikeComment — атомарный инкремент, без авторизации и без дедупликации
func (h *Handlers) LikeComment(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	comment, err := h.CommentService.LikeComment(r.Context(), vars["slug"], vars["commentId"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r) {
		WriteError(w, "Требуются права администратора", http.StatusUnauthorized)
		return
	}

	vars := mux.Vars(r)

	if err := h.CommentService.DeleteComment(r.Context(), vars["slug"], vars["commentId"]); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]bool{"success": true}, http.StatusOK)
}
