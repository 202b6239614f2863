package handlers

import (
	"encoding/json"
	"net/http"
)

func (h *Handlers) GetAbout(w http.ResponseWriter, r *http.Request) {
	about, err := h.SettingsService.GetAbout(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, about, http.StatusOK)
}

func (h *Handlers) UpdateAbout(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r) {
		WriteError(w, "Требуются права администратора", http.StatusUnauthorized)
		return
	}

	var req struct {
		ContentZh string `json:"contentZh"`
		ContentEn string `json:"contentEn"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.SettingsService.UpdateAbout(r.Context(), req.ContentZh, req.ContentEn); err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Сохранено"}, http.StatusOK)
}

func (h *Handlers) GetProjectConfig(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.SettingsService.GetProjectConfig(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, cfg, http.StatusOK)
}

func (h *Handlers) UpdateProjectConfig(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r) {
		WriteError(w, "Требуются права администратора", http.StatusUnauthorized)
		return
	}

	var req struct {
		SelectedProjects []string `json:"selectedProjects"`
		Order            []string `json:"order"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	cfg, err := h.SettingsService.UpdateProjectConfig(r.Context(), req.SelectedProjects, req.Order)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, cfg, http.StatusOK)
}
