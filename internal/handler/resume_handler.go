package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
)

func (h *Handlers) UploadResume(w http.ResponseWriter, r *http.Request) {
	if !isAdmin(r) {
		WriteError(w, "Требуются права администратора", http.StatusUnauthorized)
		return
	}

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
			h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, handler, err := r.FormFile("resume")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if handler.Header.Get("Content-Type") != "application/pdf" {
		WriteError(w, "Разрешён только PDF", http.StatusBadRequest)
		return
	}

	meta, err := h.SettingsService.UploadResume(r.Context(), handler.Filename, file, handler.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"success": true,
		"resume":  meta,
	}, http.StatusOK)
}

func (h *Handlers) GetResume(w http.ResponseWriter, r *http.Request) {
	meta, reader, err := h.SettingsService.GetResume(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", meta.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", meta.FileName))

	if _, err := io.Copy(w, reader); err != nil {
		log.Printf("Ошибка отдачи резюме: %v", err)
	}
}
