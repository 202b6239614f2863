package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"personalsite/internal/repository"
	"personalsite/internal/service"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// WriteSuccess - функция для успешных ответов
func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError переводит ошибки сервисов в HTTP-статусы.
// Детали внутренних ошибок остаются в логе, клиенту уходит общий текст.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrInvalidCredentials):
		WriteError(w, "Неверное имя пользователя или пароль", http.StatusUnauthorized)
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "Не найдено", http.StatusNotFound)
	case errors.Is(err, repository.ErrConflict):
		WriteError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrTitleContentRequired),
		errors.Is(err, service.ErrNameContentRequired),
		errors.Is(err, service.ErrAboutContentRequired):
		WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("Внутренняя ошибка: %v", err)
		WriteError(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}
