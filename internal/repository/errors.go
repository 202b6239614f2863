package repository

import (
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound = errors.New("запись не найдена")
	ErrConflict = errors.New("запись уже существует")
	// ErrInvalidCredentials один и тот же для неизвестного пользователя
	// и неверного пароля, чтобы нельзя было перебирать аккаунты
	ErrInvalidCredentials = errors.New("неверное имя пользователя или пароль")
)

// isUniqueViolation распознаёт нарушение уникального индекса Postgres (23505).
// Индекс в БД — настоящая гарантия уникальности, предварительные
// проверки в сервисах лишь ранний отказ.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
