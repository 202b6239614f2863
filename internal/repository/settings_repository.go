package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context, key string) (json.RawMessage, error) {
	query := `SELECT value FROM settings WHERE key = $1`

	var value json.RawMessage
	err := r.db.GetContext(ctx, &value, query, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("настройка %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении настройки: %w", err)
	}

	return value, nil
}

// Set — upsert по первичному ключу, второй документ с тем же ключом
// появиться не может
func (r *settingsRepository) Set(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("ошибка сериализации настройки: %w", err)
	}

	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	_, err = r.db.ExecContext(ctx, query, key, data, time.Now())
	if err != nil {
		return fmt.Errorf("ошибка при сохранении настройки %s: %w", key, err)
	}

	return nil
}
