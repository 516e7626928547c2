package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vchernov/ollama-dashboard/pkg/domain"
)

// settingsRepository is a small key-value store over the local SQLite file.
// It persists the process-wide model preference; writes are last-write-wins
// with no transactional guarantee.
type settingsRepository struct {
	db *sql.DB
}

func NewSettingsRepository(db *sql.DB) *settingsRepository {
	return &settingsRepository{db: db}
}

func (s *settingsRepository) Save(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO settings (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("saving setting %q: %w", key, err)
	}
	return nil
}

func (s *settingsRepository) GetByKey(ctx context.Context, key string) (string, error) {
	const query = `
		SELECT value
		FROM settings
		WHERE key = $1
	`

	var value string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("fetching setting %q: %w", key, err)
	}

	return value, nil
}
