package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/yoola"
)

// Compile-time interface verification.
var _ yoola.SettingsService = (*SettingsService)(nil)

// SettingsService implements yoola.SettingsService using SQLite. Each
// setting is one row keyed by its JSON name, with a JSON encoded value.
// Unknown keys are ignored and missing keys fall back to the defaults.
type SettingsService struct {
	db *DB
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(db *DB) *SettingsService {
	return &SettingsService{db: db}
}

// FindSettings returns the stored settings merged over the defaults.
func (s *SettingsService) FindSettings(ctx context.Context) (*yoola.Settings, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stored := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		stored[key] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	settings := yoola.DefaultSettings()
	if len(stored) == 0 {
		return settings, nil
	}

	buf, err := json.Marshal(stored)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(buf, settings); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}
	return settings, nil
}

// UpdateSettings applies upd over the current settings, validates the result
// and stores every key.
func (s *SettingsService) UpdateSettings(ctx context.Context, upd yoola.SettingsUpdate) (*yoola.Settings, error) {
	settings, err := s.FindSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.Apply(upd)
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if err := s.save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// ResetSettings restores the defaults, keeping the onboarding state.
func (s *SettingsService) ResetSettings(ctx context.Context) (*yoola.Settings, error) {
	current, err := s.FindSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings := yoola.DefaultSettings()
	settings.OnboardingCompleted = current.OnboardingCompleted

	if err := s.save(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) save(ctx context.Context, settings *yoola.Settings) error {
	buf, err := json.Marshal(settings)
	if err != nil {
		return err
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(buf, &fields); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range fields {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, string(value)); err != nil {
			return err
		}
	}
	return tx.Commit()
}
