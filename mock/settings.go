package mock

import (
	"context"

	"github.com/fwojciec/yoola"
)

var _ yoola.SettingsService = (*SettingsService)(nil)

// SettingsService is a mock implementation of yoola.SettingsService.
type SettingsService struct {
	FindSettingsFn   func(ctx context.Context) (*yoola.Settings, error)
	UpdateSettingsFn func(ctx context.Context, upd yoola.SettingsUpdate) (*yoola.Settings, error)
	ResetSettingsFn  func(ctx context.Context) (*yoola.Settings, error)
}

func (s *SettingsService) FindSettings(ctx context.Context) (*yoola.Settings, error) {
	return s.FindSettingsFn(ctx)
}

func (s *SettingsService) UpdateSettings(ctx context.Context, upd yoola.SettingsUpdate) (*yoola.Settings, error) {
	return s.UpdateSettingsFn(ctx, upd)
}

func (s *SettingsService) ResetSettings(ctx context.Context) (*yoola.Settings, error) {
	return s.ResetSettingsFn(ctx)
}
