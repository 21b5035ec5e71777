package yoola

import (
	"context"
	"net/url"
	"strings"
)

// Settings defaults.
const (
	DefaultAPIBaseURL = "http://127.0.0.1:8000"
	DefaultTheme      = "light"
	DefaultAIProvider = "gpt"
)

// Settings are the user preferences that persist between runs.
type Settings struct {
	APIBaseURL           string `json:"apiBaseUrl" yaml:"apiBaseUrl"`
	PreferredLanguage    string `json:"preferredLanguage" yaml:"preferredLanguage"`
	HighlightLinks       bool   `json:"highlightLinks" yaml:"highlightLinks"`
	ShowIndicators       bool   `json:"showIndicators" yaml:"showIndicators"`
	AutoDetect           bool   `json:"autoDetect" yaml:"autoDetect"`
	NotificationsEnabled bool   `json:"notificationsEnabled" yaml:"notificationsEnabled"`
	Theme                string `json:"theme" yaml:"theme"`
	AIProvider           string `json:"aiProvider" yaml:"aiProvider"`
	OnboardingCompleted  bool   `json:"onboardingCompleted" yaml:"onboardingCompleted"`
}

// DefaultSettings returns the settings used before the user changes anything.
func DefaultSettings() *Settings {
	return &Settings{
		APIBaseURL:           DefaultAPIBaseURL,
		PreferredLanguage:    DefaultLanguage,
		HighlightLinks:       true,
		ShowIndicators:       true,
		AutoDetect:           true,
		NotificationsEnabled: true,
		Theme:                DefaultTheme,
		AIProvider:           DefaultAIProvider,
	}
}

// Validate returns an error if the settings contain invalid fields.
func (s *Settings) Validate() error {
	u, err := url.Parse(s.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return Errorf(EINVALID, "Please enter a valid URL")
	}
	if strings.TrimSpace(s.PreferredLanguage) == "" {
		return Errorf(EINVALID, "Preferred language required.")
	}
	switch s.Theme {
	case "light", "dark", "system":
	default:
		return Errorf(EINVALID, "Unknown theme %q.", s.Theme)
	}
	if strings.TrimSpace(s.AIProvider) == "" {
		return Errorf(EINVALID, "AI provider required.")
	}
	return nil
}

// Apply copies every non-nil field of upd onto s.
func (s *Settings) Apply(upd SettingsUpdate) {
	if v := upd.APIBaseURL; v != nil {
		s.APIBaseURL = strings.TrimRight(strings.TrimSpace(*v), "/")
	}
	if v := upd.PreferredLanguage; v != nil {
		s.PreferredLanguage = *v
	}
	if v := upd.HighlightLinks; v != nil {
		s.HighlightLinks = *v
	}
	if v := upd.ShowIndicators; v != nil {
		s.ShowIndicators = *v
	}
	if v := upd.AutoDetect; v != nil {
		s.AutoDetect = *v
	}
	if v := upd.NotificationsEnabled; v != nil {
		s.NotificationsEnabled = *v
	}
	if v := upd.Theme; v != nil {
		s.Theme = *v
	}
	if v := upd.AIProvider; v != nil {
		s.AIProvider = *v
	}
	if v := upd.OnboardingCompleted; v != nil {
		s.OnboardingCompleted = *v
	}
}

// SettingsUpdate represents a partial change to Settings.
// Nil fields are left untouched.
type SettingsUpdate struct {
	APIBaseURL           *string `json:"apiBaseUrl,omitempty" yaml:"apiBaseUrl,omitempty"`
	PreferredLanguage    *string `json:"preferredLanguage,omitempty" yaml:"preferredLanguage,omitempty"`
	HighlightLinks       *bool   `json:"highlightLinks,omitempty" yaml:"highlightLinks,omitempty"`
	ShowIndicators       *bool   `json:"showIndicators,omitempty" yaml:"showIndicators,omitempty"`
	AutoDetect           *bool   `json:"autoDetect,omitempty" yaml:"autoDetect,omitempty"`
	NotificationsEnabled *bool   `json:"notificationsEnabled,omitempty" yaml:"notificationsEnabled,omitempty"`
	Theme                *string `json:"theme,omitempty" yaml:"theme,omitempty"`
	AIProvider           *string `json:"aiProvider,omitempty" yaml:"aiProvider,omitempty"`
	OnboardingCompleted  *bool   `json:"onboardingCompleted,omitempty" yaml:"onboardingCompleted,omitempty"`
}

// SettingsService persists Settings.
type SettingsService interface {
	// FindSettings returns the stored settings merged over the defaults.
	FindSettings(ctx context.Context) (*Settings, error)

	// UpdateSettings applies upd, validates the result and stores it.
	UpdateSettings(ctx context.Context, upd SettingsUpdate) (*Settings, error)

	// ResetSettings restores the defaults. Onboarding state is kept.
	ResetSettings(ctx context.Context) (*Settings, error)
}
