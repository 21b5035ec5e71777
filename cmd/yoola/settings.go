package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fwojciec/yoola"
	"gopkg.in/yaml.v3"
)

// Run executes the settings show command.
func (c *SettingsShowCmd) Run(deps *Dependencies) error {
	s, err := deps.Settings.FindSettings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
		return err
	}
	return writeSettings(deps.Stdout, s)
}

// Run executes the settings set command.
func (c *SettingsSetCmd) Run(deps *Dependencies) error {
	upd, err := parseSetting(c.Key, c.Value)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
		return err
	}

	s, err := deps.Settings.UpdateSettings(deps.Ctx, upd)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Settings saved successfully!")
	return writeSettings(deps.Stdout, s)
}

// Run executes the settings reset command.
func (c *SettingsResetCmd) Run(deps *Dependencies) error {
	s, err := deps.Settings.ResetSettings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Settings reset to defaults.")
	return writeSettings(deps.Stdout, s)
}

// Run executes the settings export command.
func (c *SettingsExportCmd) Run(deps *Dependencies) error {
	s, err := deps.Settings.FindSettings(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
		return err
	}

	if c.File == "" {
		return writeSettings(deps.Stdout, s)
	}

	f, err := os.Create(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	defer f.Close()

	if err := writeSettings(f, s); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "Exported settings to %s\n", c.File)
	return nil
}

// Run executes the settings import command. Keys missing from the file are
// left unchanged.
func (c *SettingsImportCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	var upd yoola.SettingsUpdate
	if err := yaml.Unmarshal(data, &upd); err != nil {
		fmt.Fprintf(deps.Stderr, "error: invalid settings file: %s\n", err)
		return yoola.Errorf(yoola.EINVALID, "invalid settings file: %v", err)
	}

	s, err := deps.Settings.UpdateSettings(deps.Ctx, upd)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", yoola.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported settings from %s\n", c.File)
	return writeSettings(deps.Stdout, s)
}

func writeSettings(w io.Writer, s *yoola.Settings) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}

// parseSetting converts a key and a textual value into a SettingsUpdate.
func parseSetting(key, value string) (yoola.SettingsUpdate, error) {
	var upd yoola.SettingsUpdate

	parseBool := func() (*bool, error) {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, yoola.Errorf(yoola.EINVALID, "%s must be true or false", key)
		}
		return &b, nil
	}

	var err error
	switch key {
	case "apiBaseUrl":
		upd.APIBaseURL = &value
	case "preferredLanguage":
		if !yoola.IsSupportedLanguage(value) {
			return upd, yoola.Errorf(yoola.EINVALID, "unsupported language %q", value)
		}
		upd.PreferredLanguage = &value
	case "theme":
		upd.Theme = &value
	case "aiProvider":
		upd.AIProvider = &value
	case "highlightLinks":
		upd.HighlightLinks, err = parseBool()
	case "showIndicators":
		upd.ShowIndicators, err = parseBool()
	case "autoDetect":
		upd.AutoDetect, err = parseBool()
	case "notificationsEnabled":
		upd.NotificationsEnabled, err = parseBool()
	case "onboardingCompleted":
		upd.OnboardingCompleted, err = parseBool()
	default:
		return upd, yoola.Errorf(yoola.EINVALID, "unknown setting %q", key)
	}
	return upd, err
}
