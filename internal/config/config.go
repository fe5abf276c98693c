// Package config loads the wheel's YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/spinwheel/internal/spin"
	"github.com/idilsaglam/spinwheel/internal/wheel"
)

// Settings holds the effective configuration.
type Settings struct {
	DataDir        string   `yaml:"data_dir,omitempty"`
	SpinDurationMS int      `yaml:"spin_duration_ms,omitempty"`
	Radius         float64  `yaml:"radius,omitempty"`
	Palette        []string `yaml:"palette,omitempty"`
	Theme          string   `yaml:"theme,omitempty"`
	LogLevel       string   `yaml:"log_level,omitempty"`
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		DataDir:        DataDir(),
		SpinDurationMS: int(spin.DefaultDuration / time.Millisecond),
		Radius:         150,
		Palette:        append([]string(nil), wheel.DefaultColors...),
		Theme:          "classic",
		LogLevel:       "info",
	}
}

// Load reads path over the defaults. A missing file is not an error.
// The SPINWHEEL_DATA_DIR environment variable overrides data_dir.
func Load(path string) (Settings, error) {
	s := Defaults()
	file, err := loadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Settings{}, fmt.Errorf("loading config: %w", err)
	}
	s = merge(s, file)
	if env := os.Getenv(DataDirEnv); env != "" {
		s.DataDir = env
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func loadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// merge lays non-zero file values over base.
func merge(base, file Settings) Settings {
	out := base
	if file.DataDir != "" {
		out.DataDir = file.DataDir
	}
	if file.SpinDurationMS != 0 {
		out.SpinDurationMS = file.SpinDurationMS
	}
	if file.Radius != 0 {
		out.Radius = file.Radius
	}
	if len(file.Palette) > 0 {
		out.Palette = file.Palette
	}
	if file.Theme != "" {
		out.Theme = file.Theme
	}
	if file.LogLevel != "" {
		out.LogLevel = file.LogLevel
	}
	return out
}

// Validate rejects settings the wheel cannot run with.
func (s Settings) Validate() error {
	if s.SpinDurationMS < 0 {
		return fmt.Errorf("spin_duration_ms must be positive, got %d", s.SpinDurationMS)
	}
	if s.Radius < 0 {
		return fmt.Errorf("radius must be positive, got %v", s.Radius)
	}
	if _, err := wheel.ParsePalette(s.Palette); err != nil {
		return err
	}
	return nil
}

// SpinDuration is the configured spin length.
func (s Settings) SpinDuration() time.Duration {
	if s.SpinDurationMS <= 0 {
		return spin.DefaultDuration
	}
	return time.Duration(s.SpinDurationMS) * time.Millisecond
}

// WheelPalette parses the palette; Validate has already vetted it.
func (s Settings) WheelPalette() wheel.Palette {
	p, err := wheel.ParsePalette(s.Palette)
	if err != nil {
		return wheel.DefaultPalette()
	}
	return p
}
