package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glimpseframework/holoview/internal/logging"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// Settings is the on-disk configuration. Empty shader or image paths select
// the built-in defaults.
type Settings struct {
	VertexShader   string `toml:"vertex_shader"`
	FragmentShader string `toml:"fragment_shader"`
	Background     string `toml:"background"`
	Hologram       string `toml:"hologram"`
	HoloMap        string `toml:"holo_map"`

	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	Title        string `toml:"title"`
	LogLevel     string `toml:"log_level"`
	SwapInterval int    `toml:"swap_interval"`
	PowerOfTwo   bool   `toml:"power_of_two"`

	// dir is where relative asset paths are resolved from.
	dir string
}

func Default() *Settings {
	return &Settings{
		Width:        800,
		Height:       600,
		Title:        "holoview",
		LogLevel:     "info",
		SwapInterval: 1,
	}
}

// GetPath returns the default settings file, creating its directory.
func GetPath() (string, error) {
	homeDir, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	configDir := filepath.Join(homeDir, ".config", "holoview")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(configDir, "settings.toml"), nil
}

// Load reads settings from path, or from GetPath when path is empty. A
// missing file is created with defaults. Unknown keys are reported and
// ignored; out-of-range values fall back to their defaults.
func Load(path string) (*Settings, error) {
	if path == "" {
		var err error
		if path, err = GetPath(); err != nil {
			return nil, err
		}
	} else {
		var err error
		if path, err = homedir.Expand(path); err != nil {
			return nil, err
		}
	}

	defaults := Default()
	defaults.dir = filepath.Dir(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Logger().Info("creating default settings file", "path", path)
			if err := Write(path, defaults); err != nil {
				logging.Logger().Warn("failed to create default settings file", "path", path, "err", err)
			}
			return defaults, nil
		}
		return nil, err
	}

	settings, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid settings file %s: %w", path, err)
	}
	settings.dir = filepath.Dir(path)
	settings.validate(defaults)
	return settings, nil
}

func decode(data []byte) (*Settings, error) {
	settings := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(settings)

	var strict *toml.StrictMissingError
	if errors.As(err, &strict) {
		for i := range strict.Errors {
			key := strings.Join(strict.Errors[i].Key(), ".")
			logging.Logger().Warn("unrecognised setting key in settings file", "key", key)
		}
		settings = Default()
		err = toml.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Settings) validate(defaults *Settings) {
	if s.Width <= 0 || s.Height <= 0 {
		logging.Logger().Warn("invalid window size, using default",
			"width", s.Width, "height", s.Height,
			"default_width", defaults.Width, "default_height", defaults.Height)
		s.Width, s.Height = defaults.Width, defaults.Height
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		logging.Logger().Warn("invalid log_level, using default", "log_level", s.LogLevel, "default", defaults.LogLevel)
		s.LogLevel = defaults.LogLevel
	}
	if s.SwapInterval < 0 {
		logging.Logger().Warn("invalid swap_interval, using default", "swap_interval", s.SwapInterval, "default", defaults.SwapInterval)
		s.SwapInterval = defaults.SwapInterval
	}
	if strings.TrimSpace(s.Title) == "" {
		s.Title = defaults.Title
	}
}

// Write stores settings as TOML.
func Write(path string, settings *Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Resolve expands ~ and makes p absolute relative to the settings directory.
// Empty stays empty.
func (s *Settings) Resolve(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	p, err := homedir.Expand(p)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(p) && s.dir != "" {
		p = filepath.Join(s.dir, p)
	}
	return p, nil
}
