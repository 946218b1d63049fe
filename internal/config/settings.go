package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ioutils "github.com/handiism/woodstock/internal/io"
	"github.com/handiism/woodstock/internal/logging"
)

// Settings holds all configuration options.
type Settings struct {
	// Project layout
	ProjectDir  string `json:"project_dir" yaml:"project_dir"`
	DataDirName string `json:"data_dir_name" yaml:"data_dir_name"`

	// Crawler settings
	BaseURL            string  `json:"base_url" yaml:"base_url"`
	MaxPages           int     `json:"max_pages" yaml:"max_pages"`
	MaxConcurrentPages int     `json:"max_concurrent_pages" yaml:"max_concurrent_pages"`
	UserAgent          string  `json:"user_agent" yaml:"user_agent"`
	TimeoutSeconds     int     `json:"timeout_seconds" yaml:"timeout_seconds"`
	MaxRetries         int     `json:"max_retries" yaml:"max_retries"`
	RetryCooldown      float64 `json:"retry_cooldown" yaml:"retry_cooldown"`
	RetryExponent      float64 `json:"retry_exponent" yaml:"retry_exponent"`

	// Poster settings
	SavePosters   bool `json:"save_posters" yaml:"save_posters"`
	PosterMaxSize int  `json:"poster_max_size" yaml:"poster_max_size"`

	// Logging
	LogLevel       string `json:"log_level" yaml:"log_level"` // debug, info, warn, error; empty means info
	LogDevelopment bool   `json:"log_development" yaml:"log_development"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	projectDir, err := os.Getwd()
	if err != nil {
		projectDir = "."
	}
	return &Settings{
		ProjectDir:  projectDir,
		DataDirName: "data",

		BaseURL:            "https://www.imdb.com/",
		MaxPages:           1,
		MaxConcurrentPages: 4,
		UserAgent:          "woodstock",
		TimeoutSeconds:     60,
		MaxRetries:         5,
		RetryCooldown:      0.2,
		RetryExponent:      4.0,

		SavePosters:   false,
		PosterMaxSize: 300,

		LogLevel: "info",
	}
}

// Load reads settings from a JSON or YAML file (chosen by extension).
// A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if isYAML(path) {
		err = yaml.Unmarshal(data, settings)
	} else {
		err = json.Unmarshal(data, settings)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return settings, nil
}

// Save writes settings to a JSON or YAML file (chosen by extension).
func (s *Settings) Save(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}
	if err != nil {
		return err
	}

	return ioutils.WriteFileAtomic(path, data)
}

// Validate checks value ranges.
func (s *Settings) Validate() error {
	var errs []error
	if s.MaxPages < 1 {
		errs = append(errs, fmt.Errorf("max_pages must be positive, got %d", s.MaxPages))
	}
	if s.MaxConcurrentPages < 1 {
		errs = append(errs, fmt.Errorf("max_concurrent_pages must be positive, got %d", s.MaxConcurrentPages))
	}
	if s.TimeoutSeconds < 1 {
		errs = append(errs, fmt.Errorf("timeout_seconds must be positive, got %d", s.TimeoutSeconds))
	}
	if s.MaxRetries < 1 {
		errs = append(errs, fmt.Errorf("max_retries must be positive, got %d", s.MaxRetries))
	}
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("unknown log_level %q", s.LogLevel))
	}
	return errors.Join(errs...)
}

// DataDir returns the data directory, creating it if needed.
func (s *Settings) DataDir() (string, error) {
	dir := filepath.Join(s.ProjectDir, s.DataDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
