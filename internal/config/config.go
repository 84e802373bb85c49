package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joeshaw/envdecode"
)

// Settings are the tool's own knobs, read from the environment.
type Settings struct {
	// ProfilePath overrides the profile location. ENV: CLIKIT_PROFILE
	ProfilePath string `env:"CLIKIT_PROFILE"`
	// LogLevel is debug, info, warn or error. ENV: CLIKIT_LOG_LEVEL
	LogLevel string `env:"CLIKIT_LOG_LEVEL,default=warn"`
	// LogFormat is text or json. ENV: CLIKIT_LOG_FORMAT
	LogFormat string `env:"CLIKIT_LOG_FORMAT,default=text"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := envdecode.Decode(&s); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Settings{}, fmt.Errorf("reading environment: %w", err)
	}
	if s.LogLevel == "" {
		s.LogLevel = "warn"
	}
	if s.LogFormat == "" {
		s.LogFormat = "text"
	}
	return s, nil
}

// ConfigDir returns the platform-appropriate config directory for clikit.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "clikit"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "clikit"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "clikit"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "clikit"), nil
	default:
		return filepath.Join(home, ".config", "clikit"), nil
	}
}

// ProfilePath returns the default profile location.
func ProfilePath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "profile.json"), nil
}

// Store reads and writes the saved profile.
type Store struct {
	path string
}

// NewStore opens the profile at path, or at ProfilePath when path is empty.
func NewStore(path string) (*Store, error) {
	if path == "" {
		p, err := ProfilePath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &Store{path: path}, nil
}

// Path returns the profile file location.
func (s *Store) Path() string { return s.path }

// Load returns the saved profile. A missing file yields an empty profile.
func (s *Store) Load() (map[string]any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	profile := map[string]any{}
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}
	return profile, nil
}

// Save writes the profile. The file holds secrets and is only readable by
// its owner.
func (s *Store) Save(profile map[string]any) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling profile: %w", err)
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Remove deletes the profile. It reports whether a profile existed.
func (s *Store) Remove() (bool, error) {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("removing profile: %w", err)
	}
	return true, nil
}
