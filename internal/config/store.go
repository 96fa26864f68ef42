package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	appName    = "tuiform"
	configFile = "form.yaml"
)

// Serializes writes so two saves never interleave their temp files.
var fileMutex sync.Mutex

// GetConfigDir returns the OS-appropriate configuration directory.
//   - Linux: $XDG_CONFIG_HOME/tuiform or $HOME/.config/tuiform
//   - macOS: $HOME/.config/tuiform
//   - Windows: %LOCALAPPDATA%\tuiform
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdgConfigHome := os.Getenv("XDG_CONFIG_HOME"); xdgConfigHome != "" {
			return filepath.Join(xdgConfigHome, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the default path of the form definition.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load reads and validates a definition. An empty path means the default
// location, where a missing file yields DefaultDefinition. It also returns the
// path that was resolved.
func Load(path string) (*Definition, string, error) {
	explicit := path != ""
	if !explicit {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return nil, "", fmt.Errorf("failed to get config path: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return DefaultDefinition(), path, nil
		}
		return nil, path, fmt.Errorf("failed to read form definition: %w", err)
	}

	def, err := Parse(data)
	if err != nil {
		return nil, path, fmt.Errorf("%s: %w", path, err)
	}
	return def, path, nil
}

// Parse decodes and validates a YAML definition.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse form definition: %w", err)
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Save writes the definition to path atomically. An empty path means the
// default location. The directory is created if needed.
func (d *Definition) Save(path string) (string, error) {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if path == "" {
		var err error
		path, err = GetConfigPath()
		if err != nil {
			return "", fmt.Errorf("failed to get config path: %w", err)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(d)
	if err != nil {
		return "", fmt.Errorf("failed to marshal form definition: %w", err)
	}

	header := []byte(`# tuiform form definition
#
# fields:      labels shown in order, with optional pre-filled values
# validation:  rule applied to every field on submit
#              (non-empty, min-length + min_length, pattern + pattern
#              and an optional min_length)
# styles:      optional default/invalid/hovered/active overrides
#
# Location: ` + path + `

`)
	data = append(header, data...)

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write temporary config file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to save config file: %w", err)
	}

	return path, nil
}
