// Package config loads the ghexplorer configuration.
//
// Values are layered: built-in defaults, then an optional INI file, then
// environment variables. Command-line flags are applied by the cmd package
// on top of the result.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/inovacc/ghexplorer/internal/model"
	"gopkg.in/ini.v1"
)

// FileName is the configuration file looked up in the application directory.
const FileName = "config.ini"

// Environment overrides.
const (
	EnvAPIURL   = "GHEXPLORER_API_URL"
	EnvTimeout  = "GHEXPLORER_TIMEOUT"
	EnvLogLevel = "GHEXPLORER_LOG_LEVEL"
	EnvDB       = "GHEXPLORER_DB"
)

// Load builds the configuration for appDir. When path is empty the default
// file in appDir is used if present; an explicit path must exist.
func Load(appDir, path string) (*model.Config, error) {
	cfg := model.DefaultConfig(appDir)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(appDir, FileName)
	}

	if err := loadFile(&cfg, path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	applyEnv(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func loadFile(cfg *model.Config, path string) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	file, err := ini.Load(path)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := file.MapTo(cfg); err != nil {
		return fmt.Errorf("failed to map %s: %w", path, err)
	}

	return nil
}

// Write renders cfg in the INI format Load reads.
func Write(w io.Writer, cfg *model.Config) error {
	file := ini.Empty()

	if err := ini.ReflectFrom(file, cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	_, err := file.WriteTo(w)

	return err
}

func applyEnv(cfg *model.Config) {
	cfg.GitHub.APIURL = getEnvString(EnvAPIURL, cfg.GitHub.APIURL)
	cfg.GitHub.Timeout = getEnvDuration(EnvTimeout, cfg.GitHub.Timeout)
	cfg.Log.Level = getEnvString(EnvLogLevel, cfg.Log.Level)
	cfg.Storage.Path = getEnvString(EnvDB, cfg.Storage.Path)
}

// Validate rejects values the rest of the application cannot work with.
func Validate(cfg *model.Config) error {
	if cfg.GitHub.APIURL == "" {
		return errors.New("github.api_url must not be empty")
	}

	if cfg.GitHub.Timeout < 0 {
		return errors.New("github.timeout must be >= 0")
	}

	if cfg.GitHub.RequestsPerSecond < 0 {
		return errors.New("github.requests_per_second must be >= 0")
	}

	if cfg.GitHub.Burst < 0 {
		return errors.New("github.burst must be >= 0")
	}

	if cfg.Storage.Path == "" {
		return errors.New("storage.path must not be empty")
	}

	return nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}

	if d, err := time.ParseDuration(v); err == nil {
		return d
	}

	// Bare numbers are seconds.
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}

	return defaultVal
}
