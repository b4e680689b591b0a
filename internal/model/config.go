package model

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"
)

// DefaultAPIURL is the public GitHub REST endpoint.
const DefaultAPIURL = "https://api.github.com/"

// GitHubConfig controls how the GitHub REST API is reached.
type GitHubConfig struct {
	// APIURL is the REST base URL, e.g. https://ghe.example.com/api/v3/
	APIURL string `ini:"api_url" json:"api_url"`

	// Timeout bounds each request; zero means no timeout
	Timeout time.Duration `ini:"timeout" json:"timeout"`

	// RequestsPerSecond paces outgoing calls; zero disables pacing
	RequestsPerSecond float64 `ini:"requests_per_second" json:"requests_per_second"`

	// Burst is the number of calls allowed before pacing kicks in
	Burst int `ini:"burst" json:"burst"`
}

type githubConfigJSON struct {
	APIURL            string  `json:"api_url"`
	Timeout           string  `json:"timeout"`
	RequestsPerSecond float64 `json:"requests_per_second"`
	Burst             int     `json:"burst"`
}

// MarshalJSON writes Timeout as a duration string ("30s"), as in the INI file.
func (c GitHubConfig) MarshalJSON() ([]byte, error) {
	return json.Marshal(githubConfigJSON{
		APIURL:            c.APIURL,
		Timeout:           c.Timeout.String(),
		RequestsPerSecond: c.RequestsPerSecond,
		Burst:             c.Burst,
	})
}

func (c *GitHubConfig) UnmarshalJSON(data []byte) error {
	var raw githubConfigJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var timeout time.Duration

	if raw.Timeout != "" {
		d, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout %q: %w", raw.Timeout, err)
		}

		timeout = d
	}

	*c = GitHubConfig{
		APIURL:            raw.APIURL,
		Timeout:           timeout,
		RequestsPerSecond: raw.RequestsPerSecond,
		Burst:             raw.Burst,
	}

	return nil
}

// StorageConfig locates the preference database.
type StorageConfig struct {
	// Path is the database file
	Path string `ini:"path" json:"path"`
}

// LogConfig controls diagnostic output.
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `ini:"level" json:"level"`

	// File receives logs while the terminal UI owns the screen
	File string `ini:"file" json:"file"`
}

// Config holds the application configuration
type Config struct {
	GitHub  GitHubConfig  `ini:"github" json:"github"`
	Storage StorageConfig `ini:"storage" json:"storage"`
	Log     LogConfig     `ini:"log" json:"log"`
}

// DefaultConfig returns a Config with sensible defaults rooted at appDir.
func DefaultConfig(appDir string) Config {
	return Config{
		GitHub: GitHubConfig{
			APIURL:            DefaultAPIURL,
			Timeout:           30 * time.Second,
			RequestsPerSecond: 5,
			Burst:             10,
		},
		Storage: StorageConfig{
			Path: filepath.Join(appDir, "ghexplorer.bolt"),
		},
		Log: LogConfig{
			Level: "warn",
			File:  filepath.Join(appDir, "ghexplorer.log"),
		},
	}
}
