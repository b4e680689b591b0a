package cmd

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/inovacc/ghexplorer/internal/application"
	"github.com/inovacc/ghexplorer/internal/config"
	"github.com/inovacc/ghexplorer/internal/database"
	"github.com/inovacc/ghexplorer/internal/ghclient"
	"github.com/inovacc/ghexplorer/internal/logger"
	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/spf13/cobra"
)

// appDir is replaced in tests.
var appDir = application.GetApplicationDirectory

// loadConfig layers the persistent flags over the file and environment.
func loadConfig(cmd *cobra.Command) (*model.Config, error) {
	dir, err := appDir()
	if err != nil {
		return nil, err
	}

	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(dir, path)
	if err != nil {
		return nil, err
	}

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.Log.Level = v
	}

	if v, _ := cmd.Flags().GetString("api-url"); v != "" {
		cfg.GitHub.APIURL = v
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func newClient(cfg *model.Config) (*ghclient.Client, error) {
	return ghclient.NewFromConfig(cfg.GitHub, application.UserAgent())
}

// openStore opens the preference database. A database that cannot be
// opened falls back to memory so lookups keep working.
func openStore(cfg *model.Config, log *slog.Logger) database.Store {
	store, err := database.Open(cfg.Storage.Path)
	if err == nil {
		if err = store.Ping(); err != nil {
			_ = store.Close()
		}
	}

	if err != nil {
		log.Warn("preferences unavailable, using defaults",
			slog.String("path", cfg.Storage.Path),
			slog.Any("error", err))

		return database.NewMemory()
	}

	return store
}

// newCLILogger logs to stderr, as JSON when the command prints JSON.
func newCLILogger(cfg *model.Config, jsonOutput bool) *slog.Logger {
	return logger.New(os.Stderr, logger.ParseLevel(cfg.Log.Level), jsonOutput)
}

// outputJSON encodes data as indented JSON to w
func outputJSON(w io.Writer, data any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(data)
}
