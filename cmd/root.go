package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/ghexplorer/internal/application"
	"github.com/inovacc/ghexplorer/internal/cli"
	"github.com/inovacc/ghexplorer/internal/logger"
	"github.com/inovacc/ghexplorer/internal/metrics"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNoTerminal = errors.New("the interactive explorer needs a terminal; use 'ghexplorer user <login>' instead")

var rootCmd = &cobra.Command{
	Use:     application.AppName,
	Short:   "Explore GitHub users and their repositories",
	Version: application.Version,
	Long: `ghexplorer looks up a public GitHub profile and its repositories.

Run it without arguments to start the interactive explorer:
  enter      search for the typed username
  tab        move focus between the input, the search button and the theme toggle
  ctrl+t     toggle between the light and dark theme
  esc        quit

The theme choice is remembered between runs.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runExplorer,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default: <config dir>/ghexplorer/config.ini)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("api-url", "", "GitHub REST API base URL")
}

func runExplorer(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) || !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNoTerminal
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The explorer owns the screen, so logs go to a file.
	log, closer, err := logger.OpenFile(cfg.Log.File, logger.ParseLevel(cfg.Log.Level))
	if err != nil {
		return err
	}

	defer func() { _ = closer.Close() }()

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	store := openStore(cfg, log)
	defer func() { _ = store.Close() }()

	m := cli.NewExplorer(cmd.Context(), cli.ExplorerOptions{
		Fetcher: client,
		Store:   store,
		Logger:  log,
		Metrics: metrics.NewCollector(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("explorer: %w", err)
	}

	return nil
}
