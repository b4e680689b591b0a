package cmd

import (
	"fmt"

	"github.com/inovacc/ghexplorer/internal/model"
	"github.com/inovacc/ghexplorer/internal/theme"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Show or change the saved theme",
	Long: `Show or change the light/dark theme used by the explorer and by
'ghexplorer user'.

Available Commands:
  show      Print the saved theme (default)
  toggle    Switch between light and dark
  set       Save a specific theme`,
	Args: cobra.NoArgs,
	RunE: runThemeShow,
}

var themeShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved theme",
	Args:  cobra.NoArgs,
	RunE:  runThemeShow,
}

var themeToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Switch between the light and dark theme",
	Args:  cobra.NoArgs,
	RunE:  runThemeToggle,
}

var themeSetCmd = &cobra.Command{
	Use:       "set <light|dark>",
	Short:     "Save a specific theme",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(model.ThemeLight), string(model.ThemeDark)},
	RunE:      runThemeSet,
}

func init() {
	rootCmd.AddCommand(themeCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeToggleCmd)
	themeCmd.AddCommand(themeSetCmd)
}

// withPreferences runs fn with the saved theme already applied.
func withPreferences(cmd *cobra.Command, fn func(*theme.Preferences, *theme.Attributes) error) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := newCLILogger(cfg, false)

	store := openStore(cfg, log)
	defer func() { _ = store.Close() }()

	attrs := &theme.Attributes{}
	prefs := theme.New(store, attrs, log)
	prefs.Init()

	return fn(prefs, attrs)
}

func printTheme(cmd *cobra.Command, attrs *theme.Attributes) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", attrs.Attribute(theme.Attribute), attrs.Indicator)
}

func runThemeShow(cmd *cobra.Command, _ []string) error {
	return withPreferences(cmd, func(_ *theme.Preferences, attrs *theme.Attributes) error {
		printTheme(cmd, attrs)

		return nil
	})
}

func runThemeToggle(cmd *cobra.Command, _ []string) error {
	return withPreferences(cmd, func(prefs *theme.Preferences, attrs *theme.Attributes) error {
		if _, err := prefs.Toggle(); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}

		printTheme(cmd, attrs)

		return nil
	})
}

func runThemeSet(cmd *cobra.Command, args []string) error {
	t := model.Theme(args[0])
	if !t.Valid() {
		return fmt.Errorf("unknown theme %q (want %s or %s)", args[0], model.ThemeLight, model.ThemeDark)
	}

	return withPreferences(cmd, func(prefs *theme.Preferences, attrs *theme.Attributes) error {
		if err := prefs.Set(t); err != nil {
			return fmt.Errorf("failed to save theme: %w", err)
		}

		printTheme(cmd, attrs)

		return nil
	})
}
