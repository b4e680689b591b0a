package cmd

import (
	"github.com/inovacc/ghexplorer/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage ghexplorer configuration",
	Long: `Commands for managing ghexplorer configuration.

Configuration is read from config.ini in the application directory (or
--config), then from GHEXPLORER_API_URL, GHEXPLORER_TIMEOUT,
GHEXPLORER_LOG_LEVEL and GHEXPLORER_DB, then from flags.

Available Commands:
  show      Print the effective configuration`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return outputJSON(cmd.OutOrStdout(), cfg)
		}

		return config.Write(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)

	configShowCmd.Flags().Bool("json", false, "Output as JSON")
}
