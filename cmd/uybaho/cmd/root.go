// Package cmd implements the CLI commands for uybaho.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/akbarovs/uybaho/internal/config"
)

var (
	cfgFile string
	apiURL  string
)

var rootCmd = &cobra.Command{
	Use:   "uybaho",
	Short: "Score real-estate listings in Uzbekistan",
	Long: "Uybaho scores property listings against regional price baselines " +
		"and explains, in plain Uzbek, whether the asking price is a deal.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().
		StringVar(&apiURL, "api-url", "http://localhost:8080", "API server URL")
	rootCmd.AddCommand(versionCommand())
}

// loadConfig loads the configured YAML file, or built-in defaults when no
// --config flag was given.
func loadConfig() (*config.Config, error) {
	if cfgFile == "" {
		return config.Default(), nil
	}
	return config.Load(cfgFile)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
