package cmd

import (
	"fmt"
	"os"

	"github.com/gitblog-tools/gitblog-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile   string
	appConfig config.Config
	version   = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:     "gitblog",
	Short:   "Mirror GitHub Issues into a Markdown blog index and backups",
	Long:    `A CLI tool that mirrors a GitHub repository's issues into a Markdown index (README.md) and standalone per-issue backup files, for issue-based blogs.`,
	Version: version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.gitblog.yaml)")
}

// loadConfig loads and validates configuration. Commands that need GitHub access call this.
func loadConfig() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w\nRun 'gitblog config' to set up credentials", err)
	}
	appConfig = cfg
	return nil
}
