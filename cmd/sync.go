package cmd

import (
	"fmt"
	"os"

	"github.com/gitblog-tools/gitblog-cli/internal/config"
	"github.com/gitblog-tools/gitblog-cli/internal/github"
	"github.com/gitblog-tools/gitblog-cli/internal/mirror"
	"github.com/spf13/cobra"
)

var (
	syncIssueNumber int
	syncBackupDir   string
)

var syncCmd = &cobra.Command{
	Use:   "sync [token] [owner/repo]",
	Short: "Regenerate the issue index and backup files",
	Long: `Rebuilds the Markdown index (README.md) from the repository's issues,
grouped by label with a flat all-posts list, and writes a backup file for
every own issue that does not have one yet.

Token and repository may be given as positional arguments; otherwise they
come from the config file or the GITHUB_TOKEN / GITBLOG_REPO env vars.
Use --issue-number to force one issue through the backup writer even if a
backup for it already exists.`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Positional args override the config file, so load without
		// validating first and validate the merged result.
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if len(args) > 0 {
			cfg.Token = args[0]
		}
		if len(args) > 1 {
			cfg.Repo = args[1]
		}
		if syncBackupDir != "" {
			cfg.BackupDir = syncBackupDir
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w\nRun 'gitblog config' or pass token and owner/repo as arguments", err)
		}
		appConfig = cfg

		client, err := github.NewClient(appConfig)
		if err != nil {
			return err
		}

		syncer := &mirror.Syncer{
			Client:       client,
			Store:        mirror.Dir{Path: appConfig.BackupDir},
			IndexFile:    appConfig.IndexFile,
			AnchorCount:  appConfig.AnchorCount,
			IgnoreLabels: appConfig.IgnoreLabels,
			Log:          os.Stdout,
		}

		summary, err := syncer.Run(cmd.Context(), syncIssueNumber)
		if err != nil {
			return err
		}

		fmt.Printf("Generated %s and %d backup files\n", appConfig.IndexFile, summary.Backups)
		return nil
	},
}

func init() {
	syncCmd.Flags().IntVar(&syncIssueNumber, "issue-number", 0, "issue number to back up even if already saved")
	syncCmd.Flags().StringVar(&syncBackupDir, "backup-dir", "", "directory for backup files (default from config)")
	rootCmd.AddCommand(syncCmd)
}
