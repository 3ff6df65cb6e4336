package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/gitblog-tools/gitblog-cli/internal/config"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure GitHub connection settings",
	Long:  `Interactively set up the repository and personal access token. Settings are saved to ~/.gitblog.yaml.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reader := bufio.NewReader(os.Stdin)

		// Load existing config for defaults
		existing, _ := config.Load(cfgFile)

		// Repository
		defaultRepo := existing.Repo
		if defaultRepo != "" {
			fmt.Printf("Repository [%s]: ", defaultRepo)
		} else {
			fmt.Print("Repository (owner/repo): ")
		}
		repo, _ := reader.ReadString('\n')
		repo = strings.TrimSpace(repo)
		if repo == "" {
			repo = defaultRepo
		}

		// Token (masked input)
		fmt.Print("Personal access token (input hidden): ")
		tokenBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Println() // newline after hidden input
		if err != nil {
			return fmt.Errorf("reading token: %w", err)
		}
		token := strings.TrimSpace(string(tokenBytes))
		if token == "" {
			token = existing.Token
		}

		cfg := existing
		cfg.Repo = repo
		cfg.Token = token

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}

		if err := config.Save(cfg, path); err != nil {
			return err
		}

		fmt.Printf("Configuration saved to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
