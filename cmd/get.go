package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gitblog-tools/gitblog-cli/internal/github"
	"github.com/gitblog-tools/gitblog-cli/internal/markdown"
	"github.com/spf13/cobra"
)

var outputDir string

var getCmd = &cobra.Command{
	Use:   "get <issue-number>",
	Short: "Fetch one issue and output its backup markdown",
	Long:  `Fetches a single issue by number and renders the same markdown document the backup writer produces, including your own comments. Writes to stdout by default, or to a file with --output-dir.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		number, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("issue number must be an integer, got %q", args[0])
		}

		if err := loadConfig(); err != nil {
			return err
		}

		client, err := github.NewClient(appConfig)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		me, err := client.Viewer(ctx)
		if err != nil {
			return fmt.Errorf("resolving identity: %w", err)
		}

		issue, err := client.Issue(ctx, number)
		if err != nil {
			return err
		}

		var comments []github.Comment
		if issue.CommentCount > 0 {
			all, err := client.Comments(ctx, number)
			if err != nil {
				return err
			}
			for _, c := range all {
				if c.Author == me {
					comments = append(comments, c)
				}
			}
		}

		md := markdown.Backup(*issue, comments)

		if outputDir != "" {
			// Ensure output directory exists
			if err := os.MkdirAll(outputDir, 0755); err != nil {
				return fmt.Errorf("creating output directory: %w", err)
			}

			filename := filepath.Join(outputDir, markdown.SafeFilename(issue.Number, issue.Title))
			if err := os.WriteFile(filename, []byte(md), 0644); err != nil {
				return fmt.Errorf("writing file: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Written to %s\n", filename)
		} else {
			fmt.Print(md)
		}

		return nil
	},
}

func init() {
	getCmd.Flags().StringVar(&outputDir, "output-dir", "", "write output to <dir>/<number>_<title>.md instead of stdout")
	rootCmd.AddCommand(getCmd)
}
