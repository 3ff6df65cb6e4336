// Package markdown renders issues into the index document and standalone
// backup files. All functions are pure; callers filter and sort first.
package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/gitblog-tools/gitblog-cli/internal/github"
)

// AllPostsHeading titles the reverse-chronological list of every post.
const AllPostsHeading = "## 所有文章\n\n"

const indexHeader = `## GitBlog

我的个人博客，使用 GitHub Issues 和 GitHub Actions 自动生成。

`

// Header returns the fixed text at the top of the index document.
func Header() string {
	return indexHeader + "\n"
}

// IssueLine renders one index entry: "- [title](url) - YYYY-MM-DD".
func IssueLine(issue github.Issue) string {
	return fmt.Sprintf("- [%s](%s) - %s\n", issue.Title, issue.URL, formatTime(issue))
}

// LabelSection writes a "## <name>" section for the given issues. Entries
// past anchorCount are wrapped in a collapsible block; the block is closed
// only when it was opened. An empty issue slice writes nothing, not an
// empty heading.
func LabelSection(w io.Writer, name string, issues []github.Issue, anchorCount int) error {
	if len(issues) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("## " + name + "\n\n")
	for i, issue := range issues {
		if i == anchorCount {
			b.WriteString("<details><summary>显示更多</summary>\n\n")
		}
		b.WriteString(IssueLine(issue))
	}
	if len(issues) > anchorCount {
		b.WriteString("</details>\n\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Backup renders the standalone document for one issue: linked title,
// creation date, body, then each comment behind a "---" separator. The
// caller passes only the comments that should appear.
func Backup(issue github.Issue, comments []github.Comment) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("# [%s](%s)\n\n", issue.Title, issue.URL))
	b.WriteString(fmt.Sprintf("创建时间: %s\n\n", formatTime(issue)))
	b.WriteString(issue.Body)
	for _, c := range comments {
		b.WriteString("\n\n---\n\n")
		b.WriteString(c.Body)
	}
	return b.String()
}

// filenameReplacer maps characters that are unsafe in filenames: slashes
// become dashes, spaces become periods, the rest are dropped.
var filenameReplacer = strings.NewReplacer(
	"/", "-",
	" ", ".",
	"?", "",
	":", "",
	"*", "",
	`"`, "",
	"<", "",
	">", "",
	"|", "",
)

// SafeFilename builds the backup filename "{number}_{sanitized title}.md".
func SafeFilename(number int, title string) string {
	return fmt.Sprintf("%d_%s.md", number, filenameReplacer.Replace(title))
}

func formatTime(issue github.Issue) string {
	return issue.CreatedAt.Format("2006-01-02")
}
