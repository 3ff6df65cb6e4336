// Package mirror turns a repository's issues into a Markdown index document
// plus per-issue backup files.
package mirror

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"strings"

	"github.com/gitblog-tools/gitblog-cli/internal/github"
	"github.com/gitblog-tools/gitblog-cli/internal/markdown"
)

// API is the slice of the GitHub client the mirror uses.
type API interface {
	Viewer(ctx context.Context) (string, error)
	Labels(ctx context.Context) ([]github.Label, error)
	IssuesByLabel(ctx context.Context, label string) ([]github.Issue, error)
	Issues(ctx context.Context) ([]github.Issue, error)
	Issue(ctx context.Context, number int) (*github.Issue, error)
	Comments(ctx context.Context, number int) ([]github.Comment, error)
}

// Syncer runs one full mirror pass. Failures while resolving the identity or
// writing the index abort the run; failures inside one section or on one
// backup item are logged to Log and the run continues.
type Syncer struct {
	Client       API
	Store        Store
	IndexFile    string
	AnchorCount  int
	IgnoreLabels []string
	Log          io.Writer
}

// Summary reports what a run produced.
type Summary struct {
	Backups int
}

// Run mirrors the repository: rewrites the index document and writes a
// backup file for every own issue that does not have one yet. forcedIssue,
// when positive, is backed up again even if a file for it already exists.
func (s *Syncer) Run(ctx context.Context, forcedIssue int) (Summary, error) {
	me, err := s.Client.Viewer(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("resolving identity: %w", err)
	}

	if err := s.writeIndex(ctx, me); err != nil {
		return Summary{}, err
	}

	return Summary{Backups: s.writeBackups(ctx, me, forcedIssue)}, nil
}

// writeIndex builds the whole index document in memory and writes it in one
// shot, so a half-rendered section still leaves a well-formed file.
func (s *Syncer) writeIndex(ctx context.Context, me string) error {
	var b strings.Builder
	b.WriteString(markdown.Header())

	if err := s.appendLabelSections(ctx, &b, me); err != nil {
		s.logf("Error rendering label sections: %v", err)
	}
	if err := s.appendAllPosts(ctx, &b, me); err != nil {
		s.logf("Error adding issues: %v", err)
	}

	if err := os.WriteFile(s.IndexFile, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.IndexFile, err)
	}
	return nil
}

// appendLabelSections renders one section per label that has at least one
// own, non-PR issue. A fetch failure abandons the remainder of the labels
// section; whatever was already rendered stays.
func (s *Syncer) appendLabelSections(ctx context.Context, b *strings.Builder, me string) error {
	labels, err := s.Client.Labels(ctx)
	if err != nil {
		return err
	}
	SortLabels(labels)

	for _, label := range labels {
		if slices.Contains(s.IgnoreLabels, label.Name) {
			continue
		}
		issues, err := s.Client.IssuesByLabel(ctx, label.Name)
		if err != nil {
			return err
		}
		own := ownIssues(issues, me)
		sortNewestFirst(own)
		if err := markdown.LabelSection(b, label.Name, own, s.AnchorCount); err != nil {
			return err
		}
	}
	return nil
}

// appendAllPosts renders the flat newest-first list of every own issue. The
// heading is written before the fetch, matching the index layout even when
// the section is abandoned.
func (s *Syncer) appendAllPosts(ctx context.Context, b *strings.Builder, me string) error {
	b.WriteString(markdown.AllPostsHeading)

	issues, err := s.Client.Issues(ctx)
	if err != nil {
		return err
	}
	for _, issue := range ownIssues(issues, me) {
		b.WriteString(markdown.IssueLine(issue))
	}
	return nil
}

// writeBackups saves every own issue whose number has no file yet, plus the
// forced issue. Returns the number of files written; every failure here is
// logged and skipped, never fatal.
func (s *Syncer) writeBackups(ctx context.Context, me string, forcedIssue int) int {
	saved, err := s.Store.Saved()
	if err != nil {
		s.logf("Error scanning backups: %v", err)
		return 0
	}

	issues, err := s.Client.Issues(ctx)
	if err != nil {
		s.logf("Error listing issues for backup: %v", err)
		return 0
	}

	todo := make([]github.Issue, 0, len(issues))
	for _, issue := range issues {
		if !saved[issue.Number] {
			todo = append(todo, issue)
		}
	}

	if forcedIssue > 0 {
		issue, err := s.Client.Issue(ctx, forcedIssue)
		if err != nil {
			s.logf("Error getting issue %d: %v", forcedIssue, err)
		} else {
			todo = append(todo, *issue)
		}
	}

	written := 0
	for _, issue := range todo {
		if !issue.AuthoredBy(me) || issue.PullRequest {
			continue
		}
		if err := s.saveIssue(ctx, issue, me); err != nil {
			s.logf("Error saving issue %d: %v", issue.Number, err)
			continue
		}
		written++
	}
	return written
}

// saveIssue backs up a single issue with the identity's own comments.
func (s *Syncer) saveIssue(ctx context.Context, issue github.Issue, me string) error {
	var comments []github.Comment
	if issue.CommentCount > 0 {
		all, err := s.Client.Comments(ctx, issue.Number)
		if err != nil {
			return err
		}
		for _, c := range all {
			if c.Author == me {
				comments = append(comments, c)
			}
		}
	}
	name := markdown.SafeFilename(issue.Number, issue.Title)
	return s.Store.Write(name, markdown.Backup(issue, comments))
}

func (s *Syncer) logf(format string, args ...any) {
	if s.Log == nil {
		return
	}
	fmt.Fprintf(s.Log, format+"\n", args...)
}

// SortLabels orders labels for the index: labels with a non-empty
// description first (by description, then name), then labels with an empty
// description, then labels with none, each group sorted by name.
func SortLabels(labels []github.Label) {
	sort.SliceStable(labels, func(i, j int) bool {
		return labelLess(labels[i], labels[j])
	})
}

func labelLess(a, b github.Label) bool {
	aNil, bNil := a.Description == nil, b.Description == nil
	if aNil != bNil {
		return bNil
	}
	if !aNil {
		aEmpty, bEmpty := *a.Description == "", *b.Description == ""
		if aEmpty != bEmpty {
			return bEmpty
		}
		if *a.Description != *b.Description {
			return *a.Description < *b.Description
		}
	}
	return a.Name < b.Name
}

func sortNewestFirst(issues []github.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].CreatedAt.After(issues[j].CreatedAt)
	})
}

func ownIssues(issues []github.Issue, me string) []github.Issue {
	own := make([]github.Issue, 0, len(issues))
	for _, issue := range issues {
		if issue.AuthoredBy(me) && !issue.PullRequest {
			own = append(own, issue)
		}
	}
	return own
}
