package github

import (
	"time"

	gogithub "github.com/google/go-github/v60/github"
)

// Issue is the slice of a GitHub issue the mirror cares about.
type Issue struct {
	Number       int
	Title        string
	Body         string
	URL          string
	Author       string
	CreatedAt    time.Time
	CommentCount int
	// PullRequest marks entries the issues API returns that are actually
	// pull requests. They are excluded from every rendering path.
	PullRequest bool
}

// AuthoredBy reports whether the issue was created by the given login.
// The comparison is exact and case-sensitive, as returned by the API.
func (i Issue) AuthoredBy(login string) bool {
	return i.Author == login
}

// Label is a repository label. Description distinguishes "no description"
// (nil) from an empty one; the index sort order depends on that.
type Label struct {
	Name        string
	Description *string
}

// Comment is a single issue comment.
type Comment struct {
	Author string
	Body   string
}

func convertIssue(gh *gogithub.Issue) Issue {
	issue := Issue{
		Number:       gh.GetNumber(),
		Title:        gh.GetTitle(),
		Body:         gh.GetBody(),
		URL:          gh.GetHTMLURL(),
		CommentCount: gh.GetComments(),
		PullRequest:  gh.IsPullRequest(),
	}
	if gh.User != nil {
		issue.Author = gh.User.GetLogin()
	}
	if gh.CreatedAt != nil {
		issue.CreatedAt = gh.CreatedAt.Time
	}
	return issue
}

// convertIssues skips nil entries; list responses have been observed to
// contain holes and no nil may reach the rendering code.
func convertIssues(ghs []*gogithub.Issue) []Issue {
	issues := make([]Issue, 0, len(ghs))
	for _, gh := range ghs {
		if gh == nil {
			continue
		}
		issues = append(issues, convertIssue(gh))
	}
	return issues
}

func convertLabels(ghs []*gogithub.Label) []Label {
	labels := make([]Label, 0, len(ghs))
	for _, gh := range ghs {
		if gh == nil {
			continue
		}
		labels = append(labels, Label{Name: gh.GetName(), Description: gh.Description})
	}
	return labels
}

func convertComments(ghs []*gogithub.IssueComment) []Comment {
	comments := make([]Comment, 0, len(ghs))
	for _, gh := range ghs {
		if gh == nil {
			continue
		}
		c := Comment{Body: gh.GetBody()}
		if gh.User != nil {
			c.Author = gh.User.GetLogin()
		}
		comments = append(comments, c)
	}
	return comments
}
