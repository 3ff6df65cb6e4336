// Package github adapts the GitHub issues API to the small surface the
// mirror needs: the authenticated identity, labels, issues, and comments.
package github

import (
	"context"
	"fmt"

	gogithub "github.com/google/go-github/v60/github"
	"golang.org/x/oauth2"

	"github.com/gitblog-tools/gitblog-cli/internal/config"
)

// Client is an authenticated GitHub API client bound to one repository.
type Client struct {
	gh    *gogithub.Client
	owner string
	repo  string
}

// NewClient creates a token-authenticated client for the repository named in
// the given config.
func NewClient(cfg config.Config) (*Client, error) {
	owner, repo, err := config.SplitRepo(cfg.Repo)
	if err != nil {
		return nil, err
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
	tc := oauth2.NewClient(context.Background(), ts)

	return &Client{
		gh:    gogithub.NewClient(tc),
		owner: owner,
		repo:  repo,
	}, nil
}

// Viewer returns the login of the authenticated user.
func (c *Client) Viewer(ctx context.Context) (string, error) {
	user, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return "", fmt.Errorf("fetching authenticated user: %w", err)
	}
	return user.GetLogin(), nil
}

// Labels returns every label defined on the repository.
func (c *Client) Labels(ctx context.Context) ([]Label, error) {
	opts := &gogithub.ListOptions{PerPage: 100}

	var labels []Label
	for {
		page, resp, err := c.gh.Issues.ListLabels(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing labels: %w", err)
		}
		labels = append(labels, convertLabels(page)...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return labels, nil
}

// IssuesByLabel returns the issues carrying the given label, in the API's
// default state and order.
func (c *Client) IssuesByLabel(ctx context.Context, label string) ([]Issue, error) {
	opts := &gogithub.IssueListByRepoOptions{
		Labels:      []string{label},
		ListOptions: gogithub.ListOptions{PerPage: 100},
	}

	var issues []Issue
	for {
		page, resp, err := c.gh.Issues.ListByRepo(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing issues with label %q: %w", label, err)
		}
		issues = append(issues, convertIssues(page)...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return issues, nil
}

// Issues returns all issues in every state, newest-created first.
func (c *Client) Issues(ctx context.Context) ([]Issue, error) {
	opts := &gogithub.IssueListByRepoOptions{
		State:       "all",
		Sort:        "created",
		Direction:   "desc",
		ListOptions: gogithub.ListOptions{PerPage: 100},
	}

	var issues []Issue
	for {
		page, resp, err := c.gh.Issues.ListByRepo(ctx, c.owner, c.repo, opts)
		if err != nil {
			return nil, fmt.Errorf("listing issues: %w", err)
		}
		issues = append(issues, convertIssues(page)...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return issues, nil
}

// Issue fetches a single issue by number.
func (c *Client) Issue(ctx context.Context, number int) (*Issue, error) {
	gh, _, err := c.gh.Issues.Get(ctx, c.owner, c.repo, number)
	if err != nil {
		return nil, fmt.Errorf("fetching issue %d: %w", number, err)
	}
	issue := convertIssue(gh)
	return &issue, nil
}

// Comments returns all comments on the given issue.
func (c *Client) Comments(ctx context.Context, number int) ([]Comment, error) {
	opts := &gogithub.IssueListCommentsOptions{
		ListOptions: gogithub.ListOptions{PerPage: 100},
	}

	var comments []Comment
	for {
		page, resp, err := c.gh.Issues.ListComments(ctx, c.owner, c.repo, number, opts)
		if err != nil {
			return nil, fmt.Errorf("listing comments for issue %d: %w", number, err)
		}
		comments = append(comments, convertComments(page)...)
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}
	return comments, nil
}
