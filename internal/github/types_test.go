package github

import (
	"testing"
	"time"

	gogithub "github.com/google/go-github/v60/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertIssue(t *testing.T) {
	created := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	gh := &gogithub.Issue{
		Number:    gogithub.Int(7),
		Title:     gogithub.String("Hello"),
		Body:      gogithub.String("world"),
		HTMLURL:   gogithub.String("https://github.com/o/r/issues/7"),
		User:      &gogithub.User{Login: gogithub.String("me")},
		CreatedAt: &gogithub.Timestamp{Time: created},
		Comments:  gogithub.Int(2),
	}

	issue := convertIssue(gh)
	assert.Equal(t, 7, issue.Number)
	assert.Equal(t, "Hello", issue.Title)
	assert.Equal(t, "world", issue.Body)
	assert.Equal(t, "https://github.com/o/r/issues/7", issue.URL)
	assert.Equal(t, "me", issue.Author)
	assert.Equal(t, created, issue.CreatedAt)
	assert.Equal(t, 2, issue.CommentCount)
	assert.False(t, issue.PullRequest)
}

func TestConvertIssue_PullRequest(t *testing.T) {
	gh := &gogithub.Issue{
		Number:           gogithub.Int(8),
		PullRequestLinks: &gogithub.PullRequestLinks{URL: gogithub.String("https://api.github.com/repos/o/r/pulls/8")},
	}
	assert.True(t, convertIssue(gh).PullRequest)
}

func TestConvertIssue_MissingFields(t *testing.T) {
	issue := convertIssue(&gogithub.Issue{Number: gogithub.Int(9)})
	assert.Equal(t, 9, issue.Number)
	assert.Empty(t, issue.Author)
	assert.True(t, issue.CreatedAt.IsZero())
}

func TestConvertIssues_SkipsNilEntries(t *testing.T) {
	issues := convertIssues([]*gogithub.Issue{
		{Number: gogithub.Int(1)},
		nil,
		{Number: gogithub.Int(2)},
	})
	require.Len(t, issues, 2)
	assert.Equal(t, 1, issues[0].Number)
	assert.Equal(t, 2, issues[1].Number)
}

func TestConvertLabels_KeepsNilDescription(t *testing.T) {
	labels := convertLabels([]*gogithub.Label{
		{Name: gogithub.String("Go"), Description: gogithub.String("golang posts")},
		{Name: gogithub.String("Misc")},
		nil,
	})
	require.Len(t, labels, 2)
	require.NotNil(t, labels[0].Description)
	assert.Equal(t, "golang posts", *labels[0].Description)
	assert.Nil(t, labels[1].Description)
}

func TestAuthoredBy_CaseSensitive(t *testing.T) {
	issue := Issue{Author: "Me"}
	assert.True(t, issue.AuthoredBy("Me"))
	assert.False(t, issue.AuthoredBy("me"))
}

func TestConvertComments(t *testing.T) {
	comments := convertComments([]*gogithub.IssueComment{
		{User: &gogithub.User{Login: gogithub.String("me")}, Body: gogithub.String("hi")},
		nil,
		{Body: gogithub.String("anon")},
	})
	require.Len(t, comments, 2)
	assert.Equal(t, Comment{Author: "me", Body: "hi"}, comments[0])
	assert.Equal(t, Comment{Author: "", Body: "anon"}, comments[1])
}
