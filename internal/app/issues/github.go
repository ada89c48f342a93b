// Package issues wraps the GitHub issue-tracker client behind a narrow
// interface: token + repo + title + body in, created-issue URL out.
package issues

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v66/github"
	"go.uber.org/zap"
)

var (
	// ErrUnauthorized indicates the token is invalid or lacks permission.
	ErrUnauthorized = errors.New("github token is invalid or has insufficient permissions")

	// ErrRepoNotFound indicates the repository does not exist or the token
	// cannot see it.
	ErrRepoNotFound = errors.New("repository not found or token does not have access")
)

// Client files issues against GitHub repositories.
type Client struct {
	logger *zap.Logger

	// newGitHub is swapped in tests to point the SDK at a stub server.
	newGitHub func(token string) *github.Client
}

// NewClient creates an issue-tracker client.
func NewClient(logger *zap.Logger) *Client {
	return &Client{
		logger: logger,
		newGitHub: func(token string) *github.Client {
			return github.NewClient(nil).WithAuthToken(token)
		},
	}
}

// CreateIssue files an issue in repoName ("owner/repo") using the caller's
// token and returns the new issue's HTML URL.
func (c *Client) CreateIssue(ctx context.Context, token, repoName, title, body string) (string, error) {
	owner, repo, ok := strings.Cut(repoName, "/")
	if !ok || owner == "" || repo == "" {
		return "", fmt.Errorf("%w: %q", ErrRepoNotFound, repoName)
	}

	gh := c.newGitHub(token)
	issue, resp, err := gh.Issues.Create(ctx, owner, repo, &github.IssueRequest{
		Title: github.String(title),
		Body:  github.String(body),
	})
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		c.logger.Error("failed to create github issue",
			zap.String("repo", repoName),
			zap.Int("status", status),
			zap.Error(err),
		)
		switch status {
		case http.StatusUnauthorized:
			return "", ErrUnauthorized
		case http.StatusNotFound:
			return "", fmt.Errorf("%w: %q", ErrRepoNotFound, repoName)
		default:
			return "", fmt.Errorf("could not reach github: %w", err)
		}
	}

	c.logger.Info("created github issue",
		zap.String("repo", repoName),
		zap.Int("number", issue.GetNumber()),
	)
	return issue.GetHTMLURL(), nil
}
