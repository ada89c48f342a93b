package issues

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/v66/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newStubClient points the GitHub SDK at a local stub server.
func newStubClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	baseURL, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)

	c := NewClient(zap.NewNop())
	c.newGitHub = func(token string) *github.Client {
		gh := github.NewClient(nil).WithAuthToken(token)
		gh.BaseURL = baseURL
		return gh
	}
	return c
}

func TestClient_CreateIssue(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the created issue url", func(t *testing.T) {
		c := newStubClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/repos/acme/feedback/issues", r.URL.Path)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"number": 17, "html_url": "https://github.com/acme/feedback/issues/17"}`))
		})

		issueURL, err := c.CreateIssue(ctx, "ghp_token", "acme/feedback", "Broken timestamps", "details")
		require.NoError(t, err)
		assert.Equal(t, "https://github.com/acme/feedback/issues/17", issueURL)
	})

	t.Run("bad token", func(t *testing.T) {
		c := newStubClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "Bad credentials"}`))
		})

		_, err := c.CreateIssue(ctx, "bad-token", "acme/feedback", "t", "b")
		assert.ErrorIs(t, err, ErrUnauthorized)
	})

	t.Run("unknown repository", func(t *testing.T) {
		c := newStubClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "Not Found"}`))
		})

		_, err := c.CreateIssue(ctx, "ghp_token", "acme/ghost", "t", "b")
		assert.ErrorIs(t, err, ErrRepoNotFound)
	})

	t.Run("server fault", func(t *testing.T) {
		c := newStubClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := c.CreateIssue(ctx, "ghp_token", "acme/feedback", "t", "b")
		require.Error(t, err)
		assert.ErrorContains(t, err, "could not reach github")
	})

	t.Run("repo name without owner", func(t *testing.T) {
		c := NewClient(zap.NewNop())

		_, err := c.CreateIssue(ctx, "ghp_token", "just-a-repo", "t", "b")
		assert.ErrorIs(t, err, ErrRepoNotFound)
	})
}
