package resources

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGitHubClient_DownloadContent(t *testing.T) {
	t.Run("successful download", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("# Revenue Metrics\n\nNet revenue excludes refunds"))
		}))
		defer server.Close()

		client := newTestGitHubClient("", server)

		content, err := client.DownloadContent(context.Background(), server.URL+"/acme/metadata/blob/main/revenue.md")
		require.NoError(t, err)
		assert.Equal(t, "# Revenue Metrics\n\nNet revenue excludes refunds", content)
	})

	t.Run("authentication header sent when token present", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("content"))
		}))
		defer server.Close()

		client := newTestGitHubClient("test-token-123", server)

		_, err := client.DownloadContent(context.Background(), server.URL+"/file.md")
		require.NoError(t, err)
		assert.Equal(t, "Bearer test-token-123", gotAuth)
	})

	t.Run("no auth header when token empty", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("content"))
		}))
		defer server.Close()

		client := newTestGitHubClient("", server)

		_, err := client.DownloadContent(context.Background(), server.URL+"/file.md")
		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("HTTP 404 returns error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestGitHubClient("", server)

		_, err := client.DownloadContent(context.Background(), server.URL+"/missing.md")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("context cancellation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("content"))
		}))
		defer server.Close()

		client := newTestGitHubClient("", server)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := client.DownloadContent(ctx, server.URL+"/file.md")
		require.Error(t, err)
	})
}

func TestGitHubClient_ListMarkdownFiles(t *testing.T) {
	t.Run("lists md files from flat directory", func(t *testing.T) {
		items := []githubContentItem{
			{Name: "revenue.md", Path: "docs/revenue.md", Type: "file", HTMLURL: "https://github.com/acme/metadata/blob/main/docs/revenue.md"},
			{Name: "sessions.md", Path: "docs/sessions.md", Type: "file", HTMLURL: "https://github.com/acme/metadata/blob/main/docs/sessions.md"},
			{Name: "schema.sql", Path: "docs/schema.sql", Type: "file", HTMLURL: "https://github.com/acme/metadata/blob/main/docs/schema.sql"},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(items)
		}))
		defer server.Close()

		client := newTestGitHubClientWithAPIBase("", server)
		files, err := client.ListMarkdownFiles(context.Background(), "https://github.com/acme/metadata/tree/main/docs")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://github.com/acme/metadata/blob/main/docs/revenue.md",
			"https://github.com/acme/metadata/blob/main/docs/sessions.md",
		}, files)
	})

	t.Run("recurses into subdirectories", func(t *testing.T) {
		callCount := 0
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			callCount++
			w.Header().Set("Content-Type", "application/json")

			if callCount == 1 {
				items := []githubContentItem{
					{Name: "overview.md", Path: "docs/overview.md", Type: "file", HTMLURL: "https://github.com/acme/metadata/blob/main/docs/overview.md"},
					{Name: "metrics", Path: "docs/metrics", Type: "dir"},
				}
				_ = json.NewEncoder(w).Encode(items)
			} else {
				items := []githubContentItem{
					{Name: "churn.md", Path: "docs/metrics/churn.md", Type: "file", HTMLURL: "https://github.com/acme/metadata/blob/main/docs/metrics/churn.md"},
				}
				_ = json.NewEncoder(w).Encode(items)
			}
		}))
		defer server.Close()

		client := newTestGitHubClientWithAPIBase("", server)
		files, err := client.ListMarkdownFiles(context.Background(), "https://github.com/acme/metadata/tree/main/docs")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://github.com/acme/metadata/blob/main/docs/metrics/churn.md",
			"https://github.com/acme/metadata/blob/main/docs/overview.md",
		}, files)
		assert.Equal(t, 2, callCount)
	})

	t.Run("result is sorted for a stable fetch prefix", func(t *testing.T) {
		items := []githubContentItem{
			{Name: "zz-notes.md", Path: "docs/zz-notes.md", Type: "file", HTMLURL: "https://github.com/acme/metadata/blob/main/docs/zz-notes.md"},
			{Name: "aa-dictionary.md", Path: "docs/aa-dictionary.md", Type: "file", HTMLURL: "https://github.com/acme/metadata/blob/main/docs/aa-dictionary.md"},
		}

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(items)
		}))
		defer server.Close()

		client := newTestGitHubClientWithAPIBase("", server)
		files, err := client.ListMarkdownFiles(context.Background(), "https://github.com/acme/metadata/tree/main/docs")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://github.com/acme/metadata/blob/main/docs/aa-dictionary.md",
			"https://github.com/acme/metadata/blob/main/docs/zz-notes.md",
		}, files)
	})

	t.Run("empty directory returns empty slice", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode([]githubContentItem{})
		}))
		defer server.Close()

		client := newTestGitHubClientWithAPIBase("", server)
		files, err := client.ListMarkdownFiles(context.Background(), "https://github.com/acme/metadata/tree/main/docs")
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("API error returns error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := newTestGitHubClientWithAPIBase("", server)
		_, err := client.ListMarkdownFiles(context.Background(), "https://github.com/acme/metadata/tree/main/docs")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("invalid repo URL returns error", func(t *testing.T) {
		client := NewGitHubClient("")
		_, err := client.ListMarkdownFiles(context.Background(), "https://not-github.com/repo")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse repo URL")
	})
}

// newTestGitHubClient creates a GitHubClient that uses the test server for raw
// content downloads. For DownloadContent tests where the URL is used directly.
func newTestGitHubClient(token string, server *httptest.Server) *GitHubClient {
	client := NewGitHubClient(token)
	client.httpClient = server.Client()
	return client
}

// newTestGitHubClientWithAPIBase creates a GitHubClient that routes API calls
// to the test server.
func newTestGitHubClientWithAPIBase(token string, server *httptest.Server) *GitHubClient {
	client := NewGitHubClient(token)
	client.httpClient = &http.Client{
		Transport: &testTransport{
			server:   server,
			delegate: http.DefaultTransport,
		},
	}
	return client
}

// testTransport redirects GitHub API and raw content requests to the test server.
type testTransport struct {
	server   *httptest.Server
	delegate http.RoundTripper
}

func (t *testTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Host == "api.github.com" || req.URL.Host == "raw.githubusercontent.com" {
		parsed, _ := url.Parse(t.server.URL)
		req.URL.Scheme = parsed.Scheme
		req.URL.Host = parsed.Host
	}
	return t.delegate.RoundTrip(req)
}
