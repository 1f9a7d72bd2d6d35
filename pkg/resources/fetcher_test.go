package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/config"
)

func testResourcesConfig(repos ...string) *config.ResourcesConfig {
	return &config.ResourcesConfig{
		Repos:          repos,
		CacheTTL:       time.Minute,
		CacheSize:      16,
		FetchLimit:     10,
		AllowedDomains: []string{"github.com", "raw.githubusercontent.com"},
	}
}

func newTestFetcher(cfg *config.ResourcesConfig, server *httptest.Server) *Fetcher {
	f := NewFetcher(cfg, nil)
	f.OverrideHTTPClientForTest(&http.Client{
		Transport: &testTransport{
			server:   server,
			delegate: http.DefaultTransport,
		},
	})
	return f
}

// newFakeGitHub serves the Contents API and raw downloads for a set of repos.
// repos maps "owner/repo" to its documents (in-repo path to content).
func newFakeGitHub(t *testing.T, repos map[string]map[string]string) (*httptest.Server, *int32, *int32) {
	t.Helper()
	var listCalls, fetchCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/repos/") {
			atomic.AddInt32(&listCalls, 1)
			seg := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/repos/"), "/", 3)
			docs, ok := repos[seg[0]+"/"+seg[1]]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			var items []githubContentItem
			for path := range docs {
				items = append(items, githubContentItem{
					Name:    path[strings.LastIndexByte(path, '/')+1:],
					Path:    path,
					Type:    "file",
					HTMLURL: fmt.Sprintf("https://github.com/%s/%s/blob/main/%s", seg[0], seg[1], path),
				})
			}
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(items)
			return
		}

		// Raw download: /{owner}/{repo}/refs/heads/{ref}/{path}
		atomic.AddInt32(&fetchCalls, 1)
		seg := strings.SplitN(strings.TrimPrefix(r.URL.Path, "/"), "/", 6)
		if len(seg) < 6 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		content, ok := repos[seg[0]+"/"+seg[1]][seg[5]]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(content))
	}))
	t.Cleanup(server.Close)
	return server, &listCalls, &fetchCalls
}

func TestFetcher_Resources(t *testing.T) {
	t.Run("fetches documents and derives titles", func(t *testing.T) {
		server, _, _ := newFakeGitHub(t, map[string]map[string]string{
			"acme/metadata": {
				"docs/churn.md":   "# Churn Rate\n\nMonthly churn counts closed accounts only.",
				"docs/revenue.md": "Net revenue excludes refunds and credits.",
			},
		})
		fetcher := newTestFetcher(testResourcesConfig("https://github.com/acme/metadata/tree/main/docs"), server)

		items, index, err := fetcher.Resources(context.Background(), "org-1")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Empty(t, index)

		assert.Equal(t, "acme/metadata", items[0].Repo)
		assert.Equal(t, "docs/churn.md", items[0].Path)
		assert.Equal(t, "Churn Rate", items[0].Title)
		assert.Contains(t, items[0].Content, "closed accounts")

		// No heading falls back to the file name
		assert.Equal(t, "revenue", items[1].Title)
	})

	t.Run("per-repo fetch limit overflows into the index", func(t *testing.T) {
		server, _, fetchCalls := newFakeGitHub(t, map[string]map[string]string{
			"acme/metadata": {
				"docs/a-dictionary.md": "# Dictionary",
				"docs/b-metrics.md":    "# Metrics",
				"docs/c-glossary.md":   "# Glossary",
			},
		})
		cfg := testResourcesConfig("https://github.com/acme/metadata/tree/main/docs")
		cfg.FetchLimit = 2
		fetcher := newTestFetcher(cfg, server)

		items, index, err := fetcher.Resources(context.Background(), "org-1")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "docs/a-dictionary.md", items[0].Path)
		assert.Equal(t, "docs/b-metrics.md", items[1].Path)
		assert.Equal(t, []string{"acme/metadata/docs/c-glossary.md"}, index)
		assert.Equal(t, int32(2), atomic.LoadInt32(fetchCalls))
	})

	t.Run("caches listings and documents across calls", func(t *testing.T) {
		server, listCalls, fetchCalls := newFakeGitHub(t, map[string]map[string]string{
			"acme/metadata": {
				"docs/revenue.md": "# Revenue",
			},
		})
		fetcher := newTestFetcher(testResourcesConfig("https://github.com/acme/metadata/tree/main/docs"), server)

		_, _, err := fetcher.Resources(context.Background(), "org-1")
		require.NoError(t, err)
		_, _, err = fetcher.Resources(context.Background(), "org-1")
		require.NoError(t, err)

		assert.Equal(t, int32(1), atomic.LoadInt32(listCalls))
		assert.Equal(t, int32(1), atomic.LoadInt32(fetchCalls))
	})

	t.Run("expired cache entries are refetched", func(t *testing.T) {
		server, listCalls, _ := newFakeGitHub(t, map[string]map[string]string{
			"acme/metadata": {
				"docs/revenue.md": "# Revenue",
			},
		})
		cfg := testResourcesConfig("https://github.com/acme/metadata/tree/main/docs")
		cfg.CacheTTL = 20 * time.Millisecond
		fetcher := newTestFetcher(cfg, server)

		_, _, err := fetcher.Resources(context.Background(), "org-1")
		require.NoError(t, err)

		time.Sleep(60 * time.Millisecond)

		_, _, err = fetcher.Resources(context.Background(), "org-1")
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(listCalls))
	})

	t.Run("one broken repo does not blank the section", func(t *testing.T) {
		server, _, _ := newFakeGitHub(t, map[string]map[string]string{
			"acme/metadata": {
				"docs/revenue.md": "# Revenue",
			},
		})
		fetcher := newTestFetcher(testResourcesConfig(
			"https://github.com/acme/gone/tree/main/docs",
			"https://github.com/acme/metadata/tree/main/docs",
		), server)

		items, _, err := fetcher.Resources(context.Background(), "org-1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "acme/metadata", items[0].Repo)
	})

	t.Run("all repos failing returns error", func(t *testing.T) {
		server, _, _ := newFakeGitHub(t, map[string]map[string]string{})
		fetcher := newTestFetcher(testResourcesConfig("https://github.com/acme/gone/tree/main/docs"), server)

		_, _, err := fetcher.Resources(context.Background(), "org-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no resource repo reachable")
	})

	t.Run("disallowed repo domain is skipped", func(t *testing.T) {
		server, listCalls, _ := newFakeGitHub(t, map[string]map[string]string{
			"acme/metadata": {
				"docs/revenue.md": "# Revenue",
			},
		})
		fetcher := newTestFetcher(testResourcesConfig(
			"https://internal.example.com/acme/secrets/tree/main",
			"https://github.com/acme/metadata/tree/main/docs",
		), server)

		items, _, err := fetcher.Resources(context.Background(), "org-1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, int32(1), atomic.LoadInt32(listCalls))
	})

	t.Run("unfetchable document falls back to the index", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/repos/") {
				items := []githubContentItem{
					{Name: "good.md", Path: "docs/good.md", Type: "file", HTMLURL: "https://github.com/acme/metadata/blob/main/docs/good.md"},
					{Name: "gone.md", Path: "docs/gone.md", Type: "file", HTMLURL: "https://github.com/acme/metadata/blob/main/docs/gone.md"},
				}
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(items)
				return
			}
			if strings.Contains(r.URL.Path, "gone.md") {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte("# Good"))
		}))
		defer server.Close()

		fetcher := newTestFetcher(testResourcesConfig("https://github.com/acme/metadata/tree/main/docs"), server)

		items, index, err := fetcher.Resources(context.Background(), "org-1")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "docs/good.md", items[0].Path)
		assert.Equal(t, []string{"acme/metadata/docs/gone.md"}, index)
	})

	t.Run("no configured repos returns nothing", func(t *testing.T) {
		fetcher := NewFetcher(testResourcesConfig(), nil)

		items, index, err := fetcher.Resources(context.Background(), "org-1")
		require.NoError(t, err)
		assert.Nil(t, items)
		assert.Nil(t, index)
	})
}
