// Package resources fetches the deployment's metadata resource documents
// (data dictionaries, metric definitions, modeling guides) from configured
// GitHub repositories and serves them to the context hub. Fetched documents
// and repository listings sit behind a TTL-bounded LRU cache so repeated
// runs do not hammer the GitHub API.
package resources

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/contexthub"
)

var _ contexthub.ResourceSource = (*Fetcher)(nil)

// Fetcher resolves the configured metadata repositories into context
// resources. It implements the context hub's ResourceSource.
type Fetcher struct {
	github *GitHubClient
	cfg    *config.ResourcesConfig
	logger *slog.Logger

	// docs caches fetched document content by normalized raw URL; listings
	// caches the markdown file URLs per repository URL.
	docs     *expirable.LRU[string, string]
	listings *expirable.LRU[string, []string]
}

// NewFetcher creates a fetcher for the configured repositories. The GitHub
// token is read from the environment variable named by cfg.TokenEnv; an
// unset variable means unauthenticated access (public repos, lower rate
// limits).
func NewFetcher(cfg *config.ResourcesConfig, logger *slog.Logger) *Fetcher {
	if cfg == nil {
		cfg = config.DefaultResourcesConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	var token string
	if cfg.TokenEnv != "" {
		token = os.Getenv(cfg.TokenEnv)
	}

	size := cfg.CacheSize
	if size <= 0 {
		size = config.DefaultResourceCacheSize
	}

	return &Fetcher{
		github:   NewGitHubClient(token),
		cfg:      cfg,
		logger:   logger.With("component", "resources"),
		docs:     expirable.NewLRU[string, string](size, nil, cfg.CacheTTL),
		listings: expirable.NewLRU[string, []string](size, nil, cfg.CacheTTL),
	}
}

// OverrideHTTPClientForTest replaces the internal GitHub client's HTTP client.
// Only for testing with mock servers.
func (f *Fetcher) OverrideHTTPClientForTest(httpClient *http.Client) {
	f.github.httpClient = httpClient
}

// Resources returns the fetched documents in listing order plus an index of
// the documents left unfetched. The per-repo fetch limit bounds how many
// documents carry content; the hub applies its own Top-K on top of that.
// Repositories are deployment-level, so organizationID is unused today; it
// stays in the signature for a future per-tenant registry.
func (f *Fetcher) Resources(ctx context.Context, organizationID string) ([]contexthub.Resource, []string, error) {
	if len(f.cfg.Repos) == 0 {
		return nil, nil, nil
	}

	fetchLimit := f.cfg.FetchLimit
	if fetchLimit <= 0 {
		fetchLimit = config.DefaultResourceFetchLimit
	}

	var (
		items    []contexthub.Resource
		index    []string
		firstErr error
	)
	for _, repoURL := range f.cfg.Repos {
		if err := ValidateResourceURL(repoURL, f.cfg.AllowedDomains); err != nil {
			f.logger.Warn("Skipping resource repo with invalid URL", "repo", repoURL, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		parts, err := ParseRepoURL(repoURL)
		if err != nil {
			f.logger.Warn("Skipping unparseable resource repo", "repo", repoURL, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		repoName := parts.Owner + "/" + parts.Repo

		files, err := f.listFiles(ctx, repoURL)
		if err != nil {
			f.logger.Warn("Failed to list resource repo", "repo", repoURL, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		fetched := 0
		for _, fileURL := range files {
			docPath := documentPath(fileURL)
			if fetched >= fetchLimit {
				index = append(index, repoName+"/"+docPath)
				continue
			}
			content, err := f.fetchDocument(ctx, fileURL)
			if err != nil {
				f.logger.Warn("Failed to fetch resource document",
					"repo", repoName, "path", docPath, "error", err)
				index = append(index, repoName+"/"+docPath)
				continue
			}
			items = append(items, contexthub.Resource{
				Repo:    repoName,
				Path:    docPath,
				Title:   documentTitle(docPath, content),
				Content: content,
			})
			fetched++
		}
	}

	// Partial results beat an empty section; only a total failure is an error.
	if len(items) == 0 && len(index) == 0 && firstErr != nil {
		return nil, nil, fmt.Errorf("no resource repo reachable: %w", firstErr)
	}
	return items, index, nil
}

// listFiles returns the repo's markdown file URLs, cached per repo URL.
func (f *Fetcher) listFiles(ctx context.Context, repoURL string) ([]string, error) {
	if files, ok := f.listings.Get(repoURL); ok {
		return files, nil
	}
	files, err := f.github.ListMarkdownFiles(ctx, repoURL)
	if err != nil {
		return nil, err
	}
	f.listings.Add(repoURL, files)
	return files, nil
}

// fetchDocument returns a document's content, cached by normalized raw URL.
func (f *Fetcher) fetchDocument(ctx context.Context, fileURL string) (string, error) {
	key := ConvertToRawURL(fileURL)
	if content, ok := f.docs.Get(key); ok {
		return content, nil
	}
	content, err := f.github.DownloadContent(ctx, fileURL)
	if err != nil {
		return "", err
	}
	f.docs.Add(key, content)
	return content, nil
}

// documentPath derives the in-repo path of a blob URL.
func documentPath(fileURL string) string {
	parts, err := ParseRepoURL(fileURL)
	if err != nil {
		// Not a recognizable blob URL; fall back to the last path segment.
		if i := strings.LastIndexByte(fileURL, '/'); i >= 0 {
			return fileURL[i+1:]
		}
		return fileURL
	}
	return parts.Path
}

// documentTitle reads the first markdown heading, falling back to the file
// name without its extension.
func documentTitle(docPath, content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(after)
		}
		if line != "" {
			break
		}
	}
	base := docPath
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	return strings.TrimSuffix(base, ".md")
}
