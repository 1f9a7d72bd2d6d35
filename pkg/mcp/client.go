// Package mcp connects the agent to its data sources. Every configured data
// source is an MCP server reached over stdio or streamable HTTP; the rest of
// the system only ever sees the opaque execute surface exposed by Gateway.
package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/version"
)

// Client manages MCP SDK sessions, one per data source. A Client is scoped to
// a single completion run (or the health monitor) and is safe for concurrent
// use from the goroutines of that run.
type Client struct {
	registry *config.DataSourceRegistry

	mu            sync.RWMutex
	sessions      map[string]*mcpsdk.ClientSession // source name → session
	sdkClients    map[string]*mcpsdk.Client        // source name → client, kept for reconnection
	failedSources map[string]string                // source name → error message

	// Catalog cache, populated on first ListTools per source. Clients are
	// short-lived per run so the cache needs no TTL.
	catalog   map[string][]*mcpsdk.Tool
	catalogMu sync.RWMutex

	// Per-source mutex serializing session (re)creation.
	connectMu sync.Map // source name → *sync.Mutex

	logger *slog.Logger
}

func newClient(registry *config.DataSourceRegistry) *Client {
	return &Client{
		registry:      registry,
		sessions:      make(map[string]*mcpsdk.ClientSession),
		sdkClients:    make(map[string]*mcpsdk.Client),
		failedSources: make(map[string]string),
		catalog:       make(map[string][]*mcpsdk.Tool),
		logger:        slog.Default(),
	}
}

// Initialize connects to the named data sources. Sources that fail to connect
// are recorded in FailedSources rather than aborting the rest; the caller
// decides whether a partial connection set is acceptable.
func (c *Client) Initialize(ctx context.Context, sources []string) error {
	for _, source := range sources {
		if err := c.InitializeSource(ctx, source); err != nil {
			c.mu.Lock()
			c.failedSources[source] = err.Error()
			c.mu.Unlock()
			c.logger.Warn("data source failed to initialize",
				"source", source, "error", err)
		}
	}
	return nil
}

// InitializeSource connects a single data source. Returns nil if a session
// already exists. Serialized per source so concurrent callers cannot spawn
// duplicate subprocesses.
func (c *Client) InitializeSource(ctx context.Context, source string) error {
	muI, _ := c.connectMu.LoadOrStore(source, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	return c.initializeSourceLocked(ctx, source)
}

// initializeSourceLocked does the actual connect. Caller holds the per-source
// connectMu entry.
func (c *Client) initializeSourceLocked(ctx context.Context, source string) error {
	c.mu.RLock()
	if _, exists := c.sessions[source]; exists {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	sourceCfg, err := c.registry.Get(source)
	if err != nil {
		return fmt.Errorf("data source %q not configured: %w", source, err)
	}

	transport, err := newTransport(sourceCfg)
	if err != nil {
		return fmt.Errorf("failed to create transport for %q: %w", source, err)
	}

	initCtx, cancel := context.WithTimeout(ctx, initTimeout)
	defer cancel()

	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    version.AppName,
		Version: version.GitCommit,
	}, nil)

	session, err := sdkClient.Connect(initCtx, transport, nil)
	if err != nil {
		// Close the transport when it owns resources (stdio child processes)
		// that the SDK did not reap on this failure path.
		if closer, ok := transport.(io.Closer); ok {
			_ = closer.Close()
		}
		return fmt.Errorf("failed to connect to %q: %w", source, err)
	}

	c.mu.Lock()
	c.sessions[source] = session
	c.sdkClients[source] = sdkClient
	delete(c.failedSources, source)
	c.mu.Unlock()

	c.logger.Info("data source connected", "source", source)
	return nil
}

// ListTools returns the tool catalog of one data source, cached after the
// first successful call.
func (c *Client) ListTools(ctx context.Context, source string) ([]*mcpsdk.Tool, error) {
	// Lock ordering: never take c.mu while holding catalogMu.
	c.catalogMu.RLock()
	if cached, ok := c.catalog[source]; ok {
		c.catalogMu.RUnlock()
		return cached, nil
	}
	c.catalogMu.RUnlock()

	c.mu.RLock()
	session, exists := c.sessions[source]
	c.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no session for data source %q", source)
	}

	opCtx, cancel := context.WithTimeout(ctx, c.callTimeout(source))
	defer cancel()

	result, err := session.ListTools(opCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("list tools from %q: %w", source, err)
	}

	tools := result.Tools
	if tools == nil {
		tools = []*mcpsdk.Tool{}
	}
	c.catalogMu.Lock()
	c.catalog[source] = tools
	c.catalogMu.Unlock()

	return tools, nil
}

// CallTool invokes a tool on the named data source. Transport-level failures
// are retried once after a jittered backoff, recreating the session when the
// error indicates a dead connection.
func (c *Client) CallTool(ctx context.Context, source, tool string, args map[string]any) (*mcpsdk.CallToolResult, error) {
	params := &mcpsdk.CallToolParams{
		Name:      tool,
		Arguments: args,
	}

	result, err := c.callToolOnce(ctx, source, params)
	if err == nil {
		return result, nil
	}

	action := classifyError(err)
	if action == noRetry {
		return nil, err
	}

	c.logger.Info("data source call failed, retrying",
		"source", source, "tool", tool, "error", err)

	backoff := retryBackoffMin + time.Duration(rand.Int64N(int64(retryBackoffMax-retryBackoffMin)))
	select {
	case <-time.After(backoff):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if action == retryNewSession {
		if err := c.recreateSession(ctx, source); err != nil {
			return nil, fmt.Errorf("session recreation failed for %q: %w", source, err)
		}
	}

	result, err = c.callToolOnce(ctx, source, params)
	if err != nil {
		return nil, fmt.Errorf("retry failed for %s.%s: %w", source, tool, err)
	}
	return result, nil
}

func (c *Client) callToolOnce(ctx context.Context, source string, params *mcpsdk.CallToolParams) (*mcpsdk.CallToolResult, error) {
	c.mu.RLock()
	session, exists := c.sessions[source]
	c.mu.RUnlock()
	if !exists {
		return nil, fmt.Errorf("no session for data source %q", source)
	}

	opCtx, cancel := context.WithTimeout(ctx, c.callTimeout(source))
	defer cancel()

	return session.CallTool(opCtx, params)
}

// callTimeout resolves the per-call deadline for a source, falling back to the
// package default when the source has no explicit timeout.
func (c *Client) callTimeout(source string) time.Duration {
	if cfg, err := c.registry.Get(source); err == nil && cfg.Timeout > 0 {
		return cfg.Timeout
	}
	return callTimeout
}

// recreateSession tears down the session for a source and connects again.
// If two goroutines race here the second recreation is wasted work but
// harmless; both end up with a live session.
func (c *Client) recreateSession(ctx context.Context, source string) error {
	muI, _ := c.connectMu.LoadOrStore(source, &sync.Mutex{})
	mu := muI.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	c.mu.Lock()
	if session, exists := c.sessions[source]; exists {
		_ = session.Close()
		delete(c.sessions, source)
		delete(c.sdkClients, source)
	}
	c.mu.Unlock()

	c.InvalidateCatalog(source)

	reinitCtx, cancel := context.WithTimeout(ctx, reinitTimeout)
	defer cancel()

	return c.initializeSourceLocked(reinitCtx, source)
}

// Close shuts down all sessions, terminating stdio subprocesses.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var firstErr error
	for source, session := range c.sessions {
		if err := session.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close session %q: %w", source, err)
		}
	}

	c.sessions = make(map[string]*mcpsdk.ClientSession)
	c.sdkClients = make(map[string]*mcpsdk.Client)
	c.failedSources = make(map[string]string)

	c.catalogMu.Lock()
	c.catalog = make(map[string][]*mcpsdk.Tool)
	c.catalogMu.Unlock()

	return firstErr
}

// InvalidateCatalog drops the cached tool list for a source so the next
// ListTools actually probes the server.
func (c *Client) InvalidateCatalog(source string) {
	c.catalogMu.Lock()
	delete(c.catalog, source)
	c.catalogMu.Unlock()
}

// HasSession reports whether a source currently has a live session.
func (c *Client) HasSession(source string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, exists := c.sessions[source]
	return exists
}

// FailedSources returns a copy of the sources that failed to initialize.
func (c *Client) FailedSources() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make(map[string]string, len(c.failedSources))
	for k, v := range c.failedSources {
		result[k] = v
	}
	return result
}
