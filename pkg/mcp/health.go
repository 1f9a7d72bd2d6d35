package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// SourceHealth captures the probe result for a single data source.
type SourceHealth struct {
	Source    string    `json:"source"`
	Healthy   bool      `json:"healthy"`
	LastCheck time.Time `json:"last_check"`
	Error     string    `json:"error,omitempty"`
	ToolCount int       `json:"tool_count"`
}

// HealthMonitor probes every configured data source with ListTools on a
// fixed interval. The API health endpoint reads its statuses.
type HealthMonitor struct {
	factory *ClientFactory
	sources []string

	checkInterval time.Duration
	pingTimeout   time.Duration

	// Dedicated long-lived client, recreated on failure.
	client   *Client
	clientMu sync.Mutex

	statuses   map[string]*SourceHealth
	statusesMu sync.RWMutex

	cancel context.CancelFunc
	done   chan struct{}
	logger *slog.Logger
}

// NewHealthMonitor creates a monitor for the named sources.
func NewHealthMonitor(factory *ClientFactory, sources []string) *HealthMonitor {
	return &HealthMonitor{
		factory:       factory,
		sources:       sources,
		checkInterval: healthInterval,
		pingTimeout:   healthPingTimeout,
		statuses:      make(map[string]*SourceHealth),
		logger:        slog.Default(),
	}
}

// Start launches the background probe loop. Calling Start on a running
// monitor is a no-op.
func (m *HealthMonitor) Start(ctx context.Context) {
	if m.cancel != nil {
		return
	}
	ctx, m.cancel = context.WithCancel(ctx)
	m.done = make(chan struct{})

	m.clientMu.Lock()
	client, err := m.factory.CreateClient(ctx, m.sources)
	if err != nil {
		m.logger.Warn("health monitor: failed to create initial client", "error", err)
	}
	m.client = client
	m.clientMu.Unlock()

	go m.loop(ctx)
}

// Stop shuts the monitor down and clears its state so Start can be called
// again.
func (m *HealthMonitor) Stop() {
	if m.cancel != nil {
		m.cancel()
	}
	if m.done != nil {
		<-m.done
	}
	m.clientMu.Lock()
	if m.client != nil {
		_ = m.client.Close()
		m.client = nil
	}
	m.clientMu.Unlock()

	m.statusesMu.Lock()
	m.statuses = make(map[string]*SourceHealth)
	m.statusesMu.Unlock()

	m.cancel = nil
	m.done = nil
}

func (m *HealthMonitor) loop(ctx context.Context) {
	defer close(m.done)

	m.ensureClient(ctx)
	m.checkAll(ctx)

	ticker := time.NewTicker(m.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.ensureClient(ctx)
			m.checkAll(ctx)
		}
	}
}

// ensureClient recreates the probe client after a failed Start or a factory
// outage, without requiring a process restart.
func (m *HealthMonitor) ensureClient(ctx context.Context) {
	m.clientMu.Lock()
	defer m.clientMu.Unlock()

	if m.client != nil {
		return
	}

	client, err := m.factory.CreateClient(ctx, m.sources)
	if err != nil {
		m.logger.Warn("health monitor: failed to recreate client", "error", err)
		return
	}
	m.client = client
	m.logger.Info("health monitor: client recovered")
}

func (m *HealthMonitor) checkAll(ctx context.Context) {
	for _, source := range m.sources {
		m.checkSource(ctx, source)
	}
}

func (m *HealthMonitor) checkSource(ctx context.Context, source string) {
	m.clientMu.Lock()
	client := m.client
	m.clientMu.Unlock()

	if client == nil {
		m.setStatus(source, false, "health client not initialized", 0)
		return
	}

	// Drop the catalog cache first so the probe hits the wire.
	client.InvalidateCatalog(source)

	checkCtx, checkCancel := context.WithTimeout(ctx, m.pingTimeout)
	defer checkCancel()

	tools, err := client.ListTools(checkCtx, source)
	if err != nil {
		m.logger.Debug("health probe failed, attempting reconnect",
			"source", source, "error", err)

		reconCtx, reconCancel := context.WithTimeout(ctx, m.pingTimeout)
		defer reconCancel()

		if reinitErr := client.recreateSession(reconCtx, source); reinitErr != nil {
			m.setStatus(source, false, fmt.Sprintf("health probe failed: %s", err.Error()), 0)
			return
		}

		retryCtx, retryCancel := context.WithTimeout(ctx, m.pingTimeout)
		defer retryCancel()

		tools, err = client.ListTools(retryCtx, source)
		if err != nil {
			m.setStatus(source, false, fmt.Sprintf("health probe failed after reconnect: %s", err.Error()), 0)
			return
		}
	}

	m.setStatus(source, true, "", len(tools))
}

func (m *HealthMonitor) setStatus(source string, healthy bool, errMsg string, toolCount int) {
	m.statusesMu.Lock()
	defer m.statusesMu.Unlock()
	m.statuses[source] = &SourceHealth{
		Source:    source,
		Healthy:   healthy,
		LastCheck: time.Now(),
		Error:     errMsg,
		ToolCount: toolCount,
	}
}

// Statuses returns a copy of the current per-source health.
func (m *HealthMonitor) Statuses() map[string]*SourceHealth {
	m.statusesMu.RLock()
	defer m.statusesMu.RUnlock()
	result := make(map[string]*SourceHealth, len(m.statuses))
	for k, v := range m.statuses {
		cp := *v
		result[k] = &cp
	}
	return result
}

// IsHealthy reports whether every monitored source passed its last probe.
// False before the first probe completes.
func (m *HealthMonitor) IsHealthy() bool {
	m.statusesMu.RLock()
	defer m.statusesMu.RUnlock()
	if len(m.statuses) == 0 {
		return false
	}
	for _, s := range m.statuses {
		if !s.Healthy {
			return false
		}
	}
	return true
}
