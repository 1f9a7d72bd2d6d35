package mcp

import (
	"context"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/config"
)

func newInjectedFactory(t *testing.T, sources map[string]map[string]mcpsdk.ToolHandler) *ClientFactory {
	t.Helper()
	return NewTestClientFactory(config.NewDataSourceRegistry(nil), func(c *Client) {
		for name, tools := range sources {
			ts := startTestSource(t, name, tools)
			sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "quarry-test", Version: "test"}, nil)
			session, err := sdkClient.Connect(context.Background(), ts.clientTransport, nil)
			require.NoError(t, err)
			c.InjectSession(name, sdkClient, session)
		}
	})
}

func waitForStatuses(t *testing.T, m *HealthMonitor, want int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if len(m.Statuses()) >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("health monitor never produced %d statuses", want)
}

func TestHealthMonitor_HealthySource(t *testing.T) {
	factory := newInjectedFactory(t, map[string]map[string]mcpsdk.ToolHandler{
		"warehouse": {
			"execute": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return textResult("ok"), nil
			},
		},
	})

	m := NewHealthMonitor(factory, []string{"warehouse"})
	m.Start(context.Background())
	defer m.Stop()

	waitForStatuses(t, m, 1)

	statuses := m.Statuses()
	require.Contains(t, statuses, "warehouse")
	assert.True(t, statuses["warehouse"].Healthy)
	assert.Equal(t, 1, statuses["warehouse"].ToolCount)
	assert.True(t, m.IsHealthy())
}

func TestHealthMonitor_UnreachableSource(t *testing.T) {
	// No session injected for the monitored source: every probe fails.
	factory := newInjectedFactory(t, nil)

	m := NewHealthMonitor(factory, []string{"warehouse"})
	m.Start(context.Background())
	defer m.Stop()

	waitForStatuses(t, m, 1)

	statuses := m.Statuses()
	require.Contains(t, statuses, "warehouse")
	assert.False(t, statuses["warehouse"].Healthy)
	assert.NotEmpty(t, statuses["warehouse"].Error)
	assert.False(t, m.IsHealthy())
}

func TestHealthMonitor_NotHealthyBeforeFirstProbe(t *testing.T) {
	factory := newInjectedFactory(t, nil)
	m := NewHealthMonitor(factory, []string{"warehouse"})

	assert.False(t, m.IsHealthy())
}

func TestHealthMonitor_StopClearsState(t *testing.T) {
	factory := newInjectedFactory(t, map[string]map[string]mcpsdk.ToolHandler{
		"warehouse": {
			"execute": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return textResult("ok"), nil
			},
		},
	})

	m := NewHealthMonitor(factory, []string{"warehouse"})
	m.Start(context.Background())
	waitForStatuses(t, m, 1)

	m.Stop()
	assert.Empty(t, m.Statuses())
	assert.False(t, m.IsHealthy())
}
