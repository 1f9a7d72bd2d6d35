package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/masking"
)

func newTestGateway(t *testing.T, sources map[string]map[string]mcpsdk.ToolHandler, masker *masking.Service) *Gateway {
	t.Helper()

	registry := config.NewDataSourceRegistry(nil)
	client := newClient(registry)
	names := make([]string, 0, len(sources))
	for name, tools := range sources {
		ts := startTestSource(t, name, tools)
		sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "quarry-test", Version: "test"}, nil)
		session, err := sdkClient.Connect(context.Background(), ts.clientTransport, nil)
		require.NoError(t, err)
		client.InjectSession(name, sdkClient, session)
		names = append(names, name)
	}
	t.Cleanup(func() { _ = client.Close() })
	return NewGateway(client, registry, names, masker)
}

func TestGateway_Execute(t *testing.T) {
	gw := newTestGateway(t, map[string]map[string]mcpsdk.ToolHandler{
		"warehouse": {
			"execute": func(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				var parsed map[string]any
				if err := json.Unmarshal(req.Params.Arguments, &parsed); err != nil {
					return &mcpsdk.CallToolResult{
						Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "parse error: " + err.Error()}},
						IsError: true,
					}, nil
				}
				q, _ := parsed["query"].(string)
				return textResult("ran: " + q), nil
			},
		},
	}, nil)

	result, err := gw.Query(context.Background(), "warehouse", "SELECT count(*) FROM orders")
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "ran: SELECT count(*) FROM orders", result.Content)
}

func TestGateway_Execute_DomainError(t *testing.T) {
	gw := newTestGateway(t, map[string]map[string]mcpsdk.ToolHandler{
		"warehouse": {
			"execute": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return &mcpsdk.CallToolResult{
					Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "relation \"orderz\" does not exist"}},
					IsError: true,
				}, nil
			},
		},
	}, nil)

	result, err := gw.Query(context.Background(), "warehouse", "SELECT * FROM orderz")
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content, "does not exist")
}

func TestGateway_Execute_UnknownSource(t *testing.T) {
	gw := newTestGateway(t, map[string]map[string]mcpsdk.ToolHandler{
		"warehouse": {
			"execute": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return textResult("ok"), nil
			},
		},
	}, nil)

	_, err := gw.Query(context.Background(), "lakehouse", "SELECT 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
	assert.Contains(t, err.Error(), "warehouse")
}

func TestGateway_Execute_Masked(t *testing.T) {
	registry := config.NewDataSourceRegistry(map[string]config.DataSourceConfig{
		"warehouse": {
			Transport:   config.TransportStdio,
			Command:     "unused",
			DataMasking: &config.MaskingConfig{Enabled: true, PatternGroups: []string{"credentials"}},
		},
	})
	masker := masking.NewService(registry, nil)

	ts := startTestSource(t, "warehouse", map[string]mcpsdk.ToolHandler{
		"execute": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("api_key: skabc123def456ghi789jkl012"), nil
		},
	})
	client := newClient(registry)
	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "quarry-test", Version: "test"}, nil)
	session, err := sdkClient.Connect(context.Background(), ts.clientTransport, nil)
	require.NoError(t, err)
	client.InjectSession("warehouse", sdkClient, session)
	t.Cleanup(func() { _ = client.Close() })

	gw := NewGateway(client, registry, []string{"warehouse"}, masker)

	result, err := gw.Query(context.Background(), "warehouse", "SELECT secret")
	require.NoError(t, err)
	assert.NotContains(t, result.Content, "skabc123def456ghi789jkl012")
	assert.Contains(t, result.Content, "MASKED")
}

func TestGateway_Catalog(t *testing.T) {
	gw := newTestGateway(t, map[string]map[string]mcpsdk.ToolHandler{
		"warehouse": {
			"execute": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return textResult("ok"), nil
			},
			"list_tables": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
				return textResult("ok"), nil
			},
		},
	}, nil)

	catalog := gw.Catalog(context.Background())
	require.Len(t, catalog, 2)

	names := []string{catalog[0].Name, catalog[1].Name}
	assert.Contains(t, names, "warehouse.execute")
	assert.Contains(t, names, "warehouse.list_tables")
	for _, d := range catalog {
		assert.NotEmpty(t, d.InputSchema)
	}
}

func TestGateway_SourceCatalog_UnknownSource(t *testing.T) {
	gw := newTestGateway(t, nil, nil)

	_, err := gw.SourceCatalog(context.Background(), "warehouse")
	assert.Error(t, err)
}

func TestSplitToolName(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantSource string
		wantTool   string
		wantErr    bool
	}{
		{"simple", "warehouse.execute", "warehouse", "execute", false},
		{"tool with dots", "warehouse.schema.describe", "warehouse", "schema.describe", false},
		{"no dot", "execute", "", "", true},
		{"leading dot", ".execute", "", "", true},
		{"trailing dot", "warehouse.", "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, tool, err := SplitToolName(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, source)
			assert.Equal(t, tt.wantTool, tool)
		})
	}
}
