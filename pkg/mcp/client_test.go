package mcp

import (
	"context"
	"encoding/json"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/config"
)

// emptySchema is a minimal valid JSON Schema for test tools.
var emptySchema = json.RawMessage(`{"type":"object"}`)

// testSource holds an in-memory MCP server and its transport pair.
type testSource struct {
	server          *mcpsdk.Server
	clientTransport *mcpsdk.InMemoryTransport
	serverTransport *mcpsdk.InMemoryTransport
}

// startTestSource creates an in-memory MCP server with the given tools.
func startTestSource(t *testing.T, name string, tools map[string]mcpsdk.ToolHandler) *testSource {
	t.Helper()

	server := mcpsdk.NewServer(&mcpsdk.Implementation{
		Name: name, Version: "test",
	}, nil)

	for toolName, handler := range tools {
		server.AddTool(&mcpsdk.Tool{
			Name:        toolName,
			Description: "test tool: " + toolName,
			InputSchema: emptySchema,
		}, handler)
	}

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	go func() {
		_ = server.Run(context.Background(), serverTransport)
	}()

	return &testSource{
		server:          server,
		clientTransport: clientTransport,
		serverTransport: serverTransport,
	}
}

func textResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}
}

// connectClientDirect creates a Client with a pre-wired in-memory transport,
// bypassing the registry/newTransport path.
func connectClientDirect(t *testing.T, source string, transport *mcpsdk.InMemoryTransport) *Client {
	t.Helper()
	ctx := context.Background()

	client := newClient(config.NewDataSourceRegistry(nil))

	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name: "quarry-test", Version: "test",
	}, nil)

	session, err := sdkClient.Connect(ctx, transport, nil)
	require.NoError(t, err)

	client.InjectSession(source, sdkClient, session)

	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestClient_ListTools(t *testing.T) {
	ts := startTestSource(t, "warehouse", map[string]mcpsdk.ToolHandler{
		"execute": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
		"list_tables": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	client := connectClientDirect(t, "warehouse", ts.clientTransport)
	ctx := context.Background()

	tools, err := client.ListTools(ctx, "warehouse")
	require.NoError(t, err)
	assert.Len(t, tools, 2)

	names := make([]string, len(tools))
	for i, tool := range tools {
		names[i] = tool.Name
	}
	assert.Contains(t, names, "execute")
	assert.Contains(t, names, "list_tables")
}

func TestClient_ListTools_Cached(t *testing.T) {
	ts := startTestSource(t, "warehouse", map[string]mcpsdk.ToolHandler{
		"execute": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	client := connectClientDirect(t, "warehouse", ts.clientTransport)
	ctx := context.Background()

	tools1, err := client.ListTools(ctx, "warehouse")
	require.NoError(t, err)

	tools2, err := client.ListTools(ctx, "warehouse")
	require.NoError(t, err)

	assert.Equal(t, tools1, tools2)
}

func TestClient_CallTool(t *testing.T) {
	ts := startTestSource(t, "warehouse", map[string]mcpsdk.ToolHandler{
		"execute": func(_ context.Context, req *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("orders: 1042 rows"), nil
		},
	})

	client := connectClientDirect(t, "warehouse", ts.clientTransport)
	ctx := context.Background()

	result, err := client.CallTool(ctx, "warehouse", "execute", map[string]any{"query": "SELECT 1"})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 1)

	tc, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Equal(t, "orders: 1042 rows", tc.Text)
}

func TestClient_CallTool_ErrorResult(t *testing.T) {
	ts := startTestSource(t, "warehouse", map[string]mcpsdk.ToolHandler{
		"execute": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return &mcpsdk.CallToolResult{
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: "syntax error at or near SELEC"}},
				IsError: true,
			}, nil
		},
	})

	client := connectClientDirect(t, "warehouse", ts.clientTransport)
	ctx := context.Background()

	result, err := client.CallTool(ctx, "warehouse", "execute", map[string]any{})
	require.NoError(t, err) // domain failure travels inside the result
	assert.True(t, result.IsError)
}

func TestClient_NoSession(t *testing.T) {
	client := newClient(config.NewDataSourceRegistry(nil))

	_, err := client.ListTools(context.Background(), "nonexistent")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no session")

	_, err = client.CallTool(context.Background(), "nonexistent", "execute", nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no session")
}

func TestClient_HasSession(t *testing.T) {
	ts := startTestSource(t, "warehouse", map[string]mcpsdk.ToolHandler{
		"execute": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	client := connectClientDirect(t, "warehouse", ts.clientTransport)

	assert.True(t, client.HasSession("warehouse"))
	assert.False(t, client.HasSession("nonexistent"))
}

func TestClient_FailedSources(t *testing.T) {
	client := newClient(config.NewDataSourceRegistry(nil))

	err := client.Initialize(context.Background(), []string{"missing-source"})
	require.NoError(t, err) // failures are recorded, not returned

	failed := client.FailedSources()
	assert.Contains(t, failed, "missing-source")
}

func TestClient_Close(t *testing.T) {
	ts := startTestSource(t, "warehouse", map[string]mcpsdk.ToolHandler{
		"execute": func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
			return textResult("ok"), nil
		},
	})

	client := connectClientDirect(t, "warehouse", ts.clientTransport)

	assert.True(t, client.HasSession("warehouse"))

	err := client.Close()
	require.NoError(t, err)
	assert.False(t, client.HasSession("warehouse"))
}
