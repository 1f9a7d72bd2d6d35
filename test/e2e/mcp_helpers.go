package e2e

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/mcp"
)

// emptySchema is a minimal valid JSON Schema for mock tools.
var emptySchema = json.RawMessage(`{"type":"object"}`)

// SetupInMemoryMCP builds a ClientFactory whose clients connect to in-memory
// MCP servers instead of real transports. Each CreateGateway call gets fresh
// servers from the given blueprints, so a harness can be rebuilt without
// transport reuse.
func SetupInMemoryMCP(t *testing.T, servers map[string]map[string]mcpsdk.ToolHandler) *mcp.ClientFactory {
	t.Helper()

	sources := map[string]config.DataSourceConfig{}
	for name := range servers {
		sources[name] = config.DataSourceConfig{
			Transport: config.TransportStdio,
			Command:   "mock",
		}
	}
	registry := config.NewDataSourceRegistry(sources)

	inject := func(c *mcp.Client) {
		for name, tools := range servers {
			server := mcpsdk.NewServer(&mcpsdk.Implementation{
				Name: name, Version: "test",
			}, nil)
			for toolName, handler := range tools {
				server.AddTool(&mcpsdk.Tool{
					Name:        toolName,
					Description: "mock tool: " + toolName,
					InputSchema: emptySchema,
				}, handler)
			}

			clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()
			go func() {
				_ = server.Run(context.Background(), serverTransport)
			}()

			sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{
				Name: "quarry-e2e", Version: "test",
			}, nil)
			session, err := sdkClient.Connect(context.Background(), clientTransport, nil)
			require.NoError(t, err)

			c.InjectSession(name, sdkClient, session)
		}
	}

	return mcp.NewTestClientFactory(registry, inject)
}

// StaticToolHandler always returns the given text.
func StaticToolHandler(text string) mcpsdk.ToolHandler {
	return func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		return textResult(text), nil
	}
}

// ErrorResultHandler returns an MCP-level error result with the given text.
func ErrorResultHandler(text string) mcpsdk.ToolHandler {
	return func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		return &mcpsdk.CallToolResult{
			IsError: true,
			Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
		}, nil
	}
}

// FailThenSucceedHandler returns an error result for the first failures
// calls, then succeeds with okText.
func FailThenSucceedHandler(failures int, errText, okText string) mcpsdk.ToolHandler {
	var mu sync.Mutex
	calls := 0
	return func(_ context.Context, _ *mcpsdk.CallToolRequest) (*mcpsdk.CallToolResult, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n <= failures {
			return &mcpsdk.CallToolResult{
				IsError: true,
				Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: errText}},
			}, nil
		}
		return textResult(okText), nil
	}
}

func textResult(text string) *mcpsdk.CallToolResult {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{&mcpsdk.TextContent{Text: text}},
	}
}

// WarehouseServer returns a mock warehouse data source: execute answers with
// the given row payload and list_tables exposes one catalog table.
func WarehouseServer(rows string) map[string]mcpsdk.ToolHandler {
	return map[string]mcpsdk.ToolHandler{
		"execute": StaticToolHandler(rows),
		"list_tables": StaticToolHandler(
			`[{"name":"orders","description":"order fact table","columns":[{"name":"id","type":"int"},{"name":"amount","type":"numeric"}]}]`),
	}
}
