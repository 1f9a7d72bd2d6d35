package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/masking"
)

// ExecuteTool is the well-known tool name every data source server exposes.
// The agent never interprets what happens behind it.
const ExecuteTool = "execute"

// Result is the outcome of one call against a data source. IsError follows
// the MCP convention: the source ran the call and reports a domain failure
// (bad SQL, unknown table) inside Content.
type Result struct {
	Content string
	IsError bool
}

// ToolDescriptor is one catalog entry, name-prefixed with its source.
type ToolDescriptor struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	InputSchema string `json:"input_schema,omitempty"`
}

// Gateway is the only path from the agent to its data sources. It owns a
// Client scoped to one completion run, applies per-source masking to
// everything that comes back, and exposes the catalog for context building.
type Gateway struct {
	client   *Client
	registry *config.DataSourceRegistry
	sources  []string
	masker   *masking.Service
	logger   *slog.Logger
}

// NewGateway wires a gateway over an initialized client. masker may be nil.
func NewGateway(client *Client, registry *config.DataSourceRegistry, sources []string, masker *masking.Service) *Gateway {
	return &Gateway{
		client:   client,
		registry: registry,
		sources:  sources,
		masker:   masker,
		logger:   slog.Default(),
	}
}

// Execute calls a tool on the named data source. Domain failures come back as
// Result.IsError with the source's message in Content; a Go error means the
// call never completed (unknown source, dead connection after retry, context
// cancelled).
func (g *Gateway) Execute(ctx context.Context, source, tool string, args map[string]any) (*Result, error) {
	if !slices.Contains(g.sources, source) {
		return nil, fmt.Errorf("data source %q is not available for this run (available: %s)",
			source, strings.Join(g.sources, ", "))
	}

	result, err := g.client.CallTool(ctx, source, tool, args)
	if err != nil {
		return nil, fmt.Errorf("execute %s.%s: %w", source, tool, err)
	}

	content := extractText(result)
	if g.masker != nil {
		content = g.masker.MaskSourceResult(content, source)
	}

	return &Result{Content: content, IsError: result.IsError}, nil
}

// Query runs the opaque execute tool with a single query argument. Shorthand
// for the dominant call shape.
func (g *Gateway) Query(ctx context.Context, source, query string) (*Result, error) {
	return g.Execute(ctx, source, ExecuteTool, map[string]any{"query": query})
}

// Catalog lists the tools of every reachable source, names prefixed
// "source.tool". Sources that fail to answer are skipped with a warning;
// partial catalogs beat none.
func (g *Gateway) Catalog(ctx context.Context) []ToolDescriptor {
	var all []ToolDescriptor
	for _, source := range g.sources {
		tools, err := g.client.ListTools(ctx, source)
		if err != nil {
			g.logger.Warn("failed to list tools from data source",
				"source", source, "error", err)
			continue
		}
		for _, tool := range tools {
			all = append(all, ToolDescriptor{
				Name:        source + "." + tool.Name,
				Description: tool.Description,
				InputSchema: marshalSchema(tool.InputSchema),
			})
		}
	}
	return all
}

// SourceCatalog lists one source's tools without the name prefix.
func (g *Gateway) SourceCatalog(ctx context.Context, source string) ([]ToolDescriptor, error) {
	if !slices.Contains(g.sources, source) {
		return nil, fmt.Errorf("data source %q is not available for this run", source)
	}
	tools, err := g.client.ListTools(ctx, source)
	if err != nil {
		return nil, err
	}
	descriptors := make([]ToolDescriptor, 0, len(tools))
	for _, tool := range tools {
		descriptors = append(descriptors, ToolDescriptor{
			Name:        tool.Name,
			Description: tool.Description,
			InputSchema: marshalSchema(tool.InputSchema),
		})
	}
	return descriptors, nil
}

// Sources returns the source names this gateway can reach.
func (g *Gateway) Sources() []string {
	return g.sources
}

// Describe returns the configured description of a source, surfaced to the
// planner inside the schema context.
func (g *Gateway) Describe(source string) string {
	cfg, err := g.registry.Get(source)
	if err != nil {
		return ""
	}
	return cfg.Description
}

// Close releases the underlying client and its transports.
func (g *Gateway) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// SplitToolName splits a "source.tool" catalog name. The source itself may
// not contain dots; everything after the first dot is the tool name.
func SplitToolName(name string) (source, tool string, err error) {
	idx := strings.Index(name, ".")
	if idx <= 0 || idx == len(name)-1 {
		return "", "", fmt.Errorf("invalid tool name %q (want source.tool)", name)
	}
	return name[:idx], name[idx+1:], nil
}

// extractText concatenates the text content of a call result. Non-text
// content is skipped.
func extractText(result *mcpsdk.CallToolResult) string {
	var parts []string
	for _, c := range result.Content {
		if tc, ok := c.(*mcpsdk.TextContent); ok {
			parts = append(parts, tc.Text)
		} else {
			slog.Debug("data source returned non-text content, skipping",
				"content_type", fmt.Sprintf("%T", c))
		}
	}
	return strings.Join(parts, "\n")
}

func marshalSchema(schema any) string {
	if schema == nil {
		return ""
	}
	data, err := json.Marshal(schema)
	if err != nil {
		slog.Debug("failed to marshal tool input schema", "error", err)
		return ""
	}
	return string(data)
}
