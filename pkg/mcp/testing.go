package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarryhq/quarry/pkg/config"
)

// InjectSession wires a pre-connected MCP SDK session into the Client,
// bypassing transport creation. Test infrastructure uses this with the SDK's
// in-memory transports.
func (c *Client) InjectSession(source string, sdkClient *mcpsdk.Client, session *mcpsdk.ClientSession) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[source] = session
	c.sdkClients[source] = sdkClient
}

// NewTestClientFactory creates a ClientFactory whose clients are populated by
// injectFn instead of Initialize. Each CreateClient/CreateGateway call gets a
// fresh Client with injectFn applied.
func NewTestClientFactory(registry *config.DataSourceRegistry, injectFn func(c *Client)) *ClientFactory {
	return &ClientFactory{
		registry: registry,
		createClientFn: func(_ context.Context, _ []string) (*Client, error) {
			c := newClient(registry)
			injectFn(c)
			return c, nil
		},
	}
}
