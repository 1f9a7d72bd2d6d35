package mcp

import (
	"context"

	"github.com/quarryhq/quarry/pkg/config"
	"github.com/quarryhq/quarry/pkg/masking"
)

// ClientFactory creates per-run Clients. The factory itself is long-lived;
// each completion run gets a fresh Client so a wedged stdio subprocess never
// outlives its run.
type ClientFactory struct {
	registry *config.DataSourceRegistry

	// createClientFn is replaced by tests to inject in-memory sessions.
	createClientFn func(ctx context.Context, sources []string) (*Client, error)
}

// NewClientFactory creates a factory over the configured data sources.
func NewClientFactory(registry *config.DataSourceRegistry) *ClientFactory {
	f := &ClientFactory{registry: registry}
	f.createClientFn = func(ctx context.Context, sources []string) (*Client, error) {
		client := newClient(registry)
		if err := client.Initialize(ctx, sources); err != nil {
			_ = client.Close()
			return nil, err
		}
		return client, nil
	}
	return f
}

// CreateClient connects a new Client to the named sources. The caller owns
// Close.
func (f *ClientFactory) CreateClient(ctx context.Context, sources []string) (*Client, error) {
	return f.createClientFn(ctx, sources)
}

// CreateGateway connects a new Client and wraps it in a Gateway. This is the
// entry point the run executor uses; closing the gateway closes the client.
func (f *ClientFactory) CreateGateway(ctx context.Context, sources []string, masker *masking.Service) (*Gateway, error) {
	client, err := f.CreateClient(ctx, sources)
	if err != nil {
		return nil, err
	}
	return NewGateway(client, f.registry, sources, masker), nil
}
