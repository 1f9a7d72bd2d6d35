package mcp

import (
	"fmt"
	"net/http"
	"os"
	"os/exec"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/quarryhq/quarry/pkg/config"
)

// newTransport creates an MCP SDK transport for a data source.
func newTransport(cfg *config.DataSourceConfig) (mcpsdk.Transport, error) {
	switch cfg.Transport {
	case config.TransportStdio:
		return newStdioTransport(cfg)
	case config.TransportHTTP:
		return newHTTPTransport(cfg)
	default:
		return nil, fmt.Errorf("unsupported transport: %q", cfg.Transport)
	}
}

func newStdioTransport(cfg *config.DataSourceConfig) (*mcpsdk.CommandTransport, error) {
	if cfg.Command == "" {
		return nil, fmt.Errorf("stdio transport requires command")
	}

	cmd := exec.Command(cfg.Command, cfg.Args...)

	// Inherit the parent environment; config entries override.
	cmd.Env = append(os.Environ(), cfg.Env...)

	return &mcpsdk.CommandTransport{Command: cmd}, nil
}

func newHTTPTransport(cfg *config.DataSourceConfig) (*mcpsdk.StreamableClientTransport, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("http transport requires url")
	}
	transport := &mcpsdk.StreamableClientTransport{
		Endpoint: cfg.URL,
	}
	if token := bearerToken(cfg); token != "" || cfg.Timeout > 0 {
		transport.HTTPClient = buildHTTPClient(cfg, token)
	}
	return transport, nil
}

// bearerToken resolves the source's bearer token from the environment.
func bearerToken(cfg *config.DataSourceConfig) string {
	if cfg.BearerTokenEnv == "" {
		return ""
	}
	return os.Getenv(cfg.BearerTokenEnv)
}

func buildHTTPClient(cfg *config.DataSourceConfig, token string) *http.Client {
	client := &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
	}
	if token != "" {
		client.Transport = &bearerTransport{base: client.Transport, token: token}
	}
	if cfg.Timeout > 0 {
		client.Timeout = cfg.Timeout
	}
	return client
}

// bearerTransport adds an Authorization header to every request.
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}
