package mcp

import (
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/config"
)

func TestNewTransport_Stdio(t *testing.T) {
	cfg := &config.DataSourceConfig{
		Transport: config.TransportStdio,
		Command:   "npx",
		Args:      []string{"-y", "warehouse-mcp-server@1.2.0"},
		Env:       []string{"WAREHOUSE_DSN=postgres://localhost/analytics"},
	}

	transport, err := newTransport(cfg)
	require.NoError(t, err)

	cmdTransport, ok := transport.(*mcpsdk.CommandTransport)
	require.True(t, ok)
	// exec.Command resolves the full path, so check for the basename
	assert.Contains(t, cmdTransport.Command.Path, "npx")
	assert.Contains(t, cmdTransport.Command.Args, "-y")
	assert.Contains(t, cmdTransport.Command.Args, "warehouse-mcp-server@1.2.0")
	assert.Contains(t, cmdTransport.Command.Env, "WAREHOUSE_DSN=postgres://localhost/analytics")
}

func TestNewTransport_Stdio_MissingCommand(t *testing.T) {
	cfg := &config.DataSourceConfig{Transport: config.TransportStdio}

	_, err := newTransport(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires command")
}

func TestNewTransport_HTTP(t *testing.T) {
	cfg := &config.DataSourceConfig{
		Transport: config.TransportHTTP,
		URL:       "https://sources.example.com/mcp",
	}

	transport, err := newTransport(cfg)
	require.NoError(t, err)

	httpTransport, ok := transport.(*mcpsdk.StreamableClientTransport)
	require.True(t, ok)
	assert.Equal(t, "https://sources.example.com/mcp", httpTransport.Endpoint)
	assert.Nil(t, httpTransport.HTTPClient)
}

func TestNewTransport_HTTP_WithBearerToken(t *testing.T) {
	t.Setenv("TEST_SOURCE_TOKEN", "tok-123")

	cfg := &config.DataSourceConfig{
		Transport:      config.TransportHTTP,
		URL:            "https://sources.example.com/mcp",
		BearerTokenEnv: "TEST_SOURCE_TOKEN",
		Timeout:        30 * time.Second,
	}

	transport, err := newTransport(cfg)
	require.NoError(t, err)

	httpTransport, ok := transport.(*mcpsdk.StreamableClientTransport)
	require.True(t, ok)
	require.NotNil(t, httpTransport.HTTPClient)
	assert.Equal(t, 30*time.Second, httpTransport.HTTPClient.Timeout)
}

func TestNewTransport_HTTP_MissingURL(t *testing.T) {
	cfg := &config.DataSourceConfig{Transport: config.TransportHTTP}

	_, err := newTransport(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires url")
}

func TestNewTransport_Unsupported(t *testing.T) {
	cfg := &config.DataSourceConfig{Transport: "grpc"}

	_, err := newTransport(cfg)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported transport")
}
