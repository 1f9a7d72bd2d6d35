package config

import (
	"fmt"
	"sort"
	"time"
)

// TransportType selects how a data source MCP server is reached.
type TransportType string

const (
	TransportStdio TransportType = "stdio"
	TransportHTTP  TransportType = "http"
)

// DataSourceConfig describes one data source: an MCP server exposing an
// opaque execute interface plus catalog listing. The core never interprets
// what is behind it.
type DataSourceConfig struct {
	// Transport is "stdio" (spawned subprocess) or "http" (streamable HTTP).
	Transport TransportType `yaml:"transport"`

	// Command and Args apply to stdio transport.
	Command string   `yaml:"command,omitempty"`
	Args    []string `yaml:"args,omitempty"`
	Env     []string `yaml:"env,omitempty"`

	// URL applies to http transport.
	URL string `yaml:"url,omitempty"`

	// BearerTokenEnv names an environment variable holding a bearer token
	// for http transport. Empty means no Authorization header.
	BearerTokenEnv string `yaml:"bearer_token_env,omitempty"`

	// Timeout bounds a single execute call against the source.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Description is surfaced to the planner inside the schema context.
	Description string `yaml:"description,omitempty"`

	// DataMasking configures masking of this source's results.
	DataMasking *MaskingConfig `yaml:"data_masking,omitempty"`
}

// DataSourceRegistry provides lookup access to configured data sources.
type DataSourceRegistry struct {
	sources map[string]*DataSourceConfig
}

// NewDataSourceRegistry creates a registry from the parsed YAML map.
func NewDataSourceRegistry(sources map[string]DataSourceConfig) *DataSourceRegistry {
	reg := &DataSourceRegistry{sources: make(map[string]*DataSourceConfig, len(sources))}
	for name, cfg := range sources {
		c := cfg
		reg.sources[name] = &c
	}
	return reg
}

// Get retrieves a data source configuration by name.
func (r *DataSourceRegistry) Get(name string) (*DataSourceConfig, error) {
	cfg, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrDataSourceNotFound, name)
	}
	return cfg, nil
}

// GetAll returns all data source configurations keyed by name.
func (r *DataSourceRegistry) GetAll() map[string]*DataSourceConfig {
	return r.sources
}

// Names returns the sorted data source names.
func (r *DataSourceRegistry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of configured data sources.
func (r *DataSourceRegistry) Len() int {
	return len(r.sources)
}
