// Package config loads and validates the quarry configuration: the loop
// bounds, planner connection, context budgets, tool overrides, data source
// registry, queue tuning, and retention policy.
package config

// Config is the umbrella configuration object returned by Initialize and
// passed around the application.
type Config struct {
	configDir string

	Server    *ServerConfig
	Agent     *AgentConfig
	Planner   *PlannerConfig
	Context   *ContextConfig
	Tools     *ToolsConfig
	Queue     *QueueConfig
	Retention *RetentionConfig
	Resources *ResourcesConfig
	Masking   *OutputMaskingConfig

	DataSources *DataSourceRegistry
}

// Stats contains statistics about loaded configuration.
type Stats struct {
	DataSources   int
	ToolOverrides int
}

// Stats returns configuration statistics for startup logging.
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.DataSources != nil {
		s.DataSources = c.DataSources.Len()
	}
	if c.Tools != nil {
		s.ToolOverrides = len(c.Tools.Overrides)
	}
	return s
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetDataSource retrieves a data source configuration by name.
func (c *Config) GetDataSource(name string) (*DataSourceConfig, error) {
	return c.DataSources.Get(name)
}

// DataSourceNames returns the sorted names of all configured data sources.
func (c *Config) DataSourceNames() []string {
	return c.DataSources.Names()
}

// ScoringEnabled reports whether background judge passes run.
func (c *Config) ScoringEnabled() bool {
	return c.Agent.ScoringEnabled == nil || *c.Agent.ScoringEnabled
}

// SuggestionsEnabled reports whether the instruction-suggestion post-step runs.
func (c *Config) SuggestionsEnabled() bool {
	return c.Agent.SuggestionsEnabled == nil || *c.Agent.SuggestionsEnabled
}

// OutputMaskingEnabled reports whether tool output is masked before
// persistence and streaming.
func (c *Config) OutputMaskingEnabled() bool {
	return c.Masking == nil || c.Masking.Enabled == nil || *c.Masking.Enabled
}
