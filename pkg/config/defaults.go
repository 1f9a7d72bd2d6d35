package config

import "time"

// Built-in defaults applied when the YAML leaves a section unset. Loop caps
// are product constants; everything else is tunable.
const (
	DefaultStepLimit            = 10
	DefaultMaxInvalidRetries    = 2
	DefaultMaxToolFailures      = 3
	DefaultMaxRepeatedSuccesses = 2
	DefaultObservationWindow    = 5

	DefaultPlannerModel   = "quarry-planner-large"
	DefaultPlannerTimeout = 2 * time.Minute

	DefaultSchemaTopK        = 10
	DefaultInstructionTopK   = 5
	DefaultResourceTopK      = 5
	DefaultSnippetTopK       = 3
	DefaultFailedSnippetTopK = 2
	DefaultMessageWindow     = 10
	DefaultTokenBudget       = 24000

	DefaultResourceCacheSize  = 256
	DefaultResourceFetchLimit = 10

	DefaultListenAddr        = ":8080"
	DefaultDataSourceTimeout = 30 * time.Second
)

// DefaultAgentConfig returns the built-in loop bounds.
func DefaultAgentConfig() *AgentConfig {
	return &AgentConfig{
		StepLimit:            DefaultStepLimit,
		MaxInvalidRetries:    DefaultMaxInvalidRetries,
		MaxToolFailures:      DefaultMaxToolFailures,
		MaxRepeatedSuccesses: DefaultMaxRepeatedSuccesses,
		ObservationWindow:    DefaultObservationWindow,
		ScoringEnabled:       BoolPtr(true),
		SuggestionsEnabled:   BoolPtr(true),
	}
}

// DefaultPlannerConfig returns the built-in planner settings.
func DefaultPlannerConfig() *PlannerConfig {
	return &PlannerConfig{
		Model:          DefaultPlannerModel,
		RequestTimeout: DefaultPlannerTimeout,
	}
}

// DefaultContextConfig returns the built-in retrieval budgets.
func DefaultContextConfig() *ContextConfig {
	return &ContextConfig{
		SchemaTopK:        DefaultSchemaTopK,
		InstructionTopK:   DefaultInstructionTopK,
		ResourceTopK:      DefaultResourceTopK,
		SnippetTopK:       DefaultSnippetTopK,
		FailedSnippetTopK: DefaultFailedSnippetTopK,
		MessageWindow:     DefaultMessageWindow,
		TokenBudget:       DefaultTokenBudget,
	}
}

// DefaultResourcesConfig returns the built-in resource fetching settings.
func DefaultResourcesConfig() *ResourcesConfig {
	return &ResourcesConfig{
		CacheTTL:       5 * time.Minute,
		CacheSize:      DefaultResourceCacheSize,
		FetchLimit:     DefaultResourceFetchLimit,
		AllowedDomains: []string{"github.com", "raw.githubusercontent.com"},
		TokenEnv:       "GITHUB_TOKEN",
	}
}

// DefaultServerConfig returns the built-in HTTP listener settings.
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		ListenAddr: DefaultListenAddr,
	}
}

// DefaultOutputMaskingConfig returns the built-in tool output masking
// settings. Enabled by default: tool stdout and results reach the event
// stream and the database, so credentials must not survive to either.
func DefaultOutputMaskingConfig() *OutputMaskingConfig {
	return &OutputMaskingConfig{
		Enabled:      BoolPtr(true),
		PatternGroup: "credentials",
	}
}
