package config

import "time"

// AgentConfig bounds the plan→act→observe loop.
type AgentConfig struct {
	// StepLimit is the hard upper bound on loop iterations per execution.
	StepLimit int `yaml:"step_limit"`

	// MaxInvalidRetries caps planner retries after invalid input or output.
	MaxInvalidRetries int `yaml:"max_invalid_retries"`

	// MaxToolFailures is the per-tool failure budget before the run is
	// concluded with a terminal summary.
	MaxToolFailures int `yaml:"max_tool_failures"`

	// MaxRepeatedSuccesses terminates the run when the same successful
	// action repeats this many times in a row.
	MaxRepeatedSuccesses int `yaml:"max_repeated_successes"`

	// ObservationWindow is how many recent observations are rendered into
	// the planner prompt.
	ObservationWindow int `yaml:"observation_window"`

	// ScoringEnabled toggles the background judge passes.
	ScoringEnabled *bool `yaml:"scoring_enabled,omitempty"`

	// SuggestionsEnabled toggles the instruction-suggestion post-step.
	SuggestionsEnabled *bool `yaml:"suggestions_enabled,omitempty"`
}

// PlannerConfig describes the planner sidecar connection and generation
// parameters.
type PlannerConfig struct {
	// Addr is the gRPC address of the planner service. Usually provided via
	// the PLANNER_SERVICE_ADDR environment variable.
	Addr string `yaml:"addr"`

	Model       string   `yaml:"model"`
	Temperature *float32 `yaml:"temperature,omitempty"`
	MaxTokens   *int32   `yaml:"max_tokens,omitempty"`

	// JudgeModel is used for scoring and single-shot calls; falls back to
	// Model when empty.
	JudgeModel string `yaml:"judge_model,omitempty"`

	// RequestTimeout bounds a single planning call end to end.
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// ContextConfig holds the retrieval budgets of the context hub.
type ContextConfig struct {
	SchemaTopK        int `yaml:"schema_top_k"`
	InstructionTopK   int `yaml:"instruction_top_k"`
	ResourceTopK      int `yaml:"resource_top_k"`
	SnippetTopK       int `yaml:"snippet_top_k"`
	FailedSnippetTopK int `yaml:"failed_snippet_top_k"`
	MessageWindow     int `yaml:"message_window"`

	// TokenBudget caps the rendered prompt size; sections degrade to
	// compact index rendering when they would overflow it.
	TokenBudget int `yaml:"token_budget"`
}

// ToolOverride adjusts registry metadata for a single tool without code
// changes.
type ToolOverride struct {
	TimeoutSeconds *int  `yaml:"timeout_seconds,omitempty"`
	MaxRetries     *int  `yaml:"max_retries,omitempty"`
	Idempotent     *bool `yaml:"idempotent,omitempty"`
	Disabled       *bool `yaml:"disabled,omitempty"`
}

// ToolsConfig configures the tool registry.
type ToolsConfig struct {
	Overrides map[string]ToolOverride `yaml:"overrides,omitempty"`
}

// ResourcesConfig configures metadata resource fetching. Repos lists GitHub
// tree URLs holding the organization's metadata documents (data dictionaries,
// metric definitions); their markdown files feed the context hub's resource
// section.
type ResourcesConfig struct {
	Repos          []string      `yaml:"repos,omitempty"`
	CacheTTL       time.Duration `yaml:"cache_ttl"`
	CacheSize      int           `yaml:"cache_size"`
	FetchLimit     int           `yaml:"fetch_limit"`
	AllowedDomains []string      `yaml:"allowed_domains"`
	TokenEnv       string        `yaml:"token_env"`
}

// MaskingConfig selects the masking applied to one data source's results.
// Pattern groups and pattern names refer to the built-in sets; custom
// patterns are source-specific additions.
type MaskingConfig struct {
	Enabled        bool                   `yaml:"enabled"`
	PatternGroups  []string               `yaml:"pattern_groups,omitempty"`
	Patterns       []string               `yaml:"patterns,omitempty"`
	CustomPatterns []CustomMaskingPattern `yaml:"custom_patterns,omitempty"`
}

// CustomMaskingPattern is a user-supplied regex masking rule.
type CustomMaskingPattern struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
	Description string `yaml:"description,omitempty"`
}

// OutputMaskingConfig applies a built-in pattern group to tool output
// (stdout lines and result payloads) before it is persisted or streamed.
type OutputMaskingConfig struct {
	Enabled      *bool  `yaml:"enabled,omitempty"`
	PatternGroup string `yaml:"pattern_group"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// BoolPtr returns a pointer to the given bool, for use in config literals.
func BoolPtr(b bool) *bool {
	return &b
}
