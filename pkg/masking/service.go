package masking

import (
	"log/slog"

	"github.com/quarryhq/quarry/pkg/config"
)

// redactionNotice replaces an entire result when masking itself fails.
// Fail-closed: an unmaskable result must not reach the stream or the
// database.
const redactionNotice = "[REDACTED: data masking failure, result could not be safely processed]"

// Service applies data masking to source results, tool output, and tool
// call arguments. Created once at application startup. Thread-safe and
// stateless aside from compiled patterns.
type Service struct {
	registry             *config.DataSourceRegistry
	patterns             map[string]*CompiledPattern // Built-in + custom compiled patterns
	patternGroups        map[string][]string         // Group name -> pattern names
	codeMaskers          map[string]Masker           // Registered code-based maskers
	output               *resolvedPatterns           // Resolved tool output masking set
	sourceCustomPatterns map[string][]string         // Source name -> custom pattern keys
}

// NewService creates a masking service with compiled patterns and registered
// maskers. All patterns are compiled eagerly at creation time. Invalid
// patterns are logged and skipped.
func NewService(registry *config.DataSourceRegistry, outputCfg *config.OutputMaskingConfig) *Service {
	s := &Service{
		registry:             registry,
		patterns:             make(map[string]*CompiledPattern),
		patternGroups:        builtinPatternGroups(),
		codeMaskers:          make(map[string]Masker),
		sourceCustomPatterns: make(map[string][]string),
	}

	// 1. Compile all built-in regex patterns
	s.compileBuiltinPatterns()

	// 2. Compile custom patterns from all data source configs
	s.compileCustomPatterns()

	// 3. Register code-based maskers
	s.registerMasker(&CredentialFieldMasker{})

	// 4. Resolve the tool output masking set once
	outputEnabled := false
	if outputCfg != nil && (outputCfg.Enabled == nil || *outputCfg.Enabled) {
		outputEnabled = true
		s.output = s.resolvePatterns([]string{outputCfg.PatternGroup}, nil, "")
	} else {
		s.output = &resolvedPatterns{}
	}

	slog.Info("Masking service initialized",
		"compiled_patterns", len(s.patterns),
		"code_maskers", len(s.codeMaskers),
		"output_masking_enabled", outputEnabled)

	return s
}

// MaskSourceResult applies source-specific masking to a data source result.
// Returns masked content. On masking failure, returns a redaction notice
// (fail-closed).
func (s *Service) MaskSourceResult(content string, sourceName string) string {
	if content == "" || s.registry == nil {
		return content
	}

	sourceCfg, err := s.registry.Get(sourceName)
	if err != nil || sourceCfg.DataMasking == nil || !sourceCfg.DataMasking.Enabled {
		return content // No masking configured
	}

	resolved := s.resolvePatterns(sourceCfg.DataMasking.PatternGroups, sourceCfg.DataMasking.Patterns, sourceName)
	if resolved.empty() {
		return content
	}

	masked, err := s.applyMasking(content, resolved)
	if err != nil {
		slog.Error("Masking failed, redacting content (fail-closed)",
			"source", sourceName, "error", err)
		return redactionNotice
	}

	return masked
}

// MaskOutput applies the configured output pattern group to tool stdout and
// result text before it is persisted or streamed. On masking failure,
// returns original data (fail-open): losing a progress line entirely is
// worse than passing it through, and the persistent result path is covered
// by MaskSourceResult.
func (s *Service) MaskOutput(data string) string {
	if data == "" || s.output.empty() {
		return data
	}

	masked, err := s.applyMasking(data, s.output)
	if err != nil {
		slog.Error("Output masking failed, continuing with unmasked data (fail-open)",
			"error", err)
		return data
	}

	return masked
}

// MaskArguments returns a copy of tool call arguments with string values of
// credential-named keys replaced. Applied before tool.started frames are
// built, so raw credentials never enter the event stream.
func (s *Service) MaskArguments(args map[string]any) map[string]any {
	if len(args) == 0 {
		return args
	}
	masked, _ := maskArgumentValue(args).(map[string]any)
	return masked
}

// maskArgumentValue deep-copies a decoded argument tree, masking string
// values under sensitive keys.
func maskArgumentValue(node any) any {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, val := range v {
			if _, ok := val.(string); ok && isSensitiveKey(key) {
				out[key] = MaskedValue
				continue
			}
			out[key] = maskArgumentValue(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = maskArgumentValue(item)
		}
		return out
	default:
		return node
	}
}

// applyMasking applies code-based maskers then regex patterns to content.
func (s *Service) applyMasking(content string, resolved *resolvedPatterns) (string, error) {
	masked := content

	// Phase 1: Code-based maskers (more specific, structural awareness)
	for _, maskerName := range resolved.codeMaskerNames {
		masker, ok := s.codeMaskers[maskerName]
		if !ok {
			continue
		}
		if masker.AppliesTo(masked) {
			masked = masker.Mask(masked)
		}
	}

	// Phase 2: Regex patterns (general sweep)
	for _, pattern := range resolved.regexPatterns {
		masked = pattern.Regex.ReplaceAllString(masked, pattern.Replacement)
	}

	return masked, nil
}

// registerMasker registers a code-based masker by its name.
func (s *Service) registerMasker(m Masker) {
	s.codeMaskers[m.Name()] = m
}
