package masking

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// resolvedPatterns holds the resolved set of maskers and patterns for a masking operation.
type resolvedPatterns struct {
	codeMaskerNames []string           // Names of code-based maskers to apply
	regexPatterns   []*CompiledPattern // Compiled regex patterns to apply
}

// compileBuiltinPatterns compiles all built-in regex patterns.
// Invalid patterns are logged and skipped.
func (s *Service) compileBuiltinPatterns() {
	for name, pattern := range builtinPatterns() {
		compiled, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		s.patterns[name] = &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		}
	}
}

// compileCustomPatterns compiles custom patterns from all data source configs.
// Custom patterns are keyed as "custom:{source}:{index}" to avoid collisions.
func (s *Service) compileCustomPatterns() {
	if s.registry == nil {
		return
	}
	for sourceName, sourceCfg := range s.registry.GetAll() {
		if sourceCfg.DataMasking == nil || !sourceCfg.DataMasking.Enabled {
			continue
		}
		for i, pattern := range sourceCfg.DataMasking.CustomPatterns {
			name := fmt.Sprintf("custom:%s:%d", sourceName, i)
			compiled, err := regexp.Compile(pattern.Pattern)
			if err != nil {
				slog.Error("Failed to compile custom masking pattern, skipping",
					"pattern", name, "source", sourceName, "error", err)
				continue
			}
			s.patterns[name] = &CompiledPattern{
				Name:        name,
				Regex:       compiled,
				Replacement: pattern.Replacement,
				Description: pattern.Description,
			}
			// Track which custom patterns belong to which source
			s.sourceCustomPatterns[sourceName] = append(s.sourceCustomPatterns[sourceName], name)
		}
	}
}

// resolvePatterns expands a source masking config into a deduplicated resolvedPatterns.
func (s *Service) resolvePatterns(groups, patterns []string, sourceName string) *resolvedPatterns {
	seen := make(map[string]bool)
	resolved := &resolvedPatterns{}

	// 1. Expand pattern groups into individual pattern names
	for _, groupName := range groups {
		groupPatterns, ok := s.patternGroups[groupName]
		if !ok {
			slog.Warn("Unknown masking pattern group, skipping", "group", groupName)
			continue
		}
		for _, name := range groupPatterns {
			if seen[name] {
				continue
			}
			seen[name] = true
			s.addToResolved(resolved, name)
		}
	}

	// 2. Add individually named patterns
	for _, name := range patterns {
		if seen[name] {
			continue
		}
		seen[name] = true
		s.addToResolved(resolved, name)
	}

	// 3. Add custom patterns for this source
	if sourceName != "" {
		for _, name := range s.sourceCustomPatterns[sourceName] {
			if seen[name] {
				continue
			}
			seen[name] = true
			if cp, ok := s.patterns[name]; ok {
				resolved.regexPatterns = append(resolved.regexPatterns, cp)
			}
		}
	}

	return resolved
}

// addToResolved adds a pattern name to the resolved set, categorizing it as
// either a code masker or a regex pattern.
func (s *Service) addToResolved(resolved *resolvedPatterns, name string) {
	if slices.Contains(builtinCodeMaskers(), name) {
		resolved.codeMaskerNames = append(resolved.codeMaskerNames, name)
		return
	}

	if cp, ok := s.patterns[name]; ok {
		resolved.regexPatterns = append(resolved.regexPatterns, cp)
		return
	}

	slog.Warn("Unknown masking pattern, skipping", "pattern", name)
}

func (r *resolvedPatterns) empty() bool {
	return len(r.codeMaskerNames) == 0 && len(r.regexPatterns) == 0
}
