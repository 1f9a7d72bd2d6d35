package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quarryhq/quarry/pkg/config"
)

func TestCompileBuiltinPatterns(t *testing.T) {
	registry := config.NewDataSourceRegistry(nil)
	svc := NewService(registry, nil)

	// All built-in patterns should compile successfully
	assert.Equal(t, len(builtinPatterns()), len(svc.patterns),
		"All built-in patterns should compile (no custom patterns with empty registry)")

	// Each compiled pattern should have a valid regex
	for name, cp := range svc.patterns {
		assert.NotNil(t, cp.Regex, "Pattern %s should have compiled regex", name)
		assert.NotEmpty(t, cp.Replacement, "Pattern %s should have replacement", name)
	}
}

func TestBuiltinPatternGroupsReferenceKnownNames(t *testing.T) {
	patterns := builtinPatterns()
	codeMaskers := builtinCodeMaskers()

	for group, members := range builtinPatternGroups() {
		for _, name := range members {
			_, isPattern := patterns[name]
			isCodeMasker := false
			for _, cm := range codeMaskers {
				if cm == name {
					isCodeMasker = true
				}
			}
			assert.True(t, isPattern || isCodeMasker,
				"Group %s references unknown member %s", group, name)
		}
	}
}

func TestCompileCustomPatterns(t *testing.T) {
	registry := config.NewDataSourceRegistry(map[string]config.DataSourceConfig{
		"warehouse": {
			Transport: config.TransportStdio,
			Command:   "echo",
			DataMasking: &config.MaskingConfig{
				Enabled: true,
				CustomPatterns: []config.CustomMaskingPattern{
					{
						Pattern:     `CUSTOM_SECRET_[A-Za-z0-9]+`,
						Replacement: "[MASKED_CUSTOM]",
						Description: "Custom secret pattern",
					},
				},
			},
		},
	})

	svc := NewService(registry, nil)

	// Built-in patterns + 1 custom pattern
	assert.Equal(t, len(builtinPatterns())+1, len(svc.patterns))

	// Custom pattern should be keyed as "custom:warehouse:0"
	cp, exists := svc.patterns["custom:warehouse:0"]
	require.True(t, exists, "Custom pattern should be registered")
	assert.Equal(t, "[MASKED_CUSTOM]", cp.Replacement)
}

func TestCompileCustomPatterns_InvalidRegex(t *testing.T) {
	registry := config.NewDataSourceRegistry(map[string]config.DataSourceConfig{
		"warehouse": {
			Transport: config.TransportStdio,
			Command:   "echo",
			DataMasking: &config.MaskingConfig{
				Enabled: true,
				CustomPatterns: []config.CustomMaskingPattern{
					{
						Pattern:     `[invalid`,
						Replacement: "[MASKED]",
					},
					{
						Pattern:     `valid_pattern`,
						Replacement: "[MASKED_VALID]",
					},
				},
			},
		},
	})

	svc := NewService(registry, nil)

	// Invalid pattern should be skipped, valid one compiled
	_, invalidExists := svc.patterns["custom:warehouse:0"]
	assert.False(t, invalidExists, "Invalid regex pattern should be skipped")

	_, validExists := svc.patterns["custom:warehouse:1"]
	assert.True(t, validExists, "Valid pattern should be compiled")
}

func TestCompileCustomPatterns_MaskingDisabled(t *testing.T) {
	registry := config.NewDataSourceRegistry(map[string]config.DataSourceConfig{
		"warehouse": {
			Transport: config.TransportStdio,
			Command:   "echo",
			DataMasking: &config.MaskingConfig{
				Enabled: false,
				CustomPatterns: []config.CustomMaskingPattern{
					{Pattern: `secret`, Replacement: "[MASKED]"},
				},
			},
		},
	})

	svc := NewService(registry, nil)

	// Custom patterns from disabled sources should not be compiled
	_, exists := svc.patterns["custom:warehouse:0"]
	assert.False(t, exists, "Custom patterns from disabled sources should not be compiled")
}

func TestResolvePatterns_GroupExpansion(t *testing.T) {
	registry := config.NewDataSourceRegistry(nil)
	svc := NewService(registry, nil)

	tests := []struct {
		name           string
		groups         []string
		minRegex       int
		hasCodeMaskers bool
	}{
		{
			name:     "basic group",
			groups:   []string{"basic"},
			minRegex: 2, // api_key, password
		},
		{
			name:           "credentials group",
			groups:         []string{"credentials"},
			minRegex:       6, // api_key, password, token, secret_key, connection_string, private_key_block
			hasCodeMaskers: true,
		},
		{
			name:     "cloud group",
			groups:   []string{"cloud"},
			minRegex: 4,
		},
		{
			name:     "pii group",
			groups:   []string{"pii"},
			minRegex: 1, // email
		},
		{
			name:           "all group",
			groups:         []string{"all"},
			minRegex:       10,
			hasCodeMaskers: true,
		},
		{
			name:     "multiple groups with dedup",
			groups:   []string{"basic", "cloud"}, // Both have api_key
			minRegex: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolved := svc.resolvePatterns(tt.groups, nil, "")

			assert.GreaterOrEqual(t, len(resolved.regexPatterns), tt.minRegex,
				"Should have at least %d regex patterns", tt.minRegex)

			if tt.hasCodeMaskers {
				assert.NotEmpty(t, resolved.codeMaskerNames, "Should have code maskers")
				assert.Contains(t, resolved.codeMaskerNames, "credential_fields")
			}
		})
	}
}

func TestResolvePatterns_IndividualPatterns(t *testing.T) {
	registry := config.NewDataSourceRegistry(nil)
	svc := NewService(registry, nil)

	resolved := svc.resolvePatterns(nil, []string{"api_key", "email"}, "")

	assert.Len(t, resolved.regexPatterns, 2)

	names := make([]string, len(resolved.regexPatterns))
	for i, p := range resolved.regexPatterns {
		names[i] = p.Name
	}
	assert.Contains(t, names, "api_key")
	assert.Contains(t, names, "email")
}

func TestResolvePatterns_UnknownGroup(t *testing.T) {
	registry := config.NewDataSourceRegistry(nil)
	svc := NewService(registry, nil)

	resolved := svc.resolvePatterns([]string{"nonexistent_group"}, nil, "")

	assert.Empty(t, resolved.regexPatterns)
	assert.Empty(t, resolved.codeMaskerNames)
	assert.True(t, resolved.empty())
}

func TestResolvePatterns_WithCustomPatterns(t *testing.T) {
	registry := config.NewDataSourceRegistry(map[string]config.DataSourceConfig{
		"warehouse": {
			Transport: config.TransportStdio,
			Command:   "echo",
			DataMasking: &config.MaskingConfig{
				Enabled:       true,
				PatternGroups: []string{"basic"},
				CustomPatterns: []config.CustomMaskingPattern{
					{Pattern: `MY_SECRET_[A-Z]+`, Replacement: "[MASKED_MY_SECRET]"},
				},
			},
		},
	})

	svc := NewService(registry, nil)

	resolved := svc.resolvePatterns([]string{"basic"}, nil, "warehouse")

	// Should have basic group patterns + the custom pattern
	assert.GreaterOrEqual(t, len(resolved.regexPatterns), 3) // api_key + password + custom
}

func TestResolvePatterns_Deduplication(t *testing.T) {
	registry := config.NewDataSourceRegistry(nil)
	svc := NewService(registry, nil)

	// api_key appears in both the group and the individual patterns list
	resolved := svc.resolvePatterns([]string{"basic"}, []string{"api_key"}, "")

	apiKeyCount := 0
	for _, p := range resolved.regexPatterns {
		if p.Name == "api_key" {
			apiKeyCount++
		}
	}
	assert.Equal(t, 1, apiKeyCount, "api_key should appear only once (deduplicated)")
}
