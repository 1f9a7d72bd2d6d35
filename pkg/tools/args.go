package tools

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// NormalizeArguments coerces whatever the planner put in action.arguments
// into a parameter map. Maps pass through unchanged. Strings go through a
// parsing cascade, first successful parse wins:
//
//  1. JSON object → map[string]any
//  2. JSON non-object (string, number, array) → {"input": value}
//  3. YAML with structure (arrays, nested maps) → map[string]any
//  4. key: value / key=value pairs, comma or newline separated
//  5. raw string → {"input": string}
//
// Any other value wraps as {"input": value}. Nil and empty strings return an
// empty map so no-parameter tools validate cleanly.
func NormalizeArguments(v any) map[string]any {
	switch args := v.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		if args == nil {
			return map[string]any{}
		}
		return args
	case string:
		return parseArgString(args)
	default:
		return map[string]any{"input": v}
	}
}

func parseArgString(input string) map[string]any {
	input = strings.TrimSpace(input)
	if input == "" {
		return map[string]any{}
	}
	if result, ok := parseJSONArgs(input); ok {
		return result
	}
	if result, ok := parseYAMLArgs(input); ok {
		return result
	}
	if result, ok := parseKeyValueArgs(input); ok {
		return result
	}
	return map[string]any{"input": input}
}

// parseJSONArgs accepts any valid JSON document. Non-object values (arrays,
// strings, numbers, booleans, null) wrap as {"input": value}.
func parseJSONArgs(input string) (map[string]any, bool) {
	// First byte must be able to start a JSON value, otherwise skip the
	// unmarshal attempt entirely.
	b := input[0]
	switch {
	case b == '{' || b == '[' || b == '"' || b == '-' || b == 't' || b == 'f' || b == 'n':
	case b >= '0' && b <= '9':
	default:
		return nil, false
	}

	var raw any
	if err := json.Unmarshal([]byte(input), &raw); err != nil {
		return nil, false
	}
	if m, ok := raw.(map[string]any); ok {
		return m, true
	}
	return map[string]any{"input": raw}, true
}

// parseYAMLArgs accepts YAML only when the result carries real structure.
// Flat "key: value" lines fall through to the key-value parser so prose that
// merely looks like YAML is not misread.
func parseYAMLArgs(input string) (map[string]any, bool) {
	var result map[string]any
	if err := yaml.Unmarshal([]byte(input), &result); err != nil {
		return nil, false
	}
	if len(result) == 0 {
		return nil, false
	}
	for _, v := range result {
		switch v.(type) {
		case []any, map[string]any:
			return result, true
		}
	}
	return nil, false
}

// parseKeyValueArgs parses "key: value" or "key=value" pairs separated by
// commas or newlines. Values containing commas mis-split and reject the
// whole input, which then falls back to the raw-string wrap.
func parseKeyValueArgs(input string) (map[string]any, bool) {
	normalized := strings.ReplaceAll(input, "\n", ",")
	result := make(map[string]any)
	for _, part := range strings.Split(normalized, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key, value, ok := splitPair(part)
		if !ok {
			return nil, false
		}
		result[key] = coerceScalar(value)
	}
	if len(result) == 0 {
		return nil, false
	}
	return result, true
}

func splitPair(part string) (key, value string, ok bool) {
	for _, sep := range []string{":", "="} {
		idx := strings.Index(part, sep)
		if idx <= 0 {
			continue
		}
		k := strings.TrimSpace(part[:idx])
		if k == "" || strings.Contains(k, " ") {
			continue
		}
		return k, strings.TrimSpace(part[idx+1:]), true
	}
	return "", "", false
}

// coerceScalar converts a bare string value to the JSON type it spells.
func coerceScalar(s string) any {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	case "null", "none":
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		// NaN and Inf have no JSON encoding, keep the raw string.
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return s
		}
		return f
	}
	return s
}
