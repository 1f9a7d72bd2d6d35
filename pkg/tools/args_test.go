package tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeArguments_Passthrough(t *testing.T) {
	args := map[string]any{"query": "select 1", "limit": 10}
	assert.Equal(t, args, NormalizeArguments(args))
}

func TestNormalizeArguments_Nil(t *testing.T) {
	assert.Equal(t, map[string]any{}, NormalizeArguments(nil))

	var typed map[string]any
	assert.Equal(t, map[string]any{}, NormalizeArguments(typed))
}

func TestNormalizeArguments_EmptyString(t *testing.T) {
	assert.Equal(t, map[string]any{}, NormalizeArguments(""))
	assert.Equal(t, map[string]any{}, NormalizeArguments("   \n  "))
}

func TestNormalizeArguments_JSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]any
	}{
		{
			name:  "json object",
			input: `{"table": "orders", "limit": 10}`,
			expected: map[string]any{
				"table": "orders",
				"limit": float64(10),
			},
		},
		{
			name:  "nested json object",
			input: `{"data_model": {"type": "bar"}, "title": "Revenue"}`,
			expected: map[string]any{
				"data_model": map[string]any{"type": "bar"},
				"title":      "Revenue",
			},
		},
		{
			name:     "json array wraps in input",
			input:    `["orders", "customers"]`,
			expected: map[string]any{"input": []any{"orders", "customers"}},
		},
		{
			name:     "json string wraps in input",
			input:    `"show revenue by month"`,
			expected: map[string]any{"input": "show revenue by month"},
		},
		{
			name:     "json number wraps in input",
			input:    `42`,
			expected: map[string]any{"input": float64(42)},
		},
		{
			name:     "json null wraps in input",
			input:    `null`,
			expected: map[string]any{"input": nil},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeArguments(tt.input))
		})
	}
}

func TestNormalizeArguments_YAML(t *testing.T) {
	input := "table: orders\ncolumns:\n  - amount\n  - created_at"
	expected := map[string]any{
		"table":   "orders",
		"columns": []any{"amount", "created_at"},
	}
	assert.Equal(t, expected, NormalizeArguments(input))
}

func TestNormalizeArguments_FlatYAMLGoesToKeyValue(t *testing.T) {
	// Flat key: value lines parse as key-value pairs with scalar coercion,
	// not as YAML, so numbers come back typed.
	result := NormalizeArguments("table: orders\nlimit: 50")
	assert.Equal(t, map[string]any{"table": "orders", "limit": int64(50)}, result)
}

func TestNormalizeArguments_KeyValue(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected map[string]any
	}{
		{
			name:     "equals pairs",
			input:    "table=orders, limit=25",
			expected: map[string]any{"table": "orders", "limit": int64(25)},
		},
		{
			name:  "mixed separators and types",
			input: "source: warehouse, dry_run: true, threshold: 0.75, note: null",
			expected: map[string]any{
				"source":    "warehouse",
				"dry_run":   true,
				"threshold": 0.75,
				"note":      nil,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeArguments(tt.input))
		})
	}
}

func TestNormalizeArguments_RawStringFallback(t *testing.T) {
	input := "show me revenue for the last quarter"
	assert.Equal(t, map[string]any{"input": input}, NormalizeArguments(input))
}

func TestNormalizeArguments_OtherValueWraps(t *testing.T) {
	assert.Equal(t, map[string]any{"input": 7}, NormalizeArguments(7))
	assert.Equal(t, map[string]any{"input": []string{"a"}}, NormalizeArguments([]string{"a"}))
}

func TestCoerceScalar(t *testing.T) {
	assert.Equal(t, true, coerceScalar("TRUE"))
	assert.Equal(t, false, coerceScalar("false"))
	assert.Nil(t, coerceScalar("none"))
	assert.Equal(t, int64(-3), coerceScalar("-3"))
	assert.Equal(t, 2.5, coerceScalar("2.5"))
	assert.Equal(t, "NaN", coerceScalar("NaN"))
	assert.Equal(t, "orders_2024", coerceScalar("orders_2024"))
}
