package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("QUARRY_TEST_HOST", "db.internal")
	t.Setenv("QUARRY_TEST_PORT", "5432")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple reference",
			input:    "host: ${QUARRY_TEST_HOST}",
			expected: "host: db.internal",
		},
		{
			name:     "multiple references",
			input:    "dsn: ${QUARRY_TEST_HOST}:${QUARRY_TEST_PORT}",
			expected: "dsn: db.internal:5432",
		},
		{
			name:     "missing variable expands empty",
			input:    "key: ${QUARRY_TEST_UNSET}",
			expected: "key: ",
		},
		{
			name:     "default used when unset",
			input:    "addr: ${QUARRY_TEST_UNSET:-localhost:50051}",
			expected: "addr: localhost:50051",
		},
		{
			name:     "default ignored when set",
			input:    "host: ${QUARRY_TEST_HOST:-fallback}",
			expected: "host: db.internal",
		},
		{
			name:     "bare dollar preserved",
			input:    "filter: cost > $100",
			expected: "filter: cost > $100",
		},
		{
			name:     "shell array syntax preserved",
			input:    "cmd: echo ${ARRAY[0]}",
			expected: "cmd: echo ${ARRAY[0]}",
		},
		{
			name:     "unterminated reference preserved",
			input:    "broken: ${QUARRY_TEST_HOST",
			expected: "broken: ${QUARRY_TEST_HOST",
		},
		{
			name:     "no references",
			input:    "plain: value",
			expected: "plain: value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExpandEnv([]byte(tt.input))
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestValidEnvName(t *testing.T) {
	assert.True(t, validEnvName("DATABASE_URL"))
	assert.True(t, validEnvName("VAR_2"))
	assert.False(t, validEnvName(""))
	assert.False(t, validEnvName("2VAR"))
	assert.False(t, validEnvName("lower"))
	assert.False(t, validEnvName("ARRAY[0]"))
}
