package masking

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialFieldMasker_Name(t *testing.T) {
	m := &CredentialFieldMasker{}
	assert.Equal(t, "credential_fields", m.Name())
}

func TestCredentialFieldMasker_AppliesTo(t *testing.T) {
	m := &CredentialFieldMasker{}

	tests := []struct {
		name    string
		data    string
		applies bool
	}{
		{
			name:    "json object with password key",
			data:    `{"password":"x"}`,
			applies: true,
		},
		{
			name:    "json array with token key",
			data:    `[{"token":"x"}]`,
			applies: true,
		},
		{
			name:    "json with leading whitespace",
			data:    "  \n{\"api_key\":\"x\"}",
			applies: true,
		},
		{
			name:    "json without sensitive keys",
			data:    `{"rows":[{"region":"emea","revenue":120}]}`,
			applies: false,
		},
		{
			name:    "plain text mentioning password",
			data:    "the password is hunter2",
			applies: false,
		},
		{
			name:    "empty string",
			data:    "",
			applies: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.applies, m.AppliesTo(tt.data))
		})
	}
}

func TestCredentialFieldMasker_Mask(t *testing.T) {
	m := &CredentialFieldMasker{}

	t.Run("masks flat credential fields", func(t *testing.T) {
		result := m.Mask(`{"user":"analyst","password":"FAKE-NOT-REAL-pw"}`)

		assert.NotContains(t, result, "FAKE-NOT-REAL-pw")

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &parsed))
		assert.Equal(t, "analyst", parsed["user"])
		assert.Equal(t, MaskedValue, parsed["password"])
	})

	t.Run("masks nested objects", func(t *testing.T) {
		result := m.Mask(`{"connection":{"host":"db.internal","password":"FAKE-pw-123"},"limit":100}`)

		assert.NotContains(t, result, "FAKE-pw-123")

		var parsed map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &parsed))
		conn := parsed["connection"].(map[string]any)
		assert.Equal(t, "db.internal", conn["host"])
		assert.Equal(t, MaskedValue, conn["password"])
	})

	t.Run("masks objects inside arrays", func(t *testing.T) {
		result := m.Mask(`[{"name":"crm","api_key":"FAKE-KEY-A"},{"name":"erp","api_key":"FAKE-KEY-B"}]`)

		assert.NotContains(t, result, "FAKE-KEY-A")
		assert.NotContains(t, result, "FAKE-KEY-B")

		var parsed []map[string]any
		require.NoError(t, json.Unmarshal([]byte(result), &parsed))
		require.Len(t, parsed, 2)
		assert.Equal(t, "crm", parsed[0]["name"])
		assert.Equal(t, MaskedValue, parsed[0]["api_key"])
		assert.Equal(t, MaskedValue, parsed[1]["api_key"])
	})

	t.Run("leaves numeric values under sensitive names untouched", func(t *testing.T) {
		// token_count is an NLP metric, not a credential. Masking decides
		// on value type, so numbers always pass through.
		data := `{"token_count":512,"secret_santa_budget":25}`
		assert.Equal(t, data, m.Mask(data))
	})

	t.Run("leaves data columns untouched", func(t *testing.T) {
		data := `{"rows":[{"passenger_count":4,"fare":12.5}]}`
		assert.Equal(t, data, m.Mask(data))
	})

	t.Run("returns original on invalid json", func(t *testing.T) {
		data := `{"password": "unterminated`
		assert.Equal(t, data, m.Mask(data))
	})

	t.Run("returns original bytes when nothing matched", func(t *testing.T) {
		// Pretty-printed input must come back byte-identical, not
		// re-serialized compact.
		data := "{\n  \"region\": \"emea\",\n  \"revenue\": 120\n}\n"
		assert.Equal(t, data, m.Mask(data))
	})

	t.Run("preserves trailing newline", func(t *testing.T) {
		result := m.Mask("{\"password\":\"FAKE-pw-456\"}\n")
		assert.NotContains(t, result, "FAKE-pw-456")
		assert.True(t, result[len(result)-1] == '\n')
	})

	t.Run("preserves large integers through the re-encode", func(t *testing.T) {
		result := m.Mask(`{"password":"FAKE-pw-789","event_id":12345678901234567890}`)

		assert.NotContains(t, result, "FAKE-pw-789")
		assert.Contains(t, result, "12345678901234567890",
			"Integer columns beyond float64 precision must survive")
	})

	t.Run("already masked value is not treated as a change", func(t *testing.T) {
		data := `{"password":"***MASKED***"}`
		assert.Equal(t, data, m.Mask(data))
	})
}

func TestIsSensitiveKey(t *testing.T) {
	sensitive := []string{
		"password", "PASSWORD", "db_password", "passwd",
		"secret", "client_secret", "api_key", "apikey", "ApiKey",
		"token", "access_token", "refresh_token",
		"credentials", "private_key", "aws_access_key_id",
		"connection_string", "dsn",
	}
	for _, key := range sensitive {
		assert.True(t, isSensitiveKey(key), "key %q should be sensitive", key)
	}

	plain := []string{
		"user", "host", "region", "revenue",
		"passenger_count", "author", "description", "sql",
	}
	for _, key := range plain {
		assert.False(t, isSensitiveKey(key), "key %q should not be sensitive", key)
	}
}
