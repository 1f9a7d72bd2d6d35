package masking

import (
	"encoding/json"
	"strings"
)

// MaskedValue is the replacement string for masked credential field values.
const MaskedValue = "***MASKED***"

// sensitiveKeyNeedles match JSON object keys whose string values must be
// masked. Matching is case-insensitive substring on the key. Only string
// values are masked: numeric columns that happen to contain a needle in
// their name (token_count, secret_santa_budget) pass through untouched.
var sensitiveKeyNeedles = []string{
	"password",
	"passwd",
	"secret",
	"api_key",
	"apikey",
	"token",
	"credential",
	"private_key",
	"access_key",
	"connection_string",
	"dsn",
}

// appliesToNeedles is the fast pre-check subset. JSON keys in source
// results are conventionally lowercase, so a raw contains check suffices.
var appliesToNeedles = []string{"password", "passwd", "secret", "api_key", "apikey", "token", "credential", "dsn"}

// CredentialFieldMasker masks string values of credential-named fields in
// JSON tool results while leaving data columns untouched. A catalog dump
// that embeds a warehouse connection config gets its password masked; a
// query result with a passenger_count column does not.
type CredentialFieldMasker struct{}

// Name returns the unique identifier for this masker.
func (m *CredentialFieldMasker) Name() string { return "credential_fields" }

// AppliesTo performs a lightweight check on whether this masker should process the data.
func (m *CredentialFieldMasker) AppliesTo(data string) bool {
	trimmed := strings.TrimSpace(data)
	if len(trimmed) == 0 || (trimmed[0] != '{' && trimmed[0] != '[') {
		return false
	}
	for _, needle := range appliesToNeedles {
		if strings.Contains(data, needle) {
			return true
		}
	}
	return false
}

// Mask parses the data as JSON and masks credential-named string fields
// throughout the object tree. Returns original data on parse errors
// (defensive) and when nothing matched, so untouched results keep their
// exact byte representation.
func (m *CredentialFieldMasker) Mask(data string) string {
	// UseNumber keeps integer columns byte-exact through the re-encode.
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	var root any
	if err := dec.Decode(&root); err != nil {
		return data
	}

	if !maskCredentialValues(root) {
		return data
	}

	masked, err := json.Marshal(root)
	if err != nil {
		return data
	}

	output := string(masked)
	if strings.HasSuffix(data, "\n") {
		output += "\n"
	}
	return output
}

// maskCredentialValues walks a decoded JSON tree in place and reports
// whether any value was masked.
func maskCredentialValues(node any) bool {
	anyMasked := false
	switch v := node.(type) {
	case map[string]any:
		for key, val := range v {
			if str, ok := val.(string); ok && isSensitiveKey(key) {
				if str != MaskedValue {
					v[key] = MaskedValue
					anyMasked = true
				}
				continue
			}
			if maskCredentialValues(val) {
				anyMasked = true
			}
		}
	case []any:
		for _, item := range v {
			if maskCredentialValues(item) {
				anyMasked = true
			}
		}
	}
	return anyMasked
}

// isSensitiveKey reports whether a JSON object key names a credential.
func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, needle := range sensitiveKeyNeedles {
		if strings.Contains(lower, needle) {
			return true
		}
	}
	return false
}
