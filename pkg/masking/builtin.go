package masking

// Pattern is a regex masking rule definition.
type Pattern struct {
	Pattern     string
	Replacement string
	Description string
}

// builtinPatterns returns the built-in regex masking rules. Data source
// configs and the output masking group reference these by name.
func builtinPatterns() map[string]Pattern {
	return map[string]Pattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{20,})["']?`,
			Replacement: `"api_key": "__MASKED_API_KEY__"`,
			Description: "API keys",
		},
		"password": {
			Pattern:     `(?i)(?:password|pwd|passwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			Replacement: `"password": "__MASKED_PASSWORD__"`,
			Description: "Passwords",
		},
		"token": {
			Pattern:     `(?i)(?:access[_-]?token|auth[_-]?token|bearer)["']?\s*[:=]?\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"token": "__MASKED_TOKEN__"`,
			Description: "Access tokens",
		},
		"secret_key": {
			Pattern:     `(?i)(?:secret[_-]?key|client[_-]?secret)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `"secret_key": "__MASKED_SECRET_KEY__"`,
			Description: "Secret keys",
		},
		"connection_string": {
			Pattern:     `(?i)\b([a-z][a-z0-9+.\-]*)://[^:/\s@"']+:[^@\s"']+@`,
			Replacement: `${1}://__MASKED_CREDENTIALS__@`,
			Description: "Credentials embedded in connection URLs",
		},
		"private_key_block": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `__MASKED_PRIVATE_KEY__`,
			Description: "PEM key and certificate blocks",
		},
		"aws_access_key": {
			Pattern:     `\bAKIA[A-Z0-9]{16}\b`,
			Replacement: `__MASKED_AWS_KEY__`,
			Description: "AWS access key IDs",
		},
		"aws_secret_key": {
			Pattern:     `(?i)(?:aws[_-]?secret[_-]?access[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`,
			Replacement: `"aws_secret_access_key": "__MASKED_AWS_SECRET__"`,
			Description: "AWS secret keys",
		},
		"github_token": {
			Pattern:     `\bgh[pousr]_[A-Za-z0-9_]{36,255}\b`,
			Replacement: `__MASKED_GITHUB_TOKEN__`,
			Description: "GitHub tokens",
		},
		"email": {
			Pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9]+(?:[.-][A-Za-z0-9]+)*\.[A-Za-z]{2,63}\b`,
			Replacement: `__MASKED_EMAIL__`,
			Description: "Email addresses",
		},
	}
}

// builtinPatternGroups returns predefined groups of masking rules. Group
// members can reference regex patterns or code-based maskers.
//
// The default output group is "credentials". Email masking is deliberately
// not part of it: query results over user tables legitimately contain email
// columns, and masking them would corrupt analytics output. Sources that
// must not leak PII opt into the "pii" group explicitly.
func builtinPatternGroups() map[string][]string {
	return map[string][]string{
		"basic":       {"api_key", "password"},
		"credentials": {"credential_fields", "api_key", "password", "token", "secret_key", "connection_string", "private_key_block"},
		"cloud":       {"aws_access_key", "aws_secret_key", "api_key", "token"},
		"pii":         {"email"},
		"all":         {"credential_fields", "api_key", "password", "token", "secret_key", "connection_string", "private_key_block", "aws_access_key", "aws_secret_key", "github_token", "email"},
	}
}

// builtinCodeMaskers returns the names of code-based maskers that pattern
// groups may reference.
func builtinCodeMaskers() []string {
	return []string{"credential_fields"}
}
