package config

import (
	"os"
	"strings"
)

// ExpandEnv expands ${VAR} and ${VAR:-default} references in YAML content
// before it is parsed. Bare $VAR is left untouched so SQL snippets and shell
// fragments inside config values survive expansion.
//
// Examples:
//   - ${DATABASE_URL} → value of DATABASE_URL
//   - ${PLANNER_ADDR:-localhost:50051} → value or the default when unset
//   - "cost > $100" → preserved literally
func ExpandEnv(data []byte) []byte {
	var out strings.Builder
	out.Grow(len(data))

	s := string(data)
	for {
		start := strings.Index(s, "${")
		if start < 0 {
			out.WriteString(s)
			break
		}
		end := strings.Index(s[start:], "}")
		if end < 0 {
			out.WriteString(s)
			break
		}
		end += start

		out.WriteString(s[:start])
		out.WriteString(resolveRef(s[start+2 : end]))
		s = s[end+1:]
	}

	return []byte(out.String())
}

// resolveRef resolves a single NAME or NAME:-default reference.
func resolveRef(ref string) string {
	name, def, hasDefault := strings.Cut(ref, ":-")
	if !validEnvName(name) {
		// Not an env reference (e.g. "${ARRAY[0]}" in a shell snippet);
		// reproduce the original text.
		return "${" + ref + "}"
	}
	if v, ok := os.LookupEnv(name); ok {
		return v
	}
	if hasDefault {
		return def
	}
	return ""
}

func validEnvName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
