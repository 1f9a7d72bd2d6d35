package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToRawURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "blob URL converts to raw",
			input:    "https://github.com/acme/metadata/blob/main/docs/revenue.md",
			expected: "https://raw.githubusercontent.com/acme/metadata/refs/heads/main/docs/revenue.md",
		},
		{
			name:     "tree URL converts to raw",
			input:    "https://github.com/acme/metadata/tree/main/docs/revenue.md",
			expected: "https://raw.githubusercontent.com/acme/metadata/refs/heads/main/docs/revenue.md",
		},
		{
			name:     "nested path converts correctly",
			input:    "https://github.com/acme/warehouse/blob/develop/models/marts/finance.md",
			expected: "https://raw.githubusercontent.com/acme/warehouse/refs/heads/develop/models/marts/finance.md",
		},
		{
			name:     "already raw URL passes through",
			input:    "https://raw.githubusercontent.com/acme/metadata/refs/heads/main/docs/revenue.md",
			expected: "https://raw.githubusercontent.com/acme/metadata/refs/heads/main/docs/revenue.md",
		},
		{
			name:     "non-GitHub URL passes through",
			input:    "https://example.com/some/path",
			expected: "https://example.com/some/path",
		},
		{
			name:     "github.com without blob/tree passes through",
			input:    "https://github.com/acme/metadata",
			expected: "https://github.com/acme/metadata",
		},
		{
			name:     "www.github.com blob URL converts",
			input:    "https://www.github.com/acme/metadata/blob/main/revenue.md",
			expected: "https://raw.githubusercontent.com/acme/metadata/refs/heads/main/revenue.md",
		},
		{
			name:     "invalid URL passes through",
			input:    "://not-a-url",
			expected: "://not-a-url",
		},
		{
			name:     "empty string passes through",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertToRawURL(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *RepoURLParts
		wantErr bool
		errMsg  string
	}{
		{
			name:  "tree URL with path",
			input: "https://github.com/acme/metadata/tree/main/docs",
			want: &RepoURLParts{
				Owner: "acme",
				Repo:  "metadata",
				Ref:   "main",
				Path:  "docs",
			},
		},
		{
			name:  "blob URL with nested path",
			input: "https://github.com/acme/warehouse/blob/develop/models/marts/finance.md",
			want: &RepoURLParts{
				Owner: "acme",
				Repo:  "warehouse",
				Ref:   "develop",
				Path:  "models/marts/finance.md",
			},
		},
		{
			name:  "tree URL without trailing path",
			input: "https://github.com/acme/metadata/tree/main",
			want: &RepoURLParts{
				Owner: "acme",
				Repo:  "metadata",
				Ref:   "main",
				Path:  "",
			},
		},
		{
			name:    "not a GitHub URL",
			input:   "https://gitlab.com/acme/metadata/tree/main/docs",
			wantErr: true,
			errMsg:  "not a GitHub URL",
		},
		{
			name:    "GitHub URL without blob or tree",
			input:   "https://github.com/acme/metadata",
			wantErr: true,
			errMsg:  "does not match",
		},
		{
			name:    "malformed URL",
			input:   "://broken",
			wantErr: true,
			errMsg:  "malformed URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRepoURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateResourceURL(t *testing.T) {
	defaultDomains := []string{"github.com", "raw.githubusercontent.com"}

	tests := []struct {
		name           string
		url            string
		allowedDomains []string
		wantErr        bool
		errMsg         string
	}{
		{
			name:           "valid github.com URL",
			url:            "https://github.com/acme/metadata/blob/main/revenue.md",
			allowedDomains: defaultDomains,
			wantErr:        false,
		},
		{
			name:           "valid raw.githubusercontent.com URL",
			url:            "https://raw.githubusercontent.com/acme/metadata/refs/heads/main/revenue.md",
			allowedDomains: defaultDomains,
			wantErr:        false,
		},
		{
			name:           "www prefix accepted",
			url:            "https://www.github.com/acme/metadata/blob/main/revenue.md",
			allowedDomains: defaultDomains,
			wantErr:        false,
		},
		{
			name:           "invalid scheme ftp",
			url:            "ftp://github.com/acme/metadata/blob/main/revenue.md",
			allowedDomains: defaultDomains,
			wantErr:        true,
			errMsg:         "invalid scheme",
		},
		{
			name:           "invalid scheme file",
			url:            "file:///etc/passwd",
			allowedDomains: defaultDomains,
			wantErr:        true,
			errMsg:         "invalid scheme",
		},
		{
			name:           "disallowed domain",
			url:            "https://evil.com/malicious",
			allowedDomains: defaultDomains,
			wantErr:        true,
			errMsg:         "not in allowed list",
		},
		{
			name:           "empty allowlist allows any domain",
			url:            "https://any-domain.com/path",
			allowedDomains: []string{},
			wantErr:        false,
		},
		{
			name:           "malformed URL",
			url:            "://broken",
			allowedDomains: defaultDomains,
			wantErr:        true,
			errMsg:         "malformed URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResourceURL(tt.url, tt.allowedDomains)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}
