package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSite(t *testing.T) {
	site, err := Default()
	require.NoError(t, err)

	assert.NotEmpty(t, site.Brand)
	assert.Len(t, site.Services, 4)
	assert.Len(t, site.Process, 4)
	assert.Len(t, site.Insights, 10)

	pool := site.RotationPool()
	require.Len(t, pool, 10)
	for i, it := range pool {
		assert.Equal(t, i, it.Index)
		assert.Equal(t, site.Insights[i].ID, it.ID)
	}

	in, ok := site.Insight("board-reporting")
	assert.True(t, ok)
	assert.Equal(t, "Governance", in.Tag)

	_, ok = site.Insight("missing")
	assert.False(t, ok)
}

func TestParseValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{"Empty pool", "brand: x\n", ErrEmptyPool},
		{"Missing id", "insights:\n  - title: a\n", ErrMissingID},
		{"Blank id", "insights:\n  - id: '  '\n", ErrMissingID},
		{"Duplicate id", "insights:\n  - id: a\n  - id: b\n  - id: a\n", ErrDuplicateID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Parse([]byte("insights: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("brand: Test\ninsights:\n  - id: only\n    title: Only one\n"), 0o644))

	site, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Test", site.Brand)
	assert.Len(t, site.RotationPool(), 1)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestSanitizeLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Normal text", "Hello World", "Hello World"},
		{"ANSI color sequence", "\x1b[31mRed Text\x1b[0m", "Red Text"},
		{"Whitespace folded", "  Line\twith \n tabs  ", "Line with tabs"},
		{"Control characters removed", "Line\x00with\x01control\x02chars", "Linewithcontrolchars"},
		{"Multiple ANSI sequences", "\x1b[1m\x1b[32mBold Green\x1b[0m Normal", "Bold Green Normal"},
		{"Truncated", strings.Repeat("a", MaxLineLength+20), strings.Repeat("a", MaxLineLength)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, sanitizeLine(test.input))
		})
	}
}
