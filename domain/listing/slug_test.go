package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Acme AI", "acme-ai"},
		{"punctuation collapses", "Foo Bar!!", "foo-bar"},
		{"already clean", "foo-bar", "foo-bar"},
		{"mixed separators", "  Spectra -- AI / Tools  ", "spectra-ai-tools"},
		{"uppercase", "SHIPSENTRY", "shipsentry"},
		{"digits kept", "Tool 42", "tool-42"},
		{"leading trailing stripped", "!!!hello!!!", "hello"},
		{"only symbols falls back", "!!!", "tool"},
		{"empty falls back", "", "tool"},
		{"unicode falls back per rune", "café", "caf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugWithSuffix(t *testing.T) {
	assert.Equal(t, "foo-bar-2", SlugWithSuffix("foo-bar", 2))
	assert.Equal(t, "tool-10", SlugWithSuffix("tool", 10))
}
