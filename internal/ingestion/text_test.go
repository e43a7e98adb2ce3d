package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"windows line endings", "a\r\nb\r\nc", "a\nb\nc"},
		{"old mac line endings", "a\rb", "a\nb"},
		{"collapse blank runs", "a\n\n\n\nb", "a\n\nb"},
		{"trailing spaces", "a   \nb\t\n", "a\nb"},
		{"leading blanks dropped", "\n\n\na", "a"},
		{"already clean", "a\nb", "a\nb"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestExtractText_UnsupportedExtension(t *testing.T) {
	_, err := ExtractText("resume.txt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}
