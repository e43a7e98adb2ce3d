package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClientName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"acme corp", "Acme Corp"},
		{"ACME corp", "ACME Corp"},
		{"  acme   CORP  ", "Acme CORP"},
		{"tcs", "Tcs"},
		{"IBM global services", "IBM Global Services"},
		{"mIxEd CaSe", "Mixed Case"},
		{"", ""},
		{"123 industries", "123 Industries"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeClientName(tt.in), "input %q", tt.in)
	}
}
