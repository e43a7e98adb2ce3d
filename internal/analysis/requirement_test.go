package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchesRequirement(t *testing.T) {
	tests := []struct {
		name  string
		expr  string
		years float64
		want  bool
	}{
		{"plus met", "3+", 3.5, true},
		{"plus exact", "3+", 3, true},
		{"plus not met", "5+", 3.5, false},
		{"plus with space", "3 +", 4, true},
		{"range inside", "2-4", 3, true},
		{"range lower bound", "2-4", 2, true},
		{"range upper bound", "2-4", 4, true},
		{"range below", "2-4", 1.9, false},
		{"range above", "2-4", 4.1, false},
		{"range spaced", "2 - 4", 3, true},
		{"range malformed", "2-4-6", 3, false},
		{"bare met", "3", 3.2, true},
		{"bare not met", "3", 2.9, false},
		{"bare with padding", " 3 ", 3, true},
		{"empty", "", 10, false},
		{"prose", "three years", 10, false},
		{"decimal", "3.5", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesRequirement(tt.expr, tt.years))
		})
	}
}
