package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractEmail(t *testing.T) {
	email, ok := ExtractEmail("Reach me at jane.doe+work@example.co.uk or by phone.")
	assert.True(t, ok)
	assert.Equal(t, "jane.doe+work@example.co.uk", email)
}

func TestExtractEmail_FirstMatchWins(t *testing.T) {
	email, ok := ExtractEmail("a@one.com then b@two.com")
	assert.True(t, ok)
	assert.Equal(t, "a@one.com", email)
}

func TestExtractEmail_NotFound(t *testing.T) {
	email, ok := ExtractEmail("no contact details here, not even an @ sign used properly")
	assert.False(t, ok)
	assert.Empty(t, email)
}

func TestExtractLinkedInURL(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"https with www", "profile: https://www.linkedin.com/in/jane-doe/", "https://www.linkedin.com/in/jane-doe/"},
		{"http without www", "see http://linkedin.com/in/jdoe_99", "http://linkedin.com/in/jdoe_99"},
		{"embedded in text", "LinkedIn (https://linkedin.com/in/someone) and more", "https://linkedin.com/in/someone"},
		{"company page ignored", "https://linkedin.com/company/acme", ""},
		{"none", "no profile listed", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractLinkedInURL(tt.text))
		})
	}
}
