package analysis

import "regexp"

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	linkedinRe = regexp.MustCompile(`https?://(www\.)?linkedin\.com/in/[a-zA-Z0-9\-_]+/?`)
)

// ExtractEmail returns the first email address found in the text.
func ExtractEmail(text string) (string, bool) {
	m := emailRe.FindString(text)
	if m == "" {
		return "", false
	}
	return m, true
}

// ExtractLinkedInURL returns the first LinkedIn profile URL found in the
// text, or the empty string when there is none.
func ExtractLinkedInURL(text string) string {
	return linkedinRe.FindString(text)
}
