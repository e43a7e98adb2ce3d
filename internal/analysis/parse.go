package analysis

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// stripCodeFence removes a surrounding markdown code fence, if present,
// and trims whitespace. Models routinely wrap JSON output in fences even
// when asked not to.
func stripCodeFence(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

// ParseResponse decodes a model response into a Result. It first tries a
// strict JSON decode of the fence-stripped text; when that fails it falls
// back to tolerant regex extraction over the raw text so that a partially
// malformed response still yields a usable report. ParseResponse never
// returns nil.
func ParseResponse(text string) *Result {
	stripped := stripCodeFence(text)

	var r Result
	if err := json.Unmarshal([]byte(stripped), &r); err == nil {
		return &r
	}
	return fallbackParse(text)
}

func fallbackParse(text string) *Result {
	return &Result{
		SkillAnalysis: SkillAnalysis{
			MatchScore:              extractInt(text, "match_score"),
			MatchingSkills:          extractList(text, "matching_skills"),
			MissingPrimarySkills:    extractList(text, "missing_primary_skills"),
			MatchingSecondarySkills: extractList(text, "matching_secondary_skills"),
			MissingSecondarySkills:  extractList(text, "missing_secondary_skills"),
		},
		Experience: &ExperienceAnalysis{
			Positions:       extractPositions(text),
			TotalExperience: extractString(text, "total_experience"),
			ExperienceMatch: extractBool(text, "experience_match"),
		},
		Suggestions: extractList(text, "suggestions"),
		Summary:     extractString(text, "summary"),
	}
}

// extractRaw pulls the raw value text following a quoted key, up to the
// next comma, newline or closing brace.
func extractRaw(text, key string) (string, bool) {
	re := regexp.MustCompile(`"` + regexp.QuoteMeta(key) + `"\s*:\s*([^,\n}]+)`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.Trim(m[1], ` "'`), true
}

func extractString(text, key string) string {
	v, _ := extractRaw(text, key)
	return v
}

func extractInt(text, key string) int {
	v, ok := extractRaw(text, key)
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func extractBool(text, key string) bool {
	v, ok := extractRaw(text, key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.ToLower(v))
	if err != nil {
		return false
	}
	return b
}

func extractList(text, key string) []string {
	re := regexp.MustCompile(`"` + regexp.QuoteMeta(key) + `"\s*:\s*\[([^\]]*)\]`)
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	var items []string
	for _, part := range strings.Split(m[1], ",") {
		item := strings.Trim(strings.TrimSpace(part), `"'`)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

var positionBlockRe = regexp.MustCompile(`(?s)\{(.*?)\}`)

// extractPositions recovers position entries from malformed output by
// treating every brace-delimited block that mentions a company as a
// position object.
func extractPositions(text string) []Position {
	var positions []Position
	for _, m := range positionBlockRe.FindAllStringSubmatch(text, -1) {
		block := m[1]
		company, ok := extractRaw(block, "company")
		if !ok {
			continue
		}
		positions = append(positions, Position{
			Company:      company,
			Title:        extractString(block, "title"),
			Duration:     extractString(block, "duration"),
			Domain:       extractString(block, "domain"),
			IsInternship: extractBool(block, "is_internship"),
		})
	}
	return positions
}
