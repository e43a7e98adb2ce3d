package analysis

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	yearsRe  = regexp.MustCompile(`(?i)(\d+)\s*year`)
	monthsRe = regexp.MustCompile(`(?i)(\d+)\s*month`)
)

// ParseDuration converts a free-text duration such as "2 years 5 months"
// into a month count. Either component may be absent and defaults to
// zero; text with no recognizable duration yields 0. Tolerant by policy:
// one bad field must never abort a whole analysis, so there is no error
// return.
func ParseDuration(text string) int {
	months := 0
	if m := yearsRe.FindStringSubmatch(text); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			months += years * 12
		}
	}
	if m := monthsRe.FindStringSubmatch(text); m != nil {
		if mo, err := strconv.Atoi(m[1]); err == nil {
			months += mo
		}
	}
	return months
}

// FormatMonths renders a month total as "{y} years" or
// "{y} years {m} months" when there is a month remainder.
func FormatMonths(totalMonths int) string {
	years := totalMonths / 12
	months := totalMonths % 12
	if months == 0 {
		return fmt.Sprintf("%d years", years)
	}
	return fmt.Sprintf("%d years %d months", years, months)
}

// SumExperience totals the countable experience across positions,
// skipping internships and positions with missing dates. It returns the
// month total and how many positions contributed; callers use the count
// to distinguish "zero experience" from "no countable data".
func SumExperience(positions []Position) (totalMonths, counted int) {
	for _, p := range positions {
		if p.IsInternship || p.DurationMissing {
			continue
		}
		length := strings.TrimSpace(p.DurationLength)
		if length == "" || length == "N/A" {
			continue
		}
		totalMonths += ParseDuration(length)
		counted++
	}
	return totalMonths, counted
}
