package analysis

import (
	"strconv"
	"strings"
)

// MatchesRequirement reports whether totalYears satisfies a requirement
// expression. The grammar, tried in order:
//
//	"N+"  -> totalYears >= N
//	"N-M" -> N <= totalYears <= M
//	"N"   -> totalYears >= N (bare non-negative integer)
//
// Anything else, including malformed expressions, never matches. A job
// description with a broken requirement simply produces
// experience_match=false rather than a processing failure.
func MatchesRequirement(expr string, totalYears float64) bool {
	expr = strings.TrimSpace(expr)

	switch {
	case strings.Contains(expr, "+"):
		min, err := strconv.Atoi(strings.TrimSpace(strings.ReplaceAll(expr, "+", "")))
		if err != nil {
			return false
		}
		return totalYears >= float64(min)

	case strings.Contains(expr, "-"):
		parts := strings.Split(expr, "-")
		if len(parts) != 2 {
			return false
		}
		min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return false
		}
		max, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return false
		}
		return totalYears >= float64(min) && totalYears <= float64(max)

	default:
		min, err := strconv.Atoi(expr)
		if err != nil {
			return false
		}
		return totalYears >= float64(min)
	}
}
