package analysis

import (
	"fmt"
	"strings"
)

// Normalize repairs and enriches a decoded model result so that every
// report stored or returned downstream has the same shape regardless of
// how complete the model output was. It backfills contact details from
// the raw resume text, recomputes experience totals and the requirement
// match from position durations rather than trusting the model's
// arithmetic, and extends the summary with profile feedback.
func Normalize(result *Result, req JobRequirement, resumeText string) *Result {
	if result.CandidateInfo == nil {
		result.CandidateInfo = &CandidateInfo{CandidateName: "Not specified"}
	}
	if result.ProfileFeedback == nil {
		result.ProfileFeedback = &ProfileFeedback{}
	}
	if result.Experience == nil {
		result.Experience = &ExperienceAnalysis{}
	}

	pf := result.ProfileFeedback
	if !pf.HasLinkedIn {
		if url := ExtractLinkedInURL(resumeText); url != "" {
			pf.HasLinkedIn = true
			pf.LinkedInURL = url
		}
	}
	if !pf.HasEmail {
		if email, ok := ExtractEmail(resumeText); ok {
			pf.HasEmail = true
			pf.CandidateEmail = email
		}
	}
	if !pf.FreelancerStatus {
		for _, p := range result.Experience.Positions {
			switch strings.ToLower(p.EmploymentType) {
			case "freelance", "contract":
				pf.FreelancerStatus = true
			}
			if pf.FreelancerStatus {
				break
			}
		}
	}

	var additions []string
	if pf.FreelancerStatus {
		additions = append(additions, "Has freelance/contract experience")
	}
	if pf.HasLinkedIn {
		additions = append(additions, "LinkedIn profile available")
	} else {
		additions = append(additions, "LinkedIn missing")
	}
	if pf.HasEmail {
		additions = append(additions, "Contact email available")
	} else {
		additions = append(additions, "Contact email missing")
	}
	joined := strings.Join(additions, ". ") + "."
	if result.Summary != "" {
		result.Summary += " " + joined
	} else {
		result.Summary = joined
	}

	exp := result.Experience
	missing := 0
	for _, p := range exp.Positions {
		if p.DurationMissing {
			missing++
		}
	}
	exp.PositionsWithMissingDates = missing

	if len(exp.Positions) == 0 {
		exp.IsFresher = true
		exp.ExperienceStatus = "Fresher (no work experience found)"
		exp.TotalExperience = "0 years"
		exp.ExperienceMatch = MatchesRequirement(req.RequiredExperience, 0)
	} else {
		exp.IsFresher = false
		switch {
		case missing == 0:
			exp.ExperienceStatus = "Complete dates available"
		case missing == len(exp.Positions):
			exp.ExperienceStatus = "No dates available for any position"
		default:
			exp.ExperienceStatus = fmt.Sprintf("Partial dates available (%d positions missing dates)", missing)
		}

		totalMonths, counted := SumExperience(exp.Positions)
		if counted > 0 {
			exp.TotalExperience = FormatMonths(totalMonths)
		} else {
			exp.TotalExperience = "Unable to calculate (missing dates)"
		}
		exp.ExperienceMatch = MatchesRequirement(req.RequiredExperience, float64(totalMonths)/12)
	}

	if missing > 0 {
		result.Suggestions = append(result.Suggestions, fmt.Sprintf("Add missing employment dates for %d position(s)", missing))
	}

	if exp.IsFresher {
		if result.Summary != "" {
			result.Summary = "Fresher profile. " + result.Summary
		} else {
			result.Summary = "Fresher profile with no prior work experience"
		}
	}

	result.AnalysisType = "comprehensive"
	return result
}
