package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resumeWithContacts = `Jane Doe
Software Engineer
jane.doe@example.com
https://www.linkedin.com/in/jane-doe/
Experience: ...`

func TestNormalize_CompleteDates(t *testing.T) {
	r := &Result{
		CandidateInfo: &CandidateInfo{CandidateName: "Jane Doe"},
		Experience: &ExperienceAnalysis{
			Positions: []Position{
				{Company: "ABC Corp", DurationLength: "2 years 5 months", EmploymentType: "full-time"},
				{Company: "XYZ Ltd", DurationLength: "1 year 7 months", EmploymentType: "full-time"},
			},
		},
		Summary: "Solid backend engineer.",
	}

	out := Normalize(r, JobRequirement{RequiredExperience: "3+"}, resumeWithContacts)

	exp := out.Experience
	assert.False(t, exp.IsFresher)
	assert.Equal(t, 0, exp.PositionsWithMissingDates)
	assert.Equal(t, "Complete dates available", exp.ExperienceStatus)
	assert.Equal(t, "4 years", exp.TotalExperience)
	assert.True(t, exp.ExperienceMatch)
	assert.Equal(t, "comprehensive", out.AnalysisType)
	assert.Empty(t, out.Suggestions)
}

func TestNormalize_Fresher(t *testing.T) {
	r := &Result{Summary: "Recent graduate."}

	out := Normalize(r, JobRequirement{RequiredExperience: "2+"}, "no contacts")

	require.NotNil(t, out.CandidateInfo)
	assert.Equal(t, "Not specified", out.CandidateInfo.CandidateName)
	exp := out.Experience
	require.NotNil(t, exp)
	assert.True(t, exp.IsFresher)
	assert.Equal(t, "Fresher (no work experience found)", exp.ExperienceStatus)
	assert.Equal(t, "0 years", exp.TotalExperience)
	assert.False(t, exp.ExperienceMatch)
	assert.True(t, strings.HasPrefix(out.Summary, "Fresher profile. "))
}

func TestNormalize_FresherMeetsZeroRequirement(t *testing.T) {
	out := Normalize(&Result{}, JobRequirement{RequiredExperience: "0"}, "")
	assert.True(t, out.Experience.ExperienceMatch)
}

func TestNormalize_AllDatesMissing(t *testing.T) {
	r := &Result{
		Experience: &ExperienceAnalysis{
			Positions: []Position{
				{Company: "ABC Corp", DurationMissing: true},
				{Company: "XYZ Ltd", DurationMissing: true},
			},
		},
	}

	out := Normalize(r, JobRequirement{RequiredExperience: "2+"}, "")

	exp := out.Experience
	assert.False(t, exp.IsFresher)
	assert.Equal(t, 2, exp.PositionsWithMissingDates)
	assert.Equal(t, "No dates available for any position", exp.ExperienceStatus)
	assert.Equal(t, "Unable to calculate (missing dates)", exp.TotalExperience)
	assert.False(t, exp.ExperienceMatch)
	assert.Contains(t, out.Suggestions, "Add missing employment dates for 2 position(s)")
}

func TestNormalize_PartialDatesMissing(t *testing.T) {
	r := &Result{
		Experience: &ExperienceAnalysis{
			Positions: []Position{
				{Company: "ABC Corp", DurationLength: "3 years"},
				{Company: "XYZ Ltd", DurationMissing: true},
			},
		},
	}

	out := Normalize(r, JobRequirement{RequiredExperience: "2-4"}, "")

	exp := out.Experience
	assert.Equal(t, 1, exp.PositionsWithMissingDates)
	assert.Equal(t, "Partial dates available (1 positions missing dates)", exp.ExperienceStatus)
	assert.Equal(t, "3 years", exp.TotalExperience)
	assert.True(t, exp.ExperienceMatch)
	assert.Contains(t, out.Suggestions, "Add missing employment dates for 1 position(s)")
}

func TestNormalize_InternshipsExcludedFromTotal(t *testing.T) {
	r := &Result{
		Experience: &ExperienceAnalysis{
			Positions: []Position{
				{Company: "ABC Corp", DurationLength: "1 year"},
				{Company: "Intern Co", DurationLength: "2 years", IsInternship: true},
			},
		},
	}

	out := Normalize(r, JobRequirement{RequiredExperience: "2+"}, "")
	assert.Equal(t, "1 years", out.Experience.TotalExperience)
	assert.False(t, out.Experience.ExperienceMatch)
}

func TestNormalize_ContactBackfill(t *testing.T) {
	out := Normalize(&Result{}, JobRequirement{}, resumeWithContacts)

	pf := out.ProfileFeedback
	require.NotNil(t, pf)
	assert.True(t, pf.HasEmail)
	assert.Equal(t, "jane.doe@example.com", pf.CandidateEmail)
	assert.True(t, pf.HasLinkedIn)
	assert.Equal(t, "https://www.linkedin.com/in/jane-doe/", pf.LinkedInURL)
	assert.Contains(t, out.Summary, "LinkedIn profile available")
	assert.Contains(t, out.Summary, "Contact email available")
}

func TestNormalize_ModelContactsPreserved(t *testing.T) {
	r := &Result{
		ProfileFeedback: &ProfileFeedback{
			HasEmail:       true,
			CandidateEmail: "from.model@example.com",
		},
	}

	out := Normalize(r, JobRequirement{}, resumeWithContacts)
	assert.Equal(t, "from.model@example.com", out.ProfileFeedback.CandidateEmail)
}

func TestNormalize_MissingContacts(t *testing.T) {
	out := Normalize(&Result{Summary: "Okay profile."}, JobRequirement{}, "nothing to find")

	assert.Contains(t, out.Summary, "LinkedIn missing")
	assert.Contains(t, out.Summary, "Contact email missing")
	assert.Equal(t, "Fresher profile. Okay profile. LinkedIn missing. Contact email missing.", out.Summary)
}

func TestNormalize_FreelancerFromPositions(t *testing.T) {
	r := &Result{
		Experience: &ExperienceAnalysis{
			Positions: []Position{
				{Company: "ABC Corp", DurationLength: "1 year", EmploymentType: "full-time"},
				{Company: "Side LLC", DurationLength: "6 months", EmploymentType: "Contract"},
			},
		},
	}

	out := Normalize(r, JobRequirement{}, "")
	assert.True(t, out.ProfileFeedback.FreelancerStatus)
	assert.Contains(t, out.Summary, "Has freelance/contract experience")
}

func TestNormalize_MatchIgnoresModelVerdict(t *testing.T) {
	// The model claimed a match but the recomputed total says otherwise.
	r := &Result{
		Experience: &ExperienceAnalysis{
			Positions:       []Position{{Company: "ABC Corp", DurationLength: "1 year"}},
			ExperienceMatch: true,
			TotalExperience: "10 years",
		},
	}

	out := Normalize(r, JobRequirement{RequiredExperience: "5+"}, "")
	assert.Equal(t, "1 years", out.Experience.TotalExperience)
	assert.False(t, out.Experience.ExperienceMatch)
}
