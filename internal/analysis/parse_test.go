package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validResponse = `{
	"candidate_info": {"candidate_name": "Jane Doe"},
	"skill_analysis": {
		"match_score": 75,
		"matching_skills": ["Python", "ML"],
		"missing_primary_skills": ["AWS"],
		"matching_secondary_skills": ["Docker"],
		"missing_secondary_skills": ["K8s"]
	},
	"experience_analysis": {
		"positions": [
			{
				"company": "ABC Corp",
				"title": "Software Engineer",
				"duration": "01/2020 - 06/2022",
				"duration_length": "2 years 5 months",
				"domain": "IT",
				"is_internship": false,
				"employment_type": "full-time",
				"duration_missing": false
			}
		],
		"total_experience": "2 years 5 months",
		"experience_match": true
	},
	"profile_feedback": {
		"freelancer_status": false,
		"has_linkedin": true,
		"linkedin_url": "https://linkedin.com/in/janedoe",
		"has_email": true,
		"candidate_email": "jane@example.com"
	},
	"suggestions": ["Add AWS certification"],
	"summary": "Strong technical profile."
}`

func TestParseResponse_StrictJSON(t *testing.T) {
	r := ParseResponse(validResponse)
	require.NotNil(t, r)
	require.NotNil(t, r.CandidateInfo)
	assert.Equal(t, "Jane Doe", r.CandidateInfo.CandidateName)
	assert.Equal(t, 75, r.SkillAnalysis.MatchScore)
	assert.Equal(t, []string{"Python", "ML"}, r.SkillAnalysis.MatchingSkills)
	require.NotNil(t, r.Experience)
	require.Len(t, r.Experience.Positions, 1)
	assert.Equal(t, "ABC Corp", r.Experience.Positions[0].Company)
	assert.True(t, r.Experience.ExperienceMatch)
	assert.Equal(t, "Strong technical profile.", r.Summary)
}

func TestParseResponse_JSONCodeFence(t *testing.T) {
	r := ParseResponse("```json\n" + validResponse + "\n```")
	require.NotNil(t, r.CandidateInfo)
	assert.Equal(t, "Jane Doe", r.CandidateInfo.CandidateName)
}

func TestParseResponse_BareCodeFence(t *testing.T) {
	r := ParseResponse("```\n" + validResponse + "\n```")
	require.NotNil(t, r.CandidateInfo)
	assert.Equal(t, "Jane Doe", r.CandidateInfo.CandidateName)
}

func TestParseResponse_FallbackOnMalformedJSON(t *testing.T) {
	// Truncated output: closing braces are gone, strict decoding fails.
	text := `Here is the analysis:
	"match_score": 60,
	"matching_skills": ["Go", "SQL"],
	"missing_primary_skills": [],
	"total_experience": "3 years",
	"experience_match": true,
	"suggestions": ["Add certifications", "Expand summary"],
	"summary": "Decent match overall"`

	r := ParseResponse(text)
	require.NotNil(t, r)
	assert.Equal(t, 60, r.SkillAnalysis.MatchScore)
	assert.Equal(t, []string{"Go", "SQL"}, r.SkillAnalysis.MatchingSkills)
	assert.Empty(t, r.SkillAnalysis.MissingPrimarySkills)
	require.NotNil(t, r.Experience)
	assert.Equal(t, "3 years", r.Experience.TotalExperience)
	assert.True(t, r.Experience.ExperienceMatch)
	assert.Equal(t, []string{"Add certifications", "Expand summary"}, r.Suggestions)
	assert.Equal(t, "Decent match overall", r.Summary)
}

func TestParseResponse_FallbackRecoversPositions(t *testing.T) {
	text := `analysis follows
	"positions": [
		{"company": "ABC Corp", "title": "Engineer", "duration": "01/2020 - 01/2021", "domain": "IT", "is_internship": false},
		{"company": "Intern Co", "title": "Intern", "duration": "06/2019 - 08/2019", "domain": "IT", "is_internship": true}
	`

	r := ParseResponse(text)
	require.NotNil(t, r.Experience)
	require.Len(t, r.Experience.Positions, 2)
	assert.Equal(t, "ABC Corp", r.Experience.Positions[0].Company)
	assert.Equal(t, "Engineer", r.Experience.Positions[0].Title)
	assert.False(t, r.Experience.Positions[0].IsInternship)
	assert.Equal(t, "Intern Co", r.Experience.Positions[1].Company)
	assert.True(t, r.Experience.Positions[1].IsInternship)
}

func TestParseResponse_GarbageYieldsDefaults(t *testing.T) {
	r := ParseResponse("I am sorry, I cannot help with that.")
	require.NotNil(t, r)
	assert.Nil(t, r.CandidateInfo)
	assert.Zero(t, r.SkillAnalysis.MatchScore)
	assert.Empty(t, r.SkillAnalysis.MatchingSkills)
	require.NotNil(t, r.Experience)
	assert.Empty(t, r.Experience.Positions)
	assert.False(t, r.Experience.ExperienceMatch)
	assert.Empty(t, r.Summary)
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFence("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFence("  {\"a\":1}  "))
}
