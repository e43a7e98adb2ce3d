package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talenthive/resume-screener/internal/types"
)

type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestBuildComprehensivePrompt(t *testing.T) {
	jd := &types.JDData{
		ClientName:         "Acme Corp",
		JDTitle:            "Backend Engineer",
		RequiredExperience: "3+",
		MinExperience:      3,
		MaxExperience:      6,
		PrimarySkills:      []string{"Go", "PostgreSQL"},
	}

	now := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	prompt, err := buildComprehensivePrompt("resume body here", jd, now)
	require.NoError(t, err)

	assert.Contains(t, prompt, `Handle "Present" as 03/2026`)
	assert.Contains(t, prompt, "Required Experience from JD: 3+")
	assert.Contains(t, prompt, "Min Experience: 3 years")
	assert.Contains(t, prompt, "Max Experience: 6 years")
	assert.Contains(t, prompt, "resume body here")
	assert.Contains(t, prompt, `"client_name": "Acme Corp"`)
	assert.Contains(t, prompt, "Return ONLY valid JSON")
}

func TestBuildComprehensivePrompt_NoRequirement(t *testing.T) {
	jd := &types.JDData{ClientName: "Acme Corp", JDTitle: "Backend Engineer"}

	prompt, err := buildComprehensivePrompt("resume", jd, time.Now())
	require.NoError(t, err)
	assert.Contains(t, prompt, "Required Experience from JD: Not specified")
}

func TestAnalyzeResume(t *testing.T) {
	client := &fakeClient{response: `{
		"candidate_info": {"candidate_name": "Jane Doe"},
		"skill_analysis": {"match_score": 80, "matching_skills": ["Go"]},
		"experience_analysis": {
			"positions": [{"company": "ABC Corp", "duration_length": "4 years", "employment_type": "full-time"}]
		},
		"summary": "Good fit."
	}`}

	analyzer := NewAnalyzer(client)
	jd := &types.JDData{
		ClientName:         "Acme Corp",
		JDTitle:            "Backend Engineer",
		RequiredExperience: "3+",
	}

	result, err := analyzer.AnalyzeResume(context.Background(), "resume with jane@x.com", jd)
	require.NoError(t, err)

	assert.Contains(t, client.prompt, "resume with jane@x.com")
	assert.Equal(t, "Jane Doe", result.CandidateInfo.CandidateName)
	assert.Equal(t, 80, result.SkillAnalysis.MatchScore)
	assert.Equal(t, "4 years", result.Experience.TotalExperience)
	assert.True(t, result.Experience.ExperienceMatch)
	assert.Equal(t, "comprehensive", result.AnalysisType)
	assert.True(t, result.ProfileFeedback.HasEmail)
}

func TestAnalyzeResume_ClientError(t *testing.T) {
	client := &fakeClient{err: assert.AnError}
	analyzer := NewAnalyzer(client)

	result, err := analyzer.AnalyzeResume(context.Background(), "resume", &types.JDData{ClientName: "A", JDTitle: "B"})
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "comprehensive analysis failed")
}
