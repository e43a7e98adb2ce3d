package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/talenthive/resume-screener/internal/analysis"
	"github.com/talenthive/resume-screener/internal/types"
)

// Analyzer runs comprehensive resume screening against a job description.
type Analyzer struct {
	client Client
}

// NewAnalyzer creates an Analyzer backed by the given model client.
func NewAnalyzer(client Client) *Analyzer {
	return &Analyzer{client: client}
}

// AnalyzeResume screens a resume against a job description and returns a
// fully normalized report.
func (a *Analyzer) AnalyzeResume(ctx context.Context, resumeText string, jd *types.JDData) (*analysis.Result, error) {
	prompt, err := buildComprehensivePrompt(resumeText, jd, time.Now())
	if err != nil {
		return nil, err
	}

	raw, err := a.client.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("comprehensive analysis failed: %w", err)
	}

	result := analysis.ParseResponse(raw)
	req := analysis.JobRequirement{
		RequiredExperience: jd.RequiredExperience,
		PrimarySkills:      jd.PrimarySkills,
		SecondarySkills:    jd.SecondarySkills,
	}
	return analysis.Normalize(result, req, resumeText), nil
}

func buildComprehensivePrompt(resumeText string, jd *types.JDData, now time.Time) (string, error) {
	jdJSON, err := json.MarshalIndent(jd, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode job description: %w", err)
	}

	today := now.Format("01/2006")
	requiredExperience := jd.RequiredExperience
	if requiredExperience == "" {
		requiredExperience = "Not specified"
	}

	return fmt.Sprintf(`Perform a comprehensive analysis of this resume against the job description with the following components:
CANDIDATE IDENTIFICATION:
    - Extract candidate_name (full name from resume header section)
    - If no name can be identified, return "Not specified"
1. SKILL MATCH ANALYSIS:
    - Calculate match_score (0-100) **based ONLY on primary skill matches**
    - List matching_skills (only primary skills that are found)
    - List missing_primary_skills (primary skills not found)
    - List matching_secondary_skills (secondary skills found, NOT used for match_score)
    - List missing_secondary_skills (secondary skills not found)

    Note: Do NOT include secondary skills in match_score calculation. They are only for profile feedback.

2. EXPERIENCE ANALYSIS:
   - Extract all work positions with:
     * company
     * title
     * duration (normalized to MM/YYYY-MM/YYYY format)
     * duration_length (calculated precisely in X years Y months format)
     * domain
     * internship flag
     * employment_type (full-time, contract, freelance, internship)
   - For positions missing dates: mark with "duration_missing": true
   - Calculate total_experience by summing duration_length of all non-internship positions
   - If no companies found, mark as fresher
   - Determine experience_match (boolean if meets JD requirements)

3. PROFILE FEEDBACK:
   - freelancer_status: true if any position is freelance/contract (mention in summary)
   - has_linkedin: true if LinkedIn URL found (show URL if available)
   - has_email: true if email found (show email if available)

4. IMPROVEMENT SUGGESTIONS:
   - List specific suggestions for improving resume

5. SUMMARY:
   - Provide overall assessment including:
     * Experience status
     * If any matching secondary skills are found, mention them as "Additional Advantage: [skill1, skill2,...]"

Rules for Experience Analysis:
- Normalize all dates to MM/YYYY format
- Handle "Present" as %s
- Exclude internships from total experience calculation
- For total_experience, sum all duration_length values from non-internship positions
- If multiple "Present" roles, mark as "Present (Current)"
- If any position is missing dates, include in analysis but mark appropriately
- If no companies found, clearly indicate this is a fresher profile

Required Experience from JD: %s
Min Experience: %d years
Max Experience: %d years

Resume:
%s

Job Description Data:
%s

Return STRICT JSON format with this structure:
{
    "candidate_info": {
        "candidate_name": "John Doe"
    },
    "skill_analysis": {
        "match_score": 75,
        "matching_skills": ["Python", "ML"],
        "missing_primary_skills": ["AWS"],
        "missing_secondary_skills": ["Docker"]
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
        "experience_match": true,
        "is_fresher": false,
        "positions_with_missing_dates": 1,
        "experience_status": "Partial dates available (1 position missing dates)"
    },
    "profile_feedback": {
        "freelancer_status": false,
        "has_linkedin": true,
        "linkedin_url": "https://linkedin.com/in/example",
        "has_email": true,
        "candidate_email": "example@email.com"
    },
    "suggestions": ["Add AWS certification", "Add missing employment dates"],
    "summary": "Strong technical skills but lacks cloud experience. Partial work history available."
}

Return ONLY valid JSON with no additional text or formatting.`,
		today, requiredExperience, jd.MinExperience, jd.MaxExperience, resumeText, string(jdJSON)), nil
}
