// Package analysis turns raw model output into a strictly shaped,
// internally consistent resume analysis record.
package analysis

// Result is the full analysis structure produced by the model and
// finalized by Normalize. Pointer fields may be nil when the model
// omits a section; Normalize guarantees they are populated afterwards.
type Result struct {
	CandidateInfo   *CandidateInfo      `json:"candidate_info,omitempty"`
	SkillAnalysis   SkillAnalysis       `json:"skill_analysis"`
	Experience      *ExperienceAnalysis `json:"experience_analysis,omitempty"`
	ProfileFeedback *ProfileFeedback    `json:"profile_feedback,omitempty"`
	Suggestions     []string            `json:"suggestions,omitempty"`
	Summary         string              `json:"summary,omitempty"`
	AnalysisType    string              `json:"analysis_type,omitempty"`
}

// CandidateInfo identifies the candidate extracted from the resume header.
type CandidateInfo struct {
	CandidateName string `json:"candidate_name"`
}

// SkillAnalysis scores the resume against the job description's skills.
// MatchScore is driven by primary skills only; secondary skills are
// reported but excluded from scoring.
type SkillAnalysis struct {
	MatchScore              int      `json:"match_score"`
	MatchingSkills          []string `json:"matching_skills,omitempty"`
	MissingPrimarySkills    []string `json:"missing_primary_skills,omitempty"`
	MatchingSecondarySkills []string `json:"matching_secondary_skills,omitempty"`
	MissingSecondarySkills  []string `json:"missing_secondary_skills,omitempty"`
}

// Position is a single work entry from the resume. DurationLength is a
// free-text span such as "2 years 5 months" and may be empty when the
// model (or the fallback extractor) could not derive it.
type Position struct {
	Company         string `json:"company"`
	Title           string `json:"title"`
	Duration        string `json:"duration,omitempty"`
	DurationLength  string `json:"duration_length,omitempty"`
	Domain          string `json:"domain,omitempty"`
	IsInternship    bool   `json:"is_internship"`
	EmploymentType  string `json:"employment_type,omitempty"`
	DurationMissing bool   `json:"duration_missing"`
}

// ExperienceAnalysis aggregates the position list. TotalExperience,
// ExperienceMatch, IsFresher, PositionsWithMissingDates and
// ExperienceStatus are always recomputed by Normalize from the
// positions; model-supplied values for them are never trusted.
type ExperienceAnalysis struct {
	Positions                 []Position `json:"positions"`
	TotalExperience           string     `json:"total_experience"`
	ExperienceMatch           bool       `json:"experience_match"`
	IsFresher                 bool       `json:"is_fresher"`
	PositionsWithMissingDates int        `json:"positions_with_missing_dates"`
	ExperienceStatus          string     `json:"experience_status"`
}

// ProfileFeedback carries contact and engagement signals. Fields are
// fill-if-absent: truthy model values are kept, the rest are backfilled
// from the resume text during Normalize.
type ProfileFeedback struct {
	FreelancerStatus bool   `json:"freelancer_status"`
	HasLinkedIn      bool   `json:"has_linkedin"`
	LinkedInURL      string `json:"linkedin_url"`
	HasEmail         bool   `json:"has_email"`
	CandidateEmail   string `json:"candidate_email"`
}

// JobRequirement is the subset of the job description Normalize needs.
// RequiredExperience is a requirement expression: "N+", "N-M", a bare
// non-negative integer, or anything else (which never matches).
type JobRequirement struct {
	RequiredExperience string
	PrimarySkills      []string
	SecondarySkills    []string
}
