package models

// CareerPathEntry is a static catalog record describing a job role.
type CareerPathEntry struct {
	ID              string   `json:"id"`
	Role            string   `json:"role"`
	Industry        string   `json:"industry"`
	RequiredSkills  []string `json:"requiredSkills"`
	GrowthPotential string   `json:"growthPotential"`
	SalaryRange     string   `json:"salaryRange"`
	NextSteps       []string `json:"nextSteps"`
}

// ScoredCareerPath is a per-request result: a catalog entry plus the
// composite match score and its explanation.
type ScoredCareerPath struct {
	CareerPathEntry
	Score       float64 `json:"score"`
	MatchReason string  `json:"matchReason"`
}

// Resource is a read-only catalog record for a learning, job, mentorship or
// roadmap resource.
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Level       string   `json:"level,omitempty"`
	Type        string   `json:"type"`
	Provider    string   `json:"provider"`
	Duration    string   `json:"duration,omitempty"`
	Cost        string   `json:"cost,omitempty"`
	Category    string   `json:"category,omitempty"`
}

// Resource levels.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
	LevelAll          = "all_levels"
)

// Resource types.
const (
	ResourceTypeCourse        = "course"
	ResourceTypeArticle       = "article"
	ResourceTypeCertification = "certification"
	ResourceTypeJob           = "job"
	ResourceTypeMentor        = "mentor"
	ResourceTypeRoadmap       = "roadmap"
)
