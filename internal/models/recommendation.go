package models

// Recommendation is the engine's sole output artifact. It is a value object;
// callers must not share or mutate it after construction.
type Recommendation struct {
	CareerPaths             []ScoredCareerPath `json:"careerPaths"`
	LearningResources       []Resource         `json:"learningResources"`
	SkillsToDevelop         []string           `json:"skillsToDevelop"`
	MentorshipOpportunities []Resource         `json:"mentorshipOpportunities"`
	JobOpportunities        []Resource         `json:"jobOpportunities"`
}
