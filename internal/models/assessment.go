package models

// TestType identifies one of the supported assessments. Dispatch is keyed on
// this type rather than free-form strings so new assessments register in one
// place.
type TestType string

const (
	TestTypeRIASEC       TestType = "riasec"
	TestTypeMentalSkills TestType = "mental_skills"
	TestTypePersonality  TestType = "personality"
)

// RIASEC interest categories (Holland codes).
const (
	InterestRealistic     = "realistic"
	InterestInvestigative = "investigative"
	InterestArtistic      = "artistic"
	InterestSocial        = "social"
	InterestEnterprising  = "enterprising"
	InterestConventional  = "conventional"
)

// InterestCategories lists the six RIASEC categories in canonical order.
// Scorers and insight generation iterate this slice, never the score map,
// so output ordering stays stable.
var InterestCategories = []string{
	InterestRealistic,
	InterestInvestigative,
	InterestArtistic,
	InterestSocial,
	InterestEnterprising,
	InterestConventional,
}

// Mental skill identifiers.
const (
	SkillAnalyticalThinking    = "analytical_thinking"
	SkillDeductiveReasoning    = "deductive_reasoning"
	SkillPatternRecognition    = "pattern_recognition"
	SkillStrategicPlanning     = "strategic_planning"
	SkillEmotionalIntelligence = "emotional_intelligence"
	SkillStressManagement      = "stress_management"
)

// Big Five trait identifiers.
const (
	TraitOpenness          = "openness"
	TraitConscientiousness = "conscientiousness"
	TraitExtraversion      = "extraversion"
	TraitAgreeableness     = "agreeableness"
	TraitNeuroticism       = "neuroticism"
)

// PersonalityTraits lists the five traits in canonical order.
var PersonalityTraits = []string{
	TraitOpenness,
	TraitConscientiousness,
	TraitExtraversion,
	TraitAgreeableness,
	TraitNeuroticism,
}

// TestQuestion is a single assessment item. Category, Skill and Trait are
// mutually exclusive depending on the owning test. Weight defaults to 1.0.
type TestQuestion struct {
	ID       string  `json:"id"`
	Text     string  `json:"text"`
	Category string  `json:"category,omitempty"`
	Skill    string  `json:"skill,omitempty"`
	Trait    string  `json:"trait,omitempty"`
	Weight   float64 `json:"weight,omitempty"`
	Reverse  bool    `json:"reverse,omitempty"`
	Scenario string  `json:"scenario,omitempty"`
}

// TestSubmission is one completed assessment as delivered by the API layer.
// ScenarioResponses keys follow the "<questionId>_scenario" convention.
type TestSubmission struct {
	TestType          TestType          `json:"testType"`
	Responses         map[string]int    `json:"responses"`
	ScenarioResponses map[string]string `json:"scenarioResponses,omitempty"`
}

// TraitScoreMap maps a category, skill or trait label to its normalized
// score. Produced fresh per scoring call.
type TraitScoreMap map[string]float64

// PsychProfile is the merged result of all completed assessments.
type PsychProfile struct {
	InterestScores    TraitScoreMap `json:"interestScores"`
	MentalSkills      TraitScoreMap `json:"mentalSkills"`
	PersonalityTraits TraitScoreMap `json:"personalityTraits"`
	Insights          []string      `json:"insights"`
	DevelopmentAreas  []string      `json:"developmentAreas"`
}
