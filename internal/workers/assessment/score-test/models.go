// internal/workers/assessment/score-test/models.go
package scoretest

import "career-workers/internal/models"

// Input carries a single completed assessment ready for scoring.
type Input struct {
	UserID            string            `json:"userId,omitempty"`
	TestType          models.TestType   `json:"testType"`
	Responses         map[string]int    `json:"responses"`
	ScenarioResponses map[string]string `json:"scenarioResponses,omitempty"`
}

// Output is merged back into process variables on completion.
type Output struct {
	TestType models.TestType      `json:"testType"`
	Scores   models.TraitScoreMap `json:"scores"`
}
