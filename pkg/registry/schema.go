// pkg/registry/schema.go
package registry

// AssessmentRegistry is the generated metadata file describing every
// assessment the scoring workers accept.
type AssessmentRegistry struct {
	Version     string      `json:"version"`
	LastUpdated string      `json:"lastUpdated"`
	Tests       []TestEntry `json:"tests"`
}

type TestEntry struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	TestType        string `json:"testType"`
	ScoringMethod   string `json:"scoringMethod"`
	DurationMinutes int    `json:"durationMinutes"`
	QuestionCount   int    `json:"questionCount"`
	ScaleMin        int    `json:"scaleMin"`
	ScaleMax        int    `json:"scaleMax"`
	HasScenarios    bool   `json:"hasScenarios"`
}
