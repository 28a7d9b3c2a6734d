// internal/workers/assessment/summarize-profile/models.go
package summarizeprofile

import "career-workers/internal/models"

// Input carries every completed assessment for one user.
type Input struct {
	UserID      string                  `json:"userId"`
	Submissions []models.TestSubmission `json:"submissions"`
}

type Output struct {
	UserID  string               `json:"userId"`
	Profile *models.PsychProfile `json:"psychProfile"`
}
