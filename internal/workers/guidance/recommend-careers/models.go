// internal/workers/guidance/recommend-careers/models.go
package recommendcareers

import "career-workers/internal/models"

// Input either carries the profile inline or names a user to load it for.
type Input struct {
	UserID  string              `json:"userId,omitempty"`
	Profile *models.UserProfile `json:"profile,omitempty"`
}

type Output struct {
	UserID         string                 `json:"userId,omitempty"`
	Recommendation *models.Recommendation `json:"recommendation"`
	Disclaimer     string                 `json:"disclaimer"`
}
