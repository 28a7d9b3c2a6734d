// internal/workers/guidance/send-report/models.go
package sendreport

import "career-workers/internal/models"

type Input struct {
	UserID         string                 `json:"userId"`
	Recommendation *models.Recommendation `json:"recommendation"`
	Disclaimer     string                 `json:"disclaimer,omitempty"`
	Priority       string                 `json:"priority,omitempty"`
}

type Output struct {
	ReportID string `json:"reportId"`
	Status   string `json:"status"` // "sent", "failed", "disabled"
	SentAt   string `json:"sentAt"` // ISO 8601
}

// Statuses
const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)

// Priorities
const (
	PriorityHigh = "high"
)
