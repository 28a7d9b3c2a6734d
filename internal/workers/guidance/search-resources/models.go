// internal/workers/guidance/search-resources/models.go
package searchresources

import "career-workers/internal/models"

type Input struct {
	Query      string   `json:"query,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Level      string   `json:"level,omitempty"`
	Type       string   `json:"type,omitempty"`
	Pagination struct {
		From int `json:"from"`
		Size int `json:"size"`
	} `json:"pagination,omitempty"`
}

type Output struct {
	Resources []models.Resource `json:"resources"`
	TotalHits int64             `json:"totalHits"`
	MaxScore  float64           `json:"maxScore,omitempty"`
	Took      int64             `json:"took,omitempty"`
	Source    string            `json:"source"`
}
