// Package assessment implements the psychometric test scorers and the
// coordinator that merges their results into a psychological profile. All
// scorers are pure functions of their inputs plus fixed question banks, and
// are safe for concurrent use.
package assessment

import "career-workers/internal/models"

// RIASECScorer computes the six-category occupational-interest profile from
// 1-5 Likert answers.
type RIASECScorer struct {
	questions []models.TestQuestion
}

func NewRIASECScorer() *RIASECScorer {
	return &RIASECScorer{questions: riasecQuestions()}
}

// Questions returns the question bank.
func (s *RIASECScorer) Questions() []models.TestQuestion { return s.questions }

// Score converts raw answers into normalized 0-1 scores per category. Only
// answered questions contribute to the weighted average; all six categories
// appear in the output, with 0.0 for any category left entirely unanswered.
// Partial responses degrade gracefully, never error.
func (s *RIASECScorer) Score(responses map[string]int) (models.TraitScoreMap, error) {
	if err := validateResponses(responses); err != nil {
		return nil, err
	}

	sums := make(map[string]float64, len(models.InterestCategories))
	weights := make(map[string]float64, len(models.InterestCategories))

	for _, q := range s.questions {
		raw, ok := responses[q.ID]
		if !ok {
			continue
		}
		sums[q.Category] += float64(raw) * q.Weight
		weights[q.Category] += q.Weight
	}

	scores := make(models.TraitScoreMap, len(models.InterestCategories))
	for _, category := range models.InterestCategories {
		if weights[category] > 0 {
			score := sums[category] / (weights[category] * 5)
			if score > 1.0 {
				score = 1.0
			}
			scores[category] = score
		} else {
			scores[category] = 0.0
		}
	}
	return scores, nil
}
