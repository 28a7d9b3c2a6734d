package assessment

import "career-workers/internal/models"

// PersonalityScorer computes the Big Five trait scores, handling
// reverse-keyed items.
type PersonalityScorer struct {
	questions []models.TestQuestion
}

func NewPersonalityScorer() *PersonalityScorer {
	return &PersonalityScorer{questions: personalityQuestions()}
}

// Questions returns the question bank.
func (s *PersonalityScorer) Questions() []models.TestQuestion { return s.questions }

// Score converts raw answers into normalized 0-1 trait scores. Reverse-keyed
// items contribute 6-raw. A trait with no answered items defaults to 0.5,
// the neutral midpoint; this deliberately differs from the interest-code
// scorer's zero default and must not be unified.
func (s *PersonalityScorer) Score(responses map[string]int) (models.TraitScoreMap, error) {
	if err := validateResponses(responses); err != nil {
		return nil, err
	}

	sums := make(map[string]float64, len(models.PersonalityTraits))
	counts := make(map[string]int, len(models.PersonalityTraits))

	for _, q := range s.questions {
		raw, ok := responses[q.ID]
		if !ok {
			continue
		}
		score := raw
		if q.Reverse {
			score = 6 - raw
		}
		sums[q.Trait] += float64(score)
		counts[q.Trait]++
	}

	scores := make(models.TraitScoreMap, len(models.PersonalityTraits))
	for _, trait := range models.PersonalityTraits {
		if counts[trait] > 0 {
			scores[trait] = sums[trait] / (float64(counts[trait]) * 5)
		} else {
			scores[trait] = 0.5
		}
	}
	return scores, nil
}
