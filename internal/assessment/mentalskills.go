package assessment

import (
	"strings"

	"career-workers/internal/models"
)

const (
	scenarioSuffix     = "_scenario"
	minScenarioLength  = 20
	maxLengthBonus     = 0.1
	maxKeywordBonus    = 0.1
	keywordBonusPer    = 0.02
	lengthBonusDivisor = 500.0
)

// MentalSkillsScorer computes per-skill proficiency from a base Likert
// answer plus a free-text scenario-response quality bonus.
type MentalSkillsScorer struct {
	questions []models.TestQuestion
}

func NewMentalSkillsScorer() *MentalSkillsScorer {
	return &MentalSkillsScorer{questions: mentalSkillsQuestions()}
}

// Questions returns the question bank with its scenarios.
func (s *MentalSkillsScorer) Questions() []models.TestQuestion { return s.questions }

// Score computes skill scores from basic answers and optional scenario
// responses (keyed "<questionId>_scenario"). A skill with no basic response
// is absent from the output rather than zero-filled; this asymmetry with the
// interest-code scorer is intentional and load-bearing for downstream
// insight generation.
func (s *MentalSkillsScorer) Score(basic map[string]int, scenarios map[string]string) (models.TraitScoreMap, error) {
	if err := validateResponses(basic); err != nil {
		return nil, err
	}

	scores := make(models.TraitScoreMap)
	for _, q := range s.questions {
		raw, ok := basic[q.ID]
		if !ok {
			continue
		}
		score := float64(raw) / 5.0
		if answer, ok := scenarios[q.ID+scenarioSuffix]; ok {
			score += scenarioBonus(answer, q.Skill)
			if score > 1.0 {
				score = 1.0
			}
		}
		scores[q.Skill] = score
	}
	return scores, nil
}

// scenarioBonus grades a free-text response, up to 0.1 for length and 0.1
// for keyword hits. Responses under 20 characters are treated as low-effort
// and earn nothing.
func scenarioBonus(response, skill string) float64 {
	if len(strings.TrimSpace(response)) < minScenarioLength {
		return 0.0
	}

	lower := strings.ToLower(response)
	matches := 0
	for _, kw := range skillKeywords[skill] {
		if strings.Contains(lower, kw) {
			matches++
		}
	}

	lengthBonus := float64(len(response)) / lengthBonusDivisor
	if lengthBonus > maxLengthBonus {
		lengthBonus = maxLengthBonus
	}
	keywordBonus := float64(matches) * keywordBonusPer
	if keywordBonus > maxKeywordBonus {
		keywordBonus = maxKeywordBonus
	}

	return lengthBonus + keywordBonus
}
