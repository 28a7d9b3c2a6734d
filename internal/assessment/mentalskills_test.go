package assessment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-workers/internal/models"
)

func TestMentalSkillsScoreBasicOnly(t *testing.T) {
	scorer := NewMentalSkillsScorer()

	scores, err := scorer.Score(map[string]int{"AS1": 4, "DR1": 2}, nil)
	require.NoError(t, err)

	assert.InDelta(t, 0.8, scores[models.SkillAnalyticalThinking], 1e-9)
	assert.InDelta(t, 0.4, scores[models.SkillDeductiveReasoning], 1e-9)

	// Unanswered skills are absent, not zero-filled.
	_, present := scores[models.SkillPatternRecognition]
	assert.False(t, present)
	assert.Len(t, scores, 2)
}

func TestMentalSkillsScenarioBonus(t *testing.T) {
	scorer := NewMentalSkillsScorer()

	response := "I would analyze the data systematically and break down the problem into segments."
	scores, err := scorer.Score(
		map[string]int{"AS1": 3},
		map[string]string{"AS1_scenario": response},
	)
	require.NoError(t, err)

	// Base 0.6, length bonus len/500, keyword bonus for analyze, break down,
	// data, systematic at 0.02 each.
	expected := 0.6 + float64(len(response))/500.0 + 0.08
	assert.InDelta(t, expected, scores[models.SkillAnalyticalThinking], 1e-9)
}

func TestMentalSkillsShortScenarioEarnsNothing(t *testing.T) {
	scorer := NewMentalSkillsScorer()

	scores, err := scorer.Score(
		map[string]int{"AS1": 3},
		map[string]string{"AS1_scenario": "   analyze data   "},
	)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, scores[models.SkillAnalyticalThinking], 1e-9)
}

func TestMentalSkillsScoreClampedAtOne(t *testing.T) {
	scorer := NewMentalSkillsScorer()

	long := strings.Repeat("I plan a long-term strategy with clear goals and a roadmap. ", 20)
	scores, err := scorer.Score(
		map[string]int{"SP1": 5},
		map[string]string{"SP1_scenario": long},
	)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores[models.SkillStrategicPlanning], 1e-9)
}

func TestMentalSkillsKeywordBonusCapped(t *testing.T) {
	// Five keyword hits reach the 0.1 keyword cap and the padding saturates
	// the length bonus.
	response := strings.Repeat("x", 500) + " logic conclude therefore reasoning inference"
	bonus := scenarioBonus(response, models.SkillDeductiveReasoning)
	assert.InDelta(t, 0.1+0.1, bonus, 1e-9)
}

func TestMentalSkillsScenarioWithoutBasicIgnored(t *testing.T) {
	scorer := NewMentalSkillsScorer()

	scores, err := scorer.Score(
		map[string]int{},
		map[string]string{"AS1_scenario": "a thorough and systematic analysis of the data"},
	)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestMentalSkillsRejectsOutOfRange(t *testing.T) {
	scorer := NewMentalSkillsScorer()

	_, err := scorer.Score(map[string]int{"AS1": 9}, nil)
	var invalid *InvalidResponseValueError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "AS1", invalid.QuestionID)
}
