package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-workers/internal/models"
)

func TestRIASECScoreAllRealistic(t *testing.T) {
	scorer := NewRIASECScorer()

	scores, err := scorer.Score(map[string]int{"R1": 5, "R2": 5, "R3": 5})
	require.NoError(t, err)

	// Every category is present even when unanswered.
	require.Len(t, scores, 6)
	assert.InDelta(t, 1.0, scores[models.InterestRealistic], 1e-9)
	for _, cat := range models.InterestCategories {
		if cat == models.InterestRealistic {
			continue
		}
		assert.Zero(t, scores[cat], cat)
	}
}

func TestRIASECScoreWeightedAverage(t *testing.T) {
	scorer := NewRIASECScorer()

	// R1 weight 1.0, R3 weight 0.8: (4*1.0 + 2*0.8) / (1.8 * 5).
	scores, err := scorer.Score(map[string]int{"R1": 4, "R3": 2})
	require.NoError(t, err)
	assert.InDelta(t, 5.6/9.0, scores[models.InterestRealistic], 1e-9)
}

func TestRIASECScorePartialResponses(t *testing.T) {
	scorer := NewRIASECScorer()

	scores, err := scorer.Score(map[string]int{"I1": 3})
	require.NoError(t, err)
	assert.InDelta(t, 0.6, scores[models.InterestInvestigative], 1e-9)
	assert.Zero(t, scores[models.InterestRealistic])
}

func TestRIASECScoreEmptyResponses(t *testing.T) {
	scorer := NewRIASECScorer()

	scores, err := scorer.Score(map[string]int{})
	require.NoError(t, err)
	require.Len(t, scores, 6)
	for _, cat := range models.InterestCategories {
		assert.Zero(t, scores[cat])
	}
}

func TestRIASECScoreIgnoresUnknownQuestions(t *testing.T) {
	scorer := NewRIASECScorer()

	scores, err := scorer.Score(map[string]int{"R1": 5, "ZZ9": 3})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores[models.InterestRealistic], 1e-9)
}

func TestRIASECScoreRejectsOutOfRange(t *testing.T) {
	scorer := NewRIASECScorer()

	tests := []struct {
		name  string
		value int
	}{
		{name: "below range", value: 0},
		{name: "above range", value: 6},
		{name: "negative", value: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scorer.Score(map[string]int{"R1": tt.value})
			var invalid *InvalidResponseValueError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "R1", invalid.QuestionID)
			assert.Equal(t, tt.value, invalid.Value)
		})
	}
}

func TestRIASECQuestionBankCoversAllCategories(t *testing.T) {
	scorer := NewRIASECScorer()

	seen := map[string]int{}
	for _, q := range scorer.Questions() {
		seen[q.Category]++
		assert.Greater(t, q.Weight, 0.0, q.ID)
	}
	for _, cat := range models.InterestCategories {
		assert.Equal(t, 3, seen[cat], cat)
	}
}
