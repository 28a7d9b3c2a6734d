package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-workers/internal/models"
)

func TestPersonalityScoreReverseKeyed(t *testing.T) {
	scorer := NewPersonalityScorer()

	// O1 straight, O2 reverse: (5 + (6-1)) / (2 * 5) = 1.0.
	scores, err := scorer.Score(map[string]int{"O1": 5, "O2": 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, scores[models.TraitOpenness], 1e-9)
}

func TestPersonalityScoreReverseOnly(t *testing.T) {
	scorer := NewPersonalityScorer()

	// N2 is reverse keyed: (6-5) / 5 = 0.2.
	scores, err := scorer.Score(map[string]int{"N2": 5})
	require.NoError(t, err)
	assert.InDelta(t, 0.2, scores[models.TraitNeuroticism], 1e-9)
}

func TestPersonalityScoreNeutralDefault(t *testing.T) {
	scorer := NewPersonalityScorer()

	scores, err := scorer.Score(map[string]int{"E1": 4})
	require.NoError(t, err)

	require.Len(t, scores, 5)
	assert.InDelta(t, 0.8, scores[models.TraitExtraversion], 1e-9)
	// Traits with no answered items sit at the neutral midpoint.
	for _, trait := range []string{
		models.TraitOpenness,
		models.TraitConscientiousness,
		models.TraitAgreeableness,
		models.TraitNeuroticism,
	} {
		assert.InDelta(t, 0.5, scores[trait], 1e-9, trait)
	}
}

func TestPersonalityScoreEmptyResponses(t *testing.T) {
	scorer := NewPersonalityScorer()

	scores, err := scorer.Score(nil)
	require.NoError(t, err)
	require.Len(t, scores, 5)
	for _, trait := range models.PersonalityTraits {
		assert.InDelta(t, 0.5, scores[trait], 1e-9, trait)
	}
}

func TestPersonalityScoreRejectsOutOfRange(t *testing.T) {
	scorer := NewPersonalityScorer()

	_, err := scorer.Score(map[string]int{"O1": 0})
	var invalid *InvalidResponseValueError
	require.ErrorAs(t, err, &invalid)
}

func TestPersonalityQuestionBankPairsTraits(t *testing.T) {
	scorer := NewPersonalityScorer()

	straight := map[string]int{}
	reversed := map[string]int{}
	for _, q := range scorer.Questions() {
		if q.Reverse {
			reversed[q.Trait]++
		} else {
			straight[q.Trait]++
		}
	}
	for _, trait := range models.PersonalityTraits {
		assert.Equal(t, 1, straight[trait], trait)
		assert.Equal(t, 1, reversed[trait], trait)
	}
}
