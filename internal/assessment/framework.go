package assessment

import (
	"fmt"
	"sort"
	"strings"

	"career-workers/internal/models"
)

const (
	strongScoreThreshold = 0.7
	weakScoreThreshold   = 0.5
	maxStrongSkills      = 3
	maxDevelopmentAreas  = 3
)

type scoreFunc func(responses map[string]int, scenarios map[string]string) (models.TraitScoreMap, error)

// Framework coordinates the three scorers: it dispatches submissions by test
// type and merges the results into a single PsychProfile.
type Framework struct {
	riasec      *RIASECScorer
	mental      *MentalSkillsScorer
	personality *PersonalityScorer
	scorers     map[models.TestType]scoreFunc
}

func NewFramework() *Framework {
	f := &Framework{
		riasec:      NewRIASECScorer(),
		mental:      NewMentalSkillsScorer(),
		personality: NewPersonalityScorer(),
	}
	f.scorers = map[models.TestType]scoreFunc{
		models.TestTypeRIASEC: func(r map[string]int, _ map[string]string) (models.TraitScoreMap, error) {
			return f.riasec.Score(r)
		},
		models.TestTypeMentalSkills: func(r map[string]int, s map[string]string) (models.TraitScoreMap, error) {
			return f.mental.Score(r, s)
		},
		models.TestTypePersonality: func(r map[string]int, _ map[string]string) (models.TraitScoreMap, error) {
			return f.personality.Score(r)
		},
	}
	return f
}

// ScoreTest dispatches a single set of responses to the scorer registered
// for testType. An unrecognized type returns UnknownTestTypeError.
func (f *Framework) ScoreTest(testType models.TestType, responses map[string]int, scenarios map[string]string) (models.TraitScoreMap, error) {
	score, ok := f.scorers[testType]
	if !ok {
		return nil, &UnknownTestTypeError{TestType: string(testType)}
	}
	return score(responses, scenarios)
}

// Summarize scores every submission and merges the results into a unified
// psychological profile with derived insights and development areas. Any
// unknown test type fails the whole call; it is never silently skipped.
func (f *Framework) Summarize(submissions []models.TestSubmission) (*models.PsychProfile, error) {
	profile := &models.PsychProfile{
		InterestScores:    models.TraitScoreMap{},
		MentalSkills:      models.TraitScoreMap{},
		PersonalityTraits: models.TraitScoreMap{},
	}

	for _, sub := range submissions {
		scores, err := f.ScoreTest(sub.TestType, sub.Responses, sub.ScenarioResponses)
		if err != nil {
			return nil, fmt.Errorf("score %s submission: %w", sub.TestType, err)
		}
		switch sub.TestType {
		case models.TestTypeRIASEC:
			profile.InterestScores = scores
		case models.TestTypeMentalSkills:
			profile.MentalSkills = scores
		case models.TestTypePersonality:
			profile.PersonalityTraits = scores
		}
	}

	profile.Insights = f.generateInsights(profile)
	profile.DevelopmentAreas = f.developmentAreas(profile)
	return profile, nil
}

func (f *Framework) generateInsights(profile *models.PsychProfile) []string {
	var insights []string

	if len(profile.InterestScores) > 0 {
		top := topInterestCategories(profile.InterestScores, 2)
		if len(top) == 2 {
			insights = append(insights, fmt.Sprintf(
				"Your strongest career interests are in %s and %s areas", top[0], top[1]))
		} else if len(top) == 1 {
			insights = append(insights, fmt.Sprintf(
				"Your strongest career interests are in %s areas", top[0]))
		}
	}

	if len(profile.MentalSkills) > 0 {
		var strong []string
		for _, q := range f.mental.questions {
			if score, ok := profile.MentalSkills[q.Skill]; ok && score > strongScoreThreshold {
				strong = append(strong, q.Skill)
			}
		}
		if len(strong) > maxStrongSkills {
			strong = strong[:maxStrongSkills]
		}
		if len(strong) > 0 {
			insights = append(insights, fmt.Sprintf(
				"You demonstrate strong %s abilities", strings.Join(strong, ", ")))
		}
	}

	for _, trait := range models.PersonalityTraits {
		if score, ok := profile.PersonalityTraits[trait]; ok && score > strongScoreThreshold {
			insights = append(insights, fmt.Sprintf(
				"You score high on %s, indicating strong %s characteristics", trait, trait))
		}
	}

	return insights
}

func (f *Framework) developmentAreas(profile *models.PsychProfile) []string {
	var areas []string
	for _, q := range f.mental.questions {
		if len(areas) == maxDevelopmentAreas {
			break
		}
		if score, ok := profile.MentalSkills[q.Skill]; ok && score < weakScoreThreshold {
			label := strings.ReplaceAll(q.Skill, "_", " ")
			areas = append(areas, fmt.Sprintf("Consider developing your %s abilities", label))
		}
	}
	return areas
}

// topInterestCategories ranks categories by score, descending. Ties keep the
// canonical category order (stable sort); no secondary key is applied.
func topInterestCategories(scores models.TraitScoreMap, n int) []string {
	ordered := make([]string, 0, len(models.InterestCategories))
	for _, c := range models.InterestCategories {
		if _, ok := scores[c]; ok {
			ordered = append(ordered, c)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return scores[ordered[i]] > scores[ordered[j]]
	})
	if len(ordered) > n {
		ordered = ordered[:n]
	}
	return ordered
}
