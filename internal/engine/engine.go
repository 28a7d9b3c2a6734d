// Package engine implements the rule-based career matching pipeline: it
// scores every catalog career path against a user profile, ranks and filters
// the results, and derives learning resources and a skill gap from the
// surviving paths. The engine is a pure function of its inputs and the
// injected catalog; concurrent Recommend calls share no mutable state.
package engine

import (
	"regexp"
	"sort"
	"strings"

	"career-workers/internal/catalog"
	"career-workers/internal/models"
)

const (
	skillWeight    = 0.4
	interestWeight = 0.3
	goalWeight     = 0.2
	maxExpBonus    = 0.1
	expDivisor     = 5.0

	careerScoreThreshold   = 0.2
	maxCareerPaths         = 5
	resourceScoreThreshold = 0.3
	maxLearningResources   = 6
	maxSkillGap            = 8
	maxExtraGapSkills      = 5

	maxReasonSkills    = 3
	maxReasonInterests = 2
	maxReasonGoals     = 2
)

// prioritySkills are pulled to the front of the skill gap when present.
var prioritySkills = []string{"python", "javascript", "communication", "leadership", "data-analysis"}

var wordPattern = regexp.MustCompile(`\w+`)

// Options tunes engine behavior without changing scoring semantics.
type Options struct {
	// StrictRelevanceSort orders learning-resource candidates by descending
	// relevance before the cap is applied. The default keeps catalog order,
	// matching the engine's historical behavior.
	StrictRelevanceSort bool
}

// Engine matches user profiles against the career path catalog.
type Engine struct {
	catalog *catalog.Catalog
	opts    Options
}

func New(cat *catalog.Catalog, opts Options) *Engine {
	return &Engine{catalog: cat, opts: opts}
}

// Disclaimer returns the catalog's external-resources disclaimer for
// inclusion alongside recommendations.
func (e *Engine) Disclaimer() string {
	return e.catalog.Disclaimer()
}

// Recommend runs the full matching pipeline. It never errors: an empty or
// fully-unset profile degrades to empty result lists.
func (e *Engine) Recommend(profile *models.UserProfile) *models.Recommendation {
	if profile == nil {
		profile = &models.UserProfile{}
	}

	paths := e.scoreCareerPaths(profile)
	return &models.Recommendation{
		CareerPaths:             paths,
		LearningResources:       e.recommendLearningResources(profile, paths),
		SkillsToDevelop:         e.identifySkillGap(profile, paths),
		MentorshipOpportunities: e.catalog.MentorshipResources(),
		JobOpportunities:        e.catalog.JobResources(),
	}
}

func (e *Engine) scoreCareerPaths(profile *models.UserProfile) []models.ScoredCareerPath {
	userSkills := newTokenSet(profile.Skills)
	userInterests := newTokenSet(profile.Interests)
	userGoals := newTokenSet(profile.Goals)

	var results []models.ScoredCareerPath
	for _, entry := range e.catalog.CareerPaths() {
		score := matchScore(entry, userSkills, userInterests, userGoals, profile.ExperienceYears)
		if score <= careerScoreThreshold {
			continue
		}
		results = append(results, models.ScoredCareerPath{
			CareerPathEntry: entry,
			Score:           score,
			MatchReason:     matchReason(entry, userSkills, userInterests, userGoals),
		})
	}

	// Stable sort: equal scores keep catalog iteration order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > maxCareerPaths {
		results = results[:maxCareerPaths]
	}
	return results
}

func matchScore(entry models.CareerPathEntry, skills, interests, goals *tokenSet, experienceYears *float64) float64 {
	score := 0.0

	required := newTokenSet(entry.RequiredSkills)
	if required.len() > 0 {
		score += float64(skills.countIn(required)) / float64(required.len()) * skillWeight
	}

	keywords := pathKeywords(entry)
	score += float64(interests.countIn(keywords)) / float64(max(interests.len(), 1)) * interestWeight
	score += float64(goals.countIn(keywords)) / float64(max(goals.len(), 1)) * goalWeight

	if experienceYears != nil {
		bonus := *experienceYears / expDivisor
		if bonus > maxExpBonus {
			bonus = maxExpBonus
		}
		score += bonus
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}

func matchReason(entry models.CareerPathEntry, skills, interests, goals *tokenSet) string {
	var reasons []string

	required := newTokenSet(entry.RequiredSkills)
	if matched := skills.intersect(required, maxReasonSkills); len(matched) > 0 {
		reasons = append(reasons, "Your skills in "+strings.Join(matched, ", ")+" align well")
	}

	keywords := pathKeywords(entry)
	if matched := interests.intersect(keywords, maxReasonInterests); len(matched) > 0 {
		reasons = append(reasons, "Your interest in "+strings.Join(matched, ", ")+" is relevant")
	}
	if matched := goals.intersect(keywords, maxReasonGoals); len(matched) > 0 {
		reasons = append(reasons, "Aligns with your goal of "+strings.Join(matched, ", "))
	}

	if len(reasons) == 0 {
		return "Good general match based on your profile."
	}
	return strings.Join(reasons, ". ") + "."
}

// pathKeywords derives the searchable token set for a career path from its
// role name, industry and required skills.
func pathKeywords(entry models.CareerPathEntry) *tokenSet {
	ts := &tokenSet{members: map[string]bool{}}
	for _, w := range wordPattern.FindAllString(strings.ToLower(entry.Role), -1) {
		ts.add(w)
	}
	for _, w := range wordPattern.FindAllString(strings.ToLower(entry.Industry), -1) {
		ts.add(w)
	}
	for _, s := range entry.RequiredSkills {
		ts.add(normalizeToken(s))
	}
	return ts
}

func (e *Engine) recommendLearningResources(profile *models.UserProfile, paths []models.ScoredCareerPath) []models.Resource {
	userSkills := newTokenSet(profile.Skills)
	userInterests := newTokenSet(profile.Interests)

	targetSkills := &tokenSet{members: map[string]bool{}}
	for _, p := range paths {
		for _, s := range p.RequiredSkills {
			targetSkills.add(normalizeToken(s))
		}
	}

	type candidate struct {
		resource models.Resource
		score    float64
	}
	var candidates []candidate
	for _, res := range e.catalog.LearningResources() {
		tags := newTokenSet(res.Tags)

		score := 0.0
		if userInterests.countIn(tags) > 0 {
			score += 0.4
		}
		if targetSkills.countIn(tags) > 0 {
			score += 0.5
		}
		if userSkills.countIn(tags) > 0 {
			score += 0.3
		}
		if profile.ExperienceYears != nil && experienceLevel(*profile.ExperienceYears) == res.Level {
			score += 0.2
		}

		if score > resourceScoreThreshold {
			candidates = append(candidates, candidate{resource: res, score: score})
		}
	}

	if e.opts.StrictRelevanceSort {
		sort.SliceStable(candidates, func(i, j int) bool {
			return candidates[i].score > candidates[j].score
		})
	}

	out := make([]models.Resource, 0, maxLearningResources)
	for _, c := range candidates {
		if len(out) == maxLearningResources {
			break
		}
		out = append(out, c.resource)
	}
	return out
}

// experienceLevel buckets experience years into resource levels.
func experienceLevel(years float64) string {
	switch {
	case years < 2:
		return models.LevelBeginner
	case years < 5:
		return models.LevelIntermediate
	default:
		return models.LevelAdvanced
	}
}

func (e *Engine) identifySkillGap(profile *models.UserProfile, paths []models.ScoredCareerPath) []string {
	userSkills := newTokenSet(profile.Skills)

	// Accumulate recommended skills in path/catalog order so gap output is
	// deterministic.
	gap := make([]string, 0)
	inGap := make(map[string]bool)
	for _, p := range paths {
		for _, s := range p.RequiredSkills {
			token := normalizeToken(s)
			if userSkills.has(token) || inGap[token] {
				continue
			}
			inGap[token] = true
			gap = append(gap, token)
		}
	}

	var prioritized []string
	for _, skill := range prioritySkills {
		if inGap[skill] {
			prioritized = append(prioritized, displaySkill(skill))
			delete(inGap, skill)
		}
	}

	extras := 0
	for _, token := range gap {
		if !inGap[token] || extras == maxExtraGapSkills {
			continue
		}
		prioritized = append(prioritized, displaySkill(token))
		extras++
	}

	if len(prioritized) > maxSkillGap {
		prioritized = prioritized[:maxSkillGap]
	}
	return prioritized
}

// displaySkill turns a hyphenated token into a title-cased label.
func displaySkill(token string) string {
	words := strings.Split(strings.ReplaceAll(token, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
