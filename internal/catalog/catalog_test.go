package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-workers/internal/models"
)

func TestDefaultCatalogShape(t *testing.T) {
	c := Default()

	assert.Len(t, c.CareerPaths(), 5)
	assert.Len(t, c.JobResources(), 3)
	assert.Len(t, c.MentorshipResources(), 2)
	// Six curated entries plus the generated roadmap.sh tables.
	assert.Equal(t, 6+len(roleRoadmaps)+len(skillRoadmaps), len(c.LearningResources()))
	assert.NotEmpty(t, c.Disclaimer())
	assert.Contains(t, c.SkillMappings(), "technology")
}

func TestDefaultCareerPathsWellFormed(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Default().CareerPaths() {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Role, p.ID)
		assert.NotEmpty(t, p.Industry, p.ID)
		assert.NotEmpty(t, p.RequiredSkills, p.ID)
		assert.NotEmpty(t, p.NextSteps, p.ID)
		for _, s := range p.RequiredSkills {
			assert.Equal(t, strings.ToLower(s), s, "skills are stored normalized: %s", s)
			assert.NotContains(t, s, " ", s)
		}
	}
}

func TestNewNormalizesNilLists(t *testing.T) {
	c := New(
		[]models.CareerPathEntry{{ID: "x", Role: "X", Industry: "Y"}},
		[]models.Resource{{ID: "r1", Title: "R"}},
		nil, nil, nil,
	)

	require.Len(t, c.CareerPaths(), 1)
	assert.NotNil(t, c.CareerPaths()[0].RequiredSkills)
	assert.NotNil(t, c.CareerPaths()[0].NextSteps)
	require.Len(t, c.LearningResources(), 1)
	assert.NotNil(t, c.LearningResources()[0].Tags)
	assert.Empty(t, c.JobResources())
	assert.Empty(t, c.MentorshipResources())
}

func TestRoadmapResourcesByCategory(t *testing.T) {
	c := Default()

	roles := c.RoadmapResources("role_based")
	skills := c.RoadmapResources("skill_based")
	all := c.RoadmapResources("all")

	assert.Len(t, roles, len(roleRoadmaps))
	assert.Len(t, skills, len(skillRoadmaps))
	assert.Len(t, all, len(roleRoadmaps)+len(skillRoadmaps))

	for _, r := range all {
		assert.Equal(t, roadmapProvider, r.Provider)
		assert.Equal(t, models.ResourceTypeRoadmap, r.Type)
		assert.True(t, strings.HasPrefix(r.URL, roadmapBaseURL), r.URL)
		assert.Contains(t, r.Tags, "roadmap")
	}
}

func TestRoadmapIDs(t *testing.T) {
	assert.Equal(t, "next.js", roadmapTag("Next.js"))
	assert.Equal(t, "nextjs", roadmapID("Next.js"))
	assert.Equal(t, "client_side_game_dev", roadmapID("Client Side Game Dev."))
}

func TestLearningResourceIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, r := range Default().LearningResources() {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}
