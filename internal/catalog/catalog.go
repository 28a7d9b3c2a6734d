// Package catalog holds the static reference data the scoring core runs
// against: career paths, learning/job/mentorship resources and industry
// skill mappings. A Catalog is built once, normalized at construction and
// shared read-only across all scoring calls.
package catalog

import (
	"career-workers/internal/models"
)

// Catalog is an immutable snapshot of reference data. Construct it with New,
// Default or LoadFromPostgres and treat it as read-only afterwards.
type Catalog struct {
	careerPaths         []models.CareerPathEntry
	learningResources   []models.Resource
	jobResources        []models.Resource
	mentorshipResources []models.Resource
	skillMappings       map[string][]string
	disclaimer          string
}

// New builds a Catalog from raw tables. Malformed entries are normalized
// here, not at use time: nil skill/tag lists become empty slices so the
// engine never has to nil-check reference data.
func New(paths []models.CareerPathEntry, learning, jobs, mentors []models.Resource, skillMappings map[string][]string) *Catalog {
	normalized := make([]models.CareerPathEntry, len(paths))
	for i, p := range paths {
		if p.RequiredSkills == nil {
			p.RequiredSkills = []string{}
		}
		if p.NextSteps == nil {
			p.NextSteps = []string{}
		}
		normalized[i] = p
	}

	return &Catalog{
		careerPaths:         normalized,
		learningResources:   normalizeResources(learning),
		jobResources:        normalizeResources(jobs),
		mentorshipResources: normalizeResources(mentors),
		skillMappings:       skillMappings,
		disclaimer:          resourcesDisclaimer,
	}
}

// Default returns the embedded reference data set, including the generated
// roadmap.sh resources.
func Default() *Catalog {
	return New(defaultCareerPaths(), allLearningResources(), defaultJobResources(), defaultMentorshipResources(), defaultSkillMappings())
}

func normalizeResources(in []models.Resource) []models.Resource {
	out := make([]models.Resource, len(in))
	for i, r := range in {
		if r.Tags == nil {
			r.Tags = []string{}
		}
		out[i] = r
	}
	return out
}

// CareerPaths returns the catalog entries in iteration order. Callers must
// not modify the returned slice.
func (c *Catalog) CareerPaths() []models.CareerPathEntry { return c.careerPaths }

// LearningResources returns the learning resource table in catalog order.
func (c *Catalog) LearningResources() []models.Resource { return c.learningResources }

// JobResources returns the job-search resource table.
func (c *Catalog) JobResources() []models.Resource { return c.jobResources }

// MentorshipResources returns the mentorship resource table.
func (c *Catalog) MentorshipResources() []models.Resource { return c.mentorshipResources }

// SkillMappings returns the industry-to-skill mapping table.
func (c *Catalog) SkillMappings() map[string][]string { return c.skillMappings }

// Disclaimer returns the legal disclaimer shown alongside external resources.
func (c *Catalog) Disclaimer() string { return c.disclaimer }

// RoadmapResources filters the learning resources down to roadmap.sh entries.
// Category is "role_based", "skill_based" or "all".
func (c *Catalog) RoadmapResources(category string) []models.Resource {
	var out []models.Resource
	for _, r := range c.learningResources {
		if r.Provider != roadmapProvider {
			continue
		}
		if category == "all" || r.Category == category {
			out = append(out, r)
		}
	}
	return out
}
