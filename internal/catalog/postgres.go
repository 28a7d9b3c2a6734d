package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"career-workers/internal/models"
)

// LoadFromPostgres builds a Catalog from the career_paths and resources
// tables. List-valued columns are stored as JSON; rows with malformed JSON
// degrade to empty lists rather than failing the whole load. This is the
// external loader boundary: the scoring core only ever sees the resulting
// read-only Catalog.
func LoadFromPostgres(ctx context.Context, db *sql.DB) (*Catalog, error) {
	paths, err := loadCareerPaths(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load career paths: %w", err)
	}

	learning, jobs, mentors, err := loadResources(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}

	return New(paths, learning, jobs, mentors, defaultSkillMappings()), nil
}

func loadCareerPaths(ctx context.Context, db *sql.DB) ([]models.CareerPathEntry, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, role, industry, required_skills, growth_potential, salary_range, next_steps
		FROM career_paths
		ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []models.CareerPathEntry
	for rows.Next() {
		var p models.CareerPathEntry
		var skills, steps []byte
		if err := rows.Scan(&p.ID, &p.Role, &p.Industry, &skills, &p.GrowthPotential, &p.SalaryRange, &steps); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(skills, &p.RequiredSkills); err != nil {
			p.RequiredSkills = []string{}
		}
		if err := json.Unmarshal(steps, &p.NextSteps); err != nil {
			p.NextSteps = []string{}
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

func loadResources(ctx context.Context, db *sql.DB) (learning, jobs, mentors []models.Resource, err error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, title, url, description, tags, level, type, provider, duration, cost, category
		FROM resources
		ORDER BY position, id`)
	if err != nil {
		return nil, nil, nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var r models.Resource
		var tags []byte
		var level, duration, cost, category sql.NullString
		if err := rows.Scan(&r.ID, &r.Title, &r.URL, &r.Description, &tags, &level, &r.Type, &r.Provider, &duration, &cost, &category); err != nil {
			return nil, nil, nil, err
		}
		if err := json.Unmarshal(tags, &r.Tags); err != nil {
			r.Tags = []string{}
		}
		r.Level = level.String
		r.Duration = duration.String
		r.Cost = cost.String
		r.Category = category.String

		switch r.Type {
		case models.ResourceTypeJob:
			jobs = append(jobs, r)
		case models.ResourceTypeMentor:
			mentors = append(mentors, r)
		default:
			learning = append(learning, r)
		}
	}
	return learning, jobs, mentors, rows.Err()
}
