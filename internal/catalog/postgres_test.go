package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-workers/internal/models"
)

func careerPathColumns() []string {
	return []string{"id", "role", "industry", "required_skills", "growth_potential", "salary_range", "next_steps"}
}

func resourceColumns() []string {
	return []string{"id", "title", "url", "description", "tags", "level", "type", "provider", "duration", "cost", "category"}
}

func TestLoadFromPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM career_paths").WillReturnRows(
		sqlmock.NewRows(careerPathColumns()).
			AddRow("software_engineer", "Software Engineer", "Technology",
				`["programming","python"]`, "High", "$70k+", `["Build portfolio projects"]`),
	)
	mock.ExpectQuery("SELECT (.+) FROM resources").WillReturnRows(
		sqlmock.NewRows(resourceColumns()).
			AddRow("py_basics", "Python for Beginners", "https://example.com", "desc",
				`["python"]`, "beginner", "course", "Python.org", "2-3 weeks", "Free", nil).
			AddRow("linkedin_jobs", "LinkedIn Jobs", "https://example.com/jobs", "desc",
				`["job-search"]`, nil, "job", "LinkedIn", nil, nil, nil).
			AddRow("adplist", "ADPList", "https://example.com/mentors", "desc",
				`["mentorship"]`, nil, "mentor", "ADPList", nil, nil, nil),
	)

	c, err := LoadFromPostgres(context.Background(), db)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	require.Len(t, c.CareerPaths(), 1)
	assert.Equal(t, []string{"programming", "python"}, c.CareerPaths()[0].RequiredSkills)

	require.Len(t, c.LearningResources(), 1)
	assert.Equal(t, models.LevelBeginner, c.LearningResources()[0].Level)
	require.Len(t, c.JobResources(), 1)
	require.Len(t, c.MentorshipResources(), 1)
}

func TestLoadFromPostgresMalformedJSONDegrades(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM career_paths").WillReturnRows(
		sqlmock.NewRows(careerPathColumns()).
			AddRow("bad_row", "Role", "Industry", `{not json`, "High", "$0", `also bad`),
	)
	mock.ExpectQuery("SELECT (.+) FROM resources").WillReturnRows(
		sqlmock.NewRows(resourceColumns()),
	)

	c, err := LoadFromPostgres(context.Background(), db)
	require.NoError(t, err)

	require.Len(t, c.CareerPaths(), 1)
	assert.Empty(t, c.CareerPaths()[0].RequiredSkills)
	assert.Empty(t, c.CareerPaths()[0].NextSteps)
}

func TestLoadFromPostgresQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM career_paths").
		WillReturnError(errors.New("connection refused"))

	_, err = LoadFromPostgres(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load career paths")
}
