// internal/workers/guidance/recommend-careers/handler_test.go
package recommendcareers

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"career-workers/internal/catalog"
	"career-workers/internal/common/logger"
	"career-workers/internal/engine"
	"career-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		CacheTTL: 10 * time.Minute,
		Timeout:  5 * time.Second,
	}
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	return db, mock
}

func newTestEngine() *engine.Engine {
	return engine.New(catalog.Default(), engine.Options{})
}

// Test logger that implements the logger.Logger interface.
type testLogger struct {
	t *testing.T
}

func (tl *testLogger) Debug(msg string, fields map[string]interface{}) {
	tl.t.Logf("DEBUG: %s %v", msg, fields)
}

func (tl *testLogger) Info(msg string, fields map[string]interface{}) {
	tl.t.Logf("INFO: %s %v", msg, fields)
}

func (tl *testLogger) Warn(msg string, fields map[string]interface{}) {
	tl.t.Logf("WARN: %s %v", msg, fields)
}

func (tl *testLogger) Error(msg string, fields map[string]interface{}) {
	tl.t.Logf("ERROR: %s %v", msg, fields)
}

func (tl *testLogger) WithFields(fields map[string]interface{}) logger.Logger {
	return tl
}

func (tl *testLogger) WithError(err error) logger.Logger {
	return tl.WithFields(map[string]interface{}{"error": err})
}

func newTestLogger(t *testing.T) logger.Logger {
	return &testLogger{t: t}
}

func createTestProfile() *models.UserProfile {
	years := 3.0
	return &models.UserProfile{
		Interests:       []string{"software", "technology"},
		Skills:          []string{"python", "problem solving"},
		Goals:           []string{"technology"},
		ExperienceYears: &years,
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_WithProvidedProfile(t *testing.T) {
	db, _ := setupMockDB(t)
	defer db.Close()
	redisClient, _ := redismock.NewClientMock()

	h := NewHandler(createTestConfig(), db, redisClient, newTestEngine(), newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		UserID:  "user-123",
		Profile: createTestProfile(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "user-123", output.UserID)
	assert.NotEmpty(t, output.Recommendation.CareerPaths)
	assert.Equal(t, "software_engineer", output.Recommendation.CareerPaths[0].ID)
	assert.NotEmpty(t, output.Disclaimer)
	assert.NotEmpty(t, output.Recommendation.MentorshipOpportunities)
}

func TestHandler_Execute_ProfileFromCache(t *testing.T) {
	db, _ := setupMockDB(t)
	defer db.Close()
	redisClient, redisMock := redismock.NewClientMock()

	cached, _ := json.Marshal(createTestProfile())
	redisMock.ExpectGet("user:profile:user-123").SetVal(string(cached))

	h := NewHandler(createTestConfig(), db, redisClient, newTestEngine(), newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{UserID: "user-123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, output.Recommendation.CareerPaths)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Execute_ProfileFromDatabase(t *testing.T) {
	db, dbMock := setupMockDB(t)
	defer db.Close()
	redisClient, redisMock := redismock.NewClientMock()

	redisMock.ExpectGet("user:profile:user-123").RedisNil()
	redisMock.Regexp().ExpectSet("user:profile:user-123", `.*`, 10*time.Minute).SetVal("OK")

	rows := sqlmock.NewRows([]string{"interests", "skills", "goals", "experience_years"}).
		AddRow([]byte(`["software","technology"]`), []byte(`["python"]`), []byte(`["technology"]`), 3.0)
	dbMock.ExpectQuery("SELECT (.+) FROM user_profiles").
		WithArgs("user-123").
		WillReturnRows(rows)

	h := NewHandler(createTestConfig(), db, redisClient, newTestEngine(), newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{UserID: "user-123"})

	assert.NoError(t, err)
	assert.NotEmpty(t, output.Recommendation.CareerPaths)
	assert.NoError(t, dbMock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestHandler_Execute_FetchFailureFallsBackToEmptyProfile(t *testing.T) {
	db, dbMock := setupMockDB(t)
	defer db.Close()
	redisClient, redisMock := redismock.NewClientMock()

	redisMock.ExpectGet("user:profile:user-404").RedisNil()
	dbMock.ExpectQuery("SELECT (.+) FROM user_profiles").
		WithArgs("user-404").
		WillReturnError(sql.ErrNoRows)

	h := NewHandler(createTestConfig(), db, redisClient, newTestEngine(), newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{UserID: "user-404"})

	assert.NoError(t, err)
	assert.Empty(t, output.Recommendation.CareerPaths)
	assert.Empty(t, output.Recommendation.SkillsToDevelop)
	assert.NotEmpty(t, output.Recommendation.MentorshipOpportunities)
	assert.NotEmpty(t, output.Recommendation.JobOpportunities)
}

func TestHandler_Execute_NoProfileNoUserID(t *testing.T) {
	db, _ := setupMockDB(t)
	defer db.Close()
	redisClient, _ := redismock.NewClientMock()

	h := NewHandler(createTestConfig(), db, redisClient, newTestEngine(), newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{})

	assert.NoError(t, err)
	assert.Empty(t, output.Recommendation.CareerPaths)
	assert.NotEmpty(t, output.Disclaimer)
}

func TestHandler_Execute_CachesRecommendation(t *testing.T) {
	db, _ := setupMockDB(t)
	defer db.Close()
	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	h := NewHandler(createTestConfig(), db, redisClient, newTestEngine(), newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		UserID:  "user-123",
		Profile: createTestProfile(),
	})
	assert.NoError(t, err)

	cached, err := mr.Get("recommendation:user-123")
	assert.NoError(t, err)

	var fromCache models.Recommendation
	assert.NoError(t, json.Unmarshal([]byte(cached), &fromCache))
	assert.Equal(t, output.Recommendation.CareerPaths[0].ID, fromCache.CareerPaths[0].ID)
}

func TestHandler_Execute_MalformedProfileColumnsDegradeToEmptyLists(t *testing.T) {
	db, dbMock := setupMockDB(t)
	defer db.Close()
	redisClient, redisMock := redismock.NewClientMock()

	redisMock.ExpectGet("user:profile:user-123").RedisNil()
	redisMock.Regexp().ExpectSet("user:profile:user-123", `.*`, 10*time.Minute).SetVal("OK")

	rows := sqlmock.NewRows([]string{"interests", "skills", "goals", "experience_years"}).
		AddRow([]byte(`not-json`), []byte(`["python"]`), []byte(`not-json`), nil)
	dbMock.ExpectQuery("SELECT (.+) FROM user_profiles").
		WithArgs("user-123").
		WillReturnRows(rows)

	h := NewHandler(createTestConfig(), db, redisClient, newTestEngine(), newTestLogger(t))

	profile, err := h.getUserProfile(context.Background(), "user-123")

	assert.NoError(t, err)
	assert.Empty(t, profile.Interests)
	assert.Empty(t, profile.Goals)
	assert.Equal(t, []string{"python"}, profile.Skills)
	assert.Nil(t, profile.ExperienceYears)
}
