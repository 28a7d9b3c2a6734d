// internal/workers/assessment/summarize-profile/handler_test.go
package summarizeprofile

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"career-workers/internal/assessment"
	"career-workers/internal/common/logger"
	"career-workers/internal/models"

	"github.com/alicebob/miniredis/v2"
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

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, client
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

func createTestSubmissions() []models.TestSubmission {
	return []models.TestSubmission{
		{
			TestType:  models.TestTypeRIASEC,
			Responses: map[string]int{"R1": 5, "R2": 5, "I1": 4},
		},
		{
			TestType:  models.TestTypeMentalSkills,
			Responses: map[string]int{"AS1": 4, "SM1": 2},
		},
		{
			TestType:  models.TestTypePersonality,
			Responses: map[string]int{"O1": 5, "O2": 1},
		},
	}
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_MergesAllAssessments(t *testing.T) {
	_, client := setupMiniRedis(t)
	h := NewHandler(createTestConfig(), client, assessment.NewFramework(), newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		UserID:      "user-123",
		Submissions: createTestSubmissions(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "user-123", output.UserID)
	assert.Len(t, output.Profile.InterestScores, 6)
	assert.Len(t, output.Profile.MentalSkills, 2)
	assert.Len(t, output.Profile.PersonalityTraits, 5)
	assert.Equal(t, 1.0, output.Profile.PersonalityTraits["openness"])
}

func TestHandler_Execute_CachesProfile(t *testing.T) {
	mr, client := setupMiniRedis(t)
	h := NewHandler(createTestConfig(), client, assessment.NewFramework(), newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		UserID:      "user-123",
		Submissions: createTestSubmissions(),
	})
	assert.NoError(t, err)

	cached, err := mr.Get("psych:profile:user-123")
	assert.NoError(t, err)

	var fromCache models.PsychProfile
	assert.NoError(t, json.Unmarshal([]byte(cached), &fromCache))
	assert.Equal(t, output.Profile.InterestScores, fromCache.InterestScores)
	assert.Equal(t, output.Profile.Insights, fromCache.Insights)
}

func TestHandler_Execute_SkipsCacheWithoutUserID(t *testing.T) {
	mr, client := setupMiniRedis(t)
	h := NewHandler(createTestConfig(), client, assessment.NewFramework(), newTestLogger(t))

	_, err := h.Execute(context.Background(), &Input{
		Submissions: createTestSubmissions(),
	})

	assert.NoError(t, err)
	assert.Empty(t, mr.Keys())
}

func TestHandler_Execute_CacheFailureDoesNotFailJob(t *testing.T) {
	mr, client := setupMiniRedis(t)
	mr.Close()

	h := NewHandler(createTestConfig(), client, assessment.NewFramework(), newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		UserID:      "user-123",
		Submissions: createTestSubmissions(),
	})

	assert.NoError(t, err)
	assert.NotNil(t, output.Profile)
}

func TestHandler_Execute_UnknownTestTypeFailsWholeCall(t *testing.T) {
	_, client := setupMiniRedis(t)
	h := NewHandler(createTestConfig(), client, assessment.NewFramework(), newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		UserID: "user-123",
		Submissions: []models.TestSubmission{
			{TestType: models.TestTypeRIASEC, Responses: map[string]int{"R1": 5}},
			{TestType: "tarot", Responses: map[string]int{"X1": 3}},
		},
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, ErrUnknownTestType))
	assert.Equal(t, "UNKNOWN_TEST_TYPE", errorCode(err))
}

func TestHandler_Execute_EmptySubmissions(t *testing.T) {
	_, client := setupMiniRedis(t)
	h := NewHandler(createTestConfig(), client, assessment.NewFramework(), newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		UserID:      "user-123",
		Submissions: nil,
	})

	assert.NoError(t, err)
	assert.Empty(t, output.Profile.InterestScores)
	assert.Empty(t, output.Profile.Insights)
}
