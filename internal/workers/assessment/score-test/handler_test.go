// internal/workers/assessment/score-test/handler_test.go
package scoretest

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-workers/internal/assessment"
	"career-workers/internal/common/logger"
	"career-workers/internal/models"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		Timeout: 5 * time.Second,
	}
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

func newTestHandler(t *testing.T) *Handler {
	return NewHandler(createTestConfig(), assessment.NewFramework(), newTestLogger(t))
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_RIASEC(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		TestType: models.TestTypeRIASEC,
		Responses: map[string]int{
			"R1": 5, "R2": 5, "R3": 5,
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, models.TestTypeRIASEC, output.TestType)
	assert.Len(t, output.Scores, 6)
	assert.Equal(t, 1.0, output.Scores["realistic"])
	assert.Equal(t, 0.0, output.Scores["artistic"])
}

func TestHandler_Execute_MentalSkillsWithScenario(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		TestType: models.TestTypeMentalSkills,
		Responses: map[string]int{
			"AS1": 4,
		},
		ScenarioResponses: map[string]string{
			"AS1_scenario": "I would analyze the data and break down the problem into a systematic plan.",
		},
	})

	assert.NoError(t, err)
	assert.Len(t, output.Scores, 1)
	assert.Greater(t, output.Scores["analytical_thinking"], 0.8)
}

func TestHandler_Execute_UnknownTestType(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name     string
		testType models.TestType
	}{
		{"unregistered type", "astrology"},
		{"empty type", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := h.Execute(context.Background(), &Input{
				TestType:  tt.testType,
				Responses: map[string]int{"R1": 3},
			})

			assert.Nil(t, output)
			assert.True(t, errors.Is(err, ErrUnknownTestType))
			assert.Equal(t, "UNKNOWN_TEST_TYPE", errorCode(err))
		})
	}
}

func TestHandler_Execute_InvalidResponseValue(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		TestType:  models.TestTypeRIASEC,
		Responses: map[string]int{"R1": 7},
	})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, ErrInvalidResponseValue))
	assert.Equal(t, "INVALID_RESPONSE_VALUE", errorCode(err))
}

func TestHandler_Execute_EmptyResponses(t *testing.T) {
	h := newTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		TestType:  models.TestTypePersonality,
		Responses: map[string]int{},
	})

	assert.NoError(t, err)
	assert.Len(t, output.Scores, 5)
	for trait, score := range output.Scores {
		assert.Equal(t, 0.5, score, "trait %s should default to neutral", trait)
	}
}

func TestErrorCodeDefaultsToScoringFailed(t *testing.T) {
	assert.Equal(t, "SCORING_FAILED", errorCode(errors.New("boom")))
}

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"valid payload", `{"testType": "riasec", "responses": {"R1": 5}}`, false},
		{"missing responses", `{"testType": "riasec"}`, true},
		{"empty test type", `{"testType": "", "responses": {}}`, true},
		{"non-integer answer", `{"testType": "riasec", "responses": {"R1": "five"}}`, true},
		{"answer above scale", `{"testType": "riasec", "responses": {"R1": 6}}`, true},
		{"scenario responses allowed", `{"testType": "mental_skills", "responses": {"AS1": 3}, "scenarioResponses": {"AS1_scenario": "text"}}`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePayload([]byte(tt.payload))
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidResponseValue))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
