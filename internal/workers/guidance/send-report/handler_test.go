// internal/workers/guidance/send-report/handler_test.go
package sendreport

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"career-workers/internal/common/logger"
	"career-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestConfig() *Config {
	return &Config{
		EmailEnabled: true,
		SMSEnabled:   true,
		FromEmail:    "reports@career-guidance.example",
		Timeout:      5 * time.Second,
	}
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	return db, mock
}

type mockSES struct {
	inputs []*ses.SendEmailInput
	err    error
}

func (m *mockSES) SendEmail(_ context.Context, params *ses.SendEmailInput) (*ses.SendEmailOutput, error) {
	m.inputs = append(m.inputs, params)
	if m.err != nil {
		return nil, m.err
	}
	return &ses.SendEmailOutput{}, nil
}

type mockSNS struct {
	inputs []*sns.PublishInput
	err    error
}

func (m *mockSNS) Publish(_ context.Context, params *sns.PublishInput) (*sns.PublishOutput, error) {
	m.inputs = append(m.inputs, params)
	if m.err != nil {
		return nil, m.err
	}
	return &sns.PublishOutput{}, nil
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

func createTestRecommendation() *models.Recommendation {
	return &models.Recommendation{
		CareerPaths: []models.ScoredCareerPath{
			{
				CareerPathEntry: models.CareerPathEntry{
					Role:     "Software Engineer",
					Industry: "Technology",
				},
				Score:       0.9,
				MatchReason: "You have relevant skills: python.",
			},
		},
		SkillsToDevelop: []string{"Javascript", "Communication"},
	}
}

func expectContact(mock sqlmock.Sqlmock, userID, email, phone string) {
	rows := sqlmock.NewRows([]string{"email", "phone"}).AddRow(email, phone)
	mock.ExpectQuery("SELECT email, phone FROM users").
		WithArgs(userID).
		WillReturnRows(rows)
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_SendsEmail(t *testing.T) {
	db, dbMock := setupMockDB(t)
	defer db.Close()
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	expectContact(dbMock, "user-123", "jordan@example.com", "")

	h := NewHandler(createTestConfig(), db, sesMock, snsMock, newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		UserID:         "user-123",
		Recommendation: createTestRecommendation(),
		Disclaimer:     "External resources are third-party materials.",
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusSent, output.Status)
	assert.NotEmpty(t, output.ReportID)
	require.Len(t, sesMock.inputs, 1)
	assert.Empty(t, snsMock.inputs)

	body := *sesMock.inputs[0].Message.Body.Text.Data
	assert.Contains(t, body, "Software Engineer (Technology)")
	assert.Contains(t, body, "Javascript, Communication")
	assert.Contains(t, body, "External resources are third-party materials.")
	assert.Equal(t, "reports@career-guidance.example", *sesMock.inputs[0].Source)
	assert.Equal(t, []string{"jordan@example.com"}, sesMock.inputs[0].Destination.ToAddresses)
}

func TestHandler_Execute_HighPrioritySendsSMS(t *testing.T) {
	db, dbMock := setupMockDB(t)
	defer db.Close()
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	expectContact(dbMock, "user-123", "jordan@example.com", "+12025550123")

	h := NewHandler(createTestConfig(), db, sesMock, snsMock, newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		UserID:         "user-123",
		Recommendation: createTestRecommendation(),
		Priority:       PriorityHigh,
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusSent, output.Status)
	require.Len(t, snsMock.inputs, 1)
	assert.Equal(t, "+12025550123", *snsMock.inputs[0].PhoneNumber)
	assert.Contains(t, *snsMock.inputs[0].Message, "Top match: Software Engineer.")
}

func TestHandler_Execute_NormalPrioritySkipsSMS(t *testing.T) {
	db, dbMock := setupMockDB(t)
	defer db.Close()
	sesMock := &mockSES{}
	snsMock := &mockSNS{}
	expectContact(dbMock, "user-123", "jordan@example.com", "+12025550123")

	h := NewHandler(createTestConfig(), db, sesMock, snsMock, newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		UserID:         "user-123",
		Recommendation: createTestRecommendation(),
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusSent, output.Status)
	assert.Len(t, sesMock.inputs, 1)
	assert.Empty(t, snsMock.inputs)
}

func TestHandler_Execute_ContactNotFound(t *testing.T) {
	db, dbMock := setupMockDB(t)
	defer db.Close()
	dbMock.ExpectQuery("SELECT email, phone FROM users").
		WithArgs("user-404").
		WillReturnError(sql.ErrNoRows)

	h := NewHandler(createTestConfig(), db, &mockSES{}, &mockSNS{}, newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		UserID:         "user-404",
		Recommendation: createTestRecommendation(),
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusDisabled, output.Status)
	assert.NotEmpty(t, output.ReportID)
}

func TestHandler_Execute_InvalidEmailSkipsDelivery(t *testing.T) {
	db, dbMock := setupMockDB(t)
	defer db.Close()
	sesMock := &mockSES{}
	expectContact(dbMock, "user-123", "not-an-email", "")

	h := NewHandler(createTestConfig(), db, sesMock, &mockSNS{}, newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		UserID:         "user-123",
		Recommendation: createTestRecommendation(),
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusDisabled, output.Status)
	assert.Empty(t, sesMock.inputs)
}

func TestHandler_Execute_EmailFailureReportsFailedStatus(t *testing.T) {
	db, dbMock := setupMockDB(t)
	defer db.Close()
	sesMock := &mockSES{err: errors.New("throttled")}
	expectContact(dbMock, "user-123", "jordan@example.com", "")

	h := NewHandler(createTestConfig(), db, sesMock, &mockSNS{}, newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{
		UserID:         "user-123",
		Recommendation: createTestRecommendation(),
	})

	assert.NoError(t, err)
	assert.Equal(t, StatusFailed, output.Status)
}

func TestHandler_Execute_MissingRecommendation(t *testing.T) {
	db, _ := setupMockDB(t)
	defer db.Close()

	h := NewHandler(createTestConfig(), db, &mockSES{}, &mockSNS{}, newTestLogger(t))

	output, err := h.Execute(context.Background(), &Input{UserID: "user-123"})

	assert.Nil(t, output)
	assert.Error(t, err)
}

func TestRenderTemplate_StripsUnknownPlaceholders(t *testing.T) {
	out := renderTemplate("Hello {{name}}, your report {{reportId}} is ready from {{missing}}.", map[string]interface{}{
		"name":     "Jordan",
		"reportId": 42,
	})
	assert.Equal(t, "Hello Jordan, your report 42 is ready from .", out)
}

func TestBuildReportData_EmptyRecommendation(t *testing.T) {
	data := buildReportData(&Input{
		UserID:         "user-123",
		Recommendation: &models.Recommendation{},
	})

	assert.NotContains(t, data, "topCareer")
	assert.NotContains(t, data, "careerList")
	assert.NotContains(t, data, "skillList")
}
