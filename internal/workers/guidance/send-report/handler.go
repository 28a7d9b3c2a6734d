// internal/workers/guidance/send-report/handler.go
package sendreport

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/common/validation"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "send-report"
)

var (
	ErrReportSendFailed = errors.New("REPORT_SEND_FAILED")
)

// Interfaces for mocking the delivery clients.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput) (*ses.SendEmailOutput, error)
}

type SNSService interface {
	Publish(ctx context.Context, params *sns.PublishInput) (*sns.PublishOutput, error)
}

type Handler struct {
	config    *Config
	db        *sql.DB
	logger    logger.Logger
	sesClient SESService
	snsClient SNSService
}

func NewHandler(config *Config, db *sql.DB, sesClient SESService, snsClient SNSService, log logger.Logger) *Handler {
	return &Handler{
		config:    config,
		db:        db,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
		sesClient: sesClient,
		snsClient: snsClient,
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	startTime := time.Now()
	metrics.WorkerJobsActive.WithLabelValues(TaskType).Inc()
	defer metrics.WorkerJobsActive.WithLabelValues(TaskType).Dec()

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "PARSE_ERROR").Inc()
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err), 0)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		retries := int32(0)
		if errors.Is(err, ErrReportSendFailed) {
			retries = 3
		}
		metrics.WorkerJobsFailed.WithLabelValues(TaskType, "REPORT_SEND_FAILED").Inc()
		h.failJob(client, job, "REPORT_SEND_FAILED", err.Error(), retries)
		return
	}

	h.completeJob(client, job, output)
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(startTime).Seconds())
}

func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if input.Recommendation == nil {
		return nil, fmt.Errorf("recommendation is required")
	}

	email, phone, err := h.getRecipientContact(ctx, input.UserID)
	if err != nil {
		h.logger.Warn("recipient not found", map[string]interface{}{
			"userId": input.UserID,
			"error":  err,
		})
		return &Output{
			ReportID: uuid.New().String(),
			Status:   StatusDisabled,
			SentAt:   time.Now().UTC().Format(time.RFC3339),
		}, nil
	}

	data := buildReportData(input)
	subject := renderTemplate(reportSubjectTemplate, data)
	body := renderTemplate(reportBodyTemplate, data)
	summary := renderTemplate(reportSMSTemplate, data)

	sentAt := time.Now().UTC().Format(time.RFC3339)
	reportID := uuid.New().String()

	emailSent := false
	smsSent := false

	if h.config.EmailEnabled && validation.ValidateEmail(email) {
		if err := h.sendEmail(ctx, email, subject, body); err != nil {
			h.logger.Error("email send failed", map[string]interface{}{
				"error": err,
				"email": email,
			})
			return &Output{ReportID: reportID, Status: StatusFailed, SentAt: sentAt}, nil
		}
		emailSent = true
	}

	// SMS carries only the short summary and fires on high priority.
	if h.config.SMSEnabled && validation.ValidatePhone(phone) && input.Priority == PriorityHigh {
		if err := h.sendSMS(ctx, phone, summary); err != nil {
			h.logger.Error("SMS send failed", map[string]interface{}{
				"error": err,
				"phone": phone,
			})
			return &Output{ReportID: reportID, Status: StatusFailed, SentAt: sentAt}, nil
		}
		smsSent = true
	}

	status := StatusDisabled
	if emailSent || smsSent {
		status = StatusSent
	}

	h.logger.Info("report delivery finished", map[string]interface{}{
		"userId":    input.UserID,
		"reportId":  reportID,
		"status":    status,
		"emailSent": emailSent,
		"smsSent":   smsSent,
	})

	return &Output{
		ReportID: reportID,
		Status:   status,
		SentAt:   sentAt,
	}, nil
}

func (h *Handler) getRecipientContact(ctx context.Context, userID string) (string, string, error) {
	if userID == "" {
		return "", "", fmt.Errorf("userId is required")
	}

	var email, phone sql.NullString
	err := h.db.QueryRowContext(ctx,
		`SELECT email, phone FROM users WHERE id = $1`, userID).Scan(&email, &phone)
	if err != nil {
		return "", "", err
	}
	return email.String, phone.String, nil
}

func (h *Handler) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := h.sesClient.SendEmail(ctx, buildEmailInput(h.config.FromEmail, to, subject, body))
	return err
}

func (h *Handler) sendSMS(ctx context.Context, to, message string) error {
	_, err := h.snsClient.Publish(ctx, buildSMSInput(to, message))
	return err
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string, _ int32) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

// buildReportData flattens the recommendation into template values.
func buildReportData(input *Input) map[string]interface{} {
	rec := input.Recommendation

	data := map[string]interface{}{
		"userId":     input.UserID,
		"disclaimer": input.Disclaimer,
	}

	if len(rec.CareerPaths) > 0 {
		data["topCareer"] = rec.CareerPaths[0].Role

		lines := make([]string, 0, len(rec.CareerPaths))
		for _, cp := range rec.CareerPaths {
			lines = append(lines, fmt.Sprintf("- %s (%s): %s", cp.Role, cp.Industry, cp.MatchReason))
		}
		data["careerList"] = strings.Join(lines, "\n")
	}

	if len(rec.SkillsToDevelop) > 0 {
		data["skillList"] = strings.Join(rec.SkillsToDevelop, ", ")
	}

	return data
}

// renderTemplate substitutes {{key}} placeholders and strips the leftovers.
func renderTemplate(tmpl string, data map[string]interface{}) string {
	result := tmpl

	for k, v := range data {
		placeholder := "{{" + k + "}}"
		value := ""
		if s, ok := v.(string); ok {
			value = s
		} else if i, ok := v.(int); ok {
			value = fmt.Sprintf("%d", i)
		} else if v != nil {
			value = fmt.Sprintf("%v", v)
		}
		result = strings.ReplaceAll(result, placeholder, value)
	}

	for {
		start := strings.Index(result, "{{")
		if start == -1 {
			break
		}
		end := strings.Index(result[start:], "}}")
		if end == -1 {
			break
		}
		end += start + 2
		result = result[:start] + result[end:]
	}

	return result
}

// Execute exposes the delivery path for integration tests.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
