// internal/workers/guidance/send-report/templates.go
package sendreport

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

const (
	reportSubjectTemplate = "Your Career Guidance Report"

	reportBodyTemplate = "Hello,\n\n" +
		"Your career guidance report is ready.\n\n" +
		"Recommended career paths:\n{{careerList}}\n\n" +
		"Skills worth developing next: {{skillList}}\n\n" +
		"{{disclaimer}}\n"

	reportSMSTemplate = "Your career report is ready. Top match: {{topCareer}}."
)

func buildEmailInput(from, to, subject, body string) *ses.SendEmailInput {
	return &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(from),
	}
}

func buildSMSInput(to, message string) *sns.PublishInput {
	return &sns.PublishInput{
		PhoneNumber: aws.String(to),
		Message:     aws.String(message),
	}
}
