// internal/workers/assessment/score-test/schema.go
package scoretest

import (
	"fmt"
	"strings"

	"career-workers/internal/common/validation"
)

// inputSchema gates the job payload before dispatch: Likert answers must be
// integers 1..5 and scenario responses free text.
var inputSchema = []byte(`{
	"type": "object",
	"required": ["testType", "responses"],
	"properties": {
		"userId": {"type": "string"},
		"testType": {"type": "string", "minLength": 1},
		"responses": {
			"type": "object",
			"additionalProperties": {"type": "integer", "minimum": 1, "maximum": 5}
		},
		"scenarioResponses": {
			"type": "object",
			"additionalProperties": {"type": "string"}
		}
	}
}`)

func validatePayload(raw []byte) error {
	result, err := validation.ValidateJSON(raw, inputSchema)
	if err != nil {
		return err
	}
	if !result.Valid {
		return fmt.Errorf("%w: %s", ErrInvalidResponseValue, strings.Join(result.GetErrorMessages(), "; "))
	}
	return nil
}
