package assessment

import "fmt"

// UnknownTestTypeError is returned when a submission names a test type the
// framework has no scorer for. It is always surfaced to the caller.
type UnknownTestTypeError struct {
	TestType string
}

func (e *UnknownTestTypeError) Error() string {
	return fmt.Sprintf("unknown test type: %q", e.TestType)
}

// InvalidResponseValueError is returned when a raw answer falls outside the
// 1-5 Likert range. Rejecting instead of clamping keeps upstream validation
// bugs visible.
type InvalidResponseValueError struct {
	QuestionID string
	Value      int
}

func (e *InvalidResponseValueError) Error() string {
	return fmt.Sprintf("response %q has value %d outside the 1-5 Likert range", e.QuestionID, e.Value)
}

func validateResponses(responses map[string]int) error {
	for qid, v := range responses {
		if v < 1 || v > 5 {
			return &InvalidResponseValueError{QuestionID: qid, Value: v}
		}
	}
	return nil
}
