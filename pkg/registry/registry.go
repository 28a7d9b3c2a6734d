// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

func LoadRegistry(path string) (*AssessmentRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg AssessmentRegistry
	err = json.Unmarshal(data, &reg)
	return &reg, err
}

// FindByType returns the entry for a test type, if registered.
func (r *AssessmentRegistry) FindByType(testType string) (*TestEntry, bool) {
	for i := range r.Tests {
		if r.Tests[i].TestType == testType {
			return &r.Tests[i], true
		}
	}
	return nil, false
}

// Validate checks the registry for structural problems.
func (r *AssessmentRegistry) Validate() error {
	if len(r.Tests) == 0 {
		return fmt.Errorf("registry contains no tests")
	}

	types := make(map[string]bool)
	for _, test := range r.Tests {
		if test.ID == "" {
			return fmt.Errorf("test missing required field: id")
		}
		if test.TestType == "" {
			return fmt.Errorf("test %s missing required field: testType", test.ID)
		}
		if test.QuestionCount <= 0 {
			return fmt.Errorf("test %s has no questions", test.ID)
		}
		if test.ScaleMin >= test.ScaleMax {
			return fmt.Errorf("test %s has an invalid response scale", test.ID)
		}
		if types[test.TestType] {
			return fmt.Errorf("duplicate test type: %s", test.TestType)
		}
		types[test.TestType] = true
	}
	return nil
}
