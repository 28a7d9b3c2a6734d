// cmd/tools/registry-updater/main.go
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"career-workers/internal/assessment"
	"career-workers/internal/models"
	"career-workers/pkg/registry"
)

var registryPath string

func main() {
	generateCmd := flag.NewFlagSet("generate", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	generateCmd.StringVar(&registryPath, "path", "configs/assessment_registry.json", "Path to registry file")
	validateCmd.StringVar(&registryPath, "path", "configs/assessment_registry.json", "Path to registry file")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "generate":
		generateCmd.Parse(os.Args[2:])
		if err := generateRegistry(); err != nil {
			fmt.Printf("Error generating registry: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Registry written to %s\n", registryPath)

	case "validate":
		validateCmd.Parse(os.Args[2:])
		if err := validateRegistry(); err != nil {
			fmt.Printf("Registry validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Registry validation passed.")

	case "help":
		fallthrough
	default:
		help()
	}
}

// generateRegistry derives the registry from the compiled-in question banks,
// so the JSON can never drift from what the scorers actually accept.
func generateRegistry() error {
	reg := &registry.AssessmentRegistry{
		Version:     "1.0.0",
		LastUpdated: time.Now().Format(time.RFC3339),
		Tests: []registry.TestEntry{
			{
				ID:              "riasec",
				Name:            "RIASEC Interest Inventory",
				TestType:        string(models.TestTypeRIASEC),
				ScoringMethod:   "weighted_average",
				DurationMinutes: 10,
				QuestionCount:   len(assessment.NewRIASECScorer().Questions()),
				ScaleMin:        1,
				ScaleMax:        5,
			},
			{
				ID:              "mental_skills",
				Name:            "Mental Skills Assessment",
				TestType:        string(models.TestTypeMentalSkills),
				ScoringMethod:   "scenario_bonus",
				DurationMinutes: 15,
				QuestionCount:   len(assessment.NewMentalSkillsScorer().Questions()),
				ScaleMin:        1,
				ScaleMax:        5,
				HasScenarios:    true,
			},
			{
				ID:              "personality",
				Name:            "Big Five Personality Assessment",
				TestType:        string(models.TestTypePersonality),
				ScoringMethod:   "reverse_keyed",
				DurationMinutes: 8,
				QuestionCount:   len(assessment.NewPersonalityScorer().Questions()),
				ScaleMin:        1,
				ScaleMax:        5,
			},
		},
	}

	if err := reg.Validate(); err != nil {
		return fmt.Errorf("generated registry is invalid: %w", err)
	}
	return saveRegistry(reg, registryPath)
}

func validateRegistry() error {
	reg, err := registry.LoadRegistry(registryPath)
	if err != nil {
		return fmt.Errorf("failed to load registry: %w", err)
	}

	if err := reg.Validate(); err != nil {
		return err
	}

	fmt.Printf("Registry validation passed. Found %d tests.\n", len(reg.Tests))
	return nil
}

// saveRegistry handles saving the registry to file
func saveRegistry(reg *registry.AssessmentRegistry, path string) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal registry: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write registry file: %w", err)
	}

	return nil
}

func help() {
	fmt.Println(`
Usage: registry-updater <command> [flags]

Commands:
  generate  Regenerate the assessment registry from the question banks
  validate  Validate the registry file
  help      Show this help message

Examples:
  registry-updater generate -path configs/assessment_registry.json
  registry-updater validate -path configs/assessment_registry.json

Use 'registry-updater <command> -h' for more information about a command.`)
}
