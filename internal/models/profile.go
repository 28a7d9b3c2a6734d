package models

// UserProfile is the immutable input to the matching engine. The engine never
// mutates it; token normalization happens on copies.
type UserProfile struct {
	Interests       []string `json:"interests"`
	Skills          []string `json:"skills"`
	Goals           []string `json:"goals"`
	ExperienceYears *float64 `json:"experienceYears,omitempty"`

	// Metadata only; not used by scoring.
	EducationLevel      string `json:"educationLevel,omitempty"`
	FamilyBackground    string `json:"familyBackground,omitempty"`
	FinancialBackground string `json:"financialBackground,omitempty"`
	LanguagePreference  string `json:"languagePreference,omitempty"`
}

// HasExperience reports whether the profile carries an experience figure.
func (p *UserProfile) HasExperience() bool {
	return p != nil && p.ExperienceYears != nil
}
