package assessment

import "career-workers/internal/models"

// Question banks for the three assessments. These are fixed reference data;
// scorers iterate the banks (not the response maps) so output ordering is
// stable across runs.

func riasecQuestions() []models.TestQuestion {
	return []models.TestQuestion{
		{ID: "R1", Text: "I enjoy working with tools and machinery", Category: models.InterestRealistic, Weight: 1.0},
		{ID: "R2", Text: "I like to build things with my hands", Category: models.InterestRealistic, Weight: 1.0},
		{ID: "R3", Text: "I prefer outdoor activities over indoor ones", Category: models.InterestRealistic, Weight: 0.8},
		{ID: "I1", Text: "I enjoy solving complex mathematical problems", Category: models.InterestInvestigative, Weight: 1.0},
		{ID: "I2", Text: "I like to analyze data and find patterns", Category: models.InterestInvestigative, Weight: 1.0},
		{ID: "I3", Text: "I enjoy conducting experiments and research", Category: models.InterestInvestigative, Weight: 1.0},
		{ID: "A1", Text: "I enjoy creative writing and storytelling", Category: models.InterestArtistic, Weight: 1.0},
		{ID: "A2", Text: "I like to express myself through art, music, or dance", Category: models.InterestArtistic, Weight: 1.0},
		{ID: "A3", Text: "I appreciate beauty in design and aesthetics", Category: models.InterestArtistic, Weight: 0.8},
		{ID: "S1", Text: "I enjoy helping others solve their problems", Category: models.InterestSocial, Weight: 1.0},
		{ID: "S2", Text: "I like teaching and mentoring others", Category: models.InterestSocial, Weight: 1.0},
		{ID: "S3", Text: "I am good at understanding people's emotions", Category: models.InterestSocial, Weight: 0.9},
		{ID: "E1", Text: "I enjoy leading teams and projects", Category: models.InterestEnterprising, Weight: 1.0},
		{ID: "E2", Text: "I like to persuade and influence others", Category: models.InterestEnterprising, Weight: 1.0},
		{ID: "E3", Text: "I am comfortable taking risks for potential rewards", Category: models.InterestEnterprising, Weight: 0.9},
		{ID: "C1", Text: "I prefer structured and organized work environments", Category: models.InterestConventional, Weight: 1.0},
		{ID: "C2", Text: "I enjoy working with numbers and detailed records", Category: models.InterestConventional, Weight: 1.0},
		{ID: "C3", Text: "I like following established procedures and rules", Category: models.InterestConventional, Weight: 0.8},
	}
}

func mentalSkillsQuestions() []models.TestQuestion {
	return []models.TestQuestion{
		{
			ID:       "AS1",
			Text:     "I can break down complex problems into smaller parts",
			Skill:    models.SkillAnalyticalThinking,
			Scenario: "You're given a dataset with declining sales. How would you approach analyzing it?",
		},
		{
			ID:       "DR1",
			Text:     "I can draw logical conclusions from given information",
			Skill:    models.SkillDeductiveReasoning,
			Scenario: "If A leads to B, and B leads to C, what can you conclude about A and C?",
		},
		{
			ID:       "PR1",
			Text:     "I quickly notice patterns in data or behavior",
			Skill:    models.SkillPatternRecognition,
			Scenario: "Looking at the sequence 2, 4, 8, 16, what comes next and why?",
		},
		{
			ID:       "SP1",
			Text:     "I can plan long-term strategies effectively",
			Skill:    models.SkillStrategicPlanning,
			Scenario: "How would you plan a 5-year career growth strategy?",
		},
		{
			ID:       "EI1",
			Text:     "I understand and manage emotions well",
			Skill:    models.SkillEmotionalIntelligence,
			Scenario: "How would you handle a frustrated team member?",
		},
		{
			ID:       "SM1",
			Text:     "I remain calm under pressure",
			Skill:    models.SkillStressManagement,
			Scenario: "Describe how you handle tight deadlines.",
		},
	}
}

// skillKeywords drives the scenario-response quality bonus. Matches are
// case-insensitive substring hits.
var skillKeywords = map[string][]string{
	models.SkillAnalyticalThinking:    {"analyze", "break down", "data", "systematic", "method"},
	models.SkillDeductiveReasoning:    {"logic", "conclude", "therefore", "reasoning", "inference"},
	models.SkillPatternRecognition:    {"pattern", "trend", "sequence", "relationship", "connection"},
	models.SkillStrategicPlanning:     {"plan", "strategy", "goal", "long-term", "roadmap"},
	models.SkillEmotionalIntelligence: {"empathy", "understand", "emotion", "communicate", "support"},
	models.SkillStressManagement:      {"calm", "prioritize", "organize", "manage", "balance"},
}

func personalityQuestions() []models.TestQuestion {
	return []models.TestQuestion{
		{ID: "O1", Text: "I enjoy exploring new ideas and concepts", Trait: models.TraitOpenness},
		{ID: "O2", Text: "I prefer routine and familiar activities", Trait: models.TraitOpenness, Reverse: true},
		{ID: "C1", Text: "I am always prepared and organized", Trait: models.TraitConscientiousness},
		{ID: "C2", Text: "I often leave tasks unfinished", Trait: models.TraitConscientiousness, Reverse: true},
		{ID: "E1", Text: "I enjoy being around people and socializing", Trait: models.TraitExtraversion},
		{ID: "E2", Text: "I prefer working alone rather than in groups", Trait: models.TraitExtraversion, Reverse: true},
		{ID: "A1", Text: "I am sympathetic and warm toward others", Trait: models.TraitAgreeableness},
		{ID: "A2", Text: "I tend to be critical of others", Trait: models.TraitAgreeableness, Reverse: true},
		{ID: "N1", Text: "I often feel anxious and worried", Trait: models.TraitNeuroticism},
		{ID: "N2", Text: "I remain calm in stressful situations", Trait: models.TraitNeuroticism, Reverse: true},
	}
}
