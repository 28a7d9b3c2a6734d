package catalog

import "career-workers/internal/models"

func defaultCareerPaths() []models.CareerPathEntry {
	return []models.CareerPathEntry{
		{
			ID:              "software_engineer",
			Role:            "Software Engineer",
			Industry:        "Technology",
			RequiredSkills:  []string{"programming", "python", "javascript", "problem-solving"},
			GrowthPotential: "High - Growing demand in tech industry",
			SalaryRange:     "$70k - $180k+",
			NextSteps: []string{
				"Build portfolio projects",
				"Learn frameworks",
				"Practice algorithms",
			},
		},
		{
			ID:              "data_scientist",
			Role:            "Data Scientist",
			Industry:        "Technology/Analytics",
			RequiredSkills:  []string{"python", "statistics", "machine-learning", "data-analysis"},
			GrowthPotential: "Very High - AI/ML revolution driving demand",
			SalaryRange:     "$80k - $200k+",
			NextSteps: []string{
				"Learn SQL and pandas",
				"Build ML projects",
				"Get familiar with cloud platforms",
			},
		},
		{
			ID:              "product_manager",
			Role:            "Product Manager",
			Industry:        "Technology/Business",
			RequiredSkills:  []string{"strategy", "communication", "analytics", "leadership"},
			GrowthPotential: "High - Digital transformation needs",
			SalaryRange:     "$90k - $220k+",
			NextSteps: []string{
				"Learn product frameworks",
				"Build cross-functional skills",
				"Understand user research",
			},
		},
		{
			ID:              "ux_designer",
			Role:            "UX Designer",
			Industry:        "Design/Technology",
			RequiredSkills:  []string{"design", "user-research", "prototyping", "creativity"},
			GrowthPotential: "High - User experience focus increasing",
			SalaryRange:     "$60k - $150k+",
			NextSteps: []string{
				"Build design portfolio",
				"Learn design tools",
				"Practice user research",
			},
		},
		{
			ID:              "marketing_specialist",
			Role:            "Digital Marketing Specialist",
			Industry:        "Marketing/Business",
			RequiredSkills:  []string{"marketing", "analytics", "creativity", "communication"},
			GrowthPotential: "Medium-High - Digital marketing growth",
			SalaryRange:     "$45k - $120k+",
			NextSteps: []string{
				"Learn digital tools",
				"Build campaign portfolio",
				"Get certified in platforms",
			},
		},
	}
}

func defaultSkillMappings() map[string][]string {
	return map[string][]string{
		"technology": {"programming", "python", "javascript", "data-analysis", "machine-learning", "cloud"},
		"design":     {"design", "creativity", "user-research", "prototyping", "visual-design"},
		"business":   {"strategy", "communication", "leadership", "analytics", "project-management"},
		"marketing":  {"marketing", "creativity", "analytics", "communication", "digital-marketing"},
		"data":       {"python", "statistics", "data-analysis", "machine-learning", "sql", "visualization"},
	}
}
