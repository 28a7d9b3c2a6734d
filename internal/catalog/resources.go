package catalog

import (
	"fmt"
	"strings"

	"career-workers/internal/models"
)

const (
	roadmapProvider = "roadmap.sh"
	roadmapBaseURL  = "https://roadmap.sh/"
)

const resourcesDisclaimer = "All guidance resources provided are external third-party materials. " +
	"These resources are curated for educational purposes and are suitable for various skill levels (beginner to advanced). " +
	"We do not own, control, or guarantee the accuracy, completeness, or availability of external content. " +
	"Users should verify information independently and use resources at their own discretion."

func defaultLearningResources() []models.Resource {
	return []models.Resource{
		{
			ID:          "py_basics",
			Title:       "Python for Beginners",
			URL:         "https://docs.python.org/3/tutorial/",
			Description: "Official Python tutorial covering fundamentals",
			Tags:        []string{"python", "programming", "beginner"},
			Level:       models.LevelBeginner,
			Type:        models.ResourceTypeCourse,
			Provider:    "Python.org",
			Duration:    "2-3 weeks",
			Cost:        "Free",
		},
		{
			ID:          "ds_course",
			Title:       "Data Science Fundamentals",
			URL:         "https://www.kaggle.com/learn",
			Description: "Comprehensive data science learning path",
			Tags:        []string{"data-science", "python", "machine-learning"},
			Level:       models.LevelIntermediate,
			Type:        models.ResourceTypeCourse,
			Provider:    "Kaggle",
			Duration:    "4-6 weeks",
			Cost:        "Free",
		},
		{
			ID:          "pm_guide",
			Title:       "Product Management Guide",
			URL:         "https://www.productplan.com/learn/",
			Description: "Complete guide to product management",
			Tags:        []string{"product-management", "strategy", "business"},
			Level:       models.LevelBeginner,
			Type:        models.ResourceTypeArticle,
			Provider:    "ProductPlan",
			Duration:    "1-2 weeks",
			Cost:        "Free",
		},
		{
			ID:          "ux_design",
			Title:       "UX Design Specialization",
			URL:         "https://www.coursera.org/specializations/ui-ux-design",
			Description: "Comprehensive UX design program",
			Tags:        []string{"ux-design", "design", "user-research"},
			Level:       models.LevelBeginner,
			Type:        models.ResourceTypeCourse,
			Provider:    "Coursera",
			Duration:    "6 months",
			Cost:        "$49/month",
		},
		{
			ID:          "digital_marketing",
			Title:       "Google Digital Marketing Course",
			URL:         "https://skillshop.withgoogle.com/",
			Description: "Google's official digital marketing training",
			Tags:        []string{"marketing", "digital-marketing", "analytics"},
			Level:       models.LevelBeginner,
			Type:        models.ResourceTypeCertification,
			Provider:    "Google",
			Duration:    "3-4 weeks",
			Cost:        "Free",
		},
		{
			ID:          "coding_bootcamp",
			Title:       "Free Code Camp",
			URL:         "https://www.freecodecamp.org/",
			Description: "Full-stack web development curriculum",
			Tags:        []string{"programming", "web-development", "javascript"},
			Level:       models.LevelBeginner,
			Type:        models.ResourceTypeCourse,
			Provider:    "FreeCodeCamp",
			Duration:    "6-12 months",
			Cost:        "Free",
		},
	}
}

func defaultJobResources() []models.Resource {
	return []models.Resource{
		{
			ID:          "linkedin_jobs",
			Title:       "LinkedIn Jobs",
			URL:         "https://www.linkedin.com/jobs/",
			Description: "Professional networking and job search platform",
			Tags:        []string{"job-search", "networking"},
			Type:        models.ResourceTypeJob,
			Provider:    "LinkedIn",
		},
		{
			ID:          "indeed",
			Title:       "Indeed Job Search",
			URL:         "https://www.indeed.com/",
			Description: "Comprehensive job search engine",
			Tags:        []string{"job-search"},
			Type:        models.ResourceTypeJob,
			Provider:    "Indeed",
		},
		{
			ID:          "glassdoor",
			Title:       "Glassdoor",
			URL:         "https://www.glassdoor.com/",
			Description: "Job search with company reviews and salary data",
			Tags:        []string{"job-search", "salary-research"},
			Type:        models.ResourceTypeJob,
			Provider:    "Glassdoor",
		},
	}
}

func defaultMentorshipResources() []models.Resource {
	return []models.Resource{
		{
			ID:          "adplist",
			Title:       "ADPList",
			URL:         "https://adplist.org/",
			Description: "Free mentorship platform for career growth",
			Tags:        []string{"mentorship", "career-guidance"},
			Type:        models.ResourceTypeMentor,
			Provider:    "ADPList",
		},
		{
			ID:          "mentorcruise",
			Title:       "MentorCruise",
			URL:         "https://mentorcruise.com/",
			Description: "1-on-1 mentorship with industry experts",
			Tags:        []string{"mentorship", "career-coaching"},
			Type:        models.ResourceTypeMentor,
			Provider:    "MentorCruise",
		},
	}
}

// roadmapEntry pairs a display name with its roadmap.sh URL path.
type roadmapEntry struct {
	Name string
	Path string
}

var roleRoadmaps = []roadmapEntry{
	{"Frontend Beginner", "frontend?r=frontend-beginner"},
	{"Backend Beginner", "backend?r=backend-beginner"},
	{"DevOps Beginner", "devops?r=devops-beginner"},
	{"Frontend", "frontend"},
	{"Backend", "backend"},
	{"Full Stack", "full-stack"},
	{"API Design", "api-design"},
	{"QA", "qa"},
	{"DevOps", "devops"},
	{"Android", "android"},
	{"iOS", "ios"},
	{"PostgreSQL", "postgresql-dba"},
	{"Software Architect", "software-architect"},
	{"Technical Writer", "technical-writer"},
	{"DevRel Engineer", "devrel"},
	{"AI and Data Scientist", "ai-data-scientist"},
	{"AI Engineer", "ai-engineer"},
	{"AI Agents", "ai-agents"},
	{"Data Analyst", "data-analyst"},
	{"BI Analyst", "bi-analyst"},
	{"Data Engineer", "data-engineer"},
	{"MLOps", "mlops"},
	{"Product Manager", "product-manager"},
	{"Engineering Manager", "engineering-manager"},
	{"Client Side Game Dev.", "game-developer"},
	{"Server Side Game Dev.", "server-side-game-developer"},
	{"UX Design", "ux-design"},
	{"Blockchain", "blockchain"},
	{"Cyber Security", "cyber-security"},
}

var skillRoadmaps = []roadmapEntry{
	{"GraphQL", "graphql"},
	{"Git and GitHub", "git-github"},
	{"React", "react"},
	{"Vue", "vue"},
	{"Angular", "angular"},
	{"Next.js", "nextjs"},
	{"Spring Boot", "spring-boot"},
	{"ASP.NET Core", "aspnet-core"},
	{"JavaScript", "javascript"},
	{"TypeScript", "typescript"},
	{"Node.js", "nodejs"},
	{"PHP", "php"},
	{"C++", "cpp"},
	{"Go", "golang"},
	{"Rust", "rust"},
	{"Python", "python"},
	{"Java", "java"},
	{"SQL", "sql"},
	{"Docker", "docker"},
	{"Kubernetes", "kubernetes"},
	{"AWS", "aws"},
	{"Cloudflare", "cloudflare"},
	{"Linux", "linux"},
	{"Terraform", "terraform"},
	{"React Native", "react-native"},
	{"Flutter", "flutter"},
	{"MongoDB", "mongodb"},
	{"Redis", "redis"},
	{"Computer Science", "computer-science"},
	{"Data Structures", "datastructures-and-algorithms"},
	{"System Design", "system-design"},
	{"Design and Architecture", "software-design-architecture"},
	{"Code Review", "code-review"},
	{"Prompt Engineering", "prompt-engineering"},
	{"Design System", "design-system"},
}

// roadmapResources expands the roadmap.sh tables into Resource entries.
func roadmapResources() []models.Resource {
	out := make([]models.Resource, 0, len(roleRoadmaps)+len(skillRoadmaps))
	for _, e := range roleRoadmaps {
		out = append(out, models.Resource{
			ID:          "roadmap_role_" + roadmapID(e.Name),
			Title:       e.Name + " Roadmap",
			URL:         roadmapBaseURL + e.Path,
			Description: fmt.Sprintf("Complete %s learning roadmap with step-by-step guidance", e.Name),
			Tags:        []string{"roadmap", "career-path", roadmapTag(e.Name)},
			Level:       models.LevelAll,
			Type:        models.ResourceTypeRoadmap,
			Provider:    roadmapProvider,
			Category:    "role_based",
		})
	}
	for _, e := range skillRoadmaps {
		out = append(out, models.Resource{
			ID:          "roadmap_skill_" + roadmapID(e.Name),
			Title:       e.Name + " Learning Path",
			URL:         roadmapBaseURL + e.Path,
			Description: fmt.Sprintf("Comprehensive %s learning roadmap from basics to advanced", e.Name),
			Tags:        []string{"roadmap", "skill-development", roadmapTag(e.Name)},
			Level:       models.LevelAll,
			Type:        models.ResourceTypeRoadmap,
			Provider:    roadmapProvider,
			Category:    "skill_based",
		})
	}
	return out
}

func roadmapID(name string) string {
	id := strings.ToLower(name)
	id = strings.ReplaceAll(id, " ", "_")
	id = strings.ReplaceAll(id, ".", "")
	return id
}

func roadmapTag(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}

// allLearningResources merges the curated table with the generated
// roadmap.sh entries, curated entries first.
func allLearningResources() []models.Resource {
	return append(defaultLearningResources(), roadmapResources()...)
}
