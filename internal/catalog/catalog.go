// Package catalog provides the static internship catalog and the option
// lists derived from it.
package catalog

import (
	"slices"
	"time"

	"internmatch-bot/internal/models"
)

const day = 24 * time.Hour

// Default returns the reference catalog with posting dates anchored on now.
func Default(now time.Time) []models.JobRecord {
	return []models.JobRecord{
		{
			ID:            1,
			Title:         "Product Management Intern",
			Company:       "TechCorp Inc.",
			Location:      "San Francisco, CA",
			Type:          "Full-time Internship",
			Duration:      "3 months",
			Salary:        4000,
			SalaryDisplay: "$4,000/month",
			Description:   "Join our product team to work on cutting-edge consumer applications. You'll collaborate with engineers, designers, and stakeholders to drive product strategy and execution.",
			Requirements: []string{
				"Currently pursuing Bachelor's or Master's degree",
				"Strong analytical skills",
				"Experience with Agile methodologies",
				"Knowledge of product management tools",
			},
			Skills:          []string{"Product Strategy", "Market Research", "Agile", "SQL"},
			Posted:          "2 days ago",
			PostedDate:      now.Add(-2 * day),
			Applicants:      45,
			Match:           92,
			CompanySize:     models.CompanyLarge,
			ExperienceLevel: models.ExperienceEntry,
			WorkMode:        models.WorkHybrid,
		},
		{
			ID:            2,
			Title:         "Associate Product Manager Intern",
			Company:       "StartupXYZ",
			Location:      "Remote",
			Type:          "Part-time Internship",
			Duration:      "6 months",
			Salary:        3500,
			SalaryDisplay: "$3,500/month",
			Description:   "Help us build innovative fintech solutions that democratize financial services. Work directly with our founding team on product roadmap and user research.",
			Requirements: []string{
				"Junior/Senior year student",
				"Interest in fintech",
				"Strong communication skills",
				"Basic understanding of UX design",
			},
			Skills:          []string{"UX Research", "Wireframing", "Data Analysis", "Communication"},
			Posted:          "1 week ago",
			PostedDate:      now.Add(-7 * day),
			Applicants:      23,
			Match:           88,
			CompanySize:     models.CompanyStartup,
			ExperienceLevel: models.ExperienceEntry,
			WorkMode:        models.WorkRemote,
			IsRemote:        true,
		},
		{
			ID:            3,
			Title:         "Junior Product Analyst Intern",
			Company:       "MegaRetail Corp",
			Location:      "New York, NY",
			Type:          "Full-time Internship",
			Duration:      "4 months",
			Salary:        3800,
			SalaryDisplay: "$3,800/month",
			Description:   "Analyze user behavior and market trends to inform product decisions for our e-commerce platform serving millions of customers worldwide.",
			Requirements: []string{
				"Statistics or Business major preferred",
				"Excel/SQL proficiency",
				"Data visualization skills",
				"Retail/e-commerce interest",
			},
			Skills:          []string{"Data Analysis", "SQL", "Excel", "Tableau"},
			Posted:          "3 days ago",
			PostedDate:      now.Add(-3 * day),
			Applicants:      67,
			Match:           78,
			CompanySize:     models.CompanyLarge,
			ExperienceLevel: models.ExperienceEntry,
			WorkMode:        models.WorkOnsite,
		},
		{
			ID:            4,
			Title:         "Product Marketing Intern",
			Company:       "GreenTech Solutions",
			Location:      "Austin, TX",
			Type:          "Full-time Internship",
			Duration:      "3 months",
			Salary:        3200,
			SalaryDisplay: "$3,200/month",
			Description:   "Support our product marketing team in developing go-to-market strategies for sustainable technology solutions.",
			Requirements: []string{
				"Marketing or Business major",
				"Strong writing skills",
				"Social media experience",
				"Interest in sustainability",
			},
			Skills:          []string{"Marketing", "Content Creation", "Social Media", "Sustainability"},
			Posted:          "5 days ago",
			PostedDate:      now.Add(-5 * day),
			Applicants:      34,
			Match:           85,
			CompanySize:     models.CompanyMedium,
			ExperienceLevel: models.ExperienceEntry,
			WorkMode:        models.WorkHybrid,
		},
		{
			ID:            5,
			Title:         "Senior Product Intern",
			Company:       "AI Innovations",
			Location:      "Seattle, WA",
			Type:          "Full-time Internship",
			Duration:      "6 months",
			Salary:        5000,
			SalaryDisplay: "$5,000/month",
			Description:   "Lead product initiatives for AI-powered applications. Work with senior product managers on strategic projects.",
			Requirements: []string{
				"Graduate student or senior",
				"Previous product experience",
				"Technical background",
				"Leadership skills",
			},
			Skills:          []string{"AI/ML", "Product Strategy", "Leadership", "Technical Analysis"},
			Posted:          "1 day ago",
			PostedDate:      now.Add(-1 * day),
			Applicants:      89,
			Match:           95,
			CompanySize:     models.CompanyMedium,
			ExperienceLevel: models.ExperienceIntermediate,
			WorkMode:        models.WorkOnsite,
		},
		{
			ID:            6,
			Title:         "Product Design Intern",
			Company:       "DesignStudio Pro",
			Location:      "Remote",
			Type:          "Part-time Internship",
			Duration:      "4 months",
			Salary:        2800,
			SalaryDisplay: "$2,800/month",
			Description:   "Collaborate with design and product teams to create user-centered product experiences.",
			Requirements: []string{
				"Design or HCI major",
				"Figma proficiency",
				"Portfolio required",
				"User research experience",
			},
			Skills:          []string{"UI/UX Design", "Figma", "User Research", "Prototyping"},
			Posted:          "4 days ago",
			PostedDate:      now.Add(-4 * day),
			Applicants:      56,
			Match:           82,
			CompanySize:     models.CompanySmall,
			ExperienceLevel: models.ExperienceEntry,
			WorkMode:        models.WorkRemote,
			IsRemote:        true,
		},
		{
			ID:            7,
			Title:         "Product Operations Intern",
			Company:       "GlobalTech Corp",
			Location:      "Chicago, IL",
			Type:          "Full-time Internship",
			Duration:      "3 months",
			Salary:        4200,
			SalaryDisplay: "$4,200/month",
			Description:   "Support product operations and process optimization for our enterprise software platform.",
			Requirements: []string{
				"Operations or Business major",
				"Process improvement experience",
				"Data analysis skills",
				"Project management knowledge",
			},
			Skills:          []string{"Operations", "Process Improvement", "Data Analysis", "Project Management"},
			Posted:          "6 days ago",
			PostedDate:      now.Add(-6 * day),
			Applicants:      41,
			Match:           79,
			CompanySize:     models.CompanyLarge,
			ExperienceLevel: models.ExperienceEntry,
			WorkMode:        models.WorkHybrid,
		},
		{
			ID:            8,
			Title:         "Product Research Intern",
			Company:       "ResearchLabs Inc",
			Location:      "Boston, MA",
			Type:          "Part-time Internship",
			Duration:      "5 months",
			Salary:        3000,
			SalaryDisplay: "$3,000/month",
			Description:   "Conduct market research and competitive analysis to inform product decisions and strategy.",
			Requirements: []string{
				"Research or Analytics major",
				"Statistical analysis skills",
				"Report writing ability",
				"Industry research interest",
			},
			Skills:          []string{"Market Research", "Statistical Analysis", "Report Writing", "Competitive Analysis"},
			Posted:          "1 week ago",
			PostedDate:      now.Add(-7 * day),
			Applicants:      28,
			Match:           87,
			CompanySize:     models.CompanyMedium,
			ExperienceLevel: models.ExperienceEntry,
			WorkMode:        models.WorkOnsite,
		},
	}
}

// Skills returns the sorted unique skill tags of c.
func Skills(c []models.JobRecord) []string {
	var skills []string
	for _, job := range c {
		skills = append(skills, job.Skills...)
	}
	return sortedUnique(skills)
}

// Locations returns the sorted unique literal locations of c.
func Locations(c []models.JobRecord) []string {
	locations := make([]string, 0, len(c))
	for _, job := range c {
		locations = append(locations, job.Location)
	}
	return sortedUnique(locations)
}

func sortedUnique(values []string) []string {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}

// Find returns the record with id, if present.
func Find(c []models.JobRecord, id int) (models.JobRecord, bool) {
	for _, job := range c {
		if job.ID == id {
			return job, true
		}
	}
	return models.JobRecord{}, false
}
