package catalog

import (
	"time"

	"internmatch-bot/internal/models"
)

func score(v float64) *float64 { return &v }

func text(v string) *string { return &v }

// Applications returns the student's mock application history.
func Applications() []models.Application {
	return []models.Application{
		{
			ID:             1,
			JobTitle:       "Product Management Intern",
			Company:        "TechCorp Inc.",
			AppliedDate:    time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			Status:         "Interview Completed",
			Stage:          "Final Review",
			Progress:       90,
			NextStep:       "Decision expected by Jan 25",
			InterviewScore: score(8.5),
			Feedback:       text("Strong analytical skills, good product sense"),
		},
		{
			ID:             2,
			JobTitle:       "Associate Product Manager Intern",
			Company:        "StartupXYZ",
			AppliedDate:    time.Date(2024, time.January, 12, 0, 0, 0, 0, time.UTC),
			Status:         "Accepted",
			Stage:          "Offer Extended",
			Progress:       100,
			NextStep:       "Respond to offer by Jan 20",
			InterviewScore: score(9.2),
			Feedback:       text("Excellent communication and problem-solving abilities"),
		},
		{
			ID:          3,
			JobTitle:    "Junior Product Analyst Intern",
			Company:     "MegaRetail Corp",
			AppliedDate: time.Date(2024, time.January, 18, 0, 0, 0, 0, time.UTC),
			Status:      "AI Interview",
			Stage:       "Initial Screening",
			Progress:    30,
			NextStep:    "Complete AI interview by Jan 22",
		},
		{
			ID:             4,
			JobTitle:       "Product Intern",
			Company:        "FinanceFlow",
			AppliedDate:    time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			Status:         "Rejected",
			Stage:          "Application Review",
			Progress:       20,
			NextStep:       "Application closed",
			InterviewScore: score(6.2),
			Feedback:       text("Good potential but seeking candidates with more technical background"),
		},
	}
}

// Candidates returns the company dashboard's mock candidate list.
func Candidates() []models.Candidate {
	return []models.Candidate{
		{ID: 1, Name: "John Doe", Skills: "React, Python, PM", Rating: "Excellent", Match: 95},
		{ID: 2, Name: "Jane Smith", Skills: "Node.js, Angular, Agile", Rating: "Good", Match: 88},
		{ID: 3, Name: "Mike Johnson", Skills: "Vue.js, Django, Scrum", Rating: "Excellent", Match: 92},
	}
}

// Feedback returns the evaluations of the student's completed interviews.
func Feedback() []models.InterviewFeedback {
	return []models.InterviewFeedback{
		{
			ID:            1,
			JobTitle:      "Product Management Intern",
			Company:       "TechCorp Inc.",
			InterviewDate: time.Date(2024, time.January, 20, 0, 0, 0, 0, time.UTC),
			OverallScore:  8.5,
			Categories: []models.FeedbackCategory{
				{Name: "Product Thinking", Score: 9, Feedback: "Excellent understanding of user needs and market dynamics"},
				{Name: "Analytical Skills", Score: 8, Feedback: "Strong data interpretation and problem-solving approach"},
				{Name: "Communication", Score: 8, Feedback: "Clear articulation of ideas with good storytelling"},
				{Name: "Technical Knowledge", Score: 8, Feedback: "Good grasp of product management tools and processes"},
			},
			Strengths: []string{
				"Demonstrated strong user empathy",
				"Provided data-driven solutions",
				"Showed excellent prioritization skills",
			},
			Improvements: []string{
				"Could improve technical depth in API understanding",
				"Practice more complex estimation problems",
			},
			Recommendations: []string{
				"Study advanced SQL for product analytics",
				"Read 'Cracking the PM Interview' for technical preparation",
			},
		},
		{
			ID:            2,
			JobTitle:      "Associate Product Manager Intern",
			Company:       "StartupXYZ",
			InterviewDate: time.Date(2024, time.January, 18, 0, 0, 0, 0, time.UTC),
			OverallScore:  9.2,
			Categories: []models.FeedbackCategory{
				{Name: "Product Strategy", Score: 9, Feedback: "Outstanding strategic thinking and market analysis"},
				{Name: "Leadership", Score: 9, Feedback: "Natural leadership qualities and team collaboration"},
				{Name: "Innovation", Score: 9, Feedback: "Creative problem-solving with unique perspectives"},
				{Name: "Execution", Score: 9, Feedback: "Clear roadmap thinking and delivery focus"},
			},
			Strengths: []string{
				"Exceptional strategic vision",
				"Strong leadership presence",
				"Innovative solution approaches",
			},
			Improvements: []string{
				"Minor: Could dive deeper into metrics definition",
			},
			Recommendations: []string{
				"Consider reading 'Inspired' by Marty Cagan",
				"Practice with more A/B testing scenarios",
			},
		},
		{
			ID:            3,
			JobTitle:      "Product Intern",
			Company:       "FinanceFlow",
			InterviewDate: time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
			OverallScore:  6.2,
			Categories: []models.FeedbackCategory{
				{Name: "Domain Knowledge", Score: 5, Feedback: "Limited understanding of fintech landscape"},
				{Name: "Problem Solving", Score: 7, Feedback: "Good logical approach but needs more structure"},
				{Name: "Communication", Score: 6, Feedback: "Ideas were good but presentation could be clearer"},
				{Name: "Product Sense", Score: 7, Feedback: "Decent intuition but needs more user research backing"},
			},
			Strengths: []string{
				"Good logical reasoning",
				"Showed enthusiasm for learning",
			},
			Improvements: []string{
				"Strengthen domain knowledge in fintech",
				"Practice structured problem-solving frameworks",
				"Improve presentation and storytelling skills",
			},
			Recommendations: []string{
				"Study fintech products and regulations",
				"Practice case studies with frameworks like CIRCLES",
				"Join product management communities for peer learning",
			},
		},
	}
}
