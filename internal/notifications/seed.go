package notifications

import "time"

// Seed returns the inbox every new view starts with, dated relative to now.
func Seed(now time.Time) []Notification {
	return []Notification{
		{
			ID:        1,
			Type:      TypeInterview,
			Title:     "Interview Invitation",
			Message:   "You've been invited for a virtual interview with Google for Product Manager Intern position. Interview scheduled for tomorrow at 2:00 PM.",
			CreatedAt: now.Add(-30 * time.Minute),
			Priority:  PriorityHigh,
		},
		{
			ID:        2,
			Type:      TypeMatch,
			Title:     "New Job Matches",
			Message:   "We found 5 new internship opportunities that match your profile. 3 are from top companies!",
			CreatedAt: now.Add(-2 * time.Hour),
			Priority:  PriorityMedium,
		},
		{
			ID:        3,
			Type:      TypeAchievement,
			Title:     "Profile Completion",
			Message:   "Congratulations! Your profile is now 95% complete. This increases your visibility to recruiters by 40%.",
			CreatedAt: now.Add(-24 * time.Hour),
			Priority:  PriorityLow,
		},
		{
			ID:        4,
			Type:      TypeSuccess,
			Title:     "Application Submitted",
			Message:   "Your application for Product Manager Intern at Microsoft has been submitted successfully.",
			CreatedAt: now.Add(-24*time.Hour - time.Minute),
			Read:      true,
			Priority:  PriorityMedium,
		},
		{
			ID:        5,
			Type:      TypeReminder,
			Title:     "Deadline Reminder",
			Message:   "Don't forget! The application deadline for Amazon's Product Internship is in 2 days.",
			CreatedAt: now.Add(-48 * time.Hour),
			Read:      true,
			Priority:  PriorityHigh,
		},
		{
			ID:        6,
			Type:      TypeInfo,
			Title:     "Skill Assessment",
			Message:   "Complete your Product Management skill assessment to get better job recommendations.",
			CreatedAt: now.Add(-72 * time.Hour),
			Read:      true,
			Priority:  PriorityLow,
		},
		{
			ID:        7,
			Type:      TypeSuccess,
			Title:     "Resume Optimized",
			Message:   "Your resume has been automatically optimized with ATS-friendly keywords. View changes here.",
			CreatedAt: now.Add(-96 * time.Hour),
			Read:      true,
			Priority:  PriorityMedium,
		},
		{
			ID:        8,
			Type:      TypeAchievement,
			Title:     "First Application",
			Message:   "Great start! You've submitted your first application. Keep applying to increase your chances.",
			CreatedAt: now.Add(-7 * 24 * time.Hour),
			Read:      true,
			Priority:  PriorityLow,
		},
	}
}
