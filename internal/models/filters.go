package models

// OptionAll is the "no constraint" selection of every enum filter.
const OptionAll = "all"

// Option is one selectable value of a filter control.
type Option struct {
	Value string
	Label string
}

var JobTypeOptions = []Option{
	{OptionAll, "All Types"},
	{"full-time", "Full-time"},
	{"part-time", "Part-time"},
}

var CompanySizeOptions = []Option{
	{OptionAll, "All Sizes"},
	{string(CompanyStartup), "Startup (1-50)"},
	{string(CompanySmall), "Small (51-200)"},
	{string(CompanyMedium), "Medium (201-1000)"},
	{string(CompanyLarge), "Large (1000+)"},
}

var ExperienceOptions = []Option{
	{OptionAll, "All Levels"},
	{string(ExperienceEntry), "Entry Level"},
	{string(ExperienceIntermediate), "Intermediate"},
	{string(ExperienceAdvanced), "Advanced"},
}

var WorkModeOptions = []Option{
	{OptionAll, "All Modes"},
	{string(WorkRemote), "Remote"},
	{string(WorkOnsite), "On-site"},
	{string(WorkHybrid), "Hybrid"},
}

var DurationOptions = []Option{
	{OptionAll, "All Durations"},
	{"short", "Short (3 months)"},
	{"medium", "Medium (4 months)"},
	{"long", "Long (5-6 months)"},
}

var PostedWithinOptions = []Option{
	{OptionAll, "Any Time"},
	{"today", "Today"},
	{"week", "Past Week"},
	{"month", "Past Month"},
}

// OptionLabel returns the display label of value, or value itself when unknown.
func OptionLabel(options []Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func IsValidOption(options []Option, value string) bool {
	for _, o := range options {
		if o.Value == value {
			return true
		}
	}
	return false
}
