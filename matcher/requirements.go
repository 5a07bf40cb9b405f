package matcher

import (
	"regexp"
	"strconv"
	"strings"
)

// Job field classifications.
const (
	FieldMarketing   = "marketing"
	FieldTechnical   = "technical"
	FieldDataScience = "data_science"
	FieldUnspecified = "unspecified"
)

// JobRequirements is the coarse requirement profile derived from a free-text
// job description.
type JobRequirements struct {
	RequiredSkills  []string `json:"required_skills"`
	ExperienceYears int      `json:"experience_years"`
	EducationLevel  string   `json:"education_level"`
	JobField        string   `json:"job_field"`
}

// jobSkills is the short skill list tested against job descriptions. Smaller
// than the resume vocabulary on purpose: job postings name far fewer skills
// explicitly.
var jobSkills = []string{
	"Python", "Java", "JavaScript", "React", "Node.js", "SQL",
	"Marketing", "Analytics", "Branding", "Campaign Management",
	"Data Analysis", "Machine Learning", "AI",
}

var marketingFieldKeywords = []string{"marketing", "brand", "campaign", "advertising"}
var technicalFieldKeywords = []string{"software", "developer", "programming", "technical"}
var dataScienceFieldKeywords = []string{"data", "analytics", "scientist"}

// experienceYearPatterns are tried in order; the first captured integer wins.
var experienceYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)[+\-\s]*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`minimum\s*(\d+)\s*years?`),
	regexp.MustCompile(`at least\s*(\d+)\s*years?`),
}

// ExtractJobRequirements derives a requirement profile from a job
// description. An empty description yields a valid low-information profile:
// unspecified field, zero years, no skills.
func ExtractJobRequirements(jobDescription string) JobRequirements {
	requirements := JobRequirements{
		RequiredSkills: []string{},
		JobField:       FieldUnspecified,
	}

	textLower := strings.ToLower(jobDescription)

	// Marketing is checked first; first matching field wins.
	switch {
	case containsAny(textLower, marketingFieldKeywords):
		requirements.JobField = FieldMarketing
	case containsAny(textLower, technicalFieldKeywords):
		requirements.JobField = FieldTechnical
	case containsAny(textLower, dataScienceFieldKeywords):
		requirements.JobField = FieldDataScience
	}

	for _, skill := range jobSkills {
		if strings.Contains(textLower, strings.ToLower(skill)) {
			requirements.RequiredSkills = append(requirements.RequiredSkills, skill)
		}
	}

	for _, pattern := range experienceYearPatterns {
		groups := pattern.FindStringSubmatch(textLower)
		if groups == nil {
			continue
		}
		years, err := strconv.Atoi(groups[1])
		if err != nil {
			continue
		}
		requirements.ExperienceYears = years
		break
	}

	return requirements
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
