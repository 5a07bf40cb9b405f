package parsers

import "strings"

// ExperienceEntry is one unit of professional work history.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// workKeywords are strict indicators of actual employment.
var workKeywords = []string{
	"employed", "employee", "intern at", "internship at", "worked at",
	"job title", "position at", "company:", "employer:", "workplace:",
	"full-time", "part-time", "freelance work", "contract work",
	"professional experience", "work experience", "employment history",
}

// workExcludeKeywords mark academic or project lines that must never count
// as employment, even when a work keyword appears on the same line.
var workExcludeKeywords = []string{
	"project", "assignment", "coursework", "academic", "college project",
	"university project", "semester project", "final year project",
	"mini project", "major project", "capstone", "thesis", "research",
	"student", "course", "study", "developed a", "built a", "designed a",
}

// ExperienceExtractor classifies lines as genuine work history.
type ExperienceExtractor struct{}

// NewExperienceExtractor creates a new experience extractor.
func NewExperienceExtractor() *ExperienceExtractor {
	return &ExperienceExtractor{}
}

// Extract returns one entry per line that carries a work keyword and no
// exclusion keyword. Company/title segmentation is intentionally not
// attempted; the qualifying line is kept verbatim in Duration. When nothing
// qualifies the result is a single student-resume placeholder, never an
// empty list.
func (e *ExperienceExtractor) Extract(text string) []ExperienceEntry {
	var workLines []string

	for _, line := range cleanLines(text) {
		lower := strings.ToLower(line)
		if containsAny(lower, workKeywords) && !containsAny(lower, workExcludeKeywords) {
			workLines = append(workLines, line)
		}
	}

	if len(workLines) == 0 {
		return []ExperienceEntry{{
			Company:     "No professional work experience",
			Position:    "Student - No work history found",
			Duration:    "0 years",
			Description: "This is a student resume with academic projects only. Consider highlighting internships, part-time work, or volunteer experience.",
		}}
	}

	experience := make([]ExperienceEntry, 0, len(workLines))
	for _, line := range workLines {
		experience = append(experience, ExperienceEntry{
			Company:     "Company from resume",
			Position:    "Position from resume",
			Duration:    line,
			Description: "Professional work experience extracted from resume",
		})
	}

	return experience
}
