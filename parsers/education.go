package parsers

import (
	"regexp"
	"strings"
)

// EducationEntry is one academic qualification.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
	GPA         string `json:"gpa"`
}

// maxDegreeLength bounds the degree text kept on an entry.
const maxDegreeLength = 150

// summaryKeywords flag objective/profile lines that must never be read as
// education entries.
var summaryKeywords = []string{
	"results-driven", "seeking", "objective", "summary", "profile",
	"committed to", "specializing in", "passionate about", "looking for",
	"dedicated", "motivated", "experienced in", "skilled in",
}

// certExcludeKeywords filter out certifications, bootcamps and vendor
// training so they do not masquerade as degrees.
var certExcludeKeywords = []string{
	"certification", "certificate", "certified", "training", "course",
	"workshop", "seminar", "bootcamp", "online course", "mooc",
	"udemy", "coursera", "edx", "khan academy", "pluralsight",
	"aws certified", "google certified", "microsoft certified",
	"oracle certified", "cisco certified", "comptia", "pmp",
	"scrum master", "agile", "itil", "six sigma", "lean",
}

// institutionKeywords identify a line naming a school in the lookahead
// window after a degree line.
var institutionKeywords = []string{
	"college", "university", "institute", "school", "iit", "nit",
	"technology", "engineering", "science",
}

// sectionEndKeywords close the education section when they appear on a short
// header-like line.
var sectionEndKeywords = []string{"project", "experience", "skill", "certification", "training"}

// academicPatterns recognize degree and institution phrasings, including
// Indian school-board qualifications.
var academicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:b\.?e\.?|bachelor.*?engineering|be\s+computer)\b`),
	regexp.MustCompile(`\b(?:b\.?tech|bachelor.*?technology)\b`),
	regexp.MustCompile(`\b(?:b\.?sc\.?|bachelor.*?science)\b`),
	regexp.MustCompile(`\b(?:b\.?a\.?|bachelor.*?arts)\b`),
	regexp.MustCompile(`\b(?:m\.?e\.?|master.*?engineering)\b`),
	regexp.MustCompile(`\b(?:m\.?tech|master.*?technology)\b`),
	regexp.MustCompile(`\b(?:m\.?sc\.?|master.*?science)\b`),
	regexp.MustCompile(`\b(?:m\.?a\.?|master.*?arts)\b`),
	regexp.MustCompile(`\b(?:mba|master.*?business)\b`),
	regexp.MustCompile(`\b(?:phd|ph\.d\.?|doctorate)\b`),
	regexp.MustCompile(`\b(?:computer science|electronics|mechanical|civil)\b`),
	regexp.MustCompile(`\b(?:engineering college|institute of technology)\b`),
	regexp.MustCompile(`\b(?:university|college|institute).*?(?:technology|engineering|science)\b`),
	regexp.MustCompile(`\b(?:kseeb|cbse|icse|state board).*?(?:12th|plus.*?two|intermediate|puc)\b`),
	regexp.MustCompile(`\b(?:10th|sslc|matriculation)\b`),
	regexp.MustCompile(`\b(?:high school|secondary school)\b`),
}

// broadAcademicRegex is the final gate a degree line must pass before an
// entry is created, on top of the pattern match above.
var broadAcademicRegex = regexp.MustCompile(`\b(?:engineering|science|arts|technology|bachelor|master|phd|school|college|university)\b`)

var yearRegex = regexp.MustCompile(`\b(20\d{2}|19\d{2})\b`)

// EducationExtractor walks the resume line by line with an education-section
// flag and a pattern cascade for degree lines.
type EducationExtractor struct{}

// NewEducationExtractor creates a new education extractor.
func NewEducationExtractor() *EducationExtractor {
	return &EducationExtractor{}
}

// Extract locates academic qualifications. The scan tracks whether it is
// inside an "education" section; outside the section a line must match one
// of the academic patterns to be considered.
func (e *EducationExtractor) Extract(text string) []EducationEntry {
	lines := cleanLines(text)
	var education []EducationEntry

	inSection := false

scan:
	for i, line := range lines {
		lower := strings.ToLower(line)

		if containsAny(lower, summaryKeywords) {
			continue
		}
		if countKeywords(lower, summaryKeywords) >= 2 {
			continue
		}

		if strings.Contains(lower, "education") && wordCount(line) <= 3 {
			inSection = true
			continue
		}

		if inSection && containsAny(lower, sectionEndKeywords) && wordCount(line) <= 3 {
			break
		}

		if containsAny(lower, certExcludeKeywords) {
			continue
		}

		if !inSection && !matchesAnyPattern(lower) {
			continue
		}

		for _, pattern := range academicPatterns {
			if !pattern.MatchString(lower) {
				continue
			}
			// Re-checked on the matching pattern as well; kept even
			// though the scan above already skipped these lines.
			if containsAny(lower, certExcludeKeywords) {
				continue
			}

			years := yearRegex.FindAllString(line, -1)

			end := i + 5
			if end > len(lines) {
				end = len(lines)
			}
			institution := ""
			for _, context := range lines[i:end] {
				if containsAny(strings.ToLower(context), certExcludeKeywords) {
					continue
				}
				if containsAny(strings.ToLower(context), institutionKeywords) {
					institution = context
					break
				}
				years = append(years, yearRegex.FindAllString(context, -1)...)
			}

			if broadAcademicRegex.MatchString(lower) {
				entry := EducationEntry{
					Institution: institution,
					Degree:      truncateDegree(line),
					Year:        formatYears(years),
					GPA:         "Not provided",
				}
				if entry.Institution == "" {
					entry.Institution = "Educational Institution"
				}

				duplicate := false
				for _, existing := range education {
					if strings.EqualFold(existing.Degree, entry.Degree) {
						duplicate = true
						break
					}
				}
				if !duplicate {
					education = append(education, entry)
				}
			}
			continue scan
		}
	}

	if len(education) == 0 {
		return []EducationEntry{{
			Institution: "Academic education information not clearly identified",
			Degree:      "Please ensure academic qualifications are clearly formatted in your resume",
			Year:        "N/A",
			GPA:         "Not provided",
		}}
	}

	return education
}

func matchesAnyPattern(lower string) bool {
	for _, pattern := range academicPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}

func truncateDegree(line string) string {
	runes := []rune(line)
	if len(runes) > maxDegreeLength {
		return string(runes[:maxDegreeLength]) + "..."
	}
	return line
}

// formatYears joins the first two discovered years as a range, keeps a
// single year as-is, and falls back to a sentinel.
func formatYears(years []string) string {
	switch {
	case len(years) >= 2:
		return years[0] + " - " + years[1]
	case len(years) == 1:
		return years[0]
	default:
		return "Year not specified"
	}
}

func countKeywords(s string, keywords []string) int {
	count := 0
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			count++
		}
	}
	return count
}

func wordCount(line string) int {
	return len(strings.Fields(line))
}
