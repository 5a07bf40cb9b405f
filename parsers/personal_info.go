package parsers

import (
	"regexp"
	"strings"
)

// PersonalInfo holds the identity and contact fields extracted from a resume.
// Every field is always populated; a field that could not be identified holds
// a human-readable sentinel string, never an empty value.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Website  string `json:"website"`
}

// locationKeywords are city/state/country tokens used both to strip location
// words out of name candidates and to spot the address line. Indian locale,
// matching the phone patterns below.
var locationKeywords = []string{
	"bengaluru", "bangalore", "mumbai", "delhi", "chennai", "hyderabad",
	"pune", "kolkata", "karnataka", "maharashtra", "india",
}

// contactMarkers disqualify a line from being a name candidate.
var contactMarkers = []string{"email", "phone", "mobile", "@", "linkedin", "github", "www"}

// PersonalInfoExtractor derives name and contact details from raw resume
// text using ordered pattern cascades. The optional tagger improves name
// detection; a nil tagger falls back to line heuristics.
type PersonalInfoExtractor struct {
	tagger NameTagger

	emailRegex      *regexp.Regexp
	digitRegex      *regexp.Regexp
	phoneRegexes    []*regexp.Regexp
	linkedinRegexes []*regexp.Regexp
	githubRegexes   []*regexp.Regexp
	websiteRegex    *regexp.Regexp
}

// NewPersonalInfoExtractor compiles the extraction patterns. tagger may be nil.
func NewPersonalInfoExtractor(tagger NameTagger) *PersonalInfoExtractor {
	return &PersonalInfoExtractor{
		tagger:     tagger,
		emailRegex: regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		digitRegex: regexp.MustCompile(`[0-9]`),
		// Indian mobile numbering only. Ordered: explicit +91, bare 91
		// prefix, then a plain 10-digit mobile number.
		phoneRegexes: []*regexp.Regexp{
			regexp.MustCompile(`\+91[\s-]?[6-9]\d{9}`),
			regexp.MustCompile(`91[\s-]?[6-9]\d{9}`),
			regexp.MustCompile(`[6-9]\d{9}`),
		},
		// Priority order is load-bearing: full URL, bare domain, www
		// domain, then the three label styles. First match wins.
		linkedinRegexes: []*regexp.Regexp{
			regexp.MustCompile(`(?i)https?://(?:www\.)?linkedin\.com/in/[\w-]+/?`),
			regexp.MustCompile(`(?i)linkedin\.com/in/[\w-]+/?`),
			regexp.MustCompile(`(?i)www\.linkedin\.com/in/[\w-]+/?`),
			regexp.MustCompile(`(?i)linkedin:\s*([^\s]+)`),
			regexp.MustCompile(`(?i)linkedin\s*-\s*([^\s]+)`),
			regexp.MustCompile(`(?i)linkedin\s*:\s*linkedin\.com/in/([\w-]+)`),
		},
		githubRegexes: []*regexp.Regexp{
			regexp.MustCompile(`(?i)https?://(?:www\.)?github\.com/[\w-]+/?`),
			regexp.MustCompile(`(?i)github\.com/[\w-]+/?`),
			regexp.MustCompile(`(?i)www\.github\.com/[\w-]+/?`),
			regexp.MustCompile(`(?i)github:\s*([^\s]+)`),
			regexp.MustCompile(`(?i)github\s*-\s*([^\s]+)`),
			regexp.MustCompile(`(?i)github\s*:\s*github\.com/([\w-]+)`),
		},
		websiteRegex: regexp.MustCompile(`www\.[\w.-]+\.[a-z]{2,}|https?://[\w.-]+\.[a-z]{2,}`),
	}
}

// TaggerEnabled reports whether the optional name-tagging capability is set.
func (p *PersonalInfoExtractor) TaggerEnabled() bool {
	return p.tagger != nil
}

// Extract pulls personal information out of the raw resume text.
func (p *PersonalInfoExtractor) Extract(text string) PersonalInfo {
	lines := cleanLines(text)

	return PersonalInfo{
		Name:     p.extractName(text, lines),
		Email:    p.extractEmail(text),
		Phone:    p.extractPhone(text),
		Address:  p.extractAddress(lines),
		LinkedIn: p.extractProfile(text, p.linkedinRegexes, "linkedin.com", "linkedin.com/in/", "LinkedIn profile not provided"),
		GitHub:   p.extractProfile(text, p.githubRegexes, "github.com", "github.com/", "GitHub profile not found"),
		Website:  p.extractWebsite(text),
	}
}

func (p *PersonalInfoExtractor) extractName(text string, lines []string) string {
	if p.tagger != nil {
		return p.extractNameTagged(text)
	}
	return p.extractNameFallback(lines)
}

// extractNameTagged runs the tagger over the start of the document and takes
// the first PERSON span that is not also a known location.
func (p *PersonalInfoExtractor) extractNameTagged(text string) string {
	head := text
	if len(head) > 1000 {
		head = head[:1000]
	}

	entities := p.tagger.Tag(head)

	locations := make(map[string]bool)
	for _, ent := range entities {
		if ent.Label == LabelLocation {
			locations[strings.ToLower(ent.Text)] = true
		}
	}

	for _, ent := range entities {
		if ent.Label != LabelPerson {
			continue
		}
		candidate := strings.TrimSpace(ent.Text)
		if candidate == "" || locations[strings.ToLower(candidate)] {
			continue
		}
		if containsLocationKeyword(strings.ToLower(candidate)) {
			continue
		}
		return candidate
	}

	return "Name not clearly identified in resume"
}

// extractNameFallback scans the top of the resume for a name-looking line.
func (p *PersonalInfoExtractor) extractNameFallback(lines []string) string {
	limit := len(lines)
	if limit > 5 {
		limit = 5
	}

	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		if containsAny(lower, contactMarkers) {
			continue
		}
		if p.digitRegex.MatchString(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		var nameParts []string
		for _, word := range words {
			if !isLocationWord(word) {
				nameParts = append(nameParts, word)
			}
		}
		if len(nameParts) >= 1 {
			return strings.Join(nameParts, " ")
		}
	}

	// Looser second pass over the very first lines.
	limit = len(lines)
	if limit > 3 {
		limit = 3
	}
	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		if len(line) > 2 && len(line) < 50 &&
			!p.digitRegex.MatchString(line) &&
			!strings.Contains(line, "@") &&
			!strings.Contains(lower, "phone") {
			return line
		}
	}

	return "Name not clearly identified in resume"
}

func (p *PersonalInfoExtractor) extractEmail(text string) string {
	if email := p.emailRegex.FindString(text); email != "" {
		return email
	}
	return "Email address not found in resume"
}

func (p *PersonalInfoExtractor) extractPhone(text string) string {
	for _, re := range p.phoneRegexes {
		match := re.FindString(text)
		if match == "" {
			continue
		}
		return normalizePhone(match)
	}
	return "Phone number not provided"
}

// normalizePhone strips separators and forces the +91 country prefix.
func normalizePhone(phone string) string {
	phone = strings.NewReplacer(" ", "", "-", "").Replace(phone)
	if !strings.HasPrefix(phone, "+91") {
		if strings.HasPrefix(phone, "91") {
			return "+" + phone
		}
		return "+91-" + phone
	}
	return strings.Replace(phone, "+91", "+91-", 1)
}

func (p *PersonalInfoExtractor) extractAddress(lines []string) string {
	for _, line := range lines {
		if containsLocationKeyword(strings.ToLower(line)) {
			return line
		}
	}
	return "Location not specified"
}

// extractProfile walks an ordered pattern cascade. Full URL and bare domain
// matches are stored as-is; label matches are normalized onto the profile
// domain with trailing slashes stripped.
func (p *PersonalInfoExtractor) extractProfile(text string, patterns []*regexp.Regexp, domain, prefix, sentinel string) string {
	for _, re := range patterns {
		groups := re.FindStringSubmatch(text)
		if groups == nil {
			continue
		}
		match := groups[0]
		if len(groups) > 1 && groups[1] != "" {
			match = groups[1]
		}

		lower := strings.ToLower(match)
		if strings.HasPrefix(lower, "http") ||
			strings.HasPrefix(lower, domain) ||
			strings.HasPrefix(lower, "www."+domain) {
			return match
		}
		return prefix + strings.Trim(match, "/")
	}
	return sentinel
}

func (p *PersonalInfoExtractor) extractWebsite(text string) string {
	for _, match := range p.websiteRegex.FindAllString(strings.ToLower(text), -1) {
		if !strings.Contains(match, "linkedin") && !strings.Contains(match, "github") {
			return match
		}
	}
	return "Personal website not mentioned"
}

// cleanLines splits text into trimmed, non-blank lines.
func cleanLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func containsLocationKeyword(lower string) bool {
	return containsAny(lower, locationKeywords)
}

func isLocationWord(word string) bool {
	lower := strings.ToLower(word)
	for _, loc := range locationKeywords {
		if lower == loc {
			return true
		}
	}
	return false
}
