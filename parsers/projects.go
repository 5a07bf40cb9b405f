package parsers

import (
	"regexp"
	"strings"
)

// ProjectEntry is one project with its inferred technology tags.
type ProjectEntry struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
}

// maxProjects bounds how many projects are extracted from one resume.
const maxProjects = 10

// maxProjectTechnologies bounds the technology tags per project.
const maxProjectTechnologies = 8

// minDescriptionLineLength discards short noise lines from descriptions.
const minDescriptionLineLength = 20

// projectDomainKeywords qualify a candidate title line as an actual project.
var projectDomainKeywords = []string{
	"ai", "ml", "machine learning", "deep learning", "python", "java", "react",
	"web", "mobile", "app", "system", "management", "detection", "chatbot",
	"analysis", "prediction", "classification", "recognition", "platform",
	"solution", "tool", "framework", "algorithm", "model", "dashboard",
	"automation", "optimization", "monitoring", "tracking", "processing",
}

// projectTechnologies is the vocabulary used to tag each project after the
// section scan.
var projectTechnologies = []string{
	"Python", "Java", "JavaScript", "React", "Node.js", "MongoDB", "MySQL",
	"AI", "ML", "Machine Learning", "Deep Learning", "TensorFlow", "PyTorch",
	"OpenCV", "Flutter", "Android", "iOS", "HTML", "CSS", "PHP", "C++", "C#",
	"Angular", "Vue", "Django", "Flask", "Spring", "Docker", "Kubernetes",
	"AWS", "Azure", "Git", "GitHub", "SQL", "NoSQL", "Redis", "Firebase",
}

var bulletPrefixes = []string{"•", "-", "o ", "▪", "●"}

var numberedItemRegex = regexp.MustCompile(`^\d+\.`)

// ProjectsExtractor segments a projects section into discrete entries.
type ProjectsExtractor struct{}

// NewProjectsExtractor creates a new projects extractor.
func NewProjectsExtractor() *ProjectsExtractor {
	return &ProjectsExtractor{}
}

// Extract scans for a short "project" header line, then treats qualifying
// lines as project titles and accumulates the rest as descriptions. The scan
// stops at a short "education" header. Names are unique case-insensitively
// across the result; at most ten projects are returned, and a placeholder
// entry stands in when none are found.
func (p *ProjectsExtractor) Extract(text string) []ProjectEntry {
	lines := cleanLines(text)

	var projects []ProjectEntry
	seen := make(map[string]bool)
	var current *ProjectEntry
	inSection := false
	projectCount := 0

	flush := func() {
		if current == nil || current.Name == "" {
			return
		}
		key := strings.ToLower(strings.TrimSpace(current.Name))
		if !seen[key] && len(projects) < maxProjects {
			projects = append(projects, *current)
			seen[key] = true
			projectCount++
		}
		current = nil
	}

	for _, line := range lines {
		lower := strings.ToLower(line)

		if strings.Contains(lower, "project") && wordCount(line) <= 3 {
			inSection = true
			continue
		}

		if inSection && strings.Contains(lower, "education") && wordCount(line) <= 3 {
			flush()
			break
		}

		if !inSection {
			continue
		}

		if p.isTitleLine(line, lower, projectCount) && containsAny(lower, projectDomainKeywords) {
			flush()
			current = &ProjectEntry{Name: line}
			continue
		}

		if current != nil && len(line) > minDescriptionLineLength {
			if current.Description != "" {
				current.Description += " " + line
			} else {
				current.Description = line
			}
		}
	}
	flush()

	for i := range projects {
		p.tagTechnologies(&projects[i])
	}

	if len(projects) == 0 {
		return []ProjectEntry{{
			Name:         "No projects section found",
			Description:  "Consider adding academic or personal projects to strengthen your resume and demonstrate your technical abilities",
			Technologies: []string{"Project technologies not specified"},
		}}
	}

	return projects
}

// isTitleLine applies the structural gates for a project title candidate.
func (p *ProjectsExtractor) isTitleLine(line, lower string, projectCount int) bool {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(line, prefix) {
			return false
		}
	}
	if numberedItemRegex.MatchString(line) {
		return false
	}
	words := wordCount(line)
	return words >= 3 && words <= 20 &&
		!strings.Contains(lower, "technologies") &&
		!strings.Contains(lower, "duration") &&
		!strings.Contains(lower, "description") &&
		projectCount < maxProjects
}

// tagTechnologies scans name plus description against the technology
// vocabulary. Projects without a usable description get sentinel values.
func (p *ProjectsExtractor) tagTechnologies(project *ProjectEntry) {
	if project.Description == "" {
		project.Description = "Project description not provided in resume"
		project.Technologies = []string{"Technologies not specified in resume"}
		return
	}

	combined := strings.ToLower(project.Name + " " + project.Description)
	var found []string
	for _, tech := range projectTechnologies {
		if strings.Contains(combined, strings.ToLower(tech)) {
			found = append(found, tech)
			if len(found) == maxProjectTechnologies {
				break
			}
		}
	}

	if len(found) == 0 {
		found = []string{"Technologies not specified in resume"}
	}
	project.Technologies = found
}
