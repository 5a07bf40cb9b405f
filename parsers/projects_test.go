package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const projectsSection = `Projects
AI Chatbot Platform using Python
Built a conversational chatbot with Python and TensorFlow for campus queries.
Weather Prediction System
• Implemented a model for rainfall forecasting with scikit-learn pipelines.
Education
Forgotten Dashboard System after education`

func TestProjectsExtractor_SectionScan(t *testing.T) {
	extractor := NewProjectsExtractor()

	projects := extractor.Extract(projectsSection)

	// The short "Education" line ends the scan; nothing after it counts.
	assert.Len(t, projects, 2)
	assert.Equal(t, "AI Chatbot Platform using Python", projects[0].Name)
	assert.Equal(t, "Weather Prediction System", projects[1].Name)
	assert.Contains(t, projects[1].Description, "rainfall forecasting")
}

func TestProjectsExtractor_TechnologyTagging(t *testing.T) {
	extractor := NewProjectsExtractor()

	projects := extractor.Extract(projectsSection)

	assert.Contains(t, projects[0].Technologies, "Python")
	assert.Contains(t, projects[0].Technologies, "TensorFlow")
	assert.LessOrEqual(t, len(projects[0].Technologies), maxProjectTechnologies)
}

func TestProjectsExtractor_NameDeduplication(t *testing.T) {
	extractor := NewProjectsExtractor()

	text := `Projects
Fraud Detection System
Detects anomalous transactions with Python and gradient boosting models.
FRAUD DETECTION SYSTEM
Same project listed twice with different casing in this resume.`

	projects := extractor.Extract(text)

	assert.Len(t, projects, 1)
	names := make(map[string]int)
	for _, project := range projects {
		names[strings.ToLower(project.Name)]++
	}
	for name, count := range names {
		assert.Equal(t, 1, count, "duplicate project name %q", name)
	}
}

func TestProjectsExtractor_BulletAndShortLinesNotTitles(t *testing.T) {
	extractor := NewProjectsExtractor()

	text := `Projects
• Inventory Management System with barcode scanning
1. Numbered automation project entry
Tiny app
Realtime Traffic Monitoring Dashboard
Aggregates camera feeds and renders congestion heatmaps with React.`

	projects := extractor.Extract(text)

	assert.Len(t, projects, 1)
	assert.Equal(t, "Realtime Traffic Monitoring Dashboard", projects[0].Name)
}

func TestProjectsExtractor_SentinelValues(t *testing.T) {
	extractor := NewProjectsExtractor()

	text := `Projects
Handwriting Recognition Tool`

	projects := extractor.Extract(text)

	assert.Len(t, projects, 1)
	assert.Equal(t, "Project description not provided in resume", projects[0].Description)
	assert.Equal(t, []string{"Technologies not specified in resume"}, projects[0].Technologies)
}

func TestProjectsExtractor_Placeholder(t *testing.T) {
	extractor := NewProjectsExtractor()

	projects := extractor.Extract("No such section in this text at all")

	assert.Len(t, projects, 1)
	assert.Equal(t, "No projects section found", projects[0].Name)
}

func TestProjectsExtractor_CapsAtTen(t *testing.T) {
	extractor := NewProjectsExtractor()

	var sb strings.Builder
	sb.WriteString("Projects\n")
	titles := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta", "Iota", "Kappa", "Lambda", "Mu"}
	for _, title := range titles {
		sb.WriteString(title + " Monitoring Dashboard System\n")
		sb.WriteString("Collects runtime metrics and renders alerts for operators on call.\n")
	}

	projects := extractor.Extract(sb.String())
	assert.Len(t, projects, maxProjects)
}
