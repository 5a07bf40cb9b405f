package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExperienceExtractor_RealWork(t *testing.T) {
	extractor := NewExperienceExtractor()

	entries := extractor.Extract("Worked at TechCorp as Full-time Software Engineer\nSome other line")

	assert.Len(t, entries, 1)
	assert.Equal(t, "Worked at TechCorp as Full-time Software Engineer", entries[0].Duration)
	assert.NotEqual(t, "No professional work experience", entries[0].Company)
}

func TestExperienceExtractor_ExclusionWins(t *testing.T) {
	extractor := NewExperienceExtractor()

	// A work keyword on the same line as an exclusion keyword never counts.
	entries := extractor.Extract("Work experience gained through a final year project at college")

	assert.Len(t, entries, 1)
	assert.Equal(t, "No professional work experience", entries[0].Company)
	assert.Equal(t, "Student - No work history found", entries[0].Position)
	assert.Equal(t, "0 years", entries[0].Duration)
}

func TestExperienceExtractor_StudentPlaceholder(t *testing.T) {
	extractor := NewExperienceExtractor()

	entries := extractor.Extract("Built a chatbot\nDeveloped a dashboard\nAcademic coursework")

	assert.Len(t, entries, 1)
	assert.Contains(t, entries[0].Description, "student resume")
}

func TestExperienceExtractor_MultipleWorkLines(t *testing.T) {
	extractor := NewExperienceExtractor()

	entries := extractor.Extract("Employed at Acme Systems since 2021\nInternship at DataWorks during summer")

	assert.Len(t, entries, 2)
	for _, entry := range entries {
		assert.Equal(t, "Company from resume", entry.Company)
		assert.Equal(t, "Position from resume", entry.Position)
	}
}
