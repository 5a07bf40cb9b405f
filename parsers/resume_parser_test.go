package parsers

import (
	"strings"
	"testing"
)

const sampleResume = `John Smith
john@example.com
+91-9876543210
Bengaluru, Karnataka

Skills
Python, Java, JavaScript, Machine Learning, TensorFlow, AWS

Work Experience
Worked at TechCorp as Full-time Software Engineer

Education
B.E. Computer Science 2018 - 2022
ABC Engineering College, Bengaluru

Projects
AI Chatbot Platform using Python
Built a conversational chatbot with Python and TensorFlow for campus queries.
`

func TestResumeParser_Basic(t *testing.T) {
	parser := NewResumeParser(nil)

	result, err := parser.Parse(sampleResume)
	if err != nil {
		t.Fatalf("Parser failed: %v", err)
	}

	if result.PersonalInfo.Name != "John Smith" {
		t.Errorf("Expected name 'John Smith', got '%s'", result.PersonalInfo.Name)
	}
	if result.PersonalInfo.Email != "john@example.com" {
		t.Errorf("Expected email 'john@example.com', got '%s'", result.PersonalInfo.Email)
	}
	if result.PersonalInfo.Phone != "+91-9876543210" {
		t.Errorf("Expected phone '+91-9876543210', got '%s'", result.PersonalInfo.Phone)
	}
	if !strings.Contains(result.PersonalInfo.Address, "Bengaluru") {
		t.Errorf("Expected address to contain 'Bengaluru', got '%s'", result.PersonalInfo.Address)
	}

	if len(result.Skills) == 0 {
		t.Error("Should have extracted skills")
	}
	found := false
	for _, skill := range result.Skills {
		if skill == "Python" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected skills to contain 'Python', got %v", result.Skills)
	}

	if len(result.Experience) == 0 {
		t.Fatal("Experience list must never be empty")
	}
	if result.Experience[0].Company == "No professional work experience" {
		t.Error("Expected a real work entry, got the student placeholder")
	}
	hasWorkLine := false
	for _, exp := range result.Experience {
		if strings.Contains(exp.Duration, "TechCorp") {
			hasWorkLine = true
		}
	}
	if !hasWorkLine {
		t.Errorf("Expected a work entry mentioning TechCorp, got %v", result.Experience)
	}

	if len(result.Education) == 0 {
		t.Fatal("Education list must never be empty")
	}
	if !strings.Contains(result.Education[0].Degree, "B.E.") {
		t.Errorf("Expected degree to contain 'B.E.', got '%s'", result.Education[0].Degree)
	}

	if len(result.Projects) == 0 {
		t.Fatal("Projects list must never be empty")
	}
	if result.Projects[0].Name != "AI Chatbot Platform using Python" {
		t.Errorf("Unexpected project name '%s'", result.Projects[0].Name)
	}

	if result.RawTextLength != len(sampleResume) {
		t.Errorf("Expected raw text length %d, got %d", len(sampleResume), result.RawTextLength)
	}
	if result.NameTaggerUsed {
		t.Error("Tagger was not configured but NameTaggerUsed is set")
	}
}

func TestResumeParser_EmptyInput(t *testing.T) {
	parser := NewResumeParser(nil)

	for _, input := range []string{"", "   ", "\n\n\t"} {
		if _, err := parser.Parse(input); err == nil {
			t.Errorf("Expected error for blank input %q", input)
		}
	}
}

func TestResumeParser_NeverEmptyLists(t *testing.T) {
	parser := NewResumeParser(nil)

	// Text with nothing recognizable still yields placeholder entries and
	// populated personal info fields.
	result, err := parser.Parse("zzzz zzzz zzzz zzzz zzzz")
	if err != nil {
		t.Fatalf("Parser failed: %v", err)
	}

	if len(result.Experience) != 1 || len(result.Education) != 1 || len(result.Projects) != 1 {
		t.Errorf("Expected single placeholder entries, got %d/%d/%d",
			len(result.Experience), len(result.Education), len(result.Projects))
	}

	for field, value := range map[string]string{
		"name":     result.PersonalInfo.Name,
		"email":    result.PersonalInfo.Email,
		"phone":    result.PersonalInfo.Phone,
		"address":  result.PersonalInfo.Address,
		"linkedin": result.PersonalInfo.LinkedIn,
		"github":   result.PersonalInfo.GitHub,
		"website":  result.PersonalInfo.Website,
	} {
		if value == "" {
			t.Errorf("PersonalInfo field %s must never be empty", field)
		}
	}
}

func TestResumeParser_Idempotent(t *testing.T) {
	parser := NewResumeParser(nil)

	first, err := parser.Parse(sampleResume)
	if err != nil {
		t.Fatalf("Parser failed: %v", err)
	}
	second, err := parser.Parse(sampleResume)
	if err != nil {
		t.Fatalf("Parser failed: %v", err)
	}

	if first.PersonalInfo != second.PersonalInfo {
		t.Error("PersonalInfo differs between identical parses")
	}
	if len(first.Skills) != len(second.Skills) {
		t.Fatalf("Skill counts differ: %d vs %d", len(first.Skills), len(second.Skills))
	}
	for i := range first.Skills {
		if first.Skills[i] != second.Skills[i] {
			t.Errorf("Skill %d differs: %s vs %s", i, first.Skills[i], second.Skills[i])
		}
	}
	if len(first.Experience) != len(second.Experience) ||
		len(first.Education) != len(second.Education) ||
		len(first.Projects) != len(second.Projects) {
		t.Error("Entry list lengths differ between identical parses")
	}
}
