package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonalInfo_ContactScenario(t *testing.T) {
	extractor := NewPersonalInfoExtractor(nil)

	info := extractor.Extract("John Smith\njohn@example.com\n+91-9876543210\nBengaluru, Karnataka")

	assert.Equal(t, "John Smith", info.Name)
	assert.Equal(t, "john@example.com", info.Email)
	assert.Equal(t, "+91-9876543210", info.Phone)
	assert.Contains(t, info.Address, "Bengaluru")
}

func TestPersonalInfo_PhoneCascade(t *testing.T) {
	extractor := NewPersonalInfoExtractor(nil)

	tests := []struct {
		input string
		want  string
	}{
		{"Mobile: +91 9876543210", "+91-9876543210"},
		{"Mobile: +91-9876543210", "+91-9876543210"},
		{"Mobile: 91 9876543210", "+919876543210"},
		{"Mobile: 9876543210", "+91-9876543210"},
		{"Landline: 080-12345678", "Phone number not provided"},
		{"No contact details here", "Phone number not provided"},
	}

	for _, test := range tests {
		info := extractor.Extract(test.input)
		assert.Equal(t, test.want, info.Phone, "input: %s", test.input)
	}
}

func TestPersonalInfo_ProfileCascades(t *testing.T) {
	extractor := NewPersonalInfoExtractor(nil)

	tests := []struct {
		input        string
		wantLinkedIn string
		wantGitHub   string
	}{
		{
			input:        "https://www.linkedin.com/in/john-doe and https://github.com/johndoe",
			wantLinkedIn: "https://www.linkedin.com/in/john-doe",
			wantGitHub:   "https://github.com/johndoe",
		},
		{
			input:        "linkedin.com/in/jdoe github.com/jdoe",
			wantLinkedIn: "linkedin.com/in/jdoe",
			wantGitHub:   "github.com/jdoe",
		},
		{
			input:        "LinkedIn: johndoe\nGitHub - octocat",
			wantLinkedIn: "linkedin.com/in/johndoe",
			wantGitHub:   "github.com/octocat",
		},
		{
			input:        "no profiles mentioned",
			wantLinkedIn: "LinkedIn profile not provided",
			wantGitHub:   "GitHub profile not found",
		},
	}

	for _, test := range tests {
		info := extractor.Extract(test.input)
		assert.Equal(t, test.wantLinkedIn, info.LinkedIn, "input: %s", test.input)
		assert.Equal(t, test.wantGitHub, info.GitHub, "input: %s", test.input)
	}
}

func TestPersonalInfo_Website(t *testing.T) {
	extractor := NewPersonalInfoExtractor(nil)

	info := extractor.Extract("Portfolio: https://janedoe.dev\nlinkedin.com/in/janedoe")
	assert.Equal(t, "https://janedoe.dev", info.Website)

	info = extractor.Extract("Only linkedin.com/in/janedoe here")
	assert.Equal(t, "Personal website not mentioned", info.Website)
}

func TestPersonalInfo_NameFallbackSkipsContactLines(t *testing.T) {
	extractor := NewPersonalInfoExtractor(nil)

	info := extractor.Extract("Email: jane@example.com\nJane Doe Bengaluru\n9876543210")
	// Location tokens are stripped from the accepted name line.
	assert.Equal(t, "Jane Doe", info.Name)
}

func TestPersonalInfo_NameSentinel(t *testing.T) {
	extractor := NewPersonalInfoExtractor(nil)

	info := extractor.Extract("someone@example.com\n9876543210\nphone available on request for the hiring team only here")
	assert.Equal(t, "Name not clearly identified in resume", info.Name)
}

func TestPersonalInfo_TaggerPath(t *testing.T) {
	extractor := NewPersonalInfoExtractor(NewHeuristicTagger())

	assert.True(t, extractor.TaggerEnabled())

	info := extractor.Extract("Rahul Sharma\nBengaluru, India\nrahul@example.com")
	assert.Equal(t, "Rahul Sharma", info.Name)

	// Location-only text degrades to the sentinel, not a location name.
	info = extractor.Extract("Bengaluru Karnataka\n9876543210\ncontact@example.com for details")
	assert.Equal(t, "Name not clearly identified in resume", info.Name)
}

func TestPersonalInfo_EmailSentinel(t *testing.T) {
	extractor := NewPersonalInfoExtractor(nil)

	info := extractor.Extract("No address at example dot com to be found")
	assert.Equal(t, "Email address not found in resume", info.Email)
	assert.Equal(t, "Location not specified", info.Address)
}
