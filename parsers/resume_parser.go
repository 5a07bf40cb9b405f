package parsers

import (
	"encoding/json"
	"strings"
	"time"
)

// ResumeData is the structured result of parsing one resume. It is built
// once per request and not mutated afterwards. Unidentified fields hold
// sentinel strings and the entry lists are never empty.
type ResumeData struct {
	PersonalInfo   PersonalInfo      `json:"personal_info"`
	Experience     []ExperienceEntry `json:"experience"`
	Education      []EducationEntry  `json:"education"`
	Skills         []string          `json:"skills"`
	Projects       []ProjectEntry    `json:"projects"`
	RawTextLength  int               `json:"raw_text_length"`
	ParsedAt       time.Time         `json:"parsing_timestamp"`
	NameTaggerUsed bool              `json:"name_tagger_used"`
}

// ResumeParser orchestrates the section extractors into one structured
// record. Safe for concurrent use; all extractor state is read-only after
// construction.
type ResumeParser struct {
	personalInfo *PersonalInfoExtractor
	skills       *SkillsExtractor
	experience   *ExperienceExtractor
	education    *EducationExtractor
	projects     *ProjectsExtractor
}

// NewResumeParser creates a parser. tagger is the optional name-tagging
// capability; nil selects the heuristic name fallback.
func NewResumeParser(tagger NameTagger) *ResumeParser {
	return &ResumeParser{
		personalInfo: NewPersonalInfoExtractor(tagger),
		skills:       NewSkillsExtractor(),
		experience:   NewExperienceExtractor(),
		education:    NewEducationExtractor(),
		projects:     NewProjectsExtractor(),
	}
}

// Parse extracts structured resume data from raw text. It fails only for
// blank input; an otherwise unreadable resume still yields a complete record
// of sentinel values.
func (p *ResumeParser) Parse(rawText string) (*ResumeData, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, &ParsingError{Reason: "no text provided for parsing"}
	}

	return &ResumeData{
		PersonalInfo:   p.personalInfo.Extract(rawText),
		Experience:     p.experience.Extract(rawText),
		Education:      p.education.Extract(rawText),
		Skills:         p.skills.Extract(rawText),
		Projects:       p.projects.Extract(rawText),
		RawTextLength:  len(rawText),
		ParsedAt:       time.Now(),
		NameTaggerUsed: p.personalInfo.TaggerEnabled(),
	}, nil
}

// ToJSON renders the resume data as indented JSON.
func (r *ResumeData) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
