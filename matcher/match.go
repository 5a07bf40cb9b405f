package matcher

import (
	"math"
	"sort"
	"strings"
	"time"

	"resumematch/parsers"
)

// Scoring weights and caps.
const (
	skillsWeight     = 0.5
	experienceWeight = 0.3
	educationWeight  = 0.2

	mismatchScoreCap  = 25
	mismatchSkillsCap = 20

	defaultSkillsPercentage = 50

	studentExperiencePercentage = 25
	defaultExperiencePercentage = 75
	studentDefaultRequiredYears = 3

	educationPercentage = 80
)

// SkillsMatch reports the skill overlap between resume and job.
type SkillsMatch struct {
	MatchPercentage float64  `json:"match_percentage"`
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	FieldMismatch   bool     `json:"field_mismatch,omitempty"`
	MismatchReason  string   `json:"mismatch_reason,omitempty"`
}

// ExperienceMatch reports how the candidate's work history lines up with the
// job. The percentages are coarse fixed estimates, not computed from actual
// employment years.
type ExperienceMatch struct {
	MatchPercentage float64 `json:"match_percentage"`
	EstimatedYears  int     `json:"estimated_years"`
	RequiredYears   int     `json:"required_years"`
	ExperienceGap   int     `json:"experience_gap"`
	Note            string  `json:"note,omitempty"`
}

// EducationMatch is a fixed placeholder sub-score; education requirements
// are not evaluated against the extracted entries.
type EducationMatch struct {
	MatchPercentage  float64 `json:"match_percentage"`
	MeetsRequirement bool    `json:"meets_requirement"`
}

// MatchReport is the full result of scoring a resume against a job
// description. OverallScore is always within [0,100]; when FieldMismatch is
// set it is capped at 25 and the skills percentage at 20.
type MatchReport struct {
	OverallScore      float64         `json:"overall_score"`
	SkillsMatch       SkillsMatch     `json:"skills_match"`
	ExperienceMatch   ExperienceMatch `json:"experience_match"`
	EducationMatch    EducationMatch  `json:"education_match"`
	JobRequirements   JobRequirements `json:"job_requirements"`
	Recommendations   []string        `json:"recommendations"`
	MatchSummary      string          `json:"match_summary"`
	FieldMismatch     bool            `json:"field_mismatch"`
	AnalysisTimestamp time.Time       `json:"analysis_timestamp"`
}

// Keyword sets for field-mismatch detection. Resume skills and job text are
// scored against both sets.
var techFieldTokens = []string{
	"python", "java", "javascript", "ai", "ml", "programming", "software",
	"development", "algorithm",
}

var marketingFieldTokens = []string{
	"marketing", "branding", "campaign", "analytics", "lead generation",
	"engagement", "advertising",
}

// MatchScorer scores structured resume data against a job description. It is
// stateless and safe for concurrent use.
type MatchScorer struct{}

// NewMatchScorer creates a new scorer.
func NewMatchScorer() *MatchScorer {
	return &MatchScorer{}
}

// Score produces a match report. It is a total function: any well-formed
// resume and any job description text, including an empty one, yield a valid
// report without error.
func (m *MatchScorer) Score(resume *parsers.ResumeData, jobDescription string) MatchReport {
	requirements := ExtractJobRequirements(jobDescription)

	mismatch, mismatchReason := detectFieldMismatch(resume.Skills, jobDescription)
	student := isStudentResume(resume.Experience)

	experienceMatch := buildExperienceMatch(student, requirements)
	skillsMatch := buildSkillsMatch(resume.Skills, requirements, mismatch, mismatchReason)
	educationMatch := EducationMatch{
		MatchPercentage:  educationPercentage,
		MeetsRequirement: true,
	}

	overall := skillsMatch.MatchPercentage*skillsWeight +
		experienceMatch.MatchPercentage*experienceWeight +
		educationMatch.MatchPercentage*educationWeight
	if mismatch {
		overall = math.Min(overall, mismatchScoreCap)
	}
	overall = math.Round(overall*10) / 10

	return MatchReport{
		OverallScore:      overall,
		SkillsMatch:       skillsMatch,
		ExperienceMatch:   experienceMatch,
		EducationMatch:    educationMatch,
		JobRequirements:   requirements,
		Recommendations:   buildRecommendations(mismatch, mismatchReason, student),
		MatchSummary:      matchSummary(overall, mismatch, student),
		FieldMismatch:     mismatch,
		AnalysisTimestamp: time.Now(),
	}
}

// detectFieldMismatch compares the apparent domain of the resume skills with
// the apparent domain of the job text. The technical-resume condition is
// checked first and wins if both somehow hold.
func detectFieldMismatch(skills []string, jobDescription string) (bool, string) {
	jobLower := strings.ToLower(jobDescription)

	resumeTech := 0
	resumeMarketing := 0
	for _, skill := range skills {
		skillLower := strings.ToLower(skill)
		if containsAny(skillLower, techFieldTokens) {
			resumeTech++
		}
		if containsAny(skillLower, marketingFieldTokens) {
			resumeMarketing++
		}
	}

	jobTech := countTokens(jobLower, techFieldTokens)
	jobMarketing := countTokens(jobLower, marketingFieldTokens)

	if resumeTech > 3 && jobMarketing > 2 {
		return true, "Major field mismatch: Technical/Engineering resume vs Marketing position"
	}
	if resumeMarketing > 3 && jobTech > 2 {
		return true, "Major field mismatch: Marketing resume vs Technical position"
	}
	return false, ""
}

// isStudentResume recognizes the synthetic no-experience entry produced by
// the experience extractor.
func isStudentResume(experience []parsers.ExperienceEntry) bool {
	for _, entry := range experience {
		if strings.HasPrefix(strings.ToLower(entry.Company), "no professional") ||
			strings.HasPrefix(strings.ToLower(entry.Position), "student") ||
			strings.Contains(strings.ToLower(entry.Description), "student") {
			return true
		}
	}
	return false
}

func buildExperienceMatch(student bool, requirements JobRequirements) ExperienceMatch {
	if student {
		required := requirements.ExperienceYears
		if required == 0 {
			required = studentDefaultRequiredYears
		}
		return ExperienceMatch{
			MatchPercentage: studentExperiencePercentage,
			EstimatedYears:  0,
			RequiredYears:   required,
			ExperienceGap:   required,
			Note:            "Student resume - No professional work experience",
		}
	}
	return ExperienceMatch{
		MatchPercentage: defaultExperiencePercentage,
		EstimatedYears:  2,
		RequiredYears:   requirements.ExperienceYears,
		ExperienceGap:   0,
	}
}

func buildSkillsMatch(skills []string, requirements JobRequirements, mismatch bool, mismatchReason string) SkillsMatch {
	match := SkillsMatch{
		MatchedSkills: []string{},
		MissingSkills: []string{},
	}

	if len(requirements.RequiredSkills) == 0 {
		match.MatchPercentage = defaultSkillsPercentage
	} else {
		resumeSet := make(map[string]bool)
		for _, skill := range skills {
			resumeSet[strings.ToLower(skill)] = true
		}
		for _, skill := range requirements.RequiredSkills {
			if resumeSet[strings.ToLower(skill)] {
				match.MatchedSkills = append(match.MatchedSkills, strings.ToLower(skill))
			} else {
				match.MissingSkills = append(match.MissingSkills, strings.ToLower(skill))
			}
		}
		sort.Strings(match.MatchedSkills)
		sort.Strings(match.MissingSkills)
		match.MatchPercentage = float64(len(match.MatchedSkills)) / float64(len(requirements.RequiredSkills)) * 100
	}

	if mismatch {
		match.MatchPercentage = math.Min(match.MatchPercentage, mismatchSkillsCap)
		match.FieldMismatch = true
		match.MismatchReason = mismatchReason
	}

	return match
}

func buildRecommendations(mismatch bool, mismatchReason string, student bool) []string {
	if mismatch {
		return []string{
			mismatchReason,
			"Consider applying to positions that match your technical background",
			"Look for software development, AI/ML, or engineering roles instead",
			"Your skills in programming and AI are valuable in tech companies",
		}
	}
	if student {
		return []string{
			"Focus on entry-level positions or internships in your field",
			"Highlight your academic projects and technical skills",
			"Consider roles like 'Junior Developer', 'ML Intern', or 'Software Engineer Trainee'",
			"Emphasize your learning ability and project experience",
		}
	}
	return []string{}
}

// matchSummary picks the qualitative summary. Priority order matters:
// mismatch beats the student case, which beats the plain score bands.
func matchSummary(score float64, mismatch, student bool) string {
	switch {
	case mismatch:
		return "Poor match - Career field mismatch detected. Consider positions aligned with your technical background."
	case student && score < 30:
		return "Limited match for this role. Focus on entry-level positions in your field of study."
	case score >= 70:
		return "Good potential match for this position."
	case score >= 50:
		return "Moderate match with room for skill development."
	default:
		return "Low compatibility. Consider developing relevant skills or pursuing different opportunities."
	}
}

func countTokens(text string, tokens []string) int {
	count := 0
	for _, token := range tokens {
		if strings.Contains(text, token) {
			count++
		}
	}
	return count
}
