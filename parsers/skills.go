package parsers

import (
	"sort"
	"strings"
)

// skillsVocabulary is the canonical skill list the extractor recognizes.
// Matches are reported with this casing regardless of how the resume spells
// the skill.
var skillsVocabulary = []string{
	// Programming languages
	"Python", "Java", "JavaScript", "C++", "C#", "C", "PHP", "Ruby", "Go", "Swift",
	"Kotlin", "Scala", "R", "MATLAB", "TypeScript", "Dart", "Rust", "Perl",

	// Web technologies
	"HTML", "CSS", "React", "Angular", "Vue", "Node.js", "Express", "Django",
	"Flask", "Spring", "Laravel", "Bootstrap", "jQuery", "Sass", "Less",

	// Databases
	"MySQL", "PostgreSQL", "MongoDB", "SQLite", "Redis", "Oracle", "SQL Server",
	"Firebase", "DynamoDB", "Cassandra", "Neo4j", "SQL",

	// Cloud and devops
	"AWS", "Azure", "Google Cloud", "Docker", "Kubernetes", "Jenkins", "Git",
	"GitHub", "GitLab", "CI/CD", "Terraform", "Ansible",

	// Data science and ML
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Scikit-learn",
	"Pandas", "NumPy", "Matplotlib", "Seaborn", "Jupyter", "Keras", "OpenCV",
	"Data Science", "Data Analysis", "Statistics", "Big Data", "Hadoop", "Spark",

	// Mobile
	"Android", "iOS", "React Native", "Flutter", "Xamarin",

	// Other
	"Linux", "Windows", "MacOS", "REST API", "GraphQL", "Microservices",
	"Blockchain", "Unity", "Unreal Engine", "AI", "Artificial Intelligence",
	"Computer Vision", "NLP", "Natural Language Processing",
}

// SkillsExtractor matches resume text against the canonical skill vocabulary.
type SkillsExtractor struct{}

// NewSkillsExtractor creates a new skills extractor.
func NewSkillsExtractor() *SkillsExtractor {
	return &SkillsExtractor{}
}

// Extract returns the canonical labels of every vocabulary skill found in
// the text, sorted by label. Each term is tested as-is plus lowercase,
// uppercase and no-space variants, all case-insensitively. An empty result
// is replaced with a single sentinel entry.
func (s *SkillsExtractor) Extract(text string) []string {
	textLower := strings.ToLower(text)
	found := make(map[string]bool)

	for _, skill := range skillsVocabulary {
		variants := []string{skill, strings.ToLower(skill), strings.ToUpper(skill), strings.ReplaceAll(skill, " ", "")}
		for _, variant := range variants {
			if strings.Contains(textLower, strings.ToLower(variant)) {
				found[skill] = true
				break
			}
		}
	}

	skills := make([]string, 0, len(found))
	for skill := range found {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	if len(skills) == 0 {
		return []string{"No technical skills clearly identified - consider adding a skills section"}
	}

	return skills
}
