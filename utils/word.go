package utils

import (
	"fmt"
	"io"
	"strings"

	"baliance.com/gooxml/document"

	"resumematch/matcher"
	"resumematch/parsers"
)

// WriteMatchReportDocx renders an analyzed resume and its optional match
// report as a Word document.
func WriteMatchReportDocx(w io.Writer, resume *parsers.ResumeData, report *matcher.MatchReport) error {
	doc := document.New()

	addHeading(doc, "Resume Analysis Report")

	addHeading(doc, "Candidate")
	addLine(doc, "Name: "+resume.PersonalInfo.Name)
	addLine(doc, "Email: "+resume.PersonalInfo.Email)
	addLine(doc, "Phone: "+resume.PersonalInfo.Phone)
	addLine(doc, "Location: "+resume.PersonalInfo.Address)

	addHeading(doc, "Skills")
	addLine(doc, strings.Join(resume.Skills, ", "))

	addHeading(doc, "Education")
	for _, edu := range resume.Education {
		addLine(doc, fmt.Sprintf("%s - %s (%s)", edu.Degree, edu.Institution, edu.Year))
	}

	addHeading(doc, "Projects")
	for _, project := range resume.Projects {
		addLine(doc, project.Name)
		addLine(doc, "Technologies: "+strings.Join(project.Technologies, ", "))
	}

	if report != nil {
		addHeading(doc, "Job Match")
		addLine(doc, fmt.Sprintf("Overall score: %.1f / 100", report.OverallScore))
		addLine(doc, fmt.Sprintf("Skills match: %.1f%%", report.SkillsMatch.MatchPercentage))
		addLine(doc, fmt.Sprintf("Experience match: %.1f%%", report.ExperienceMatch.MatchPercentage))
		addLine(doc, "Summary: "+report.MatchSummary)
		for _, rec := range report.Recommendations {
			addLine(doc, "- "+rec)
		}
	}

	return doc.Save(w)
}

func addHeading(doc *document.Document, text string) {
	run := doc.AddParagraph().AddRun()
	run.Properties().SetBold(true)
	run.AddText(text)
}

func addLine(doc *document.Document, text string) {
	doc.AddParagraph().AddRun().AddText(text)
}
