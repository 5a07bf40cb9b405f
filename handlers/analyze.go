package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"resumematch/matcher"
	"resumematch/parsers"
	"resumematch/utils"
)

// allowedExtensions are the upload formats accepted at the boundary. Legacy
// .doc is accepted here and rejected by the extractor with a descriptive
// error.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".doc":  true,
	".txt":  true,
}

// FileInfo describes the uploaded document.
type FileInfo struct {
	Filename   string `json:"filename"`
	FileType   string `json:"file_type"`
	FileSize   int64  `json:"file_size"`
	TextLength int    `json:"text_length"`
}

// AnalysisResult is the payload returned for one analyzed resume.
type AnalysisResult struct {
	AnalysisID string               `json:"analysis_id"`
	FileInfo   FileInfo             `json:"file_info"`
	Resume     *parsers.ResumeData  `json:"resume"`
	JobMatch   *matcher.MatchReport `json:"job_match,omitempty"`
}

// AnalyzeController handles resume upload and analysis requests.
type AnalyzeController struct {
	extractor *parsers.TextExtractor
	parser    *parsers.ResumeParser
	scorer    *matcher.MatchScorer
	log       *utils.Logger
}

// NewAnalyzeController wires the extraction pipeline. tagger may be nil.
func NewAnalyzeController(tagger parsers.NameTagger) *AnalyzeController {
	return &AnalyzeController{
		extractor: parsers.NewTextExtractor(),
		parser:    parsers.NewResumeParser(tagger),
		scorer:    matcher.NewMatchScorer(),
		log:       utils.NewLogger("analyze"),
	}
}

// Analyze accepts a multipart resume upload with an optional job_description
// form field, parses the resume, and scores it against the job description
// when one is provided.
func (ctrl *AnalyzeController) Analyze(c *gin.Context) {
	file, header, err := c.Request.FormFile("resume")
	if err != nil {
		utils.BadRequestError(c, "No resume file selected", err)
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedExtensions[ext] {
		utils.BadRequestError(c, "Invalid file type. Please upload PDF, DOC, DOCX, or TXT files.", nil)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		utils.InternalServerError(c, "Failed to read uploaded file", err)
		return
	}

	text, err := ctrl.extractor.Extract(data, header.Filename)
	if err != nil {
		ctrl.failExtraction(c, header.Filename, err)
		return
	}

	resume, err := ctrl.parser.Parse(text)
	if err != nil {
		ctrl.failExtraction(c, header.Filename, err)
		return
	}

	result := AnalysisResult{
		AnalysisID: uuid.NewString(),
		FileInfo: FileInfo{
			Filename:   header.Filename,
			FileType:   ext,
			FileSize:   header.Size,
			TextLength: len(text),
		},
		Resume: resume,
	}

	if jobDescription := strings.TrimSpace(c.PostForm("job_description")); jobDescription != "" {
		report := ctrl.scorer.Score(resume, jobDescription)
		result.JobMatch = &report
	}

	ctrl.log.Info("resume analyzed", map[string]interface{}{
		"analysis_id": result.AnalysisID,
		"file_type":   ext,
		"text_length": len(text),
		"job_match":   result.JobMatch != nil,
	})

	utils.SuccessResponse(c, http.StatusOK, "Resume analyzed successfully", result)
}

// failExtraction maps pipeline errors onto HTTP responses.
func (ctrl *AnalyzeController) failExtraction(c *gin.Context, filename string, err error) {
	ctrl.log.Error("resume analysis failed", err, map[string]interface{}{"filename": filename})

	var extractionErr *parsers.ExtractionError
	var parsingErr *parsers.ParsingError
	switch {
	case errors.As(err, &extractionErr):
		utils.UnprocessableError(c, "Could not extract text from the document", err)
	case errors.As(err, &parsingErr):
		utils.UnprocessableError(c, "The document does not look like a valid resume", err)
	default:
		utils.InternalServerError(c, "Error processing resume", err)
	}
}

// Health reports service liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
