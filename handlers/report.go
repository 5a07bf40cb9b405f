package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"resumematch/matcher"
	"resumematch/parsers"
	"resumematch/utils"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// ReportRequest carries a previously analyzed resume back for export.
type ReportRequest struct {
	Resume   *parsers.ResumeData  `json:"resume" binding:"required"`
	JobMatch *matcher.MatchReport `json:"job_match"`
}

// ReportController exports analysis results as Word documents.
type ReportController struct {
	log *utils.Logger
}

// NewReportController creates the report exporter.
func NewReportController() *ReportController {
	return &ReportController{log: utils.NewLogger("report")}
}

// ExportDocx renders the posted analysis as a .docx attachment.
func (ctrl *ReportController) ExportDocx(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestError(c, "Invalid report payload", err)
		return
	}

	var buf bytes.Buffer
	if err := utils.WriteMatchReportDocx(&buf, req.Resume, req.JobMatch); err != nil {
		ctrl.log.Error("report generation failed", err)
		utils.InternalServerError(c, "Failed to generate report document", err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="resume-analysis.docx"`)
	c.Data(http.StatusOK, docxContentType, buf.Bytes())
}
