package parsers

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// minResumeLength is the shortest extracted text we accept as a resume.
const minResumeLength = 50

// TextExtractor converts uploaded PDF, DOCX or plain-text documents into
// raw text for the resume parser.
type TextExtractor struct{}

// NewTextExtractor creates a new document text extractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Extract converts the document bytes to plain text based on the file
// extension. It returns an *ExtractionError for unsupported or malformed
// documents and a *ParsingError when the extracted text is too short to be
// a valid resume.
func (e *TextExtractor) Extract(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var text string
	var err error

	switch ext {
	case ".pdf":
		text, err = e.extractPDF(data)
	case ".docx":
		text, err = e.extractDocx(data)
	case ".txt":
		text = string(data)
	case ".doc":
		return "", &ExtractionError{Format: ext, Reason: "legacy .doc format is not supported, convert to .docx or .pdf"}
	default:
		return "", &ExtractionError{Format: ext, Reason: "unsupported file format"}
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", &ParsingError{Reason: "no text could be extracted from the file"}
	}
	if len(strings.TrimSpace(text)) < minResumeLength {
		return "", &ParsingError{Reason: "extracted text is too short to be a valid resume"}
	}

	return text, nil
}

func (e *TextExtractor) extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: ".pdf", Reason: "failed to read pdf", Err: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func (e *TextExtractor) extractDocx(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &ExtractionError{Format: ".docx", Reason: "failed to parse docx", Err: err}
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
