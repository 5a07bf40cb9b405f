package parsers

import "fmt"

// ExtractionError indicates a document that could not be converted to text
// (corrupt stream, unsupported format). It is unrecoverable for the request.
type ExtractionError struct {
	Format string
	Reason string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed for %s: %s: %v", e.Format, e.Reason, e.Err)
	}
	return fmt.Sprintf("extraction failed for %s: %s", e.Format, e.Reason)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ParsingError indicates extracted text that is empty or too short to be a
// resume. Fields that merely could not be identified are never errors; they
// are reported as sentinel values in the structured result.
type ParsingError struct {
	Reason string
}

func (e *ParsingError) Error() string {
	return "resume parsing failed: " + e.Reason
}
