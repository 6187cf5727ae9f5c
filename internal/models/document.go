package models

// Document holds the text extracted from one uploaded PDF. PageCount covers
// every page of the file, including pages that contributed no text.
type Document struct {
	Text      string
	PageCount int
}

// SummaryResult is the success response body for an upload.
type SummaryResult struct {
	Summary   string `json:"summary"`
	PageCount int    `json:"page_count"`
	FileName  string `json:"file_name"`
}
