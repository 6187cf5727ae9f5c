package pdf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"

	"pdfsummarizer/internal/models"
)

var (
	// ErrInvalidDocument means the file is not a readable PDF container.
	ErrInvalidDocument = errors.New("invalid or corrupted PDF file")
	// ErrEmptyDocument means no page yielded any extractable text.
	ErrEmptyDocument = errors.New("no text content found in PDF")
)

// Extractor pulls plain text out of PDF files via MuPDF.
type Extractor struct{}

func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract opens the PDF at path and returns its concatenated page text with
// page markers, plus the total page count. The source file is not modified.
func (e *Extractor) Extract(path string) (*models.Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	pages := make([]string, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		text, err := doc.Text(i)
		if err != nil {
			return nil, fmt.Errorf("extract text from page %d: %w", i+1, err)
		}
		pages = append(pages, text)
	}

	return assemble(pages)
}

// assemble joins non-empty pages with blank-line separators, prefixing each
// with a human-readable marker so the summarizer keeps positional context.
// Whitespace-only pages are skipped but still count toward PageCount.
func assemble(pages []string) (*models.Document, error) {
	parts := make([]string, 0, len(pages))
	for i, text := range pages {
		if strings.TrimSpace(text) == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("--- Page %d ---\n%s", i+1, text))
	}
	if len(parts) == 0 {
		return nil, ErrEmptyDocument
	}
	return &models.Document{
		Text:      strings.Join(parts, "\n\n"),
		PageCount: len(pages),
	}, nil
}
