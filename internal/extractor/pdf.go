// Package extractor pulls plain text out of uploaded PDF documents.
package extractor

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// PageResult holds the outcome of extracting one page. A page either
// yields text or a failure reason, never both.
type PageResult struct {
	Page int
	Text string
	Err  error
}

// PDFExtractor extracts text from in-memory PDF bytes.
type PDFExtractor struct {
	logger *zap.Logger
}

// NewPDFExtractor creates a PDF text extractor.
func NewPDFExtractor(logger *zap.Logger) *PDFExtractor {
	return &PDFExtractor{logger: logger}
}

// Extract parses the PDF and returns the concatenated text of all pages,
// newline-separated and trimmed. Pages that fail to extract contribute an
// empty string; only a failure to parse the container itself is an error.
func (e *PDFExtractor) Extract(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse PDF: %w", err)
	}

	pages := make([]PageResult, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		pages = append(pages, extractPage(reader, i))
	}
	for _, pr := range pages {
		if pr.Err != nil {
			e.logger.Warn("page extraction failed",
				zap.Int("page", pr.Page),
				zap.Error(pr.Err))
		}
	}
	return joinPages(pages), nil
}

func extractPage(reader *pdf.Reader, num int) (result PageResult) {
	result.Page = num
	// The pdf library panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			result.Text = ""
			result.Err = fmt.Errorf("panic extracting page %d: %v", num, r)
		}
	}()

	page := reader.Page(num)
	if page.V.IsNull() {
		return result
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		result.Err = err
		return result
	}
	result.Text = text
	return result
}

// joinPages reduces per-page results to the document text. Failed pages
// have empty text, so they only contribute separators that the final
// trim and the caller's length check absorb.
func joinPages(pages []PageResult) string {
	parts := make([]string, len(pages))
	for i, pr := range pages {
		parts[i] = pr.Text
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
