// Package extract turns uploaded resume documents into plain text.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"

	"tailor/internal/config"
	"tailor/internal/domain"
	"tailor/internal/port"
)

// Extractor implements port.TextExtractor for PDF, DOCX, and plain-text uploads.
type Extractor struct {
	maxBytes int64
}

// NewExtractor creates an Extractor enforcing the configured upload size limit.
func NewExtractor(cfg *config.UploadConfig) *Extractor {
	return &Extractor{maxBytes: cfg.MaxFileSizeMB * 1024 * 1024}
}

// Extract validates the upload and returns its plain text. Extraction failures
// wrap domain.ErrExtractionFailed and name the underlying cause; callers may
// still fall back to manually pasted text.
func (e *Extractor) Extract(_ context.Context, input port.ExtractInput) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.Filename), "."))
	fileType, ok := domain.AllowedExtensions[ext]
	if !ok {
		return "", domain.ErrUnsupportedFileType
	}

	if e.maxBytes > 0 && int64(len(input.FileBytes)) > e.maxBytes {
		return "", domain.ErrFileTooLarge
	}

	// Magic-byte sniffing guards against mislabeled uploads.
	sniffLen := min(len(input.FileBytes), 512)
	detected := http.DetectContentType(input.FileBytes[:sniffLen])
	if !contentTypeMatches(fileType, detected) {
		return "", domain.ErrUnsupportedFileType
	}

	switch fileType {
	case domain.FileTypePDF:
		text, err := extractPDF(input.FileBytes)
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
		}
		return text, nil
	case domain.FileTypeDOCX:
		text, err := extractDOCX(input.FileBytes)
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrExtractionFailed, err)
		}
		return text, nil
	default:
		return string(input.FileBytes), nil
	}
}

// contentTypeMatches checks a sniffed content type against the claimed file type.
// DOCX files sniff as zip archives.
func contentTypeMatches(fileType domain.FileType, detected string) bool {
	switch fileType {
	case domain.FileTypePDF:
		return detected == "application/pdf"
	case domain.FileTypeDOCX:
		return detected == "application/zip" ||
			strings.HasPrefix(detected, "application/vnd.openxmlformats")
	case domain.FileTypeTXT:
		return strings.HasPrefix(detected, "text/plain")
	default:
		return false
	}
}

func extractPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("reading pdf: %w", err)
	}

	var sb strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return strings.TrimSpace(sb.String()), nil
}

func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("parsing docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	return docxContentText(doc.Editable().GetContent()), nil
}

// docxContentText strips the WordprocessingML markup from document.xml content,
// emitting one line per paragraph.
func docxContentText(content string) string {
	// Paragraph ends become newlines before tags are dropped.
	content = strings.ReplaceAll(content, "</w:p>", "</w:p>\n")

	var sb strings.Builder
	inTag := false
	for _, r := range content {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			sb.WriteRune(r)
		}
	}
	return strings.TrimSpace(sb.String())
}
