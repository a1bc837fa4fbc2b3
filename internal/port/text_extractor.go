package port

import "context"

// ExtractInput carries the data needed for document text extraction.
type ExtractInput struct {
	FileBytes   []byte
	ContentType string
	Filename    string
}

// TextExtractor abstracts plain-text extraction from uploaded documents.
type TextExtractor interface {
	Extract(ctx context.Context, input ExtractInput) (string, error)
}
