package domain

import "errors"

var (
	ErrMissingResume         = errors.New("no resume content supplied")
	ErrMissingJobDescription = errors.New("no job description supplied")
	ErrCredentialMissing     = errors.New("no generator API key configured")
	ErrUnsupportedFileType   = errors.New("unsupported file type")
	ErrFileTooLarge          = errors.New("file exceeds maximum allowed size")
	ErrExtractionFailed      = errors.New("could not extract text from document")
	ErrEmptyCompletion       = errors.New("generator returned an empty completion")
	ErrGenerationFailed      = errors.New("text generation failed")
)
