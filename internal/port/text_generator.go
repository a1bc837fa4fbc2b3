package port

import "context"

// GenerateInput carries the two-part payload sent to a text generation provider.
type GenerateInput struct {
	// System is the fixed instruction block (the ATS rule set).
	System string
	// User is the templated payload embedding resume text and job description.
	User string
}

// GenerateOutput contains the raw completion from a provider.
type GenerateOutput struct {
	Text  string
	Model string
}

// TextGenerator abstracts an LLM text generation provider. Implementations accept
// two strings and return one string or a typed failure; they must not retain state
// across calls beyond rate-limit bookkeeping.
type TextGenerator interface {
	Generate(ctx context.Context, input GenerateInput) (*GenerateOutput, error)
}
