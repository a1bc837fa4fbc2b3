package domain

// TailorInput carries the resolved per-request input threaded through the pipeline.
// Exactly one resume source wins: extracted file text, pasted text, or assembled
// section fields, in that order of precedence.
type TailorInput struct {
	ResumeText     string
	JobDescription string
}

// Section is one recognized resume section with its body text.
type Section struct {
	Name SectionName `json:"name"`
	Body string      `json:"body"`
}

// TailoredResume is the full result of one tailoring run. Values are built once
// per request and never mutated afterwards.
type TailoredResume struct {
	// Resume is the extracted <RESUME> block, or the whole trimmed completion
	// when the model omitted the tags.
	Resume string `json:"resume"`
	// Report is the extracted <MATCH_REPORT> block; "—" when absent.
	Report string `json:"report"`
	// Sections lists recognized sections in canonical order. Empty means no
	// structure was detected and Resume should be displayed verbatim.
	Sections []Section `json:"sections"`
	// Warnings holds ATS lint suggestions in fixed check order.
	Warnings []string `json:"warnings"`
	// Model names the provider model that produced the completion.
	Model string `json:"model"`
}
