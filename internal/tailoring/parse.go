// Package tailoring holds the response-parsing core: extracting the tagged
// blocks from a raw model completion and re-splitting the resume block into
// its named sections.
package tailoring

import (
	"regexp"
	"strings"
)

var (
	resumeTagRe = regexp.MustCompile(`(?is)<RESUME>(.*?)</RESUME>`)
	reportTagRe = regexp.MustCompile(`(?is)<MATCH_REPORT>(.*?)</MATCH_REPORT>`)
)

// Blocks is the pair of payloads extracted from one model completion.
type Blocks struct {
	// Resume is never empty when the input is non-empty: if no <RESUME> tag
	// matches, the whole trimmed completion becomes the resume block.
	Resume string
	// Report is empty when no <MATCH_REPORT> tag matches; callers render a
	// placeholder rather than nothing.
	Report string
}

// ExtractBlocks pulls the <RESUME> and <MATCH_REPORT> payloads out of a raw
// completion. Tags are matched case-insensitively, first opening tag to first
// subsequent closing tag. Malformed input is never an error: a tag-omitting
// completion degrades to the whole text being treated as the resume.
func ExtractBlocks(raw string) Blocks {
	var b Blocks

	if m := resumeTagRe.FindStringSubmatch(raw); m != nil {
		b.Resume = strings.TrimSpace(m[1])
	}
	if m := reportTagRe.FindStringSubmatch(raw); m != nil {
		b.Report = strings.TrimSpace(m[1])
	}

	if b.Resume == "" {
		b.Resume = strings.TrimSpace(raw)
	}
	return b
}
