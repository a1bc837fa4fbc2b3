package tailoring

import (
	"regexp"
	"strings"

	"tailor/internal/domain"
)

// sectionRes maps each canonical heading to its capture pattern: the heading on
// its own line, then everything up to the next heading-shaped line or end of
// text. The boundary predicate (a line of uppercase letters and spaces) is
// deliberately broader than the canonical list so an unexpected but
// capitalized heading still terminates the prior section's capture.
var sectionRes = func() map[domain.SectionName]*regexp.Regexp {
	res := make(map[domain.SectionName]*regexp.Regexp, len(domain.CanonicalSections))
	for _, name := range domain.CanonicalSections {
		res[name] = regexp.MustCompile(
			`(?ms)^` + string(name) + `[ \t]*$\n?(.*?)(?:^[A-Z][A-Z ]*[ \t]*$|\z)`,
		)
	}
	return res
}()

// SplitSections decomposes a resume block into its recognized sections,
// ordered by the canonical list regardless of where each heading appears in
// the text. A heading with a trimmed-empty body is omitted. An empty result
// means no structure was detected and the caller should fall back to showing
// the block verbatim.
//
// The boundary heuristic is known to cut a section short at any all-caps line,
// including acronym-only bullet text; see the package tests.
func SplitSections(resumeBlock string) []domain.Section {
	text := strings.ReplaceAll(resumeBlock, "\r\n", "\n")

	var sections []domain.Section
	for _, name := range domain.CanonicalSections {
		m := sectionRes[name].FindStringSubmatch(text)
		if m == nil {
			continue
		}
		body := strings.TrimSpace(m[1])
		if body == "" {
			continue
		}
		sections = append(sections, domain.Section{Name: name, Body: body})
	}
	return sections
}
