package generator

import (
	"fmt"
	"strings"

	"tailor/internal/port"
)

// systemRules is the fixed instruction block for ATS resume tailoring. The tag
// format it demands is load-bearing: downstream parsing extracts the <RESUME>
// and <MATCH_REPORT> blocks from the completion.
const systemRules = `You are an expert resume writer specializing in ATS compliance.

Rules:
- Keep it factual. Do NOT invent experience, employers, or dates.
- Use plain, ATS-safe formatting: no tables, columns, images, headers/footers.
- Standard section headings: SUMMARY, SKILLS, EXPERIENCE, EDUCATION, CERTIFICATIONS (if any), PROJECTS (optional).
- Bullets should be concise and results-oriented. Prefer '-' bullets.
- Mirror relevant keywords/phrases from the JD naturally (no stuffing).
- Keep to 1–2 pages of text.
- Preserve job titles/employers/dates from the original resume unless user content provides updates.
- Where there is a relevant achievement you can rephrase it using JD language, but do not fabricate.

Return TWO blocks in this exact format:

<RESUME>
[ATS-optimized resume only]
</RESUME>

<MATCH_REPORT>
- Top keywords used
- Notable gaps (if any)
- Suggestions to strengthen fit (skills, certs, metrics)
</MATCH_REPORT>`

// BuildTailorInput assembles the two-part provider payload for one tailoring run.
func BuildTailorInput(resumeText, jobDescription string) port.GenerateInput {
	user := fmt.Sprintf("[RESUME]\n%s\n\n[JOB_DESCRIPTION]\n%s",
		strings.TrimSpace(resumeText), strings.TrimSpace(jobDescription))
	return port.GenerateInput{
		System: systemRules,
		User:   user,
	}
}
