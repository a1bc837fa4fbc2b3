package lint

import (
	"fmt"
	"regexp"
	"strings"
)

const defaultMaxLineLen = 160

// LongLinesChecker warns when lines exceed MaxLineLen characters.
type LongLinesChecker struct {
	MaxLineLen int
}

func (c *LongLinesChecker) RuleKey() string { return "long_lines" }

func (c *LongLinesChecker) Check(text string) string {
	max := c.MaxLineLen
	if max <= 0 {
		max = defaultMaxLineLen
	}
	count := 0
	for _, ln := range strings.Split(text, "\n") {
		if len(ln) > max {
			count++
		}
	}
	if count == 0 {
		return ""
	}
	return fmt.Sprintf("%d lines exceed ~%d chars; consider concise bullets.", count, max)
}

var nonASCIIRe = regexp.MustCompile(`[^\x00-\x7F]`)

// NonASCIIChecker warns when any character falls outside the 7-bit ASCII range.
type NonASCIIChecker struct{}

func (c *NonASCIIChecker) RuleKey() string { return "non_ascii" }

func (c *NonASCIIChecker) Check(text string) string {
	if !nonASCIIRe.MatchString(text) {
		return ""
	}
	return "Non-ASCII characters found; stick to plain text where possible."
}

var standardHeadingsRe = regexp.MustCompile(`(?i)skills|experience|education`)

// MissingHeadingsChecker warns when none of the standard heading words appear.
type MissingHeadingsChecker struct{}

func (c *MissingHeadingsChecker) RuleKey() string { return "missing_headings" }

func (c *MissingHeadingsChecker) Check(text string) string {
	if standardHeadingsRe.MatchString(text) {
		return ""
	}
	return "Missing standard headings like Skills, Experience, Education."
}
