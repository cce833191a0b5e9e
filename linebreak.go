package docsync

import (
	"strings"
	"unicode"
)

// hardBreak is the trailing marker that forces a line break in rendered markdown.
const hardBreak = "  "

const fence = "```"

// punctuationTokens are standalone lines that never get a hard break.
var punctuationTokens = map[string]bool{
	".":   true,
	"!":   true,
	"?":   true,
	":":   true,
	";":   true,
	fence: true,
	"---": true,
	",":   true,
}

// lineExemption reports whether a prose line must be left untouched.
// stripped is the line without surrounding whitespace.
type lineExemption func(line, stripped string) bool

var lineExemptions = []lineExemption{
	isHeading,
	isBlockquote,
	isTableRow,
	hasHardBreak,
	isRule,
	isHTML,
	isPunctuationToken,
}

func isHeading(_, stripped string) bool { return strings.HasPrefix(stripped, "#") }

func isBlockquote(_, stripped string) bool { return strings.HasPrefix(stripped, ">") }

func isTableRow(_, stripped string) bool { return strings.Contains(stripped, "|") }

func hasHardBreak(line, _ string) bool { return strings.HasSuffix(line, hardBreak) }

func isRule(_, stripped string) bool { return strings.HasPrefix(stripped, "---") }

func isHTML(_, stripped string) bool {
	return strings.HasPrefix(stripped, "<") || strings.HasSuffix(stripped, ">")
}

func isPunctuationToken(_, stripped string) bool { return punctuationTokens[stripped] }

func isExempt(line, stripped string) bool {
	for _, exempt := range lineExemptions {
		if exempt(line, stripped) {
			return true
		}
	}
	return false
}

// NormalizeLineBreaks appends a markdown hard break to every prose line.
// Headings, blockquotes, tables, HTML, rules, standalone punctuation, blank
// lines, fenced code and lines already ending in a hard break are kept as is.
// The result has exactly as many lines as the input.
//
// A fence without a closing partner leaves the rest of the document inside
// the code block.
func NormalizeLineBreaks(markdown string) string {
	lines := strings.Split(markdown, "\n")
	inCodeBlock := false

	for i, line := range lines {
		stripped := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(stripped, fence):
			inCodeBlock = !inCodeBlock
		case inCodeBlock, stripped == "", isExempt(line, stripped):
		default:
			lines[i] = breakLine(line)
		}
	}

	return strings.Join(lines, "\n")
}

// AppendLineBreaks appends a hard break to every non-blank line without
// any exemptions.
func AppendLineBreaks(markdown string) string {
	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = breakLine(line)
		}
	}
	return strings.Join(lines, "\n")
}

func breakLine(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace) + hardBreak
}
