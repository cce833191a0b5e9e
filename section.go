package docsync

import (
	"strings"
	"unicode"
)

// FindSection returns the lines strictly between the heading line (e.g.
// "## Features") and the next heading of the same level, or the end of the
// document. It reports false when the heading is absent or is the last line.
func FindSection(markdown, heading string) (string, bool) {
	marker := headingMarker(heading)
	if marker == "" {
		return "", false
	}

	lines := strings.Split(markdown, "\n")
	start := -1
	for i, line := range lines {
		if strings.TrimRightFunc(line, unicode.IsSpace) == heading {
			start = i + 1
			break
		}
	}
	// A heading on the last line has no body.
	if start < 0 || start == len(lines) {
		return "", false
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if strings.HasPrefix(lines[i], marker) {
			end = i
			break
		}
	}

	return strings.Join(lines[start:end], "\n"), true
}

// headingMarker returns the "## " style prefix of an ATX heading, or "" if
// heading is not one.
func headingMarker(heading string) string {
	level := 0
	for level < len(heading) && heading[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(heading) || heading[level] != ' ' {
		return ""
	}
	return heading[:level+1]
}

// FirstBoldSpan returns the text of the first **bold** span that opens and
// closes on the same line.
func FirstBoldSpan(markdown string) (string, bool) {
	for _, line := range strings.Split(markdown, "\n") {
		open := strings.Index(line, "**")
		if open < 0 {
			continue
		}
		rest := line[open+2:]
		if end := strings.Index(rest, "**"); end >= 0 {
			return rest[:end], true
		}
	}
	return "", false
}
