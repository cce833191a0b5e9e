package docsync

import "strings"

// FormatReadme formats extracted README content for display.
// Sections are separated by blank lines.
func FormatReadme(r Readme) string {
	var sb strings.Builder
	sb.WriteString("## Headline\n")
	sb.WriteString(r.Headline)
	sb.WriteString("\n\n## Features\n")
	sb.WriteString(r.Features)
	return sb.String()
}
