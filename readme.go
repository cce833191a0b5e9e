package docsync

import (
	"context"
	"strings"
)

// Fallbacks used when the README lacks the expected content.
const (
	DefaultHeadline  = "Management server for llama.cpp and MLX instances"
	FeaturesNotFound = "Features content not found in README.md"
)

// Template placeholders replaced in the docs index page.
const (
	HeadlinePlaceholder = "{{HEADLINE}}"
	FeaturesPlaceholder = "{{FEATURES}}"
)

// FeaturesHeading marks the README section copied into the docs.
const FeaturesHeading = "## Features"

// Readme holds the pieces of the project README shown on the docs index.
type Readme struct {
	Headline string `json:"headline"`
	Features string `json:"features"`
}

// ReadmeSource provides the raw project README.
type ReadmeSource interface {
	// ReadReadme returns the README contents.
	// Returns ENOTFOUND if the README does not exist.
	ReadReadme(ctx context.Context) (string, error)
}

// ExtractReadme pulls the headline and the features block out of a README.
// The headline is the first bold span; the features block is the trimmed
// body of the "## Features" section with a hard break on every line.
func ExtractReadme(readme string) Readme {
	r := Readme{
		Headline: DefaultHeadline,
		Features: FeaturesNotFound,
	}

	if headline, ok := FirstBoldSpan(readme); ok {
		r.Headline = headline
	}
	if features, ok := FindSection(readme, FeaturesHeading); ok {
		r.Features = AppendLineBreaks(strings.TrimSpace(features))
	}

	return r
}

// ApplyReadme fills the README placeholders of a docs page and points
// README-relative image paths at the docs image directory.
func ApplyReadme(markdown string, r Readme) string {
	markdown = strings.ReplaceAll(markdown, HeadlinePlaceholder, r.Headline)
	markdown = strings.ReplaceAll(markdown, FeaturesPlaceholder, r.Features)
	return strings.ReplaceAll(markdown, "docs/images/", "images/")
}
