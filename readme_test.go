package docsync_test

import (
	"testing"

	"github.com/fwojciec/docsync"
	"github.com/stretchr/testify/assert"
)

const sampleReadme = `# llamactl

**Unified management and routing for llama.cpp, MLX and vLLM models**

## Features

### Easy Model Management
- **Multiple Models**: run several instances at once
- **On-Demand Start**:   start instances when a request arrives

## Quick Links

- [Installation](docs/getting-started/installation.md)
`

func TestExtractReadme(t *testing.T) {
	t.Parallel()

	t.Run("extracts headline from first bold span", func(t *testing.T) {
		t.Parallel()

		r := docsync.ExtractReadme("# X\n\n**Hello world**\n")

		assert.Equal(t, "Hello world", r.Headline)
	})

	t.Run("falls back to default headline", func(t *testing.T) {
		t.Parallel()

		r := docsync.ExtractReadme("# X\n\nno emphasis here\n")

		assert.Equal(t, docsync.DefaultHeadline, r.Headline)
	})

	t.Run("extracts features up to next section", func(t *testing.T) {
		t.Parallel()

		r := docsync.ExtractReadme("## Features\n- a\n- b\n## Other\n")

		assert.Equal(t, "- a  \n- b  ", r.Features)
	})

	t.Run("extracts features up to end of document", func(t *testing.T) {
		t.Parallel()

		r := docsync.ExtractReadme("# X\n## Features\n\n- a\n\n- b\n\n")

		assert.Equal(t, "- a  \n\n- b  ", r.Features)
	})

	t.Run("falls back when features section is missing", func(t *testing.T) {
		t.Parallel()

		r := docsync.ExtractReadme("# X\n\n## Install\nrun it\n")

		assert.Equal(t, docsync.FeaturesNotFound, r.Features)
	})

	t.Run("falls back when features heading is the last line", func(t *testing.T) {
		t.Parallel()

		r := docsync.ExtractReadme("**Tagline**\n## Features")

		assert.Equal(t, docsync.FeaturesNotFound, r.Features)
	})

	t.Run("keeps subsections inside features", func(t *testing.T) {
		t.Parallel()

		r := docsync.ExtractReadme(sampleReadme)

		assert.Equal(t, "Unified management and routing for llama.cpp, MLX and vLLM models", r.Headline)
		assert.Equal(t,
			"### Easy Model Management  \n"+
				"- **Multiple Models**: run several instances at once  \n"+
				"- **On-Demand Start**:   start instances when a request arrives  ",
			r.Features)
	})
}

func TestApplyReadme(t *testing.T) {
	t.Parallel()

	t.Run("replaces placeholders", func(t *testing.T) {
		t.Parallel()

		page := "# Home\n\n{{HEADLINE}}\n\n## Features\n\n{{FEATURES}}\n"
		r := docsync.Readme{Headline: "Fast", Features: "- a  \n- b  "}

		got := docsync.ApplyReadme(page, r)

		assert.Equal(t, "# Home\n\nFast\n\n## Features\n\n- a  \n- b  \n", got)
	})

	t.Run("replaces every occurrence", func(t *testing.T) {
		t.Parallel()

		got := docsync.ApplyReadme("{{HEADLINE}} / {{HEADLINE}}", docsync.Readme{Headline: "x"})

		assert.Equal(t, "x / x", got)
	})

	t.Run("rewrites README image paths", func(t *testing.T) {
		t.Parallel()

		got := docsync.ApplyReadme("![dash](docs/images/dashboard.png)", docsync.Readme{})

		assert.Equal(t, "![dash](images/dashboard.png)", got)
	})

	t.Run("leaves page without placeholders alone", func(t *testing.T) {
		t.Parallel()

		page := "# Plain page\n\nNothing to do."

		assert.Equal(t, page, docsync.ApplyReadme(page, docsync.Readme{Headline: "h", Features: "f"}))
	})
}
