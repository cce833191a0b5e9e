package docsync_test

import (
	"testing"

	"github.com/fwojciec/docsync"
	"github.com/stretchr/testify/assert"
)

func TestFindSection(t *testing.T) {
	t.Parallel()

	t.Run("returns body up to next heading of same level", func(t *testing.T) {
		t.Parallel()

		body, ok := docsync.FindSection("## A\none\n### A.1\ntwo\n## B\nthree", "## A")

		assert.True(t, ok)
		assert.Equal(t, "one\n### A.1\ntwo", body)
	})

	t.Run("returns body up to end of document", func(t *testing.T) {
		t.Parallel()

		body, ok := docsync.FindSection("intro\n## A\none\ntwo", "## A")

		assert.True(t, ok)
		assert.Equal(t, "one\ntwo", body)
	})

	t.Run("requires the whole line to match", func(t *testing.T) {
		t.Parallel()

		_, ok := docsync.FindSection("## Features and more\nbody", "## Features")

		assert.False(t, ok)
	})

	t.Run("tolerates trailing whitespace on heading", func(t *testing.T) {
		t.Parallel()

		body, ok := docsync.FindSection("## A  \nbody", "## A")

		assert.True(t, ok)
		assert.Equal(t, "body", body)
	})

	t.Run("returns empty body for heading followed by next section", func(t *testing.T) {
		t.Parallel()

		body, ok := docsync.FindSection("## A\n## B\nmore", "## A")

		assert.True(t, ok)
		assert.Empty(t, body)
	})

	t.Run("reports missing section for heading on last line", func(t *testing.T) {
		t.Parallel()

		_, ok := docsync.FindSection("text\n## A", "## A")

		assert.False(t, ok)
	})

	t.Run("rejects non-heading", func(t *testing.T) {
		t.Parallel()

		_, ok := docsync.FindSection("Features\nbody", "Features")

		assert.False(t, ok)
	})
}

func TestFirstBoldSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{name: "simple", input: "a **b** c", want: "b", wantOK: true},
		{name: "first of several", input: "**one** and **two**", want: "one", wantOK: true},
		{name: "later line", input: "plain\n**bold here**", want: "bold here", wantOK: true},
		{name: "does not span lines", input: "**open\nclose**", wantOK: false},
		{name: "skips unclosed line", input: "**open\nthen **ok**", want: "ok", wantOK: true},
		{name: "none", input: "no bold", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := docsync.FirstBoldSpan(tt.input)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
