package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/docsync/cmd/docsync"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const indexPage = "# llamactl\n\n{{HEADLINE}}\n\n{{FEATURES}}\n\n![UI](docs/images/ui.png)\n"

// writeSite lays out an MkDocs site and returns the mkdocs.yml path.
func writeSite(t *testing.T, readme string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "docs"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mkdocs.yml"), []byte("site_name: llamactl\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "index.md"), []byte(indexPage), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs", "guide.md"), []byte("line one\nline two\n"), 0644))
	if readme != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte(readme), 0644))
	}
	return filepath.Join(dir, "mkdocs.yml")
}

func TestSyncCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("fills index page from README", func(t *testing.T) {
		t.Parallel()

		config := writeSite(t, "# llamactl\n\n**Run many models**\n\n## Features\n- a\n- b\n")
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"sync", "--config", config}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, "# llamactl\n\nRun many models\n\n- a  \n- b  \n\n![UI](images/ui.png)\n", stdout.String())
	})

	t.Run("passes page through when README is missing", func(t *testing.T) {
		t.Parallel()

		config := writeSite(t, "")
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"sync", "--config", config}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, indexPage, stdout.String())
		assert.Contains(t, stderr.String(), "skipping README sync")
	})

	t.Run("normalizes other pages", func(t *testing.T) {
		t.Parallel()

		config := writeSite(t, "")
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"sync", "--config", config, "--page", "guide.md", "--normalize"}, &stdout, &stderr)

		require.NoError(t, err)
		assert.Equal(t, "line one  \nline two  \n", stdout.String())
		assert.Empty(t, stderr.String())
	})

	t.Run("writes output file", func(t *testing.T) {
		t.Parallel()

		config := writeSite(t, "**Tagline**\n")
		output := filepath.Join(t.TempDir(), "site", "index.md")
		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"sync", "--config", config, "--output", output}, &stdout, &stderr)

		require.NoError(t, err)
		content, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Tagline")
		assert.Contains(t, string(content), "Features content not found in README.md")
		assert.Empty(t, stdout.String())
	})

	t.Run("reports missing config", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		var stdout, stderr bytes.Buffer

		err := m.Run(context.Background(), []string{"sync", "--config", filepath.Join(t.TempDir(), "mkdocs.yml")}, &stdout, &stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "mkdocs config not found")
	})
}
