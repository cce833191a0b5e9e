package main_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	main "github.com/fwojciec/docsync/cmd/docsync"
	"github.com/fwojciec/docsync/goldmark"
	"github.com/fwojciec/docsync/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("normalizes file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "page.md")
		require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0644))

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.NormalizeCmd{File: path}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "one  \ntwo  \n", stdout.String())
	})

	t.Run("renders html with hard breaks", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdin:    strings.NewReader("one\ntwo"),
			Stdout:   stdout,
			Stderr:   &bytes.Buffer{},
			Renderer: goldmark.NewRenderer(),
		}

		cmd := &main.NormalizeCmd{HTML: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "<p>one<br>")
	})

	t.Run("returns render error", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdin:  strings.NewReader("text"),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Renderer: &mock.Renderer{
				RenderFn: func(string) (string, error) {
					return "", errors.New("render failed")
				},
			},
		}

		cmd := &main.NormalizeCmd{HTML: true}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "render failed")
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
		}

		cmd := &main.NormalizeCmd{File: filepath.Join(t.TempDir(), "missing.md")}
		err := cmd.Run(deps)

		assert.Error(t, err)
	})
}
