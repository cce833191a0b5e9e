// Package mkdocs adapts docsync's markdown transforms to an MkDocs site:
// it reads mkdocs.yml and runs the page hooks over docs pages.
package mkdocs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fwojciec/docsync"
	"gopkg.in/yaml.v3"
)

// DefaultDocsDir is the MkDocs default for docs_dir.
const DefaultDocsDir = "docs"

// Config is the subset of mkdocs.yml the hooks need.
type Config struct {
	Path     string
	SiteName string
	DocsDir  string
}

// LoadConfig reads the MkDocs configuration at path.
//
// The file is decoded as a node tree rather than into a struct so that
// Python-specific tags (e.g. !!python/name:) used by MkDocs plugins do not
// cause errors.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, docsync.Errorf(docsync.ENOTFOUND, "mkdocs config not found at %s", path)
	} else if err != nil {
		return nil, err
	}
	return ParseConfig(path, data)
}

// ParseConfig parses mkdocs.yml contents. path is recorded so relative
// directories resolve against the config file's directory.
func ParseConfig(path string, data []byte) (*Config, error) {
	cfg := &Config{Path: path, DocsDir: DefaultDocsDir}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, docsync.Errorf(docsync.EINVALID, "invalid mkdocs config %s: %s", path, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return cfg, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, docsync.Errorf(docsync.EINVALID, "mkdocs config %s must be a mapping", path)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			continue
		}
		switch key.Value {
		case "site_name":
			cfg.SiteName = value.Value
		case "docs_dir":
			if value.Value != "" {
				cfg.DocsDir = value.Value
			}
		}
	}

	return cfg, nil
}

// Dir returns the directory holding mkdocs.yml.
func (c *Config) Dir() string {
	return filepath.Dir(c.Path)
}

// DocsPath returns the docs directory.
func (c *Config) DocsPath() string {
	if filepath.IsAbs(c.DocsDir) {
		return c.DocsDir
	}
	return filepath.Join(c.Dir(), c.DocsDir)
}

// ReadmePath returns the README.md that sits beside mkdocs.yml.
func (c *Config) ReadmePath() string {
	return filepath.Join(c.Dir(), "README.md")
}
