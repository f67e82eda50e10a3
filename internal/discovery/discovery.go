package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/dotcommander/kiroscore/internal/engine"
)

// defaultPatterns are the glob patterns used when the caller supplies none.
var defaultPatterns = []string{
	"**/*.yaml",
	"**/*.yml",
	"**/*.json",
}

// Document is a submission file on disk: the project entry plus optional
// presentation metadata.
type Document struct {
	Title             string `yaml:"title" json:"title"`
	engine.Submission `yaml:",inline"`
}

// Finder locates submission documents under a root directory.
type Finder struct {
	root     string
	patterns []string
}

// NewFinder creates a Finder for root. Empty patterns fall back to the
// default YAML/JSON globs.
func NewFinder(root string, patterns []string) *Finder {
	if len(patterns) == 0 {
		patterns = defaultPatterns
	}
	return &Finder{root: root, patterns: patterns}
}

// Find returns the paths of all matching submission files, sorted and
// de-duplicated.
func (f *Finder) Find() ([]string, error) {
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range f.patterns {
		matches, err := doublestar.Glob(os.DirFS(f.root), pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}
		for _, match := range matches {
			full := filepath.Join(f.root, match)
			if seen[full] {
				continue
			}
			seen[full] = true
			paths = append(paths, full)
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// LoadDocument parses one submission file. YAML parsing covers the JSON
// files too since YAML is a superset.
func LoadDocument(path string) (Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("error reading %s: %w", path, err)
	}
	return ParseDocument(content, path)
}

// ParseDocument parses submission file content.
func ParseDocument(content []byte, source string) (Document, error) {
	var doc Document
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return Document{}, fmt.Errorf("error parsing %s: %w", source, err)
	}
	return doc, nil
}
