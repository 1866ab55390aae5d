package adapter

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/artifactpath/internal/model"
)

// ExampleSource loads example identities from an external listing.
type ExampleSource interface {
	LoadExamples(path m.Path) ([]m.Example, error)
}

// exampleFile is the on-disk layout read by YAMLExampleSource:
//
//	examples:
//	  - ./spec/login_spec.rb:12
//	  - ./spec/login_spec.rb:30
type exampleFile struct {
	Examples []string `yaml:"examples"`
}

// YAMLExampleSource reads example locations from a YAML document.
type YAMLExampleSource struct{}

// NewYAMLExampleSource constructs a YAMLExampleSource.
func NewYAMLExampleSource() *YAMLExampleSource {
	return &YAMLExampleSource{}
}

// LoadExamples parses the file at path. Blank entries are rejected.
func (s *YAMLExampleSource) LoadExamples(path m.Path) ([]m.Example, error) {
	// #nosec G304 - path is supplied by the operator on the command line
	content, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read examples file: %w", err)
	}

	var doc exampleFile
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse examples file %s: %w", path, err)
	}

	for i, location := range doc.Examples {
		if strings.TrimSpace(location) == "" {
			return nil, fmt.Errorf("examples file %s: entry %d has an empty location", path, i)
		}
	}

	return m.ParseLocations(doc.Examples), nil
}
