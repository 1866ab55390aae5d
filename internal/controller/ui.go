// Package controller provides output adapters for displaying resolved artifact paths.
package controller

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	m "gooze.dev/pkg/artifactpath/internal/model"
)

// OutputFormat selects how collections are rendered.
type OutputFormat string

// Available OutputFormat values.
const (
	FormatTable OutputFormat = "table"
	FormatYAML  OutputFormat = "yaml"
)

// ParseOutputFormat resolves a format name. An empty name selects FormatTable.
func ParseOutputFormat(value string) (OutputFormat, error) {
	switch OutputFormat(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatYAML:
		return FormatYAML, nil
	}

	return "", fmt.Errorf("unknown output format %q", value)
}

// UI defines how workflow results reach the user.
type UI interface {
	DisplayPath(ctx context.Context, path string) error
	DisplayHashes(ctx context.Context, hashes []m.HashResult) error
	DisplayArtifactSets(ctx context.Context, sets []m.ArtifactSet) error
}

// NewUI returns a UI writing to the command's output stream.
func NewUI(cmd *cobra.Command, format OutputFormat) UI {
	return NewSimpleUI(cmd, format)
}
