package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/artifactpath/internal/model"
)

// SimpleUI implements UI on top of the cobra command's output writer.
type SimpleUI struct {
	cmd    *cobra.Command
	format OutputFormat
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, format OutputFormat) *SimpleUI {
	if format == "" {
		format = FormatTable
	}

	return &SimpleUI{cmd: cmd, format: format}
}

// Configure redirects output to cmd and switches the rendering format.
func (s *SimpleUI) Configure(cmd *cobra.Command, format OutputFormat) {
	if cmd != nil {
		s.cmd = cmd
	}

	if format != "" {
		s.format = format
	}
}

// DisplayPath prints a single path on its own line.
func (s *SimpleUI) DisplayPath(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", path)

	return nil
}

// DisplayHashes prints the digest of each example location.
func (s *SimpleUI) DisplayHashes(ctx context.Context, hashes []m.HashResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format == FormatYAML {
		return s.printYAML(hashes)
	}

	rows := make([][]string, 0, len(hashes))
	for _, hash := range hashes {
		rows = append(rows, []string{hash.Location, hash.Hash})
	}

	s.printf("%s", renderTable([]string{"Location", "Hash"}, rows, nil))

	return nil
}

// DisplayArtifactSets prints every artifact path of every example.
func (s *SimpleUI) DisplayArtifactSets(ctx context.Context, sets []m.ArtifactSet) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.format == FormatYAML {
		return s.printYAML(sets)
	}

	s.printf("%s", renderArtifactTable(sets))

	return nil
}

func renderArtifactTable(sets []m.ArtifactSet) string {
	kinds := m.AllArtifactKinds()
	rows := make([][]string, 0, len(sets)*len(kinds))

	for _, set := range sets {
		for _, kind := range kinds {
			rows = append(rows, []string{set.Location, kind.String(), string(set.Paths[kind])})
		}
	}

	footer := []string{fmt.Sprintf("Total Examples %d", len(sets)), "", fmt.Sprintf("%d", len(rows))}

	return renderTable([]string{"Location", "Kind", "Path"}, rows, footer)
}

func renderTable(header []string, rows [][]string, footer []string) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)

	if footer != nil {
		table.SetFooter(footer)
	}

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) printYAML(value any) error {
	encoder := yaml.NewEncoder(s.cmd.OutOrStdout())
	encoder.SetIndent(2)

	if err := encoder.Encode(value); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}

	return encoder.Close()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
