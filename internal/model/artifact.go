package model

import (
	"fmt"
	"strings"
)

// ArtifactKind represents the category of a captured artifact.
type ArtifactKind string

const (
	// ArtifactHTMLCapture is the captured page HTML.
	ArtifactHTMLCapture ArtifactKind = "html"
	// ArtifactSystemScreenshot is a screenshot of the whole desktop.
	ArtifactSystemScreenshot ArtifactKind = "system-screenshot"
	// ArtifactPageScreenshot is a screenshot of the browser page only.
	ArtifactPageScreenshot ArtifactKind = "page-screenshot"
	// ArtifactRemoteControlLog is the remote control server log.
	ArtifactRemoteControlLog ArtifactKind = "remote-control-log"
)

// AllArtifactKinds returns every known kind in display order.
func AllArtifactKinds() []ArtifactKind {
	return []ArtifactKind{
		ArtifactHTMLCapture,
		ArtifactSystemScreenshot,
		ArtifactPageScreenshot,
		ArtifactRemoteControlLog,
	}
}

// Suffix returns the file name tail appended after "example_<hash>".
func (k ArtifactKind) Suffix() string {
	switch k {
	case ArtifactHTMLCapture:
		return ".html"
	case ArtifactSystemScreenshot:
		return "_system_screenshot.png"
	case ArtifactPageScreenshot:
		return "_page_screenshot.png"
	case ArtifactRemoteControlLog:
		return "_remote_control.log"
	}

	return ""
}

// Valid reports whether k is one of the known kinds.
func (k ArtifactKind) Valid() bool {
	return k.Suffix() != ""
}

func (k ArtifactKind) String() string {
	return string(k)
}

// ParseArtifactKind resolves a kind from its name. Matching is case-insensitive
// and underscores are accepted in place of dashes.
func ParseArtifactKind(value string) (ArtifactKind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "_", "-")

	kind := ArtifactKind(normalized)
	if !kind.Valid() {
		return "", fmt.Errorf("unknown artifact kind %q", value)
	}

	return kind, nil
}
