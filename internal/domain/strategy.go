// Package domain implements the artifact path strategy and the workflows built on it.
package domain

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"gooze.dev/pkg/artifactpath/internal/adapter"
	m "gooze.dev/pkg/artifactpath/internal/model"
)

const (
	resourcesDirName = "resources"
	examplePrefix    = "example_"
)

// StrategyOption customizes a FilePathStrategy at construction time.
type StrategyOption func(*FilePathStrategy)

// WithHasher sets the digest used for example identities. Defaults to SHA-256.
func WithHasher(hasher adapter.Hasher) StrategyOption {
	return func(s *FilePathStrategy) {
		if hasher != nil {
			s.hasher = hasher
		}
	}
}

// WithExampleHashFunc replaces example hashing entirely. The function is only
// called for examples that carry a non-empty location.
func WithExampleHashFunc(fn func(m.Example) (string, error)) StrategyOption {
	return func(s *FilePathStrategy) {
		s.hashFunc = fn
	}
}

// FilePathStrategy maps a report location and an example identity to the
// files holding the example's captured artifacts:
//
//	<report dir>/resources/<report name>/example_<hash><suffix>
//
// All fields are set once by NewFilePathStrategy, so a strategy can be shared
// between goroutines.
type FilePathStrategy struct {
	fs         adapter.FileSystem
	hasher     adapter.Hasher
	hashFunc   func(m.Example) (string, error)
	baseDir    m.Path
	reportName string
}

// NewFilePathStrategy resolves reportLocation to its absolute parent directory.
func NewFilePathStrategy(fs adapter.FileSystem, reportLocation string, opts ...StrategyOption) (*FilePathStrategy, error) {
	if fs == nil {
		return nil, fmt.Errorf("%w: filesystem is nil", ErrInvalidArgument)
	}

	if strings.TrimSpace(reportLocation) == "" {
		return nil, fmt.Errorf("%w: report location is empty", ErrInvalidArgument)
	}

	abs, err := fs.Abs(reportLocation)
	if err != nil {
		return nil, fmt.Errorf("%w: resolve report location %q: %w", ErrInvalidArgument, reportLocation, err)
	}

	strategy := &FilePathStrategy{
		fs:         fs,
		hasher:     adapter.SHA256Hasher{},
		baseDir:    m.Path(filepath.Dir(string(abs))),
		reportName: reportBaseName(reportLocation),
	}

	for _, opt := range opts {
		opt(strategy)
	}

	return strategy, nil
}

// reportBaseName strips the directory and the extension from location.
// Dot files such as ".html" keep their name.
func reportBaseName(location string) string {
	base := filepath.Base(location)

	name := strings.TrimSuffix(base, filepath.Ext(base))
	if name == "" {
		return base
	}

	return name
}

// BaseReportDir returns the absolute directory containing the report.
func (s *FilePathStrategy) BaseReportDir() m.Path {
	return s.baseDir
}

// ReportBaseName returns the report file name without directory or extension.
func (s *FilePathStrategy) ReportBaseName() string {
	return s.reportName
}

// HasherName returns the name of the digest used for example identities.
func (s *FilePathStrategy) HasherName() string {
	return s.hasher.Name()
}

// ExampleHash returns the digest of the example's location.
func (s *FilePathStrategy) ExampleHash(example m.Example) (string, error) {
	location, err := exampleLocation(example)
	if err != nil {
		return "", err
	}

	if s.hashFunc != nil {
		return s.hashFunc(example)
	}

	return s.hasher.Sum([]byte(location)), nil
}

func exampleLocation(example m.Example) (string, error) {
	if example == nil {
		return "", fmt.Errorf("%w: example is nil", ErrInvalidArgument)
	}

	location := example.Location()
	if strings.TrimSpace(location) == "" {
		return "", fmt.Errorf("%w: example has an empty location", ErrInvalidArgument)
	}

	return location, nil
}

// RelativeFilePathFor returns the slash separated path of the artifact, relative
// to BaseReportDir. It has no side effects.
func (s *FilePathStrategy) RelativeFilePathFor(kind m.ArtifactKind, example m.Example) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown artifact kind %q", ErrInvalidArgument, kind)
	}

	hash, err := s.ExampleHash(example)
	if err != nil {
		return "", err
	}

	return s.relativePath(kind, hash), nil
}

func (s *FilePathStrategy) relativePath(kind m.ArtifactKind, hash string) string {
	return path.Join(resourcesDirName, s.reportName, examplePrefix+hash+kind.Suffix())
}

// RelativeFilePathForHTMLCapture returns resources/<report>/example_<hash>.html.
func (s *FilePathStrategy) RelativeFilePathForHTMLCapture(example m.Example) (string, error) {
	return s.RelativeFilePathFor(m.ArtifactHTMLCapture, example)
}

// RelativeFilePathForSystemScreenshot returns resources/<report>/example_<hash>_system_screenshot.png.
func (s *FilePathStrategy) RelativeFilePathForSystemScreenshot(example m.Example) (string, error) {
	return s.RelativeFilePathFor(m.ArtifactSystemScreenshot, example)
}

// RelativeFilePathForPageScreenshot returns resources/<report>/example_<hash>_page_screenshot.png.
func (s *FilePathStrategy) RelativeFilePathForPageScreenshot(example m.Example) (string, error) {
	return s.RelativeFilePathFor(m.ArtifactPageScreenshot, example)
}

// RelativeFilePathForRemoteControlLogs returns resources/<report>/example_<hash>_remote_control.log.
func (s *FilePathStrategy) RelativeFilePathForRemoteControlLogs(example m.Example) (string, error) {
	return s.RelativeFilePathFor(m.ArtifactRemoteControlLog, example)
}

// FilePath joins relative onto BaseReportDir and makes sure the parent
// directory of the result exists. A directory created concurrently by another
// caller counts as success.
func (s *FilePathStrategy) FilePath(relative string) (m.Path, error) {
	if strings.TrimSpace(relative) == "" {
		return "", fmt.Errorf("%w: relative path is empty", ErrInvalidArgument)
	}

	absolute := s.fs.Join(s.baseDir, relative)
	dir := m.Path(filepath.Dir(string(absolute)))

	if !s.fs.IsDir(dir) {
		if err := s.fs.MkdirAll(dir); err != nil {
			return "", fmt.Errorf("%w: create directory %s: %w", ErrIO, dir, err)
		}
	}

	return absolute, nil
}

// FilePathFor returns the absolute path of the artifact, creating its directory.
func (s *FilePathStrategy) FilePathFor(kind m.ArtifactKind, example m.Example) (m.Path, error) {
	relative, err := s.RelativeFilePathFor(kind, example)
	if err != nil {
		return "", err
	}

	return s.FilePath(relative)
}

// FilePathForHTMLCapture returns the absolute path of the captured HTML.
func (s *FilePathStrategy) FilePathForHTMLCapture(example m.Example) (m.Path, error) {
	return s.FilePathFor(m.ArtifactHTMLCapture, example)
}

// FilePathForSystemScreenshot returns the absolute path of the system screenshot.
func (s *FilePathStrategy) FilePathForSystemScreenshot(example m.Example) (m.Path, error) {
	return s.FilePathFor(m.ArtifactSystemScreenshot, example)
}

// FilePathForPageScreenshot returns the absolute path of the page screenshot.
func (s *FilePathStrategy) FilePathForPageScreenshot(example m.Example) (m.Path, error) {
	return s.FilePathFor(m.ArtifactPageScreenshot, example)
}

// FilePathForRemoteControlLogs returns the absolute path of the remote control log.
func (s *FilePathStrategy) FilePathForRemoteControlLogs(example m.Example) (m.Path, error) {
	return s.FilePathFor(m.ArtifactRemoteControlLog, example)
}

// ArtifactSet materializes the paths of every artifact kind for example.
func (s *FilePathStrategy) ArtifactSet(example m.Example) (m.ArtifactSet, error) {
	hash, err := s.ExampleHash(example)
	if err != nil {
		return m.ArtifactSet{}, err
	}

	kinds := m.AllArtifactKinds()
	set := m.ArtifactSet{
		Location: example.Location(),
		Hash:     hash,
		Paths:    make(map[m.ArtifactKind]m.Path, len(kinds)),
	}

	for _, kind := range kinds {
		absolute, err := s.FilePath(s.relativePath(kind, hash))
		if err != nil {
			return m.ArtifactSet{}, err
		}

		set.Paths[kind] = absolute
	}

	return set, nil
}
