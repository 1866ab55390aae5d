// Package adapter contains infrastructure adapters for the artifactpath CLI.
package adapter

import (
	"os"
	"path/filepath"

	m "gooze.dev/pkg/artifactpath/internal/model"
)

const defaultDirPerm = 0o750

// FileSystem abstracts the filesystem operations the path strategy relies on.
// It hides direct `os` access so the strategy can be tested without touching
// the disk.
type FileSystem interface {
	// Abs returns an absolute, cleaned representation of path.
	Abs(path string) (m.Path, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(path m.Path) bool

	// MkdirAll creates path and any missing parents. A directory that already
	// exists is not an error.
	MkdirAll(path m.Path) error

	// Join appends a slash separated relative path to base.
	Join(base m.Path, relative string) m.Path
}

// LocalFileSystem is the os backed FileSystem.
type LocalFileSystem struct{}

// NewLocalFileSystem constructs a LocalFileSystem.
func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Abs resolves path against the current working directory.
func (a *LocalFileSystem) Abs(path string) (m.Path, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// IsDir reports whether path is an existing directory.
func (a *LocalFileSystem) IsDir(path m.Path) bool {
	info, err := os.Stat(string(path))
	if err != nil {
		return false
	}

	return info.IsDir()
}

// MkdirAll creates the directory tree rooted at path.
func (a *LocalFileSystem) MkdirAll(path m.Path) error {
	if err := os.MkdirAll(string(path), defaultDirPerm); err != nil {
		// A concurrent creator may have won the race.
		if os.IsExist(err) && a.IsDir(path) {
			return nil
		}

		return err
	}

	return nil
}

// Join joins base with relative using the OS separator.
func (a *LocalFileSystem) Join(base m.Path, relative string) m.Path {
	return m.Path(filepath.Join(string(base), filepath.FromSlash(relative)))
}
