// Package adapter contains the infrastructure adapters used by the scramble workflow.
package adapter

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/scramble/internal/model"
)

// ErrPathNotFound is returned when a requested root does not exist.
var ErrPathNotFound = errors.New("path does not exist")

const (
	backupTimeLayout = "20060102_150405"
	// backupDirPattern matches folders created by Backup so reruns never scramble them.
	backupDirPattern = "*_backup_[0-9][0-9][0-9][0-9][0-9][0-9][0-9][0-9]_[0-9][0-9][0-9][0-9][0-9][0-9]"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when scanning and rewriting user projects.
//
//nolint:interfacebloat // A richer interface keeps workflow logic decoupled from os/fs.
type SourceFSAdapter interface {
	// Get collects the source files under roots that pass the filter.
	Get(roots []m.Path, filter m.SourceFilter) ([]m.Source, error)

	// Walk traverses the provided root path recursively.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile replaces the content of path, keeping its permissions.
	WriteFile(path m.Path, content []byte) error

	// HashFile returns a stable fingerprint (SHA-256) for the file at path.
	HashFile(path m.Path) (string, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// Backup copies target next to itself as <name>_backup_<timestamp> and
	// returns the backup location.
	Backup(target m.Path, now time.Time) (m.Path, error)

	// CopyDir recursively copies a directory tree.
	CopyDir(src, dst m.Path) error
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type into the domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects source files for the provided roots. Directories are walked
// recursively; a trailing "/..." is accepted and ignored.
func (a *LocalSourceFSAdapter) Get(roots []m.Path, filter m.SourceFilter) ([]m.Source, error) {
	if len(roots) == 0 {
		return []m.Source{}, nil
	}

	seen := make(map[string]struct{})

	var sources []m.Source

	collect := func(path string) error {
		source, ok, err := a.processFilePath(path, filter)
		if err != nil || !ok {
			return err
		}

		if _, exists := seen[string(source.Origin.Path)]; exists {
			return nil
		}

		seen[string(source.Origin.Path)] = struct{}{}
		sources = append(sources, source)

		return nil
	}

	for _, root := range roots {
		rootPath, err := NormalizeRootPath(string(root))
		if err != nil {
			return nil, err
		}

		info, err := a.FileInfo(m.Path(rootPath))
		if err != nil {
			if os.IsNotExist(err) {
				return nil, fmt.Errorf("%w: %s", ErrPathNotFound, root)
			}

			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := collect(rootPath); err != nil {
				return nil, err
			}

			continue
		}

		err = a.Walk(m.Path(rootPath), func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if path != rootPath && isExcluded(rootPath, path, filter.Exclude) {
				if info.IsDir() {
					return filepath.SkipDir
				}

				return nil
			}

			if info.IsDir() {
				if path != rootPath && skipDir(info.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			return collect(path)
		})
		if err != nil {
			return nil, err
		}
	}

	return sources, nil
}

// Walk iterates over everything under root.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		return fn(path, info, err)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to path, reusing the existing file mode when there is one.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte) error {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(string(path)); err == nil {
		perm = info.Mode().Perm()
	}

	return os.WriteFile(string(path), content, perm)
}

// HashFile returns the SHA-256 hash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", h.Sum(nil)), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// Backup copies a file or directory tree to a timestamped sibling.
func (a *LocalSourceFSAdapter) Backup(target m.Path, now time.Time) (m.Path, error) {
	rootPath, err := NormalizeRootPath(string(target))
	if err != nil {
		return "", err
	}

	info, err := os.Stat(rootPath)
	if err != nil {
		return "", fmt.Errorf("backup source: %w", err)
	}

	name := filepath.Base(rootPath) + "_backup_" + now.Format(backupTimeLayout)
	backupPath := filepath.Join(filepath.Dir(rootPath), name)

	if _, err := os.Stat(backupPath); err == nil {
		return "", fmt.Errorf("backup %s already exists", backupPath)
	}

	if !info.IsDir() {
		if err := a.copyFile(rootPath, backupPath, info.Mode()); err != nil {
			return "", fmt.Errorf("copy %s: %w", rootPath, err)
		}

		return m.Path(backupPath), nil
	}

	if err := a.CopyDir(m.Path(rootPath), m.Path(backupPath)); err != nil {
		return "", fmt.Errorf("copy %s: %w", rootPath, err)
	}

	return m.Path(backupPath), nil
}

// CopyDir recursively copies a directory tree.
func (a *LocalSourceFSAdapter) CopyDir(src, dst m.Path) error {
	return filepath.Walk(string(src), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(string(src), path)
		if err != nil {
			return err
		}

		if info.IsDir() {
			baseName := filepath.Base(path)
			if baseName == ".git" || baseName == "node_modules" {
				return filepath.SkipDir
			}
		}

		targetPath := filepath.Join(string(dst), relPath)

		if info.IsDir() {
			return os.MkdirAll(targetPath, info.Mode())
		}

		return a.copyFile(path, targetPath, info.Mode())
	})
}

// copyFile copies a single file.
func (a *LocalSourceFSAdapter) copyFile(src, dst string, mode os.FileMode) error {
	// #nosec G304 - src comes from walking the user's own target
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}

	defer func() { _ = sourceFile.Close() }()

	if err := os.MkdirAll(filepath.Dir(dst), 0o750); err != nil {
		return err
	}

	// #nosec G304 - dst is derived from src inside the backup folder
	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	defer func() { _ = destFile.Close() }()

	if _, err := io.Copy(destFile, sourceFile); err != nil {
		return err
	}

	return os.Chmod(dst, mode)
}

// NormalizeRootPath expands "~", strips a trailing "/..." and returns an
// absolute path.
func NormalizeRootPath(root string) (string, error) {
	rootStr := strings.TrimSuffix(root, "/...")

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Abs(rootStr)
}

// LanguageFor maps a file name to its source language.
func LanguageFor(path string) m.Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".java":
		return m.LanguageJava
	case ".kt", ".kts":
		return m.LanguageKotlin
	default:
		return m.LanguageUnknown
	}
}

func (a *LocalSourceFSAdapter) processFilePath(path string, filter m.SourceFilter) (m.Source, bool, error) {
	if !hasExtension(path, filter.Extensions) {
		return m.Source{}, false, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return m.Source{}, false, err
	}

	src, err := a.ReadFile(m.Path(absPath))
	if err != nil {
		return m.Source{}, false, nil //nolint:nilerr // unreadable files are reported by the run itself
	}

	hash, err := a.HashFile(m.Path(absPath))
	if err != nil {
		return m.Source{}, false, fmt.Errorf("hash error for %s: %w", absPath, err)
	}

	return m.Source{
		Origin:   &m.File{Path: m.Path(absPath), Hash: hash},
		Language: LanguageFor(absPath),
		Lines:    m.SplitLines(string(src)).Len(),
	}, true, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)

	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}

	return false
}

func skipDir(name string) bool {
	if name == ".git" {
		return true
	}

	matched, _ := doublestar.Match(backupDirPattern, name)

	return matched
}

// isExcluded matches patterns against the slash path relative to root and
// against the base name, so both "**/generated/**" and "*Test.java" work.
func isExcluded(root, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}

		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}

	return false
}
