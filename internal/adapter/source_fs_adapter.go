// Package adapter contains infrastructure adapters for the goracle CLI: file
// system access, Go source inspection, the analysis tool subprocess and the
// external editor.
package adapter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cespare/xxhash/v2"

	m "github.com/mouse-blink/goracle/internal/model"
)

// SourceFSAdapter abstracts the file system operations the query pipeline
// relies on, so the domain logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// HashFile returns a fast fingerprint of the file at path.
	HashFile(path m.Path) (uint64, error)

	// ResolvePath returns the absolute, symlink-resolved form of path.
	ResolvePath(path m.Path) (m.Path, error)

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// SiblingGoFiles lists the non-test .go files next to path, sorted.
	SiblingGoFiles(path m.Path) ([]m.Path, error)
}

// HashBytes fingerprints in-memory content the same way HashFile does.
func HashBytes(content []byte) uint64 {
	return xxhash.Sum64(content)
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// HashFile returns the xxhash of the file at the provided path.
func (a *LocalSourceFSAdapter) HashFile(path m.Path) (uint64, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return 0, err
	}

	defer func() {
		_ = f.Close()
	}()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

// ResolvePath makes path absolute and resolves symlinks, so the tool sees the
// same file name the Go loader does.
func (a *LocalSourceFSAdapter) ResolvePath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(expandHome(string(path)))
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", abs, err)
	}

	return m.Path(resolved), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// SiblingGoFiles lists the Go source files sharing path's directory.
func (a *LocalSourceFSAdapter) SiblingGoFiles(path m.Path) ([]m.Path, error) {
	dir := filepath.Dir(string(path))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []m.Path

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".go" || strings.HasSuffix(name, "_test.go") {
			continue
		}

		files = append(files, m.Path(filepath.Join(dir, name)))
	}

	sort.Slice(files, func(i, j int) bool { return files[i] < files[j] })

	return files, nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	suffix := strings.TrimPrefix(path, "~")
	suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))

	return filepath.Join(home, suffix)
}
