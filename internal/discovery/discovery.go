package discovery

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/dotcommander/fitcheck/internal/input"
)

// KindPattern maps a glob pattern to a document kind.
// Patterns are matched in order; first match wins.
type KindPattern struct {
	Pattern string
	Kind    input.Kind
}

// kindPatterns detect a document's kind from its path alone. Files that
// match none are classified by content.
var kindPatterns = []KindPattern{
	// Explicit suffixes win over directory placement
	{"**/*.garment.{yaml,yml,json}", input.KindGarment},
	{"**/*.user.{yaml,yml,json}", input.KindUser},
	{"*.garment.{yaml,yml,json}", input.KindGarment},
	{"*.user.{yaml,yml,json}", input.KindUser},

	// Directory-based
	{"**/garments/**/*.{yaml,yml,json}", input.KindGarment},
	{"garments/**/*.{yaml,yml,json}", input.KindGarment},
	{"**/users/**/*.{yaml,yml,json}", input.KindUser},
	{"users/**/*.{yaml,yml,json}", input.KindUser},
}

// DetectKind returns the kind implied by path, or false when the path gives
// no hint.
func DetectKind(path string) (input.Kind, bool) {
	p := strings.TrimPrefix(strings.ToLower(filepath.ToSlash(path)), "/")
	for _, kp := range kindPatterns {
		matched, err := doublestar.Match(kp.Pattern, p)
		if err != nil {
			continue
		}
		if matched {
			return kp.Kind, true
		}
	}
	return "", false
}

// MeasurementFile is a garment or user file that passed CheckMeasurementFile.
type MeasurementFile struct {
	// Path is absolute with symlinks resolved.
	Path string
	// Kind is implied by the name the caller gave, empty when it gives no hint.
	Kind input.Kind
}

// CheckMeasurementFile resolves path and checks that it names a non-empty
// YAML or JSON text file.
func CheckMeasurementFile(path string) (MeasurementFile, error) {
	if !input.IsSupported(path) {
		return MeasurementFile{}, fmt.Errorf("not a YAML or JSON measurement file: %s", path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return MeasurementFile{}, fmt.Errorf("invalid measurement file path %q: %w", path, err)
	}

	info, err := os.Lstat(absPath)
	switch {
	case os.IsNotExist(err):
		return MeasurementFile{}, fmt.Errorf("measurement file not found: %s", absPath)
	case os.IsPermission(err):
		return MeasurementFile{}, fmt.Errorf("measurement file not readable: %s", absPath)
	case err != nil:
		return MeasurementFile{}, fmt.Errorf("cannot access measurement file %s: %w", absPath, err)
	}

	if info.Mode()&os.ModeSymlink != 0 {
		if absPath, err = filepath.EvalSymlinks(absPath); err != nil {
			return MeasurementFile{}, fmt.Errorf("cannot resolve measurement file link %s: %w", path, err)
		}
		if info, err = os.Stat(absPath); err != nil {
			return MeasurementFile{}, fmt.Errorf("measurement file link target inaccessible: %s: %w", absPath, err)
		}
	}

	if info.IsDir() {
		return MeasurementFile{}, fmt.Errorf("measurement file path is a directory: %s", absPath)
	}
	if info.Size() == 0 {
		return MeasurementFile{}, fmt.Errorf("measurement file is empty: %s", absPath)
	}
	if err := checkText(absPath); err != nil {
		return MeasurementFile{}, err
	}

	kind, _ := DetectKind(path)
	return MeasurementFile{Path: absPath, Kind: kind}, nil
}

// checkText rejects files with a NUL byte in their first block.
func checkText(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("cannot read measurement file %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil {
		return fmt.Errorf("cannot read measurement file %s: %w", path, err)
	}
	if bytes.IndexByte(buf[:n], 0) >= 0 {
		return fmt.Errorf("measurement file appears to be binary: %s", path)
	}
	return nil
}

// File is a discovered measurement file.
type File struct {
	Path    string
	RelPath string
	Size    int64
}

// FileDiscovery finds measurement files under a root directory.
type FileDiscovery struct {
	rootPath       string
	followSymlinks bool
}

// NewFileDiscovery creates a new FileDiscovery instance
func NewFileDiscovery(rootPath string, followSymlinks bool) *FileDiscovery {
	return &FileDiscovery{
		rootPath:       rootPath,
		followSymlinks: followSymlinks,
	}
}

// Glob expands a pattern such as "garments/**/*.yaml" or
// "/data/shop/*.json". The literal directory prefix becomes the root and the
// rest is matched with doublestar. Only YAML and JSON files are returned,
// sorted by path.
func Glob(pattern string, followSymlinks bool) ([]File, error) {
	base, rest := doublestar.SplitPattern(filepath.ToSlash(pattern))
	return NewFileDiscovery(filepath.FromSlash(base), followSymlinks).Find(rest)
}

// Find returns supported files under the root matching pattern.
func (fd *FileDiscovery) Find(pattern string) ([]File, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid pattern: %s", pattern)
	}

	matches, err := doublestar.Glob(os.DirFS(fd.rootPath), pattern)
	if err != nil {
		return nil, fmt.Errorf("error evaluating pattern %s: %w", pattern, err)
	}

	var files []File
	for _, match := range matches {
		if f, ok := fd.processMatch(match); ok {
			files = append(files, f)
		}
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

// processMatch converts a glob match into a File, returning false if the
// match should be skipped.
func (fd *FileDiscovery) processMatch(match string) (File, bool) {
	if !input.IsSupported(match) {
		return File{}, false
	}
	fullPath := filepath.Join(fd.rootPath, filepath.FromSlash(match))

	info, err := os.Lstat(fullPath)
	if err != nil {
		return File{}, false
	}
	if info.Mode()&os.ModeSymlink != 0 {
		resolved, resolvedInfo, ok := fd.resolveSymlink(fullPath)
		if !ok {
			return File{}, false
		}
		fullPath = resolved
		info = resolvedInfo
	}
	if info.IsDir() {
		return File{}, false
	}

	return File{
		Path:    fullPath,
		RelPath: match,
		Size:    info.Size(),
	}, true
}

// resolveSymlink follows a symlink if configured. Targets outside the root
// are skipped.
func (fd *FileDiscovery) resolveSymlink(fullPath string) (string, os.FileInfo, bool) {
	if !fd.followSymlinks {
		return "", nil, false
	}

	realPath, err := filepath.EvalSymlinks(fullPath)
	if err != nil {
		return "", nil, false
	}

	root, err := filepath.EvalSymlinks(fd.rootPath)
	if err != nil {
		return "", nil, false
	}
	if rel, err := filepath.Rel(root, realPath); err != nil || strings.HasPrefix(rel, "..") {
		return "", nil, false
	}

	info, err := os.Stat(realPath)
	if err != nil {
		return "", nil, false
	}
	return realPath, info, true
}
