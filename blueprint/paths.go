package blueprint

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileExtensions are the extensions recognized as blueprint documents.
var FileExtensions = []string{".yaml", ".yml"}

// ResolvePaths expands paths and glob patterns to blueprint files.
// Supports both single-level wildcards (*) and recursive wildcards (**).
//
// Examples:
//   - "blueprints/compass.yaml" → that file
//   - "blueprints" → every .yaml/.yml file below it
//   - "blueprints/**/*.yaml" → every match
//
// The result is absolute, de-duplicated and sorted.
func ResolvePaths(patterns ...string) ([]string, error) {
	return ResolvePathsWithExtensions(FileExtensions, patterns...)
}

// ResolvePathsWithExtensions is ResolvePaths recognizing extensions instead
// of FileExtensions. A leading dot is optional and matching ignores case.
// Files named directly are returned whatever their extension.
func ResolvePathsWithExtensions(extensions []string, patterns ...string) ([]string, error) {
	exts := extensionSet(extensions)
	seen := make(map[string]bool)
	var resolved []string

	for _, pattern := range patterns {
		paths, err := resolvePattern(pattern, exts)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", pattern, err)
		}
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				resolved = append(resolved, p)
			}
		}
	}

	sort.Strings(resolved)
	return resolved, nil
}

func resolvePattern(pattern string, exts map[string]bool) ([]string, error) {
	if !containsGlob(pattern) {
		absPath, err := filepath.Abs(pattern)
		if err != nil {
			return nil, err
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return []string{absPath}, nil
		}
		pattern = filepath.Join(absPath, "**", "*")
	}

	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob error: %w", err)
	}

	files := make([]string, 0, len(matches))
	for _, m := range matches {
		if !exts[strings.ToLower(filepath.Ext(m))] {
			continue
		}
		abs, err := filepath.Abs(m)
		if err != nil {
			return nil, err
		}
		files = append(files, abs)
	}
	return files, nil
}

func extensionSet(extensions []string) map[string]bool {
	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[strings.ToLower(ext)] = true
	}
	return set
}

// IsBlueprintFile reports whether path has a blueprint document extension.
func IsBlueprintFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}
