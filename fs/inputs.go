package fs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// IsHTML reports whether path has an .html or .htm extension, ignoring case.
func IsHTML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// CollectInputs expands inputs into a sorted, duplicate-free list of HTML
// files. Files are kept when they have an HTML extension. Directories
// contribute their HTML files, descending into subdirectories only when
// recursive is set. Symbolic links to directories are followed during
// recursion only when followSymlinks is set. Inputs that do not exist are
// an error.
func CollectInputs(inputs []string, recursive, followSymlinks bool) ([]string, error) {
	seen := make(map[string]bool)

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", input, err)
		}

		if !info.IsDir() {
			if IsHTML(input) {
				seen[input] = true
			}
			continue
		}

		if !recursive {
			if err := collectDir(input, seen); err != nil {
				return nil, err
			}
			continue
		}

		visited := make(map[string]bool)
		if err := walkDir(input, followSymlinks, visited, seen); err != nil {
			return nil, err
		}
	}

	out := make([]string, 0, len(seen))
	for path := range seen {
		out = append(out, path)
	}
	sort.Strings(out)
	return out, nil
}

// collectDir adds the HTML files directly inside dir.
func collectDir(dir string, seen map[string]bool) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		if IsHTML(path) {
			seen[path] = true
		}
	}
	return nil
}

// walkDir adds every HTML file below root. visited holds resolved directory
// paths so that symlink cycles terminate.
func walkDir(root string, followSymlinks bool, visited, seen map[string]bool) error {
	if real, err := filepath.EvalSymlinks(root); err == nil {
		if visited[real] {
			return nil
		}
		visited[real] = true
	}

	// The trailing separator makes WalkDir resolve root when it is itself a
	// symbolic link.
	start := root + string(filepath.Separator)
	return filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", path, err)
		}

		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				return nil
			}
			if info.IsDir() {
				if followSymlinks {
					return walkDir(path, followSymlinks, visited, seen)
				}
				return nil
			}
			if info.Mode().IsRegular() && IsHTML(path) {
				seen[path] = true
			}
			return nil
		}

		if d.IsDir() {
			if path != start {
				if real, err := filepath.EvalSymlinks(path); err == nil {
					if visited[real] {
						return fs.SkipDir
					}
					visited[real] = true
				}
			}
			return nil
		}

		if d.Type().IsRegular() && IsHTML(path) {
			seen[path] = true
		}
		return nil
	})
}
