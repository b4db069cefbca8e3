// Package finder resolves user-provided paths into the list of source files to process.
package finder

import (
	"context"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// FileFilterFn is a function type used to filter files.
// It takes a fs.FileInfo object and returns a boolean indicating
// whether the file should be included (true) or filtered out (false).
type FileFilterFn = func(fs.FileInfo) bool

// WarnFn receives a human-readable warning about a dropped path.
type WarnFn = func(msg string, v ...any)

// FilterByExt creates a file filter function that filters files based on their extensions.
// If caseSensitive is false, the extensions will be compared in a case-insensitive manner.
// Without extensions every regular file passes the filter.
func FilterByExt(caseSensitive bool, exts ...string) FileFilterFn {
	var m = make(map[string]struct{}, len(exts))

	// store the extensions in a map for quick lookup
	for _, ext := range exts {
		if !caseSensitive {
			ext = strings.ToLower(ext)
		}

		m[strings.TrimPrefix(ext, ".")] = struct{}{}
	}

	return func(info fs.FileInfo) bool {
		if info.IsDir() {
			return false
		}

		if len(m) == 0 {
			return true
		}

		if ext := filepath.Ext(info.Name()); ext != "" {
			if !caseSensitive {
				ext = strings.ToLower(ext)
			}

			// remove the leading dot (.) before checking the map
			if _, ok := m[ext[1:]]; ok {
				return true
			}
		}

		return false
	}
}

// ValidFiles returns a sorted list of absolute paths to the files (with one of the given extensions, compared
// case-insensitively) found in the specified paths. Directories are scanned one level deep. Relative paths are
// resolved against baseDir, and the warnings show paths relative to it (an empty baseDir means the current
// working directory).
//
// Every dropped path is reported using the warn function: nonexistent paths, files that were already collected,
// and files of a wrong type (sub-directories are skipped silently).
func ValidFiles(ctx context.Context, where []string, baseDir string, warn WarnFn, exts ...string) []string {
	if warn == nil {
		warn = func(string, ...any) {}
	}

	if baseDir == "" {
		if wd, err := os.Getwd(); err == nil {
			baseDir = wd
		}
	}

	var (
		filter = FilterByExt(false, exts...)
		valid  = make(map[string]struct{})
		queue  = make([]string, 0, len(where))
	)

	for _, path := range where {
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}

		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}

		queue = append(queue, path)
	}

	var visit func(path string, explicit bool)

	visit = func(path string, explicit bool) {
		if _, dup := valid[path]; dup {
			warn("Ignoring duplicate file: " + DisplayPath(path, baseDir))

			return
		}

		stat, err := os.Stat(path)
		if err != nil {
			warn("Skipping nonexistent path: " + DisplayPath(path, baseDir))

			return
		}

		switch {
		case stat.IsDir():
			if explicit { // the files inside are taken, sub-directories are ignored
				for file := range iterateFiles(ctx, path) {
					visit(file, false)
				}
			}
		case filter(stat):
			valid[path] = struct{}{}
		default:
			warn("Skipping file of invalid type: " + DisplayPath(path, baseDir))
		}
	}

	for _, path := range queue {
		if ctx.Err() != nil {
			break
		}

		visit(path, true)
	}

	var result = make([]string, 0, len(valid))

	for path := range valid {
		result = append(result, path)
	}

	slices.Sort(result)

	return result
}

// DisplayPath returns the path relative to the given directory (prefixed with "./") when the path is located
// inside it, or the path as is otherwise. An empty relativeDir means the current working directory.
func DisplayPath(path, relativeDir string) string {
	if relativeDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return path
		}

		relativeDir = wd
	}

	rel, err := filepath.Rel(relativeDir, path)
	if err != nil || !filepath.IsAbs(path) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}

	if rel == "." {
		return rel
	}

	return "." + string(filepath.Separator) + rel
}

// iterateFiles returns a sequence of absolute file paths inside the specified directory (non-recursively,
// sorted by name). Sub-directories are skipped.
func iterateFiles(ctx context.Context, where string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if err := ctx.Err(); err != nil {
			return // stop processing if the context is canceled
		}

		f, openErr := os.Open(where)
		if openErr != nil {
			return // ignore directories that can't be opened
		}

		names, readErr := f.Readdirnames(-1)

		_ = f.Close()

		if readErr != nil {
			return
		}

		slices.Sort(names)

		for _, path := range names {
			path = filepath.Join(where, path)

			if !filepath.IsAbs(path) {
				abs, err := filepath.Abs(path)
				if err != nil {
					continue
				}

				path = abs
			}

			stat, statErr := os.Stat(path)
			if statErr != nil || stat.IsDir() {
				continue // skip directories and files with stat errors
			}

			if err := ctx.Err(); err != nil {
				return
			}

			if !yield(path) {
				return
			}
		}
	}
}
