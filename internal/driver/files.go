package driver

import (
	"io/fs"
	"path/filepath"
	"sort"

	"loglens/internal/syntax"
)

var skipDirs = map[string]struct{}{
	".git":         {},
	"build":        {},
	"target":       {},
	"node_modules": {},
}

// SkipDir reports whether a directory name is excluded from scans.
func SkipDir(name string) bool {
	_, ok := skipDirs[name]
	return ok
}

// ListJavaFiles returns a sorted list of every supported source file under
// dir, skipping build output and VCS directories.
func ListJavaFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && SkipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if syntax.Supported(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// ExpandPaths turns a mix of files and directories into a file list.
// Directories are listed with ListJavaFiles. Explicit files are kept even
// when their extension is unsupported so the scan can report it.
func ExpandPaths(paths []string) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	for _, p := range paths {
		info, err := statPath(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		files, err := ListJavaFiles(p)
		if err != nil {
			return nil, err
		}
		for _, f := range files {
			add(f)
		}
	}
	return out, nil
}
