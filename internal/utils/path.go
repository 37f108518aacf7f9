package utils

import (
	"path/filepath"
	"strings"
)

const pathSeparator = "/"

// NormalizePath converts a slash-separated relative path to the canonical
// form used for ignore evaluation: no leading "./", no leading or trailing
// separators and no empty segments. "." and "" normalize to "".
// Backslashes are left alone; OS paths go through filepath.ToSlash first.
func NormalizePath(path string) string {
	for strings.HasPrefix(path, "./") {
		path = path[2:]
	}
	if path == "." {
		return ""
	}
	if !strings.Contains(path, "//") && !strings.HasPrefix(path, pathSeparator) && !strings.HasSuffix(path, pathSeparator) {
		return path
	}
	parts := strings.Split(path, pathSeparator)
	kept := parts[:0]
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, pathSeparator)
}

// RelativeSlashPath returns path relative to root in canonical slash form.
// Both are made absolute first, so relative and absolute arguments mix.
// ok is false when path lies outside root.
func RelativeSlashPath(path, root string) (rel string, ok bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", false
	}
	rel, err = filepath.Rel(absRoot, absPath)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", false
	}
	return NormalizePath(rel), true
}

// JoinSlash appends name to a canonical relative path.
func JoinSlash(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + pathSeparator + name
}

// AncestorPrefixes returns every proper leading prefix of a canonical
// relative path, shortest first: "a/b/c" yields ["a", "a/b"].
func AncestorPrefixes(path string) []string {
	if path == "" {
		return nil
	}
	var prefixes []string
	for i := 0; i < len(path); i++ {
		if path[i] == '/' {
			prefixes = append(prefixes, path[:i])
		}
	}
	return prefixes
}
