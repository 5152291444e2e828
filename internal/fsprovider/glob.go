package fsprovider

import (
	"path/filepath"
	"strings"
)

// matchesIgnore reports whether relPath (slash-separated, relative to the
// walk root) matches any of the ignore globs. A glob containing "**"
// matches its prefix directory and everything beneath it; otherwise
// filepath.Match is applied to the whole relative path, so "*" does not
// cross a "/" (a "name/*" glob also matches name and all of its subtree).
func matchesIgnore(relPath string, ignore []string) bool {
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range ignore {
		if matchesGlob(pattern, relPath) {
			return true
		}
	}
	return false
}

func matchesGlob(pattern, path string) bool {
	pattern = filepath.ToSlash(pattern)
	if strings.Contains(pattern, "**") {
		prefix := strings.SplitN(pattern, "**", 2)[0]
		prefix = strings.TrimSuffix(prefix, "/")
		if prefix == "" {
			return true
		}
		return path == prefix || strings.HasPrefix(path, prefix+"/")
	}
	ok, err := filepath.Match(pattern, path)
	if err == nil && ok {
		return true
	}
	// Allow a bare directory glob ("name/*") to also match the directory
	// itself and everything beneath it, mirroring shells' loose globbing.
	base := strings.TrimSuffix(pattern, "/*")
	if base != pattern && (path == base || strings.HasPrefix(path, base+"/")) {
		return true
	}
	return false
}
