// Package shared provides common utility functions used across multiple
// packages in the zk-langdef codebase.
package shared

import (
	"path/filepath"
	"strings"
)

// SplitNames splits a <depends> value on commas and whitespace, dropping
// empty entries.
func SplitNames(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// FileURL returns the file: URL of a local path.
func FileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return "file:" + filepath.ToSlash(abs)
}

// JarURL returns the jar: URL of an entry inside an archive.
func JarURL(archive string, entry string) string {
	return "jar:" + FileURL(archive) + "!/" + strings.TrimPrefix(entry, "/")
}

// UniqueStrings keeps the first occurrence of each non-empty value.
func UniqueStrings(values []string) []string {
	seen := map[string]struct{}{}
	var result []string
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}
