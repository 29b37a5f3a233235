package utils

import (
	"strings"
)

// SecureFilename strips path components and unsafe characters from an
// uploaded filename so it can never escape the uploads directory.
// Anything outside [A-Za-z0-9._-] becomes an underscore, and leading
// dots are dropped so the result cannot be a hidden or relative path.
func SecureFilename(name string) string {
	// Take only the final path segment, tolerating both separators.
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}
