package catalog

import (
	"strings"
)

// excludedExtensions are assets that cannot be shown as text.
var excludedExtensions = []string{
	".png",
	".arrow",
}

// isHidden reports whether name starts with a period.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Excluded reports whether a file named name is left out of an example:
// hidden files and binary assets.
func Excluded(name string) bool {
	if isHidden(name) {
		return true
	}
	for _, ext := range excludedExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
