// Package sanitize generates normalized candidate names for filesystem
// entries.
//
// A name is normalized by replacing every run of characters outside the
// allowed set with a single substitution character, trimming the character
// from both ends, and collapsing repeated separators. The package is pure:
// it never touches the filesystem, so callers must tell it whether a name
// belongs to a file or a directory.
package sanitize

import (
	"regexp"
	"strings"
)

// Allowed is the set of characters that never need substitution.
const Allowed = "-._0-9a-zA-Z"

// disallowed matches every run of characters outside the allowed set.
var disallowed = regexp.MustCompile(`[^-._0-9a-zA-Z]+`)

// IsAllowed reports whether every character of s belongs to the allowed set.
func IsAllowed(s string) bool {
	return !disallowed.MatchString(s)
}

// Candidate returns the normalized name for an entry's basename, or the
// basename unchanged when normalizing would leave fewer than two name
// components. Keeping such names avoids collapsing a single-word name into
// the bare substitution character, and avoids producing an all-separator
// name. For files the extension is split off first and reattached untouched;
// directories are normalized whole.
func Candidate(basename string, isDir bool, char string) string {
	if isDir {
		if name, ok := normalize(basename, char); ok {
			return name
		}
		return basename
	}

	root, ext := splitExt(basename)
	if name, ok := normalize(root, char); ok {
		return name + ext
	}
	return basename
}

// normalize runs the replace/trim/split/rejoin pipeline over name. It
// reports false when the result has fewer than two non-empty components,
// meaning the name should be left alone.
func normalize(name, char string) (string, bool) {
	cleaned := strings.Trim(disallowed.ReplaceAllString(name, char), char)

	var components []string
	for _, part := range strings.Split(cleaned, char) {
		if part != "" {
			components = append(components, part)
		}
	}
	if len(components) < 2 {
		return "", false
	}
	return strings.Join(components, char), true
}

// splitExt splits a basename into root and extension. The extension starts
// at the last period, except that periods leading the name never count as
// separators: ".bashrc" and "..txt" have no extension, while ".foo.txt"
// splits into ".foo" and ".txt".
func splitExt(name string) (root, ext string) {
	lead := 0
	for lead < len(name) && name[lead] == '.' {
		lead++
	}
	if dot := strings.LastIndexByte(name[lead:], '.'); dot >= 0 {
		return name[:lead+dot], name[lead+dot:]
	}
	return name, ""
}
