// Package strings holds the small string helpers config and routing share
package strings

import (
	"path"
	"slices"
	std "strings"
)

func blank(s string) bool { return std.TrimSpace(s) == "" }

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString panics with "<name> is required" when s is blank
func MustString(s, name string) string {
	if blank(s) {
		panic(name + " is required")
	}
	return s
}

// MustPrefix cleans a mount point to the /a/b form, a blank or root value panics
func MustPrefix(s string) string {
	p := path.Clean("/" + std.TrimSpace(s))
	if p == "/" {
		panic("root path is required")
	}
	return p
}

// FirstNonEmpty returns the first non blank argument unchanged, or ""
func FirstNonEmpty(ss ...string) string {
	if i := slices.IndexFunc(ss, func(s string) bool { return !blank(s) }); i >= 0 {
		return ss[i]
	}
	return ""
}
