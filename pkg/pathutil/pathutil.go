// Package pathutil resolves layer-relative paths into absolute ones.
package pathutil

import "path/filepath"

// Resolver turns a base directory and relative segments into an absolute path.
type Resolver interface {
	Resolve(base string, segments ...string) string
}

// ResolverFunc adapts a plain function to the Resolver interface.
type ResolverFunc func(base string, segments ...string) string

func (f ResolverFunc) Resolve(base string, segments ...string) string {
	return f(base, segments...)
}

// Default resolves paths with Resolve.
var Default Resolver = ResolverFunc(Resolve)

// Resolve joins segments onto base from left to right. An absolute segment
// discards everything before it and empty segments are skipped. A result that
// is still relative is made absolute against the working directory.
//
//	Resolve("/app", "layers/base", "locales") // "/app/layers/base/locales"
//	Resolve("/app", "/srv/base", "pages")     // "/srv/base/pages"
func Resolve(base string, segments ...string) string {
	p := base
	for _, s := range segments {
		if s == "" {
			continue
		}
		if filepath.IsAbs(s) {
			p = s
			continue
		}
		p = filepath.Join(p, s)
	}

	if !filepath.IsAbs(p) {
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
	}
	return filepath.Clean(p)
}

// Rel returns target relative to base using forward slashes, or target itself
// when no relative path exists.
func Rel(base, target string) string {
	rel, err := filepath.Rel(base, target)
	if err != nil {
		return filepath.ToSlash(target)
	}
	return filepath.ToSlash(rel)
}
