package anchor

import "strings"

// Resolver rewrites decoded track paths relative to a music library
// root, identified by anchor folder names such as "Music".
//
// A Resolver is immutable after creation and safe for concurrent use.
type Resolver struct {
	anchors []string
	lowered map[string]struct{}
}

// NewResolver creates a Resolver for the given anchor folder names.
//
// Matching is case-insensitive; the original spelling is kept only for
// Anchors(). An empty or nil list disables anchor matching, leaving
// just the fallback heuristics.
func NewResolver(anchors []string) *Resolver {
	r := &Resolver{
		anchors: make([]string, len(anchors)),
		lowered: make(map[string]struct{}, len(anchors)),
	}
	copy(r.anchors, anchors)
	for _, a := range anchors {
		r.lowered[strings.ToLower(a)] = struct{}{}
	}
	return r
}

// Anchors returns a copy of the anchor folder names, in the order they
// were given.
func (r *Resolver) Anchors() []string {
	out := make([]string, len(r.anchors))
	copy(out, r.anchors)
	return out
}

// Resolve strips the leading path up to and including the first
// component that matches an anchor (case-insensitive) and returns the
// remainder joined with forward slashes.
//
// When the matched anchor is the final component, its own name is
// returned rather than an empty string. When no anchor matches,
// fallback heuristics apply:
//   - a leading home/<user>/ or Users/<user>/ prefix is dropped
//   - the last 3 components are kept if there are at least 3,
//     otherwise the last 2, otherwise the basename
//
// Empty and "." components are discarded before matching, so
// "./Music/a.mp3" and "/Music//a.mp3" resolve alike. The result is
// empty only when the path has no real components at all.
//
// Example:
//
//	r := anchor.NewResolver([]string{"Music"})
//	r.Resolve("/home/alice/Music/Artist/Album/Song.mp3") // "Artist/Album/Song.mp3"
//	r.Resolve("/home/alice/tunes/rock/song.mp3")         // "tunes/rock/song.mp3"
func (r *Resolver) Resolve(path string) string {
	parts := splitPath(path)
	for i, part := range parts {
		if _, ok := r.lowered[strings.ToLower(part)]; ok {
			if rest := parts[i+1:]; len(rest) > 0 {
				return strings.Join(rest, "/")
			}
			return parts[len(parts)-1]
		}
	}
	// Drop home prefix
	if len(parts) > 2 && (parts[0] == "home" || parts[0] == "Users") {
		parts = parts[2:]
	}
	switch {
	case len(parts) >= 3:
		return strings.Join(parts[len(parts)-3:], "/")
	case len(parts) == 2:
		return strings.Join(parts, "/")
	case len(parts) == 1:
		return parts[0]
	default:
		return ""
	}
}

// splitPath breaks a forward-slash path into its meaningful
// components, discarding empty and "." entries. ".." is kept.
func splitPath(path string) []string {
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part == "" || part == "." {
			continue
		}
		parts = append(parts, part)
	}
	return parts
}
