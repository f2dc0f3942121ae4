// Package anchor turns absolute track locations into portable
// relative paths.
//
// # Decoding
//
// DecodeLocation converts an XSPF <location> value into a plain
// forward-slash path. URIs are unwrapped and percent-decoded; bare
// paths pass through untouched:
//
//	anchor.DecodeLocation("file:///home/alice/My%20Music/song.mp3")
//	// "/home/alice/My Music/song.mp3"
//
// # Anchoring
//
// Resolver strips everything up to and including the first path
// component that matches one of its anchor folder names
// (case-insensitive):
//
//	r := anchor.NewResolver([]string{"Music"})
//	r.Resolve("/home/alice/Music/Artist/Album/Song.mp3")
//	// "Artist/Album/Song.mp3"
//
// When no anchor matches, a home-directory prefix (/home/<user>/ or
// /Users/<user>/) is dropped and only the last few components are
// kept, so the result stays usable on a device with a different
// mount layout.
package anchor
