package anchor

import (
	"net/url"
	"strings"
)

// DecodeLocation converts a raw XSPF <location> value into a plain
// forward-slash path.
//
// Values containing "://" are treated as URIs: the path component is
// extracted and percent-decoded, dropping scheme, host, query and
// fragment. Anything else is taken verbatim. Backslashes are
// normalized to forward slashes in both cases, so Windows-style
// locations come out usable.
//
// Decoding is best-effort and never fails: a value that cannot be
// parsed as a URI is kept as-is.
//
// Example:
//
//	anchor.DecodeLocation("file:///home/alice/My%20Music/song.mp3")
//	// "/home/alice/My Music/song.mp3"
//
//	anchor.DecodeLocation("C:\\Music\\Artist\\song.mp3")
//	// "C:/Music/Artist/song.mp3"
func DecodeLocation(raw string) string {
	p := raw
	if strings.Contains(raw, "://") {
		if u, err := url.Parse(raw); err == nil {
			p = u.Path
		}
	}
	return strings.ReplaceAll(p, "\\", "/")
}
