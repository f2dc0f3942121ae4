// Package http provides an HTTP client for fetching remote XSPF
// playlists.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Timeout handling
//   - Whole-body fetching for playlist-sized documents
//
// # Basic Usage
//
//	client := http.NewClient(60 * time.Second)
//
//	if http.IsRemote(source) {
//	    data, err := client.Get(ctx, source)
//	    ...
//	}
package http
