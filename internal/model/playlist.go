package model

// Playlist is the in-memory form of a parsed XSPF document.
//
// Tracks appear in source order. Entries without a location are
// dropped during parsing, so every track here has a non-empty Path.
type Playlist struct {
	// Title is the playlist title. Empty when the source has none.
	Title string

	// Tracks holds the playlist entries in source order.
	Tracks []*Track
}

// NewPlaylist creates a Playlist from a title and its tracks.
func NewPlaylist(title string, tracks []*Track) *Playlist {
	return &Playlist{
		Title:  title,
		Tracks: tracks,
	}
}
