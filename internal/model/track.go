package model

import (
	"path"
	"strconv"
)

// UnknownDuration marks a track whose length could not be determined.
//
// Extended M3U writes unknown durations as -1, which players treat as
// "no length available". The sentinel never collapses to zero: a
// zero-second track and a track of unknown length are different things.
const UnknownDuration = -1

// Track represents a single playlist entry after location decoding.
//
// A Track is created once per parsed XSPF entry and never modified
// afterwards. Its path may be absolute or relative; anchoring to a
// library root happens later, during formatting.
//
// Example:
//
//	track := model.NewTrack("/home/alice/Music/Artist/Song.mp3", "Song", "Artist", 192)
//	track.DisplayTitle("Artist/Song.mp3") // "Artist - Song"
type Track struct {
	// Path is the decoded, forward-slash location of the track.
	Path string

	// Title is the track title. Empty when the source entry has none.
	Title string

	// Creator is the artist or author. Empty when the source entry has none.
	Creator string

	// DurationSecs is the track length rounded to whole seconds, or
	// UnknownDuration when the source carried no usable duration.
	DurationSecs int
}

// NewTrack creates a new Track.
//
// Parameters:
//   - path: decoded forward-slash location (see anchor.DecodeLocation)
//   - title: track title, empty if unknown
//   - creator: artist or author, empty if unknown
//   - durationSecs: non-negative second count, or UnknownDuration
func NewTrack(path, title, creator string, durationSecs int) *Track {
	return &Track{
		Path:         path,
		Title:        title,
		Creator:      creator,
		DurationSecs: durationSecs,
	}
}

// DisplayTitle returns the human-readable name used on #EXTINF lines.
//
// The fallback chain is:
//   - "<creator> - <title>" when both fields are non-empty
//   - the title alone when only the title is non-empty
//   - the final path component of relPath otherwise
//
// Example:
//
//	t := model.NewTrack("x", "Song", "Artist", model.UnknownDuration)
//	t.DisplayTitle("a/b.mp3") // "Artist - Song"
//
//	t = model.NewTrack("x", "", "", model.UnknownDuration)
//	t.DisplayTitle("a/b.mp3") // "b.mp3"
func (t *Track) DisplayTitle(relPath string) string {
	switch {
	case t.Creator != "" && t.Title != "":
		return t.Creator + " - " + t.Title
	case t.Title != "":
		return t.Title
	default:
		return path.Base(relPath)
	}
}

// DurationSeconds converts an XSPF duration value (decimal milliseconds)
// to whole seconds, rounding to the nearest second: 2500ms becomes 3s,
// 2499ms becomes 2s.
//
// An empty, unparseable, or negative value yields UnknownDuration.
func DurationSeconds(millis string) int {
	if millis == "" {
		return UnknownDuration
	}
	ms, err := strconv.Atoi(millis)
	if err != nil || ms < 0 {
		return UnknownDuration
	}
	return (ms + 500) / 1000
}
