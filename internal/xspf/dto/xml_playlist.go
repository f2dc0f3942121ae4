package dto

import (
	"strings"

	"github.com/blockfeed/xspf-to-m3u/internal/anchor"
	"github.com/blockfeed/xspf-to-m3u/internal/model"
)

// XMLPlaylist represents the deserialized XSPF document.
//
// The root element's own name is not matched, so any well-formed XML
// document unmarshals; a document whose children are not in the XSPF
// namespace simply yields no tracks. That keeps behavior forgiving:
// only malformed XML is an error.
type XMLPlaylist struct {
	Title     string        `xml:"http://xspf.org/ns/0/ title"`
	TrackList *XMLTrackList `xml:"http://xspf.org/ns/0/ trackList"`
}

// XMLTrackList holds the track entries of the playlist.
type XMLTrackList struct {
	Tracks []XMLTrack `xml:"http://xspf.org/ns/0/ track"`
}

// XMLTrack represents a single <track> element.
//
// All fields are raw element text; surrounding whitespace is trimmed
// during conversion, not here.
type XMLTrack struct {
	Location string `xml:"http://xspf.org/ns/0/ location"`
	Title    string `xml:"http://xspf.org/ns/0/ title"`
	Creator  string `xml:"http://xspf.org/ns/0/ creator"`
	Duration string `xml:"http://xspf.org/ns/0/ duration"`
}

// HasLocation reports whether the track carries a usable location.
// Tracks without one cannot appear in an M3U and are skipped.
func (xt *XMLTrack) HasLocation() bool {
	return strings.TrimSpace(xt.Location) != ""
}

// ToTrack converts an XMLTrack to a model.Track, decoding the location
// and converting the millisecond duration to whole seconds.
func (xt *XMLTrack) ToTrack() *model.Track {
	return model.NewTrack(
		anchor.DecodeLocation(strings.TrimSpace(xt.Location)),
		strings.TrimSpace(xt.Title),
		strings.TrimSpace(xt.Creator),
		model.DurationSeconds(strings.TrimSpace(xt.Duration)),
	)
}

// ToPlaylist converts the document to a model.Playlist, keeping only
// tracks that have a location.
func (xp *XMLPlaylist) ToPlaylist() *model.Playlist {
	var tracks []*model.Track
	if xp.TrackList != nil {
		for i := range xp.TrackList.Tracks {
			xt := &xp.TrackList.Tracks[i]
			if xt.HasLocation() {
				tracks = append(tracks, xt.ToTrack())
			}
		}
	}
	return model.NewPlaylist(strings.TrimSpace(xp.Title), tracks)
}
