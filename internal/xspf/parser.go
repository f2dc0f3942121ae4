package xspf

import (
	"encoding/xml"
	"errors"
	"fmt"

	"github.com/blockfeed/xspf-to-m3u/internal/model"
	"github.com/blockfeed/xspf-to-m3u/internal/xspf/dto"
)

// ErrMalformedPlaylist is returned when the input is not well-formed
// XML. Callers can detect it with errors.Is to distinguish unreadable
// input from other failures.
var ErrMalformedPlaylist = errors.New("malformed XSPF playlist")

// Parser deserializes XSPF playlist documents.
//
// XSPF is an XML format (http://xspf.org/ns/0/) carrying a trackList
// of track entries, each with a location URI plus optional title,
// creator and duration metadata.
//
// Example usage:
//
//	parser := NewParser()
//
//	data, _ := os.ReadFile("library.xspf")
//
//	playlist, err := parser.ParsePlaylist(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, track := range playlist.Tracks {
//	    fmt.Println(track.Path)
//	}
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// ParsePlaylist deserializes XSPF document bytes into a Playlist.
//
// Entries without a location are dropped, text fields are
// whitespace-trimmed, locations are decoded to forward-slash paths
// and durations converted from milliseconds to whole seconds.
//
// Documents that are well-formed XML but not XSPF (wrong namespace,
// missing trackList) parse successfully into an empty playlist; only
// malformed XML returns an error, wrapping ErrMalformedPlaylist.
func (p *Parser) ParsePlaylist(data []byte) (*model.Playlist, error) {
	var xmlPlaylist dto.XMLPlaylist
	if err := xml.Unmarshal(data, &xmlPlaylist); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedPlaylist, err)
	}
	return xmlPlaylist.ToPlaylist(), nil
}
