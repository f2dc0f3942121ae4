// Package xspf provides functionality to parse XSPF playlist documents
// into the application's track model.
//
// # Parsing
//
// Use the Parser to deserialize an XSPF document:
//
//	parser := xspf.NewParser()
//	playlist, err := parser.ParsePlaylist(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s: %d tracks\n", playlist.Title, len(playlist.Tracks))
//
// # XSPF Data Format
//
// XSPF ("spiff") is an XML playlist format under the namespace
// http://xspf.org/ns/0/. A document carries a trackList whose track
// entries each hold a location URI plus optional title, creator and
// duration (milliseconds) elements:
//
//	<playlist version="1" xmlns="http://xspf.org/ns/0/">
//	  <trackList>
//	    <track>
//	      <location>file:///home/alice/Music/Artist/Song.mp3</location>
//	      <title>Song</title>
//	      <creator>Artist</creator>
//	      <duration>192000</duration>
//	    </track>
//	  </trackList>
//	</playlist>
//
// Elements outside the XSPF namespace are ignored, so a well-formed
// document that is not actually XSPF parses into an empty playlist.
// Only malformed XML is reported as an error (ErrMalformedPlaylist).
package xspf
