// Package model defines the core data structures used throughout
// the xspf-to-m3u application.
//
// # Track
//
// Track represents a single playlist entry with its decoded location:
//
//	track := model.NewTrack("/home/alice/Music/Artist/Song.mp3", "Song", "Artist", 192)
//	fmt.Println(track.DisplayTitle("Artist/Song.mp3")) // "Artist - Song"
//
// # Playlist
//
// Playlist is the in-memory form of a parsed XSPF document:
//
//	playlist := model.NewPlaylist("Road Trip", tracks)
//	fmt.Println(len(playlist.Tracks))
//
// # Durations
//
// XSPF carries durations in milliseconds; M3U wants whole seconds.
// DurationSeconds converts between the two, returning UnknownDuration
// for missing or malformed values:
//
//	model.DurationSeconds("2500") // 3
//	model.DurationSeconds("")     // model.UnknownDuration (-1)
package model
