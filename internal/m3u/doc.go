// Package m3u renders anchored track lists as M3U playlists.
//
// # Flavors
//
// The Formatter produces one of three playlist flavors:
//
//	Extended (default)        Minimal               Gonic
//	--------------------      ------------------    ---------------------------
//	#EXTM3U                   Artist/Song.mp3       #GONIC-NAME:"roadtrip"
//	#EXTINF:192,Artist - Song                       #GONIC-COMMENT:""
//	Artist/Song.mp3                                 #GONIC-IS-PUBLIC:"false"
//	                                                /mnt/g/Music/Artist/Song.mp3
//
// Extended M3U carries an #EXTINF line per track with the duration in
// whole seconds (-1 when unknown) and a display title. Gonic output
// prefixes every path with the configured library base and always
// keeps the body minimal.
//
// # Usage
//
//	resolver := anchor.NewResolver([]string{"Music"})
//	formatter := m3u.NewFormatter(resolver, m3u.Options{
//	    IncludeExtendedHeader: true,
//	    IncludeExtendedInfo:   true,
//	})
//	content := m3u.Render(formatter.Lines("roadtrip", tracks))
package m3u
