package anchor

import "testing"

func TestDecodeLocation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"file uri", "file:///home/alice/Music/song.mp3", "/home/alice/Music/song.mp3"},
		{"file uri with escapes", "file:///home/alice/My%20Music/AC%2FDC.mp3", "/home/alice/My Music/AC/DC.mp3"},
		{"file uri with host", "file://localhost/srv/music/a.mp3", "/srv/music/a.mp3"},
		{"http url keeps only path", "http://example.com/Music/a.mp3?x=1#t", "/Music/a.mp3"},
		{"url with empty path", "http://example.com", ""},
		{"bare absolute path", "/home/alice/Music/song.mp3", "/home/alice/Music/song.mp3"},
		{"bare relative path", "Artist/Album/song.mp3", "Artist/Album/song.mp3"},
		{"bare path keeps escapes", "/home/a%20b/song.mp3", "/home/a%20b/song.mp3"},
		{"windows path", `C:\Music\Artist\song.mp3`, "C:/Music/Artist/song.mp3"},
		{"windows file uri", "file:///C:/Music/song.mp3", "/C:/Music/song.mp3"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeLocation(tt.input); got != tt.want {
				t.Errorf("DecodeLocation(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name    string
		anchors []string
		path    string
		want    string
	}{
		{"anchor in middle", []string{"Music"}, "/home/alice/Music/Artist/Album/Song.mp3", "Artist/Album/Song.mp3"},
		{"anchor case-insensitive", []string{"Music"}, "/mnt/MUSIC/Artist/Song.mp3", "Artist/Song.mp3"},
		{"anchor given lowercase", []string{"music"}, "/srv/Music/a.mp3", "a.mp3"},
		{"first matching component wins", []string{"Music", "Library"}, "/a/Music/b/Library/c.mp3", "b/Library/c.mp3"},
		{"anchor as final component", []string{"Music"}, "/home/alice/Music", "Music"},
		{"anchor as final keeps spelling", []string{"Music"}, "/mnt/music", "music"},
		{"windows drive before anchor", []string{"Music"}, "C:/Music/Artist/Song.mp3", "Artist/Song.mp3"},
		{"dot components ignored", []string{"Music"}, "./Music/./Artist/Song.mp3", "Artist/Song.mp3"},
		{"double slashes ignored", []string{"Music"}, "/Music//Artist//Song.mp3", "Artist/Song.mp3"},
		{"no anchor drops home prefix", []string{"Music"}, "/home/alice/tunes/rock/song.mp3", "tunes/rock/song.mp3"},
		{"no anchor drops Users prefix", []string{"Music"}, "/Users/carol/tunes/song.mp3", "tunes/song.mp3"},
		{"home prefix is case-sensitive", []string{"Music"}, "/users/carol/x/y.mp3", "carol/x/y.mp3"},
		{"home drop then last three", []string{"Music"}, "/home/bob/a/b/c/d.mp3", "b/c/d.mp3"},
		{"home alone keeps both parts", []string{"Music"}, "/home/alice", "home/alice"},
		{"deep path keeps last three", nil, "/very/deep/nested/dir/file.mp3", "nested/dir/file.mp3"},
		{"four components keep last three", nil, "a/b/c/d", "b/c/d"},
		{"two components kept", nil, "Artist/song.mp3", "Artist/song.mp3"},
		{"single component kept", nil, "song.mp3", "song.mp3"},
		{"parent refs survive", nil, "a/../b/c.mp3", "../b/c.mp3"},
		{"empty path", []string{"Music"}, "", ""},
		{"root only", []string{"Music"}, "/", ""},
		{"dots only", []string{"Music"}, "./.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewResolver(tt.anchors)
			if got := r.Resolve(tt.path); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewResolver_CopiesAnchors(t *testing.T) {
	in := []string{"Music", "Library"}
	r := NewResolver(in)
	in[0] = "mutated"

	got := r.Anchors()
	if got[0] != "Music" || got[1] != "Library" {
		t.Errorf("Anchors() = %v, want [Music Library]", got)
	}
}
