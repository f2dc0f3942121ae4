package model

import "testing"

func TestDurationSeconds(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"2500", 3},
		{"2499", 2},
		{"1000", 1},
		{"999", 1},
		{"499", 0},
		{"0", 0},
		{"192000", 192},
		{"", UnknownDuration},
		{"abc", UnknownDuration},
		{"12.5", UnknownDuration},
		{"-2000", UnknownDuration},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DurationSeconds(tt.input); got != tt.want {
				t.Errorf("DurationSeconds(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTrack_DisplayTitle(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		creator string
		relPath string
		want    string
	}{
		{"creator and title", "Song", "Artist", "Artist/Song.mp3", "Artist - Song"},
		{"title only", "Song", "", "Artist/Song.mp3", "Song"},
		{"creator only falls back to basename", "", "Artist", "Artist/Song.mp3", "Song.mp3"},
		{"neither falls back to basename", "", "", "a/b/c.flac", "c.flac"},
		{"basename of bare file", "", "", "track.ogg", "track.ogg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			track := NewTrack("unused", tt.title, tt.creator, UnknownDuration)
			if got := track.DisplayTitle(tt.relPath); got != tt.want {
				t.Errorf("DisplayTitle(%q) = %q, want %q", tt.relPath, got, tt.want)
			}
		})
	}
}

func TestNewPlaylist(t *testing.T) {
	tracks := []*Track{
		NewTrack("a.mp3", "A", "", 10),
		NewTrack("b.mp3", "B", "", 20),
	}
	playlist := NewPlaylist("Mix", tracks)

	if playlist.Title != "Mix" {
		t.Errorf("Title = %q, want %q", playlist.Title, "Mix")
	}
	if len(playlist.Tracks) != 2 {
		t.Fatalf("len(Tracks) = %d, want 2", len(playlist.Tracks))
	}
	if playlist.Tracks[0].Title != "A" {
		t.Errorf("Tracks[0].Title = %q, want %q", playlist.Tracks[0].Title, "A")
	}
}
