package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/blockfeed/xspf-to-m3u/internal/config"
	"github.com/blockfeed/xspf-to-m3u/internal/xspf"
)

const sampleXSPF = `<?xml version="1.0" encoding="UTF-8"?>
<playlist version="1" xmlns="http://xspf.org/ns/0/">
  <title>Road Trip</title>
  <trackList>
    <track>
      <location>file:///home/alice/Music/Artist/Album/Song.mp3</location>
      <title>Song</title>
      <creator>Artist</creator>
      <duration>192000</duration>
    </track>
    <track>
      <location>file:///home/alice/Music/Artist/Album/Song.mp3</location>
      <title>Duplicate</title>
    </track>
    <track>
      <location>/home/alice/Music/Solo.flac</location>
    </track>
  </trackList>
</playlist>`

func TestManager_Convert(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "library.xspf")
	dest := filepath.Join(dir, "rockbox.m3u")
	if err := os.WriteFile(source, []byte(sampleXSPF), 0644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	manager := NewManager(config.DefaultSettings(), nil)
	result, err := manager.Convert(context.Background(), Job{Source: source, Dest: dest})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if result.Title != "Road Trip" {
		t.Errorf("Title = %q, want %q", result.Title, "Road Trip")
	}
	if result.Entries != 2 {
		t.Errorf("Entries = %d, want 2 (duplicate must collapse)", result.Entries)
	}

	content, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "#EXTM3U\n" +
		"#EXTINF:192,Artist - Song\n" +
		"Artist/Album/Song.mp3\n" +
		"#EXTINF:-1,Solo.flac\n" +
		"Solo.flac\n"
	if string(content) != want {
		t.Errorf("output = %q, want %q", content, want)
	}

	playlists, lines, skipped := manager.GetProgress()
	if playlists != 1 {
		t.Errorf("playlists = %d, want 1", playlists)
	}
	if lines != 5 {
		t.Errorf("lines = %d, want 5", lines)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}

func TestManager_Convert_BareTrack(t *testing.T) {
	doc := `<playlist version="1" xmlns="http://xspf.org/ns/0/">
  <trackList>
    <track>
      <location>file:///home/alice/Music/Artist/Song.mp3</location>
    </track>
  </trackList>
</playlist>`

	dir := t.TempDir()
	source := filepath.Join(dir, "in.xspf")
	dest := filepath.Join(dir, "out.m3u")
	if err := os.WriteFile(source, []byte(doc), 0644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	manager := NewManager(config.DefaultSettings(), nil)
	if _, err := manager.Convert(context.Background(), Job{Source: source, Dest: dest}); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	content, _ := os.ReadFile(dest)
	want := "#EXTM3U\n#EXTINF:-1,Song.mp3\nArtist/Song.mp3\n"
	if string(content) != want {
		t.Errorf("output = %q, want %q", content, want)
	}
}

func TestManager_Convert_Gonic(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "library.xspf")
	dest := filepath.Join(dir, "roadtrip.m3u")
	if err := os.WriteFile(source, []byte(sampleXSPF), 0644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	settings := config.DefaultSettings()
	settings.GonicBase = "/mnt/g/Music/"

	manager := NewManager(settings, nil)
	if _, err := manager.Convert(context.Background(), Job{Source: source, Dest: dest}); err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	content, _ := os.ReadFile(dest)
	want := "#GONIC-NAME:\"roadtrip\"\n" +
		"#GONIC-COMMENT:\"\"\n" +
		"#GONIC-IS-PUBLIC:\"false\"\n" +
		"/mnt/g/Music/Artist/Album/Song.mp3\n" +
		"/mnt/g/Music/Solo.flac\n"
	if string(content) != want {
		t.Errorf("output = %q, want %q", content, want)
	}
}

func TestManager_Convert_Malformed(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "broken.xspf")
	if err := os.WriteFile(source, []byte("<playlist><trackList>"), 0644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	manager := NewManager(config.DefaultSettings(), nil)
	_, err := manager.Convert(context.Background(), Job{Source: source, Dest: filepath.Join(dir, "out.m3u")})
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if !errors.Is(err, xspf.ErrMalformedPlaylist) {
		t.Errorf("error %v does not wrap ErrMalformedPlaylist", err)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out.m3u")); !os.IsNotExist(statErr) {
		t.Error("destination must not be written when parsing fails")
	}
}

func TestManager_Convert_MissingSource(t *testing.T) {
	dir := t.TempDir()

	manager := NewManager(config.DefaultSettings(), nil)
	_, err := manager.Convert(context.Background(), Job{
		Source: filepath.Join(dir, "nope.xspf"),
		Dest:   filepath.Join(dir, "out.m3u"),
	})
	if err == nil {
		t.Fatal("expected error but got none")
	}
	if errors.Is(err, xspf.ErrMalformedPlaylist) {
		t.Errorf("read failure %v must not report as malformed playlist", err)
	}
}

func TestManager_ConvertAll(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.xspf")
	if err := os.WriteFile(good, []byte(sampleXSPF), 0644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	var mu sync.Mutex
	var errEvents int
	manager := NewManager(config.DefaultSettings(), func(event ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		if event.Level == LevelError {
			errEvents++
		}
	})

	jobs := []Job{
		{Source: good, Dest: filepath.Join(dir, "good.m3u")},
		{Source: filepath.Join(dir, "missing.xspf"), Dest: filepath.Join(dir, "missing.m3u")},
	}

	err := manager.ConvertAll(context.Background(), jobs)
	if err == nil {
		t.Fatal("expected aggregate error but got none")
	}
	if got := err.Error(); got != "1 of 2 conversions failed" {
		t.Errorf("error = %q, want %q", got, "1 of 2 conversions failed")
	}

	// The failing job must not take the good one down with it.
	if _, statErr := os.Stat(filepath.Join(dir, "good.m3u")); statErr != nil {
		t.Errorf("good.m3u missing: %v", statErr)
	}
	if errEvents != 1 {
		t.Errorf("error events = %d, want 1", errEvents)
	}

	playlists, _, _ := manager.GetProgress()
	if playlists != 1 {
		t.Errorf("playlists = %d, want 1", playlists)
	}
}

func TestManager_ConvertAll_AllSucceed(t *testing.T) {
	dir := t.TempDir()
	var jobs []Job
	for _, name := range []string{"a", "b", "c"} {
		source := filepath.Join(dir, name+".xspf")
		if err := os.WriteFile(source, []byte(sampleXSPF), 0644); err != nil {
			t.Fatalf("writing source: %v", err)
		}
		jobs = append(jobs, Job{Source: source, Dest: filepath.Join(dir, name+".m3u")})
	}

	manager := NewManager(config.DefaultSettings(), nil)
	if err := manager.ConvertAll(context.Background(), jobs); err != nil {
		t.Fatalf("ConvertAll failed: %v", err)
	}

	playlists, lines, skipped := manager.GetProgress()
	if playlists != 3 {
		t.Errorf("playlists = %d, want 3", playlists)
	}
	if lines != 15 {
		t.Errorf("lines = %d, want 15", lines)
	}
	if skipped != 3 {
		t.Errorf("skipped = %d, want 3", skipped)
	}
}

func TestPlaylistName(t *testing.T) {
	tests := []struct {
		dest string
		want string
	}{
		{"rockbox.m3u", "rockbox"},
		{"/playlists/road.trip.m3u", "road.trip"},
		{"noext", "noext"},
		{".m3u", ".m3u"},
	}

	for _, tt := range tests {
		t.Run(tt.dest, func(t *testing.T) {
			if got := playlistName(tt.dest); got != tt.want {
				t.Errorf("playlistName(%q) = %q, want %q", tt.dest, got, tt.want)
			}
		})
	}
}

func TestDestName(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"library.xspf", "library.m3u"},
		{"/playlists/road.trip.xspf", "road.trip.m3u"},
		{"https://example.com/feeds/mix.xspf", "mix.m3u"},
		{"noext", "noext.m3u"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			if got := DestName(tt.source); got != tt.want {
				t.Errorf("DestName(%q) = %q, want %q", tt.source, got, tt.want)
			}
		})
	}
}
