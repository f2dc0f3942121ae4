package convert

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/blockfeed/xspf-to-m3u/internal/config"
	"github.com/blockfeed/xspf-to-m3u/internal/http"
	ioutils "github.com/blockfeed/xspf-to-m3u/internal/io"
	"github.com/blockfeed/xspf-to-m3u/internal/m3u"
	"github.com/blockfeed/xspf-to-m3u/internal/xspf"
	"golang.org/x/sync/errgroup"
)

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

// ProgressEvent represents a conversion progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel
}

// Job names one conversion: an XSPF source and an M3U destination.
// The source is a local file path or an http(s) URL.
type Job struct {
	Source string
	Dest   string
}

// Result summarizes one finished conversion.
type Result struct {
	// Title is the playlist title, or the destination file's stem when
	// the source carries no title.
	Title string

	// Entries is the number of track paths written, after anchoring
	// and deduplication.
	Entries int

	// Lines holds the rendered playlist lines, headers included.
	Lines []string

	// Dest is the path the playlist was written to.
	Dest string
}

// Manager coordinates playlist conversions.
type Manager struct {
	settings   *config.Settings
	httpClient *http.Client
	parser     *xspf.Parser
	formatter  *m3u.Formatter

	playlistsWritten int32
	linesWritten     int64
	tracksSkipped    int32

	onProgress func(ProgressEvent)
}

// NewManager creates a new conversion Manager.
func NewManager(settings *config.Settings, onProgress func(ProgressEvent)) *Manager {
	timeout := time.Duration(settings.HTTPTimeoutSeconds) * time.Second

	return &Manager{
		settings:   settings,
		httpClient: http.NewClient(timeout),
		parser:     xspf.NewParser(),
		formatter:  m3u.NewFormatter(settings.ToResolver(), settings.ToFormatOptions()),
		onProgress: onProgress,
	}
}

// Convert runs a single conversion job.
//
// The rendered playlist is built fully in memory and written in one
// piece, so the destination never holds a truncated playlist. Parse
// failures wrap xspf.ErrMalformedPlaylist so callers can tell
// unreadable input from other errors.
func (m *Manager) Convert(ctx context.Context, job Job) (*Result, error) {
	m.progress(ProgressEvent{Message: fmt.Sprintf("Reading %s", job.Source), Level: LevelVerbose})

	data, err := m.readSource(ctx, job.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", job.Source, err)
	}

	playlist, err := m.parser.ParsePlaylist(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XSPF: %w", err)
	}

	name := playlistName(job.Dest)
	title := playlist.Title
	if title == "" {
		title = name
	}
	m.progress(ProgressEvent{Message: fmt.Sprintf("Parsed %s (%d tracks)", title, len(playlist.Tracks)), Level: LevelInfo})

	lines := m.formatter.Lines(name, playlist.Tracks)
	entries := 0
	for _, line := range lines {
		if !strings.HasPrefix(line, "#") {
			entries++
		}
	}
	if entries == 0 {
		m.progress(ProgressEvent{Message: fmt.Sprintf("No usable tracks in %s", job.Source), Level: LevelWarning})
	}

	content := m3u.Render(lines)
	if err := ioutils.WriteFile(ctx, job.Dest, []byte(content)); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", job.Dest, err)
	}

	atomic.AddInt32(&m.playlistsWritten, 1)
	atomic.AddInt64(&m.linesWritten, int64(len(lines)))
	atomic.AddInt32(&m.tracksSkipped, int32(len(playlist.Tracks)-entries))

	m.progress(ProgressEvent{Message: fmt.Sprintf("Wrote %s (%d entries)", job.Dest, entries), Level: LevelSuccess})

	return &Result{
		Title:   title,
		Entries: entries,
		Lines:   lines,
		Dest:    job.Dest,
	}, nil
}

// ConvertAll runs the jobs concurrently, limited by
// settings.MaxConcurrentConversions.
//
// A failing job is reported through the progress callback and does
// not cancel its siblings. After all jobs finish, an aggregate error
// is returned when any of them failed.
func (m *Manager) ConvertAll(ctx context.Context, jobs []Job) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.settings.MaxConcurrentConversions)

	var failed int32
	for _, job := range jobs {
		job := job // capture
		g.Go(func() error {
			if _, err := m.Convert(ctx, job); err != nil {
				m.progress(ProgressEvent{Message: fmt.Sprintf("Error converting %s: %v", job.Source, err), Level: LevelError})
				atomic.AddInt32(&failed, 1)
				return nil // Continue with other jobs
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if n := atomic.LoadInt32(&failed); n > 0 {
		return fmt.Errorf("%d of %d conversions failed", n, len(jobs))
	}
	return nil
}

// GetProgress returns current conversion progress. Skipped counts
// tracks that produced no output line, either because their path did
// not resolve or because an earlier track already claimed it.
func (m *Manager) GetProgress() (playlists int32, lines int64, skipped int32) {
	return atomic.LoadInt32(&m.playlistsWritten),
		atomic.LoadInt64(&m.linesWritten),
		atomic.LoadInt32(&m.tracksSkipped)
}

func (m *Manager) readSource(ctx context.Context, source string) ([]byte, error) {
	if http.IsRemote(source) {
		return m.httpClient.Get(ctx, source)
	}
	return os.ReadFile(source)
}

// DestName maps a source to its default destination file name: the
// source's base name with the extension swapped for .m3u. Used when
// converting a batch into a directory.
func DestName(source string) string {
	return stem(source) + ".m3u"
}

// playlistName returns the destination file's stem, used for the
// Gonic name header and for display when the playlist has no title.
func playlistName(dest string) string {
	return stem(dest)
}

func stem(path string) string {
	base := filepath.Base(path)
	if name := strings.TrimSuffix(base, filepath.Ext(base)); name != "" {
		return name
	}
	return base
}

func (m *Manager) progress(event ProgressEvent) {
	if m.onProgress != nil {
		m.onProgress(event)
	}
}
