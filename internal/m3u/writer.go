package m3u

import (
	"fmt"
	"strings"

	"github.com/blockfeed/xspf-to-m3u/internal/anchor"
	"github.com/blockfeed/xspf-to-m3u/internal/model"
)

// Options controls the playlist flavor a Formatter produces.
//
// Three flavors exist:
//   - Extended M3U (both Include flags true, no GonicBase): #EXTM3U
//     header plus an #EXTINF line per track. Understood by Rockbox
//     and most players.
//   - Minimal M3U (both Include flags false): bare paths, one per line.
//   - Gonic (GonicBase non-empty): #GONIC-* headers, each path prefixed
//     with the library base. Gonic mode always implies a minimal body.
type Options struct {
	// IncludeExtendedHeader emits the #EXTM3U header line.
	// Ignored when GonicBase is set.
	IncludeExtendedHeader bool

	// IncludeExtendedInfo emits one #EXTINF line per track, before
	// its path line. Ignored when GonicBase is set.
	IncludeExtendedInfo bool

	// GonicBase is the absolute library prefix for Gonic-style output
	// (e.g. "/mnt/g/Music/"). Empty disables Gonic mode.
	GonicBase string
}

// Formatter renders anchored track lists as M3U playlist lines.
//
// Example:
//
//	resolver := anchor.NewResolver([]string{"Music"})
//	formatter := m3u.NewFormatter(resolver, m3u.Options{
//	    IncludeExtendedHeader: true,
//	    IncludeExtendedInfo:   true,
//	})
//
//	lines := formatter.Lines("roadtrip", playlist.Tracks)
//	os.WriteFile("roadtrip.m3u", []byte(m3u.Render(lines)), 0644)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:192,Artist - Song
//	// Artist/Album/Song.mp3
type Formatter struct {
	resolver  *anchor.Resolver
	header    bool
	info      bool
	gonicBase string
}

// NewFormatter creates a Formatter that anchors paths with resolver
// and renders according to opts.
func NewFormatter(resolver *anchor.Resolver, opts Options) *Formatter {
	header := opts.IncludeExtendedHeader
	info := opts.IncludeExtendedInfo
	if opts.GonicBase != "" {
		header, info = false, false
	}
	return &Formatter{
		resolver:  resolver,
		header:    header,
		info:      info,
		gonicBase: opts.GonicBase,
	}
}

// Lines renders the tracks as playlist lines, in order, without
// trailing newlines.
//
// Each track's path is anchored through the resolver; tracks that
// resolve to nothing are skipped. Tracks resolving to an output path
// already emitted are skipped too, first occurrence wins. In Gonic
// mode the name is written into the #GONIC-NAME header, typically the
// output file's stem.
func (f *Formatter) Lines(name string, tracks []*model.Track) []string {
	var lines []string
	if f.header {
		lines = append(lines, "#EXTM3U")
	}

	seen := make(map[string]struct{}, len(tracks))
	for _, track := range tracks {
		rel := f.resolver.Resolve(track.Path)
		if rel == "" {
			continue
		}
		outPath := rel
		if f.gonicBase != "" {
			outPath = joinBase(f.gonicBase, rel)
		}
		if _, dup := seen[outPath]; dup {
			continue
		}
		seen[outPath] = struct{}{}

		if f.info {
			duration := track.DurationSecs
			if duration < 0 {
				duration = model.UnknownDuration
			}
			lines = append(lines, fmt.Sprintf("#EXTINF:%d,%s", duration, track.DisplayTitle(rel)))
		}
		lines = append(lines, outPath)
	}

	if f.gonicBase != "" {
		headers := []string{
			fmt.Sprintf("#GONIC-NAME:\"%s\"", name),
			`#GONIC-COMMENT:""`,
			`#GONIC-IS-PUBLIC:"false"`,
		}
		lines = append(headers, lines...)
	}

	return lines
}

// Render joins playlist lines into file content, terminating every
// line with "\n". An empty line list renders as empty content.
func Render(lines []string) string {
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// joinBase glues the library base and a relative path with exactly one
// slash between them, regardless of how either side is decorated.
func joinBase(base, rel string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(rel, "/")
}
