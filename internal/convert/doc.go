// Package convert provides the conversion orchestration logic for
// turning XSPF playlists into M3U files.
//
// # Manager
//
// The Manager coordinates the entire conversion process:
//
//  1. Read the XSPF source (local file or http(s) URL)
//  2. Parse it into tracks
//  3. Anchor each track path to the configured library roots
//  4. Render M3U lines (Extended, minimal or Gonic flavor)
//  5. Write the destination file in one piece
//
// # Basic Usage
//
//	manager := convert.NewManager(settings, func(event convert.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	result, err := manager.Convert(ctx, convert.Job{
//	    Source: "library.xspf",
//	    Dest:   "rockbox.m3u",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d entries\n", result.Entries)
//
// # Batch Conversion
//
// ConvertAll runs several jobs concurrently, limited by
// settings.MaxConcurrentConversions. A failing job does not cancel
// its siblings; the aggregate error reports how many failed.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
package convert
