package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/blockfeed/xspf-to-m3u/internal/config"
	"github.com/blockfeed/xspf-to-m3u/internal/convert"
	ioutils "github.com/blockfeed/xspf-to-m3u/internal/io"
	"github.com/blockfeed/xspf-to-m3u/internal/xspf"
)

// stringList collects repeated flag values.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func main() {
	// Command line flags
	var anchorsFlag stringList
	flag.Var(&anchorsFlag, "strip-after", "Folder name to strip everything up to (repeatable; case-insensitive; default: Music)")
	var (
		noExtM3UFlag = flag.Bool("no-extm3u", false, "Write a minimal M3U (omit #EXTM3U header and #EXTINF lines)")
		gonicFlag    = flag.String("gonic", "", "Write a Gonic-style M3U with this absolute library prefix (implies -no-extm3u)")
		outdirFlag   = flag.String("outdir", "", "Convert each input into this directory as <input>.m3u")
		configFlag   = flag.String("config", "", "Path to config file")
		saveFlag     = flag.Bool("save-config", false, "Write the effective settings back to the -config file")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	args := flag.Args()
	singleMode := *outdirFlag == ""
	if (singleMode && len(args) != 2) || (!singleMode && len(args) == 0) {
		printUsage()
		os.Exit(1)
	}

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if len(anchorsFlag) > 0 {
		settings.StripAfter = anchorsFlag
	}
	if *noExtM3UFlag {
		settings.ExtendedM3U = false
	}
	if *gonicFlag != "" {
		settings.GonicBase = *gonicFlag
	}

	if *saveFlag {
		if *configFlag == "" {
			fmt.Fprintln(os.Stderr, "Error: -save-config requires -config")
			os.Exit(1)
		}
		if err := settings.Save(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
			os.Exit(1)
		}
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	// Create manager with progress callback
	manager := convert.NewManager(settings, func(event convert.ProgressEvent) {
		if event.Level == convert.LevelVerbose && !*verboseFlag {
			return
		}

		prefix := ""
		switch event.Level {
		case convert.LevelError:
			prefix = "❌ "
		case convert.LevelWarning:
			prefix = "⚠️  "
		case convert.LevelSuccess:
			prefix = "✅ "
		case convert.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		fmt.Println(prefix + event.Message)
	})

	if singleMode {
		runSingle(ctx, manager, args[0], args[1])
		return
	}
	runBatch(ctx, manager, args, *outdirFlag)
}

func runSingle(ctx context.Context, manager *convert.Manager, source, dest string) {
	result, err := manager.Convert(ctx, convert.Job{Source: source, Dest: dest})
	if err != nil {
		exitWithError(ctx, err)
	}

	fmt.Printf("✨ Complete! %s (%d entries)\n", result.Dest, result.Entries)
}

func runBatch(ctx context.Context, manager *convert.Manager, sources []string, outdir string) {
	if err := ioutils.EnsureDir(outdir); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outdir, err)
		os.Exit(1)
	}

	jobs := make([]convert.Job, 0, len(sources))
	dests := make(map[string]string, len(sources))
	for _, source := range sources {
		dest := filepath.Join(outdir, convert.DestName(source))
		if prev, dup := dests[dest]; dup {
			fmt.Fprintf(os.Stderr, "Error: %s and %s both map to %s\n", prev, source, dest)
			os.Exit(1)
		}
		dests[dest] = source
		jobs = append(jobs, convert.Job{Source: source, Dest: dest})
	}

	if err := manager.ConvertAll(ctx, jobs); err != nil {
		exitWithError(ctx, err)
	}

	playlists, lines, skipped := manager.GetProgress()
	fmt.Println()
	fmt.Printf("✨ Complete! Converted %d playlists (%d lines, %d tracks skipped)\n", playlists, lines, skipped)
}

func exitWithError(ctx context.Context, err error) {
	if ctx.Err() != nil {
		fmt.Println("\nConversion cancelled.")
		os.Exit(130)
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, xspf.ErrMalformedPlaylist) {
		os.Exit(2)
	}
	os.Exit(1)
}

func printUsage() {
	fmt.Println("XSPF to M3U - Convert XSPF playlists to M3U (Rockbox/Gonic)")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  xspf-to-m3u [options] <input.xspf> <output.m3u>")
	fmt.Println("  xspf-to-m3u [options] -outdir <dir> <input.xspf> [input.xspf ...]")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  # Basic conversion (Extended M3U by default, strip after 'Music')")
	fmt.Println("  xspf-to-m3u library.xspf rockbox.m3u")
	fmt.Println()
	fmt.Println("  # Strip after a custom library root")
	fmt.Println("  xspf-to-m3u -strip-after Audio library.xspf rockbox.m3u")
	fmt.Println()
	fmt.Println("  # Multiple anchors (first match wins)")
	fmt.Println("  xspf-to-m3u -strip-after Music -strip-after Library library.xspf rockbox.m3u")
	fmt.Println()
	fmt.Println("  # Write minimal M3U (no #EXTM3U/#EXTINF)")
	fmt.Println("  xspf-to-m3u -no-extm3u library.xspf rockbox.m3u")
	fmt.Println()
	fmt.Println("  # Gonic format (prepend headers and prefix each path with a base library path)")
	fmt.Println("  xspf-to-m3u -gonic /mnt/g/Music/ -strip-after Music in.xspf gonic.m3u")
	fmt.Println()
	fmt.Println("  # Convert a batch into a directory")
	fmt.Println("  xspf-to-m3u -outdir playlists a.xspf b.xspf c.xspf")
	fmt.Println()
	fmt.Println("For interactive mode, use: xspf-to-m3u-tui")
	fmt.Println()
	flag.PrintDefaults()
}
