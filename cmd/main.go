package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/minuteman3/log-find-time/internal/compare"
	"github.com/minuteman3/log-find-time/internal/search"
	"github.com/minuteman3/log-find-time/internal/segment"
	"github.com/minuteman3/log-find-time/internal/source"
)

func printHelp() {
	helpText := `
Log Find Time - Find the line of a time-sorted log file carrying a specific timestamp

Usage:
  log-find-time [flags] <file|glob> <format> <delimiter> <target>
  log-find-time [flags] <file|glob> <target>
  log-find-time [flags] <file|glob>

Flags:
  --format=FORMAT       Timestamp format, strftime (%Y-%m-%d %H:%M:%S) or Go layout (default: %Y-%m-%d %H:%M:%S)
  --delimiter=DELIM     Text separating the timestamp from the rest of the line (default: " - ")
  --target=TIME         Timestamp to search for, in the same format
  --encoding=NAME       Text encoding (default: detect byte-order mark, else UTF-8)
  --config=FILE         Path to configuration file (default: ~/.log-find-time.ini)
  --verbose             Log search progress to stderr
  --help                Display this help message

Configuration file format (.ini):
  [search]
  format = %Y-%m-%d %H:%M:%S
  delimiter = " - "
  encoding = UTF-8

  [log]
  verbose = false

Example:
  log-find-time app.log "%Y-%m-%d %H:%M:%S" " - " "2023-04-01 12:30:45"
  log-find-time --delimiter=" " --format=2006-01-02 "logs/app-*.log.zst" 2023-04-01
`
	fmt.Println(helpText)
}

func main() {
	// Define command line flags
	configFile := flag.String("config", getDefaultConfigPath(), "Path to configuration file")
	help := flag.Bool("help", false, "Display help message")
	format := flag.String("format", "", "Timestamp format")
	delimiter := flag.String("delimiter", "", "Text separating the timestamp from the rest of the line")
	target := flag.String("target", "", "Timestamp to search for")
	encoding := flag.String("encoding", "", "Text encoding")
	verbose := flag.Bool("verbose", false, "Log search progress to stderr")
	flag.Parse()

	// Check if help flag is set or no arguments provided
	if *help || len(os.Args) == 1 {
		printHelp()
		os.Exit(0)
	}

	// Load config from file
	cfg, err := loadConfig(*configFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Override config with command line flags if provided
	if *format != "" {
		cfg.Format = *format
	}
	if *delimiter != "" {
		cfg.Delimiter = *delimiter
	}
	if *target != "" {
		cfg.Target = *target
	}
	if *encoding != "" {
		cfg.Encoding = *encoding
	}
	if *verbose {
		cfg.Verbose = true
	}

	// Positional arguments win over both
	args := flag.Args()
	var path string
	switch len(args) {
	case 4:
		path, cfg.Format, cfg.Delimiter, cfg.Target = args[0], args[1], args[2], args[3]
	case 2:
		path, cfg.Target = args[0], args[1]
	case 1:
		path = args[0]
	default:
		printHelp()
		os.Exit(2)
	}

	if cfg.Target == "" {
		log.Fatal("Target is required. Pass it as an argument, use --target, or set it in the config file.")
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	found, err := run(ctx, logger, os.Stdout, cfg, path)
	if err != nil {
		stop()
		log.Fatalf("Search failed: %v", err)
	}
	if !found {
		stop()
		os.Exit(1)
	}
}

// run searches the file or glob at path and reports to out. It returns
// whether a matching line was found.
func run(ctx context.Context, logger *slog.Logger, out io.Writer, cfg *config, path string) (bool, error) {
	cmp, err := compare.ByTimeString(cfg.Delimiter, cfg.Format, cfg.Target)
	if err != nil {
		return false, fmt.Errorf("invalid target: %w", err)
	}

	files, err := segment.Expand(path)
	if err != nil {
		return false, err
	}
	if len(files) == 0 {
		return false, fmt.Errorf("no log files match %s", path)
	}

	opened := make([]*source.File, 0, len(files))
	defer func() {
		for _, f := range opened {
			if cerr := f.Close(); cerr != nil {
				logger.Warn("error closing file", "path", f.Path, "error", cerr)
			}
		}
	}()
	segments := make([]segment.Segment, 0, len(files))
	for _, name := range files {
		f, err := source.Open(name, source.Options{Encoding: cfg.Encoding})
		if err != nil {
			return false, fmt.Errorf("failed to open %s: %w", name, err)
		}
		opened = append(opened, f)
		segments = append(segments, segment.Segment{Name: name, Source: f})
	}

	start := time.Now()
	index := 0
	if len(segments) > 1 {
		var exact bool
		index, exact, err = segment.Find(ctx, logger, segments, cmp)
		if err != nil {
			return false, err
		}
		logger.Debug("segment chosen", "path", files[index], "exact", exact)
	}
	file := opened[index]

	fmt.Fprintf(out, "File path: %s\n", file.Path)
	fmt.Fprintf(out, "File size: %d\n", file.Len())

	res, err := search.NewSearcher(logger).Search(ctx, file, file.Len(), cmp)
	if err != nil {
		return false, fmt.Errorf("%s: %w", file.Path, err)
	}
	fmt.Fprintf(out, "Execution took %d ms\n", time.Since(start).Milliseconds())

	if res.Found {
		fmt.Fprintf(out, "Found match '%s'\n", res.Line)
		return true, nil
	}
	fmt.Fprintf(out, "Match not found for pattern '%s'\n", cfg.Target)
	return false, nil
}
