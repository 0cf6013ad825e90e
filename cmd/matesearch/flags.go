// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/matesearch-go/internal/config"
)

var (
	// Starting position
	fenString   = flag.String("fen", "", "Starting position as a FEN string")
	placement   = flag.String("place", "", `Starting position as a placement list, e.g. "wKb3 wQa7 bKc6"`)
	startPos    = flag.Bool("start", false, "Start from the standard initial position")
	sideToMove  = flag.String("side", "", "Side that moves first: w or b (default: from FEN, else white)")
	searchDepth = flag.Int("depth", 3, "Maximum mate line length in half-moves")
	workerCount = flag.Int("workers", 1, "Goroutines expanding each generation")
	maxNodes    = flag.Int("maxnodes", 0, "Stop after generating N boards (0 = no limit)")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	lineLength = flag.Int("w", 80, "Maximum line length for text output")
	showBoards = flag.Bool("board", false, "Print the mating position under each line")
	showStats  = flag.Bool("stats", false, "Include per-ply statistics in the report")

	// Logging
	logFile   = flag.String("l", "", "Write progress and diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 per-ply progress")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Result cache
	useCache     = flag.Bool("cache", false, "Reuse and store results in the on-disk cache")
	cacheDir     = flag.String("cachedir", "", "Cache directory (implies -cache; default: platform data dir)")
	refreshCache = flag.Bool("refresh", false, "Ignore cached results and overwrite them")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applySearchFlags(cfg)
	applyOutputFlags(cfg)
	applyCacheFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	cfg.OutputFilename = *outputFile
	cfg.LogFilename = *logFile
}

// applySearchFlags configures the search. The side to move is settled
// once the starting position is loaded.
func applySearchFlags(cfg *config.Config) {
	cfg.Search.Depth = *searchDepth
	cfg.Search.Workers = *workerCount
	cfg.Search.MaxNodes = *maxNodes
}

// applyOutputFlags configures report formatting.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	if *lineLength >= 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
	cfg.Output.ShowBoards = *showBoards
	cfg.Output.ShowGenerations = *showStats
}

// applyCacheFlags configures the result cache.
func applyCacheFlags(cfg *config.Config) {
	cfg.Cache.Enabled = *useCache || *cacheDir != ""
	cfg.Cache.Dir = *cacheDir
	cfg.Cache.Refresh = *refreshCache
}
