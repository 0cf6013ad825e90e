package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/lgbarn/matesearch-go/internal/chess"
	"github.com/lgbarn/matesearch-go/internal/config"
	"github.com/lgbarn/matesearch-go/internal/engine"
	"github.com/lgbarn/matesearch-go/internal/errors"
	"github.com/lgbarn/matesearch-go/internal/output"
	"github.com/lgbarn/matesearch-go/internal/storage"
)

// logf writes to the log stream when the verbosity is at least level.
func logf(cfg *config.Config, level int, format string, args ...interface{}) {
	if cfg.Verbosity >= level && cfg.LogFile != nil {
		fmt.Fprintf(cfg.LogFile, format, args...)
	}
}

// openCache opens the configured result cache, or returns nil when the
// cache is disabled.
func openCache(cfg *config.Config) (*storage.Cache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		var err error
		if dir, err = storage.DefaultDir(); err != nil {
			return nil, errors.Wrap(err, "locating cache directory")
		}
	}
	logf(cfg, 2, "Using result cache in %s\n", dir)
	return storage.Open(dir)
}

// stoppedEarly reports whether err ended the search before completion
// while leaving a usable partial result.
func stoppedEarly(err error) bool {
	return stderrors.Is(err, errors.ErrNodeLimit) ||
		stderrors.Is(err, context.Canceled) ||
		stderrors.Is(err, context.DeadlineExceeded)
}

// run searches board for mate lines with cfg.Search.ToMove moving first and
// writes the report. Complete results are stored in the cache when it is
// enabled; partial results are reported but never stored.
func run(ctx context.Context, cfg *config.Config, board *chess.Board) error {
	toMove := cfg.Search.ToMove
	startFEN := engine.BoardToFEN(board, toMove)
	key := storage.Key(startFEN, toMove, cfg.Search.Depth)
	writer := output.NewWriter(cfg)

	cache, err := openCache(cfg)
	if err != nil {
		return err
	}
	if cache != nil {
		defer cache.Close()

		if !cfg.Cache.Refresh {
			entry, found, err := cache.Load(key)
			if err != nil {
				return errors.Wrap(err, "reading cache")
			}
			if found {
				result, err := storage.FromStored(entry)
				if err != nil {
					return err
				}
				logf(cfg, 1, "%d mate line(s) loaded from cache.\n", result.Len())
				return writer.WriteReport(output.Report{Start: startFEN, Plies: cfg.Search.Depth, Result: result, Cached: true})
			}
		}
	}

	searcher := engine.NewSearcher(engine.SearchOptions{
		Workers:  cfg.Search.Workers,
		MaxNodes: cfg.Search.MaxNodes,
		Progress: func(g engine.GenerationStats) {
			logf(cfg, 2, "Ply %d: %s to move, %d position(s), %d mate(s), %d successor(s)\n",
				g.Ply+1, g.ToMove, g.Positions, g.Mates, g.Successors)
		},
	})

	began := time.Now()
	result, searchErr := searcher.FindCheckmates(ctx, board, toMove, cfg.Search.Depth)
	if searchErr != nil && !stoppedEarly(searchErr) {
		return searchErr
	}
	if searchErr != nil {
		logf(cfg, 1, "Search stopped early (%v); reporting partial results.\n", searchErr)
	}

	if err := writer.WriteReport(output.Report{Start: startFEN, Plies: cfg.Search.Depth, Result: result}); err != nil {
		return errors.Wrap(err, "writing report")
	}
	logf(cfg, 1, "%d mate line(s) found, %d board(s) generated in %s.\n",
		result.Len(), result.Nodes, time.Since(began).Round(time.Millisecond))

	if searchErr != nil {
		return searchErr
	}
	if cache != nil {
		if err := cache.Save(key, storage.ToStored(result)); err != nil {
			return errors.Wrap(err, "writing cache")
		}
	}
	return nil
}
