package main

import (
	"fmt"

	"github.com/lgbarn/matesearch-go/internal/chess"
	"github.com/lgbarn/matesearch-go/internal/engine"
	"github.com/lgbarn/matesearch-go/internal/errors"
)

// positionSource names where the starting position comes from.
type positionSource struct {
	FEN       string
	Placement string
	Initial   bool
	Side      string // Overrides the FEN side to move when set
}

// sourceFromFlags collects the position flags.
func sourceFromFlags() positionSource {
	return positionSource{FEN: *fenString, Placement: *placement, Initial: *startPos, Side: *sideToMove}
}

// load builds the starting board and the side to move. Exactly one of the
// three sources must be set.
func (s positionSource) load() (*chess.Board, chess.Colour, error) {
	set := 0
	for _, given := range []bool{s.FEN != "", s.Placement != "", s.Initial} {
		if given {
			set++
		}
	}
	if set != 1 {
		return nil, chess.White, fmt.Errorf("exactly one of -fen, -place or -start is required: %w", errors.ErrInvalidConfig)
	}

	var (
		board  *chess.Board
		toMove = chess.White
		err    error
	)
	switch {
	case s.FEN != "":
		board, toMove, err = engine.NewBoardFromFEN(s.FEN)
	case s.Placement != "":
		board, err = engine.ParsePlacement(s.Placement)
	default:
		board = chess.NewInitialBoard()
	}
	if err != nil {
		return nil, chess.White, err
	}

	if s.Side != "" {
		colour, ok := chess.ParseColour(s.Side)
		if !ok {
			return nil, chess.White, fmt.Errorf("side %q is not w or b: %w", s.Side, errors.ErrInvalidConfig)
		}
		toMove = colour
	}
	return board, toMove, nil
}
