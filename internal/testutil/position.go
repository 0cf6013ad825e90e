package testutil

import (
	"testing"

	"github.com/lgbarn/matesearch-go/internal/chess"
	"github.com/lgbarn/matesearch-go/internal/engine"
)

// Shared positions. FENs carry the side to move.
const (
	// ReferencePlacement is the regression scenario: white Kb3 Qa7 Rd2
	// Bf1 against black Kc6 Pd6.
	ReferencePlacement = "wQa7 wKb3 wRd2 wBf1 bKc6 bPd6"

	// BackRankMateInOne is mate in one for White with e1-e8.
	BackRankMateInOne = "7k/6pp/8/8/8/8/8/K3R3 w - - 0 1"

	// BackRankMated is the position after e1-e8 with Black checkmated.
	BackRankMated = "4R2k/6pp/8/8/8/8/8/K7 b - - 0 1"

	// KingCapturable has Black in check with White to move.
	KingCapturable = "4k3/8/8/8/4R3/8/8/4K3 w - - 0 1"
)

// MustFEN parses a FEN string and calls t.Fatal on failure.
func MustFEN(t *testing.T, fen string) (*chess.Board, chess.Colour) {
	t.Helper()
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to parse FEN %q: %v", fen, err)
	}
	return board, toMove
}

// MustPlacement parses a placement list such as "wKb3 bKc6" and calls
// t.Fatal on failure.
func MustPlacement(t *testing.T, list string) *chess.Board {
	t.Helper()
	board, err := engine.ParsePlacement(list)
	if err != nil {
		t.Fatalf("failed to parse placement %q: %v", list, err)
	}
	return board
}

// MustSearch runs a single-threaded search and calls t.Fatal on error.
func MustSearch(t *testing.T, board *chess.Board, toMove chess.Colour, plies int) *engine.Result {
	t.Helper()
	result, err := engine.FindCheckmates(board, toMove, plies)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	return result
}

// MateKeys returns the sorted move keys of every mate line in result.
func MateKeys(result *engine.Result) []string {
	keys := make([]string, 0, result.Len())
	for _, line := range result.Lines() {
		keys = append(keys, line.Key())
	}
	return keys
}
