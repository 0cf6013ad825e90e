package main

import (
	"testing"

	"github.com/lgbarn/matesearch-go/internal/chess"
	"github.com/lgbarn/matesearch-go/internal/errors"
	"github.com/lgbarn/matesearch-go/internal/testutil"
)

func TestPositionSource_Load(t *testing.T) {
	tests := []struct {
		name     string
		src      positionSource
		wantLen  int
		wantMove chess.Colour
	}{
		{"fen", positionSource{FEN: testutil.BackRankMated}, 5, chess.Black},
		{"fen with side override", positionSource{FEN: testutil.BackRankMated, Side: "w"}, 5, chess.White},
		{"placement", positionSource{Placement: testutil.ReferencePlacement}, 6, chess.White},
		{"placement black", positionSource{Placement: testutil.ReferencePlacement, Side: "black"}, 6, chess.Black},
		{"initial", positionSource{Initial: true}, 32, chess.White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove, err := tt.src.load()
			testutil.AssertNoError(t, err)
			if err != nil {
				return
			}
			testutil.AssertEqual(t, board.Len(), tt.wantLen)
			testutil.AssertEqual(t, toMove, tt.wantMove)
		})
	}
}

func TestPositionSource_LoadErrors(t *testing.T) {
	tests := []struct {
		name string
		src  positionSource
		want error
	}{
		{"none", positionSource{}, errors.ErrInvalidConfig},
		{"two sources", positionSource{FEN: testutil.BackRankMated, Initial: true}, errors.ErrInvalidConfig},
		{"bad side", positionSource{Initial: true, Side: "red"}, errors.ErrInvalidConfig},
		{"bad fen", positionSource{FEN: "8/8/8 w"}, errors.ErrInvalidFEN},
		{"bad placement", positionSource{Placement: "wKz9"}, errors.ErrInvalidLabel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.src.load()
			testutil.AssertErrorIs(t, err, tt.want)
		})
	}
}
