package testutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/matesearch-go/internal/chess"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, nil, nil)
	AssertEqual(t, chess.W(chess.King), chess.Piece{Kind: chess.King, Colour: chess.White}, "piece %s", "king")
}

func TestAssertEqualOpts_SortedSquares(t *testing.T) {
	got := []chess.Square{chess.MustParseSquare("h8"), chess.MustParseSquare("a1")}
	want := []chess.Square{chess.MustParseSquare("a1"), chess.MustParseSquare("h8")}
	AssertEqualOpts(t, got, want, []cmp.Option{SortedSquares})
}

func TestAssertSquares_Success(t *testing.T) {
	king := chess.W(chess.King)
	moves := king.Moves(chess.MustParseSquare("a1"), chess.NewBoard())
	AssertSquares(t, moves, "b1", "a2", "b2")
	AssertSquares(t, nil)
}

func TestAssertErrors_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertNoError(t, nil)
	AssertError(t, sentinel, "expected error from %s", "operation")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
}

func TestAssertTrue_Success(t *testing.T) {
	AssertTrue(t, true)
	AssertTrue(t, len("hello") == 5)
}

func TestAssertNil_Success(t *testing.T) {
	var p *chess.Board
	AssertNil(t, p)
	AssertNil(t, nil)
	AssertNotNil(t, chess.NewBoard())
	AssertNotNil(t, []int{1, 2, 3})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
		{"non-string first", []interface{}{42, "ignored"}, "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func TestPositions(t *testing.T) {
	board := MustPlacement(t, ReferencePlacement)
	AssertEqual(t, board.Len(), 6)

	mated, toMove := MustFEN(t, BackRankMated)
	AssertEqual(t, toMove, chess.Black)
	AssertTrue(t, mated.Len() == 5)

	start, toMove := MustFEN(t, BackRankMateInOne)
	AssertEqual(t, MateKeys(MustSearch(t, start, toMove, 2)), []string{"e1-e8"})

	capturable, toMove := MustFEN(t, KingCapturable)
	AssertEqual(t, MustSearch(t, capturable, toMove, 2).Len(), 0)
}
