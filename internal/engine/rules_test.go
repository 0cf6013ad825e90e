package engine

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/matesearch-go/internal/chess"
	"github.com/lgbarn/matesearch-go/internal/errors"
)

// sortedMoveMap compares move maps regardless of target order.
var sortedMoveMap = cmpopts.SortSlices(func(a, b chess.Square) bool { return a.Less(b) })

// mustPlacement builds a board from a placement list or fails the test.
func mustPlacement(t *testing.T, list string) *chess.Board {
	t.Helper()
	board, err := ParsePlacement(list)
	if err != nil {
		t.Fatalf("ParsePlacement(%q) error: %v", list, err)
	}
	return board
}

// mustFEN builds a board from a FEN string or fails the test.
func mustFEN(t *testing.T, fen string) (*chess.Board, chess.Colour) {
	t.Helper()
	board, toMove, err := NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board, toMove
}

// referenceScenario is the regression position: white Kb3 Qa7 Rd2 Bf1
// against black Kc6 and a pawn on d6.
const referenceScenario = "wQa7 wKb3 wRd2 wBf1 bKc6 bPd6"

func TestEvaluate_ReferenceScenario(t *testing.T) {
	board := mustPlacement(t, referenceScenario)

	white, err := Evaluate(board, chess.White)
	if err != nil {
		t.Fatalf("Evaluate(White) error: %v", err)
	}
	if white.InCheck || white.Checkmate {
		t.Errorf("White verdict = %+v; want not in check, not mate", white)
	}

	black, err := Evaluate(board, chess.Black)
	if err != nil {
		t.Fatalf("Evaluate(Black) error: %v", err)
	}
	if black.InCheck || black.Checkmate {
		t.Errorf("Black verdict InCheck=%v Checkmate=%v; want false, false", black.InCheck, black.Checkmate)
	}
	// King c6: b5 b6 b7 c5 c7 d5 d7; pawn d6: d5.
	if got := black.Legal.Count(); got != 8 {
		t.Errorf("Black legal move count = %d; want 8", got)
	}
	if !black.Legal.Contains(chess.MustParseSquare("d6"), chess.MustParseSquare("d5")) {
		t.Error("Black legal moves lack d6-d5")
	}
	if black.King != chess.MustParseSquare("c6") {
		t.Errorf("Black king = %v; want c6", black.King)
	}

	mate, err := CheckMate(board, chess.White)
	if err != nil || mate {
		t.Errorf("CheckMate(White) = %v, %v; want false, nil", mate, err)
	}
}

func TestEvaluate_NoKing(t *testing.T) {
	board := mustPlacement(t, "wQd1 bKe8")
	_, err := Evaluate(board, chess.White)
	if !stderrors.Is(err, errors.ErrNoKing) {
		t.Errorf("Evaluate without a white king error = %v; want ErrNoKing", err)
	}
	if _, err := LegalMoves(board, chess.White); !stderrors.Is(err, errors.ErrNoKing) {
		t.Errorf("LegalMoves error = %v; want ErrNoKing", err)
	}
}

func TestEvaluate_BackRankMate(t *testing.T) {
	board, _ := mustFEN(t, "4R2k/6pp/8/8/8/8/8/K7 b - - 0 1")
	v, err := Evaluate(board, chess.Black)
	if err != nil {
		t.Fatal(err)
	}
	if !v.InCheck || !v.Checkmate {
		t.Errorf("verdict InCheck=%v Checkmate=%v; want true, true", v.InCheck, v.Checkmate)
	}
	if len(v.Legal) != 0 {
		t.Errorf("legal moves = %v; want none", v.Legal)
	}
}

func TestEvaluate_CheckWithEscapes(t *testing.T) {
	board, _ := mustFEN(t, "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1")
	v, err := Evaluate(board, chess.White)
	if err != nil {
		t.Fatal(err)
	}
	if !v.InCheck || v.Checkmate {
		t.Fatalf("verdict InCheck=%v Checkmate=%v; want true, false", v.InCheck, v.Checkmate)
	}
	want := MoveMap{chess.MustParseSquare("e1"): {chess.MustParseSquare("d2"), chess.MustParseSquare("f1")}}
	if diff := cmp.Diff(want, v.Legal, sortedMoveMap); diff != "" {
		t.Errorf("legal moves mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_BlockingEscapes(t *testing.T) {
	// Rook a8 checks along the a-file. The bishop blocks on a2 or a4, the
	// pawn is stuck behind it and the king can only step to b1.
	board := mustPlacement(t, "wKa1 wPb2 wBb3 bRa8 bKh8")
	v, err := Evaluate(board, chess.White)
	if err != nil {
		t.Fatal(err)
	}
	if !v.InCheck || v.Checkmate {
		t.Fatalf("verdict InCheck=%v Checkmate=%v; want true, false", v.InCheck, v.Checkmate)
	}
	want := MoveMap{
		chess.MustParseSquare("a1"): {chess.MustParseSquare("b1")},
		chess.MustParseSquare("b3"): {chess.MustParseSquare("a2"), chess.MustParseSquare("a4")},
	}
	if diff := cmp.Diff(want, v.Legal, sortedMoveMap); diff != "" {
		t.Errorf("legal moves mismatch (-want +got):\n%s", diff)
	}
}

// TestEvaluate_PinnedPieceNotFiltered documents that moves are not checked
// for exposing the king when the king is not already in check.
func TestEvaluate_PinnedPieceNotFiltered(t *testing.T) {
	board := mustPlacement(t, "wKe1 wBe2 bRe8 bKa8")
	v, err := Evaluate(board, chess.White)
	if err != nil {
		t.Fatal(err)
	}
	if v.InCheck {
		t.Fatal("white should not be in check")
	}
	if !v.Legal.Contains(chess.MustParseSquare("e2"), chess.MustParseSquare("d3")) {
		t.Error("pinned bishop move e2-d3 missing from the unfiltered move map")
	}
}

func TestEvaluate_DoesNotModifyBoard(t *testing.T) {
	board, _ := mustFEN(t, "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1")
	before := board.Pieces()

	if _, err := Evaluate(board, chess.White); err != nil {
		t.Fatal(err)
	}
	if _, err := Evaluate(board, chess.Black); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(before, board.Pieces()); diff != "" {
		t.Errorf("Evaluate changed the board (-before +after):\n%s", diff)
	}
}

func TestPseudoLegalMoves_InitialPosition(t *testing.T) {
	moves, king, err := PseudoLegalMoves(chess.NewInitialBoard(), chess.White)
	if err != nil {
		t.Fatal(err)
	}
	if king != chess.MustParseSquare("e1") {
		t.Errorf("king = %v; want e1", king)
	}
	if got := moves.Count(); got != 20 {
		t.Errorf("Count() = %d; want 20", got)
	}
	if got := len(moves.Origins()); got != 16 {
		t.Errorf("len(Origins()) = %d; want 16", got)
	}
}

func TestMoveMap_MovesOrder(t *testing.T) {
	mm := MoveMap{
		chess.MustParseSquare("g1"): {chess.MustParseSquare("f3"), chess.MustParseSquare("h3")},
		chess.MustParseSquare("b1"): {chess.MustParseSquare("c3")},
	}
	var got []string
	for _, m := range mm.Moves() {
		got = append(got, m.String())
	}
	want := []string{"b1-c3", "g1-f3", "g1-h3"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Moves() mismatch (-want +got):\n%s", diff)
	}
}
