package engine

import (
	"testing"

	nchess "github.com/notnil/chess"
)

// TestEvaluate_AgreesWithReferenceLibrary cross-checks in-check positions
// against github.com/notnil/chess. When the side to move is in check every
// candidate is filtered, so the verdict and the number of legal moves must
// agree with a full rules implementation. None of the positions involve en
// passant or promotion, which are counted differently.
func TestEvaluate_AgreesWithReferenceLibrary(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		mate bool
	}{
		{"back rank black", "4R2k/6pp/8/8/8/8/8/K7 b - - 0 1", true},
		{"back rank white", "k7/8/8/8/8/8/5PPP/r5K1 w - - 0 1", true},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true},
		{"scholar's mate", "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4", true},
		{"smothered mate", "6rk/5Npp/8/8/8/8/8/7K b - - 0 1", true},
		{"rook check", "4k3/8/8/8/8/8/8/4R2K b - - 0 1", false},
		{"queen check with capture", "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1", false},
		{"block or step aside", "7k/8/8/8/8/1B6/1P6/K6r w - - 0 1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove := mustFEN(t, tt.fen)
			v, err := Evaluate(board, toMove)
			if err != nil {
				t.Fatal(err)
			}
			if !v.InCheck {
				t.Fatalf("position is not check for %v", toMove)
			}

			opt, err := nchess.FEN(tt.fen)
			if err != nil {
				t.Fatalf("reference FEN parse: %v", err)
			}
			game := nchess.NewGame(opt)
			refMate := game.Position().Status() == nchess.Checkmate

			if v.Checkmate != tt.mate || refMate != tt.mate {
				t.Errorf("Checkmate = %v, reference = %v; want %v", v.Checkmate, refMate, tt.mate)
			}
			if got, want := v.Legal.Count(), len(game.ValidMoves()); got != want {
				t.Errorf("legal move count = %d; reference = %d\n%s", got, want, board)
			}
		})
	}
}
