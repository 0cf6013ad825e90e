// Package engine provides chess rule evaluation and the forced-mate search.
package engine

import (
	"github.com/lgbarn/matesearch-go/internal/chess"
	"github.com/lgbarn/matesearch-go/internal/errors"
)

// MoveMap maps an origin square to the destinations available from it.
type MoveMap map[chess.Square][]chess.Square

// Count returns the total number of (origin, destination) pairs.
func (mm MoveMap) Count() int {
	n := 0
	for _, targets := range mm {
		n += len(targets)
	}
	return n
}

// Origins returns the origin squares in a1..h8 order.
func (mm MoveMap) Origins() []chess.Square {
	origins := make([]chess.Square, 0, len(mm))
	for sq := range mm {
		origins = append(origins, sq)
	}
	chess.SortSquares(origins)
	return origins
}

// Moves flattens the map into moves ordered by origin, then by the order in
// which destinations were generated. Promotion is left unset.
func (mm MoveMap) Moves() []chess.Move {
	moves := make([]chess.Move, 0, mm.Count())
	for _, from := range mm.Origins() {
		for _, to := range mm[from] {
			moves = append(moves, chess.Move{From: from, To: to})
		}
	}
	return moves
}

// Contains reports whether from-to is in the map.
func (mm MoveMap) Contains(from, to chess.Square) bool {
	for _, sq := range mm[from] {
		if sq == to {
			return true
		}
	}
	return false
}

// Verdict is the rule evaluator's answer for one colour to move.
type Verdict struct {
	// King is the square of the evaluated colour's king.
	King chess.Square

	// InCheck is true if the king is attacked by the opposing colour.
	InCheck bool

	// Checkmate is true if the king is in check and no candidate move
	// removes the attack.
	Checkmate bool

	// Legal holds the moves available to the colour. When not in check these
	// are the unfiltered pseudo-legal moves: a move that exposes the king
	// (a pinned piece, or the king stepping next to an attacker) is not
	// removed.
	Legal MoveMap
}

// PseudoLegalMoves unions moves and attacks for every piece of the colour,
// keyed by origin. It also returns the king square and fails with
// ErrNoKing if the colour has no king.
func PseudoLegalMoves(board *chess.Board, colour chess.Colour) (MoveMap, chess.Square, error) {
	king, ok := board.KingSquare(colour)
	if !ok {
		return nil, chess.Square{}, errors.Wrapf(errors.ErrNoKing, "%s to move", colour)
	}

	moves := make(MoveMap)
	for sq, p := range board.ByColour(colour) {
		targets := p.Attacks(sq, board)
		targets = append(targets, p.Moves(sq, board)...)
		moves[sq] = targets
	}
	return moves, king, nil
}

// Evaluate computes the legal moves and the checkmate verdict for colour.
// The board is never modified; candidate moves are tried on copies.
func Evaluate(board *chess.Board, colour chess.Colour) (Verdict, error) {
	candidates, king, err := PseudoLegalMoves(board, colour)
	if err != nil {
		return Verdict{}, err
	}

	v := Verdict{King: king}
	if !board.IsAttacked(king, colour.Opposite()) {
		v.Legal = candidates
		return v, nil
	}

	v.InCheck = true
	v.Legal = make(MoveMap)
	for _, from := range candidates.Origins() {
		for _, to := range candidates[from] {
			if escapesCheck(board, colour, king, from, to) {
				v.Legal[from] = append(v.Legal[from], to)
			}
		}
	}
	v.Checkmate = len(v.Legal) == 0
	return v, nil
}

// escapesCheck plays from-to on a copy and reports whether the king is
// safe afterwards. A move that would capture a king is never an escape.
func escapesCheck(board *chess.Board, colour chess.Colour, king, from, to chess.Square) bool {
	trial := board.Copy()
	ok, err := trial.ApplyMove(from, to, chess.NoKind)
	if err != nil || !ok {
		return false
	}
	if from == king {
		king = to
	}
	return !trial.IsAttacked(king, colour.Opposite())
}

// CheckMate reports whether colour is checkmated.
func CheckMate(board *chess.Board, colour chess.Colour) (bool, error) {
	v, err := Evaluate(board, colour)
	if err != nil {
		return false, err
	}
	return v.Checkmate, nil
}

// LegalMoves returns the legal move map for colour.
func LegalMoves(board *chess.Board, colour chess.Colour) (MoveMap, error) {
	v, err := Evaluate(board, colour)
	if err != nil {
		return nil, err
	}
	return v.Legal, nil
}
