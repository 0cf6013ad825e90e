package chess

// Direction tables for the piece kinds. Order matters only for the order in
// which generated squares are reported.
var (
	kingOffsets = [8][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}

	knightOffsets = [8][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}

	diagonalDirs = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}

	straightDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// Moves returns the empty squares the piece standing on sq could move to.
// Generation is pseudo-legal: it looks at geometry and occupancy only and
// never asks whether the mover's king is left in check.
func (p Piece) Moves(sq Square, board *Board) []Square {
	switch p.Kind {
	case King:
		return p.stepMoves(sq, board, kingOffsets[:])
	case Knight:
		return p.stepMoves(sq, board, knightOffsets[:])
	case Bishop:
		return p.rayMoves(sq, board, diagonalDirs[:])
	case Rook:
		return p.rayMoves(sq, board, straightDirs[:])
	case Queen:
		return append(p.rayMoves(sq, board, diagonalDirs[:]), p.rayMoves(sq, board, straightDirs[:])...)
	case Pawn:
		return p.pawnMoves(sq, board)
	case NoKind:
		return nil
	}
	return nil
}

// Attacks returns the squares holding an opposing piece that the piece
// standing on sq threatens.
func (p Piece) Attacks(sq Square, board *Board) []Square {
	switch p.Kind {
	case King:
		return p.stepAttacks(sq, board, kingOffsets[:])
	case Knight:
		return p.stepAttacks(sq, board, knightOffsets[:])
	case Bishop:
		return p.rayAttacks(sq, board, diagonalDirs[:])
	case Rook:
		return p.rayAttacks(sq, board, straightDirs[:])
	case Queen:
		return append(p.rayAttacks(sq, board, diagonalDirs[:]), p.rayAttacks(sq, board, straightDirs[:])...)
	case Pawn:
		return p.pawnAttacks(sq, board)
	case NoKind:
		return nil
	}
	return nil
}

// AtTransformPoint reports whether the piece is a pawn whose next forward
// step reaches the last rank: rank 6 for white, rank 1 for black.
func (p Piece) AtTransformPoint(sq Square) bool {
	if p.Kind != Pawn {
		return false
	}
	if p.Colour == White {
		return sq.Rank == BoardSize-2
	}
	return sq.Rank == 1
}

// startRank returns the rank from which a pawn may advance two squares.
func startRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// stepMoves handles kings and knights: every offset is tried independently.
func (p Piece) stepMoves(sq Square, board *Board, offsets [][2]int) []Square {
	var moves []Square
	for _, off := range offsets {
		to := sq.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		if _, occupied := board.Occupant(to); !occupied {
			moves = append(moves, to)
		}
	}
	return moves
}

func (p Piece) stepAttacks(sq Square, board *Board, offsets [][2]int) []Square {
	var attacks []Square
	for _, off := range offsets {
		to := sq.Offset(off[0], off[1])
		if target, occupied := board.Occupant(to); occupied && target.Colour != p.Colour {
			attacks = append(attacks, to)
		}
	}
	return attacks
}

// rayMoves walks each direction until the edge or the first piece.
func (p Piece) rayMoves(sq Square, board *Board, dirs [][2]int) []Square {
	var moves []Square
	for _, dir := range dirs {
		for to := sq.Offset(dir[0], dir[1]); to.Valid(); to = to.Offset(dir[0], dir[1]) {
			if _, occupied := board.Occupant(to); occupied {
				break
			}
			moves = append(moves, to)
		}
	}
	return moves
}

// rayAttacks walks each direction and reports the first piece met if it is
// an opposing one.
func (p Piece) rayAttacks(sq Square, board *Board, dirs [][2]int) []Square {
	var attacks []Square
	for _, dir := range dirs {
		for to := sq.Offset(dir[0], dir[1]); to.Valid(); to = to.Offset(dir[0], dir[1]) {
			target, occupied := board.Occupant(to)
			if !occupied {
				continue
			}
			if target.Colour != p.Colour {
				attacks = append(attacks, to)
			}
			break
		}
	}
	return attacks
}

func (p Piece) pawnMoves(sq Square, board *Board) []Square {
	dir := ColourOffset(p.Colour)

	one := sq.Offset(0, dir)
	if !one.Valid() {
		return nil
	}
	if _, occupied := board.Occupant(one); occupied {
		return nil
	}
	moves := []Square{one}

	if sq.Rank == startRank(p.Colour) {
		two := sq.Offset(0, 2*dir)
		if _, occupied := board.Occupant(two); !occupied {
			moves = append(moves, two)
		}
	}
	return moves
}

func (p Piece) pawnAttacks(sq Square, board *Board) []Square {
	dir := ColourOffset(p.Colour)
	var attacks []Square
	for _, df := range [2]int{-1, 1} {
		to := sq.Offset(df, dir)
		if target, occupied := board.Occupant(to); occupied && target.Colour != p.Colour {
			attacks = append(attacks, to)
		}
	}
	return attacks
}
