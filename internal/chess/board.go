package chess

import (
	"sort"
	"strings"

	"github.com/lgbarn/matesearch-go/internal/errors"
)

// Board maps occupied squares to pieces. At most one piece stands on a
// square. Nothing else is enforced: a board may hold no king or several
// kings of a colour while the search explores it, so callers check for the
// king before relying on it.
type Board struct {
	squares map[Square]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{squares: make(map[Square]Piece)}
}

// NewInitialBoard creates a board holding the standard starting position.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and sets up the standard chess
// starting position.
func (b *Board) SetupInitialPosition() {
	b.squares = make(map[Square]Piece, 32)

	backRank := []Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.squares[Sq(file, 0)] = W(backRank[file])
		b.squares[Sq(file, 1)] = W(Pawn)
		b.squares[Sq(file, 6)] = B(Pawn)
		b.squares[Sq(file, 7)] = B(backRank[file])
	}
}

// Copy returns a board with its own square map. Pieces are values and are
// shared freely.
func (b *Board) Copy() *Board {
	squares := make(map[Square]Piece, len(b.squares))
	for sq, p := range b.squares {
		squares[sq] = p
	}
	return &Board{squares: squares}
}

// Place puts a piece on a square, replacing any occupant.
func (b *Board) Place(sq Square, p Piece) error {
	if !sq.Valid() {
		return errors.Wrapf(errors.ErrOutOfRange, "place %s at (%d,%d)", p, sq.File, sq.Rank)
	}
	b.squares[sq] = p
	return nil
}

// Remove takes the piece off a square and returns it.
func (b *Board) Remove(sq Square) (Piece, bool) {
	p, ok := b.squares[sq]
	if ok {
		delete(b.squares, sq)
	}
	return p, ok
}

// Occupant returns the piece on a square without removing it.
func (b *Board) Occupant(sq Square) (Piece, bool) {
	p, ok := b.squares[sq]
	return p, ok
}

// Len returns the number of pieces on the board.
func (b *Board) Len() int {
	return len(b.squares)
}

// Pieces returns a copy of the full square-to-piece map.
func (b *Board) Pieces() map[Square]Piece {
	return b.filter(func(Piece) bool { return true })
}

// ByColour returns the pieces of one colour keyed by square.
func (b *Board) ByColour(colour Colour) map[Square]Piece {
	return b.filter(func(p Piece) bool { return p.Colour == colour })
}

// ByKindColour returns the pieces of one kind and colour keyed by square.
func (b *Board) ByKindColour(kind Kind, colour Colour) map[Square]Piece {
	return b.filter(func(p Piece) bool { return p.Kind == kind && p.Colour == colour })
}

func (b *Board) filter(keep func(Piece) bool) map[Square]Piece {
	res := make(map[Square]Piece)
	for sq, p := range b.squares {
		if keep(p) {
			res[sq] = p
		}
	}
	return res
}

// Squares returns the occupied squares of a colour in a1..h8 order.
func (b *Board) Squares(colour Colour) []Square {
	var squares []Square
	for sq, p := range b.squares {
		if p.Colour == colour {
			squares = append(squares, sq)
		}
	}
	SortSquares(squares)
	return squares
}

// KingSquare returns the square of the colour's king. When several kings of
// the colour are present the lowest square in a1..h8 order wins.
func (b *Board) KingSquare(colour Colour) (Square, bool) {
	var (
		king  Square
		found bool
	)
	for sq, p := range b.squares {
		if p.Kind != King || p.Colour != colour {
			continue
		}
		if !found || sq.Less(king) {
			king, found = sq, true
		}
	}
	return king, found
}

// Equal reports whether two boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	if len(b.squares) != len(other.squares) {
		return false
	}
	for sq, p := range b.squares {
		if q, ok := other.squares[sq]; !ok || q != p {
			return false
		}
	}
	return true
}

// ApplyMove plays the piece on from to to. It returns false, leaving the
// board untouched, when to holds a king: a king capture means the previous
// move was illegal. A pawn at its transform point becomes a piece of the
// promotion kind (queen when NoKind is given); any other piece is relocated,
// capturing whatever stood on to.
func (b *Board) ApplyMove(from, to Square, promotion Kind) (bool, error) {
	if !from.Valid() || !to.Valid() {
		return false, errors.Wrapf(errors.ErrOutOfRange, "move (%d,%d)-(%d,%d)", from.File, from.Rank, to.File, to.Rank)
	}
	if target, ok := b.squares[to]; ok && target.Kind == King {
		return false, nil
	}
	piece, ok := b.squares[from]
	if !ok {
		return false, errors.Wrapf(errors.ErrEmptyCell, "move from %s", from)
	}

	delete(b.squares, from)
	if piece.AtTransformPoint(from) {
		b.squares[to] = piece.Promote(promotion)
	} else {
		b.squares[to] = piece
	}
	return true, nil
}

// Apply plays a Move. See ApplyMove.
func (b *Board) Apply(m Move) (bool, error) {
	return b.ApplyMove(m.From, m.To, m.Promotion)
}

// IsAttacked reports whether any piece of colour by has sq among its attacks.
func (b *Board) IsAttacked(sq Square, by Colour) bool {
	for from, p := range b.squares {
		if p.Colour != by {
			continue
		}
		for _, target := range p.Attacks(from, b) {
			if target == sq {
				return true
			}
		}
	}
	return false
}

// String lists the white pieces on the first line and the black pieces on
// the second, e.g. "b3:White king; a7:White queen; ".
func (b *Board) String() string {
	var sb strings.Builder
	for i, colour := range []Colour{White, Black} {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, sq := range b.Squares(colour) {
			sb.WriteString(sq.String())
			sb.WriteByte(':')
			sb.WriteString(b.squares[sq].String())
			sb.WriteString("; ")
		}
	}
	return sb.String()
}

// SortSquares sorts squares in a1..h8 order.
func SortSquares(squares []Square) {
	sort.Slice(squares, func(i, j int) bool { return squares[i].Less(squares[j]) })
}
