package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/matesearch-go/internal/chess"
	"github.com/lgbarn/matesearch-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewBoardFromFEN creates a board from a FEN string and returns the side to
// move (White when the field is absent). Castling, en passant and the move
// clocks are accepted but not used by the rules engine.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}
	return board, toMove, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	for i := 0; i < len(positions); i++ {
		c := positions[i]
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return placementError(positions, i, "8 files per rank", fmt.Sprintf("%d", file))
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > chess.BoardSize {
				return placementError(positions, i, "at most 8 files", fmt.Sprintf("%d", file))
			}
		default:
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return placementError(positions, i, "piece letter", fmt.Sprintf("%q", c))
			}
			if err := board.Place(chess.Sq(file, rank), piece); err != nil {
				return placementError(positions, i, "square on the board", "overflow")
			}
			file++
		}
	}
	if rank != 0 || file != chess.BoardSize {
		return placementError(positions, len(positions), "8 complete ranks", "truncated placement")
	}
	return nil
}

func placementError(input string, index int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Input:    input,
		Column:   index + 1,
		Expected: expected,
		Got:      got,
	}
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// BoardToFEN converts a board to a FEN string. Castling and en passant are
// always "-" and the clocks are "0 1".
func BoardToFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(toMove.Letter())
	sb.WriteString(" - - 0 1")
	return sb.String()
}

// writePiecePositions writes the piece placement field.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.Occupant(chess.Sq(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// ParsePlacement builds a board from a list of placements such as
// "wKb3 wQa7 bKc6". Each entry is a colour letter, a piece letter and a
// square label; entries are separated by spaces or commas.
func ParsePlacement(list string) (*chess.Board, error) {
	board := chess.NewBoard()
	entries := strings.FieldsFunc(list, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
	if len(entries) == 0 {
		return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: list, Expected: "at least one placement"}
	}

	for _, entry := range entries {
		if len(entry) != 4 {
			return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: entry, Expected: "colour, piece and square (e.g. wKb3)"}
		}
		colour, ok := chess.ParseColour(entry[:1])
		if !ok {
			return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: entry, Column: 1, Expected: "w or b", Got: entry[:1]}
		}
		kind := chess.KindFromLetter(entry[1])
		if kind == chess.NoKind {
			return nil, &errors.ParseError{Err: errors.ErrInvalidFEN, Input: entry, Column: 2, Expected: "piece letter", Got: entry[1:2]}
		}
		sq, err := chess.ParseSquare(entry[2:])
		if err != nil {
			return nil, errors.Wrapf(err, "placement %q", entry)
		}
		if err := board.Place(sq, chess.Piece{Kind: kind, Colour: colour}); err != nil {
			return nil, err
		}
	}
	return board, nil
}
