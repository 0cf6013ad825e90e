package chess

import (
	"fmt"

	"github.com/lgbarn/matesearch-go/internal/errors"
)

// Square is a (file, rank) pair, both 0-based. a1 is {0, 0} and h8 is {7, 7}.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for Square{file, rank}.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid reports whether both coordinates lie on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square df files and dr ranks away. The result may be
// off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// Less orders squares rank-major from a1 to h8.
func (s Square) Less(o Square) bool {
	if s.Rank != o.Rank {
		return s.Rank < o.Rank
	}
	return s.File < o.File
}

// String returns the label of the square, or "-" when it is off the board.
func (s Square) String() string {
	label, err := FormatSquare(s)
	if err != nil {
		return "-"
	}
	return label
}

// ParseSquare converts a label such as "e4" to a square.
func ParseSquare(label string) (Square, error) {
	if len(label) != 2 {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidLabel,
			Input:    label,
			Expected: "file letter and rank digit",
			Got:      fmt.Sprintf("%d characters", len(label)),
		}
	}
	file, rank := label[0], label[1]
	if file < FileBase || file >= FileBase+BoardSize {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidLabel,
			Input:    label,
			Column:   1,
			Expected: "file a-h",
			Got:      fmt.Sprintf("%q", file),
		}
	}
	if rank < RankBase || rank >= RankBase+BoardSize {
		return Square{}, &errors.ParseError{
			Err:      errors.ErrInvalidLabel,
			Input:    label,
			Column:   2,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", rank),
		}
	}
	return Square{File: int(file - FileBase), Rank: int(rank - RankBase)}, nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for fixtures and package-level tables.
func MustParseSquare(label string) Square {
	sq, err := ParseSquare(label)
	if err != nil {
		panic(err)
	}
	return sq
}

// FormatSquare converts a square back to its label.
func FormatSquare(s Square) (string, error) {
	if !s.Valid() {
		return "", errors.Wrapf(errors.ErrOutOfRange, "square (%d,%d)", s.File, s.Rank)
	}
	return string([]byte{FileBase + byte(s.File), RankBase + byte(s.Rank)}), nil
}
