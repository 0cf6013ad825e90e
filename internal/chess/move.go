package chess

import (
	"strings"

	"github.com/lgbarn/matesearch-go/internal/errors"
)

// Move is a single piece relocation. Promotion is NoKind unless a pawn
// reaches its last rank.
type Move struct {
	From      Square
	To        Square
	Promotion Kind
}

// String renders the label form: "a7-b8", or "g7-g8=N" for a promotion.
func (m Move) String() string {
	s := m.From.String() + "-" + m.To.String()
	if m.Promotion != NoKind {
		s += "=" + string(m.Promotion.Letter())
	}
	return s
}

// ParseMove parses the label form produced by Move.String.
func ParseMove(text string) (Move, error) {
	body, promo, hasPromo := strings.Cut(text, "=")
	from, to, ok := strings.Cut(body, "-")
	if !ok {
		return Move{}, &errors.ParseError{Err: errors.ErrInvalidLabel, Input: text, Expected: "from-to"}
	}

	var (
		m   Move
		err error
	)
	if m.From, err = ParseSquare(from); err != nil {
		return Move{}, err
	}
	if m.To, err = ParseSquare(to); err != nil {
		return Move{}, err
	}
	if hasPromo {
		if len(promo) != 1 {
			return Move{}, &errors.ParseError{Err: errors.ErrInvalidLabel, Input: text, Expected: "promotion letter", Got: promo}
		}
		switch kind := KindFromLetter(promo[0]); kind {
		case Queen, Rook, Bishop, Knight:
			m.Promotion = kind
		default:
			return Move{}, &errors.ParseError{Err: errors.ErrInvalidLabel, Input: text, Expected: "Q, R, B or N", Got: promo}
		}
	}
	return m, nil
}

// Sequence is an ordered line of moves from a starting board.
type Sequence []Move

// Key returns the canonical string identifying the line: move labels
// joined by single spaces. The empty sequence has the empty key.
func (s Sequence) Key() string {
	labels := make([]string, len(s))
	for i, m := range s {
		labels[i] = m.String()
	}
	return strings.Join(labels, " ")
}

// String implements fmt.Stringer.
func (s Sequence) String() string {
	return s.Key()
}

// Labels returns the label of every move.
func (s Sequence) Labels() []string {
	labels := make([]string, len(s))
	for i, m := range s {
		labels[i] = m.String()
	}
	return labels
}

// Extend returns a new sequence with m appended. The receiver is never
// modified, so sibling branches of a search never share a backing array.
func (s Sequence) Extend(m Move) Sequence {
	next := make(Sequence, len(s), len(s)+1)
	copy(next, s)
	return append(next, m)
}

// ParseSequence parses a key produced by Sequence.Key.
func ParseSequence(key string) (Sequence, error) {
	fields := strings.Fields(key)
	seq := make(Sequence, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		seq = append(seq, m)
	}
	return seq, nil
}
