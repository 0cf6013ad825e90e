// Package output formats search results as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/matesearch-go/internal/config"
	"github.com/lgbarn/matesearch-go/internal/engine"
)

// Report is one finished search and the position it started from.
type Report struct {
	Start  string // FEN of the starting position
	Plies  int
	Result *engine.Result
	Cached bool // Result came from the cache
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	indent        string
}

// NewOutputWriter creates a new output writer. Continuation lines are
// prefixed with indent. A maxLineLength of 0 means 80.
func NewOutputWriter(w io.Writer, maxLineLength int, indent string) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
		indent:        indent,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			fmt.Fprint(o.w, o.indent)
			o.lineLength = len(o.indent)
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteText writes one line per mate, shortest first, followed by a summary.
//
//	1. e1-e8 { Black is checkmated }
func WriteText(w io.Writer, rep Report, cfg *config.OutputConfig) error {
	ew := &errWriter{w: w}
	fmt.Fprintf(ew, "Start: %s\n", rep.Start)
	fmt.Fprintf(ew, "Depth: %d plies\n", rep.Plies)

	if cfg.ShowGenerations {
		for _, g := range rep.Result.Generations {
			fmt.Fprintf(ew, "Ply %d (%s to move): %d positions, %d mates, %d aborted, %d successors\n",
				g.Ply+1, g.ToMove, g.Positions, g.Mates, g.Aborted, g.Successors)
		}
	}

	for i, line := range rep.Result.Lines() {
		ow := NewOutputWriter(ew, int(cfg.MaxLineLength), "   ")
		ow.Write(fmt.Sprintf("%d.", i+1))
		if len(line.Moves) == 0 {
			ow.Write("(start)")
		}
		for _, label := range line.Moves.Labels() {
			ow.Write(label)
		}
		ow.Write(fmt.Sprintf("{ %s is checkmated }", line.Mated))
		ow.NewLine()

		if cfg.ShowBoards {
			fmt.Fprintf(ew, "%s\n", line.Board)
		}
	}

	fmt.Fprintf(ew, "%s, %s, %d boards generated", plural(rep.Result.Len(), "mate line"),
		plural(rep.Result.Distinct, "distinct mating position"), rep.Result.Nodes)
	if rep.Cached {
		fmt.Fprint(ew, " (cached)")
	}
	fmt.Fprintln(ew)
	return ew.err
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// errWriter remembers the first write error so formatting code can ignore
// per-call errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
