package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/matesearch-go/internal/chess"
	"github.com/lgbarn/matesearch-go/internal/config"
	"github.com/lgbarn/matesearch-go/internal/engine"
)

const backRankFEN = "7k/6pp/8/8/8/8/8/K3R3 w - - 0 1"

func backRankReport(t *testing.T) Report {
	t.Helper()
	board, toMove, err := engine.NewBoardFromFEN(backRankFEN)
	if err != nil {
		t.Fatal(err)
	}
	result, err := engine.FindCheckmates(board, toMove, 2)
	if err != nil {
		t.Fatal(err)
	}
	return Report{Start: backRankFEN, Plies: 2, Result: result}
}

// transposedResult has two lines ending on the same board.
func transposedResult(t *testing.T) *engine.Result {
	t.Helper()
	board, mated, err := engine.NewBoardFromFEN("4R2k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	result := &engine.Result{Mates: make(map[string]*engine.MateLine), Nodes: 42}
	for _, key := range []string{"e1-e4 h8-g8 e4-e8", "e1-e8"} {
		moves, err := chess.ParseSequence(key)
		if err != nil {
			t.Fatal(err)
		}
		result.Mates[key] = &engine.MateLine{Moves: moves, Board: board.Copy(), Mated: mated}
	}
	result.Distinct = result.CountDistinct()
	return result
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, backRankReport(t), config.NewOutputConfig()); err != nil {
		t.Fatal(err)
	}

	want := "Start: 7k/6pp/8/8/8/8/8/K3R3 w - - 0 1\n" +
		"Depth: 2 plies\n" +
		"1. e1-e8 { Black is checkmated }\n" +
		"1 mate line, 1 distinct mating position, 16 boards generated\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("WriteText() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteText_Options(t *testing.T) {
	rep := backRankReport(t)
	rep.Cached = true
	cfg := &config.OutputConfig{MaxLineLength: 80, ShowBoards: true, ShowGenerations: true}

	var buf bytes.Buffer
	if err := WriteText(&buf, rep, cfg); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"Ply 1 (White to move): 1 positions, 0 mates, 0 aborted, 16 successors",
		"Ply 2 (Black to move): 16 positions, 1 mates, 0 aborted, 0 successors",
		"e8:White rook",
		"(cached)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestWriteText_DistinctPositions(t *testing.T) {
	rep := Report{Start: "start", Plies: 3, Result: transposedResult(t)}

	var buf bytes.Buffer
	if err := WriteText(&buf, rep, config.NewOutputConfig()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	if got := lines[2]; got != "1. e1-e8 { Black is checkmated }" {
		t.Errorf("shortest line first: got %q", got)
	}
	if got, want := lines[len(lines)-1], "2 mate lines, 1 distinct mating position, 42 boards generated"; got != want {
		t.Errorf("summary = %q; want %q", got, want)
	}
}

func TestWriteText_StartingMate(t *testing.T) {
	board, mated, err := engine.NewBoardFromFEN("4R2k/6pp/8/8/8/8/8/K7 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	result, err := engine.FindCheckmates(board, mated, 1)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteText(&buf, Report{Start: "x", Plies: 1, Result: result}, config.NewOutputConfig()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "1. (start) { Black is checkmated }\n") {
		t.Errorf("starting mate not reported:\n%s", buf.String())
	}
}

func TestOutputWriter_Wrap(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 20, "   ")
	for _, s := range []string{"1.", "a1-a2", "b1-b2", "c1-c2", "d1-d2"} {
		ow.Write(s)
	}
	ow.NewLine()

	want := "1. a1-a2 b1-b2 c1-c2\n   d1-d2\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("wrapped output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.OutputConfig{ShowGenerations: true}
	if err := WriteJSON(&buf, backRankReport(t), cfg); err != nil {
		t.Fatal(err)
	}

	var got JSONReport
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	want := JSONReport{
		Start:    backRankFEN,
		Plies:    2,
		Mates:    []JSONLine{{Moves: []string{"e1-e8"}, Mated: "black", FEN: "4R2k/6pp/8/8/8/8/8/K7 b - - 0 1"}},
		Distinct: 1,
		Nodes:    16,
		Generations: []JSONGeneration{
			{Ply: 0, ToMove: "white", Positions: 1, Successors: 16},
			{Ply: 1, ToMove: "black", Positions: 16, Mates: 1},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON report mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSON_NoMates(t *testing.T) {
	board := chess.NewInitialBoard()
	result, err := engine.FindCheckmates(board, chess.White, 1)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, Report{Start: engine.InitialFEN, Plies: 1, Result: result}, config.NewOutputConfig()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"mates": []`) {
		t.Errorf("empty mate list should encode as []:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "generations") {
		t.Errorf("generations should be omitted by default:\n%s", buf.String())
	}
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithOutput(&buf).Build()
	if _, ok := NewWriter(cfg).(*TextWriter); !ok {
		t.Error("default writer should be text")
	}

	cfg.Output.JSONFormat = true
	w := NewWriter(cfg)
	if _, ok := w.(*JSONWriter); !ok {
		t.Fatal("JSON writer expected")
	}
	if err := w.WriteReport(backRankReport(t)); err != nil {
		t.Fatal(err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("JSON writer produced invalid JSON:\n%s", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteText_ReportsWriteError(t *testing.T) {
	if err := WriteText(failingWriter{}, backRankReport(t), config.NewOutputConfig()); err == nil {
		t.Error("WriteText() error = nil; want write error")
	}
}
