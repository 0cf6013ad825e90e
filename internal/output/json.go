package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/matesearch-go/internal/config"
	"github.com/lgbarn/matesearch-go/internal/engine"
)

// JSONReport represents a search in JSON format.
type JSONReport struct {
	Start       string           `json:"start"`
	Plies       int              `json:"plies"`
	Mates       []JSONLine       `json:"mates"`
	Distinct    int              `json:"distinctPositions"`
	Nodes       int              `json:"nodes"`
	Cached      bool             `json:"cached,omitempty"`
	Generations []JSONGeneration `json:"generations,omitempty"`
}

// JSONLine represents one mate line in JSON format.
type JSONLine struct {
	Moves []string `json:"moves"`
	Mated string   `json:"mated"` // "white" or "black"
	FEN   string   `json:"fen"`
}

// JSONGeneration represents one ply of the search.
type JSONGeneration struct {
	Ply        int    `json:"ply"`
	ToMove     string `json:"toMove"`
	Positions  int    `json:"positions"`
	Mates      int    `json:"mates"`
	Aborted    int    `json:"aborted"`
	Successors int    `json:"successors"`
}

// ReportToJSON converts a report to its JSON form.
func ReportToJSON(rep Report, cfg *config.OutputConfig) *JSONReport {
	jr := &JSONReport{
		Start:    rep.Start,
		Plies:    rep.Plies,
		Mates:    make([]JSONLine, 0, rep.Result.Len()),
		Distinct: rep.Result.Distinct,
		Nodes:    rep.Result.Nodes,
		Cached:   rep.Cached,
	}

	for _, line := range rep.Result.Lines() {
		jr.Mates = append(jr.Mates, JSONLine{
			Moves: line.Moves.Labels(),
			Mated: strings.ToLower(line.Mated.String()),
			FEN:   engine.BoardToFEN(line.Board, line.Mated),
		})
	}

	if cfg.ShowGenerations {
		for _, g := range rep.Result.Generations {
			jr.Generations = append(jr.Generations, JSONGeneration{
				Ply:        g.Ply,
				ToMove:     strings.ToLower(g.ToMove.String()),
				Positions:  g.Positions,
				Mates:      g.Mates,
				Aborted:    g.Aborted,
				Successors: g.Successors,
			})
		}
	}
	return jr
}

// WriteJSON writes the report as an indented JSON object.
func WriteJSON(w io.Writer, rep Report, cfg *config.OutputConfig) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(rep, cfg))
}
