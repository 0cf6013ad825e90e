package engine

import (
	"context"
	"sort"

	"github.com/lgbarn/matesearch-go/internal/chess"
	"github.com/lgbarn/matesearch-go/internal/errors"
	"github.com/lgbarn/matesearch-go/internal/hashing"
	"github.com/lgbarn/matesearch-go/internal/worker"
)

// MateLine is one forced-mate line: the moves played from the starting
// board and the board on which the side to move is checkmated.
type MateLine struct {
	Moves chess.Sequence
	Board *chess.Board
	Mated chess.Colour
}

// Key returns the move sequence key identifying the line.
func (l *MateLine) Key() string {
	return l.Moves.Key()
}

// GenerationStats describes one ply of the breadth-first search.
type GenerationStats struct {
	Ply        int          // 0-based ply
	ToMove     chess.Colour // Side to move in every position of the generation
	Positions  int          // Positions evaluated
	Mates      int          // Positions found to be checkmate
	Aborted    int          // Positions whose expansion found a capturable king
	Successors int          // Positions handed to the next generation
}

// Result holds every mate line found by a search.
type Result struct {
	// Mates maps a move sequence key to its line.
	Mates map[string]*MateLine

	// Generations has one entry per ply actually processed.
	Generations []GenerationStats

	// Nodes counts the boards generated across all generations.
	Nodes int

	// Distinct counts the different mating positions among Mates. Lines
	// reaching the same board by other move orders share one position.
	Distinct int
}

func newResult() *Result {
	return &Result{Mates: make(map[string]*MateLine)}
}

// Len returns the number of mate lines.
func (r *Result) Len() int {
	return len(r.Mates)
}

// Lines returns the mate lines ordered by length, then by key.
func (r *Result) Lines() []*MateLine {
	lines := make([]*MateLine, 0, len(r.Mates))
	for _, l := range r.Mates {
		lines = append(lines, l)
	}
	sort.Slice(lines, func(i, j int) bool {
		if len(lines[i].Moves) != len(lines[j].Moves) {
			return len(lines[i].Moves) < len(lines[j].Moves)
		}
		return lines[i].Key() < lines[j].Key()
	})
	return lines
}

// CountDistinct hashes the mating board of every line and returns the
// number of different positions.
func (r *Result) CountDistinct() int {
	d := hashing.NewMateDeduper()
	for _, l := range r.Mates {
		d.CheckAndAdd(l.Board, l.Mated)
	}
	return d.UniqueCount()
}

// SearchOptions configures a Searcher.
type SearchOptions struct {
	// Workers is the number of goroutines expanding a generation. Values
	// below 2 expand sequentially.
	Workers int

	// MaxNodes bounds the number of boards generated. 0 means no limit.
	MaxNodes int

	// Progress, when set, is called after every generation.
	Progress func(GenerationStats)
}

// Searcher enumerates forced-mate lines breadth first.
type Searcher struct {
	opts SearchOptions
}

// NewSearcher creates a Searcher with the given options.
func NewSearcher(opts SearchOptions) *Searcher {
	return &Searcher{opts: opts}
}

// FindCheckmates runs a single-threaded search with no node limit.
func FindCheckmates(board *chess.Board, colour chess.Colour, maxPlies int) (*Result, error) {
	return NewSearcher(SearchOptions{}).FindCheckmates(context.Background(), board, colour, maxPlies)
}

// FindCheckmates returns every line, at most maxPlies half-moves long with
// colour moving first, that ends in checkmate. Each generation evaluates
// all its positions: mates are recorded, positions in the last allowed ply
// are dropped and the rest are expanded by every legal move into the next
// generation. Identical boards reached by different move orders stay
// distinct entries.
//
// On cancellation or when MaxNodes is exceeded the mates found so far are
// returned together with the error.
func (s *Searcher) FindCheckmates(ctx context.Context, board *chess.Board, colour chess.Colour, maxPlies int) (*Result, error) {
	result := newResult()
	seen := hashing.NewThreadSafeMateDeduper()
	generation := []worker.WorkItem{{Board: board.Copy(), Index: 0}}

	for ply := 0; ply < maxPlies && len(generation) > 0; ply++ {
		last := ply == maxPlies-1
		stats := GenerationStats{Ply: ply, ToMove: colour, Positions: len(generation)}

		var next []worker.WorkItem
		collect := func(r worker.ProcessResult) error {
			if r.Error != nil {
				return r.Error
			}
			switch {
			case r.Checkmate:
				stats.Mates++
				result.Mates[r.Item.Moves.Key()] = &MateLine{Moves: r.Item.Moves, Board: r.Item.Board, Mated: colour}
			case r.Aborted:
				stats.Aborted++
			default:
				for _, succ := range r.Successors {
					succ.Index = len(next)
					next = append(next, succ)
				}
				result.Nodes += len(r.Successors)
				if s.opts.MaxNodes > 0 && result.Nodes > s.opts.MaxNodes {
					return errors.Wrapf(errors.ErrNodeLimit, "%d boards at ply %d", result.Nodes, ply)
				}
			}
			return nil
		}

		if err := s.expandGeneration(ctx, generation, colour, ply, last, seen, collect); err != nil {
			// Workers may have recorded mates that were never collected.
			result.Distinct = result.CountDistinct()
			return result, err
		}

		stats.Successors = len(next)
		result.Generations = append(result.Generations, stats)
		if s.opts.Progress != nil {
			s.opts.Progress(stats)
		}

		generation = next
		colour = colour.Opposite()
	}
	result.Distinct = seen.UniqueCount()
	return result, nil
}

// expandGeneration processes every position of a generation and feeds the
// results to collect in generation order.
func (s *Searcher) expandGeneration(ctx context.Context, generation []worker.WorkItem, colour chess.Colour, ply int, last bool,
	seen *hashing.ThreadSafeMateDeduper, collect func(worker.ProcessResult) error) error {
	process := func(item worker.WorkItem) worker.ProcessResult {
		if err := ctx.Err(); err != nil {
			return worker.ProcessResult{Item: item, Index: item.Index, Error: err}
		}
		return expandPosition(item, colour, ply, last, seen)
	}

	if s.opts.Workers < 2 || len(generation) < 2 {
		for _, item := range generation {
			if err := collect(process(item)); err != nil {
				return err
			}
		}
		return nil
	}

	pool := worker.NewPoolWithOptions(process,
		worker.WithWorkers(s.opts.Workers),
		worker.WithBufferSize(2*s.opts.Workers))
	stop := context.AfterFunc(ctx, pool.Stop)
	defer stop()

	for _, r := range pool.RunOrdered(generation) {
		if err := collect(r); err != nil {
			return err
		}
	}
	// A stopped pool leaves empty slots behind; report why.
	return ctx.Err()
}

// expandPosition evaluates one position for colour and, unless it is mate
// or in the last ply, plays every legal move on a copy of its board.
// Pawns at their transform point branch once per promotion kind. If any
// move would capture a king the previous move was illegal, so the whole
// position is discarded. Mating boards are recorded in seen when it is
// not nil.
func expandPosition(item worker.WorkItem, colour chess.Colour, ply int, last bool, seen *hashing.ThreadSafeMateDeduper) worker.ProcessResult {
	res := worker.ProcessResult{Item: item, Index: item.Index}

	verdict, err := Evaluate(item.Board, colour)
	if err != nil {
		res.Error = &errors.SearchError{Err: err, Ply: ply, Sequence: item.Moves.Key()}
		return res
	}
	if verdict.Checkmate {
		res.Checkmate = true
		if seen != nil {
			seen.CheckAndAdd(item.Board, colour)
		}
		return res
	}
	if last {
		return res
	}

	for _, m := range verdict.Legal.Moves() {
		piece, _ := item.Board.Occupant(m.From)

		promotions := []chess.Kind{chess.NoKind}
		if piece.AtTransformPoint(m.From) {
			promotions = chess.PromotionKinds[:]
		}

		for _, kind := range promotions {
			m.Promotion = kind
			board := item.Board.Copy()
			alive, err := board.Apply(m)
			if err != nil {
				res.Error = &errors.SearchError{Err: err, Ply: ply, Sequence: item.Moves.Key()}
				return res
			}
			if !alive {
				res.Aborted = true
				res.Successors = nil
				return res
			}
			res.Successors = append(res.Successors, worker.WorkItem{Moves: item.Moves.Extend(m), Board: board})
		}
	}
	return res
}
