package searcher

import (
	"math"
	"shogi/experiments/metrics"
	"shogi/game"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

// Minimax is a full-width, fixed-depth search without pruning. It mutates the
// board in place and reverts every move before returning, so a single board
// must never be searched by two goroutines at once.
type Minimax struct {
	evaluate game.Evaluate
	choose   Chooser
	metrics  metrics.Collector
}

func WithChooser(choose Chooser) Option {
	return func(m *Minimax) {
		if choose != nil {
			m.choose = choose
		}
	}
}

func WithSeed(seed uint64) Option {
	return func(m *Minimax) {
		m.choose = RandomChooser(seed)
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		evaluate: game.EvaluateBoard,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.choose == nil {
		m.choose = RandomChooser(timeSeed())
	}
	return m
}

// Search looks depth plies ahead with Away to move and returns the best score
// Away can force together with the move that reaches it.
func (m *Minimax) Search(b *game.Board, depth int) Result {
	m.metrics.Start(depth)
	score, move, found := m.minimax(b, depth, true)
	metric := m.metrics.Complete(score)

	log.Debug().
		Int("depth", depth).
		Float64("score", score).
		Bool("found", found).
		Str("move", move.String()).
		Int("nodes", metric.Nodes).
		Dur("elapsed", metric.Duration).
		Msg("minimax search completed")

	return Result{Score: score, Move: move, Found: found, Metric: metric}
}

// minimax returns the node score and the chosen move. A side without legal
// moves keeps its starting sentinel (-Inf for Away, +Inf for Home) and that
// value propagates to the parent unchanged.
func (m *Minimax) minimax(b *game.Board, depth int, maximizing bool) (float64, game.Move, bool) {
	m.metrics.AddNode()
	if depth <= 0 {
		m.metrics.AddLeaf()
		return m.evaluate(b), game.Move{}, false
	}

	team := game.Home
	best := math.Inf(1)
	if maximizing {
		team = game.Away
		best = math.Inf(-1)
	}

	var candidates []game.Move
	for _, move := range game.GenerateMoves(b, team) {
		captured := mustApply(b, move)
		score, _, _ := m.minimax(b, depth-1, !maximizing)
		mustUndo(b, move, captured)

		switch {
		case maximizing && score > best, !maximizing && score < best:
			best = score
			candidates = append(candidates[:0], move)
		case score == best:
			candidates = append(candidates, move)
		}
	}

	switch len(candidates) {
	case 0:
		return best, game.Move{}, false
	case 1:
		return best, candidates[0], true
	default:
		m.metrics.AddTie()
		return best, candidates[m.choose(len(candidates))], true
	}
}

func mustApply(b *game.Board, move game.Move) game.Piece {
	captured, err := b.ApplyMove(move)
	if err != nil {
		panic(err)
	}
	return captured
}

func mustUndo(b *game.Board, move game.Move, captured game.Piece) {
	if err := b.UndoMove(move, captured); err != nil {
		panic(err)
	}
}
