package agent

import (
	"shogi/experiments/metrics"
	"shogi/game"
	"shogi/searcher"

	"golang.org/x/exp/rand"
)

type Agent interface {
	// FindMove returns the move to play for team and the metrics of the
	// search behind it. ok is false when team has no legal move.
	FindMove(b *game.Board, team game.Team) (move game.Move, metric metrics.SearchMetric, ok bool)
}

type minimaxAgent struct {
	minimax *searcher.Minimax
	depth   int
}

// NewMinimaxAgent returns the automated opponent. It always searches as
// Away, the maximizing side.
func NewMinimaxAgent(minimax *searcher.Minimax, depth int) Agent {
	return minimaxAgent{minimax: minimax, depth: depth}
}

func (a minimaxAgent) FindMove(b *game.Board, team game.Team) (game.Move, metrics.SearchMetric, bool) {
	if team != game.Away {
		panic("minimax agent only plays away")
	}
	res := a.minimax.Search(b, a.depth)
	return res.Move, res.Metric, res.Found
}

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that picks a legal move uniformly
// at random.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b *game.Board, team game.Team) (game.Move, metrics.SearchMetric, bool) {
	moves := game.GenerateMoves(b, team)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}, false
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, true
}
