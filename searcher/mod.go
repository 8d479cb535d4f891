package searcher

import (
	"shogi/experiments/metrics"
	"shogi/game"
	"time"

	"golang.org/x/exp/rand"
)

// Result of a search from Away's point of view. Found is false when Away had
// no legal move at the root (or depth was 0), in which case Move is zero.
type Result struct {
	Score  float64
	Move   game.Move
	Found  bool
	Metric metrics.SearchMetric
}

// Chooser picks an index in [0, n) among n equally scored candidate moves.
type Chooser func(n int) int

// FirstChooser always keeps the first candidate in generation order.
func FirstChooser(n int) int {
	return 0
}

// LastChooser always keeps the last candidate in generation order.
func LastChooser(n int) int {
	return n - 1
}

// RandomChooser picks uniformly from a PCG source seeded with seed.
func RandomChooser(seed uint64) Chooser {
	rng := rand.New(rand.NewSource(seed))
	return rng.Intn
}

func timeSeed() uint64 {
	return uint64(time.Now().UnixNano())
}
