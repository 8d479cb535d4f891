package engine

import "shogi/experiments/metrics"

type Engine interface {
	// Run plays a game till the turn limit is reached or both sides pass in a row
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
