package engine

import (
	"fmt"
	"shogi/agent"
	"shogi/experiments/metrics"
	"shogi/game"
	"shogi/utils"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*localEngine)(nil)

type localEngine struct {
	board    *game.Board
	agents   [2]agent.Agent // Indexed by team
	turn     game.Team
	maxTurns int
}

// LocalEngine plays home against away on board, Home moving first. The board
// is mutated in place as moves are committed.
func LocalEngine(home, away agent.Agent, board *game.Board, maxTurns int) *localEngine {
	if home == nil || away == nil {
		panic("need an agent for each team")
	}
	if maxTurns <= 0 {
		panic("turn limit must be positive")
	}
	return &localEngine{
		board:    board,
		agents:   [2]agent.Agent{game.Home: home, game.Away: away},
		turn:     game.Home,
		maxTurns: maxTurns,
	}
}

func (e *localEngine) Board() *game.Board {
	return e.board
}

// Run executes the game loop. A side without a legal move passes; two passes
// in a row end the game early.
func (e *localEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingTeam: e.turn,
		StartTime:    time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", e.turn)

	passes := 0
	for step := 1; step <= e.maxTurns && passes < 2; step++ {
		team := e.turn
		e.turn = team.Opponent()

		move, searchMetric, ok := e.agents[team].FindMove(e.board, team)
		if !ok {
			passes++
			log.Info().Msgf("step %d: %s has no legal move and passes", step, team)
			continue
		}
		passes = 0

		if utils.FindIndex(game.GenerateMoves(e.board, team), move) < 0 {
			panic(fmt.Sprintf("agent for %s returned illegal move %s", team, move))
		}
		captured, err := e.board.ApplyMove(move)
		if err != nil {
			panic(err)
		}
		if !captured.Empty() {
			gameMetric.Captures[team]++
			log.Debug().Msgf("step %d: %s captured %s with %s", step, team, captured.Kind, move)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Team:         team,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		gameMetric.TotalMoves++
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.FinalScore = game.EvaluateBoard(e.board)

	log.Info().Msgf("game over after %d moves with score %.1f", gameMetric.TotalMoves, gameMetric.FinalScore)
	return gameMetric, moveMetrics
}
