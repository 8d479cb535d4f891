package engine

import (
	"fmt"
	"shogi/agent"
	"shogi/communication"
	"shogi/experiments/metrics"
	"shogi/game"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*remoteEngine)(nil)

type remoteEngine struct {
	comm     communication.Communicator
	home     agent.Agent
	board    *game.Board // Mirror of the server position
	depth    int
	maxTurns int
}

// RemoteEngine plays home against the minimax agent of a match server. The
// server owns the match; the engine mirrors the board to feed its agent.
func RemoteEngine(comm communication.Communicator, home agent.Agent, depth, maxTurns int) *remoteEngine {
	if comm == nil || home == nil {
		panic("need a communicator and a home agent")
	}
	if maxTurns <= 0 {
		panic("turn limit must be positive")
	}
	return &remoteEngine{
		comm:     comm,
		home:     home,
		board:    game.NewStandardBoard(),
		depth:    depth,
		maxTurns: maxTurns,
	}
}

func (e *remoteEngine) Board() *game.Board {
	return e.board
}

// Run ends at the turn limit, when Home has no move (the server has no pass
// for Home) or on a failed request.
func (e *remoteEngine) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingTeam: game.Home,
		StartTime:    time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	state, err := e.comm.NewMatch(e.depth)
	if err != nil {
		panic(fmt.Sprintf("failed to create match: %v", err))
	}
	e.verify(state)
	log.Info().Msgf("playing remote match %s", state.ID)

	for step := 1; step <= e.maxTurns; step++ {
		team := game.Home
		if step%2 == 0 {
			team = game.Away
		}

		var move game.Move
		var searchMetric metrics.SearchMetric
		if team == game.Home {
			var ok bool
			move, searchMetric, ok = e.home.FindMove(e.board, team)
			if !ok {
				log.Info().Msgf("step %d: home has no legal move", step)
				break
			}
			if state, err = e.comm.Play(state.ID, move); err != nil {
				panic(fmt.Sprintf("failed to play %s: %v", move, err))
			}
		} else {
			ai, err := e.comm.AITurn(state.ID)
			if err != nil {
				panic(fmt.Sprintf("failed to request ai move: %v", err))
			}
			state = ai.MatchState
			if !ai.Found {
				log.Info().Msgf("step %d: away passes", step)
				continue
			}
			if move, err = game.ParseMove(ai.Move); err != nil {
				panic(fmt.Sprintf("server sent invalid move %q: %v", ai.Move, err))
			}
			searchMetric.Nodes = ai.Nodes
			searchMetric.Depth = e.depth
		}

		captured, err := e.board.ApplyMove(move)
		if err != nil {
			panic(err)
		}
		if !captured.Empty() {
			gameMetric.Captures[team]++
		}
		e.verify(state)

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

	log.Info().Msgf("remote game over after %d moves with score %.1f", gameMetric.TotalMoves, gameMetric.FinalScore)
	return gameMetric, moveMetrics
}

func (e *remoteEngine) verify(state communication.MatchState) {
	if state.Board != e.board.String() {
		panic(fmt.Sprintf("board diverged from match %s", state.ID))
	}
}
