package communication

import "shogi/game"

// Communicator is an interface that abstracts the transport between a
// presentation layer and the match controller.
type Communicator interface {
	NewMatch(depth int) (MatchState, error)
	State(id string) (MatchState, error)
	Select(id string, square game.Coord) ([]game.Coord, error)
	Play(id string, move game.Move) (MatchState, error)
	AITurn(id string) (AIMove, error)
}

// Squares and moves travel in their algebraic form ("e9", "e9e8").

type NewMatchRequest struct {
	Depth int `json:"depth,omitempty"`
}

type SelectRequest struct {
	ID     string `json:"id"`
	Square string `json:"square"`
}

type SelectResponse struct {
	Targets []string `json:"targets"`
}

type PlayRequest struct {
	ID   string `json:"id"`
	Move string `json:"move"`
}

type MatchRequest struct {
	ID string `json:"id"`
}

type MatchState struct {
	ID      string   `json:"id"`
	Turn    string   `json:"turn"`
	Board   string   `json:"board"`
	History []string `json:"history"`
}

type AIMove struct {
	Move  string `json:"move,omitempty"`
	Found bool   `json:"found"`
	Score string `json:"score"` // May be "+Inf" or "-Inf"
	Nodes int    `json:"nodes"`
	MatchState
}

type ErrorResponse struct {
	Error string `json:"error"`
}
