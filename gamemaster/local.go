package gamemaster

import (
	"fmt"
	"shogi/game"
	"shogi/meta"
	"shogi/searcher"
	"shogi/utils"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const updateBuffer = 64

type Option func(m *Match)

// Update describes one committed move.
type Update struct {
	Team     game.Team
	Move     game.Move
	Captured game.Piece
}

// Match is the turn controller between a human playing Home and the minimax
// opponent playing Away. Home moves first and turns alternate strictly; a
// committed move is never taken back.
type Match struct {
	mu        sync.Mutex
	id        string
	board     *game.Board
	turn      game.Team
	depth     int
	minimax   *searcher.Minimax
	history   []Update
	updateCh  chan Update
	createdAt time.Time
	updatedAt time.Time
}

func WithDepth(depth int) Option {
	return func(m *Match) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithSearcher(minimax *searcher.Minimax) Option {
	return func(m *Match) {
		if minimax != nil {
			m.minimax = minimax
		}
	}
}

// WithPlacements replaces the standard opening layout.
func WithPlacements(placements ...game.Placement) Option {
	return func(m *Match) {
		b := game.NewBoard()
		if err := b.Place(placements...); err != nil {
			panic(fmt.Sprintf("invalid placements: %v", err))
		}
		m.board = b
	}
}

func NewMatch(options ...Option) *Match {
	now := time.Now()
	m := &Match{ // Default values
		board:     game.NewStandardBoard(),
		turn:      game.Home,
		depth:     meta.DEPTH,
		updateCh:  make(chan Update, updateBuffer),
		createdAt: now,
		updatedAt: now,
	}
	for _, option := range options {
		option(m)
	}
	if m.minimax == nil {
		m.minimax = searcher.NewMinimax(searcher.WithMetrics())
	}
	return m
}

func (m *Match) ID() string {
	return m.id
}

func (m *Match) Turn() game.Team {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.turn
}

// Board returns a copy of the current position for rendering.
func (m *Match) Board() *game.Board {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.board.Copy()
}

func (m *Match) History() []Update {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Update(nil), m.history...)
}

func (m *Match) UpdatedAt() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.updatedAt
}

// Updates streams committed moves. Updates are dropped when nobody drains
// the channel and its buffer is full.
func (m *Match) Updates() <-chan Update {
	return m.updateCh
}

// Select returns the squares the Home piece on c may move to.
func (m *Match) Select(c game.Coord) ([]game.Coord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.turn != game.Home {
		return nil, ErrNotYourTurn
	}
	p, err := m.board.Get(c)
	if err != nil {
		return nil, err
	}
	if p.Empty() || p.Team != game.Home {
		return nil, fmt.Errorf("select %s: %w", c, ErrNotYourPiece)
	}

	moves := game.GenerateMovesFrom(m.board, c)
	targets := make([]game.Coord, len(moves))
	for i, move := range moves {
		targets[i] = move.To
	}
	return targets, nil
}

// Play commits a human move for Home and hands the turn to Away.
func (m *Match) Play(move game.Move) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.turn != game.Home {
		return ErrNotYourTurn
	}
	p, err := m.board.Get(move.From)
	if err != nil {
		return err
	}
	if p.Empty() || p.Team != game.Home {
		return fmt.Errorf("play %s: %w", move, ErrNotYourPiece)
	}
	if utils.FindIndex(game.GenerateMovesFrom(m.board, move.From), move) < 0 {
		return fmt.Errorf("play %s: %w", move, ErrIllegalMove)
	}

	m.commit(game.Home, move)
	return nil
}

// AITurn searches for Away's move, commits it when one exists and hands the
// turn back to Home either way.
func (m *Match) AITurn() (searcher.Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.turn != game.Away {
		return searcher.Result{}, ErrNotYourTurn
	}

	res := m.minimax.Search(m.board, m.depth)
	log.Info().Msgf("AI evaluation: %.1f", res.Score)

	if !res.Found {
		log.Info().Msg("AI has no move and passes")
		m.turn = game.Home
		m.updatedAt = time.Now()
		return res, nil
	}
	m.commit(game.Away, res.Move)
	return res, nil
}

func (m *Match) commit(team game.Team, move game.Move) {
	captured, err := m.board.ApplyMove(move)
	if err != nil {
		panic(err)
	}
	u := Update{Team: team, Move: move, Captured: captured}
	m.history = append(m.history, u)
	m.turn = team.Opponent()
	m.updatedAt = time.Now()

	select {
	case m.updateCh <- u:
	default:
		log.Warn().Msgf("match %s: update buffer full, dropping %s", m.id, move)
	}
}
