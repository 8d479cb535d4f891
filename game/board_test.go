package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestBoardBounds(t *testing.T) {
	b := NewBoard()
	outside := []Coord{{X: -1, Y: 0}, {X: 0, Y: -1}, {X: Size, Y: 0}, {X: 0, Y: Size}}
	for _, c := range outside {
		_, err := b.Get(c)
		var oob *OutOfBoundsError
		require.ErrorAs(t, err, &oob)
		require.Equal(t, c.X, oob.X)
		require.Equal(t, c.Y, oob.Y)

		require.ErrorIs(t, b.Set(c, NewPiece(Foot, Home)), ErrOutOfBounds)
	}

	_, err := b.ApplyMove(Move{From: Coord{X: 0, Y: 0}, To: Coord{X: 0, Y: -1}})
	require.ErrorIs(t, err, ErrOutOfBounds)
	require.ErrorIs(t, b.UndoMove(Move{From: Coord{X: 9, Y: 0}, To: Coord{X: 0, Y: 0}}, Piece{}), ErrOutOfBounds)
}

func TestBoardGetSet(t *testing.T) {
	b := NewBoard()
	c := Coord{X: 4, Y: 8}
	require.NoError(t, b.Set(c, NewPiece(Royal, Home)))

	got, err := b.Get(c)
	require.NoError(t, err)
	require.Equal(t, NewPiece(Royal, Home), got)

	require.NoError(t, b.Set(c, Piece{}))
	got, err = b.Get(c)
	require.NoError(t, err)
	require.True(t, got.Empty())

	t.Run("empty piece of any team clears the square", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Set(c, NewPiece(Royal, Away)))
		require.NoError(t, b.Set(c, Piece{Kind: None, Team: Away}))

		got, err := b.Get(c)
		require.NoError(t, err)
		require.Equal(t, Piece{}, got)
		require.Equal(t, *NewBoard(), *b)
	})
}

func TestApplyMove(t *testing.T) {
	t.Run("quiet move", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Set(Coord{X: 2, Y: 6}, NewPiece(Foot, Home)))
		m := Move{From: Coord{X: 2, Y: 6}, To: Coord{X: 2, Y: 5}}

		captured, err := b.ApplyMove(m)
		require.NoError(t, err)
		require.True(t, captured.Empty())
		require.True(t, b.At(m.From).Empty())
		require.Equal(t, NewPiece(Foot, Home), b.At(m.To))
	})

	t.Run("capture returns the taken piece and undo restores it", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Set(Coord{X: 2, Y: 6}, NewPiece(Silver, Home)))
		require.NoError(t, b.Set(Coord{X: 3, Y: 5}, NewPiece(General, Away)))
		before := *b
		m := Move{From: Coord{X: 2, Y: 6}, To: Coord{X: 3, Y: 5}}

		captured, err := b.ApplyMove(m)
		require.NoError(t, err)
		require.Equal(t, NewPiece(General, Away), captured)
		require.Equal(t, 0, b.Count(Away))

		require.NoError(t, b.UndoMove(m, captured))
		require.Equal(t, before, *b)
	})
}

func TestApplyUndoInverseOnReachablePositions(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	b := NewStandardBoard()
	team := Home

	for ply := 0; ply < 120; ply++ {
		moves := GenerateMoves(b, team)
		if len(moves) == 0 {
			team = team.Opponent()
			continue
		}
		for _, m := range moves {
			before := *b
			captured, err := b.ApplyMove(m)
			require.NoError(t, err)
			require.NoError(t, b.UndoMove(m, captured))
			require.True(t, before == *b, "ply %d move %s left the board changed", ply, m)
		}
		_, err := b.ApplyMove(moves[rng.Intn(len(moves))])
		require.NoError(t, err)
		team = team.Opponent()
	}
}

func TestFind(t *testing.T) {
	b := NewStandardBoard()
	at, ok := b.Find(Royal, Away)
	require.True(t, ok)
	require.Equal(t, Coord{X: 4, Y: 0}, at)

	_, ok = b.Find(Lance, Home)
	require.False(t, ok)

	require.Equal(t, 7, b.Count(Home))
	require.Equal(t, 7, b.Count(Away))
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.Set(Coord{X: 0, Y: 0}, NewPiece(Royal, Away)))
	require.NoError(t, b.Set(Coord{X: 1, Y: 0}, NewPiece(Foot, Home)))
	lines := b.String()
	require.Equal(t, "oh Fu .. .. .. .. .. .. ..\n", lines[:27])
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("e9e8")
	require.NoError(t, err)
	require.Equal(t, Move{From: Coord{X: 4, Y: 8}, To: Coord{X: 4, Y: 7}}, m)
	require.Equal(t, "e9e8", m.String())

	_, err = ParseMove("e9e")
	require.Error(t, err)
	_, err = ParseMove("j1a1")
	require.ErrorIs(t, err, ErrOutOfBounds)
}
