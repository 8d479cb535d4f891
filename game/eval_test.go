package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func boardWith(t *testing.T, placements ...Placement) *Board {
	t.Helper()
	b := NewBoard()
	require.NoError(t, b.Place(placements...))
	return b
}

func TestEvaluateBoard(t *testing.T) {
	awayRoyal := Placement{Kind: Royal, Team: Away, At: Coord{X: 4, Y: 0}}

	t.Run("lone away royal", func(t *testing.T) {
		// 1000 * 1.1 material plus 1000 * 0.4 for guarding its own window.
		require.InDelta(t, 1500.0, EvaluateBoard(boardWith(t, awayRoyal)), delta)
	})

	t.Run("home pieces subtract", func(t *testing.T) {
		alone := EvaluateBoard(boardWith(t, awayRoyal))
		withFoot := EvaluateBoard(boardWith(t, awayRoyal, Placement{Kind: Foot, Team: Home, At: Coord{X: 0, Y: 8}}))
		require.Greater(t, alone, withFoot)
		require.InDelta(t, 1495.0, withFoot, delta)
	})

	t.Run("window starts one column left on the royal's row", func(t *testing.T) {
		royal := Placement{Kind: Royal, Team: Away, At: Coord{X: 4, Y: 4}}
		left := boardWith(t, royal, Placement{Kind: Foot, Team: Home, At: Coord{X: 3, Y: 4}})
		above := boardWith(t, royal, Placement{Kind: Foot, Team: Home, At: Coord{X: 4, Y: 3}})
		corner := boardWith(t, royal, Placement{Kind: Foot, Team: Home, At: Coord{X: 5, Y: 6}})
		outside := boardWith(t, royal, Placement{Kind: Foot, Team: Home, At: Coord{X: 4, Y: 7}})

		require.InDelta(t, 1500.0-5-4, EvaluateBoard(left), delta)
		require.InDelta(t, 1500.0-5, EvaluateBoard(above), delta)
		require.InDelta(t, 1500.0-5-4, EvaluateBoard(corner), delta)
		require.InDelta(t, 1500.0-5, EvaluateBoard(outside), delta)
	})

	t.Run("away guards add", func(t *testing.T) {
		b := boardWith(t, awayRoyal, Placement{Kind: General, Team: Away, At: Coord{X: 3, Y: 1}})
		require.InDelta(t, 1500.0+55+20, EvaluateBoard(b), delta)
	})

	t.Run("missing royal anchors the window at the corner", func(t *testing.T) {
		inside := boardWith(t, Placement{Kind: General, Team: Home, At: Coord{X: 1, Y: 1}})
		require.InDelta(t, -50.0-40, EvaluateBoard(inside), delta)

		outside := boardWith(t, Placement{Kind: General, Team: Home, At: Coord{X: 2, Y: 0}})
		require.InDelta(t, -50.0, EvaluateBoard(outside), delta)
	})

	t.Run("empty board", func(t *testing.T) {
		require.Equal(t, 0.0, EvaluateBoard(NewBoard()))
	})

	t.Run("standard opening favors away", func(t *testing.T) {
		require.Greater(t, EvaluateBoard(NewStandardBoard()), 0.0)
	})
}
