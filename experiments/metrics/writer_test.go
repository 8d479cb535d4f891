package metrics

import (
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"shogi/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "depth")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "depth"), filepath.Dir(w.Dir()))

	t.Run("agent configs", func(t *testing.T) {
		require.NoError(t, w.WriteAgentConfigs([]AgentConfig{
			{ID: 0, Kind: "random", Seed: 1},
			{ID: 1, Kind: "minimax", Depth: 2, Seed: 1},
		}))

		records := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "depth", "seed"},
			{"0", "random", "0", "1"},
			{"1", "minimax", "2", "1"},
		}, records)
	})

	t.Run("game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		require.NoError(t, w.WriteGameRecords([]GameRecord{{
			ID:   1,
			Home: 0,
			Away: 1,
			GameMetric: GameMetric{
				StartingTeam: game.Home,
				StartTime:    start,
				EndTime:      start.Add(time.Second),
				Duration:     time.Second,
				TotalMoves:   12,
				Captures:     [2]int{1, 3},
				FinalScore:   42.5,
			},
		}}))

		records := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, records, 2)
		require.Equal(t, []string{"1", "0", "1", "home", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z",
			"1s", "12", "1", "3", "42.5"}, records[1])
	})

	t.Run("move records", func(t *testing.T) {
		require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step: 2,
				Team: game.Away,
				Move: "e1e2",
				SearchMetric: SearchMetric{Depth: 2, Duration: time.Millisecond, Nodes: 31, Leaves: 25, Ties: 6,
					Score: math.Inf(-1)},
			},
		}}))

		records := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"game", "step", "team", "move", "depth", "duration", "nodes", "leaves", "ties", "score"}, records[0])
		require.Equal(t, []string{"1", "2", "away", "e1e2", "2", "1ms", "31", "25", "6", "-Inf"}, records[1])
	})
}
