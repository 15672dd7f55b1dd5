package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"reversi/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "tournament")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, "tournament"), filepath.Dir(w.Dir()))

	t.Run("writing agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{
			{ID: 0, Kind: "adaptive"},
			{ID: 1, Kind: "random", Seed: 42},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "kind", "seed"},
			{"0", "adaptive", "0"},
			{"1", "random", "42"},
		}, rows)
	})

	t.Run("writing game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:    1,
			Black: 0,
			White: 1,
			GameMetric: GameMetric{
				StartingPlayer: game.Black,
				Winner:         game.White,
				Reason:         "timeout",
				BlackDiscs:     20,
				WhiteDiscs:     44,
				StartTime:      start,
				EndTime:        start.Add(time.Second),
				Duration:       time.Second,
				TotalMoves:     60,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2, "Header and one record")
		require.Equal(t, []string{"1", "0", "1", "black", "white", "timeout", "20", "44", "60",
			"2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s"}, rows[1])
	})

	t.Run("writing move records", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Step:   3,
				Player: game.Black,
				Move:   game.Move{Row: 2, Col: 3},
				Hash:   255,
				SearchMetric: SearchMetric{
					Depth:    4,
					Ordered:  true,
					Duration: 5 * time.Millisecond,
					Nodes:    120,
					Cutoffs:  7,
				},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"1", "3", "black", "[2,3]", "ff", "5ms", "4", "true", "120", "7", "0"}, rows[1])
	})
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(6, true)
	c.AddNode()
	c.AddNode()
	c.AddCutoff()
	c.AddShortcut()

	m := c.Complete()

	require.Equal(t, 6, m.Depth)
	require.True(t, m.Ordered)
	require.Equal(t, 2, m.Nodes)
	require.Equal(t, 1, m.Cutoffs)
	require.Equal(t, 1, m.Shortcuts)

	c.Start(4, false)
	require.Zero(t, c.Complete().Nodes, "Start resets the counters")
}
