package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"onitama/game"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	root := t.TempDir()
	w, err := NewWriter(root, "unit")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	t.Run("writing agent configs", func(t *testing.T) {
		err := w.WriteAgentConfigs([]AgentConfig{{ID: 1, Iterations: 50, MaxPlies: 30, Exploration: 0.6}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
		require.Equal(t, [][]string{
			{"id", "iterations", "max_plies", "exploration"},
			{"1", "50", "30", "0.6"},
		}, rows)
	})

	t.Run("writing game records", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID:   "g1",
			Red:  1,
			Blue: 2,
			GameMetric: GameMetric{
				StartingSide: game.Blue,
				Status:       game.RedWins,
				StartTime:    start,
				EndTime:      start.Add(time.Second),
				Duration:     time.Second,
				TotalMoves:   12,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
		require.Len(t, rows, 2, "Should write a header and one row")
		require.Equal(t, []string{"g1", "1", "2", "blue", "red wins", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "12"}, rows[1])
	})

	t.Run("writing move records", func(t *testing.T) {
		card := &game.Card{Name: "Tiger"}
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: "g1",
			MoveMetric: MoveMetric{
				Step: 1,
				Side: game.Red,
				Move: game.NewPass(card),
				SearchMetric: SearchMetric{
					Duration:     time.Millisecond,
					Episodes:     50,
					FullPlayouts: 3,
					TreeSize:     120,
					IsTreeReused: true,
				},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
		require.Equal(t, []string{"g1", "1", "red", "Tiger: pass", "1ms", "50", "3", "120", "true"}, rows[1])
	})
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(10, 5, 0.6)
	c.SetTreeReused(true)
	c.AddEpisode()
	c.AddEpisode()
	c.AddFullPlayout()

	got := c.Complete(7)

	require.Equal(t, 10, got.Iterations)
	require.Equal(t, 5, got.MaxPlies)
	require.Equal(t, 2, got.Episodes)
	require.Equal(t, 1, got.FullPlayouts)
	require.Equal(t, 7, got.TreeSize)
	require.True(t, got.IsTreeReused)

	c.Start(10, 5, 0.6)
	require.Zero(t, c.Complete(0).Episodes, "Start should reset the counters")

	require.Equal(t, SearchMetric{}, NewDummyCollector().Complete(3), "Dummy collector should record nothing")
}
