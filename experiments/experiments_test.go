package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"connectn/experiments/metrics"
)

func TestRunWritesRecords(t *testing.T) {
	dir := t.TempDir()

	b := Benchmark{
		Rows:    5,
		Cols:    5,
		Connect: 4,
		Games:   1,
		Configs: []metrics.AgentConfig{
			{ID: 1, Kind: "minimax", Depth: 2},
			{ID: 2, Kind: "mcts", Simulations: 50, Exploration: 1.5, Seed: 1},
		},
	}
	require.NoError(t, Run(b, dir))

	runs, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	runDir := filepath.Join(dir, runs[0].Name())

	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		f, err := os.Open(filepath.Join(runDir, name))
		require.NoError(t, err, "expected %s to exist", name)

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, f.Close())
		require.NoError(t, err)
		require.Greater(t, len(rows), 1, "%s should hold a header and data", name)
	}
}

func TestBuildAgentUnknownKind(t *testing.T) {
	require.Panics(t, func() {
		buildAgent(metrics.AgentConfig{Kind: "oracle"}, 1, metrics.NewRecorder())
	})
}
