package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// AgentConfig describes one benchmarked agent. Depth applies to minimax;
// Simulations, Exploration and Seed apply to MCTS.
type AgentConfig struct {
	ID          int
	Kind        string
	Depth       int
	Simulations int
	Exploration float64
	Seed        uint64
}

func (c AgentConfig) String() string {
	switch c.Kind {
	case "minimax":
		return fmt.Sprintf("minimax-%d(depth=%d)", c.ID, c.Depth)
	case "mcts":
		return fmt.Sprintf("mcts-%d(sims=%d,c=%g)", c.ID, c.Simulations, c.Exploration)
	default:
		return fmt.Sprintf("%s-%d", c.Kind, c.ID)
	}
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	path := filepath.Join(w.baseDir, "agent_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create agent configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "kind", "depth", "simulations", "exploration", "seed"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write agent configs header: %w", err)
	}

	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			strconv.Itoa(config.Simulations),
			strconv.FormatFloat(config.Exploration, 'g', -1, 64),
			strconv.FormatUint(config.Seed, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write agent config row: %w", err)
		}
	}

	return nil
}
