package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"connectn/agent"
	"connectn/engine"
	"connectn/experiments"
	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/searcher"
)

var (
	rows    int
	cols    int
	connect int

	positiveKind string
	negativeKind string
	depth        int
	simulations  int
	exploration  float64
	seed         uint64

	benchGames int
	benchOut   string
)

var rootCmd = &cobra.Command{
	Use:   "connectn",
	Short: "Play the Connect-N family of games against search-based agents",
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run one match between two agents on the console",
	RunE: func(cmd *cobra.Command, args []string) error {
		positive, err := buildAgent(positiveKind, game.Positive)
		if err != nil {
			return err
		}
		negative, err := buildAgent(negativeKind, game.Negative)
		if err != nil {
			return err
		}

		board := game.NewBoardN(rows, cols, connect)
		e := engine.New(board, positive, negative, engine.WithOutput(os.Stdout))
		e.Run()
		return nil
	},
}

var benchmarkCmd = &cobra.Command{
	Use:   "benchmark",
	Short: "Run minimax vs MCTS match-ups and write CSV metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := []metrics.AgentConfig{
			{ID: 1, Kind: "minimax", Depth: depth},
			{ID: 2, Kind: "mcts", Simulations: simulations, Exploration: exploration, Seed: seed},
		}
		return experiments.Run(experiments.Benchmark{
			Rows:    rows,
			Cols:    cols,
			Connect: connect,
			Games:   benchGames,
			Configs: configs,
		}, benchOut)
	},
}

func buildAgent(kind string, tile game.Tile) (agent.Agent, error) {
	switch kind {
	case "human":
		return agent.NewHuman("Human", tile, os.Stdin, os.Stdout), nil
	case "minimax":
		return agent.NewMinimax("Mrs. Minimax", tile, depth, nil), nil
	case "mcts":
		return agent.NewMonteCarlo("Mr. Monte Carlo", tile,
			searcher.WithSimulations(simulations),
			searcher.WithExploration(exploration),
			searcher.WithRand(rand.New(rand.NewSource(seed))),
		), nil
	default:
		return nil, fmt.Errorf("unknown agent kind: %q", kind)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVar(&rows, "rows", 6, "board rows")
	rootCmd.PersistentFlags().IntVar(&cols, "cols", 7, "board columns")
	rootCmd.PersistentFlags().IntVar(&connect, "connect", game.DefaultConnectLength, "winning connection length")
	rootCmd.PersistentFlags().IntVar(&depth, "depth", 7, "minimax search depth")
	rootCmd.PersistentFlags().IntVar(&simulations, "simulations", 150000, "MCTS simulations per move")
	rootCmd.PersistentFlags().Float64Var(&exploration, "exploration", searcher.DefaultExploration, "MCTS UCT exploration constant")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 1, "MCTS playout random seed")

	playCmd.Flags().StringVar(&positiveKind, "positive", "human", "Positive agent: human, minimax or mcts")
	playCmd.Flags().StringVar(&negativeKind, "negative", "mcts", "Negative agent: human, minimax or mcts")

	benchmarkCmd.Flags().IntVar(&benchGames, "games", 10, "games per match-up")
	benchmarkCmd.Flags().StringVar(&benchOut, "out", "experiments/results", "output directory for CSV records")

	rootCmd.AddCommand(playCmd, benchmarkCmd)
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
