// Package experiments pits agent configurations against each other and
// records per-game and per-move search metrics as CSV.
package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"connectn/agent"
	"connectn/engine"
	"connectn/experiments/metrics"
	"connectn/game"
	"connectn/searcher"
)

// Benchmark describes one run: every ordered pair of configs plays Games
// matches on a Rows x Cols board with connection length Connect.
type Benchmark struct {
	Rows    int
	Cols    int
	Connect int
	Games   int
	Configs []metrics.AgentConfig
}

// Run executes the benchmark and writes results under outDir.
func Run(b Benchmark, outDir string) error {
	writer, err := metrics.NewWriter(outDir)
	if err != nil {
		return fmt.Errorf("failed to create benchmark writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(b.Configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord

	for _, first := range b.Configs {
		for _, second := range b.Configs {
			if first.ID == second.ID {
				continue
			}
			for i := 0; i < b.Games; i++ {
				gameRecord, moves := runGame(b, first, second)
				gameRecords = append(gameRecords, gameRecord)
				moveRecords = append(moveRecords, moves...)

				log.Info().
					Str("agent1", first.String()).
					Str("agent2", second.String()).
					Str("winner", gameRecord.Winner).
					Msgf("game %d of %d finished", i+1, b.Games)
			}
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return fmt.Errorf("failed to store game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return fmt.Errorf("failed to store move records: %w", err)
	}

	log.Info().Str("dir", writer.Dir()).Msg("benchmark results written")
	return nil
}

func runGame(b Benchmark, first, second metrics.AgentConfig) (metrics.GameRecord, []metrics.MoveRecord) {
	positiveRecorder := metrics.NewRecorder()
	negativeRecorder := metrics.NewRecorder()

	positive := buildAgent(first, game.Positive, positiveRecorder)
	negative := buildAgent(second, game.Negative, negativeRecorder)

	board := game.NewBoardN(b.Rows, b.Cols, b.Connect)
	e := engine.New(board, positive, negative)

	start := time.Now()
	outcome := e.Run()

	record := metrics.GameRecord{
		ID:        e.ID(),
		Agent1:    first.String(),
		Agent2:    second.String(),
		Winner:    winnerName(outcome, positive, negative),
		Moves:     outcome.Turns,
		StartTime: start,
		Duration:  time.Since(start),
	}
	return record, zipMoveRecords(e, positive, negative, positiveRecorder, negativeRecorder)
}

func buildAgent(config metrics.AgentConfig, tile game.Tile, recorder *metrics.Recorder) agent.Agent {
	switch config.Kind {
	case "minimax":
		return agent.NewMinimax(config.String(), tile, config.Depth, recorder)
	case "mcts":
		return agent.NewMonteCarlo(config.String(), tile,
			searcher.WithSimulations(config.Simulations),
			searcher.WithExploration(config.Exploration),
			searcher.WithRand(rand.New(rand.NewSource(config.Seed))),
			searcher.WithCollector(recorder),
		)
	default:
		panic(fmt.Sprintf("unknown agent kind: %q", config.Kind))
	}
}

func winnerName(outcome engine.Outcome, positive, negative agent.Agent) string {
	if !outcome.Finished {
		return "none"
	}
	switch outcome.Result {
	case game.Positive:
		return positive.Name()
	case game.Negative:
		return negative.Name()
	default:
		return "draw"
	}
}

// zipMoveRecords interleaves the two recorders back into game move order.
// Agents alternate strictly, Positive first, since search agents never
// produce an illegal move.
func zipMoveRecords(e *engine.Engine, positive, negative agent.Agent,
	positiveRecorder, negativeRecorder *metrics.Recorder) []metrics.MoveRecord {

	posMetrics := positiveRecorder.Records()
	negMetrics := negativeRecorder.Records()

	var records []metrics.MoveRecord
	step := 1
	for i := 0; i < len(posMetrics) || i < len(negMetrics); i++ {
		if i < len(posMetrics) {
			records = append(records, metrics.MoveRecord{
				Game:         e.ID(),
				Step:         step,
				Player:       positive.Name(),
				SearchMetric: posMetrics[i],
			})
			step++
		}
		if i < len(negMetrics) {
			records = append(records, metrics.MoveRecord{
				Game:         e.ID(),
				Step:         step,
				Player:       negative.Name(),
				SearchMetric: negMetrics[i],
			})
			step++
		}
	}
	return records
}
