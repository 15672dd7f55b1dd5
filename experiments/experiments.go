package experiments

import (
	"context"
	"fmt"
	"time"

	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/meta"
	"reversi/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Tally counts the results of a matchup for its first agent.
type Tally struct {
	Wins   int
	Losses int
	Draws  int
}

func (t Tally) String() string {
	return fmt.Sprintf("%d wins, %d losses, %d draws", t.Wins, t.Losses, t.Draws)
}

type Option func(t *tournament)

type tournament struct {
	numGames  int
	timeLimit time.Duration
	outDir    string
}

func WithNumGames(n int) Option {
	return func(t *tournament) {
		if n <= 0 {
			panic(fmt.Sprintf("number of games must be positive, got %d", n))
		}
		t.numGames = n
	}
}

func WithTimeLimit(limit time.Duration) Option {
	return func(t *tournament) {
		t.timeLimit = limit
	}
}

// WithOutDir sets the directory records are written to. An empty dir disables writing.
func WithOutDir(dir string) Option {
	return func(t *tournament) {
		t.outDir = dir
	}
}

// RunTournament plays the adaptive agent against an opponent of the given kind, swapping
// colors every game, and returns the adaptive agent's results.
func RunTournament(ctx context.Context, opponent string, seed uint64, options ...Option) (Tally, error) {
	t := &tournament{ // Default values
		numGames:  meta.NumGames,
		timeLimit: meta.TimeLimit,
		outDir:    meta.OutDir,
	}
	for _, option := range options {
		option(t)
	}

	baseline := metrics.AgentConfig{ID: 0, Kind: agent.Adaptive}
	challenger := metrics.AgentConfig{ID: 1, Kind: opponent, Seed: seed}
	if _, err := agent.New(opponent, game.White, seed); err != nil {
		return Tally{}, err
	}

	configs := []metrics.AgentConfig{baseline, challenger}
	matchUps := [][]metrics.AgentConfig{{baseline, challenger}}
	tallies, err := t.runExperiment(ctx, agent.Adaptive+"_vs_"+opponent, configs, matchUps)
	if err != nil {
		return Tally{}, err
	}
	return tallies[0], nil
}

func (t *tournament) runExperiment(ctx context.Context, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig) ([]Tally, error) {
	// Run a number of games for each matchup
	count := 0
	tallies := make([]Tally, len(matchUps))
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < t.numGames; i++ {
			// The first agent plays black in even games
			black, white := config1, config2
			if i%2 == 1 {
				black, white = config2, config1
			}

			winner, gameMetric, moveMetrics, err := t.runGame(ctx, black, white, uint64(i))
			if err != nil {
				return nil, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Black:      black.ID,
				White:      white.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			first := game.Black
			if i%2 == 1 {
				first = game.White
			}
			switch winner {
			case game.Empty:
				tallies[mi].Draws++
			case first:
				tallies[mi].Wins++
			default:
				tallies[mi].Losses++
			}

			log.Info().Msgf("completed matchup %d of %d game %d of %d with winner: %v (%s)", mi+1, len(matchUps), i+1, t.numGames, winner, gameMetric.Reason)
		}
		log.Info().Msgf("completed matchup %d of %d: %v", mi+1, len(matchUps), tallies[mi])
	}

	log.Info().Msgf("completed %s experiment", name)

	if t.outDir == "" {
		return tallies, nil
	}
	if err := writeRecords(t.outDir, name, configs, gameRecords, moveRecords); err != nil {
		return nil, err
	}
	return tallies, nil
}

func writeRecords(outDir, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(outDir, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

// runGame executes a single game between two fresh agents. index offsets the seed of
// random agents so every game of a matchup differs.
func (t *tournament) runGame(ctx context.Context, black, white metrics.AgentConfig, index uint64) (game.Cell, metrics.GameMetric, []metrics.MoveMetric, error) {
	blackAgent, err := createAgent(black, game.Black, index)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	whiteAgent, err := createAgent(white, game.White, index)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	e, err := engine.NewLocalEngine(blackAgent, whiteAgent, engine.WithTimeLimit(t.timeLimit))
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	return e.Run(ctx)
}

func createAgent(config metrics.AgentConfig, color game.Cell, index uint64) (agent.Agent, error) {
	return agent.New(config.Kind, color, config.Seed+index)
}
