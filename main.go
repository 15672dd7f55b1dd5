package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"time"

	"reversi/experiments"
	"reversi/meta"
	"reversi/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	games := flag.Int("games", meta.NumGames, "Number of games in the tournament")
	opponent := flag.String("opponent", agent.Random, "Opponent of the adaptive agent: random, weighted or count")
	timeLimit := flag.Duration("time-limit", meta.TimeLimit, "Time limit of each move")
	outDir := flag.String("out", meta.OutDir, "Directory of the tournament records, empty to skip writing")
	seed := flag.Uint64("seed", meta.DefaultSeed, "Seed of the random opponent")
	level := flag.String("log-level", "info", "Log level")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(lvl)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tally, err := experiments.RunTournament(ctx, *opponent, *seed,
		experiments.WithNumGames(*games),
		experiments.WithTimeLimit(*timeLimit),
		experiments.WithOutDir(*outDir),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
	log.Info().Msgf("adaptive agent against %s: %v", *opponent, tally)
}
