package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/gamemaster"
	"reversi/meta"
	"reversi/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

type LocalEngine struct {
	agents    map[game.Cell]agent.Agent
	first     game.Cell
	timeLimit time.Duration
}

// WithTimeLimit sets the time an agent has to return each move.
func WithTimeLimit(limit time.Duration) Option {
	return func(e *LocalEngine) {
		if limit <= 0 {
			panic(fmt.Sprintf("time limit must be positive, got %v", limit))
		}
		e.timeLimit = limit
	}
}

// WithStartingPlayer sets the color that moves first.
func WithStartingPlayer(first game.Cell) Option {
	return func(e *LocalEngine) {
		e.first = first
	}
}

// NewLocalEngine returns an engine playing black against white from the opening position.
func NewLocalEngine(black, white agent.Agent, options ...Option) (*LocalEngine, error) {
	if black.Color() != game.Black || white.Color() != game.White {
		return nil, fmt.Errorf("new engine with %v and %v agents: %w", black.Color(), white.Color(), game.ErrInvalidColors)
	}
	e := &LocalEngine{ // Default values
		agents:    map[game.Cell]agent.Agent{game.Black: black, game.White: white},
		first:     game.Black,
		timeLimit: meta.TimeLimit,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run executes the entire game loop until a winner is found.
func (e *LocalEngine) Run(ctx context.Context) (game.Cell, metrics.GameMetric, []metrics.MoveMetric, error) {
	referee, err := gamemaster.NewLocalReferee(e.first)
	if err != nil {
		return game.Empty, metrics.GameMetric{}, nil, err
	}
	state, getUpdate := referee.Init()

	gameMetric := metrics.GameMetric{StartingPlayer: e.first, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric
	log.Info().Msgf("%v is starting", e.first)

	winner, reason := game.Empty, ReasonComplete
	for step := 1; !state.IsOver(); step++ {
		player := state.Player()
		move, searchMetric, elapsed, err := e.findMove(ctx, player, state.Board())

		if e.timedOut(ctx, err, elapsed) {
			log.Warn().Msgf("%v exceeded the time limit of %v", player, e.timeLimit)
			winner, reason = player.Opponent(), ReasonTimeout
			break
		}
		if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("step %d: %w", step, err)
		}

		if err := referee.Play(move); errors.Is(err, gamemaster.ErrIllegalMove) {
			log.Warn().Err(err).Msgf("%v forfeits", player)
			winner, reason = player.Opponent(), ReasonIllegalMove
			if move == game.NoMove {
				reason = ReasonNoMove
			}
			break
		} else if err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("step %d: %w", step, err)
		}

		played, next := getUpdate()
		searchMetric.Duration = elapsed
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Move:         played,
			Hash:         next.Hash(),
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("step %d: %v played %v", step, player, played)
		state = next
	}

	board := state.Board()
	if reason == ReasonComplete {
		winner = state.Winner()
	}
	gameMetric.Winner = winner
	gameMetric.Reason = reason
	gameMetric.BlackDiscs = board.Count(game.Black)
	gameMetric.WhiteDiscs = board.Count(game.White)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over (%s): winner %v, %d-%d", reason, winner, gameMetric.BlackDiscs, gameMetric.WhiteDiscs)
	return winner, gameMetric, moveMetrics, nil
}

func (e *LocalEngine) findMove(ctx context.Context, player game.Cell, board game.Board) (game.Move, metrics.SearchMetric, time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeLimit)
	defer cancel()

	start := time.Now()
	move, searchMetric, err := e.agents[player].FindMove(ctx, board)
	return move, searchMetric, time.Since(start), err
}

// timedOut reports whether the agent ran out of its own time, as opposed to the whole
// game being cancelled.
func (e *LocalEngine) timedOut(ctx context.Context, err error, elapsed time.Duration) bool {
	if err != nil {
		return errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil
	}
	return elapsed > e.timeLimit
}
