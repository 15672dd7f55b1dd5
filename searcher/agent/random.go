package agent

import (
	"context"

	"reversi/experiments/metrics"
	"reversi/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	color game.Cell
	rng   *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move. The same
// seed replays the same choices.
func NewRandomAgent(color game.Cell, seed uint64) Agent {
	return &randomAgent{color: color, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Color() game.Cell {
	return a.color
}

func (a *randomAgent) FindMove(ctx context.Context, board game.Board) (game.Move, metrics.SearchMetric, error) {
	if err := ctx.Err(); err != nil {
		return game.NoMove, metrics.SearchMetric{}, err
	}
	moves := game.LegalMoves(board, a.color, a.color.Opponent())
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, nil
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
