package agent

import (
	"context"
	"errors"
	"fmt"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

// Kinds of agents a driver can build by name.
const (
	Adaptive = "adaptive" // phase-adaptive depth, region ordering, safety shortcut
	Weighted = "weighted" // fixed depth 4, weighted evaluation, safety shortcut
	Count    = "count"    // fixed depth 4 minimax on the mover's disc count
	Random   = "random"
)

var ErrUnknownKind = errors.New("unknown agent kind")

type Agent interface {
	Color() game.Cell
	// FindMove returns a move for the agent's color on board, game.NoMove when it has
	// none, and the search metrics (if collected).
	FindMove(ctx context.Context, board game.Board) (game.Move, metrics.SearchMetric, error)
}

// New builds an agent of the given kind playing color. seed only affects random agents.
func New(kind string, color game.Cell, seed uint64) (Agent, error) {
	var options []searcher.Option
	switch kind {
	case Adaptive:
	case Weighted:
		options = append(options, searcher.WithFixedDepth(searcher.BaseDepth))
	case Count:
		options = append(options,
			searcher.WithFixedDepth(searcher.BaseDepth),
			searcher.WithEvaluationFn(game.EvaluateCount),
			searcher.WithoutPruning(),
			searcher.WithoutShortcut(),
		)
	case Random:
		return NewRandomAgent(color, seed), nil
	default:
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	options = append(options, searcher.WithMetrics())

	ab, err := searcher.NewAlphaBeta(color, color.Opponent(), options...)
	if err != nil {
		return nil, err
	}
	return NewEvaluationAgent(ab), nil
}
