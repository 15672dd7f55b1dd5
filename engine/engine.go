package engine

import (
	"context"

	"reversi/experiments/metrics"
	"reversi/game"
)

// Reasons a game ends.
const (
	ReasonComplete    = "complete"
	ReasonTimeout     = "timeout"
	ReasonNoMove      = "no move"
	ReasonIllegalMove = "illegal move"
)

type Engine interface {
	// Run plays a game till neither side can move or a player forfeits. It only returns an
	// error when ctx is done or an agent fails for another reason than its time limit.
	Run(ctx context.Context) (winner game.Cell, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
