package agent

import (
	"context"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

type evaluationAgent struct {
	ab *searcher.AlphaBeta
}

// NewEvaluationAgent returns an agent that plays the moves chosen by ab.
func NewEvaluationAgent(ab *searcher.AlphaBeta) Agent {
	return evaluationAgent{ab: ab}
}

func (a evaluationAgent) Color() game.Cell {
	return a.ab.Color()
}

func (a evaluationAgent) FindMove(ctx context.Context, board game.Board) (game.Move, metrics.SearchMetric, error) {
	move, err := a.ab.ChooseMove(ctx, board)
	if err != nil {
		return game.NoMove, metrics.SearchMetric{}, err
	}
	return move, a.ab.Metrics(), nil
}
