package searcher

import (
	"context"
	"fmt"

	"reversi/experiments/metrics"
	"reversi/game"

	"github.com/rs/zerolog/log"
)

// Cancellation is polled once per this many nodes.
const pollInterval = 1 << 10

type Option func(ab *AlphaBeta)

// AlphaBeta chooses moves for one color over a whole game. It owns the weight table,
// which is adapted after each completed search that captures a corner.
//
// An AlphaBeta must not be used by concurrent ChooseMove calls.
type AlphaBeta struct {
	mover      game.Cell
	opponent   game.Cell
	weights    game.Weights
	fixedDepth int
	evaluate   game.Evaluate
	pruning    bool
	shortcut   bool
	metrics    metrics.Collector
	last       metrics.SearchMetric
}

// WithFixedDepth searches every position to depth, without phase escalation or region
// ordering.
func WithFixedDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth <= 0 {
			panic(fmt.Sprintf("search depth must be positive, got %d", depth))
		}
		ab.fixedDepth = depth
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(ab *AlphaBeta) {
		if evaluate != nil {
			ab.evaluate = evaluate
		}
	}
}

// WithoutPruning turns the search into a full-width minimax.
func WithoutPruning() Option {
	return func(ab *AlphaBeta) {
		ab.pruning = false
	}
}

// WithoutShortcut always searches second ring moves to full depth.
func WithoutShortcut() Option {
	return func(ab *AlphaBeta) {
		ab.shortcut = false
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = metrics.NewCollector()
	}
}

// NewAlphaBeta returns a searcher playing mover against opponent.
func NewAlphaBeta(mover, opponent game.Cell, options ...Option) (*AlphaBeta, error) {
	if err := game.ValidateColors(mover, opponent); err != nil {
		return nil, fmt.Errorf("new searcher for %v against %v: %w", mover, opponent, err)
	}
	ab := &AlphaBeta{ // Default values
		mover:    mover,
		opponent: opponent,
		weights:  game.DefaultWeights(),
		evaluate: game.EvaluateWeighted,
		pruning:  true,
		shortcut: true,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(ab)
	}
	return ab, nil
}

func (ab *AlphaBeta) Color() game.Cell {
	return ab.mover
}

// Weights returns a copy of the current weight table.
func (ab *AlphaBeta) Weights() game.Weights {
	return ab.weights
}

// Metrics returns the metrics of the last completed search.
func (ab *AlphaBeta) Metrics() metrics.SearchMetric {
	return ab.last
}

// ChooseMove returns the best move found for the mover on b, or game.NoMove when the
// mover has no legal move. The caller's board is never modified.
//
// If ctx is done before the search completes, ChooseMove returns ctx's error and the
// weight table is left as it was.
func (ab *AlphaBeta) ChooseMove(ctx context.Context, b game.Board) (game.Move, error) {
	if err := b.Validate(); err != nil {
		return game.NoMove, fmt.Errorf("choose move: %w", err)
	}

	move, score, err := ab.search(ctx, b)
	if err != nil {
		return game.NoMove, err
	}

	// The opponent can no longer use a corner we own against us
	if move.IsCorner() {
		ab.weights.Secure(move)
	}

	log.Debug().
		Stringer("color", ab.mover).
		Stringer("move", move).
		Int("score", score).
		Int("depth", ab.last.Depth).
		Int("nodes", ab.last.Nodes).
		Msg("search complete")
	return move, nil
}

// plan picks the depth and move ordering for a search from b.
func (ab *AlphaBeta) plan(b game.Board) (depth int, ordered bool) {
	if ab.fixedDepth > 0 {
		return ab.fixedDepth, false
	}
	return DepthFor(b), UseOrdering(b, ab.mover)
}

// search runs one root search without side effects on the weight table.
func (ab *AlphaBeta) search(ctx context.Context, b game.Board) (game.Move, int, error) {
	if err := ctx.Err(); err != nil {
		return game.NoMove, 0, err
	}

	depth, ordered := ab.plan(b)
	ab.metrics.Start(depth, ordered)
	s := &search{
		ctx:      ctx,
		mover:    ab.mover,
		opponent: ab.opponent,
		weights:  &ab.weights,
		evaluate: ab.evaluate,
		ordered:  ordered,
		pruning:  ab.pruning,
		metrics:  ab.metrics,
	}

	moves := s.moves(b, ab.mover, ab.opponent)
	if len(moves) == 0 {
		ab.last = ab.metrics.Complete()
		return game.NoMove, 0, nil
	}

	shortcut := ab.shortcut && b.Discs() < ShortcutDiscLimit
	best, bestScore := moves[0], -Inf
	for _, m := range moves {
		// A verified safe second ring move is trusted without searching it
		if shortcut && game.InSecondRing(m) && game.IsSafe(b, m, ab.mover, ab.opponent) {
			ab.metrics.AddShortcut()
			if score := b.Count(ab.mover) - ab.weights.At(m); score > bestScore {
				best, bestScore = m, score
			}
			continue
		}

		child := game.ApplyMove(b, m, ab.mover, ab.opponent)
		score := s.score(child, depth-1, bestScore, Inf, false, m)
		if s.err != nil {
			return game.NoMove, 0, s.err
		}
		if score > bestScore {
			best, bestScore = m, score
		}
	}

	ab.last = ab.metrics.Complete()
	return best, bestScore, nil
}

// search holds what stays fixed while scoring the subtrees of one root position.
type search struct {
	ctx      context.Context
	mover    game.Cell
	opponent game.Cell
	weights  *game.Weights // read only during the search
	evaluate game.Evaluate
	ordered  bool
	pruning  bool
	metrics  metrics.Collector
	nodes    int
	err      error
}

func (s *search) moves(b game.Board, attacker, defender game.Cell) []game.Move {
	if s.ordered {
		return game.OrderedMoves(b, attacker, defender)
	}
	return game.LegalMoves(b, attacker, defender)
}

// aborted records the context error once ctx is done.
func (s *search) aborted() bool {
	if s.err != nil {
		return true
	}
	s.nodes++
	if s.nodes%pollInterval == 0 {
		s.err = s.ctx.Err()
	}
	return s.err != nil
}

// score returns the value of b for the mover, with maximizing telling whose turn it is.
// root is the root move this subtree descends from and is what the leaves are scored
// against. Without pruning every node is searched with an open window, which yields
// the exact minimax value.
func (s *search) score(b game.Board, depth, alpha, beta int, maximizing bool, root game.Move) int {
	if s.aborted() {
		return 0
	}
	s.metrics.AddNode()

	if depth == 0 {
		return s.evaluate(b, s.mover, s.opponent, root, s.weights)
	}

	attacker, defender := s.mover, s.opponent
	if !maximizing {
		attacker, defender = defender, attacker
	}
	moves := s.moves(b, attacker, defender)
	if len(moves) == 0 {
		if maximizing {
			return StuckPenalty + b.Count(s.mover)
		}
		return ForfeitBonus + b.Count(s.mover)
	}

	if !s.pruning {
		alpha, beta = -Inf, Inf
	}
	for _, m := range moves {
		child := game.ApplyMove(b, m, attacker, defender)
		score := s.score(child, depth-1, alpha, beta, !maximizing, root)
		if maximizing {
			alpha = max(alpha, score)
		} else {
			beta = min(beta, score)
		}
		if s.pruning && beta <= alpha {
			s.metrics.AddCutoff()
			break
		}
	}

	if maximizing {
		return alpha
	}
	return beta
}
