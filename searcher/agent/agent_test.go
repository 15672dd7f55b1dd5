package agent

import (
	"context"
	"testing"

	"reversi/game"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("building every known kind", func(t *testing.T) {
		for _, kind := range []string{Adaptive, Weighted, Count, Random} {
			a, err := New(kind, game.White, 1)
			require.NoError(t, err, "Kind %q should be known", kind)
			require.Equal(t, game.White, a.Color())
		}
	})

	t.Run("rejecting unknown kinds", func(t *testing.T) {
		_, err := New("greedy", game.White, 1)
		require.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("rejecting empty as a color", func(t *testing.T) {
		_, err := New(Adaptive, game.Empty, 1)
		require.ErrorIs(t, err, game.ErrInvalidColors)
	})
}

func TestFindMove(t *testing.T) {
	b := game.NewBoard()
	legal := game.LegalMoves(b, game.Black, game.White)

	for _, kind := range []string{Adaptive, Weighted, Count, Random} {
		t.Run(kind+" plays a legal opening move", func(t *testing.T) {
			a, err := New(kind, game.Black, 7)
			require.NoError(t, err)

			move, metric, err := a.FindMove(context.Background(), b)

			require.NoError(t, err)
			require.Contains(t, legal, move)
			if kind != Random {
				require.Equal(t, 4, metric.Depth, "Opening is searched to the base depth")
			}
		})
	}
}

func TestRandomAgent(t *testing.T) {
	t.Run("replaying the same choices for the same seed", func(t *testing.T) {
		b := game.NewBoard()
		a1 := NewRandomAgent(game.Black, 99)
		a2 := NewRandomAgent(game.Black, 99)
		for i := 0; i < 10; i++ {
			m1, _, err := a1.FindMove(context.Background(), b)
			require.NoError(t, err)
			m2, _, err := a2.FindMove(context.Background(), b)
			require.NoError(t, err)
			require.Equal(t, m1, m2)
		}
	})

	t.Run("returning no move when stuck", func(t *testing.T) {
		var b game.Board
		b[0][0] = game.White

		move, _, err := NewRandomAgent(game.White, 1).FindMove(context.Background(), b)

		require.NoError(t, err)
		require.Equal(t, game.NoMove, move)
	})
}
