package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyMove(t *testing.T) {
	t.Run("flipping runs in several directions", func(t *testing.T) {
		b := mustParse(`
			X.......
			.O......
			..X.OOX.
			.OOO....
			XXOX....
			..X.....
			........
			........`)

		got := ApplyMove(b, Move{2, 3}, Black, White)

		expected := mustParse(`
			X.......
			.O......
			..XXXXX.
			.OXX....
			XXOX....
			..X.....
			........
			........`)
		require.Equal(t, expected, got)
	})

	t.Run("leaving the input untouched", func(t *testing.T) {
		b := NewBoard()
		before := b

		_ = ApplyMove(b, Move{2, 3}, Black, White)

		require.Equal(t, before, b, "Input board should not change")
	})

	t.Run("not flipping runs that reach an empty cell or the edge", func(t *testing.T) {
		b := mustParse(`
			........
			........
			.O......
			O.OOX...
			........
			........
			........
			........`)

		got := ApplyMove(b, Move{3, 1}, Black, White)

		require.Equal(t, Black, got[3][2])
		require.Equal(t, Black, got[3][3])
		require.Equal(t, White, got[3][0], "Run reaching the edge should stay")
		require.Equal(t, White, got[2][1], "Run reaching an empty cell should stay")
	})

	t.Run("panicking on an occupied cell", func(t *testing.T) {
		require.Panics(t, func() {
			ApplyMove(NewBoard(), Move{3, 3}, Black, White)
		})
	})

	t.Run("panicking on a move that flips nothing", func(t *testing.T) {
		require.Panics(t, func() {
			ApplyMove(NewBoard(), Move{0, 0}, Black, White)
		})
	})
}
