package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultWeightsSymmetry(t *testing.T) {
	w := DefaultWeights()
	n := Size - 1

	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			require.Equal(t, w[r][c], w[r][n-c], "Horizontal mirror at [%d,%d]", r, c)
			require.Equal(t, w[r][c], w[n-r][c], "Vertical mirror at [%d,%d]", r, c)
			require.Equal(t, w[r][c], w[c][r], "Diagonal mirror at [%d,%d]", r, c)
			require.Equal(t, w[r][c], w[c][n-r], "Quarter turn at [%d,%d]", r, c)
		}
	}
}

func TestDefaultWeightsIsCopy(t *testing.T) {
	w := DefaultWeights()
	w.Secure(Move{0, 0})

	require.Equal(t, -500, DefaultWeights()[1][1], "Template should not change")
}

func TestSecure(t *testing.T) {
	t.Run("upgrading the neighbourhood of each corner", func(t *testing.T) {
		cases := map[Move][]Move{
			{0, 0}: {{1, 0}, {0, 1}, {2, 0}, {0, 2}, {1, 1}},
			{0, 7}: {{1, 7}, {0, 6}, {2, 7}, {0, 5}, {1, 6}},
			{7, 0}: {{6, 0}, {7, 1}, {5, 0}, {7, 2}, {6, 1}},
			{7, 7}: {{6, 7}, {7, 6}, {5, 7}, {7, 5}, {6, 6}},
		}
		for corner, cells := range cases {
			w := DefaultWeights()
			w.Secure(corner)

			changed := 0
			for r := 0; r < Size; r++ {
				for c := 0; c < Size; c++ {
					if w[r][c] != template[r][c] {
						changed++
					}
				}
			}
			for _, cell := range cells {
				require.Equal(t, SafeEdgeWeight, w.At(cell), "Cell %v next to %v should be safe", cell, corner)
			}
			require.Equal(t, 5, changed, "Only the corner neighbourhood should change for %v", corner)
			require.Equal(t, 1000, w.At(corner), "Corner keeps its value")
		}
	})

	t.Run("applying the same corner twice", func(t *testing.T) {
		w := DefaultWeights()
		w.Secure(Move{7, 0})
		once := w
		w.Secure(Move{7, 0})

		require.Equal(t, once, w, "Second application should be a no-op")
	})

	t.Run("ignoring non-corner moves", func(t *testing.T) {
		w := DefaultWeights()
		w.Secure(Move{0, 3})

		require.Equal(t, DefaultWeights(), w)
	})
}

func TestEvaluateWeighted(t *testing.T) {
	b := NewBoard()
	b = ApplyMove(b, Move{2, 3}, Black, White)
	w := DefaultWeights()

	require.Equal(t, 4-1+1, EvaluateWeighted(b, Black, White, Move{2, 3}, &w))
	require.Equal(t, 1-4+1000, EvaluateWeighted(b, White, Black, Move{0, 0}, &w))
}

func TestEvaluateCount(t *testing.T) {
	b := NewBoard()
	b = ApplyMove(b, Move{2, 3}, Black, White)
	w := DefaultWeights()

	require.Equal(t, 4, EvaluateCount(b, Black, White, Move{0, 0}, &w), "Weights should be ignored")
}
