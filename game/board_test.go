package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	require.Equal(t, 2, b.Count(Black), "Opening should have two black discs")
	require.Equal(t, 2, b.Count(White), "Opening should have two white discs")
	require.Equal(t, 4, b.Discs())
	require.Equal(t, 60, b.Empties())
	require.Equal(t, White, b[3][3])
	require.Equal(t, Black, b[3][4])
}

func TestBoardIsValue(t *testing.T) {
	b := NewBoard()
	c := b
	c.Set(Move{0, 0}, Black)

	require.Equal(t, Empty, b.Get(Move{0, 0}), "Copies should not share cells")
}

func TestFromRows(t *testing.T) {
	t.Run("rejecting wrong row count", func(t *testing.T) {
		_, err := FromRows(make([][]Cell, 7))
		require.ErrorIs(t, err, ErrBoardSize)
	})

	t.Run("rejecting short rows", func(t *testing.T) {
		rows := make([][]Cell, Size)
		for i := range rows {
			rows[i] = make([]Cell, Size)
		}
		rows[5] = make([]Cell, 9)
		_, err := FromRows(rows)
		require.ErrorIs(t, err, ErrBoardSize)
	})

	t.Run("rejecting unknown cell values", func(t *testing.T) {
		rows := make([][]Cell, Size)
		for i := range rows {
			rows[i] = make([]Cell, Size)
		}
		rows[2][2] = 7
		_, err := FromRows(rows)
		require.ErrorIs(t, err, ErrInvalidCell)
	})

	t.Run("accepting a well formed grid", func(t *testing.T) {
		rows := make([][]Cell, Size)
		for i := range rows {
			rows[i] = make([]Cell, Size)
		}
		rows[0][0] = White
		b, err := FromRows(rows)
		require.NoError(t, err)
		require.Equal(t, White, b[0][0])
		require.Equal(t, 1, b.Discs())
	})
}

func TestParseBoard(t *testing.T) {
	b := NewBoard()

	got, err := ParseBoard(b.String())

	require.NoError(t, err)
	require.Equal(t, b, got, "String output should parse back to the same board")

	_, err = ParseBoard("........\n")
	require.ErrorIs(t, err, ErrBoardSize)
}

func TestValidateColors(t *testing.T) {
	require.NoError(t, ValidateColors(Black, White))
	require.ErrorIs(t, ValidateColors(Black, Black), ErrInvalidColors)
	require.ErrorIs(t, ValidateColors(Empty, White), ErrInvalidColors)
	require.ErrorIs(t, ValidateColors(Cell(9), White), ErrInvalidColors)
}
