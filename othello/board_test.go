package othello

import (
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCoordinates(t *testing.T) {
	t.Run("round trip over every cell", func(t *testing.T) {
		for move := game.Action(0); move < NumCells; move++ {
			row, col := RowColFromMove(move)
			require.True(t, OnBoard(row, col))
			require.Equal(t, move, RowColToMove(row, col))
		}
	})

	t.Run("out of range moves panic", func(t *testing.T) {
		require.PanicsWithValue(t, "move out of range: 64", func() { RowColFromMove(NumCells) })
		require.PanicsWithValue(t, "move out of range: -1", func() { RowColFromMove(-1) })
	})

	t.Run("cells off the board panic", func(t *testing.T) {
		require.Panics(t, func() { RowColToMove(-1, 0) })
		require.Panics(t, func() { RowColToMove(8, 0) })
		// Rejected even though row*col is well below the cell count.
		require.PanicsWithValue(t, "invalid cell (0, 9)", func() { RowColToMove(0, 9) })
		require.Panics(t, func() { RowColToMove(1, 8) })
	})

	t.Run("board bounds", func(t *testing.T) {
		require.True(t, OnBoard(0, 0))
		require.True(t, OnBoard(7, 7))
		require.False(t, OnBoard(-1, 3))
		require.False(t, OnBoard(3, 8))
	})
}

func TestPlayerToState(t *testing.T) {
	require.Equal(t, Black, PlayerToState(0))
	require.Equal(t, White, PlayerToState(1))
	require.PanicsWithValue(t, "invalid player id 2", func() { PlayerToState(2) })
}

func TestCapture(t *testing.T) {
	t.Run("flips the counted run", func(t *testing.T) {
		s := emptyState(1)
		s.board[8] = White
		s.board[16] = Black
		s.board[24] = Black
		s.board[32] = White

		s.capture(1, 8, Down, 2)

		require.Equal(t, White, s.BoardAtIndex(16))
		require.Equal(t, White, s.BoardAtIndex(24))
	})

	t.Run("inconsistent step count panics", func(t *testing.T) {
		s := NewState()

		require.PanicsWithValue(t, "cannot capture cell (1, 3)", func() { s.capture(0, 19, Up, 1) })
		require.PanicsWithValue(t, "cannot capture cell (4, 3)", func() { s.capture(0, 19, Down, 2) })
	})
}
