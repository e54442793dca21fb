package othello

import (
	"fmt"
	"othello/game"
)

const (
	NumRows  = 8
	NumCols  = 8
	NumCells = NumRows * NumCols

	NumCellStates = 3
	NumPlayers    = 2

	// PassAction is the only action id outside the cell range.
	PassAction         game.Action = NumCells
	NumDistinctActions             = NumCells + 1
)

// CellState is the content of a single cell. The values double as
// observation tensor channels.
type CellState int

const (
	Empty CellState = iota
	Black
	White
)

// Board holds the cells in row-major order, indexed by row*NumCols+col.
type Board [NumCells]CellState

func newBoard() Board {
	var b Board
	b[27] = White
	b[28] = Black
	b[35] = Black
	b[36] = White
	return b
}

// OnBoard reports whether (row, col) addresses a cell.
func OnBoard(row, col int) bool {
	return 0 <= row && row < NumRows && 0 <= col && col < NumCols
}

// RowColFromMove panics if move does not address a cell.
func RowColFromMove(move game.Action) (row, col int) {
	if move < 0 || move >= NumCells {
		panic(fmt.Sprintf("move out of range: %d", move))
	}
	return int(move) / NumCols, int(move) % NumCols
}

// RowColToMove panics if (row, col) is off the board.
func RowColToMove(row, col int) game.Action {
	if !OnBoard(row, col) {
		panic(fmt.Sprintf("invalid cell (%d, %d)", row, col))
	}
	return game.Action(row*NumCols + col)
}

// PlayerToState maps player 0 to Black and player 1 to White.
func PlayerToState(player game.Player) CellState {
	switch player {
	case 0:
		return Black
	case 1:
		return White
	}
	panic(fmt.Sprintf("invalid player id %d", player))
}

func opponent(player game.Player) game.Player {
	return 1 - player
}

// Count returns the number of cells holding cell.
func (b *Board) Count(cell CellState) int {
	count := 0
	for _, c := range b {
		if c == cell {
			count++
		}
	}
	return count
}
