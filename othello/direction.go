package othello

import (
	"fmt"
	"othello/game"
)

// Direction is one of the eight rays a placement can capture along.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
	UpRight
	UpLeft
	DownRight
	DownLeft
	NumDirections
)

var Directions = [NumDirections]Direction{Up, Down, Left, Right, UpRight, UpLeft, DownRight, DownLeft}

var deltas = [NumDirections]struct{ row, col int }{
	Up:        {-1, 0},
	Down:      {1, 0},
	Left:      {0, -1},
	Right:     {0, 1},
	UpRight:   {-1, 1},
	UpLeft:    {-1, -1},
	DownRight: {1, 1},
	DownLeft:  {1, -1},
}

func next(row, col int, dir Direction) (int, int) {
	d := deltas[dir]
	return row + d.row, col + d.col
}

// countSteps walks from the cell next to move along dir and returns the length
// of the opposing run closed by player's own disk, or 0 if the run is open.
func (s *State) countSteps(player game.Player, move game.Action, dir Direction) int {
	row, col := RowColFromMove(move)
	row, col = next(row, col, dir)

	count := 0
	own := PlayerToState(player)
	for OnBoard(row, col) {
		switch s.BoardAt(row, col) {
		case own:
			return count
		case Empty:
			return 0
		}
		count++
		row, col = next(row, col, dir)
	}
	return 0
}

// CanCapture reports whether move is empty and flanks at least one run.
func (s *State) CanCapture(player game.Player, move game.Action) bool {
	if s.board[move] != Empty {
		return false
	}
	for _, dir := range Directions {
		if s.countSteps(player, move, dir) != 0 {
			return true
		}
	}
	return false
}

// capture flips steps opposing disks starting next to move along dir.
func (s *State) capture(player game.Player, move game.Action, dir Direction, steps int) {
	row, col := RowColFromMove(move)
	row, col = next(row, col, dir)

	own := PlayerToState(player)
	for step := 0; step < steps; step++ {
		if cell := s.BoardAt(row, col); cell == Empty || cell == own {
			panic(fmt.Sprintf("cannot capture cell (%d, %d)", row, col))
		}
		s.board[RowColToMove(row, col)] = own
		row, col = next(row, col, dir)
	}
}
