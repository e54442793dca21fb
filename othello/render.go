package othello

import (
	"fmt"
	"othello/game"
	"strings"
)

const colLabels = "  a b c d e f g h  "

// glyphs[viewer][cell]: each player sees its own color as "x".
var glyphs = [NumPlayers][NumCellStates]string{
	{Empty: "-", Black: "x", White: "o"},
	{Empty: "-", Black: "o", White: "x"},
}

func checkPlayer(player game.Player) {
	if player < 0 || player >= NumPlayers {
		panic(fmt.Sprintf("invalid player id %d", player))
	}
}

// StateToString returns the glyph of cell as seen by player.
func StateToString(player game.Player, cell CellState) string {
	checkPlayer(player)
	return glyphs[player][cell]
}

// ActionToString renders a placement as "d3 (x)" and a pass as "x(pass)",
// using the acting player's own glyph.
func (s *State) ActionToString(player game.Player, action game.Action) string {
	glyph := StateToString(player, PlayerToState(player))
	if action == PassAction {
		return glyph + "(pass)"
	}
	row, col := RowColFromMove(action)
	return fmt.Sprintf("%c%c (%s)", 'a'+col, '1'+row, glyph)
}

// ParseAction converts "d3" or "pass" into an action id.
func ParseAction(text string) (game.Action, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "pass" {
		return PassAction, nil
	}
	if len(text) != 2 {
		return game.InvalidAction, fmt.Errorf("cannot parse action %q: want a column a-h and a row 1-8", text)
	}
	row, col := int(text[1]-'1'), int(text[0]-'a')
	if !OnBoard(row, col) {
		return game.InvalidAction, fmt.Errorf("cannot parse action %q: cell off the board", text)
	}
	return RowColToMove(row, col), nil
}

// ToStringForPlayer draws the board framed by column letters and row numbers.
func (s *State) ToStringForPlayer(player game.Player) string {
	var sb strings.Builder
	sb.WriteString(colLabels)
	sb.WriteString("\n")
	for r := 0; r < NumRows; r++ {
		label := string(rune('1' + r))
		sb.WriteString(label)
		sb.WriteString(" ")
		for c := 0; c < NumCols; c++ {
			sb.WriteString(StateToString(player, s.BoardAt(r, c)))
			sb.WriteString(" ")
		}
		sb.WriteString(label)
		sb.WriteString("\n")
	}
	sb.WriteString(colLabels)
	return sb.String()
}

// String draws the board from the view of the player to move.
func (s *State) String() string {
	return s.ToStringForPlayer(s.currentPlayer)
}

func (s *State) ObservationString(player game.Player) string {
	checkPlayer(player)
	return s.ToStringForPlayer(player)
}

// InformationStateString is the full move history.
func (s *State) InformationStateString(player game.Player) string {
	checkPlayer(player)
	return s.history.String()
}

// ObservationTensor writes a channel-major one-hot encoding of the board into
// values, which must hold NumCellStates*NumCells entries. Channel 1 is always
// the observing player's color.
func (s *State) ObservationTensor(player game.Player, values []float64) {
	checkPlayer(player)
	if len(values) != NumCellStates*NumCells {
		panic(fmt.Sprintf("observation tensor needs %d values, got %d", NumCellStates*NumCells, len(values)))
	}
	clear(values)

	for cell, state := range s.board {
		channel := int(state)
		if player == 1 && state != Empty {
			channel = NumCellStates - channel
		}
		values[channel*NumCells+cell] = 1
	}
}
