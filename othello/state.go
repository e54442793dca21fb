package othello

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"othello/game"
)

// Outcome is decided once, when neither player has a regular move left.
type Outcome int

const (
	Undecided Outcome = iota
	BlackWins
	WhiteWins
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Undecided:
		return "undecided"
	case BlackWins:
		return "black wins"
	case WhiteWins:
		return "white wins"
	case Draw:
		return "draw"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// State is an Othello position with the player to move and the actions that
// led to it. The zero value is not usable; see NewState.
type State struct {
	board         Board
	currentPlayer game.Player
	outcome       Outcome
	history       game.History
}

// NewState returns the standard starting position with Black (player 0) to move.
func NewState() *State {
	return &State{
		board:         newBoard(),
		currentPlayer: 0,
		outcome:       Undecided,
	}
}

func (s *State) Board() Board {
	return s.board
}

func (s *State) BoardAt(row, col int) CellState {
	return s.board[RowColToMove(row, col)]
}

func (s *State) BoardAtIndex(move game.Action) CellState {
	row, col := RowColFromMove(move)
	return s.board[row*NumCols+col]
}

func (s *State) Outcome() Outcome {
	return s.outcome
}

// DiskCount returns the number of cells holding player's color.
func (s *State) DiskCount(player game.Player) int {
	return s.board.Count(PlayerToState(player))
}

// ValidAction reports whether player may place a disk on move.
func (s *State) ValidAction(player game.Player, move game.Action) bool {
	return s.board[move] == Empty && s.CanCapture(player, move)
}

// LegalRegularActions lists the placements available to player, ignoring
// whose turn it is.
func (s *State) LegalRegularActions(player game.Player) []game.Action {
	var moves []game.Action
	for cell := game.Action(0); cell < NumCells; cell++ {
		if s.ValidAction(player, cell) {
			moves = append(moves, cell)
		}
	}
	return moves
}

// NoValidActions reports whether neither player can place a disk.
func (s *State) NoValidActions() bool {
	return len(s.LegalRegularActions(0)) == 0 && len(s.LegalRegularActions(1)) == 0
}

func (s *State) CurrentPlayer() game.Player {
	if s.IsTerminal() {
		return game.TerminalPlayer
	}
	return s.currentPlayer
}

// LegalActions returns the placements for the player to move, or only
// PassAction if there are none. Terminal states have no legal actions.
func (s *State) LegalActions() []game.Action {
	if s.IsTerminal() {
		return nil
	}
	moves := s.LegalRegularActions(s.currentPlayer)
	if len(moves) == 0 {
		moves = append(moves, PassAction)
	}
	return moves
}

// ApplyAction plays move for the player to move. A pass is trusted to be
// legal. Any other illegal move, or any move on a terminal state, panics.
func (s *State) ApplyAction(move game.Action) {
	if s.IsTerminal() {
		panic(fmt.Sprintf("cannot apply move %d: game is over", move))
	}
	if move == PassAction {
		s.history = append(s.history, move)
		s.currentPlayer = opponent(s.currentPlayer)
		return
	}

	if move < 0 || move >= NumCells || !s.ValidAction(s.currentPlayer, move) {
		panic(fmt.Sprintf("invalid move %d", move))
	}
	s.history = append(s.history, move)

	s.board[move] = PlayerToState(s.currentPlayer)
	for _, dir := range Directions {
		if steps := s.countSteps(s.currentPlayer, move, dir); steps > 0 {
			s.capture(s.currentPlayer, move, dir, steps)
		}
	}

	if s.NoValidActions() {
		s.decideOutcome()
	} else {
		s.currentPlayer = opponent(s.currentPlayer)
	}
}

func (s *State) decideOutcome() {
	black, white := s.DiskCount(0), s.DiskCount(1)
	switch {
	case black > white:
		s.outcome = BlackWins
	case black < white:
		s.outcome = WhiteWins
	default:
		s.outcome = Draw
	}
}

func (s *State) IsTerminal() bool {
	return s.outcome != Undecided
}

// Returns is {1, -1} or {-1, 1} for a win and {0, 0} for a draw or an
// unfinished game.
func (s *State) Returns() []float64 {
	switch s.outcome {
	case BlackWins:
		return []float64{1, -1}
	case WhiteWins:
		return []float64{-1, 1}
	default:
		return []float64{0, 0}
	}
}

func (s *State) History() []game.Action {
	return s.history.Copy()
}

// Clone returns an independent copy of the state.
func (s *State) Clone() game.State {
	return s.clone()
}

func (s *State) clone() *State {
	return &State{
		board:         s.board,
		currentPlayer: s.currentPlayer,
		outcome:       s.outcome,
		history:       s.history.Copy(),
	}
}

// UndoAction is not supported and always panics.
func (s *State) UndoAction(player game.Player, move game.Action) {
	panic("undo not implemented for othello")
}

func (s *State) Hash() game.StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(s.currentPlayer))
	binary.Write(hasher, binary.LittleEndian, int64(s.outcome))
	for _, cell := range s.board {
		hasher.Write([]byte{byte(cell)})
	}

	return game.StateHash(hasher.Sum64())
}
