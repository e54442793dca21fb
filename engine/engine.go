package engine

import (
	"errors"
	"othello/game"
	"time"
)

const MaxMoves = 10000

var ErrIllegalAction = errors.New("illegal action")

// Policy chooses the next action for the player to move.
type Policy interface {
	Action(state game.State) (game.Action, error)
}

type Option func(e *Engine)

// Step describes one applied action. State is the live game state after the
// action and must not be mutated by observers.
type Step struct {
	Number int
	Player game.Player
	Action game.Action
	Text   string
	State  game.State
}

type Result struct {
	Returns    []float64
	Terminal   bool
	Moves      int
	Passes     int
	Flips      int
	Duration   time.Duration
	Transcript []string
	Final      game.State
}

// Engine drives a two player game from a starting state, asking one policy
// per seat for each move.
type Engine struct {
	state      game.State
	policies   []Policy
	maxMoves   int
	passAction game.Action
	observer   func(Step)
	metrics    Collector
}

func WithMaxMoves(moves int) Option {
	return func(e *Engine) {
		if moves > 0 {
			e.maxMoves = moves
		}
	}
}

func WithObserver(observer func(Step)) Option {
	return func(e *Engine) {
		e.observer = observer
	}
}

// WithPassAction names the action the game uses for passing, so passes can be
// counted apart from placements.
func WithPassAction(action game.Action) Option {
	return func(e *Engine) {
		e.passAction = action
	}
}

func New(state game.State, policies []Policy, options ...Option) *Engine {
	if state == nil {
		panic("engine needs a starting state")
	}
	if len(policies) != 2 {
		panic("need exactly two policies")
	}
	e := &Engine{ // Default values
		state:      state,
		policies:   policies,
		maxMoves:   MaxMoves,
		passAction: game.InvalidAction,
		metrics:    NewCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}
