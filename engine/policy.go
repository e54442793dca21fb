package engine

import (
	"errors"
	"fmt"
	"othello/game"

	"golang.org/x/exp/rand"
)

var ErrScriptExhausted = errors.New("script exhausted")

type scripted struct {
	actions []game.Action
	next    int
}

// Scripted replays actions in order, one per call.
func Scripted(actions ...game.Action) Policy {
	return &scripted{actions: actions}
}

func (p *scripted) Action(state game.State) (game.Action, error) {
	if p.next >= len(p.actions) {
		return game.InvalidAction, fmt.Errorf("no action left after %d: %w", len(p.actions), ErrScriptExhausted)
	}
	action := p.actions[p.next]
	p.next++
	return action, nil
}

type uniform struct {
	rng *rand.Rand
}

// Uniform picks uniformly among the legal actions. The same seed replays the
// same choices.
func Uniform(seed uint64) Policy {
	return &uniform{rng: rand.New(rand.NewSource(seed))}
}

func (p *uniform) Action(state game.State) (game.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return game.InvalidAction, fmt.Errorf("no legal actions for player %d", state.CurrentPlayer())
	}
	return actions[p.rng.Intn(len(actions))], nil
}
