package engine

import (
	"context"
	"fmt"
	"othello/game"
	"slices"

	"github.com/rs/zerolog/log"
)

// diskCounter is implemented by board games that can report flips.
type diskCounter interface {
	DiskCount(player game.Player) int
}

// Run plays until the game ends, the move limit is reached or ctx is done.
// Every chosen action is checked against the legal actions before it is
// applied. On error the returned Result describes the game up to that point.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	e.metrics.Start()
	var transcript []string

	log.Info().Msgf("player %d is starting", e.state.CurrentPlayer())

	var err error
	for moves := 0; !e.state.IsTerminal() && moves < e.maxMoves; moves++ {
		if err = ctx.Err(); err != nil {
			err = fmt.Errorf("game stopped after %d moves: %w", moves, err)
			break
		}

		player := e.state.CurrentPlayer()
		var action game.Action
		action, err = e.policies[player].Action(e.state)
		if err != nil {
			err = fmt.Errorf("player %d cannot choose move %d: %w", player, moves+1, err)
			break
		}
		if !slices.Contains(e.state.LegalActions(), action) {
			err = fmt.Errorf("player %d chose %d at move %d: %w", player, action, moves+1, ErrIllegalAction)
			break
		}

		text := e.state.ActionToString(player, action)
		e.apply(player, action)
		transcript = append(transcript, text)

		log.Debug().Int("move", moves+1).Int("player", int(player)).Str("action", text).Msg("applied action")

		if e.observer != nil {
			e.observer(Step{
				Number: moves + 1,
				Player: player,
				Action: action,
				Text:   text,
				State:  e.state,
			})
		}
	}

	metrics := e.metrics.Complete()
	result := Result{
		Returns:    e.state.Returns(),
		Terminal:   e.state.IsTerminal(),
		Moves:      metrics.Moves,
		Passes:     metrics.Passes,
		Flips:      metrics.Flips,
		Duration:   metrics.Duration,
		Transcript: transcript,
		Final:      e.state,
	}

	if err != nil {
		log.Error().Err(err).Msg("game aborted")
		return result, err
	}
	if result.Terminal {
		log.Info().Msgf("game over after %d moves, returns %v", result.Moves, result.Returns)
	} else {
		log.Info().Msgf("stopped after %d moves (no winner yet)", result.Moves)
	}
	return result, nil
}

func (e *Engine) apply(player game.Player, action game.Action) {
	e.metrics.AddMove()
	if action == e.passAction {
		e.metrics.AddPass()
		e.state.ApplyAction(action)
		return
	}

	counter, ok := e.state.(diskCounter)
	if !ok {
		e.state.ApplyAction(action)
		return
	}
	before := counter.DiskCount(player)
	e.state.ApplyAction(action)
	// The placed disk is not a flip. Unconfigured passes gain nothing.
	if gained := counter.DiskCount(player) - before; gained > 0 {
		e.metrics.AddFlips(gained - 1)
	}
}
