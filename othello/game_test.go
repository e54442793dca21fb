package othello

import (
	"othello/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	t.Run("no parameters", func(t *testing.T) {
		g, err := NewGame(nil)
		require.NoError(t, err)

		require.Equal(t, 65, g.NumDistinctActions())
		require.Equal(t, 2, g.NumPlayers())
		require.Equal(t, -1.0, g.MinUtility())
		require.Equal(t, 1.0, g.MaxUtility())
		require.Equal(t, 0.0, g.UtilitySum())
		require.Equal(t, []int{3, 8, 8}, g.ObservationTensorShape())
		require.Equal(t, 192, g.ObservationTensorSize())
		require.Equal(t, 120, g.MaxGameLength())
		require.Equal(t, "othello", g.Type().ShortName)
	})

	t.Run("any parameter is rejected", func(t *testing.T) {
		g, err := NewGame(game.Params{"board_size": 10})
		require.ErrorIs(t, err, game.ErrInvalidParameter)
		require.Nil(t, g)
	})

	t.Run("initial state is fresh each time", func(t *testing.T) {
		g, err := NewGame(game.Params{})
		require.NoError(t, err)

		first := g.NewInitialState()
		first.ApplyAction(19)
		second := g.NewInitialState()

		require.Empty(t, second.History())
		require.Equal(t, game.Player(0), second.CurrentPlayer())
	})
}

func TestRegister(t *testing.T) {
	registry := game.NewRegistry()
	require.NoError(t, Register(registry))
	require.ErrorIs(t, Register(registry), game.ErrDuplicateGame)

	info, ok := registry.Lookup("othello")
	require.True(t, ok)
	require.Equal(t, GameType, info)

	g, err := registry.Load("othello", nil)
	require.NoError(t, err)
	require.IsType(t, &Game{}, g)

	_, err = registry.Load("othello", game.Params{"variant": "8x8"})
	require.ErrorIs(t, err, game.ErrInvalidParameter)
}
