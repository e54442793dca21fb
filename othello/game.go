package othello

import (
	"fmt"
	"othello/game"
	"sort"
)

var GameType = game.Type{
	ShortName:   "othello",
	LongName:    "Othello",
	Dynamics:    game.Sequential,
	ChanceMode:  game.Deterministic,
	Information: game.PerfectInformation,
	Utility:     game.ZeroSum,
	RewardModel: game.TerminalReward,

	MinNumPlayers: NumPlayers,
	MaxNumPlayers: NumPlayers,

	ProvidesInformationStateString: true,
	ProvidesObservationString:      true,
	ProvidesObservationTensor:      true,

	ParameterSpecification: game.Params{},
}

// Game is the Othello definition. It has no tunable parameters.
type Game struct{}

// NewGame rejects every parameter since Othello defines none.
func NewGame(params game.Params) (*Game, error) {
	if len(params) > 0 {
		names := make([]string, 0, len(params))
		for name := range params {
			names = append(names, name)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("othello takes no parameters, got %v: %w", names, game.ErrInvalidParameter)
	}
	return &Game{}, nil
}

// Factory adapts NewGame to the registry.
func Factory(params game.Params) (game.Game, error) {
	g, err := NewGame(params)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Register adds Othello to registry. Call it from the application entry point.
func Register(registry *game.Registry) error {
	return registry.Register(GameType, Factory)
}

func (g *Game) Type() game.Type { return GameType }

func (g *Game) NewInitialState() game.State { return NewState() }

func (g *Game) NumDistinctActions() int { return NumDistinctActions }

func (g *Game) NumPlayers() int { return NumPlayers }

func (g *Game) MinUtility() float64 { return -1 }

func (g *Game) MaxUtility() float64 { return 1 }

func (g *Game) UtilitySum() float64 { return 0 }

func (g *Game) ObservationTensorShape() []int {
	return []int{NumCellStates, NumRows, NumCols}
}

func (g *Game) ObservationTensorSize() int { return NumCellStates * NumCells }

// MaxGameLength allows every one of the 60 placements to follow a pass.
func (g *Game) MaxGameLength() int { return 2 * (NumCells - 4) }
