package game

// Player identifies a seat at the table. Seats are numbered from 0.
type Player int

const (
	// TerminalPlayer is reported as the current player once the game is over.
	TerminalPlayer Player = -4
	InvalidPlayer  Player = -1
)

// Action is a game specific move id. Ids are dense, starting from 0.
type Action int

const InvalidAction Action = -1

type StateHash uint64

// Params holds game construction parameters.
type Params map[string]any

type Dynamics int

const (
	Sequential Dynamics = iota
	Simultaneous
)

type ChanceMode int

const (
	Deterministic ChanceMode = iota
	ExplicitStochastic
)

type Information int

const (
	PerfectInformation Information = iota
	ImperfectInformation
)

type Utility int

const (
	ZeroSum Utility = iota
	ConstantSum
	GeneralSum
)

type RewardModel int

const (
	TerminalReward RewardModel = iota
	RewardsEveryStep
)

// Type describes a game to the registry.
type Type struct {
	ShortName   string
	LongName    string
	Dynamics    Dynamics
	ChanceMode  ChanceMode
	Information Information
	Utility     Utility
	RewardModel RewardModel

	MinNumPlayers int
	MaxNumPlayers int

	ProvidesInformationStateString bool
	ProvidesObservationString      bool
	ProvidesObservationTensor      bool

	// Accepted parameters with their default values.
	ParameterSpecification Params
}

// Game is an immutable game definition that creates states.
type Game interface {
	Type() Type
	NewInitialState() State
	NumDistinctActions() int
	NumPlayers() int
	MinUtility() float64
	MaxUtility() float64
	UtilitySum() float64
	ObservationTensorShape() []int
	ObservationTensorSize() int
	MaxGameLength() int
}

// State is a mutable position in a game. States are not safe for concurrent
// use; explore in parallel by cloning.
type State interface {
	CurrentPlayer() Player
	LegalActions() []Action
	ApplyAction(action Action)
	IsTerminal() bool
	// Returns holds one value per player. Only meaningful once terminal.
	Returns() []float64
	String() string
	ObservationString(player Player) string
	ObservationTensor(player Player, values []float64)
	InformationStateString(player Player) string
	ActionToString(player Player, action Action) string
	Clone() State
	UndoAction(player Player, action Action)
	History() []Action
	Hash() StateHash
}
