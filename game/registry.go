package game

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	ErrUnknownGame      = errors.New("unknown game")
	ErrDuplicateGame    = errors.New("game already registered")
	ErrInvalidParameter = errors.New("invalid game parameter")
)

// Factory builds a game definition from construction parameters.
type Factory func(params Params) (Game, error)

type registration struct {
	info    Type
	factory Factory
}

// Registry maps game short names to factories. It is populated explicitly by
// the application entry point.
type Registry struct {
	mu    sync.RWMutex
	games map[string]registration
}

func NewRegistry() *Registry {
	return &Registry{games: make(map[string]registration)}
}

// Register adds a game under info.ShortName.
func (r *Registry) Register(info Type, factory Factory) error {
	if info.ShortName == "" {
		return fmt.Errorf("cannot register game: empty short name")
	}
	if factory == nil {
		return fmt.Errorf("cannot register game %q: nil factory", info.ShortName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.games[info.ShortName]; ok {
		return fmt.Errorf("cannot register game %q: %w", info.ShortName, ErrDuplicateGame)
	}
	r.games[info.ShortName] = registration{info: info, factory: factory}
	return nil
}

// Load creates the game registered under name.
func (r *Registry) Load(name string, params Params) (Game, error) {
	r.mu.RLock()
	reg, ok := r.games[name]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("cannot load game %q: %w", name, ErrUnknownGame)
	}
	g, err := reg.factory(params)
	if err != nil {
		return nil, fmt.Errorf("cannot load game %q: %w", name, err)
	}
	return g, nil
}

func (r *Registry) Lookup(name string) (Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reg, ok := r.games[name]
	return reg.info, ok
}

// Names returns the registered short names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.games))
	for name := range r.games {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
