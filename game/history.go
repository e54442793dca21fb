package game

import (
	"strconv"
	"strings"
)

// History is the ordered list of actions applied to a state.
type History []Action

func (h History) Copy() History {
	if h == nil {
		return nil
	}
	historyCopy := make(History, len(h))
	copy(historyCopy, h)
	return historyCopy
}

// String renders the history as comma separated action ids, e.g. "19, 18".
func (h History) String() string {
	parts := make([]string, len(h))
	for i, action := range h {
		parts[i] = strconv.Itoa(int(action))
	}
	return strings.Join(parts, ", ")
}
