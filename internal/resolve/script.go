package resolve

import (
	"context"
	"fmt"
	"sync"
)

// Script replays a fixed sequence of choices and records every conflict it
// was asked about.
type Script struct {
	mu      sync.Mutex
	choices []Choice
	seen    []Conflict
}

// NewScript returns a resolver answering with choices in order.
func NewScript(choices ...Choice) *Script {
	return &Script{choices: choices}
}

func (s *Script) Resolve(ctx context.Context, c Conflict) (Choice, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, c)
	if len(s.seen) > len(s.choices) {
		return 0, fmt.Errorf("%w: script exhausted after %d answers", ErrNoInput, len(s.choices))
	}
	return s.choices[len(s.seen)-1], nil
}

// Seen returns the conflicts presented so far.
func (s *Script) Seen() []Conflict {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Conflict, len(s.seen))
	copy(out, s.seen)
	return out
}
