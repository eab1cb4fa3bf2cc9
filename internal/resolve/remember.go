package resolve

import (
	"context"
	"sync"
)

// Remembering answers conflicts seen on a previous run of the same input
// from the cache and asks Next for the rest. Save persists the new answers.
type Remembering struct {
	Next  Resolver
	Cache *DecisionCache
	Key   [32]byte
	Input string

	mu      sync.Mutex
	loaded  bool
	answers []Decision
	dirty   bool
	hits    int
}

func (r *Remembering) load() error {
	if r.loaded {
		return nil
	}
	r.loaded = true
	d, ok, err := r.Cache.Get(r.Key)
	if err != nil {
		return err
	}
	if ok {
		r.answers = d.Answers
	}
	return nil
}

func (r *Remembering) Resolve(ctx context.Context, c Conflict) (Choice, error) {
	r.mu.Lock()
	if err := r.load(); err != nil {
		r.mu.Unlock()
		return 0, err
	}
	for _, d := range r.answers {
		if d.matches(c) {
			r.hits++
			r.mu.Unlock()
			return d.Choice, nil
		}
	}
	r.mu.Unlock()

	choice, err := r.Next.Resolve(ctx, c)
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	r.answers = append(r.answers, Decision{
		TWS:    c.TWS,
		TWA:    c.A.TWA,
		ValueA: c.A.Value,
		ValueB: c.B.Value,
		Choice: choice,
	})
	r.dirty = true
	r.mu.Unlock()
	return choice, nil
}

// Hits reports how many conflicts were answered from the cache.
func (r *Remembering) Hits() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hits
}

// Save writes new answers back to the cache. It is a no-op when nothing changed.
func (r *Remembering) Save() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.dirty {
		return nil
	}
	if err := r.Cache.Put(r.Key, &Decisions{Input: r.Input, Answers: r.answers}); err != nil {
		return err
	}
	r.dirty = false
	return nil
}
