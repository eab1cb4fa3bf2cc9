package resolve

import (
	"encoding/hex"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Bump when Decisions changes shape.
const decisionCacheSchema uint16 = 1

// Decision is one remembered answer.
type Decision struct {
	TWS    float64
	TWA    float64
	ValueA float64
	ValueB float64
	Choice Choice
}

func (d Decision) matches(c Conflict) bool {
	return d.TWS == c.TWS && d.TWA == c.A.TWA && d.ValueA == c.A.Value && d.ValueB == c.B.Value
}

// Decisions is the cached payload for one input file.
type Decisions struct {
	Schema  uint16
	Input   string
	Answers []Decision
}

// DecisionCache stores answers on disk keyed by the input content hash.
type DecisionCache struct {
	mu  sync.RWMutex
	dir string
}

// OpenDecisionCache opens the cache under $XDG_CACHE_HOME/<app>.
func OpenDecisionCache(app string) (*DecisionCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDecisionCache(filepath.Join(base, app))
}

// NewDecisionCache opens a cache rooted at dir.
func NewDecisionCache(dir string) (*DecisionCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DecisionCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DecisionCache) Dir() string { return c.dir }

func (c *DecisionCache) pathFor(key [32]byte) string {
	return filepath.Join(c.dir, "decisions", hex.EncodeToString(key[:])+".mp")
}

// Get loads the decisions for key. A missing or stale entry reports false.
func (c *DecisionCache) Get(key [32]byte) (*Decisions, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var out Decisions
	if err := msgpack.NewDecoder(f).Decode(&out); err != nil {
		return nil, false, err
	}
	if out.Schema != decisionCacheSchema {
		return nil, false, nil
	}
	return &out, true, nil
}

// Put writes decisions for key, replacing any previous entry atomically.
func (c *DecisionCache) Put(key [32]byte, d *Decisions) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(f.Name())
		}
	}()

	d.Schema = decisionCacheSchema
	if err = msgpack.NewEncoder(f).Encode(d); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// DropAll removes every cached decision.
func (c *DecisionCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return os.RemoveAll(filepath.Join(c.dir, "decisions"))
}
