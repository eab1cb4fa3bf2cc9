// Package resolve decides which of two conflicting curve entries survives
// normalization.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"polarconv/internal/polar"
)

var (
	// ErrAborted means the operator quit instead of choosing.
	ErrAborted = errors.New("conflict resolution aborted")
	// ErrConflict is returned by the fail policy.
	ErrConflict = errors.New("conflicting duplicate entries")
	// ErrNoInput means the console closed before a valid answer was read.
	ErrNoInput = errors.New("no answer on input")
)

// Choice selects the surviving entry of a conflict.
type Choice uint8

const (
	// KeepA keeps the entry that sorts first.
	KeepA Choice = iota + 1
	// KeepB keeps the later entry.
	KeepB
)

func (c Choice) String() string {
	switch c {
	case KeepA:
		return "A"
	case KeepB:
		return "B"
	default:
		return fmt.Sprintf("Choice(%d)", uint8(c))
	}
}

// Conflict is a pair of adjacent entries with equal TWA and different values.
type Conflict struct {
	CurveIndex int
	TWS        float64
	A          polar.Pair
	B          polar.Pair
}

func (c Conflict) String() string {
	return fmt.Sprintf("TWS %g: conflicting entries at TWA %g", c.TWS, c.A.TWA)
}

// Resolver picks a survivor for each conflict.
type Resolver interface {
	Resolve(ctx context.Context, c Conflict) (Choice, error)
}

// Func adapts a plain function to Resolver.
type Func func(ctx context.Context, c Conflict) (Choice, error)

func (f Func) Resolve(ctx context.Context, c Conflict) (Choice, error) {
	return f(ctx, c)
}

// Policy names a non-interactive or interactive resolution strategy.
type Policy string

const (
	PolicyPrompt    Policy = "prompt"
	PolicyKeepFirst Policy = "keep-first"
	PolicyKeepLast  Policy = "keep-last"
	PolicyFail      Policy = "fail"
)

// ParsePolicy accepts the CLI and config spellings of a policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "prompt", "ask":
		return PolicyPrompt, nil
	case "keep-first", "first", "a":
		return PolicyKeepFirst, nil
	case "keep-last", "last", "b":
		return PolicyKeepLast, nil
	case "fail", "error":
		return PolicyFail, nil
	default:
		return "", fmt.Errorf("unknown resolve policy %q (want prompt|keep-first|keep-last|fail)", s)
	}
}

// Always resolves every conflict with the same choice.
type Always Choice

func (a Always) Resolve(ctx context.Context, _ Conflict) (Choice, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return Choice(a), nil
}

// KeepFirst keeps the earlier entry of every conflict.
var KeepFirst Resolver = Always(KeepA)

// KeepLast keeps the later entry of every conflict.
var KeepLast Resolver = Always(KeepB)

// Fail rejects every conflict.
var Fail Resolver = Func(func(_ context.Context, c Conflict) (Choice, error) {
	return 0, fmt.Errorf("%w: curve TWS %g: %s vs %s", ErrConflict, c.TWS, c.A, c.B)
})
