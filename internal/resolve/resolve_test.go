package resolve

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"polarconv/internal/polar"
	"polarconv/internal/ui"
)

func sampleConflict() Conflict {
	return Conflict{
		CurveIndex: 1,
		TWS:        12,
		A:          polar.Pair{TWA: 45, Value: 6.1},
		B:          polar.Pair{TWA: 45, Value: 6.4},
	}
}

func TestParsePolicy(t *testing.T) {
	cases := map[string]Policy{
		"":           PolicyPrompt,
		"prompt":     PolicyPrompt,
		"Keep-First": PolicyKeepFirst,
		"keep-last":  PolicyKeepLast,
		" fail ":     PolicyFail,
	}
	for in, want := range cases {
		got, err := ParsePolicy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParsePolicy("coin-flip")
	require.Error(t, err)
}

func TestFixedPolicies(t *testing.T) {
	ctx := context.Background()
	c := sampleConflict()

	got, err := KeepFirst.Resolve(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, KeepA, got)

	got, err = KeepLast.Resolve(ctx, c)
	require.NoError(t, err)
	assert.Equal(t, KeepB, got)

	_, err = Fail.Resolve(ctx, c)
	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "TWA: 45 Parameter: 6.1")
}

func TestPromptReprompts(t *testing.T) {
	var out strings.Builder
	p := NewPrompt(strings.NewReader("x\n\n  B \n"), &out)
	got, err := p.Resolve(context.Background(), sampleConflict())
	require.NoError(t, err)
	assert.Equal(t, KeepB, got)
	assert.Equal(t, 3, strings.Count(out.String(), "Please select entry to keep: "))
	assert.Contains(t, out.String(), "A: TWA: 45 Parameter: 6.1\n")
	assert.Contains(t, out.String(), "B: TWA: 45 Parameter: 6.4\n")
}

func TestPromptLastLineWithoutNewline(t *testing.T) {
	p := NewPrompt(strings.NewReader("a"), io.Discard)
	got, err := p.Resolve(context.Background(), sampleConflict())
	require.NoError(t, err)
	assert.Equal(t, KeepA, got)
}

func TestPromptEOF(t *testing.T) {
	p := NewPrompt(strings.NewReader("maybe\n"), io.Discard)
	_, err := p.Resolve(context.Background(), sampleConflict())
	require.ErrorIs(t, err, ErrNoInput)
}

func TestPromptCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := NewPrompt(strings.NewReader("a\n"), io.Discard)
	_, err := p.Resolve(ctx, sampleConflict())
	require.ErrorIs(t, err, context.Canceled)
}

func TestScript(t *testing.T) {
	s := NewScript(KeepB)
	got, err := s.Resolve(context.Background(), sampleConflict())
	require.NoError(t, err)
	assert.Equal(t, KeepB, got)

	_, err = s.Resolve(context.Background(), sampleConflict())
	require.ErrorIs(t, err, ErrNoInput)
	assert.Len(t, s.Seen(), 2)
}

func TestTUIMapsSelection(t *testing.T) {
	var seen ui.ChooserPrompt
	tr := &TUI{choose: func(_ context.Context, p ui.ChooserPrompt, _ io.Reader, _ io.Writer) (ui.Selection, error) {
		seen = p
		return ui.SelectionB, nil
	}}
	got, err := tr.Resolve(context.Background(), sampleConflict())
	require.NoError(t, err)
	assert.Equal(t, KeepB, got)
	assert.Equal(t, "TWS 12: conflicting entries at TWA 45", seen.Title)

	tr.choose = func(context.Context, ui.ChooserPrompt, io.Reader, io.Writer) (ui.Selection, error) {
		return ui.SelectionNone, ui.ErrAborted
	}
	_, err = tr.Resolve(context.Background(), sampleConflict())
	require.ErrorIs(t, err, ErrAborted)

	boom := errors.New("tty gone")
	tr.choose = func(context.Context, ui.ChooserPrompt, io.Reader, io.Writer) (ui.Selection, error) {
		return ui.SelectionNone, boom
	}
	_, err = tr.Resolve(context.Background(), sampleConflict())
	require.ErrorIs(t, err, boom)
}
