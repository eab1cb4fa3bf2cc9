package resolve

import (
	"context"
	"errors"
	"io"

	"polarconv/internal/ui"
)

// TUI resolves conflicts with the terminal chooser.
type TUI struct {
	In  io.Reader
	Out io.Writer
	// choose is swapped in tests.
	choose func(ctx context.Context, p ui.ChooserPrompt, in io.Reader, out io.Writer) (ui.Selection, error)
}

// NewTUI returns a chooser-backed resolver bound to a terminal.
func NewTUI(in io.Reader, out io.Writer) *TUI {
	return &TUI{In: in, Out: out, choose: ui.Choose}
}

func (t *TUI) Resolve(ctx context.Context, c Conflict) (Choice, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	choose := t.choose
	if choose == nil {
		choose = ui.Choose
	}
	sel, err := choose(ctx, ui.ChooserPrompt{
		Title: c.String(),
		A:     c.A.String(),
		B:     c.B.String(),
	}, t.In, t.Out)
	if err != nil {
		if errors.Is(err, ui.ErrAborted) {
			return 0, ErrAborted
		}
		return 0, err
	}
	if sel == ui.SelectionB {
		return KeepB, nil
	}
	return KeepA, nil
}
