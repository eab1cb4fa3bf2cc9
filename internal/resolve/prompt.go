package resolve

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// Prompt asks the operator on a line-oriented console. It re-prompts until
// "a" or "b" (any case) is entered.
type Prompt struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompt returns a console resolver reading answers from in.
func NewPrompt(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

func (p *Prompt) Resolve(ctx context.Context, c Conflict) (Choice, error) {
	fmt.Fprintln(p.out, "Found conflicting entries in TWS curve", fmtTWS(c.TWS))
	fmt.Fprintf(p.out, "A: %s\n", c.A)
	fmt.Fprintf(p.out, "B: %s\n", c.B)
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprint(p.out, "Please select entry to keep: ")
		line, err := p.in.ReadString('\n')
		if choice, ok := parseAnswer(line); ok {
			return choice, nil
		}
		if err != nil {
			if err == io.EOF {
				fmt.Fprintln(p.out)
				return 0, ErrNoInput
			}
			return 0, err
		}
	}
}

func parseAnswer(line string) (Choice, bool) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "a":
		return KeepA, true
	case "b":
		return KeepB, true
	}
	return 0, false
}

func fmtTWS(tws float64) string {
	return fmt.Sprintf("%g", tws)
}
