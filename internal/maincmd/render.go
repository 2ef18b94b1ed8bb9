package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/mbcell/modbus/cell"
)

func (c *Cmd) Render(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return RenderLiterals(ctx, stdio, args...)
}

// RenderLiterals prints the string representation of each cell literal,
// one per line. Invalid literals are reported on stderr and the first such
// error is returned once all literals are processed.
func RenderLiterals(ctx context.Context, stdio mainer.Stdio, lits ...string) error {
	return eachCell(stdio, lits, func(cl cell.Cell) error {
		fmt.Fprintln(stdio.Stdout, cl)
		return nil
	})
}

// eachCell parses each literal and calls fn with the resulting cell. Errors
// from parsing or from fn are printed to stderr and do not stop the
// iteration, the first one is returned.
func eachCell(stdio mainer.Stdio, lits []string, fn func(cell.Cell) error) error {
	var first error
	for _, lit := range lits {
		cl, err := cell.Parse(lit)
		if err == nil {
			err = fn(cl)
		}
		if err != nil {
			_ = printError(stdio, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}
