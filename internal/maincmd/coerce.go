package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/mbcell/modbus/cell"
)

func (c *Cmd) Coerce(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return CoerceLiterals(ctx, stdio, c.kind, args...)
}

// CoerceLiterals converts each cell literal to kind k and prints the
// resulting literal, one per line.
func CoerceLiterals(ctx context.Context, stdio mainer.Stdio, k cell.Kind, lits ...string) error {
	return eachCell(stdio, lits, func(cl cell.Cell) error {
		cl.As(k)
		fmt.Fprintln(stdio.Stdout, cl.Literal())
		return nil
	})
}
