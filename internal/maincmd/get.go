package maincmd

import (
	"context"
	"fmt"

	"github.com/mna/mainer"
	"github.com/mna/mbcell/modbus/cell"
)

func (c *Cmd) Get(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return GetLiterals(ctx, stdio, c.kind, args...)
}

// GetLiterals reads each cell literal as kind k, without conversion, and
// prints the value. A cell of a different kind is reported as an error on
// stderr.
func GetLiterals(ctx context.Context, stdio mainer.Stdio, k cell.Kind, lits ...string) error {
	return eachCell(stdio, lits, func(cl cell.Cell) error {
		if err := strictRead(cl, k); err != nil {
			return fmt.Errorf("%s: %w", cl.Literal(), err)
		}
		fmt.Fprintln(stdio.Stdout, cl)
		return nil
	})
}

// strictRead reads cl as kind k with the matching strict accessor, the
// value is discarded.
func strictRead(cl cell.Cell, k cell.Kind) error {
	var err error
	switch k {
	case cell.Coil:
		_, err = cl.Coil()
	case cell.Value:
		_, err = cl.Value()
	default:
		_, err = cl.Register()
	}
	return err
}
