package maincmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mna/mainer"
	"github.com/mna/mbcell/modbus/cell"
)

func (c *Cmd) Inspect(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return InspectFiles(ctx, stdio, args...)
}

// InspectFiles reads cell literals from each file, one per line, and prints
// each cell followed by its string representation and its conversion to
// every kind. Blank lines and comments starting with '#' are ignored.
// Invalid lines are reported on stderr and do not stop processing.
func InspectFiles(ctx context.Context, stdio mainer.Stdio, files ...string) error {
	var first error
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return printError(stdio, err)
		}
		if err := inspectFile(stdio, file); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func inspectFile(stdio mainer.Stdio, file string) error {
	f, err := os.Open(file)
	if err != nil {
		return printError(stdio, err)
	}
	defer f.Close()

	var first error
	sc := bufio.NewScanner(f)
	for line := 1; sc.Scan(); line++ {
		lit, _, _ := strings.Cut(sc.Text(), "#")
		lit = strings.TrimSpace(lit)
		if lit == "" {
			continue
		}

		cl, err := cell.Parse(lit)
		if err != nil {
			err = fmt.Errorf("%s:%d: %w", file, line, err)
			_ = printError(stdio, err)
			if first == nil {
				first = err
			}
			continue
		}
		fmt.Fprintf(stdio.Stdout, "%s:%d: %s %q ->", file, line, cl.Literal(), cl.String())
		for _, k := range []cell.Kind{cell.Coil, cell.Register, cell.Value} {
			conv := cl
			conv.As(k)
			fmt.Fprintf(stdio.Stdout, " %s", conv.Literal())
		}
		fmt.Fprintln(stdio.Stdout)
	}
	if err := sc.Err(); err != nil {
		return printError(stdio, fmt.Errorf("%s: %w", file, err))
	}
	return first
}
