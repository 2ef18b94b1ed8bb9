package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/dolthub/swiss"
	"github.com/mna/mainer"
	"github.com/mna/mbcell/modbus/cell"
)

const binName = "mbcell"

var (
	shortUsage = fmt.Sprintf(`
usage: %s [<option>...] <command> [<arg>...]
Run '%[1]s --help' for details.
`, binName)

	longUsage = fmt.Sprintf(`usage: %s [<option>...] <command> [<arg>...]
       %[1]s -h|--help
       %[1]s -v|--version

Inspection tool for modbus cells. A cell is written as a literal
<kind>:<payload>, where <kind> is one of coil, register (reg) or
value (val), e.g. coil:true, register:300, val:0x2c.

The <command> can be one of:
       coerce                    Convert each <literal> argument to the
                                 kind specified by --to and print the
                                 resulting literal.
       get                       Read each <literal> argument as the
                                 kind specified by --as, without
                                 conversion, and print its value. Fails
                                 if the kind does not match.
       inspect                   Read cell literals from each <path>
                                 argument, one per line, and print
                                 every cell with its conversion to
                                 each kind.
       render                    Print the string representation of
                                 each <literal> argument.

Valid flag options are:
       -h --help                 Show this help and exit.
       -v --version              Print version and exit.

Valid flag options for the <coerce> command are:
       --to KIND                 Kind to convert to (required).

Valid flag options for the <get> command are:
       --as KIND                 Kind to read as (required).

More information on the %[1]s repository:
       https://github.com/mna/mbcell
`, binName)
)

type cmdFunc = func(context.Context, mainer.Stdio, []string) error

// kind flags and the only command that accepts each.
var kindFlags = []struct{ flag, cmd string }{
	{"to", "coerce"},
	{"as", "get"},
}

type Cmd struct {
	BuildVersion string
	BuildDate    string

	Help    bool `flag:"h,help"`
	Version bool `flag:"v,version"`

	To string `flag:"to"`
	As string `flag:"as"`

	args  []string
	flags map[string]bool
	kind  cell.Kind
	cmdFn cmdFunc
}

func (c *Cmd) SetArgs(args []string) {
	c.args = args
}

func (c *Cmd) SetFlags(flags map[string]bool) {
	c.flags = flags
}

func (c *Cmd) Validate() error {
	if c.Help || c.Version {
		return nil
	}

	if len(c.args) == 0 {
		return errors.New("no command specified")
	}

	cmdName := c.args[0]

	commands := buildCmds(c)
	fn, ok := commands.Get(cmdName)
	if !ok {
		return fmt.Errorf("unknown command: %s", c.args[0])
	}
	c.cmdFn = fn

	if len(c.args[1:]) == 0 {
		if cmdName == "inspect" {
			return fmt.Errorf("%s: at least one file must be provided", cmdName)
		}
		return fmt.Errorf("%s: at least one literal must be provided", cmdName)
	}

	for _, fc := range kindFlags {
		if cmdName == fc.cmd {
			if !c.flags[fc.flag] {
				return fmt.Errorf("%s: flag '%s' is required", cmdName, fc.flag)
			}
			continue
		}
		if c.flags[fc.flag] {
			return fmt.Errorf("%s: invalid flag '%s'", cmdName, fc.flag)
		}
	}

	var kindName string
	switch cmdName {
	case "coerce":
		kindName = c.To
	case "get":
		kindName = c.As
	default:
		return nil
	}
	k, err := cell.ParseKind(kindName)
	if err != nil {
		return fmt.Errorf("%s: %w", cmdName, err)
	}
	c.kind = k
	return nil
}

func printError(stdio mainer.Stdio, err error) error {
	if err != nil {
		fmt.Fprintf(stdio.Stderr, "%s\n", err)
	}
	return err
}

func (c *Cmd) Main(args []string, stdio mainer.Stdio) mainer.ExitCode {
	p := mainer.Parser{
		EnvVars:   false,
		EnvPrefix: binName + "_",
	}
	if err := p.Parse(args, c); err != nil {
		fmt.Fprintf(stdio.Stderr, "invalid arguments: %s\n%s", err, shortUsage)
		return mainer.InvalidArgs
	}

	switch {
	case c.Help:
		fmt.Fprint(stdio.Stdout, longUsage)
		return mainer.Success

	case c.Version:
		fmt.Fprintf(stdio.Stdout, "%s %s %s\n", binName, c.BuildVersion, c.BuildDate)
		return mainer.Success
	}

	ctx := mainer.CancelOnSignal(context.Background(), os.Interrupt)
	if err := c.cmdFn(ctx, stdio, c.args[1:]); err != nil {
		// each command takes care of printing its errors, just return with an error code
		return mainer.Failure
	}
	return mainer.Success
}

// valid commands are those that take a context, a mainer.Stdio and a slice
// of strings as input, and return an error as output.
func buildCmds(v interface{}) *swiss.Map[string, cmdFunc] {
	vv := reflect.ValueOf(v)
	vt := vv.Type()
	cmds := swiss.NewMap[string, cmdFunc](uint32(vt.NumMethod()))

	for i := 0; i < vt.NumMethod(); i++ {
		m := vt.Method(i)
		mt := m.Type

		// must take 4 parameters (including receiver) and return 1
		if mt.NumIn() != 4 || mt.NumOut() != 1 {
			continue
		}

		if rt := mt.Out(0); rt.Kind() != reflect.Interface || rt.Name() != "error" {
			continue
		}
		if p0 := mt.In(0); p0.Kind() != reflect.Ptr || p0.Elem().Name() != "Cmd" {
			continue
		}
		if p1 := mt.In(1); p1.Kind() != reflect.Interface || p1.Name() != "Context" {
			continue
		}
		if p2 := mt.In(2); p2.Kind() != reflect.Struct || p2.Name() != "Stdio" {
			continue
		}
		if p3 := mt.In(3); p3.Kind() != reflect.Slice || p3.Elem().Name() != "string" {
			continue
		}
		cmds.Put(strings.ToLower(m.Name), vv.Method(i).Interface().(cmdFunc))
	}
	return cmds
}
