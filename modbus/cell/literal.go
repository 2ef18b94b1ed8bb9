package cell

import (
	"errors"
	"strconv"
	"strings"
)

// Literal returns the textual form of c, "<kind>:<payload>", e.g.
// "coil:true" or "register:300". Parse(c.Literal()) returns c.
func (c Cell) Literal() string {
	return c.kind.String() + ":" + c.String()
}

// Parse parses a cell literal of the form "<kind>:<payload>". The kind is
// one of the names accepted by ParseKind. The payload of a coil is true,
// false, 0 or 1, that of a register or a value is a decimal or
// 0x-prefixed hexadecimal number that must fit in the cell without
// truncation. Leading and trailing white space is ignored.
func Parse(s string) (Cell, error) {
	lit := strings.TrimSpace(s)
	kname, payload, ok := strings.Cut(lit, ":")
	if !ok {
		return Cell{}, &SyntaxError{Input: s, Msg: "missing kind prefix"}
	}
	k, err := ParseKind(kname)
	if err != nil {
		return Cell{}, &SyntaxError{Input: s, Msg: "unknown kind " + strconv.Quote(kname)}
	}
	if payload == "" {
		return Cell{}, &SyntaxError{Input: s, Msg: "missing payload"}
	}

	switch k {
	case Coil:
		switch payload {
		case "true", "1":
			return FromCoil(true), nil
		case "false", "0":
			return FromCoil(false), nil
		}
		return Cell{}, &SyntaxError{Input: s, Msg: "invalid coil " + strconv.Quote(payload)}

	case Value:
		n, err := parseNumber(payload, 8)
		if err != nil {
			return Cell{}, &SyntaxError{Input: s, Msg: numberErrMsg(Value, payload, err)}
		}
		return FromValue(uint8(n)), nil

	default:
		n, err := parseNumber(payload, 16)
		if err != nil {
			return Cell{}, &SyntaxError{Input: s, Msg: numberErrMsg(Register, payload, err)}
		}
		return FromRegister(uint16(n)), nil
	}
}

// MustParse is like Parse but panics if s is not a valid literal.
func MustParse(s string) Cell {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseNumber(s string, bits int) (uint64, error) {
	base := 10
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s, base = s[2:], 16
	}
	// with an explicit base, ParseUint rejects signs and underscores.
	return strconv.ParseUint(s, base, bits)
}

func numberErrMsg(k Kind, payload string, err error) string {
	if errors.Is(err, strconv.ErrRange) {
		return k.String() + " out of range " + strconv.Quote(payload)
	}
	return "invalid " + k.String() + " " + strconv.Quote(payload)
}

// MarshalText implements encoding.TextMarshaler using the literal form of
// the cell.
func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.Literal()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, it accepts the same
// literals as Parse.
func (c *Cell) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
