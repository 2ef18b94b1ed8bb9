package cell

import (
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Cell.
type Kind uint8

// List of cell kinds. Register is the zero value, so that the zero Cell is a
// register.
const (
	Register Kind = iota
	Coil
	Value

	maxKind
)

var kindNames = [...]string{
	Register: "register",
	Coil:     "coil",
	Value:    "value",
}

// short aliases accepted by ParseKind in addition to the kind names.
var kindAliases = map[string]Kind{
	"reg": Register,
	"val": Value,
}

func (k Kind) String() string {
	if k < maxKind {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the kind corresponding to its name, case-insensitive.
// The short forms "reg" and "val" are also accepted.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(s)
	for k, kn := range kindNames {
		if name == kn {
			return Kind(k), nil
		}
	}
	if k, ok := kindAliases[name]; ok {
		return k, nil
	}
	return 0, &SyntaxError{Input: s, Msg: "unknown kind"}
}
