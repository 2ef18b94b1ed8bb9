// Package cell implements the storage unit of the modbus data model: a value
// that is either a coil (a single bit), a register (16 bits) or a generic
// 8-bit value, and only one of those at any time.
//
// The zero value of a Cell is a register holding 0.
//
// A Cell can be read in two ways. The strict accessors (Coil, Register and
// Value) return the stored value only if the cell is of the requested kind,
// and a *KindMismatchError otherwise. The coercing accessors (CoilMut,
// RegisterMut and ValueMut) convert the cell to the requested kind if
// necessary and return a pointer to the stored value. The conversion changes
// the kind of the cell.
package cell

import "strconv"

// Cell is a modbus cell. It is a small value type, copying a Cell yields an
// independent cell. Use Equal to compare cells.
type Cell struct {
	kind Kind

	// only the field corresponding to kind is meaningful.
	coil bool
	reg  uint16
	val  uint8
}

// New returns the default cell, a register holding 0. It is the same as the
// zero value.
func New() Cell { return Cell{} }

// Of returns a cell whose kind is selected by the static type of v: a bool
// makes a coil, a uint16 a register and a uint8 a value.
func Of[T bool | uint16 | uint8](v T) Cell {
	switch v := any(v).(type) {
	case bool:
		return FromCoil(v)
	case uint8:
		return FromValue(v)
	case uint16:
		return FromRegister(v)
	}
	panic("unreachable")
}

// FromCoil returns a coil cell holding b.
func FromCoil(b bool) Cell { return Cell{kind: Coil, coil: b} }

// FromRegister returns a register cell holding r.
func FromRegister(r uint16) Cell { return Cell{kind: Register, reg: r} }

// FromValue returns a value cell holding v.
func FromValue(v uint8) Cell { return Cell{kind: Value, val: v} }

// Kind returns the active kind of the cell.
func (c Cell) Kind() Kind { return c.kind }

func (c Cell) IsCoil() bool     { return c.kind == Coil }
func (c Cell) IsRegister() bool { return c.kind == Register }
func (c Cell) IsValue() bool    { return c.kind == Value }

// Equal reports whether c and o have the same kind and the same stored
// value.
func (c Cell) Equal(o Cell) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case Coil:
		return c.coil == o.coil
	case Value:
		return c.val == o.val
	default:
		return c.reg == o.reg
	}
}

// Coil returns the coil stored in c. It fails with a *KindMismatchError if
// c is not a coil.
func (c Cell) Coil() (bool, error) {
	if c.kind != Coil {
		return false, mismatch(Coil, c.kind)
	}
	return c.coil, nil
}

// Register returns the register stored in c. It fails with a
// *KindMismatchError if c is not a register.
func (c Cell) Register() (uint16, error) {
	if c.kind != Register {
		return 0, mismatch(Register, c.kind)
	}
	return c.reg, nil
}

// Value returns the 8-bit value stored in c. It fails with a
// *KindMismatchError if c is not a value.
func (c Cell) Value() (uint8, error) {
	if c.kind != Value {
		return 0, mismatch(Value, c.kind)
	}
	return c.val, nil
}

// MustCoil is like Coil but panics on a kind mismatch.
func (c Cell) MustCoil() bool {
	b, err := c.Coil()
	if err != nil {
		panic(err)
	}
	return b
}

// MustRegister is like Register but panics on a kind mismatch.
func (c Cell) MustRegister() uint16 {
	r, err := c.Register()
	if err != nil {
		panic(err)
	}
	return r
}

// MustValue is like Value but panics on a kind mismatch.
func (c Cell) MustValue() uint8 {
	v, err := c.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// CoilMut converts c to a coil if it is not one already and returns a
// pointer to the stored coil. A register or value converts to false if it
// is 0, true otherwise. The pointer is only meaningful while c remains a
// coil, writing through it after the kind changed does not affect the value
// of c.
func (c *Cell) CoilMut() *bool {
	switch c.kind {
	case Register:
		*c = FromCoil(c.reg != 0)
	case Value:
		*c = FromCoil(c.val != 0)
	}
	return &c.coil
}

// RegisterMut converts c to a register if it is not one already and returns
// a pointer to the stored register, meaningful while c remains a register.
// A coil converts to 0 or 1, a value is zero-extended.
func (c *Cell) RegisterMut() *uint16 {
	switch c.kind {
	case Coil:
		*c = FromRegister(uint16(b2u8(c.coil)))
	case Value:
		*c = FromRegister(uint16(c.val))
	}
	return &c.reg
}

// ValueMut converts c to a value if it is not one already and returns a
// pointer to the stored value, meaningful while c remains a value. A coil
// converts to 0 or 1, a register is truncated to its low 8 bits.
func (c *Cell) ValueMut() *uint8 {
	switch c.kind {
	case Coil:
		*c = FromValue(b2u8(c.coil))
	case Register:
		*c = FromValue(uint8(c.reg))
	}
	return &c.val
}

// As converts c to kind k, as if the corresponding coercing accessor was
// called. It panics if k is not a valid kind.
func (c *Cell) As(k Kind) {
	switch k {
	case Coil:
		c.CoilMut()
	case Register:
		c.RegisterMut()
	case Value:
		c.ValueMut()
	default:
		panic("cell: invalid kind " + k.String())
	}
}

// String returns "true" or "false" for a coil and the decimal representation
// of the number for a register or a value.
func (c Cell) String() string {
	switch c.kind {
	case Coil:
		return strconv.FormatBool(c.coil)
	case Value:
		return strconv.FormatUint(uint64(c.val), 10)
	default:
		return strconv.FormatUint(uint64(c.reg), 10)
	}
}

// GoString returns the Go syntax to build c, used by the %#v verb.
func (c Cell) GoString() string {
	switch c.kind {
	case Coil:
		return "cell.FromCoil(" + c.String() + ")"
	case Value:
		return "cell.FromValue(" + c.String() + ")"
	default:
		return "cell.FromRegister(" + c.String() + ")"
	}
}

func b2u8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
