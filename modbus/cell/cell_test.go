package cell

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	var zero Cell
	assert.Equal(t, FromRegister(0), zero)
	assert.Equal(t, FromRegister(0), New())
	assert.True(t, zero.IsRegister())
	assert.False(t, zero.IsCoil())
	assert.False(t, zero.IsValue())

	r, err := zero.Register()
	require.NoError(t, err)
	assert.Equal(t, uint16(0), r)
}

func TestConstruct(t *testing.T) {
	for _, b := range []bool{true, false} {
		t.Run(fmt.Sprint(b), func(t *testing.T) {
			c := FromCoil(b)
			assert.Equal(t, c, Of(b))
			assert.True(t, c.IsCoil())
			assert.False(t, c.IsRegister())
			assert.False(t, c.IsValue())
			assert.Equal(t, Coil, c.Kind())

			got, err := c.Coil()
			require.NoError(t, err)
			assert.Equal(t, b, got)
		})
	}

	for _, r := range []uint16{0, 1, 42, 300, 0xffff} {
		t.Run(fmt.Sprintf("register %d", r), func(t *testing.T) {
			c := FromRegister(r)
			assert.Equal(t, c, Of(r))
			assert.True(t, c.IsRegister())
			assert.False(t, c.IsCoil())
			assert.False(t, c.IsValue())

			got, err := c.Register()
			require.NoError(t, err)
			assert.Equal(t, r, got)

			_, err = c.Coil()
			assert.ErrorIs(t, err, ErrKindMismatch)
			_, err = c.Value()
			assert.ErrorIs(t, err, ErrKindMismatch)
		})
	}

	for _, v := range []uint8{0, 7, 0xff} {
		t.Run(fmt.Sprintf("value %d", v), func(t *testing.T) {
			c := FromValue(v)
			assert.Equal(t, c, Of(v))
			assert.True(t, c.IsValue())
			assert.False(t, c.IsCoil())
			assert.False(t, c.IsRegister())

			got, err := c.Value()
			require.NoError(t, err)
			assert.Equal(t, v, got)
		})
	}
}

func TestStrictMismatch(t *testing.T) {
	cells := []Cell{FromCoil(true), FromRegister(5), FromValue(5)}
	for _, c := range cells {
		t.Run(c.Literal(), func(t *testing.T) {
			for _, k := range []Kind{Coil, Register, Value} {
				var err error
				switch k {
				case Coil:
					_, err = c.Coil()
				case Register:
					_, err = c.Register()
				case Value:
					_, err = c.Value()
				}

				if k == c.Kind() {
					assert.NoError(t, err)
					continue
				}

				var kerr *KindMismatchError
				if assert.True(t, errors.As(err, &kerr)) {
					assert.Equal(t, k, kerr.Want)
					assert.Equal(t, c.Kind(), kerr.Have)
				}
				assert.ErrorIs(t, err, ErrKindMismatch)
				assert.NotErrorIs(t, err, ErrSyntax)
			}
		})
	}
}

func TestStrictThenCoerce(t *testing.T) {
	p := new(Cell)
	*p = FromRegister(5)

	_, err := p.Coil()
	require.ErrorIs(t, err, ErrKindMismatch)
	assert.True(t, p.IsRegister())
	assert.True(t, p.Equal(FromRegister(5)))

	assert.True(t, *p.CoilMut())
	assert.True(t, p.IsCoil())

	_, err = p.Register()
	require.ErrorIs(t, err, ErrKindMismatch)
	assert.True(t, p.IsCoil())
}

func TestKindMismatchMessage(t *testing.T) {
	_, err := FromRegister(1).Coil()
	assert.EqualError(t, err, "cell: kind mismatch: want coil, have register")
}

func TestMust(t *testing.T) {
	assert.True(t, FromCoil(true).MustCoil())
	assert.Equal(t, uint16(12), FromRegister(12).MustRegister())
	assert.Equal(t, uint8(12), FromValue(12).MustValue())

	assert.Panics(t, func() { FromValue(1).MustCoil() })
	assert.Panics(t, func() { FromCoil(true).MustRegister() })
	assert.Panics(t, func() { FromRegister(1).MustValue() })
}

func TestCoerceRoundTrip(t *testing.T) {
	c := FromRegister(0)

	p := c.CoilMut()
	assert.False(t, *p)
	assert.True(t, c.IsCoil())

	r := c.RegisterMut()
	assert.Equal(t, uint16(0), *r)
	assert.True(t, c.IsRegister())
}

func TestCoerce(t *testing.T) {
	cases := []struct {
		in   Cell
		to   Kind
		want Cell
	}{
		{FromCoil(false), Coil, FromCoil(false)},
		{FromCoil(false), Register, FromRegister(0)},
		{FromCoil(false), Value, FromValue(0)},
		{FromCoil(true), Register, FromRegister(1)},
		{FromCoil(true), Value, FromValue(1)},

		{FromRegister(0), Coil, FromCoil(false)},
		{FromRegister(5), Coil, FromCoil(true)},
		{FromRegister(256), Coil, FromCoil(true)},
		{FromRegister(300), Register, FromRegister(300)},
		{FromRegister(300), Value, FromValue(44)},
		{FromRegister(0xffff), Value, FromValue(0xff)},
		{FromRegister(256), Value, FromValue(0)},

		{FromValue(0), Coil, FromCoil(false)},
		{FromValue(9), Coil, FromCoil(true)},
		{FromValue(200), Register, FromRegister(200)},
		{FromValue(200), Value, FromValue(200)},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s to %s", c.in.Literal(), c.to), func(t *testing.T) {
			got := c.in
			got.As(c.to)
			assert.Equal(t, c.want, got)
			assert.Equal(t, c.to, got.Kind())
		})
	}
}

func TestCoerceNarrowing(t *testing.T) {
	c := FromRegister(300)
	v := c.ValueMut()
	assert.Equal(t, uint8(44), *v)
	assert.True(t, c.IsValue())

	got, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, uint8(44), got)
}

func TestCoerceWriteThrough(t *testing.T) {
	c := FromValue(3)
	*c.RegisterMut() = 1000
	assert.Equal(t, FromRegister(1000), c)

	*c.CoilMut() = false
	assert.Equal(t, FromCoil(false), c)

	*c.ValueMut() = 77
	assert.Equal(t, FromValue(77), c)

	// same kind, no conversion: pointer is stable
	p1, p2 := c.ValueMut(), c.ValueMut()
	assert.Same(t, p1, p2)
}

func TestCopyIsIndependent(t *testing.T) {
	a := FromRegister(10)
	b := a
	*b.CoilMut() = false

	assert.Equal(t, FromRegister(10), a)
	assert.Equal(t, FromCoil(false), b)
}

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b Cell
		want bool
	}{
		{Cell{}, FromRegister(0), true},
		{FromCoil(true), FromCoil(true), true},
		{FromCoil(true), FromCoil(false), false},
		{FromRegister(1), FromValue(1), false},
		{FromRegister(1), FromCoil(true), false},
		{FromValue(44), FromValue(44), true},
		{FromValue(44), FromValue(45), false},
	}
	for _, c := range cases {
		t.Run(c.a.Literal()+" "+c.b.Literal(), func(t *testing.T) {
			assert.Equal(t, c.want, c.a.Equal(c.b))
			assert.Equal(t, c.want, c.b.Equal(c.a))
		})
	}

	c := FromRegister(300)
	c.CoilMut()
	assert.True(t, c.Equal(FromCoil(true)))
}

func TestStalePointer(t *testing.T) {
	c := FromCoil(false)
	p := c.CoilMut()
	c.RegisterMut()
	*p = true

	assert.True(t, c.IsRegister())
	assert.Equal(t, "register:0", c.Literal())
	assert.True(t, c.Equal(FromRegister(0)))
	assert.True(t, FromRegister(0).Equal(c))

	r, err := c.Register()
	require.NoError(t, err)
	assert.Equal(t, uint16(0), r)

	// converting back to a coil uses the register, not the stale write
	assert.False(t, *c.CoilMut())
}

func TestAsInvalidKind(t *testing.T) {
	var c Cell
	assert.PanicsWithValue(t, "cell: invalid kind kind(9)", func() { c.As(Kind(9)) })
	assert.True(t, c.IsRegister())
}

func TestString(t *testing.T) {
	cases := []struct {
		in   Cell
		want string
	}{
		{FromCoil(true), "true"},
		{FromCoil(false), "false"},
		{FromRegister(42), "42"},
		{FromRegister(0xffff), "65535"},
		{FromValue(7), "7"},
		{Cell{}, "0"},
	}
	for _, c := range cases {
		t.Run(c.want, func(t *testing.T) {
			assert.Equal(t, c.want, c.in.String())
			assert.Equal(t, c.want, fmt.Sprint(c.in))
		})
	}
}

func TestGoString(t *testing.T) {
	assert.Equal(t, "cell.FromCoil(true)", fmt.Sprintf("%#v", FromCoil(true)))
	assert.Equal(t, "cell.FromRegister(42)", fmt.Sprintf("%#v", FromRegister(42)))
	assert.Equal(t, "cell.FromValue(7)", fmt.Sprintf("%#v", FromValue(7)))
}
