package dec128

import (
	"math/big"
)

// Decimal is a 128-bit fixed-point decimal number: a sign, a scale between 0
// and MaxScale, and a 96-bit unsigned coefficient. Its value is
// (-1)^sign * coefficient / 10^scale.
//
// Decimal is a value type. The zero value is 0.
//
// Decimals with the same value but different scales, such as 1.0 and 1.00,
// are different representations: they are Equal, but not ==. See Reduce for
// a canonical form.
type Decimal struct {
	coef  U96
	scale uint8
	neg   bool
}

// FromParts creates a Decimal from its components. ErrOverflow is returned if
// scale is outside [0, MaxScale].
func FromParts(neg bool, coef U96, scale int) (Decimal, error) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, ErrOverflow
	}
	return Decimal{coef: coef, scale: uint8(scale), neg: neg}, nil
}

// MustFromParts is like FromParts but panics if the parts are invalid.
func MustFromParts(neg bool, coef U96, scale int) Decimal {
	d, err := FromParts(neg, coef, scale)
	if err != nil {
		panic(err)
	}
	return d
}

// New returns value / 10^scale.
func New(value int64, scale int) (Decimal, error) {
	d := NewFromInt64(value)
	return FromParts(d.neg, d.coef, scale)
}

func NewFromInt64(v int64) Decimal {
	if v < 0 {
		// -MinInt64 overflows int64 but not uint64:
		return Decimal{coef: U96From64(uint64(-(v + 1)) + 1), neg: true}
	}
	return Decimal{coef: U96From64(uint64(v))}
}

func NewFromUint64(v uint64) Decimal {
	return Decimal{coef: U96From64(v)}
}

// NewFromBigInt returns coef / 10^scale. ErrOverflow is returned if |coef|
// needs more than 96 bits or scale is outside [0, MaxScale].
func NewFromBigInt(coef *big.Int, scale int) (Decimal, error) {
	u, accurate := U96FromBigInt(new(big.Int).Abs(coef))
	if !accurate {
		return Decimal{}, ErrOverflow
	}
	return FromParts(coef.Sign() < 0 && !u.IsZero(), u, scale)
}

// Coefficient returns the unsigned 96-bit integer part of d's representation.
func (d Decimal) Coefficient() U96 { return d.coef }

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int { return int(d.scale) }

func (d Decimal) IsZero() bool { return d.coef.IsZero() }

// IsNegative reports whether d is less than zero. A zero with its sign bit
// set is not negative.
func (d Decimal) IsNegative() bool { return d.neg && !d.coef.IsZero() }

// Sign returns -1, 0 or 1.
func (d Decimal) Sign() int {
	if d.coef.IsZero() {
		return 0
	} else if d.neg {
		return -1
	}
	return 1
}

// Parts returns the components of d. See FromParts for the counterpart.
func (d Decimal) Parts() (neg bool, coef U96, scale int) {
	return d.neg, d.coef, int(d.scale)
}

func (d Decimal) Neg() Decimal {
	d.neg = !d.neg && !d.coef.IsZero()
	return d
}

func (d Decimal) Abs() Decimal {
	d.neg = false
	return d
}

// Reduce removes trailing zeros from d's fractional digits, returning the
// representation of d with the smallest scale. Decimals with equal values
// have identical reduced representations, so Reduce can be used to build map
// keys.
func (d Decimal) Reduce() Decimal {
	if d.coef.IsZero() {
		return Decimal{}
	}
	n := d.coef.trailingDecimalZeros(int(d.scale))
	if n == 0 {
		return d
	}
	d.coef = d.coef.DivPow10(uint(n), ToZero)
	d.scale -= uint8(n)
	return d
}

// Int64 returns d truncated toward zero. ok is false if the integer part does
// not fit in an int64.
func (d Decimal) Int64() (v int64, ok bool) {
	u := d.integer()
	if !u.IsUint64() {
		return 0, false
	}
	m := u.AsUint64()
	if d.neg {
		if m > maxInt64+1 {
			return 0, false
		}
		return int64(-m), true // two's complement; covers MinInt64
	}
	if m > maxInt64 {
		return 0, false
	}
	return int64(m), true
}

// Uint64 returns d truncated toward zero. ok is false if d is less than or
// equal to -1, or if the integer part does not fit in a uint64.
func (d Decimal) Uint64() (v uint64, ok bool) {
	u := d.integer()
	if !u.IsUint64() || (d.neg && !u.IsZero()) {
		return 0, false
	}
	return u.AsUint64(), true
}

func (d Decimal) integer() U96 {
	return d.coef.DivPow10(uint(d.scale), ToZero)
}

// AsBigRat returns the exact value of d as a big.Rat.
func (d Decimal) AsBigRat() *big.Rat {
	num := d.coef.AsBigInt()
	if d.neg {
		num.Neg(num)
	}
	return new(big.Rat).SetFrac(num, pow10Big(int(d.scale)))
}
