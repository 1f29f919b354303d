package dec128

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// U96 is the unsigned 96-bit coefficient of a Decimal, stored as three 32-bit
// words. Like Decimal, it is a value type; all operations return new values.
type U96 struct {
	hi, mid, lo uint32
}

func U96FromRaw(hi, mid, lo uint32) U96 { return U96{hi: hi, mid: mid, lo: lo} }
func U96From64(v uint64) U96           { return U96{mid: uint32(v >> 32), lo: uint32(v)} }
func U96From32(v uint32) U96           { return U96{lo: v} }

// U96FromString creates a U96 from a decimal string. Overflow truncates to
// MaxU96 and sets accurate to 'false'.
func U96FromString(s string) (out U96, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, Error.New("u96 string %q invalid", s)
	}
	out, accurate = U96FromBigInt(b)
	return out, accurate, nil
}

// U96FromBigInt creates a U96 from a big.Int. Overflow truncates to MaxU96
// and sets accurate to 'false'. Negative numbers return zero.
func U96FromBigInt(v *big.Int) (out U96, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > 96 {
		return MaxU96, false
	}
	var buf [12]byte
	v.FillBytes(buf[:])
	out.hi = binary.BigEndian.Uint32(buf[0:])
	out.mid = binary.BigEndian.Uint32(buf[4:])
	out.lo = binary.BigEndian.Uint32(buf[8:])
	return out, true
}

// RandU96 generates an unsigned 96-bit random integer from an external source.
func RandU96(source RandSource) U96 {
	v := source.Uint64()
	return U96{hi: uint32(source.Uint64()), mid: uint32(v >> 32), lo: uint32(v)}
}

func (u U96) IsZero() bool { return u == zeroU96 }

// Raw returns access to the U96 as three uint32s, most significant first.
// See U96FromRaw() for the counterpart.
func (u U96) Raw() (hi, mid, lo uint32) { return u.hi, u.mid, u.lo }

func (u U96) words64() (hi, lo uint64) {
	return uint64(u.hi), uint64(u.mid)<<32 | uint64(u.lo)
}

func (u U96) u128() u128 {
	hi, lo := u.words64()
	return u128{hi: hi, lo: lo}
}

func (u U96) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.AsUint64(), 10)
	}

	// 2^96 < 10^29, so splitting at 10^19 leaves a quotient that fits a uint64.
	hi, lo := u.words64()
	q, r := bits.Div64(hi, lo, pow10U64[19])
	rs := strconv.FormatUint(r, 10)
	return strconv.FormatUint(q, 10) + strings.Repeat("0", 19-len(rs)) + rs
}

func (u U96) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U96) IntoBigInt(b *big.Int) {
	var buf [12]byte
	binary.BigEndian.PutUint32(buf[0:], u.hi)
	binary.BigEndian.PutUint32(buf[4:], u.mid)
	binary.BigEndian.PutUint32(buf[8:], u.lo)
	b.SetBytes(buf[:])
}

func (u U96) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U96) AsFloat64() float64 {
	hi, lo := u.words64()
	if hi == 0 {
		return float64(lo)
	}
	return (float64(hi) * wrapUint64Float) + float64(lo)
}

// AsUint64 truncates the U96 to fit in a uint64. See IsUint64() if you want
// to check before you convert.
func (u U96) AsUint64() uint64 {
	_, lo := u.words64()
	return lo
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U96) IsUint64() bool {
	return u.hi == 0
}

// Add returns u + n. If the sum does not fit in 96 bits, carry is true and v
// holds the lower 96 bits.
func (u U96) Add(n U96) (v U96, carry bool) {
	var c uint32
	v.lo, c = bits.Add32(u.lo, n.lo, 0)
	v.mid, c = bits.Add32(u.mid, n.mid, c)
	v.hi, c = bits.Add32(u.hi, n.hi, c)
	return v, c != 0
}

// Sub returns u - n. If n > u, borrow is true and v holds the wrapped
// difference.
func (u U96) Sub(n U96) (v U96, borrow bool) {
	var b uint32
	v.lo, b = bits.Sub32(u.lo, n.lo, 0)
	v.mid, b = bits.Sub32(u.mid, n.mid, b)
	v.hi, b = bits.Sub32(u.hi, n.hi, b)
	return v, b != 0
}

// MulFull returns the exact 192-bit product of u and n, split into its upper
// and lower 96 bits.
func (u U96) MulFull(n U96) (hi, lo U96) {
	w := mul96to192(u, n)
	lo = U96{hi: uint32(w.mid), mid: uint32(w.lo >> 32), lo: uint32(w.lo)}
	hi = U96{hi: uint32(w.hi >> 32), mid: uint32(w.hi), lo: uint32(w.mid >> 32)}
	return hi, lo
}

// Mul32 returns u * n. overflow is true if the product does not fit in 96
// bits.
func (u U96) Mul32(n uint32) (v U96, overflow bool) {
	m := uint64(n)
	t := uint64(u.lo) * m
	v.lo = uint32(t)
	t = uint64(u.mid)*m + t>>32
	v.mid = uint32(t)
	t = uint64(u.hi)*m + t>>32
	v.hi = uint32(t)
	return v, t>>32 != 0
}

// MulPow10 scales u up by 10^n. ok is false if the result does not fit in 96
// bits.
func (u U96) MulPow10(n uint) (v U96, ok bool) {
	v = u
	for n > 0 {
		p := n
		if p > 9 {
			p = 9
		}
		var overflow bool
		if v, overflow = v.Mul32(pow10U32[p]); overflow {
			return u, false
		}
		n -= p
	}
	return v, true
}

// DivPow10 scales u down by 10^n, treating u as a non-negative magnitude and
// rounding the discarded digits according to mode.
func (u U96) DivPow10(n uint, mode Rounding) U96 {
	if n == 0 || u.IsZero() {
		return u
	}
	return rescaleDown(u192From96(u), int(n), false, mode).asU96()
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u U96) QuoRem(by U96) (q, r U96) {
	if by.hi == 0 && by.mid == 0 {
		q32, r32 := u.QuoRem32(by.lo)
		return q32, U96{lo: r32}
	}
	qw, rw := u.u128().QuoRem(by.u128())
	return qw.asU96(), rw.asU96()
}

// QuoRem32 divides u by a 32-bit divisor. If by == 0, a division-by-zero
// run-time panic occurs.
func (u U96) QuoRem32(by uint32) (q U96, r uint32) {
	d := uint64(by)
	t := uint64(u.hi)
	q.hi = uint32(t / d)
	t = (t%d)<<32 | uint64(u.mid)
	q.mid = uint32(t / d)
	t = (t%d)<<32 | uint64(u.lo)
	q.lo = uint32(t / d)
	return q, uint32(t % d)
}

func (u U96) Cmp(n U96) int {
	if u.hi != n.hi {
		if u.hi > n.hi {
			return 1
		}
		return -1
	} else if u.mid != n.mid {
		if u.mid > n.mid {
			return 1
		}
		return -1
	} else if u.lo != n.lo {
		if u.lo > n.lo {
			return 1
		}
		return -1
	}
	return 0
}

func (u U96) Equal(n U96) bool       { return u == n }
func (u U96) GreaterThan(n U96) bool { return u.Cmp(n) > 0 }
func (u U96) LessThan(n U96) bool    { return u.Cmp(n) < 0 }
func (u U96) Lsh(n uint) U96         { return u.u128().Lsh(n).asU96() }
func (u U96) Rsh(n uint) U96         { return u.u128().Rsh(n).asU96() }
func (u U96) LeadingZeros() uint     { return u.u128().LeadingZeros() - 32 }
func (u U96) BitLen() int            { return 96 - int(u.LeadingZeros()) }

func (u U96) TrailingZeros() uint {
	if u.IsZero() {
		return 96
	}
	return u.u128().TrailingZeros()
}

// trailingDecimalZeros counts the zero digits at the end of u, up to limit.
func (u U96) trailingDecimalZeros(limit int) (n int) {
	for n < limit && !u.IsZero() {
		q, r := u.QuoRem32(10)
		if r != 0 {
			break
		}
		u = q
		n++
	}
	return n
}
