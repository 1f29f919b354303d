package dec128

import (
	"math/bits"
)

// u128 carries coefficient arithmetic that needs headroom above 96 bits, such
// as the division extension loop in Quo.
type u128 struct {
	hi, lo uint64
}

func u128From64(v uint64) u128 { return u128{lo: v} }

func (u u128) IsZero() bool { return u.hi == 0 && u.lo == 0 }

// fitsU96 reports whether u can be represented as a U96.
func (u u128) fitsU96() bool { return u.hi <= maxUint32 }

// asU96 truncates u to its lower 96 bits. See fitsU96.
func (u u128) asU96() U96 {
	return U96{hi: uint32(u.hi), mid: uint32(u.lo >> 32), lo: uint32(u.lo)}
}

// Add and Sub wrap on overflow.
func (u u128) Add(n u128) (v u128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

func (u u128) Sub(n u128) (v u128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

func (u u128) Inc() u128 { return u.Add(u128{lo: 1}) }
func (u u128) Dec() u128 { return u.Sub(u128{lo: 1}) }

func (u u128) Cmp(n u128) int {
	if u.hi != n.hi {
		if u.hi > n.hi {
			return 1
		}
		return -1
	}
	if u.lo != n.lo {
		if u.lo > n.lo {
			return 1
		}
		return -1
	}
	return 0
}

// Go defines shifts of 64 or more as zero, which covers n == 0 and n >= 128.
func (u u128) Lsh(n uint) u128 {
	if n >= 64 {
		return u128{hi: u.lo << (n - 64)}
	}
	return u128{hi: u.hi<<n | u.lo>>(64-n), lo: u.lo << n}
}

func (u u128) Rsh(n uint) u128 {
	if n >= 64 {
		return u128{lo: u.hi >> (n - 64)}
	}
	return u128{hi: u.hi >> n, lo: u.lo>>n | u.hi<<(64-n)}
}

// Mul returns the lower 128 bits of u * n.
func (u u128) Mul(n u128) (v u128) {
	v.hi, v.lo = bits.Mul64(u.lo, n.lo)
	v.hi += u.hi*n.lo + u.lo*n.hi
	return v
}

// Mul64 returns u * n. The caller guarantees the product fits in 128 bits.
func (u u128) Mul64(n uint64) (v u128) {
	var carry uint64
	carry, v.lo = bits.Mul64(u.lo, n)
	v.hi = u.hi*n + carry
	return v
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
func (u u128) QuoRem(by u128) (q, r u128) {
	if by.IsZero() {
		panic("dec128: division by zero")
	}
	if u.hi == 0 && by.hi == 0 {
		return u128{lo: u.lo / by.lo}, u128{lo: u.lo % by.lo}
	}

	switch u.Cmp(by) {
	case -1:
		return u128{}, u
	case 0:
		return u128{lo: 1}, u128{}
	}

	// Short quotients are cheaper bit by bit:
	if by.hi != 0 && by.LeadingZeros()-u.LeadingZeros() <= 16 {
		return quorem128bin(u, by)
	}
	return quorem128by128(u, by)
}

func (u u128) LeadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	}
	return 64 + uint(bits.LeadingZeros64(u.lo))
}

func (u u128) TrailingZeros() uint {
	if u.lo != 0 {
		return uint(bits.TrailingZeros64(u.lo))
	}
	return 64 + uint(bits.TrailingZeros64(u.hi))
}

// quorem128by128 follows Hacker's Delight 9-5: the quotient is estimated
// from the top 64 bits of the normalised divisor and is then off by at most
// one.
func quorem128by128(m, v u128) (q, r u128) {
	if v.hi == 0 {
		var rhi uint64
		q.hi, rhi = bits.Div64(0, m.hi, v.lo)
		q.lo, r.lo = bits.Div64(rhi, m.lo, v.lo)
		return q, r
	}

	s := uint(bits.LeadingZeros64(v.hi))
	vn, un := v.Lsh(s), m.Rsh(1)
	est, _ := bits.Div64(un.hi, un.lo, vn.hi)

	q = u128From64(est).Rsh(63 - s)
	if !q.IsZero() {
		q = q.Dec()
	}
	r = m.Sub(q.Mul(v))
	if r.Cmp(v) >= 0 {
		q, r = q.Inc(), r.Sub(v)
	}
	return q, r
}

// quorem128bin is shift-and-subtract long division. u must be at least by.
func quorem128bin(u, by u128) (q, r u128) {
	shift := by.LeadingZeros() - u.LeadingZeros()
	by = by.Lsh(shift)
	for i := int(shift); i >= 0; i-- {
		q = q.Lsh(1)
		if u.Cmp(by) >= 0 {
			u = u.Sub(by)
			q.lo |= 1
		}
		by = by.Rsh(1)
	}
	return q, u
}
