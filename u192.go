package dec128

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// u192 is the wide intermediate for Decimal arithmetic. It holds the exact
// product of two coefficients, or a coefficient scaled up by as much as
// 10^(MaxScale*2), without loss.
type u192 struct {
	hi, mid, lo uint64
}

func u192From96(u U96) u192 {
	hi, lo := u.words64()
	return u192{mid: hi, lo: lo}
}

// u192FromBigInt converts a non-negative big.Int of at most 192 bits.
func u192FromBigInt(v *big.Int) (out u192, accurate bool) {
	if v.Sign() < 0 || v.BitLen() > 192 {
		return out, false
	}
	var buf [24]byte
	v.FillBytes(buf[:])
	out.hi = binary.BigEndian.Uint64(buf[0:])
	out.mid = binary.BigEndian.Uint64(buf[8:])
	out.lo = binary.BigEndian.Uint64(buf[16:])
	return out, true
}

func (u u192) IntoBigInt(b *big.Int) {
	var buf [24]byte
	binary.BigEndian.PutUint64(buf[0:], u.hi)
	binary.BigEndian.PutUint64(buf[8:], u.mid)
	binary.BigEndian.PutUint64(buf[16:], u.lo)
	b.SetBytes(buf[:])
}

func (u u192) AsBigInt() *big.Int {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u u192) String() string { return u.AsBigInt().String() }

func (u u192) isZero() bool { return u.hi == 0 && u.mid == 0 && u.lo == 0 }

func (u u192) fitsU96() bool { return u.hi == 0 && u.mid <= maxUint32 }

// asU96 truncates u to its lower 96 bits. See fitsU96.
func (u u192) asU96() U96 {
	return U96{hi: uint32(u.mid), mid: uint32(u.lo >> 32), lo: uint32(u.lo)}
}

func (u u192) cmp(n u192) int {
	switch {
	case u.hi != n.hi:
		if u.hi > n.hi {
			return 1
		}
		return -1
	case u.mid != n.mid:
		if u.mid > n.mid {
			return 1
		}
		return -1
	case u.lo != n.lo:
		if u.lo > n.lo {
			return 1
		}
		return -1
	}
	return 0
}

func (u u192) add(n u192) (v u192) {
	var c uint64
	v.lo, c = bits.Add64(u.lo, n.lo, 0)
	v.mid, c = bits.Add64(u.mid, n.mid, c)
	v.hi, _ = bits.Add64(u.hi, n.hi, c)
	return v
}

func (u u192) sub(n u192) (v u192) {
	var b uint64
	v.lo, b = bits.Sub64(u.lo, n.lo, 0)
	v.mid, b = bits.Sub64(u.mid, n.mid, b)
	v.hi, _ = bits.Sub64(u.hi, n.hi, b)
	return v
}

func (u u192) inc() u192 { return u.add(u192{lo: 1}) }

// mul64 returns the lower 192 bits of u * n.
func (u u192) mul64(n uint64) (v u192) {
	var carry, c uint64
	carry, v.lo = bits.Mul64(u.lo, n)
	hi, lo := bits.Mul64(u.mid, n)
	v.mid, c = bits.Add64(lo, carry, 0)
	v.hi = u.hi*n + hi + c
	return v
}

// mulPow10 returns u * 10^n. Callers keep the result within 192 bits.
func (u u192) mulPow10(n uint) u192 {
	for n > 0 {
		p := n
		if p > 19 {
			p = 19
		}
		u = u.mul64(pow10U64[p])
		n -= p
	}
	return u
}

func (u u192) quoRem64(v uint64) (q u192, r uint64) {
	q.hi = u.hi / v
	r = u.hi % v
	q.mid, r = bits.Div64(r, u.mid, v)
	q.lo, r = bits.Div64(r, u.lo, v)
	return q, r
}

// quoRem returns the truncated quotient and remainder of u / by. If by == 0,
// a division-by-zero run-time panic occurs.
func (u u192) quoRem(by u192) (q, r u192) {
	if by.hi == 0 && by.mid == 0 {
		var r64 uint64
		q, r64 = u.quoRem64(by.lo)
		return q, u192{lo: r64}
	}
	if u.cmp(by) < 0 {
		return q, u
	}
	return quorem192bin(u, by, u.leadingZeros(), by.leadingZeros())
}

func (u u192) leadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.mid != 0 {
		return uint(bits.LeadingZeros64(u.mid)) + 64
	}
	return uint(bits.LeadingZeros64(u.lo)) + 128
}

// Shifts of 64 or more in Go produce 0, so the partial-word terms below drop
// out on their own at word boundaries.
func (u u192) lsh(n uint) (v u192) {
	switch {
	case n == 0:
		return u
	case n < 64:
		v.hi = u.hi<<n | u.mid>>(64-n)
		v.mid = u.mid<<n | u.lo>>(64-n)
		v.lo = u.lo << n
	case n < 128:
		n -= 64
		v.hi = u.mid<<n | u.lo>>(64-n)
		v.mid = u.lo << n
	case n < 192:
		v.hi = u.lo << (n - 128)
	}
	return v
}

func (u u192) rsh(n uint) (v u192) {
	switch {
	case n == 0:
		return u
	case n < 64:
		v.lo = u.lo>>n | u.mid<<(64-n)
		v.mid = u.mid>>n | u.hi<<(64-n)
		v.hi = u.hi >> n
	case n < 128:
		n -= 64
		v.lo = u.mid>>n | u.hi<<(64-n)
		v.mid = u.hi >> n
	case n < 192:
		v.lo = u.hi >> (n - 128)
	}
	return v
}

func quorem192bin(u, by u192, uLeading0, byLeading0 uint) (q, r u192) {
	shift := int(byLeading0 - uLeading0)
	by = by.lsh(uint(shift))

	for {
		q = q.lsh(1)

		if u.cmp(by) >= 0 {
			u = u.sub(by)
			q.lo |= 1
		}

		by = by.rsh(1)

		if shift <= 0 {
			break
		}
		shift--
	}

	r = u
	return q, r
}
