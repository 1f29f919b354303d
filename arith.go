package dec128

import "math/bits"

// mul96to192 returns the exact product of two coefficients. Split each
// operand into a 32-bit high word and a 64-bit low word; the four partial
// products then sum into 192 bits without overflow.
func mul96to192(u, v U96) (w u192) {
	uhi, ulo := u.words64()
	vhi, vlo := v.words64()

	h1, l1 := bits.Mul64(uhi, vlo)
	h2, l2 := bits.Mul64(ulo, vhi)

	var c1, c2 uint64
	w.mid, w.lo = bits.Mul64(ulo, vlo)
	w.mid, c1 = bits.Add64(w.mid, l1, 0)
	w.mid, c2 = bits.Add64(w.mid, l2, 0)
	w.hi = uhi*vhi + h1 + h2 + c1 + c2
	return w
}
