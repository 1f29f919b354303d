package dec128

// alignScales brings both coefficients to the larger of the two scales. The
// result is exact: a coefficient times 10^MaxScale always fits a u192.
func alignScales(a, b Decimal) (x, y u192, scale int) {
	x, y = u192From96(a.coef), u192From96(b.coef)
	switch {
	case a.scale < b.scale:
		x = x.mulPow10(uint(b.scale - a.scale))
		scale = int(b.scale)
	case a.scale > b.scale:
		y = y.mulPow10(uint(a.scale - b.scale))
		scale = int(a.scale)
	default:
		scale = int(a.scale)
	}
	return x, y, scale
}

// roundToFit turns an exact wide result at the given scale into a Decimal,
// discarding the fewest digits that bring the scale to MaxScale or below and
// the coefficient within 96 bits. sticky reports non-zero digits the caller
// has already discarded from below w.
//
// If the integer part alone does not fit, ErrOverflow is returned. A result
// that rounds to zero is positive.
func roundToFit(w u192, scale int, neg, sticky bool, mode Rounding) (Decimal, error) {
	minK := scale - MaxScale

	var digit uint64
	for k := 0; ; k++ {
		if k >= minK {
			q := w
			if k > 0 && mode.roundUp(neg, q.lo&1 == 1, digitHalf(digit, sticky), digit != 0 || sticky) {
				q = q.inc()
			}
			if q.fitsU96() {
				coef := q.asU96()
				return Decimal{coef: coef, scale: uint8(scale - k), neg: neg && !coef.IsZero()}, nil
			}
		}
		if k >= scale {
			return Decimal{}, ErrOverflow
		}

		sticky = sticky || digit != 0
		if w.isZero() && k+1 < minK {
			digit = 0
			k = minK - 1
			continue
		}
		w, digit = w.quoRem64(10)
	}
}

// rescaleDown divides w by 10^k, rounding the discarded digits per mode.
func rescaleDown(w u192, k int, neg bool, mode Rounding) u192 {
	if k <= 0 {
		return w
	}

	var digit uint64
	var sticky bool
	for i := 0; i < k; i++ {
		sticky = sticky || digit != 0
		if w.isZero() {
			digit = 0
			break
		}
		w, digit = w.quoRem64(10)
	}

	if mode.roundUp(neg, w.lo&1 == 1, digitHalf(digit, sticky), digit != 0 || sticky) {
		w = w.inc()
	}
	return w
}
