package dec128

// Add returns a + b, rounded per c when the exact sum needs more than 96
// bits of coefficient. ErrOverflow is returned if the integer part of the sum
// does not fit.
func (c Context) Add(a, b Decimal) (Decimal, error) {
	x, y, scale := alignScales(a, b)

	neg := a.neg
	if a.neg == b.neg {
		x = x.add(y)
	} else if x.cmp(y) >= 0 {
		x = x.sub(y)
	} else {
		x = y.sub(x)
		neg = b.neg
	}
	return roundToFit(x, scale, neg, false, c.Rounding)
}

// Sub returns a - b. See Add.
func (c Context) Sub(a, b Decimal) (Decimal, error) {
	b.neg = !b.neg
	return c.Add(a, b)
}

// Mul returns a * b. The product's scale is the sum of the operand scales,
// reduced by rounding when it exceeds MaxScale or the coefficient exceeds 96
// bits. Products too small to represent round to zero.
func (c Context) Mul(a, b Decimal) (Decimal, error) {
	w := mul96to192(a.coef, b.coef)
	return roundToFit(w, int(a.scale)+int(b.scale), a.neg != b.neg, false, c.Rounding)
}

// Quo returns a / b.
//
// An exact quotient is returned at the smallest scale that can hold it, but
// no smaller than a.Scale() - b.Scale(). Otherwise the quotient carries as
// many digits as fit, rounded per c, and trailing zeros are removed.
//
// ErrDivideByZero is returned if b is zero; ErrOverflow if the integer part
// of the quotient does not fit.
func (c Context) Quo(a, b Decimal) (Decimal, error) {
	if b.coef.IsZero() {
		return Decimal{}, ErrDivideByZero
	}

	neg := a.neg != b.neg
	d := b.coef.u128()
	q, r := a.coef.u128().QuoRem(d)

	scale := int(a.scale) - int(b.scale)
	for scale < 0 {
		p := min(-scale, 9)
		var ok bool
		if q, r, ok = quoExtend(q, r, d, p); !ok {
			return Decimal{}, ErrOverflow
		}
		scale += p
	}

	if r.IsZero() {
		return newQuotient(q, scale, neg), nil
	}

	for scale < MaxScale && !r.IsZero() {
		p := min(MaxScale-scale, 9)
		for ; p > 0; p-- {
			if nq, nr, ok := quoExtend(q, r, d, p); ok {
				q, r = nq, nr
				break
			}
		}
		if p == 0 {
			break
		}
		scale += p
	}

	if !r.IsZero() {
		half := r.Cmp(d.Sub(r))
		if c.Rounding.roundUp(neg, q.lo&1 == 1, half, true) {
			if up := q.Inc(); up.fitsU96() {
				q = up

			} else {
				// q is MaxU96; drop a digit instead.
				if scale == 0 {
					return Decimal{}, ErrOverflow
				}
				var digit u128
				q, digit = q.QuoRem(u128From64(10))
				if c.Rounding.roundUp(neg, q.lo&1 == 1, digitHalf(digit.lo, true), true) {
					q = q.Inc()
				}
				scale--
			}
		}
	}

	for scale > 0 {
		nq, digit := q.QuoRem(u128From64(10))
		if !digit.IsZero() {
			break
		}
		q = nq
		scale--
	}

	return newQuotient(q, scale, neg), nil
}

func newQuotient(q u128, scale int, neg bool) Decimal {
	coef := q.asU96()
	return Decimal{coef: coef, scale: uint8(scale), neg: neg && !coef.IsZero()}
}

// quoExtend appends p digits to the quotient q of a long division by d,
// where r is the running remainder. ok is false if the quotient would no
// longer fit in 96 bits.
func quoExtend(q, r, d u128, p int) (nq, nr u128, ok bool) {
	m := pow10U64[p]
	nq = q.Mul64(m)
	if !nq.fitsU96() {
		return q, r, false
	}
	dq, nr := r.Mul64(m).QuoRem(d)
	nq = nq.Add(dq)
	if !nq.fitsU96() {
		return q, r, false
	}
	return nq, nr, true
}

// Rem returns the remainder of a / b, truncating the quotient toward zero:
//
//	a - b*trunc(a/b)
//
// The result takes a's sign and the larger of the operand scales, and is
// always exact. If |a| < |b|, a is returned unchanged. ErrDivideByZero is
// returned if b is zero.
func (c Context) Rem(a, b Decimal) (Decimal, error) {
	if b.coef.IsZero() {
		return Decimal{}, ErrDivideByZero
	}

	x, y, scale := alignScales(a, b)
	if x.cmp(y) < 0 {
		if a.coef.IsZero() {
			a.neg = false
		}
		return a, nil
	}

	_, r := x.quoRem(y)
	coef := r.asU96()
	return Decimal{coef: coef, scale: uint8(scale), neg: a.neg && !coef.IsZero()}, nil
}

func (d Decimal) Add(n Decimal) (Decimal, error) { return defaultContext.Add(d, n) }
func (d Decimal) Sub(n Decimal) (Decimal, error) { return defaultContext.Sub(d, n) }
func (d Decimal) Mul(n Decimal) (Decimal, error) { return defaultContext.Mul(d, n) }
func (d Decimal) Quo(n Decimal) (Decimal, error) { return defaultContext.Quo(d, n) }
func (d Decimal) Rem(n Decimal) (Decimal, error) { return defaultContext.Rem(d, n) }

// Cmp compares d and n by value and returns:
//
//	-1 if d <  n
//	 0 if d == n
//	+1 if d >  n
//
// Scale does not matter: 1.0 and 1.00 compare equal, as do 0 and -0.
func (d Decimal) Cmp(n Decimal) int {
	ds, ns := d.Sign(), n.Sign()
	if ds != ns {
		if ds < ns {
			return -1
		}
		return 1
	} else if ds == 0 {
		return 0
	}

	x, y, _ := alignScales(d, n)
	c := x.cmp(y)
	if ds < 0 {
		c = -c
	}
	return c
}

// Cmp compares a and b. See Decimal.Cmp.
func Cmp(a, b Decimal) int { return a.Cmp(b) }

// Equal reports whether d and n have the same value, regardless of scale. Use
// == to compare representations.
func (d Decimal) Equal(n Decimal) bool { return d.Cmp(n) == 0 }

func (d Decimal) GreaterThan(n Decimal) bool      { return d.Cmp(n) > 0 }
func (d Decimal) GreaterOrEqualTo(n Decimal) bool { return d.Cmp(n) >= 0 }
func (d Decimal) LessThan(n Decimal) bool         { return d.Cmp(n) < 0 }
func (d Decimal) LessOrEqualTo(n Decimal) bool    { return d.Cmp(n) <= 0 }
