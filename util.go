package dec128

type RandSource interface {
	Uint64() uint64
}

// RandDecimal generates a random Decimal from an external source. The
// coefficient's width, the scale and the sign are all random, so small and
// large magnitudes are equally likely to appear.
func RandDecimal(source RandSource) Decimal {
	v := source.Uint64()
	coef := RandU96(source).Rsh(uint(v % 97))
	return Decimal{
		coef:  coef,
		scale: uint8((v >> 8) % (MaxScale + 1)),
		neg:   (v>>16)&1 == 1 && !coef.IsZero(),
	}
}

// Max returns the larger of a and b. If they are equal, a is returned.
func Max(a, b Decimal) Decimal {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

// Min returns the smaller of a and b. If they are equal, a is returned.
func Min(a, b Decimal) Decimal {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}
