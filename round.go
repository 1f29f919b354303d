package dec128

// Round returns d rounded to the given number of decimal places, rounding
// half away from zero. If d already has no more than places digits after the
// decimal point it is returned unchanged. Negative places are treated as 0.
func (d Decimal) Round(places int) Decimal { return defaultContext.Round(d, places) }

// Truncate discards the digits of d after the given number of decimal
// places.
func (d Decimal) Truncate(places int) Decimal {
	return Context{Rounding: ToZero}.Round(d, places)
}

// Floor returns the greatest integer less than or equal to d.
func (d Decimal) Floor() Decimal { return Context{Rounding: Floor}.Round(d, 0) }

// Ceiling returns the least integer greater than or equal to d.
func (d Decimal) Ceiling() Decimal { return Context{Rounding: Ceiling}.Round(d, 0) }

// Round returns d rounded to the given number of decimal places using c's
// rounding mode. The result has a scale of exactly places unless d's scale
// was already smaller.
func (c Context) Round(d Decimal, places int) Decimal {
	if places < 0 {
		places = 0
	}
	if int(d.scale) <= places {
		return d
	}
	w := rescaleDown(u192From96(d.coef), int(d.scale)-places, d.neg, c.Rounding)
	coef := w.asU96()
	return Decimal{coef: coef, scale: uint8(places), neg: d.neg && !coef.IsZero()}
}
