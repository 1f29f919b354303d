package dec128

import (
	"math"
	"strconv"
)

// Float64 returns the nearest float64 to d. The conversion divides the
// coefficient by a power of ten in float64 arithmetic, so it may be off by
// one unit in the last place.
func (d Decimal) Float64() float64 {
	f := d.coef.AsFloat64() / pow10Float[d.scale]
	if d.neg {
		f = -f
	}
	return f
}

// NewFromFloat64 converts f to a Decimal, keeping at most 15 significant
// digits, which is as many as a float64 reliably holds. Trailing zeros are
// removed, so 0.5 becomes 0.5 rather than 0.500000000000000. Magnitudes below
// 1e-28 become zero.
//
// An error of the OverflowError class is returned if f is too large, and of
// the Error class if f is NaN or infinite.
func NewFromFloat64(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, Error.New("cannot convert %v to Decimal", f)
	}
	d, err := HalfEvenContext.Parse(strconv.FormatFloat(f, 'e', 14, 64))
	if err != nil {
		return Decimal{}, err
	}
	return d.Reduce(), nil
}
