package dec128

import "strings"

// Rounding selects how digits are discarded when a result has more precision
// than a Decimal can hold.
type Rounding uint8

const (
	// HalfAwayFromZero rounds to the nearest value; ties round away from
	// zero. This is the zero value and the rounding used by Decimal's
	// arithmetic methods.
	HalfAwayFromZero Rounding = iota

	// HalfEven rounds to the nearest value; ties round to the even
	// neighbour ("banker's rounding").
	HalfEven

	// ToZero truncates.
	ToZero

	// Floor rounds toward negative infinity.
	Floor

	// Ceiling rounds toward positive infinity.
	Ceiling
)

var roundingNames = [...]string{
	HalfAwayFromZero: "half-away",
	HalfEven:         "half-even",
	ToZero:           "to-zero",
	Floor:            "floor",
	Ceiling:          "ceiling",
}

func (r Rounding) String() string {
	if int(r) < len(roundingNames) {
		return roundingNames[r]
	}
	return "unknown"
}

// ParseRounding accepts the names returned by Rounding.String.
func ParseRounding(s string) (Rounding, error) {
	for i, name := range roundingNames {
		if strings.EqualFold(s, name) {
			return Rounding(i), nil
		}
	}
	return 0, Error.New("unknown rounding %q", s)
}

func (r Rounding) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Rounding) UnmarshalText(bts []byte) (err error) {
	v, err := ParseRounding(string(bts))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// roundUp reports whether a truncated magnitude should be incremented. half
// compares the discarded fraction with one half (-1, 0 or 1); inexact is
// false when nothing but zeros was discarded.
func (r Rounding) roundUp(neg, odd bool, half int, inexact bool) bool {
	if !inexact {
		return false
	}
	switch r {
	case HalfEven:
		return half > 0 || (half == 0 && odd)
	case ToZero:
		return false
	case Floor:
		return neg
	case Ceiling:
		return !neg
	default:
		return half >= 0
	}
}

// digitHalf compares a discarded fraction with one half, given its most
// significant digit and whether any digit after it was non-zero.
func digitHalf(digit uint64, sticky bool) int {
	switch {
	case digit > 5, digit == 5 && sticky:
		return 1
	case digit == 5:
		return 0
	}
	return -1
}

// Context holds the settings for arithmetic that may need to round. The zero
// value rounds half away from zero.
//
// A Context is a plain value and is safe to share between goroutines.
type Context struct {
	Rounding Rounding
}

var (
	defaultContext Context

	// HalfEvenContext rounds ties to even, with a sticky digit so that only
	// exact ties are affected.
	HalfEvenContext = Context{Rounding: HalfEven}
)
