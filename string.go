package dec128

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"
)

// String formats d in plain decimal notation, keeping every digit of its
// scale: Decimal 1.50 prints as "1.50". Zero never prints a sign.
func (d Decimal) String() string {
	return string(d.appendText(make([]byte, 0, 32)))
}

func (d Decimal) appendText(b []byte) []byte {
	digits := d.coef.String()
	if d.neg && !d.coef.IsZero() {
		b = append(b, '-')
	}
	scale := int(d.scale)
	if scale == 0 {
		return append(b, digits...)
	}
	if pad := scale + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	split := len(digits) - scale
	b = append(b, digits[:split]...)
	b = append(b, '.')
	return append(b, digits[split:]...)
}

// Format implements fmt.Formatter. It supports the verbs 'v', 's', 'f' and
// 'q', the width and precision options, and the '+', '-' and '0' flags. With
// a precision, 'f' rounds half away from zero.
func (d Decimal) Format(s fmt.State, c rune) {
	var str string
	switch c {
	case 'v', 's':
		str = d.String()
	case 'f':
		if p, ok := s.Precision(); ok {
			str = d.fixed(p)
		} else {
			str = d.String()
		}
	case 'q':
		str = strconv.Quote(d.String())
	default:
		fmt.Fprintf(s, "%%!%c(dec128.Decimal=%s)", c, d.String())
		return
	}

	if s.Flag('+') && d.Sign() >= 0 && c != 'q' {
		str = "+" + str
	}
	if w, ok := s.Width(); ok && len(str) < w {
		pad := w - len(str)
		switch {
		case s.Flag('-'):
			str += strings.Repeat(" ", pad)
		case s.Flag('0') && c != 'q':
			sign := ""
			if str[0] == '-' || str[0] == '+' {
				sign, str = str[:1], str[1:]
			}
			str = sign + strings.Repeat("0", pad) + str
		default:
			str = strings.Repeat(" ", pad) + str
		}
	}
	io.WriteString(s, str)
}

// fixed formats d with exactly places digits after the decimal point.
func (d Decimal) fixed(places int) string {
	if places < int(d.scale) {
		d = d.Round(places)
	}
	str := d.String()
	if extra := places - int(d.scale); extra > 0 {
		if d.scale == 0 {
			str += "."
		}
		str += strings.Repeat("0", extra)
	}
	return str
}

// Parse parses a decimal string of the form
//
//	[+-]digits[.digits][(e|E)[+-]digits]
//
// Digits beyond those a Decimal can hold are rounded half to even. An error of
// the OverflowError class is returned if the value's integer part does not
// fit, and of the Error class if s is malformed.
func Parse(s string) (Decimal, error) {
	return HalfEvenContext.Parse(s)
}

// MustParse is like Parse but panics if s cannot be parsed.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Parse is like the package-level Parse, but rounds excess digits per c.
func (c Context) Parse(s string) (Decimal, error) {
	in := s

	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	exp := 0
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		var err error
		if exp, err = strconv.Atoi(s[i+1:]); err != nil {
			return Decimal{}, Error.New("invalid decimal exponent in %q", in)
		}
		s = s[:i]

		// Beyond this the result is zero or an overflow either way:
		if exp > 1<<20 {
			exp = 1 << 20
		} else if exp < -1<<20 {
			exp = -1 << 20
		}
	}

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if len(intPart)+len(fracPart) == 0 || !isDigits(intPart) || !isDigits(fracPart) {
		return Decimal{}, Error.New("invalid decimal %q", in)
	}

	digits := strings.TrimLeft(intPart+fracPart, "0")
	scale := len(fracPart) - exp

	if digits == "" {
		return Decimal{scale: uint8(min(max(scale, 0), MaxScale))}, nil
	}

	// Anything with more integer digits than MaxValue cannot fit:
	if len(digits)-scale > len("79228162514264337593543950335") {
		return Decimal{}, ErrOverflow
	}

	coef, _ := new(big.Int).SetString(digits, 10)
	if scale < 0 {
		coef.Mul(coef, pow10Big(-scale))
		scale = 0
		digits = coef.String()
	}

	var sticky bool
	if drop := len(digits) - maxWideDigits; drop > 0 {
		var r big.Int
		coef.QuoRem(coef, pow10Big(drop), &r)
		sticky = r.Sign() != 0
		scale -= drop
	}

	w, _ := u192FromBigInt(coef)
	return roundToFit(w, scale, neg, sticky, c.Rounding)
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
