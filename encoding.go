package dec128

import (
	"database/sql/driver"
	"encoding/binary"
)

// Bits returns d as four 32-bit words: the low, middle and high words of the
// coefficient followed by a flags word holding the scale in bits 16 to 23 and
// the sign in bit 31.
func (d Decimal) Bits() [4]uint32 {
	flags := uint32(d.scale) << scaleShift
	if d.neg {
		flags |= signMask
	}
	return [4]uint32{d.coef.lo, d.coef.mid, d.coef.hi, flags}
}

// FromBits is the counterpart to Bits. An error of the Error class is
// returned if the flags word has bits set outside the sign and scale, or if
// the scale exceeds MaxScale.
func FromBits(bits [4]uint32) (Decimal, error) {
	flags := bits[3]
	scale := (flags & scaleMask) >> scaleShift
	if flags&^(signMask|scaleMask) != 0 || scale > MaxScale {
		return Decimal{}, Error.New("invalid decimal flags %#08x", flags)
	}
	return Decimal{
		coef:  U96{hi: bits[2], mid: bits[1], lo: bits[0]},
		scale: uint8(scale),
		neg:   flags&signMask != 0,
	}, nil
}

// MarshalBinary encodes d as the 16 little-endian bytes of Bits.
func (d Decimal) MarshalBinary() ([]byte, error) {
	bts := make([]byte, 16)
	for i, w := range d.Bits() {
		binary.LittleEndian.PutUint32(bts[i*4:], w)
	}
	return bts, nil
}

func (d *Decimal) UnmarshalBinary(bts []byte) (err error) {
	if len(bts) != 16 {
		return Error.New("invalid binary decimal length %d", len(bts))
	}
	var bits [4]uint32
	for i := range bits {
		bits[i] = binary.LittleEndian.Uint32(bts[i*4:])
	}
	v, err := FromBits(bits)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Decimal) MarshalText() ([]byte, error) {
	return d.appendText(nil), nil
}

func (d *Decimal) UnmarshalText(bts []byte) (err error) {
	v, err := Parse(string(bts))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// MarshalJSON encodes d as a JSON string, so that no digits are lost to
// float64 by JSON decoders in other languages.
func (d Decimal) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 34)
	b = append(b, '"')
	b = d.appendText(b)
	return append(b, '"'), nil
}

// UnmarshalJSON accepts either a JSON string or a JSON number. JSON null
// leaves d unchanged.
func (d *Decimal) UnmarshalJSON(bts []byte) (err error) {
	if string(bts) == "null" {
		return nil
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return Error.New("invalid JSON decimal %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return d.UnmarshalText(bts)
}

// Scan implements sql.Scanner. Strings and byte slices are parsed, integers
// are converted exactly, and floats are converted with NewFromFloat64.
func (d *Decimal) Scan(src interface{}) (err error) {
	var v Decimal
	switch src := src.(type) {
	case string:
		v, err = Parse(src)
	case []byte:
		v, err = Parse(string(src))
	case int64:
		v = NewFromInt64(src)
	case float64:
		v, err = NewFromFloat64(src)
	case nil:
		return Error.New("cannot scan NULL into Decimal")
	default:
		return Error.New("cannot scan %T into Decimal", src)
	}
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// Value implements driver.Valuer, sending d to the database as a string.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}
