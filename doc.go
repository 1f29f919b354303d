/*
Package dec128 provides Decimal, a 128-bit fixed-point decimal type with a
96-bit coefficient and a base-10 scale between 0 and 28.

Decimal is a value type; all operations return new values. Arithmetic never
panics and never silently wraps: results that cannot be represented return an
error of the OverflowError class, and division by zero returns an error of the
DivideByZeroError class.

Simple example:

	a := dec128.MustParse("1.1")
	b := dec128.MustParse("2.20")
	c, err := a.Add(b)
	if err != nil {
		return err
	}
	fmt.Println(c)
	// Output: 3.30

Results that need more digits than a Decimal can hold are rounded. Decimal's
methods round half away from zero; a Context selects a different Rounding:

	c, err := dec128.HalfEvenContext.Quo(a, b)

Decimals can be created from a variety of sources:

	FromParts(neg bool, coef U96, scale int) (Decimal, error)
	New(value int64, scale int) (Decimal, error)
	NewFromInt64(v int64) Decimal
	NewFromUint64(v uint64) Decimal
	NewFromBigInt(coef *big.Int, scale int) (Decimal, error)
	NewFromFloat64(f float64) (Decimal, error)
	FromBits(bits [4]uint32) (Decimal, error)
	Parse(s string) (Decimal, error)

Decimal supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler
	- encoding.BinaryMarshaler
	- encoding.BinaryUnmarshaler
	- sql.Scanner
	- driver.Valuer

*/
package dec128
