package dec128

import (
	"math/big"
)

const (
	// MaxScale is the largest number of digits a Decimal may hold after the
	// decimal point.
	MaxScale = 28

	maxUint32 = 1<<32 - 1
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	wrapUint64Float = float64(maxUint64) + 1 // 1 << 64

	// flags layout used by Bits and MarshalBinary:
	signMask   = 0x80000000
	scaleMask  = 0x00FF0000
	scaleShift = 16

	// u192 holds any 57 digit number:
	maxWideDigits = 57
)

var (
	MaxU96 = U96{hi: maxUint32, mid: maxUint32, lo: maxUint32}

	// MaxValue is 79228162514264337593543950335, the largest Decimal.
	MaxValue = Decimal{coef: MaxU96}

	// MinValue is -79228162514264337593543950335, the smallest Decimal.
	MinValue = Decimal{coef: MaxU96, neg: true}

	Zero     = Decimal{}
	One      = Decimal{coef: U96{lo: 1}}
	MinusOne = Decimal{coef: U96{lo: 1}, neg: true}

	zeroU96 U96

	maxBigU96, _ = new(big.Int).SetString("79228162514264337593543950335", 10)
)

var pow10U32 = [...]uint32{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
}

var pow10U64 = [...]uint64{
	1,
	10,
	100,
	1000,
	10000,
	100000,
	1000000,
	10000000,
	100000000,
	1000000000,
	10000000000,
	100000000000,
	1000000000000,
	10000000000000,
	100000000000000,
	1000000000000000,
	10000000000000000,
	100000000000000000,
	1000000000000000000,
	10000000000000000000,
}

var pow10Float = [...]float64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
	1e20, 1e21, 1e22, 1e23, 1e24, 1e25, 1e26, 1e27, 1e28,
}

func pow10Big(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
