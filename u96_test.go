package dec128

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var u96 = U96From64

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

// randU96 is like RandU96, but random widths are more likely, otherwise the
// universe will die before we test a number < maxUint32.
func randU96() U96 {
	return RandU96(globalRNG).Rsh(uint(globalRNG.Intn(97)))
}

func TestU96AsBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a U96
		b *big.Int
	}{
		{U96{0, 0, 2}, bigU64(2)},
		{U96{0, 1, 0}, bigs("4294967296")},
		{U96{1, 0, 0}, bigs("18446744073709551616")},
		{U96{0, 0xFFFFFFFF, 0xFFFFFFFF}, bigs("18446744073709551615")},
		{U96{0x1, 0xFFFFFFFF, 0xFFFFFFFF}, bigs("36893488147419103231")},
		{MaxU96, bigs("79228162514264337593543950335")},
		{U96{0x80000000, 0, 0}, bigs("0x 80000000 00000000 00000000")},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v := tc.a.AsBigInt()
			tt.MustAssert(tc.b.Cmp(v) == 0, "found: %s", v)
			tt.MustEqual(tc.b.String(), tc.a.String())
		})
	}
}

func TestU96FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		a   *big.Int
		b   U96
		acc bool
	}{
		{bigU64(2), u96(2), true},
		{bigs("79228162514264337593543950335"), MaxU96, true},
		{bigs("79228162514264337593543950336"), MaxU96, false},
		{bigs("-1"), U96{}, false},
		{bigs("0"), U96{}, true},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.a), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, acc := U96FromBigInt(tc.a)
			tt.MustEqual(tc.acc, acc)
			tt.MustEqual(tc.b, v)
		})
	}
}

func TestU96FromString(t *testing.T) {
	tt := assert.WrapTB(t)

	u, acc, err := U96FromString("79228162514264337593543950335")
	tt.MustOK(err)
	tt.MustAssert(acc)
	tt.MustEqual(MaxU96, u)

	u, acc, err = U96FromString("79228162514264337593543950336")
	tt.MustOK(err)
	tt.MustAssert(!acc)
	tt.MustEqual(MaxU96, u)

	_, _, err = U96FromString("1.5")
	tt.MustAssert(Error.Has(err))
}

func TestU96StringRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 10000; i++ {
		u := randU96()
		tt.MustEqual(u.AsBigInt().String(), u.String())
		tt.MustEqual(u.AsBigInt().String(), fmt.Sprintf("%d", u))

		back, acc, err := U96FromString(u.String())
		tt.MustOK(err)
		tt.MustAssert(acc)
		tt.MustEqual(u, back)
	}
}

func TestU96Add(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U96
		carry   bool
	}{
		{u96(1), u96(2), u96(3), false},
		{u96(maxUint32), u96(1), U96{0, 1, 0}, false},   // lo carries to mid
		{u96(maxUint64), u96(1), U96{1, 0, 0}, false},   // mid carries to hi
		{MaxU96, u96(1), u96(0), true},                  // Overflow wraps
		{MaxU96, MaxU96, U96{maxUint32, maxUint32, maxUint32 - 1}, true},
	} {
		t.Run(fmt.Sprintf("%s+%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, carry := tc.a.Add(tc.b)
			tt.MustEqual(tc.c, v)
			tt.MustEqual(tc.carry, carry)
		})
	}
}

func TestU96Sub(t *testing.T) {
	for _, tc := range []struct {
		a, b, c U96
		borrow  bool
	}{
		{u96(3), u96(2), u96(1), false},
		{U96{0, 1, 0}, u96(1), u96(maxUint32), false},
		{U96{1, 0, 0}, u96(1), u96(maxUint64), false},
		{u96(0), u96(1), MaxU96, true},
	} {
		t.Run(fmt.Sprintf("%s-%s=%s", tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, borrow := tc.a.Sub(tc.b)
			tt.MustEqual(tc.c, v)
			tt.MustEqual(tc.borrow, borrow)
		})
	}
}

func TestU96MulFullRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 10000; i++ {
		u, v := randU96(), randU96()
		hi, lo := u.MulFull(v)

		exp := new(big.Int).Mul(u.AsBigInt(), v.AsBigInt())
		found := hi.AsBigInt()
		found.Lsh(found, 96).Or(found, lo.AsBigInt())
		tt.MustEqual(exp.String(), found.String(), "%s * %s", u, v)
	}
}

func TestU96Mul32(t *testing.T) {
	tt := assert.WrapTB(t)

	v, overflow := u96(maxUint64).Mul32(10)
	tt.MustAssert(!overflow)
	tt.MustEqual("184467440737095516150", v.String())

	_, overflow = MaxU96.Mul32(2)
	tt.MustAssert(overflow)

	v, overflow = MaxU96.Mul32(1)
	tt.MustAssert(!overflow)
	tt.MustEqual(MaxU96, v)
}

func TestU96MulPow10(t *testing.T) {
	for idx, tc := range []struct {
		u  U96
		n  uint
		r  string
		ok bool
	}{
		{u96(1), 0, "1", true},
		{u96(1), 28, "10000000000000000000000000000", true},
		{u96(7), 28, "70000000000000000000000000000", true},
		{u96(8), 28, "", false},
		{u96(1), 29, "", false},
		{u96(0), 60, "0", true},
	} {
		t.Run(fmt.Sprintf("%d/%s*10^%d", idx, tc.u, tc.n), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, ok := tc.u.MulPow10(tc.n)
			tt.MustEqual(tc.ok, ok)
			if ok {
				tt.MustEqual(tc.r, v.String())
			} else {
				tt.MustEqual(tc.u, v)
			}
		})
	}
}

func TestU96DivPow10(t *testing.T) {
	for idx, tc := range []struct {
		u    U96
		n    uint
		mode Rounding
		r    string
	}{
		{u96(15), 1, HalfAwayFromZero, "2"},
		{u96(25), 1, HalfAwayFromZero, "3"},
		{u96(25), 1, HalfEven, "2"},
		{u96(35), 1, HalfEven, "4"},
		{u96(251), 2, HalfEven, "3"},
		{u96(249), 2, HalfAwayFromZero, "2"},
		{u96(19), 1, ToZero, "1"},
		{u96(11), 1, Ceiling, "2"},
		{u96(19), 1, Floor, "1"},
		{MaxU96, 28, HalfAwayFromZero, "8"},
		{MaxU96, 29, HalfAwayFromZero, "1"},
		{MaxU96, 30, HalfAwayFromZero, "0"},
		{MaxU96, 0, HalfAwayFromZero, "79228162514264337593543950335"},
		{u96(5), 60, Ceiling, "1"},
	} {
		t.Run(fmt.Sprintf("%d/%s/10^%d,%s", idx, tc.u, tc.n, tc.mode), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.r, tc.u.DivPow10(tc.n, tc.mode).String())
		})
	}
}

func TestU96QuoRemRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 10000; i++ {
		u, by := randU96(), randU96()
		if by.IsZero() {
			continue
		}
		q, r := u.QuoRem(by)

		bq, br := new(big.Int).QuoRem(u.AsBigInt(), by.AsBigInt(), new(big.Int))
		tt.MustEqual(bq.String(), q.String(), "%s / %s", u, by)
		tt.MustEqual(br.String(), r.String(), "%s %% %s", u, by)
	}
}

func TestU96QuoRem32(t *testing.T) {
	tt := assert.WrapTB(t)
	q, r := MaxU96.QuoRem32(10)
	tt.MustEqual("7922816251426433759354395033", q.String())
	tt.MustEqual(uint32(5), r)

	q, r = MaxU96.QuoRem32(maxUint32)
	tt.MustEqual("18446744078004518913", q.String())
	tt.MustEqual(uint32(0), r)
}

func TestU96Cmp(t *testing.T) {
	for _, tc := range []struct {
		a, b U96
		c    int
	}{
		{u96(1), u96(1), 0},
		{u96(1), u96(2), -1},
		{U96{1, 0, 0}, U96{0, maxUint32, maxUint32}, 1},
		{U96{0, 1, 0}, U96{0, 0, maxUint32}, 1},
		{MaxU96, MaxU96, 0},
	} {
		t.Run(fmt.Sprintf("%s<=>%s", tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.c, tc.a.Cmp(tc.b))
			tt.MustEqual(-tc.c, tc.b.Cmp(tc.a))
			tt.MustEqual(tc.c == 0, tc.a.Equal(tc.b))
			tt.MustEqual(tc.c > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.c < 0, tc.a.LessThan(tc.b))
		})
	}
}

func TestU96Shifts(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 5000; i++ {
		u := randU96()
		n := uint(globalRNG.Intn(100))

		exp := u.AsBigInt()
		exp.Lsh(exp, n).And(exp, maxBigU96)
		tt.MustEqual(exp.String(), u.Lsh(n).String(), "%s << %d", u, n)

		exp = u.AsBigInt()
		exp.Rsh(exp, n)
		tt.MustEqual(exp.String(), u.Rsh(n).String(), "%s >> %d", u, n)
	}
}

func TestU96Bits(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(uint(96), U96{}.LeadingZeros())
	tt.MustEqual(uint(96), U96{}.TrailingZeros())
	tt.MustEqual(0, U96{}.BitLen())
	tt.MustEqual(uint(0), MaxU96.LeadingZeros())
	tt.MustEqual(96, MaxU96.BitLen())
	tt.MustEqual(uint(95), u96(1).LeadingZeros())
	tt.MustEqual(uint(64), U96{1, 0, 0}.TrailingZeros())
	tt.MustEqual(uint(32), U96{0, 1, 0}.TrailingZeros())
	tt.MustEqual(65, U96{1, 0, 0}.BitLen())
}

func TestU96TrailingDecimalZeros(t *testing.T) {
	for _, tc := range []struct {
		u     U96
		limit int
		n     int
	}{
		{u96(1), 28, 0},
		{u96(1000), 28, 3},
		{u96(1000), 2, 2},
		{u96(0), 28, 0},
		{u96s("10000000000000000000000000000"), 28, 28},
	} {
		t.Run(fmt.Sprintf("%s,%d", tc.u, tc.limit), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.n, tc.u.trailingDecimalZeros(tc.limit))
		})
	}
}

func TestU96AsFloat64Random(t *testing.T) {
	tt := assert.WrapTB(t)
	for i := 0; i < 10000; i++ {
		u := randU96()
		exp, _ := new(big.Float).SetInt(u.AsBigInt()).Float64()
		found := u.AsFloat64()
		if exp == 0 {
			tt.MustEqual(0.0, found)
			continue
		}
		tt.MustFloatNear(1e-15, 1, found/exp, "%s", u)
	}
}

func TestU96Uint64(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(u96(maxUint64).IsUint64())
	tt.MustEqual(uint64(maxUint64), u96(maxUint64).AsUint64())
	tt.MustAssert(!U96{1, 0, 0}.IsUint64())
	tt.MustEqual(uint64(1), U96{1, 0, 1}.AsUint64())

	hi, mid, lo := U96FromRaw(1, 2, 3).Raw()
	tt.MustEqual([]uint32{1, 2, 3}, []uint32{hi, mid, lo})
	tt.MustEqual(u96(7), U96From32(7))
}
