package decimal

import (
	"math/big"
)

// DefaultPrecision is the precision used by DefaultFactory.
const DefaultPrecision = 30

// Decimal is a fixed point base 10 number. The value is significand /
// 10^precision.
//
// A Decimal is never modified after construction; every operation returns a
// new value. The zero value is zero at precision 0. Decimals hold a pointer
// and must be compared with Cmp or Equal, not ==.
type Decimal struct {
	value     *big.Int
	precision int
}

var (
	// bigZero and bigOne are shared and must never be modified.
	bigZero = big.NewInt(0)
	bigOne  = big.NewInt(1)
	bigTen  = big.NewInt(10)

	pow10s = func() (ps [64]*big.Int) {
		p := big.NewInt(1)
		for i := range ps {
			ps[i] = new(big.Int).Set(p)
			p.Mul(p, bigTen)
		}

		return ps
	}()
)

// pow10 returns 10^n. The result may be shared and must not be modified.
func pow10(n int) *big.Int {
	if n < len(pow10s) {
		return pow10s[n]
	}

	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

func checkPrecision(precision int) {
	if precision < 0 {
		panic(InvalidArgument.New("negative precision: %d", precision))
	}
}

// New returns the integer n at the given precision. It panics if precision
// is negative.
func New(n *big.Int, precision int) Decimal {
	checkPrecision(precision)

	v := new(big.Int)
	if n != nil {
		v.Mul(n, pow10(precision))
	}

	return Decimal{value: v, precision: precision}
}

// NewFromSignificand returns significand / 10^precision. It panics if
// precision is negative.
func NewFromSignificand(significand *big.Int, precision int) Decimal {
	checkPrecision(precision)

	v := new(big.Int)
	if significand != nil {
		v.Set(significand)
	}

	return Decimal{value: v, precision: precision}
}

// NewFromInt64 returns n at the given precision.
func NewFromInt64(n int64, precision int) Decimal {
	return New(big.NewInt(n), precision)
}

// NewFromUint64 returns n at the given precision.
func NewFromUint64(n uint64, precision int) Decimal {
	return New(new(big.Int).SetUint64(n), precision)
}

// Integer is any native integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// NewFromInteger returns n at the given precision.
func NewFromInteger[T Integer](n T, precision int) Decimal {
	if n < 0 {
		return NewFromInt64(int64(n), precision)
	}

	return NewFromUint64(uint64(n), precision)
}

// Zero returns zero at the given precision.
func Zero(precision int) Decimal {
	return New(bigZero, precision)
}

// One returns one at the given precision.
func One(precision int) Decimal {
	return New(bigOne, precision)
}

// sig returns the significand without copying it.
func (d Decimal) sig() *big.Int {
	if d.value == nil {
		return bigZero
	}

	return d.value
}

// Precision returns the number of fractional digits.
func (d Decimal) Precision() int {
	return d.precision
}

// Significand returns a copy of the unscaled value.
func (d Decimal) Significand() *big.Int {
	return new(big.Int).Set(d.sig())
}

// Rebase returns d with the given precision. Increasing the precision is
// exact. Decreasing it truncates toward zero: the dropped digits are
// discarded, never rounded. It panics if precision is negative.
func (d Decimal) Rebase(precision int) Decimal {
	checkPrecision(precision)

	switch {
	case precision == d.precision:
		return d
	case precision > d.precision:
		v := new(big.Int).Mul(d.sig(), pow10(precision-d.precision))
		return Decimal{value: v, precision: precision}
	default:
		v := new(big.Int).Quo(d.sig(), pow10(d.precision-precision))
		return Decimal{value: v, precision: precision}
	}
}

// align rebases x and y to the larger of their precisions.
func align(x, y Decimal) (Decimal, Decimal) {
	p := x.precision
	if y.precision > p {
		p = y.precision
	}

	return x.Rebase(p), y.Rebase(p)
}

// IntegerPart returns the integer part of d, truncated toward zero.
func (d Decimal) IntegerPart() *big.Int {
	return new(big.Int).Quo(d.sig(), pow10(d.precision))
}

// FractionalPart returns the fractional digits of d as an integer. It has
// the sign of d.
func (d Decimal) FractionalPart() *big.Int {
	return new(big.Int).Rem(d.sig(), pow10(d.precision))
}

// IsInteger returns true if d has no fractional part.
func (d Decimal) IsInteger() bool {
	return d.FractionalPart().Sign() == 0
}

// IsZero returns true if d is zero.
func (d Decimal) IsZero() bool {
	return d.sig().Sign() == 0
}

// IsOne returns true if d is exactly one.
func (d Decimal) IsOne() bool {
	return d.sig().Cmp(pow10(d.precision)) == 0
}

// IsEven returns true if d is an even integer.
func (d Decimal) IsEven() bool {
	return d.IsInteger() && d.IntegerPart().Bit(0) == 0
}

// Sign returns -1, 0 or +1.
func (d Decimal) Sign() int {
	return d.sig().Sign()
}
