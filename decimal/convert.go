package decimal

import (
	"errors"
	"math"
	"math/big"
	"strconv"

	"github.com/holiman/uint256"
	shopspring "github.com/shopspring/decimal"
)

// NewFromFloat64 returns f with precision fractional digits.
//
// The integer part is converted exactly. The fractional part is then shifted
// left one decimal digit at a time and the digit in the units place is
// appended, precision times, so later digits are truncated rather than
// rounded. Negative values produce the same digits as their absolute value.
// Infinities and NaN return an Overflow error.
func NewFromFloat64(f float64, precision int) (Decimal, error) {
	checkPrecision(precision)

	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Decimal{}, Overflow.New("non-finite float: %v", f)
	}

	ip, frac := math.Modf(math.Abs(f))

	v, _ := new(big.Float).SetFloat64(ip).Int(nil)

	var digit float64
	for i := 0; i < precision; i++ {
		if frac == 0 {
			v.Mul(v, pow10(precision-i))
			break
		}

		digit, frac = math.Modf(frac * 10)

		v.Mul(v, bigTen)
		v.Add(v, big.NewInt(int64(digit)))
	}

	if f < 0 {
		v.Neg(v)
	}

	return Decimal{value: v, precision: precision}, nil
}

// NewFromFloat32 returns f with precision fractional digits. See
// NewFromFloat64.
func NewFromFloat32(f float32, precision int) (Decimal, error) {
	return NewFromFloat64(float64(f), precision)
}

// NewFromDecimal returns d with precision fractional digits. Digits beyond
// precision are truncated.
func NewFromDecimal(d shopspring.Decimal, precision int) Decimal {
	checkPrecision(precision)

	v := d.Coefficient()
	shift := int(d.Exponent()) + precision

	if shift >= 0 {
		v.Mul(v, pow10(shift))
	} else {
		v.Quo(v, pow10(-shift))
	}

	return Decimal{value: v, precision: precision}
}

// NewFromUint256 returns u at the given precision.
func NewFromUint256(u *uint256.Int, precision int) Decimal {
	return New(u.ToBig(), precision)
}

// BigInt returns the integer part of d.
func (d Decimal) BigInt() *big.Int {
	return d.IntegerPart()
}

func (d Decimal) intN(min, max int64) (int64, error) {
	i := d.IntegerPart()
	if !i.IsInt64() || i.Int64() < min || i.Int64() > max {
		return 0, Overflow.New("%s does not fit in [%d, %d]", d, min, max)
	}

	return i.Int64(), nil
}

func (d Decimal) uintN(max uint64) (uint64, error) {
	i := d.IntegerPart()
	if !i.IsUint64() || i.Uint64() > max {
		return 0, Overflow.New("%s does not fit in [0, %d]", d, max)
	}

	return i.Uint64(), nil
}

// Int64 returns the integer part of d or an Overflow error if it does not
// fit.
func (d Decimal) Int64() (int64, error) {
	return d.intN(math.MinInt64, math.MaxInt64)
}

// Int32 returns the integer part of d or an Overflow error if it does not
// fit.
func (d Decimal) Int32() (int32, error) {
	n, err := d.intN(math.MinInt32, math.MaxInt32)
	return int32(n), err
}

// Int16 returns the integer part of d or an Overflow error if it does not
// fit.
func (d Decimal) Int16() (int16, error) {
	n, err := d.intN(math.MinInt16, math.MaxInt16)
	return int16(n), err
}

// Int8 returns the integer part of d or an Overflow error if it does not
// fit.
func (d Decimal) Int8() (int8, error) {
	n, err := d.intN(math.MinInt8, math.MaxInt8)
	return int8(n), err
}

// Int returns the integer part of d or an Overflow error if it does not fit.
func (d Decimal) Int() (int, error) {
	n, err := d.intN(math.MinInt, math.MaxInt)
	return int(n), err
}

// Uint64 returns the integer part of d or an Overflow error if it does not
// fit.
func (d Decimal) Uint64() (uint64, error) {
	return d.uintN(math.MaxUint64)
}

// Uint32 returns the integer part of d or an Overflow error if it does not
// fit.
func (d Decimal) Uint32() (uint32, error) {
	n, err := d.uintN(math.MaxUint32)
	return uint32(n), err
}

// Uint16 returns the integer part of d or an Overflow error if it does not
// fit.
func (d Decimal) Uint16() (uint16, error) {
	n, err := d.uintN(math.MaxUint16)
	return uint16(n), err
}

// Uint8 returns the integer part of d or an Overflow error if it does not
// fit.
func (d Decimal) Uint8() (uint8, error) {
	n, err := d.uintN(math.MaxUint8)
	return uint8(n), err
}

// Uint256 returns the integer part of d or an Overflow error if it is
// negative or needs more than 256 bits.
func (d Decimal) Uint256() (*uint256.Int, error) {
	i := d.IntegerPart()
	if i.Sign() < 0 {
		return nil, Overflow.New("%s is negative", d)
	}

	u, overflow := uint256.FromBig(i)
	if overflow {
		return nil, Overflow.New("%s does not fit in 256 bits", d)
	}

	return u, nil
}

func (d Decimal) float(bitSize int) (float64, error) {
	f, err := strconv.ParseFloat(d.String(), bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, Overflow.New("%s does not fit in float%d", d, bitSize)
		}

		return 0, InvalidArgument.Wrap(err)
	}

	return f, nil
}

// Float64 returns the float64 nearest to d. It is computed from the decimal
// text of d so the result is correctly rounded. Values beyond the float64
// range return an Overflow error.
func (d Decimal) Float64() (float64, error) {
	return d.float(64)
}

// Float32 returns the float32 nearest to d. See Float64.
func (d Decimal) Float32() (float32, error) {
	f, err := d.float(32)
	return float32(f), err
}

// ToDecimal returns d as a shopspring.Decimal, converted through its
// decimal text.
func (d Decimal) ToDecimal() (shopspring.Decimal, error) {
	v, err := shopspring.NewFromString(d.String())
	if err != nil {
		return shopspring.Decimal{}, InvalidArgument.Wrap(err)
	}

	return v, nil
}
