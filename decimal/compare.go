package decimal

import (
	"math/big"

	"github.com/holiman/uint256"
	shopspring "github.com/shopspring/decimal"
)

// Cmp compares d and y after rebasing both to the larger precision and
// returns:
//
//	-1 if d <  y
//	 0 if d == y
//	+1 if d >  y
func (d Decimal) Cmp(y Decimal) int {
	x, y := align(d, y)

	return x.sig().Cmp(y.sig())
}

// Equal returns true if d and y represent the same number.
func (d Decimal) Equal(y Decimal) bool {
	return d.Cmp(y) == 0
}

// LessThan returns true if d < y.
func (d Decimal) LessThan(y Decimal) bool {
	return d.Cmp(y) < 0
}

// GreaterThan returns true if d > y.
func (d Decimal) GreaterThan(y Decimal) bool {
	return d.Cmp(y) > 0
}

// CmpInt64 compares d with n promoted to d's precision.
func (d Decimal) CmpInt64(n int64) int {
	return d.Cmp(NewFromInt64(n, d.precision))
}

// CmpUint64 compares d with n promoted to d's precision.
func (d Decimal) CmpUint64(n uint64) int {
	return d.Cmp(NewFromUint64(n, d.precision))
}

// CmpBig compares d with n promoted to d's precision.
func (d Decimal) CmpBig(n *big.Int) int {
	return d.Cmp(New(n, d.precision))
}

// EqualInt64 returns true if d equals n.
func (d Decimal) EqualInt64(n int64) bool {
	return d.CmpInt64(n) == 0
}

// EqualUint64 returns true if d equals n.
func (d Decimal) EqualUint64(n uint64) bool {
	return d.CmpUint64(n) == 0
}

// EqualBig returns true if d equals n.
func (d Decimal) EqualBig(n *big.Int) bool {
	return d.CmpBig(n) == 0
}

// promote converts v to a Decimal at the given precision. Floats are
// converted with NewFromFloat64 and so are truncated to that precision.
func promote(v interface{}, precision int) (Decimal, error) {
	switch v := v.(type) {
	case Decimal:
		return v, nil
	case *Decimal:
		if v != nil {
			return *v, nil
		}
	case *big.Int:
		if v != nil {
			return New(v, precision), nil
		}
	case int:
		return NewFromInteger(v, precision), nil
	case int8:
		return NewFromInteger(v, precision), nil
	case int16:
		return NewFromInteger(v, precision), nil
	case int32:
		return NewFromInteger(v, precision), nil
	case int64:
		return NewFromInteger(v, precision), nil
	case uint:
		return NewFromInteger(v, precision), nil
	case uint8:
		return NewFromInteger(v, precision), nil
	case uint16:
		return NewFromInteger(v, precision), nil
	case uint32:
		return NewFromInteger(v, precision), nil
	case uint64:
		return NewFromInteger(v, precision), nil
	case float32:
		return NewFromFloat32(v, precision)
	case float64:
		return NewFromFloat64(v, precision)
	case shopspring.Decimal:
		return NewFromDecimal(v, precision), nil
	case *uint256.Int:
		if v != nil {
			return NewFromUint256(v, precision), nil
		}
	}

	return Decimal{}, InvalidArgument.New("unsupported operand: %T", v)
}

// CmpAny compares d with v, which may be a Decimal, *Decimal, *big.Int, any
// native integer or float, a shopspring.Decimal or a *uint256.Int.
// Non-decimal operands are promoted to d's precision first. Other types,
// including nil, return an InvalidArgument error.
func (d Decimal) CmpAny(v interface{}) (int, error) {
	y, err := promote(v, d.precision)
	if err != nil {
		return 0, err
	}

	return d.Cmp(y), nil
}

// EqualAny is CmpAny(v) == 0.
func (d Decimal) EqualAny(v interface{}) (bool, error) {
	c, err := d.CmpAny(v)
	if err != nil {
		return false, err
	}

	return c == 0, nil
}
