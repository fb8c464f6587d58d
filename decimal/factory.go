package decimal

import (
	"math/big"

	"github.com/holiman/uint256"
	shopspring "github.com/shopspring/decimal"
)

// Factory creates decimals sharing one precision.
type Factory struct {
	Precision int
}

// DefaultFactory creates decimals at DefaultPrecision.
var DefaultFactory = Factory{Precision: DefaultPrecision}

// Zero returns zero.
func (f Factory) Zero() Decimal {
	return Zero(f.Precision)
}

// One returns one.
func (f Factory) One() Decimal {
	return One(f.Precision)
}

// Big returns n.
func (f Factory) Big(n *big.Int) Decimal {
	return New(n, f.Precision)
}

// Int64 returns n.
func (f Factory) Int64(n int64) Decimal {
	return NewFromInt64(n, f.Precision)
}

// Uint64 returns n.
func (f Factory) Uint64(n uint64) Decimal {
	return NewFromUint64(n, f.Precision)
}

// Uint256 returns u.
func (f Factory) Uint256(u *uint256.Int) Decimal {
	return NewFromUint256(u, f.Precision)
}

// Float64 returns v truncated to the factory precision.
func (f Factory) Float64(v float64) (Decimal, error) {
	return NewFromFloat64(v, f.Precision)
}

// Decimal returns v truncated to the factory precision.
func (f Factory) Decimal(v shopspring.Decimal) Decimal {
	return NewFromDecimal(v, f.Precision)
}

// Parse parses s and rebases it to the factory precision.
func (f Factory) Parse(s string) (Decimal, error) {
	d, err := Parse(s)
	if err != nil {
		return Decimal{}, err
	}

	return d.Rebase(f.Precision), nil
}
