package decimal

import (
	"math/big"
)

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	return Decimal{value: new(big.Int).Neg(d.sig()), precision: d.precision}
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	if d.Sign() >= 0 {
		return d
	}

	return d.Neg()
}

// Add returns d + y at the larger of the two precisions.
func (d Decimal) Add(y Decimal) Decimal {
	x, y := align(d, y)

	if y.IsZero() {
		return x
	}
	if x.IsZero() {
		return y
	}

	return Decimal{value: new(big.Int).Add(x.sig(), y.sig()), precision: x.precision}
}

// Sub returns d - y at the larger of the two precisions.
func (d Decimal) Sub(y Decimal) Decimal {
	x, y := align(d, y)

	if y.IsZero() {
		return x
	}
	if x.IsZero() {
		return y.Neg()
	}

	return Decimal{value: new(big.Int).Sub(x.sig(), y.sig()), precision: x.precision}
}

// Mul returns d * y at the larger of the two precisions. Digits of the
// exact product beyond that precision are truncated.
func (d Decimal) Mul(y Decimal) Decimal {
	x, y := align(d, y)

	switch {
	case x.IsZero():
		return Zero(x.precision)
	case y.IsZero():
		return Zero(y.precision)
	case x.IsOne():
		return y
	case y.IsOne():
		return x
	}

	v := new(big.Int).Mul(x.sig(), y.sig())
	v.Abs(v)
	v.Quo(v, pow10(x.precision))

	if x.Sign() != y.Sign() {
		v.Neg(v)
	}

	return Decimal{value: v, precision: x.precision}
}

// Div returns d / y at the larger of the two precisions. Digits beyond that
// precision are truncated. Division by zero returns a DivideByZero error.
func (d Decimal) Div(y Decimal) (Decimal, error) {
	x, y := align(d, y)

	if y.IsZero() {
		return Decimal{}, DivideByZero.New("%s / %s", d, y)
	}
	if y.IsOne() {
		return x, nil
	}

	v := new(big.Int).Abs(x.sig())
	v.Mul(v, pow10(x.precision))
	v.Quo(v, new(big.Int).Abs(y.sig()))

	if x.Sign() != y.Sign() {
		v.Neg(v)
	}

	return Decimal{value: v, precision: x.precision}, nil
}

// DivRem returns the integer quotient q = trunc(d / y), at y's precision,
// and the remainder r = d - q*y. The remainder has the sign of d or is zero.
// Division by zero returns a DivideByZero error.
func (d Decimal) DivRem(y Decimal) (q, r Decimal, err error) {
	quo, err := d.Div(y)
	if err != nil {
		return Decimal{}, Decimal{}, err
	}

	q = New(quo.IntegerPart(), y.precision)
	r = d.Sub(q.Mul(y))

	return q, r, nil
}

// Rem returns the remainder of DivRem.
func (d Decimal) Rem(y Decimal) (Decimal, error) {
	_, r, err := d.DivRem(y)

	return r, err
}

// Pow returns d^exponent. The accumulator is kept at d's precision, so each
// multiplication truncates.
func (d Decimal) Pow(exponent uint64) Decimal {
	ans := One(d.precision)
	value := d

	for exponent > 0 {
		if exponent&1 == 1 {
			ans = ans.Mul(value)
		}

		exponent >>= 1
		if exponent > 0 {
			value = value.Mul(value)
		}
	}

	return ans
}

// PowBig returns d^exponent. A nil or negative exponent returns an
// InvalidArgument error.
func (d Decimal) PowBig(exponent *big.Int) (Decimal, error) {
	if exponent == nil {
		return Decimal{}, InvalidArgument.New("nil exponent")
	}
	if exponent.Sign() < 0 {
		return Decimal{}, InvalidArgument.New("negative exponent: %s", exponent)
	}

	if exponent.IsUint64() {
		return d.Pow(exponent.Uint64()), nil
	}

	ans := One(d.precision)
	value := d

	for i, n := 0, exponent.BitLen(); i < n; i++ {
		if exponent.Bit(i) == 1 {
			ans = ans.Mul(value)
		}

		value = value.Mul(value)
	}

	return ans, nil
}

// ModPow returns d^exponent mod modulus, reducing after every squaring and
// every multiplication. A zero modulus returns a DivideByZero error and a nil
// or negative exponent an InvalidArgument error.
func (d Decimal) ModPow(exponent *big.Int, modulus Decimal) (Decimal, error) {
	if exponent == nil {
		return Decimal{}, InvalidArgument.New("nil exponent")
	}
	if exponent.Sign() < 0 {
		return Decimal{}, InvalidArgument.New("negative exponent: %s", exponent)
	}
	if modulus.IsZero() {
		return Decimal{}, DivideByZero.New("modulus %s", modulus)
	}

	ans := One(d.precision)
	value := d

	var err error
	for i, n := 0, exponent.BitLen(); i < n; i++ {
		if exponent.Bit(i) == 1 {
			ans, err = ans.Mul(value).Rem(modulus)
			if err != nil {
				return Decimal{}, err
			}
		}

		value, err = value.Mul(value).Rem(modulus)
		if err != nil {
			return Decimal{}, err
		}
	}

	return ans, nil
}

// Min returns the smaller of x and y, x if they are equal.
func Min(x, y Decimal) Decimal {
	if y.Cmp(x) < 0 {
		return y
	}

	return x
}

// Max returns the larger of x and y, x if they are equal.
func Max(x, y Decimal) Decimal {
	if x.Cmp(y) < 0 {
		return y
	}

	return x
}
