// Package integer provides the zigzag binary form of an unbounded signed
// integer.
//
// The magnitude is shifted left one bit and the sign is stored in bit 0. The
// result is written big-endian with no leading zero bytes, except that zero
// is a single zero byte:
//
//	  +0 -> 0000_0000
//	  +1 -> 0000_0010
//	  -1 -> 0000_0011
//	-127 -> 1111_1111
package integer

import (
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("integer")

// Marshal returns the zigzag encoding of i. A nil i is treated as zero.
func Marshal(i *big.Int) (data []byte) {
	z := new(big.Int)
	if i != nil {
		z.Abs(i)
	}

	z.Lsh(z, 1)
	if i != nil && i.Sign() < 0 {
		z.SetBit(z, 0, 1)
	}

	data = z.Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data
}

// Unmarshal parses the zigzag encoding in data. A negative zero decodes to
// zero.
func Unmarshal(data []byte) (i *big.Int, err error) {
	if len(data) == 0 {
		return nil, Error.New("empty data")
	}

	i = new(big.Int).SetBytes(data)

	negative := i.Bit(0) == 1
	i.Rsh(i, 1)

	if negative {
		i.Neg(i)
	}

	return i, nil
}
