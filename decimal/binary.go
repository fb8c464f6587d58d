package decimal

import (
	"github.com/calebcase/bigdec/integer"
)

// MaxBinaryPrecision is the largest precision MarshalBinary can store.
const MaxBinaryPrecision = 1<<22 - 1

// Scale sizes kept in the low two bits of the last byte of the binary form.
const (
	scaleNone  byte = 0b00
	scaleSmall byte = 0b01
	scale14    byte = 0b10
	scale22    byte = 0b11
)

// MarshalBinary implements encoding.BinaryMarshaler. See the package
// documentation for the layout. Precisions above MaxBinaryPrecision return an
// Overflow error.
func (d Decimal) MarshalBinary() (data []byte, err error) {
	data = integer.Marshal(d.sig())

	p := d.precision
	low := byte(p&0b0011_1111) << 2

	switch {
	case p == 0:
		data = append(data, scaleNone)
	case p < 1<<6:
		data = append(data, low|scaleSmall)
	case p < 1<<14:
		data = append(data, byte(p>>6), low|scale14)
	case p <= MaxBinaryPrecision:
		data = append(data, byte(p>>14), byte(p>>6), low|scale22)
	default:
		return nil, Overflow.New("precision %d exceeds %d", p, MaxBinaryPrecision)
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. Malformed data
// returns an InvalidArgument error.
func (d *Decimal) UnmarshalBinary(data []byte) (err error) {
	if len(data) < 2 {
		return InvalidArgument.New("binary decimal too short: %d bytes", len(data))
	}

	last := data[len(data)-1]
	low := int(last >> 2)

	var p, n int
	switch last & 0b11 {
	case scaleNone:
		if low != 0 {
			return InvalidArgument.New("binary decimal has scale bits without a scale: %08b", last)
		}
		n = 1
	case scaleSmall:
		p, n = low, 1
	case scale14:
		n = 2
		if len(data) <= n {
			return InvalidArgument.New("binary decimal too short for scale: %d bytes", len(data))
		}
		p = int(data[len(data)-2])<<6 | low
	case scale22:
		n = 3
		if len(data) <= n {
			return InvalidArgument.New("binary decimal too short for scale: %d bytes", len(data))
		}
		p = (int(data[len(data)-3])<<8|int(data[len(data)-2]))<<6 | low
	}

	v, err := integer.Unmarshal(data[:len(data)-n])
	if err != nil {
		return InvalidArgument.Wrap(err)
	}

	*d = Decimal{value: v, precision: p}

	return nil
}
