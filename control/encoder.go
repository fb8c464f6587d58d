package control

import (
	"io"
	"math/big"

	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("control")

// MaxSize is the largest data block the encoder writes and the decoder
// accepts.
const MaxSize = 1 << 32

// Encoder writes control blocks.
type Encoder interface {
	Data(data []byte) (err error)
	Empty() (err error)
	Null() (err error)
}

type encoder struct {
	w io.Writer
}

// NewEncoder returns an encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return &encoder{
		w: w,
	}
}

func (e *encoder) write(bs ...[]byte) (err error) {
	for _, b := range bs {
		_, err = e.w.Write(b)
		if err != nil {
			return Error.Wrap(err)
		}
	}

	return nil
}

// Data writes data using the smallest block able to hold it.
func (e *encoder) Data(data []byte) (err error) {
	size := len(data)

	switch {
	case size == 0:
		return Error.New("invalid: size=0")
	case size == 1 && data[0]&Data.Mask == data[0]:
		return e.write([]byte{Data.Prefix | data[0]})
	case size == 2 && data[0]&Data1.Mask == data[0]:
		return e.write([]byte{Data1.Prefix | data[0], data[1]})
	case size == 3 && data[0]&Data2.Mask == data[0]:
		return e.write([]byte{Data2.Prefix | data[0], data[1], data[2]})
	case size <= 64:
		return e.write([]byte{DataSize.Prefix | byte(size-1)}, data)
	case size <= MaxSize:
		s := new(big.Int).SetUint64(uint64(size - 1))
		sb := s.Bytes()

		return e.write([]byte{DataSizeSize.Prefix | byte(len(sb)-1)}, sb, data)
	}

	return Error.New("invalid: size=%d exceeds %d", size, MaxSize)
}

// Empty writes an empty block.
func (e *encoder) Empty() (err error) {
	return e.write([]byte{Empty.Prefix})
}

// Null writes a null block.
func (e *encoder) Null() (err error) {
	return e.write([]byte{Null.Prefix})
}
