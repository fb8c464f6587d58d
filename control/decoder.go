package control

import (
	"bytes"
	"errors"
	"io"
	"math/big"
)

// ErrInvalidOperation is returned when a block is read as something it is
// not (e.g. asking a null block for data).
var ErrInvalidOperation = Error.New("invalid operation")

// Decoder reads control blocks. Next advances to the next block and reports
// false at the end of input or on error; Err distinguishes the two.
type Decoder interface {
	Next() (ok bool)
	Err() (err error)

	Type() Type
	Consumed() uint64

	Data() (data []byte, err error)
}

type decoder struct {
	r io.Reader

	consumed uint64

	value [1]byte
	t     Type
	data  []byte

	err error
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) Decoder {
	return &decoder{
		r: r,
	}
}

// read returns the next n bytes. The buffer grows with the bytes that
// arrive, not with the size announced by the stream.
func (d *decoder) read(n uint64) (data []byte, err error) {
	buf := &bytes.Buffer{}

	_, err = io.CopyN(buf, d.r, int64(n))
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}

		return nil, Error.Wrap(err)
	}

	d.consumed += n

	return buf.Bytes(), nil
}

func (d *decoder) Next() (ok bool) {
	if d.err != nil {
		return false
	}

	// Reset state for next field.
	d.value[0] = 0
	d.t = Unknown
	d.data = nil

	_, err := io.ReadFull(d.r, d.value[:])
	if err != nil {
		if !errors.Is(err, io.EOF) {
			d.err = Error.Wrap(err)
		}

		return false
	}

	d.consumed += 1

	t, ok := Types.Match(d.value[0])
	if !ok {
		d.err = Error.New("unexpected byte: %08b", d.value[0])

		return false
	}

	d.err = d.fill(t)
	if d.err != nil {
		return false
	}

	d.t = t

	return true
}

// fill reads the remainder of a block of type t.
func (d *decoder) fill(t Type) (err error) {
	head := d.value[0] & t.Mask

	switch t {
	case Data:
		d.data = []byte{head}
	case Data1, Data2:
		n := uint64(1)
		if t == Data2 {
			n = 2
		}

		rest, err := d.read(n)
		if err != nil {
			return err
		}

		d.data = append([]byte{head}, rest...)
	case DataSize:
		d.data, err = d.read(uint64(head) + 1)
		if err != nil {
			return err
		}
	case DataSizeSize:
		sizeBytes, err := d.read(uint64(head) + 1)
		if err != nil {
			return err
		}

		size := new(big.Int).SetBytes(sizeBytes)
		size.Add(size, big.NewInt(1))
		if !size.IsUint64() || size.Uint64() > MaxSize {
			return Error.New("invalid: size=%s exceeds %d", size, MaxSize)
		}

		d.data, err = d.read(size.Uint64())
		if err != nil {
			return err
		}
	case Empty, Null:
		// No additional bytes need to be read.
	}

	return nil
}

func (d *decoder) Err() error {
	return d.err
}

func (d *decoder) Type() Type {
	return d.t
}

func (d *decoder) Consumed() uint64 {
	return d.consumed
}

// Data returns the data bytes of the current block. If the block does not
// contain data it returns nil and ErrInvalidOperation.
func (d *decoder) Data() (data []byte, err error) {
	if !IsData(d.t) {
		return nil, ErrInvalidOperation
	}

	return d.data, nil
}
