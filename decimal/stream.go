package decimal

import (
	"io"

	"github.com/calebcase/bigdec/control"
)

// Schema configures a stream of decimals.
type Schema struct {
	// Precision is the precision of every value in the stream when Fixed
	// is set. Values are rebased to it when encoded and when decoded.
	Precision int
	Fixed     bool

	// Nullable allows nil values, written as control Null blocks.
	Nullable bool
}

func (s Schema) apply(d Decimal) Decimal {
	if !s.Fixed {
		return d
	}

	return d.Rebase(s.Precision)
}

// Encoder writes decimals to a stream, one control data block per value.
type Encoder struct {
	schema Schema
	ce     control.Encoder
}

// NewEncoder returns a new encoder writing to w.
func NewEncoder(w io.Writer, schema Schema) *Encoder {
	return &Encoder{
		schema: schema,
		ce:     control.NewEncoder(w),
	}
}

// Encode writes d. A nil d is written as null if the schema is nullable and
// is an InvalidArgument error otherwise.
func (e *Encoder) Encode(d *Decimal) (err error) {
	defer Error.WrapP(&err)

	if d == nil {
		if !e.schema.Nullable {
			return InvalidArgument.New("nil decimal in non-nullable stream")
		}

		return e.ce.Null()
	}

	data, err := e.schema.apply(*d).MarshalBinary()
	if err != nil {
		return err
	}

	return e.ce.Data(data)
}

// Decoder reads decimals written by an Encoder with the same schema.
type Decoder struct {
	schema Schema
	cd     control.Decoder
}

// NewDecoder returns a new decoder reading from r.
func NewDecoder(r io.Reader, schema Schema) *Decoder {
	return &Decoder{
		schema: schema,
		cd:     control.NewDecoder(r),
	}
}

// Decode reads the next value. It returns io.EOF when the stream is
// exhausted and a nil decimal for null blocks in nullable streams.
func (d *Decoder) Decode() (_ *Decimal, err error) {
	if !d.cd.Next() {
		if d.cd.Err() != nil {
			return nil, Error.Wrap(d.cd.Err())
		}

		return nil, io.EOF
	}

	switch t := d.cd.Type(); {
	case t == control.Null && d.schema.Nullable:
		return nil, nil
	case !control.IsData(t):
		return nil, InvalidArgument.New("unexpected %s block", t)
	}

	data, err := d.cd.Data()
	if err != nil {
		return nil, Error.Wrap(err)
	}

	var v Decimal
	err = v.UnmarshalBinary(data)
	if err != nil {
		return nil, err
	}

	v = d.schema.apply(v)

	return &v, nil
}
