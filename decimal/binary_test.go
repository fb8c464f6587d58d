package decimal_test

import (
	"bytes"
	"fmt"
	"io"
	"math/big"
	"testing"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/calebcase/bigdec/decimal"
)

func TestMarshalBinary(t *testing.T) {
	type TC struct {
		Input  string
		Output []byte
		Mark   error
	}

	tcs := []TC{
		{Input: "0", Output: []byte{0x00, 0x00}, Mark: oops.New("zero")},
		{Input: "5", Output: []byte{0x0A, 0x00}, Mark: oops.New("integer")},
		{Input: "0.0001", Output: []byte{0x02, 0x11}, Mark: oops.New("USD 0.0001")},
		{Input: "-20.47", Output: []byte{0x0F, 0xFF, 0x09}, Mark: oops.New("USD -20.47")},
		{Input: "-0.1", Output: []byte{0x03, 0x05}, Mark: oops.New("negative fraction")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.Input), func(t *testing.T) {
			d := decimal.MustParse(tc.Input)

			data, err := d.MarshalBinary()
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Output, data, tc.Mark)

			var back decimal.Decimal
			err = back.UnmarshalBinary(data)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, d.Precision(), back.Precision(), tc.Mark)
			require.Equal(t, tc.Input, back.String(), tc.Mark)
		})
	}
}

func TestBinaryScaleSizes(t *testing.T) {
	type TC struct {
		Precision int
		Trailer   []byte
		Mark      error
	}

	tcs := []TC{
		{Precision: 1, Trailer: []byte{0x05}, Mark: oops.New("1")},
		{Precision: 63, Trailer: []byte{0xFD}, Mark: oops.New("largest 1 byte")},
		{Precision: 64, Trailer: []byte{0x01, 0x02}, Mark: oops.New("smallest 2 byte")},
		{Precision: 1<<14 - 1, Trailer: []byte{0xFF, 0xFE}, Mark: oops.New("largest 2 byte")},
		{Precision: 1 << 14, Trailer: []byte{0x01, 0x00, 0x03}, Mark: oops.New("smallest 3 byte")},
		{Precision: decimal.MaxBinaryPrecision, Trailer: []byte{0xFF, 0xFF, 0xFF}, Mark: oops.New("largest 3 byte")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%d", i, tc.Precision), func(t *testing.T) {
			d := decimal.NewFromSignificand(big.NewInt(-12345), tc.Precision)

			data, err := d.MarshalBinary()
			require.NoError(t, err, tc.Mark)
			require.True(t, bytes.HasSuffix(data, tc.Trailer), "%s\n%s", tc.Mark, spew.Sdump(data))

			var back decimal.Decimal
			err = back.UnmarshalBinary(data)
			require.NoError(t, err, tc.Mark)
			require.Equal(t, tc.Precision, back.Precision(), tc.Mark)
			require.Equal(t, 0, big.NewInt(-12345).Cmp(back.Significand()), tc.Mark)
		})
	}

	_, err := decimal.NewFromSignificand(big.NewInt(1), decimal.MaxBinaryPrecision+1).MarshalBinary()
	require.Error(t, err)
	require.True(t, decimal.Overflow.Has(err))
}

func TestUnmarshalBinaryErrors(t *testing.T) {
	type TC struct {
		Input []byte
		Mark  error
	}

	tcs := []TC{
		{Input: nil, Mark: oops.New("nil")},
		{Input: []byte{0x00}, Mark: oops.New("one byte")},
		{Input: []byte{0x02, 0x04}, Mark: oops.New("stray scale bits")},
		{Input: []byte{0x02, 0x02}, Mark: oops.New("short 2 byte scale")},
		{Input: []byte{0x02, 0x00, 0x03}, Mark: oops.New("short 3 byte scale")},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%x", i, tc.Input), func(t *testing.T) {
			d := decimal.MustParse("1.5")

			err := d.UnmarshalBinary(tc.Input)
			require.Error(t, err, tc.Mark)
			require.True(t, decimal.InvalidArgument.Has(err), tc.Mark)
			require.Equal(t, "1.5", d.String(), tc.Mark)
		})
	}
}

func TestStream(t *testing.T) {
	one := decimal.MustParse("0.0001")
	two := decimal.MustParse("-20.47")

	t.Run("nullable", func(t *testing.T) {
		schema := decimal.Schema{Nullable: true}

		buf := &bytes.Buffer{}
		enc := decimal.NewEncoder(buf, schema)
		require.NoError(t, enc.Encode(&one))
		require.NoError(t, enc.Encode(nil))
		require.NoError(t, enc.Encode(&two))

		// d1 block, null block, d2 block.
		require.Equal(t, []byte{0x22, 0x11, 0x00, 0x1F, 0xFF, 0x09}, buf.Bytes())

		dec := decimal.NewDecoder(buf, schema)

		d, err := dec.Decode()
		require.NoError(t, err)
		require.Equal(t, "0.0001", d.String())

		d, err = dec.Decode()
		require.NoError(t, err)
		require.Nil(t, d)

		d, err = dec.Decode()
		require.NoError(t, err)
		require.Equal(t, "-20.47", d.String())

		_, err = dec.Decode()
		require.Equal(t, io.EOF, err)
	})

	t.Run("not nullable", func(t *testing.T) {
		buf := &bytes.Buffer{}

		err := decimal.NewEncoder(buf, decimal.Schema{}).Encode(nil)
		require.Error(t, err)
		require.True(t, decimal.InvalidArgument.Has(err))
		require.Zero(t, buf.Len())

		_, err = decimal.NewDecoder(bytes.NewReader([]byte{0x00}), decimal.Schema{}).Decode()
		require.Error(t, err)
		require.True(t, decimal.InvalidArgument.Has(err))
	})

	t.Run("fixed", func(t *testing.T) {
		schema := decimal.Schema{Precision: 1, Fixed: true}

		buf := &bytes.Buffer{}
		enc := decimal.NewEncoder(buf, schema)
		require.NoError(t, enc.Encode(&two))

		d, err := decimal.NewDecoder(buf, schema).Decode()
		require.NoError(t, err)
		require.Equal(t, "-20.4", d.String())

		// Values written at another precision are rebased when read.
		buf.Reset()
		require.NoError(t, decimal.NewEncoder(buf, decimal.Schema{}).Encode(&one))

		d, err = decimal.NewDecoder(buf, decimal.Schema{Precision: 6, Fixed: true}).Decode()
		require.NoError(t, err)
		require.Equal(t, "0.000100", d.String())
	})

	t.Run("empty block", func(t *testing.T) {
		_, err := decimal.NewDecoder(bytes.NewReader([]byte{0x01}), decimal.Schema{Nullable: true}).Decode()
		require.Error(t, err)
		require.True(t, decimal.InvalidArgument.Has(err))
	})

	t.Run("garbage", func(t *testing.T) {
		type TC struct {
			Input []byte
			Mark  error
		}

		tcs := []TC{
			{Input: []byte{0x02}, Mark: oops.New("unknown block")},
			{Input: []byte{0x41, 0x02}, Mark: oops.New("truncated block")},
		}

		for _, tc := range tcs {
			_, err := decimal.NewDecoder(bytes.NewReader(tc.Input), decimal.Schema{}).Decode()
			require.Error(t, err, tc.Mark)
			require.True(t, decimal.Error.Has(err), "%s: %v", tc.Mark, err)
		}

		// A well formed block holding a malformed decimal.
		_, err := decimal.NewDecoder(bytes.NewReader([]byte{0x80}), decimal.Schema{}).Decode()
		require.Error(t, err)
		require.True(t, decimal.InvalidArgument.Has(err))
	})
}
