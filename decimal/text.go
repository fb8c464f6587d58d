package decimal

import (
	"bytes"
	"math/big"
	"strings"
)

// Parse parses decimal text of the form
//
//	['-'] digit+ ['.' digit+]
//
// The precision of the result is the number of digits after the '.', or 0
// without one. Text that does not match returns an InvalidArgument error.
func Parse(s string) (Decimal, error) {
	text := s

	negative := strings.HasPrefix(text, "-")
	if negative {
		text = text[1:]
	}

	ip, fp, dot := strings.Cut(text, ".")
	if !isDigits(ip) || (dot && !isDigits(fp)) {
		return Decimal{}, InvalidArgument.New("malformed decimal %q", s)
	}

	// The grammar has already been checked, so SetString cannot fail.
	v, _ := new(big.Int).SetString(ip+fp, 10)
	if negative {
		v.Neg(v)
	}

	return Decimal{value: v, precision: len(fp)}, nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

// String returns d as decimal text with exactly Precision fractional digits.
// Zero is always "0".
func (d Decimal) String() string {
	if d.IsZero() {
		return "0"
	}

	digits := new(big.Int).Abs(d.sig()).String()

	sb := &strings.Builder{}
	if d.Sign() < 0 {
		sb.WriteByte('-')
	}

	if d.precision == 0 {
		sb.WriteString(digits)

		return sb.String()
	}

	if len(digits) <= d.precision {
		digits = strings.Repeat("0", d.precision-len(digits)+1) + digits
	}

	split := len(digits) - d.precision

	sb.WriteString(digits[:split])
	sb.WriteByte('.')
	sb.WriteString(digits[split:])

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() (text []byte, err error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) (err error) {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}

	*d = v

	return nil
}

// MarshalJSON implements json.Marshaler. The value is written as a string so
// no precision is lost by readers decoding to float.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler. Both strings and bare numbers
// are accepted, as long as they match the Parse grammar.
func (d *Decimal) UnmarshalJSON(data []byte) (err error) {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}

	return d.UnmarshalText(data)
}
