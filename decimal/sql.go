package decimal

import (
	"database/sql/driver"
	"math"
	"strconv"
)

// Value implements driver.Valuer. Decimals are stored as text.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// Scan implements sql.Scanner. Text, integers and floats are accepted; floats
// are converted through their shortest exact decimal text. Infinities and NaN
// return an Overflow error.
func (d *Decimal) Scan(value interface{}) (err error) {
	switch v := value.(type) {
	case string:
		return d.UnmarshalText([]byte(v))
	case []byte:
		return d.UnmarshalText(v)
	case int64:
		*d = NewFromInt64(v, 0)
		return nil
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return Overflow.New("non-finite float: %v", v)
		}

		return d.UnmarshalText([]byte(strconv.FormatFloat(v, 'f', -1, 64)))
	}

	return InvalidArgument.New("cannot scan %T into decimal", value)
}
