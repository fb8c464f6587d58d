package control

// Type is a control block type. A byte b is of type t when the bits outside
// of t.Mask equal t.Prefix.
type Type struct {
	Prefix byte
	Mask   byte
	Abbr   string
}

// Match returns true if this control type matches the given byte.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

// String returns the abbreviated name of the type.
func (t Type) String() string {
	if t.Abbr == "" {
		return "?"
	}

	return t.Abbr
}

type types []Type

func (ts types) Match(b byte) (t Type, ok bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return t, false
}

var (
	Unknown      = Type{}
	Data         = Type{0b_1000_0000, 0b_0111_1111, "d"}
	DataSize     = Type{0b_0100_0000, 0b_0011_1111, "dz"}
	Data1        = Type{0b_0010_0000, 0b_0001_1111, "d1"}
	Data2        = Type{0b_0001_0000, 0b_0000_1111, "d2"}
	DataSizeSize = Type{0b_0000_1000, 0b_0000_0111, "dzz"}
	Empty        = Type{0b_0000_0001, 0b_0000_0000, "e"}
	Null         = Type{0b_0000_0000, 0b_0000_0000, "n"}

	// Types are the control blocks this package reads and writes. The
	// container and skip blocks of the BSV format are not supported.
	Types = types{
		Data,
		DataSize,
		Data1,
		Data2,
		DataSizeSize,
		Empty,
		Null,
	}
)

// IsData returns true if blocks of type t carry data bytes.
func IsData(t Type) bool {
	switch t {
	case Data, DataSize, Data1, Data2, DataSizeSize:
		return true
	}

	return false
}
