package value

import (
	"math"
	"strconv"
)

// Kind discriminates the cell payload.
type Kind int

// Cell kinds.
const (
	KindMissing Kind = iota
	KindNumber
	KindText
)

// Value is a single tabular cell: a number, a piece of text, or missing.
// The zero value is missing.
type Value struct {
	kind Kind
	num  float64
	text string
}

// Missing creates a missing cell.
func Missing() Value { return Value{} }

// Number creates a numeric cell. NaN is treated as missing.
func Number(f float64) Value {
	if math.IsNaN(f) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

// Text creates a textual cell.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Kind returns the cell kind.
func (v Value) Kind() Kind { return v.kind }

// IsMissing reports whether the cell has no value.
func (v Value) IsMissing() bool { return v.kind == KindMissing }

// Float returns the numeric payload. ok is false for non-numeric cells.
func (v Value) Float() (f float64, ok bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.num, true
}

// Text returns the textual payload. ok is false for non-text cells.
func (v Value) Text() (s string, ok bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.text, true
}

// Equal reports whether two cells hold the same value.
// Two missing cells are never equal, so a row with unset cells matches nothing.
func (v Value) Equal(other Value) bool {
	if v.kind == KindMissing || other.kind == KindMissing {
		return false
	}
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindNumber {
		return v.num == other.num
	}
	return v.text == other.text
}

// Key returns a canonical encoding for hash keys. There is no key for a
// missing cell: callers must exclude missing cells from any join key.
func (v Value) Key() string {
	switch v.kind {
	case KindNumber:
		return "n:" + strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return "t:" + v.text
	default:
		return ""
	}
}

// String renders the cell for logs and error messages.
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindText:
		return v.text
	default:
		return "<missing>"
	}
}
