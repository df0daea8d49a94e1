package query

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Kind selects the comparison and search semantics for a field value.
type Kind int

const (
	// KindText compares case-insensitively.
	KindText Kind = iota
	// KindNumber compares by numeric value.
	KindNumber
	// KindDate compares the raw ISO string but searches against the display
	// rendering.
	KindDate
	// KindID compares the raw zero-padded string, which orders correctly
	// because of the fixed prefix and padding.
	KindID
)

// Field is a resolved column value. Row types resolve each column exactly
// once, so the filter and sort engines share one accessor per derived column
// instead of special-casing lookups independently.
type Field struct {
	Kind   Kind
	Text   string
	Number decimal.Decimal
}

// TextField wraps a plain string value.
func TextField(s string) Field { return Field{Kind: KindText, Text: s} }

// NumberField wraps a decimal value.
func NumberField(d decimal.Decimal) Field { return Field{Kind: KindNumber, Number: d} }

// DateField wraps a YYYY-MM-DD date string.
func DateField(date string) Field { return Field{Kind: KindDate, Text: date} }

// IDField wraps a prefixed sequential identifier such as "T07".
func IDField(id string) Field { return Field{Kind: KindID, Text: id} }

// Row is implemented by anything that can appear in a listing. RowID returns
// the identifier used for activity filtering and sort tie-breaks; Field
// resolves a column to its comparable value.
type Row interface {
	RowID() string
	Field(column string) (Field, bool)
}

// searchText is the string a substring search runs against.
func (f Field) searchText() string {
	switch f.Kind {
	case KindDate:
		return FormatDisplayDate(f.Text)
	case KindNumber:
		return f.Number.String()
	default:
		return f.Text
	}
}

// compare orders two fields of the same kind.
func compare(a, b Field) int {
	switch a.Kind {
	case KindNumber:
		return a.Number.Cmp(b.Number)
	case KindDate, KindID:
		return strings.Compare(a.Text, b.Text)
	default:
		return strings.Compare(strings.ToLower(a.Text), strings.ToLower(b.Text))
	}
}
