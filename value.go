package sheetfill

import (
	"fmt"
	"strconv"
	"time"
)

// Kind identifies the type of data held by a CellValue.
type Kind int

const (
	KindNull Kind = iota
	KindText
	KindNumber
	KindBool
	KindDate
)

// String returns a human-readable name for the Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindText:
		return "Text"
	case KindNumber:
		return "Number"
	case KindBool:
		return "Boolean"
	case KindDate:
		return "Date"
	default:
		return "Unknown"
	}
}

// CellValue is a tagged union over the cell types the engine moves around.
// Only the field selected by Kind is meaningful. The zero value is Null,
// which is also what an absent cell reads as.
type CellValue struct {
	Kind   Kind
	Text   string
	Number float64
	Bool   bool
	Time   time.Time
}

// NullValue returns the Null cell value.
func NullValue() CellValue { return CellValue{} }

// TextValue returns a Text cell value.
func TextValue(s string) CellValue { return CellValue{Kind: KindText, Text: s} }

// NumberValue returns a Number cell value.
func NumberValue(f float64) CellValue { return CellValue{Kind: KindNumber, Number: f} }

// BoolValue returns a Boolean cell value.
func BoolValue(b bool) CellValue { return CellValue{Kind: KindBool, Bool: b} }

// DateValue returns a Date cell value.
func DateValue(t time.Time) CellValue { return CellValue{Kind: KindDate, Time: t} }

// IsNull reports whether the value is Null.
func (v CellValue) IsNull() bool { return v.Kind == KindNull }

// ValueOf converts a native Go scalar into a CellValue. nil maps to Null.
func ValueOf(x any) (CellValue, error) {
	switch val := x.(type) {
	case nil:
		return NullValue(), nil
	case CellValue:
		return val, nil
	case string:
		return TextValue(val), nil
	case bool:
		return BoolValue(val), nil
	case int:
		return NumberValue(float64(val)), nil
	case int32:
		return NumberValue(float64(val)), nil
	case int64:
		return NumberValue(float64(val)), nil
	case float32:
		return NumberValue(float64(val)), nil
	case float64:
		return NumberValue(val), nil
	case time.Time:
		return DateValue(val), nil
	default:
		return NullValue(), fmt.Errorf("unsupported value type %T", x)
	}
}

// Any returns the native Go representation of the value, suitable for
// handing to the spreadsheet layer. Null maps to nil.
func (v CellValue) Any() any {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindNumber:
		return v.Number
	case KindBool:
		return v.Bool
	case KindDate:
		return v.Time
	default:
		return nil
	}
}

// String formats the value for logs and error messages.
func (v CellValue) String() string {
	switch v.Kind {
	case KindText:
		return fmt.Sprintf("%q", v.Text)
	case KindNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindDate:
		return v.Time.Format(time.RFC3339)
	default:
		return "null"
	}
}
