package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. IntegerValue and
// StringValue are the only implementations.
type Value interface {
	Kind() Kind
	isValue()
}

// IntegerValue is a signed 32-bit integer; arithmetic on it wraps.
type IntegerValue struct {
	Val int32
}

func (v IntegerValue) Kind() Kind { return KindInteger }
func (IntegerValue) isValue()     {}

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }
func (StringValue) isValue()     {}

// ToText renders a value for printing and concatenation: integers in
// decimal, strings verbatim.
func ToText(v Value) string {
	switch val := v.(type) {
	case IntegerValue:
		return strconv.FormatInt(int64(val.Val), 10)
	case StringValue:
		return val.Val
	default:
		return fmt.Sprintf("<%T>", v)
	}
}
