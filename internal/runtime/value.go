// Package runtime implements the tree-walking interpreter and its value
// model.
package runtime

import (
	"fmt"
	"strconv"
)

// Value is the interface for all runtime values. Equality is structural and
// by variant; values of different variants are never equal.
type Value interface {
	TypeName() string
	// String is the plain rendering of the value.
	String() string
	// Debug is the variant-tagged rendering used by print statements and
	// runtime error messages, e.g. Number(1) or String("abc").
	Debug() string
}

// NumberVal represents a 64-bit float value.
type NumberVal float64

func (v NumberVal) TypeName() string { return "number" }
func (v NumberVal) String() string   { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v NumberVal) Debug() string    { return fmt.Sprintf("Number(%s)", v.String()) }

// StringVal represents a string value.
type StringVal string

func (v StringVal) TypeName() string { return "string" }
func (v StringVal) String() string   { return string(v) }
func (v StringVal) Debug() string    { return fmt.Sprintf("String(%q)", string(v)) }

// BoolVal represents a boolean value.
type BoolVal bool

func (v BoolVal) TypeName() string { return "boolean" }
func (v BoolVal) String() string   { return strconv.FormatBool(bool(v)) }
func (v BoolVal) Debug() string    { return fmt.Sprintf("Boolean(%t)", bool(v)) }

// NilVal represents nil.
type NilVal struct{}

func (v NilVal) TypeName() string { return "nil" }
func (v NilVal) String() string   { return "nil" }
func (v NilVal) Debug() string    { return "Nil" }

// ToBool maps a value to its truthiness: booleans are themselves and nil is
// false. Numbers and strings have no truthiness here — they are rejected,
// not coerced, which is deliberately stricter than dynamic languages that
// treat 0 or "" as falsy.
func ToBool(v Value) (bool, bool) {
	switch val := v.(type) {
	case BoolVal:
		return bool(val), true
	case NilVal:
		return false, true
	default:
		return false, false
	}
}

// valuesEqual implements language equality: same variant and equal payload.
// Cross-variant comparisons are false, never an error. Interface equality
// over the comparable value types gives exactly that, but the rule is kept
// behind this function in case it ever needs to diverge.
func valuesEqual(a, b Value) bool {
	return a == b
}
