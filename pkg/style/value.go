// Package style holds the canonical, direction-independent style cache and
// the pure resolution of logical and compound edges into physical box-model
// values.
//
// Every style property slot is a tagged Value rather than an overloaded
// float: a slot is either a definite point length, a percentage, the literal
// auto, or unset. Keeping the tag explicit keeps edge resolution exhaustive
// and free of sentinel arithmetic.
package style

import (
	"math"
	"strconv"
	"strings"
)

// Unit tags a Value.
type Unit int

const (
	// UnitUndefined marks an unset slot.
	UnitUndefined Unit = iota
	// UnitPoint is a definite length in points.
	UnitPoint
	// UnitPercent is a percentage of the containing block.
	UnitPercent
	// UnitAuto is the explicit auto value. Auto is a real value, not unset:
	// setting auto on a logical edge overrides compound defaults exactly
	// like a definite length would.
	UnitAuto
)

// String returns a human-readable representation of the unit.
func (u Unit) String() string {
	switch u {
	case UnitUndefined:
		return "undefined"
	case UnitPoint:
		return "point"
	case UnitPercent:
		return "percent"
	case UnitAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Value is a tagged style value: a point length, a percentage, auto, or unset.
// The zero value is the unset value.
type Value struct {
	Amount float64
	Unit   Unit
}

// Undefined is the unset value.
var Undefined = Value{}

// Auto is the explicit auto value.
var Auto = Value{Unit: UnitAuto}

// Point returns a definite length value.
func Point(amount float64) Value {
	return Value{Amount: amount, Unit: UnitPoint}
}

// Percent returns a percentage value.
func Percent(amount float64) Value {
	return Value{Amount: amount, Unit: UnitPercent}
}

// IsUndefined reports whether the value is unset.
func (v Value) IsUndefined() bool {
	return v.Unit == UnitUndefined
}

// IsAuto reports whether the value is the explicit auto value.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Equal reports whether two values are the same. Amounts are only compared
// for units that carry one.
func (v Value) Equal(other Value) bool {
	if v.Unit != other.Unit {
		return false
	}
	if v.Unit == UnitPoint || v.Unit == UnitPercent {
		return v.Amount == other.Amount || (math.IsNaN(v.Amount) && math.IsNaN(other.Amount))
	}
	return true
}

// String returns a human-readable representation of the value.
func (v Value) String() string {
	switch v.Unit {
	case UnitPoint:
		return strconv.FormatFloat(v.Amount, 'g', -1, 64)
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'g', -1, 64) + "%"
	case UnitAuto:
		return "auto"
	default:
		return "undefined"
	}
}

// Parse converts the loose string forms accepted by the compatibility API
// into a tagged Value: a numeric string is a point length, a trailing "%"
// marks a percentage, and the literal "auto" is auto. Anything unparseable,
// including the empty string and NaN amounts, resolves to the unset value
// rather than an error.
func Parse(raw string) Value {
	s := strings.TrimSpace(raw)
	switch s {
	case "", "undefined":
		return Undefined
	case "auto":
		return Auto
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		amount, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
		if err != nil || math.IsNaN(amount) {
			return Undefined
		}
		return Percent(amount)
	}
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(amount) {
		return Undefined
	}
	return Point(amount)
}
