package style

import "math"

// FloatUndefined is the unset value for plain numeric style fields
// (flex, flex-grow, flex-shrink, aspect-ratio).
var FloatUndefined = math.NaN()

// FloatIsUndefined reports whether a numeric style field is unset.
func FloatIsUndefined(v float64) bool {
	return math.IsNaN(v)
}

// EdgeValues is a canonical edge map: one slot per edge key, each holding
// the literal last value written for that key. Resolution into physical
// sides is a pure function of the current slots (see ResolveEdges) and never
// depends on the order the slots were written in.
type EdgeValues [EdgeCount]Value

// Get returns the literal value stored for an edge key.
func (e *EdgeValues) Get(edge Edge) Value {
	if edge < 0 || int(edge) >= EdgeCount {
		return Undefined
	}
	return e[edge]
}

// Set stores a value for an edge key, overwriting any prior value for that
// key only. Writing Undefined clears the key.
func (e *EdgeValues) Set(edge Edge, v Value) {
	if edge < 0 || int(edge) >= EdgeCount {
		return
	}
	e[edge] = v
}

// Cache is the canonical, direction-independent style record for one node.
// It stores exactly what the caller last set; nothing in it depends on a
// writing direction until resolution.
type Cache struct {
	// Direction is the requested writing direction; DirectionInherit means
	// the node takes the direction propagated down during a layout pass.
	Direction Direction
	// ResolvedDirection is the last resolved writing direction. It is
	// updated only by a layout pass or an explicit direction assignment and
	// is authoritative for logical-edge resolution until overwritten.
	ResolvedDirection Direction

	FlexDirection FlexDirection
	PositionType  PositionType
	BoxSizing     BoxSizing

	JustifyContent Justify
	AlignItems     Align
	AlignSelf      Align
	AlignContent   Align
	FlexWrap       Wrap
	Overflow       Overflow
	Display        Display

	Flex       float64
	FlexGrow   float64
	FlexShrink float64
	FlexBasis  Value

	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	AspectRatio float64

	Margin   EdgeValues
	Padding  EdgeValues
	Border   EdgeValues
	Position EdgeValues
}

// Default returns the canonical style a freshly created node carries.
// With web defaults the main axis is Row and lines stretch, matching
// browser flexbox; otherwise the engine's classic defaults apply.
func Default(useWebDefaults bool) Cache {
	c := Cache{
		Direction:         DirectionInherit,
		ResolvedDirection: DirectionLTR,
		FlexDirection:     FlexDirectionColumn,
		JustifyContent:    JustifyFlexStart,
		AlignItems:        AlignStretch,
		AlignSelf:         AlignAuto,
		AlignContent:      AlignFlexStart,
		Flex:              FloatUndefined,
		FlexGrow:          FloatUndefined,
		FlexShrink:        FloatUndefined,
		FlexBasis:         Auto,
		Width:             Auto,
		Height:            Auto,
		AspectRatio:       FloatUndefined,
	}
	if useWebDefaults {
		c.FlexDirection = FlexDirectionRow
		c.AlignContent = AlignStretch
	}
	return c
}
