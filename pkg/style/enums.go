package style

import "fmt"

// Direction is the writing direction used to resolve logical edges.
// DirectionInherit is the zero value: a node with an inherited direction
// takes whatever direction a layout pass propagates down to it.
type Direction int

const (
	DirectionInherit Direction = iota
	DirectionLTR
	DirectionRTL
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionInherit:
		return "inherit"
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// FlexDirection is the declared main axis of a flex container.
type FlexDirection int

const (
	FlexDirectionColumn FlexDirection = iota
	FlexDirectionColumnReverse
	FlexDirectionRow
	FlexDirectionRowReverse
)

// String returns a human-readable representation of the flex direction.
func (d FlexDirection) String() string {
	switch d {
	case FlexDirectionColumn:
		return "column"
	case FlexDirectionColumnReverse:
		return "column-reverse"
	case FlexDirectionRow:
		return "row"
	case FlexDirectionRowReverse:
		return "row-reverse"
	default:
		return fmt.Sprintf("FlexDirection(%d)", int(d))
	}
}

// Mirror returns the right-to-left emulation counterpart of the direction.
// Only the horizontal axes swap: Row becomes RowReverse and vice versa;
// Column and ColumnReverse are returned unchanged.
func (d FlexDirection) Mirror() FlexDirection {
	switch d {
	case FlexDirectionRow:
		return FlexDirectionRowReverse
	case FlexDirectionRowReverse:
		return FlexDirectionRow
	default:
		return d
	}
}

// PositionType controls how a node is positioned relative to its parent.
type PositionType int

const (
	PositionTypeRelative PositionType = iota
	PositionTypeAbsolute
	// PositionTypeStatic is accepted for call compatibility. The embedded
	// engine has no static mode; static nodes are laid out as relative
	// nodes with their inset offsets suppressed.
	PositionTypeStatic
)

// String returns a human-readable representation of the position type.
func (p PositionType) String() string {
	switch p {
	case PositionTypeRelative:
		return "relative"
	case PositionTypeAbsolute:
		return "absolute"
	case PositionTypeStatic:
		return "static"
	default:
		return fmt.Sprintf("PositionType(%d)", int(p))
	}
}

// BoxSizing controls whether declared dimensions include padding and border.
type BoxSizing int

const (
	BoxSizingBorderBox BoxSizing = iota
	BoxSizingContentBox
)

// String returns a human-readable representation of the box sizing mode.
func (b BoxSizing) String() string {
	switch b {
	case BoxSizingBorderBox:
		return "border-box"
	case BoxSizingContentBox:
		return "content-box"
	default:
		return fmt.Sprintf("BoxSizing(%d)", int(b))
	}
}

// Edge is a key into a canonical edge map. Physical edges name a concrete
// side; Start and End are logical edges resolved against a writing
// direction; Horizontal, Vertical and All are compound keys expanded during
// resolution.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
	EdgeStart
	EdgeEnd
	EdgeHorizontal
	EdgeVertical
	EdgeAll

	// EdgeCount is the number of edge keys.
	EdgeCount = int(EdgeAll) + 1
)

// String returns a human-readable representation of the edge.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	case EdgeStart:
		return "start"
	case EdgeEnd:
		return "end"
	case EdgeHorizontal:
		return "horizontal"
	case EdgeVertical:
		return "vertical"
	case EdgeAll:
		return "all"
	default:
		return fmt.Sprintf("Edge(%d)", int(e))
	}
}

// Justify controls main-axis distribution of children.
type Justify int

const (
	JustifyFlexStart Justify = iota
	JustifyCenter
	JustifyFlexEnd
	JustifySpaceBetween
	JustifySpaceAround
)

// String returns a human-readable representation of the justification.
func (j Justify) String() string {
	switch j {
	case JustifyFlexStart:
		return "flex-start"
	case JustifyCenter:
		return "center"
	case JustifyFlexEnd:
		return "flex-end"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	default:
		return fmt.Sprintf("Justify(%d)", int(j))
	}
}

// Align controls cross-axis alignment of children, lines, or a single node.
type Align int

const (
	AlignAuto Align = iota
	AlignFlexStart
	AlignCenter
	AlignFlexEnd
	AlignStretch
	AlignBaseline
	AlignSpaceBetween
	AlignSpaceAround
)

// String returns a human-readable representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignAuto:
		return "auto"
	case AlignFlexStart:
		return "flex-start"
	case AlignCenter:
		return "center"
	case AlignFlexEnd:
		return "flex-end"
	case AlignStretch:
		return "stretch"
	case AlignBaseline:
		return "baseline"
	case AlignSpaceBetween:
		return "space-between"
	case AlignSpaceAround:
		return "space-around"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// Wrap controls whether children wrap onto multiple lines.
type Wrap int

const (
	WrapNoWrap Wrap = iota
	WrapWrap
	WrapWrapReverse
)

// String returns a human-readable representation of the wrap mode.
func (w Wrap) String() string {
	switch w {
	case WrapNoWrap:
		return "no-wrap"
	case WrapWrap:
		return "wrap"
	case WrapWrapReverse:
		return "wrap-reverse"
	default:
		return fmt.Sprintf("Wrap(%d)", int(w))
	}
}

// Overflow controls how content exceeding a node's bounds is treated.
type Overflow int

const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
)

// String returns a human-readable representation of the overflow mode.
func (o Overflow) String() string {
	switch o {
	case OverflowVisible:
		return "visible"
	case OverflowHidden:
		return "hidden"
	case OverflowScroll:
		return "scroll"
	default:
		return fmt.Sprintf("Overflow(%d)", int(o))
	}
}

// Display controls whether a node participates in layout at all.
type Display int

const (
	DisplayFlex Display = iota
	DisplayNone
)

// String returns a human-readable representation of the display mode.
func (d Display) String() string {
	switch d {
	case DisplayFlex:
		return "flex"
	case DisplayNone:
		return "none"
	default:
		return fmt.Sprintf("Display(%d)", int(d))
	}
}

// MeasureMode describes the constraint passed to a measurement callback.
type MeasureMode int

const (
	// MeasureModeUndefined leaves the dimension entirely content-driven.
	MeasureModeUndefined MeasureMode = iota
	// MeasureModeExactly requires the returned dimension to match exactly.
	MeasureModeExactly
	// MeasureModeAtMost caps the returned dimension at the given value.
	MeasureModeAtMost
)

// String returns a human-readable representation of the measure mode.
func (m MeasureMode) String() string {
	switch m {
	case MeasureModeUndefined:
		return "undefined"
	case MeasureModeExactly:
		return "exactly"
	case MeasureModeAtMost:
		return "at-most"
	default:
		return fmt.Sprintf("MeasureMode(%d)", int(m))
	}
}
