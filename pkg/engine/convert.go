package engine

import (
	"math"

	"github.com/kjk/flex"

	"github.com/go-flexkit/flexkit/pkg/style"
)

// NodeStyle is the narrow style surface the engine accepts: every edge is
// physical and positioning is either relative or absolute. Logical edges,
// static positioning and writing directions must be lowered away before a
// style reaches this type.
type NodeStyle struct {
	Display  style.Display
	Overflow style.Overflow
	// Absolute selects absolute positioning; otherwise the node is relative.
	Absolute bool

	FlexDirection  style.FlexDirection
	JustifyContent style.Justify
	AlignItems     style.Align
	AlignSelf      style.Align
	AlignContent   style.Align
	FlexWrap       style.Wrap

	Flex       float64
	FlexGrow   float64
	FlexShrink float64
	FlexBasis  style.Value

	Width     style.Value
	Height    style.Value
	MinWidth  style.Value
	MinHeight style.Value
	MaxWidth  style.Value
	MaxHeight style.Value

	AspectRatio float64

	Margin  style.Physical
	Padding style.Physical
	Border  style.Physical
	Inset   style.Physical
}

// DefaultNodeStyle returns the style a freshly created engine node carries,
// expressed on the facade surface.
func DefaultNodeStyle(useWebDefaults bool) NodeStyle {
	cache := style.Default(useWebDefaults)
	return NodeStyle{
		FlexDirection:  cache.FlexDirection,
		JustifyContent: cache.JustifyContent,
		AlignItems:     cache.AlignItems,
		AlignSelf:      cache.AlignSelf,
		AlignContent:   cache.AlignContent,
		Flex:           cache.Flex,
		FlexGrow:       cache.FlexGrow,
		FlexShrink:     cache.FlexShrink,
		FlexBasis:      cache.FlexBasis,
		Width:          cache.Width,
		Height:         cache.Height,
		AspectRatio:    cache.AspectRatio,
		Margin:         style.ResolveMargin(cache.Margin, style.DirectionLTR),
		Padding:        style.ResolvePadding(cache.Padding, style.DirectionLTR),
		Border:         style.ResolveBorder(cache.Border, style.DirectionLTR),
		Inset:          style.ResolveInset(cache.Position, style.DirectionLTR),
	}
}

// toEngine builds a complete engine style. Starting from the engine's own
// defaults keeps fields this facade does not expose at their proper unset
// values.
func (ns NodeStyle) toEngine(cfg *flex.Config) flex.Style {
	s := flex.NewNodeWithConfig(cfg).Style

	s.Display = displayToEngine(ns.Display)
	s.Overflow = overflowToEngine(ns.Overflow)
	if ns.Absolute {
		s.PositionType = flex.PositionTypeAbsolute
	} else {
		s.PositionType = flex.PositionTypeRelative
	}
	s.FlexDirection = flexDirectionToEngine(ns.FlexDirection)
	s.JustifyContent = justifyToEngine(ns.JustifyContent)
	s.AlignItems = alignToEngine(ns.AlignItems)
	s.AlignSelf = alignToEngine(ns.AlignSelf)
	s.AlignContent = alignToEngine(ns.AlignContent)
	s.FlexWrap = wrapToEngine(ns.FlexWrap)

	s.Flex = toEngineFloat(ns.Flex)
	s.FlexGrow = toEngineFloat(ns.FlexGrow)
	s.FlexShrink = toEngineFloat(ns.FlexShrink)
	s.FlexBasis = dimensionToEngine(ns.FlexBasis)

	s.Dimensions[flex.DimensionWidth] = dimensionToEngine(ns.Width)
	s.Dimensions[flex.DimensionHeight] = dimensionToEngine(ns.Height)
	s.MinDimensions[flex.DimensionWidth] = minMaxToEngine(ns.MinWidth)
	s.MinDimensions[flex.DimensionHeight] = minMaxToEngine(ns.MinHeight)
	s.MaxDimensions[flex.DimensionWidth] = minMaxToEngine(ns.MaxWidth)
	s.MaxDimensions[flex.DimensionHeight] = minMaxToEngine(ns.MaxHeight)

	s.AspectRatio = toEngineFloat(ns.AspectRatio)

	writePhysical(&s.Margin, ns.Margin)
	writePhysical(&s.Padding, ns.Padding)
	writePhysical(&s.Border, ns.Border)
	writePhysical(&s.Position, ns.Inset)

	return s
}

// writePhysical fills the four physical slots of an engine edge array.
// The logical and compound slots stay unset: resolution happened above
// this facade and must not run a second time inside the engine.
func writePhysical(dst *[flex.EdgeCount]flex.Value, p style.Physical) {
	dst[flex.EdgeLeft] = edgeToEngine(p.Left)
	dst[flex.EdgeTop] = edgeToEngine(p.Top)
	dst[flex.EdgeRight] = edgeToEngine(p.Right)
	dst[flex.EdgeBottom] = edgeToEngine(p.Bottom)
}

// edgeToEngine converts a resolved edge value. Auto lowers to unset: the
// narrow engine model has no auto margins or insets, so an auto side
// behaves exactly like an untouched one.
func edgeToEngine(v style.Value) flex.Value {
	switch v.Unit {
	case style.UnitPoint:
		return flex.Value{Value: float32(v.Amount), Unit: flex.UnitPoint}
	case style.UnitPercent:
		return flex.Value{Value: float32(v.Amount), Unit: flex.UnitPercent}
	default:
		return flex.ValueUndefined
	}
}

// dimensionToEngine converts a width/height/flex-basis value, where auto is
// a real engine unit.
func dimensionToEngine(v style.Value) flex.Value {
	switch v.Unit {
	case style.UnitPoint:
		return flex.Value{Value: float32(v.Amount), Unit: flex.UnitPoint}
	case style.UnitPercent:
		return flex.Value{Value: float32(v.Amount), Unit: flex.UnitPercent}
	case style.UnitAuto:
		return flex.ValueAuto
	default:
		return flex.ValueUndefined
	}
}

// minMaxToEngine converts a min/max dimension; auto is not meaningful there
// and lowers to unset.
func minMaxToEngine(v style.Value) flex.Value {
	if v.Unit == style.UnitAuto {
		return flex.ValueUndefined
	}
	return dimensionToEngine(v)
}

func toEngineFloat(v float64) float32 {
	if math.IsNaN(v) {
		return flex.Undefined
	}
	return float32(v)
}

func fromEngineFloat(v float32) float64 {
	if flex.FloatIsUndefined(v) {
		return math.NaN()
	}
	return float64(v)
}

func physicalEdgeToEngine(e style.Edge) (flex.Edge, bool) {
	switch e {
	case style.EdgeLeft:
		return flex.EdgeLeft, true
	case style.EdgeTop:
		return flex.EdgeTop, true
	case style.EdgeRight:
		return flex.EdgeRight, true
	case style.EdgeBottom:
		return flex.EdgeBottom, true
	default:
		return 0, false
	}
}

func flexDirectionToEngine(d style.FlexDirection) flex.FlexDirection {
	switch d {
	case style.FlexDirectionColumnReverse:
		return flex.FlexDirectionColumnReverse
	case style.FlexDirectionRow:
		return flex.FlexDirectionRow
	case style.FlexDirectionRowReverse:
		return flex.FlexDirectionRowReverse
	default:
		return flex.FlexDirectionColumn
	}
}

func justifyToEngine(j style.Justify) flex.Justify {
	switch j {
	case style.JustifyCenter:
		return flex.JustifyCenter
	case style.JustifyFlexEnd:
		return flex.JustifyFlexEnd
	case style.JustifySpaceBetween:
		return flex.JustifySpaceBetween
	case style.JustifySpaceAround:
		return flex.JustifySpaceAround
	default:
		return flex.JustifyFlexStart
	}
}

func alignToEngine(a style.Align) flex.Align {
	switch a {
	case style.AlignFlexStart:
		return flex.AlignFlexStart
	case style.AlignCenter:
		return flex.AlignCenter
	case style.AlignFlexEnd:
		return flex.AlignFlexEnd
	case style.AlignStretch:
		return flex.AlignStretch
	case style.AlignBaseline:
		return flex.AlignBaseline
	case style.AlignSpaceBetween:
		return flex.AlignSpaceBetween
	case style.AlignSpaceAround:
		return flex.AlignSpaceAround
	default:
		return flex.AlignAuto
	}
}

func wrapToEngine(w style.Wrap) flex.Wrap {
	switch w {
	case style.WrapWrap:
		return flex.WrapWrap
	case style.WrapWrapReverse:
		return flex.WrapWrapReverse
	default:
		return flex.WrapNoWrap
	}
}

func overflowToEngine(o style.Overflow) flex.Overflow {
	switch o {
	case style.OverflowHidden:
		return flex.OverflowHidden
	case style.OverflowScroll:
		return flex.OverflowScroll
	default:
		return flex.OverflowVisible
	}
}

func displayToEngine(d style.Display) flex.Display {
	if d == style.DisplayNone {
		return flex.DisplayNone
	}
	return flex.DisplayFlex
}

func measureModeFromEngine(m flex.MeasureMode) style.MeasureMode {
	switch m {
	case flex.MeasureModeExactly:
		return style.MeasureModeExactly
	case flex.MeasureModeAtMost:
		return style.MeasureModeAtMost
	default:
		return style.MeasureModeUndefined
	}
}
