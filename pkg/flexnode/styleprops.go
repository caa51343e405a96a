package flexnode

import (
	"math"

	"github.com/go-flexkit/flexkit/pkg/style"
)

// Style setters write into the canonical cache and run the dirty
// transition; nothing reaches the engine until the next layout pass, which
// re-resolves every node's physical style anyway. Getters return the
// literal last value written for a key, never a resolved one.

// setEdge stores v for one key of an edge map, dirtying on change.
func (n *Node) setEdge(edges *style.EdgeValues, edge style.Edge, v style.Value) {
	if edges.Get(edge).Equal(v) {
		return
	}
	edges.Set(edge, v)
	n.markDirty()
}

// SetMargin sets the margin for an edge key. Writing the unset value
// clears the key.
func (n *Node) SetMargin(edge style.Edge, v style.Value) {
	n.setEdge(&n.cache.Margin, edge, v)
}

// Margin returns the literal margin value stored for an edge key.
func (n *Node) Margin(edge style.Edge) style.Value {
	return n.cache.Margin.Get(edge)
}

// SetPadding sets the padding for an edge key.
func (n *Node) SetPadding(edge style.Edge, v style.Value) {
	n.setEdge(&n.cache.Padding, edge, v)
}

// Padding returns the literal padding value stored for an edge key.
func (n *Node) Padding(edge style.Edge) style.Value {
	return n.cache.Padding.Get(edge)
}

// SetBorder sets the border width for an edge key. NaN clears the key.
func (n *Node) SetBorder(edge style.Edge, width float64) {
	if math.IsNaN(width) {
		n.setEdge(&n.cache.Border, edge, style.Undefined)
		return
	}
	n.setEdge(&n.cache.Border, edge, style.Point(width))
}

// Border returns the border width stored for an edge key, or NaN when the
// key is unset.
func (n *Node) Border(edge style.Edge) float64 {
	v := n.cache.Border.Get(edge)
	if v.Unit != style.UnitPoint {
		return math.NaN()
	}
	return v.Amount
}

// SetPosition sets the inset offset for an edge key.
func (n *Node) SetPosition(edge style.Edge, v style.Value) {
	n.setEdge(&n.cache.Position, edge, v)
}

// Position returns the literal inset value stored for an edge key.
func (n *Node) Position(edge style.Edge) style.Value {
	return n.cache.Position.Get(edge)
}

// SetPositionType sets the positioning mode. Static is stored canonically;
// it is lowered as relative with inset offsets suppressed, since the
// engine has no static mode.
func (n *Node) SetPositionType(p style.PositionType) {
	if n.cache.PositionType == p {
		return
	}
	n.cache.PositionType = p
	n.markDirty()
}

// PositionType returns the stored positioning mode.
func (n *Node) PositionType() style.PositionType {
	return n.cache.PositionType
}

// SetDirection sets the requested writing direction. An explicit
// non-inherit assignment also becomes the authoritative direction for
// logical-edge resolution until the next layout pass overwrites it.
func (n *Node) SetDirection(d style.Direction) {
	if n.cache.Direction == d {
		return
	}
	n.cache.Direction = d
	if d != style.DirectionInherit {
		n.cache.ResolvedDirection = d
	}
	n.markDirty()
}

// Direction returns the requested writing direction.
func (n *Node) Direction() style.Direction {
	return n.cache.Direction
}

// ResolvedDirection returns the writing direction the last layout pass (or
// explicit direction assignment) resolved for this node.
func (n *Node) ResolvedDirection() style.Direction {
	return n.cache.ResolvedDirection
}

// SetFlexDirection sets the canonical main axis. The canonical value is
// what getters observe even while a right-to-left pass temporarily mirrors
// the live engine style.
func (n *Node) SetFlexDirection(d style.FlexDirection) {
	if n.cache.FlexDirection == d {
		return
	}
	n.cache.FlexDirection = d
	n.markDirty()
}

// FlexDirection returns the canonical main axis.
func (n *Node) FlexDirection() style.FlexDirection {
	return n.cache.FlexDirection
}

// SetBoxSizing sets how declared dimensions relate to padding and border.
func (n *Node) SetBoxSizing(b style.BoxSizing) {
	if n.cache.BoxSizing == b {
		return
	}
	n.cache.BoxSizing = b
	n.markDirty()
}

// BoxSizing returns the stored box sizing mode.
func (n *Node) BoxSizing() style.BoxSizing {
	return n.cache.BoxSizing
}

// SetJustifyContent sets main-axis distribution.
func (n *Node) SetJustifyContent(j style.Justify) {
	if n.cache.JustifyContent == j {
		return
	}
	n.cache.JustifyContent = j
	n.markDirty()
}

// JustifyContent returns the main-axis distribution.
func (n *Node) JustifyContent() style.Justify {
	return n.cache.JustifyContent
}

// SetAlignItems sets the default cross-axis alignment of children.
func (n *Node) SetAlignItems(a style.Align) {
	if n.cache.AlignItems == a {
		return
	}
	n.cache.AlignItems = a
	n.markDirty()
}

// AlignItems returns the default cross-axis alignment of children.
func (n *Node) AlignItems() style.Align {
	return n.cache.AlignItems
}

// SetAlignSelf overrides this node's own cross-axis alignment.
func (n *Node) SetAlignSelf(a style.Align) {
	if n.cache.AlignSelf == a {
		return
	}
	n.cache.AlignSelf = a
	n.markDirty()
}

// AlignSelf returns this node's own cross-axis alignment override.
func (n *Node) AlignSelf() style.Align {
	return n.cache.AlignSelf
}

// SetAlignContent sets multi-line cross-axis distribution.
func (n *Node) SetAlignContent(a style.Align) {
	if n.cache.AlignContent == a {
		return
	}
	n.cache.AlignContent = a
	n.markDirty()
}

// AlignContent returns the multi-line cross-axis distribution.
func (n *Node) AlignContent() style.Align {
	return n.cache.AlignContent
}

// SetFlexWrap sets the wrap mode.
func (n *Node) SetFlexWrap(w style.Wrap) {
	if n.cache.FlexWrap == w {
		return
	}
	n.cache.FlexWrap = w
	n.markDirty()
}

// FlexWrap returns the wrap mode.
func (n *Node) FlexWrap() style.Wrap {
	return n.cache.FlexWrap
}

// SetOverflow sets the overflow mode.
func (n *Node) SetOverflow(o style.Overflow) {
	if n.cache.Overflow == o {
		return
	}
	n.cache.Overflow = o
	n.markDirty()
}

// Overflow returns the overflow mode.
func (n *Node) Overflow() style.Overflow {
	return n.cache.Overflow
}

// SetDisplay sets whether the node participates in layout.
func (n *Node) SetDisplay(d style.Display) {
	if n.cache.Display == d {
		return
	}
	n.cache.Display = d
	n.markDirty()
}

// Display returns the display mode.
func (n *Node) Display() style.Display {
	return n.cache.Display
}

// setFloat stores a plain numeric style field, dirtying on change. NaN
// marks the field unset; writing NaN over NaN is not a change.
func (n *Node) setFloat(dst *float64, v float64) {
	if *dst == v || (math.IsNaN(*dst) && math.IsNaN(v)) {
		return
	}
	*dst = v
	n.markDirty()
}

// SetFlex sets the flex shorthand. NaN clears it.
func (n *Node) SetFlex(v float64) {
	n.setFloat(&n.cache.Flex, v)
}

// Flex returns the flex shorthand, or NaN when unset.
func (n *Node) Flex() float64 {
	return n.cache.Flex
}

// SetFlexGrow sets the grow factor. NaN clears it.
func (n *Node) SetFlexGrow(v float64) {
	n.setFloat(&n.cache.FlexGrow, v)
}

// FlexGrow returns the grow factor, or NaN when unset.
func (n *Node) FlexGrow() float64 {
	return n.cache.FlexGrow
}

// SetFlexShrink sets the shrink factor. NaN clears it.
func (n *Node) SetFlexShrink(v float64) {
	n.setFloat(&n.cache.FlexShrink, v)
}

// FlexShrink returns the shrink factor, or NaN when unset.
func (n *Node) FlexShrink() float64 {
	return n.cache.FlexShrink
}

// SetFlexBasis sets the flex basis.
func (n *Node) SetFlexBasis(v style.Value) {
	if n.cache.FlexBasis.Equal(v) {
		return
	}
	n.cache.FlexBasis = v
	n.markDirty()
}

// FlexBasis returns the flex basis.
func (n *Node) FlexBasis() style.Value {
	return n.cache.FlexBasis
}

// SetAspectRatio sets the width/height aspect ratio. NaN clears it.
func (n *Node) SetAspectRatio(v float64) {
	n.setFloat(&n.cache.AspectRatio, v)
}

// AspectRatio returns the aspect ratio, or NaN when unset.
func (n *Node) AspectRatio() float64 {
	return n.cache.AspectRatio
}

// setDimension stores a dimension value, dirtying on change.
func (n *Node) setDimension(dst *style.Value, v style.Value) {
	if dst.Equal(v) {
		return
	}
	*dst = v
	n.markDirty()
}

// SetWidth sets the declared width.
func (n *Node) SetWidth(v style.Value) {
	n.setDimension(&n.cache.Width, v)
}

// Width returns the declared width.
func (n *Node) Width() style.Value {
	return n.cache.Width
}

// SetHeight sets the declared height.
func (n *Node) SetHeight(v style.Value) {
	n.setDimension(&n.cache.Height, v)
}

// Height returns the declared height.
func (n *Node) Height() style.Value {
	return n.cache.Height
}

// SetMinWidth sets the minimum width.
func (n *Node) SetMinWidth(v style.Value) {
	n.setDimension(&n.cache.MinWidth, v)
}

// MinWidth returns the minimum width.
func (n *Node) MinWidth() style.Value {
	return n.cache.MinWidth
}

// SetMinHeight sets the minimum height.
func (n *Node) SetMinHeight(v style.Value) {
	n.setDimension(&n.cache.MinHeight, v)
}

// MinHeight returns the minimum height.
func (n *Node) MinHeight() style.Value {
	return n.cache.MinHeight
}

// SetMaxWidth sets the maximum width.
func (n *Node) SetMaxWidth(v style.Value) {
	n.setDimension(&n.cache.MaxWidth, v)
}

// MaxWidth returns the maximum width.
func (n *Node) MaxWidth() style.Value {
	return n.cache.MaxWidth
}

// SetMaxHeight sets the maximum height.
func (n *Node) SetMaxHeight(v style.Value) {
	n.setDimension(&n.cache.MaxHeight, v)
}

// MaxHeight returns the maximum height.
func (n *Node) MaxHeight() style.Value {
	return n.cache.MaxHeight
}
