package flexnode

import (
	"math"

	"github.com/go-flexkit/flexkit/pkg/engine"
	"github.com/go-flexkit/flexkit/pkg/errors"
	"github.com/go-flexkit/flexkit/pkg/geometry"
	"github.com/go-flexkit/flexkit/pkg/style"
)

// Unconstrained is passed as an available dimension to request
// content-driven sizing with no upper bound on that axis.
var Unconstrained = math.NaN()

// CalculateLayout runs one synchronous layout pass over the subtree rooted
// at n.
//
// The pass resolves the effective writing direction (explicit argument,
// then the root's own declared direction, then left-to-right), writes it
// into every visited node, re-resolves each node's physical style under it,
// and computes geometry through the engine. Right-to-left layout is
// emulated by temporarily mirroring Row and RowReverse on affected nodes:
// the engine computes main-axis order assuming left-to-right, so flipping
// the declared axis before the computation and undoing it afterwards
// reproduces right-to-left placement purely through input mutation. The
// mirror is undone even when the computation fails, so no outcome leaves
// the tree in a mirrored state.
//
// On success every visited node is marked as having new layout and clean.
func (n *Node) CalculateLayout(availableWidth, availableHeight float64, direction style.Direction) error {
	dir := direction
	if dir == style.DirectionInherit {
		dir = n.cache.Direction
	}
	if dir == style.DirectionInherit {
		dir = style.DirectionLTR
	}

	var mirrored []*Node
	n.resolveSubtree(dir, &mirrored)
	defer func() {
		for _, m := range mirrored {
			m.config.tree.SetFlexDirection(m.handle, m.cache.FlexDirection)
		}
	}()

	if err := n.config.tree.Compute(n.handle, availableWidth, availableHeight); err != nil {
		if e, ok := err.(*errors.Error); ok {
			errors.Report(e)
		}
		return err
	}

	n.completeLayout()
	return nil
}

// resolveSubtree walks the subtree top-down, recording the resolved
// writing direction on each node, lowering its canonical style to the
// engine under that direction, and mirroring the main axis of
// right-to-left Row/RowReverse nodes. A child with its own declared
// direction overrides the one propagated to it; a child storing inherit
// takes the propagated direction, not its own stale resolved value.
func (n *Node) resolveSubtree(resolved style.Direction, mirrored *[]*Node) {
	n.cache.ResolvedDirection = resolved
	n.config.tree.ApplyStyle(n.handle, n.lowerStyle(resolved))

	if resolved == style.DirectionRTL {
		if flipped := n.cache.FlexDirection.Mirror(); flipped != n.cache.FlexDirection {
			n.config.tree.SetFlexDirection(n.handle, flipped)
			*mirrored = append(*mirrored, n)
		}
	}

	for _, c := range n.children {
		childDir := resolved
		if c.cache.Direction != style.DirectionInherit {
			childDir = c.cache.Direction
		}
		c.resolveSubtree(childDir, mirrored)
	}
}

// completeLayout marks the whole subtree as freshly laid out and clean.
func (n *Node) completeLayout() {
	n.hasNewLayout = true
	n.dirty = false
	for _, c := range n.children {
		c.completeLayout()
	}
}

// lowerStyle translates the canonical cache into the engine's physical
// style surface under a resolved writing direction.
func (n *Node) lowerStyle(direction style.Direction) engine.NodeStyle {
	c := &n.cache
	ns := engine.NodeStyle{
		Display:        c.Display,
		Overflow:       c.Overflow,
		Absolute:       c.PositionType == style.PositionTypeAbsolute,
		FlexDirection:  c.FlexDirection,
		JustifyContent: c.JustifyContent,
		AlignItems:     c.AlignItems,
		AlignSelf:      c.AlignSelf,
		AlignContent:   c.AlignContent,
		FlexWrap:       c.FlexWrap,
		Flex:           c.Flex,
		FlexGrow:       c.FlexGrow,
		FlexShrink:     c.FlexShrink,
		FlexBasis:      c.FlexBasis,
		Width:          c.Width,
		Height:         c.Height,
		MinWidth:       c.MinWidth,
		MinHeight:      c.MinHeight,
		MaxWidth:       c.MaxWidth,
		MaxHeight:      c.MaxHeight,
		AspectRatio:    c.AspectRatio,
		Margin:         style.ResolveMargin(c.Margin, direction),
		Padding:        style.ResolvePadding(c.Padding, direction),
		Border:         style.ResolveBorder(c.Border, direction),
		Inset:          style.ResolveInset(c.Position, direction),
	}

	// A static box is laid out in normal flow, ignoring inset offsets.
	if c.PositionType == style.PositionTypeStatic {
		ns.Inset = style.Physical{}
	}

	if c.BoxSizing == style.BoxSizingContentBox {
		hExtra := pointAmount(ns.Padding.Left) + pointAmount(ns.Padding.Right) +
			pointAmount(ns.Border.Left) + pointAmount(ns.Border.Right)
		vExtra := pointAmount(ns.Padding.Top) + pointAmount(ns.Padding.Bottom) +
			pointAmount(ns.Border.Top) + pointAmount(ns.Border.Bottom)
		ns.Width = growPoint(ns.Width, hExtra)
		ns.MinWidth = growPoint(ns.MinWidth, hExtra)
		ns.MaxWidth = growPoint(ns.MaxWidth, hExtra)
		ns.Height = growPoint(ns.Height, vExtra)
		ns.MinHeight = growPoint(ns.MinHeight, vExtra)
		ns.MaxHeight = growPoint(ns.MaxHeight, vExtra)
	}

	return ns
}

// pointAmount returns the definite length of a resolved side, or zero for
// percentages and auto, which cannot be folded into a content-box
// adjustment before layout.
func pointAmount(v style.Value) float64 {
	if v.Unit == style.UnitPoint {
		return v.Amount
	}
	return 0
}

// growPoint widens a definite dimension by the content-box extra.
func growPoint(v style.Value, extra float64) style.Value {
	if v.Unit == style.UnitPoint && extra != 0 {
		return style.Point(v.Amount + extra)
	}
	return v
}

// LayoutLeft returns the computed left offset relative to the parent.
// Geometry accessors are only meaningful after at least one completed pass.
func (n *Node) LayoutLeft() float64 {
	return n.config.tree.Geometry(n.handle).Left
}

// LayoutTop returns the computed top offset relative to the parent.
func (n *Node) LayoutTop() float64 {
	return n.config.tree.Geometry(n.handle).Top
}

// LayoutWidth returns the computed width.
func (n *Node) LayoutWidth() float64 {
	return n.config.tree.Geometry(n.handle).Width()
}

// LayoutHeight returns the computed height.
func (n *Node) LayoutHeight() float64 {
	return n.config.tree.Geometry(n.handle).Height()
}

// LayoutRight returns left+width; it is derived, never stored.
func (n *Node) LayoutRight() float64 {
	return n.config.tree.Geometry(n.handle).Right
}

// LayoutBottom returns top+height; it is derived, never stored.
func (n *Node) LayoutBottom() float64 {
	return n.config.tree.Geometry(n.handle).Bottom
}

// LayoutRect returns the computed box relative to the parent.
func (n *Node) LayoutRect() geometry.Rect {
	return n.config.tree.Geometry(n.handle)
}

// LayoutMargin returns the margin the last pass computed for an edge.
// Start and End resolve against the node's last resolved direction.
func (n *Node) LayoutMargin(edge style.Edge) float64 {
	return n.config.tree.ComputedMargin(n.handle, n.physicalEdge(edge))
}

// LayoutPadding returns the padding the last pass computed for an edge.
func (n *Node) LayoutPadding(edge style.Edge) float64 {
	return n.config.tree.ComputedPadding(n.handle, n.physicalEdge(edge))
}

// LayoutBorder returns the border the last pass computed for an edge.
func (n *Node) LayoutBorder(edge style.Edge) float64 {
	return n.config.tree.ComputedBorder(n.handle, n.physicalEdge(edge))
}

// HadOverflow reports whether the last pass overflowed this node.
func (n *Node) HadOverflow() bool {
	return n.config.tree.HadOverflow(n.handle)
}

// physicalEdge maps Start and End onto the physical side they resolved to
// in the last pass; physical edges pass through unchanged.
func (n *Node) physicalEdge(edge style.Edge) style.Edge {
	rtl := n.cache.ResolvedDirection == style.DirectionRTL
	switch edge {
	case style.EdgeStart:
		if rtl {
			return style.EdgeRight
		}
		return style.EdgeLeft
	case style.EdgeEnd:
		if rtl {
			return style.EdgeLeft
		}
		return style.EdgeRight
	default:
		return edge
	}
}
