// Package engine wraps the embedded flexbox engine behind a narrow,
// direction-agnostic facade.
//
// Nodes live in a slot arena keyed by integer Handle; callers above this
// package never hold engine node pointers. The facade accepts only fully
// physical styles (left/right/top/bottom, relative or absolute positioning)
// and always computes left-to-right: logical-edge resolution and
// right-to-left emulation are the caller's concern.
package engine

import (
	"math"

	"github.com/kjk/flex"

	"github.com/go-flexkit/flexkit/pkg/errors"
	"github.com/go-flexkit/flexkit/pkg/geometry"
	"github.com/go-flexkit/flexkit/pkg/style"
)

// Handle identifies one engine node within its owning Tree. A Handle packs
// an arena slot index with a generation counter, so a stale handle (used
// after release) fails to resolve instead of aliasing a recycled slot.
// The zero Handle is never valid.
type Handle uint64

func makeHandle(idx, gen uint32) Handle {
	return Handle(uint64(gen)<<32 | uint64(idx))
}

func (h Handle) split() (idx, gen uint32) {
	return uint32(h), uint32(h >> 32)
}

// IsValid reports whether the handle could ever have been issued.
func (h Handle) IsValid() bool {
	return h != 0
}

// MeasureDispatch resolves a measurement request for an unmeasured leaf
// during a layout computation. It receives the handle of the node being
// measured; the registry above this package maps it back to the caller's
// measurement function.
type MeasureDispatch func(h Handle, width float64, widthMode style.MeasureMode, height float64, heightMode style.MeasureMode) geometry.Size

// Options configures a Tree.
type Options struct {
	// UseWebDefaults makes freshly created nodes default to browser
	// flexbox behavior (row main axis, stretched lines, shrinkable items).
	UseWebDefaults bool
	// LegacyStretchBehaviour enables the engine's pre-correction stretch
	// sizing for compatibility with layouts built against it.
	LegacyStretchBehaviour bool
	// PointScaleFactor controls pixel-grid rounding; zero means 1.
	PointScaleFactor float64
}

type slot struct {
	node *flex.Node
	gen  uint32
}

// Tree owns one engine tree instance. It is not safe for concurrent use;
// single-writer access is a caller contract.
type Tree struct {
	cfg      *flex.Config
	slots    []slot
	free     []uint32
	dispatch MeasureDispatch
}

// NewTree creates an empty engine tree.
func NewTree(opts Options) *Tree {
	cfg := flex.NewConfig()
	cfg.UseWebDefaults = opts.UseWebDefaults
	cfg.UseLegacyStretchBehaviour = opts.LegacyStretchBehaviour
	if opts.PointScaleFactor > 0 {
		cfg.PointScaleFactor = float32(opts.PointScaleFactor)
	}
	return &Tree{cfg: cfg}
}

// SetUseWebDefaults changes the default style applied to nodes created from
// now on. Existing nodes keep the defaults they were created with.
func (t *Tree) SetUseWebDefaults(enabled bool) {
	t.cfg.UseWebDefaults = enabled
}

// UseWebDefaults reports the current node-creation default mode.
func (t *Tree) UseWebDefaults() bool {
	return t.cfg.UseWebDefaults
}

// SetLegacyStretchBehaviour toggles the engine's legacy stretch sizing.
func (t *Tree) SetLegacyStretchBehaviour(enabled bool) {
	t.cfg.UseLegacyStretchBehaviour = enabled
}

// SetMeasureDispatch installs the measurement resolver used for every
// measured leaf in this tree.
func (t *Tree) SetMeasureDispatch(d MeasureDispatch) {
	t.dispatch = d
}

// NewNode allocates a fresh engine leaf and returns its handle.
func (t *Tree) NewNode() Handle {
	n := flex.NewNodeWithConfig(t.cfg)
	var idx uint32
	if len(t.free) > 0 {
		idx = t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.slots[idx].node = n
	} else {
		// Slot 0 is reserved so the zero Handle stays invalid.
		if len(t.slots) == 0 {
			t.slots = append(t.slots, slot{gen: 1})
		}
		t.slots = append(t.slots, slot{node: n, gen: 1})
		idx = uint32(len(t.slots) - 1)
	}
	h := makeHandle(idx, t.slots[idx].gen)
	n.Context = h
	return h
}

// Release frees the engine node for a handle, detaching it from its parent
// first. Children of the node are left attached to it; releasing them is
// the caller's responsibility. The handle becomes permanently stale.
func (t *Tree) Release(h Handle) {
	n := t.node(h)
	if n == nil {
		return
	}
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	idx, _ := h.split()
	t.slots[idx].node = nil
	t.slots[idx].gen++
	t.free = append(t.free, idx)
}

// Contains reports whether a handle resolves to a live engine node.
func (t *Tree) Contains(h Handle) bool {
	return t.node(h) != nil
}

// Len returns the number of live nodes in the tree.
func (t *Tree) Len() int {
	count := 0
	for i := range t.slots {
		if t.slots[i].node != nil {
			count++
		}
	}
	return count
}

// node resolves a handle, returning nil for stale or unknown handles.
func (t *Tree) node(h Handle) *flex.Node {
	idx, gen := h.split()
	if idx == 0 || int(idx) >= len(t.slots) {
		return nil
	}
	s := &t.slots[idx]
	if s.gen != gen {
		return nil
	}
	return s.node
}

// InsertChild attaches child under parent at the given index.
func (t *Tree) InsertChild(parent, child Handle, index int) error {
	const op = "engine.InsertChild"
	p := t.node(parent)
	c := t.node(child)
	if p == nil || c == nil {
		return errors.New(op, errors.KindTree, "stale or unknown node handle")
	}
	if c.Parent != nil {
		return errors.New(op, errors.KindTree, "child already has a parent")
	}
	if p.Measure != nil {
		return errors.New(op, errors.KindTree, "measured leaves cannot have children")
	}
	if index < 0 || index > len(p.Children) {
		return errors.New(op, errors.KindTree, "child index %d out of range [0,%d]", index, len(p.Children))
	}
	p.InsertChild(c, index)
	return nil
}

// RemoveChild detaches child from parent. Grandchildren stay attached to
// the removed child. Removing a node that is not a child of parent is a
// no-op.
func (t *Tree) RemoveChild(parent, child Handle) {
	p := t.node(parent)
	c := t.node(child)
	if p == nil || c == nil {
		return
	}
	p.RemoveChild(c)
}

// ApplyStyle writes a complete physical style to a node. The engine does
// its own change detection: identical styles do not dirty the node.
func (t *Tree) ApplyStyle(h Handle, ns NodeStyle) {
	n := t.node(h)
	if n == nil {
		return
	}
	staged := flex.Node{Style: ns.toEngine(t.cfg)}
	flex.NodeCopyStyle(n, &staged)
}

// SetFlexDirection overwrites only the live main-axis direction of a node,
// dirtying it when the value changes. Used for temporary right-to-left
// mirroring and its restoration.
func (t *Tree) SetFlexDirection(h Handle, d style.FlexDirection) {
	n := t.node(h)
	if n == nil {
		return
	}
	converted := flexDirectionToEngine(d)
	if n.Style.FlexDirection == converted {
		return
	}
	staged := flex.Node{Style: n.Style}
	staged.Style.FlexDirection = converted
	flex.NodeCopyStyle(n, &staged)
}

// SetMeasured marks a node as a measured leaf (or clears the mark).
// Measurement requests are routed through the tree's MeasureDispatch.
func (t *Tree) SetMeasured(h Handle, measured bool) error {
	n := t.node(h)
	if n == nil {
		return errors.New("engine.SetMeasured", errors.KindTree, "stale or unknown node handle")
	}
	if !measured {
		n.SetMeasureFunc(nil)
		return nil
	}
	if len(n.Children) > 0 {
		return errors.New("engine.SetMeasured", errors.KindTree, "nodes with children cannot be measured leaves")
	}
	n.SetMeasureFunc(t.measure)
	return nil
}

// MarkContentDirty invalidates a measured leaf's cached measurements.
// Only measured leaves carry content the engine cannot observe from style;
// for any other node this is a no-op.
func (t *Tree) MarkContentDirty(h Handle) {
	n := t.node(h)
	if n == nil || n.Measure == nil {
		return
	}
	n.MarkDirty()
}

// measure adapts the engine's measurement callback to handle-based dispatch.
func (t *Tree) measure(n *flex.Node, width float32, widthMode flex.MeasureMode, height float32, heightMode flex.MeasureMode) flex.Size {
	h, _ := n.Context.(Handle)
	if t.dispatch == nil || !h.IsValid() {
		return flex.Size{}
	}
	size := t.dispatch(h, fromEngineFloat(width), measureModeFromEngine(widthMode), fromEngineFloat(height), measureModeFromEngine(heightMode))
	return flex.Size{
		Width:  float32(math.Max(size.Width, 0)),
		Height: float32(math.Max(size.Height, 0)),
	}
}

// Compute runs one layout computation for the subtree rooted at h.
// An undefined (NaN) available dimension means unconstrained content-driven
// sizing on that axis. The engine always computes left-to-right.
//
// The engine reports invariant violations by panicking; those are recovered
// here and surfaced as engine errors so a failed computation never unwinds
// through the caller.
func (t *Tree) Compute(h Handle, availableWidth, availableHeight float64) (err error) {
	n := t.node(h)
	if n == nil {
		return errors.New("engine.Compute", errors.KindEngine, "stale or unknown node handle")
	}
	defer func() {
		if r := recover(); r != nil {
			err = errors.New("engine.Compute", errors.KindEngine, "layout computation failed: %v", r)
		}
	}()
	flex.CalculateLayout(n, toEngineFloat(availableWidth), toEngineFloat(availableHeight), flex.DirectionLTR)
	return nil
}

// Geometry returns the computed box of a node, relative to its parent.
// Right and bottom are derived from left+width and top+height.
func (t *Tree) Geometry(h Handle) geometry.Rect {
	n := t.node(h)
	if n == nil {
		return geometry.Rect{}
	}
	return geometry.RectFromLTWH(
		fromEngineFloat(n.Layout.Position[flex.EdgeLeft]),
		fromEngineFloat(n.Layout.Position[flex.EdgeTop]),
		fromEngineFloat(n.Layout.Dimensions[flex.DimensionWidth]),
		fromEngineFloat(n.Layout.Dimensions[flex.DimensionHeight]),
	)
}

// ComputedMargin returns the physical margin the last computation used.
func (t *Tree) ComputedMargin(h Handle, edge style.Edge) float64 {
	return t.computedEdge(h, edge, func(n *flex.Node, e flex.Edge) float32 { return n.Layout.Margin[e] })
}

// ComputedPadding returns the physical padding the last computation used.
func (t *Tree) ComputedPadding(h Handle, edge style.Edge) float64 {
	return t.computedEdge(h, edge, func(n *flex.Node, e flex.Edge) float32 { return n.Layout.Padding[e] })
}

// ComputedBorder returns the physical border the last computation used.
func (t *Tree) ComputedBorder(h Handle, edge style.Edge) float64 {
	return t.computedEdge(h, edge, func(n *flex.Node, e flex.Edge) float32 { return n.Layout.Border[e] })
}

func (t *Tree) computedEdge(h Handle, edge style.Edge, get func(*flex.Node, flex.Edge) float32) float64 {
	n := t.node(h)
	if n == nil {
		return 0
	}
	e, ok := physicalEdgeToEngine(edge)
	if !ok {
		return 0
	}
	return fromEngineFloat(get(n, e))
}

// HadOverflow reports whether the last computation overflowed the node.
func (t *Tree) HadOverflow(h Handle) bool {
	n := t.node(h)
	return n != nil && n.Layout.HadOverflow
}
