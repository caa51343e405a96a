package flexnode

import (
	"github.com/go-flexkit/flexkit/pkg/engine"
	"github.com/go-flexkit/flexkit/pkg/errors"
	"github.com/go-flexkit/flexkit/pkg/geometry"
	"github.com/go-flexkit/flexkit/pkg/style"
)

// MeasureFunc computes the content size of a measured leaf. Each mode
// describes the constraint on its axis; the returned dimensions must be
// concrete and non-negative (negative values are clamped to zero).
type MeasureFunc func(availableWidth float64, widthMode style.MeasureMode, availableHeight float64, heightMode style.MeasureMode) geometry.Size

// DirtiedFunc is invoked when a node transitions from clean to dirty.
type DirtiedFunc func(n *Node)

// BaselineFunc is accepted for call compatibility only; see SetBaselineFunc.
type BaselineFunc func(width, height float64) float64

// Node is one layout node. It owns an engine handle, the canonical style
// cache, and a shadow position in the tree (parent back-reference plus
// ordered child list) that mirrors the engine tree exactly.
//
// Callers rely on reference equality: the *Node returned at creation is
// the one the registry resolves for its handle for the node's whole
// lifetime. A Node must not be used after Free.
type Node struct {
	config *Config
	handle engine.Handle

	parent   *Node
	children []*Node

	cache style.Cache

	measure MeasureFunc
	dirtied DirtiedFunc
	context any

	dirty        bool
	hasNewLayout bool

	// Stored for call compatibility; never lowered to the engine.
	referenceBaseline          bool
	alwaysFormsContainingBlock bool
}

// New creates a node under the given Config, allocating an engine leaf and
// registering the wrapper for it.
func New(config *Config) *Node {
	h := config.tree.NewNode()
	n := &Node{
		config:       config,
		handle:       h,
		cache:        style.Default(config.UseWebDefaults()),
		hasNewLayout: true,
	}
	config.nodes[h] = n
	return n
}

// Config returns the Config this node was created under.
func (n *Node) Config() *Config {
	return n.config
}

// Handle returns the engine handle backing this node.
func (n *Node) Handle() engine.Handle {
	return n.handle
}

// Parent returns the node's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at the given index, or nil when out of range.
func (n *Node) Child(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// Children returns a copy of the ordered child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Context returns the caller-attached value.
func (n *Node) Context() any {
	return n.context
}

// SetContext attaches an arbitrary caller value to the node.
func (n *Node) SetContext(v any) {
	n.context = v
}

// InsertChild attaches child at the given index. The engine tree is
// mutated first, then the shadow child list and the parent back-reference.
// The child must be unparented and belong to the same Config.
func (n *Node) InsertChild(child *Node, index int) error {
	const op = "flexnode.InsertChild"
	if child == nil {
		return errors.New(op, errors.KindTree, "nil child")
	}
	if child.config != n.config {
		return errors.New(op, errors.KindTree, "child belongs to a different config")
	}
	if child.parent != nil {
		return errors.New(op, errors.KindTree, "child already has a parent; remove it first")
	}
	if n.measure != nil {
		return errors.New(op, errors.KindTree, "measured leaves cannot have children")
	}
	if index < 0 || index > len(n.children) {
		return errors.New(op, errors.KindTree, "child index %d out of range [0,%d]", index, len(n.children))
	}
	if err := n.config.tree.InsertChild(n.handle, child.handle, index); err != nil {
		return err
	}
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	child.parent = n
	n.markDirty()
	return nil
}

// AddChild appends child after the existing children.
func (n *Node) AddChild(child *Node) error {
	return n.InsertChild(child, len(n.children))
}

// RemoveChild detaches child from this node, clearing its parent
// back-reference. Grandchildren are untouched. Removing a node that is not
// a child is a no-op.
func (n *Node) RemoveChild(child *Node) {
	idx := -1
	for i, c := range n.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	n.config.tree.RemoveChild(n.handle, child.handle)
	n.children = append(n.children[:idx], n.children[idx+1:]...)
	child.parent = nil
	n.markDirty()
}

// RemoveAllChildren detaches every child.
func (n *Node) RemoveAllChildren() {
	for len(n.children) > 0 {
		n.RemoveChild(n.children[len(n.children)-1])
	}
}

// Free detaches the node from its parent and removes it from the engine
// tree and the registry. Children are untouched; freeing them first (or
// using FreeRecursive) is the caller's responsibility. The node must not
// be used afterwards.
func (n *Node) Free() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
	delete(n.config.nodes, n.handle)
	n.config.tree.Release(n.handle)
}

// FreeRecursive frees all descendants depth-first, then the node itself.
func (n *Node) FreeRecursive() {
	for len(n.children) > 0 {
		n.children[len(n.children)-1].FreeRecursive()
	}
	n.Free()
}

// Reset returns the node to its default canonical state: children are
// detached, style and callbacks are cleared, and compatibility flags are
// dropped. The node itself stays attached to its parent and keeps its
// handle and registry entry.
func (n *Node) Reset() {
	n.RemoveAllChildren()
	n.cache = style.Default(n.config.UseWebDefaults())
	if n.measure != nil {
		n.measure = nil
		_ = n.config.tree.SetMeasured(n.handle, false)
	}
	n.dirtied = nil
	n.context = nil
	n.referenceBaseline = false
	n.alwaysFormsContainingBlock = false
	n.markDirty()
}

// SetMeasureFunc installs (or clears, with nil) the measurement callback
// making this node a measured leaf. Nodes with children cannot be measured.
func (n *Node) SetMeasureFunc(f MeasureFunc) error {
	if f != nil && len(n.children) > 0 {
		return errors.New("flexnode.SetMeasureFunc", errors.KindTree, "nodes with children cannot be measured leaves")
	}
	if err := n.config.tree.SetMeasured(n.handle, f != nil); err != nil {
		return err
	}
	n.measure = f
	n.config.tree.MarkContentDirty(n.handle)
	n.markDirty()
	return nil
}

// HasMeasureFunc reports whether a measurement callback is installed.
func (n *Node) HasMeasureFunc() bool {
	return n.measure != nil
}

// SetDirtiedFunc installs (or clears, with nil) the callback invoked on
// this node's clean-to-dirty transitions.
func (n *Node) SetDirtiedFunc(f DirtiedFunc) {
	n.dirtied = f
}

// SetBaselineFunc is accepted as a no-op: the engine has no custom
// baseline hook, so callers observe its built-in first-child baseline
// behavior instead.
func (n *Node) SetBaselineFunc(f BaselineFunc) {
	_ = f
}

// SetIsReferenceBaseline stores the baseline-reference override flag. The
// flag is kept for call compatibility only and never reaches the engine.
func (n *Node) SetIsReferenceBaseline(v bool) {
	n.referenceBaseline = v
}

// IsReferenceBaseline returns the stored baseline-reference override flag.
func (n *Node) IsReferenceBaseline() bool {
	return n.referenceBaseline
}

// SetAlwaysFormsContainingBlock is accepted as a no-op beyond storing the
// flag; the engine forms containing blocks by its own rules.
func (n *Node) SetAlwaysFormsContainingBlock(v bool) {
	n.alwaysFormsContainingBlock = v
}

// AlwaysFormsContainingBlock returns the stored containing-block flag.
func (n *Node) AlwaysFormsContainingBlock() bool {
	return n.alwaysFormsContainingBlock
}

// CopyStyle replaces this node's canonical style with a copy of src's.
func (n *Node) CopyStyle(src *Node) {
	if src == nil || src == n {
		return
	}
	resolved := n.cache.ResolvedDirection
	n.cache = src.cache
	n.cache.ResolvedDirection = resolved
	n.markDirty()
}
