package flexnode

// Dirty bookkeeping. A node is either clean or dirty; no other
// layout-readiness state is tracked. Any style-affecting mutation runs the
// clean-to-dirty transition on the mutated node and propagates it upward.
// Only a completed layout pass clears dirty state, in bulk, for every node
// it visits.

// IsDirty reports whether the node has changed since the last completed
// layout pass over it.
func (n *Node) IsDirty() bool {
	return n.dirty
}

// MarkDirty explicitly dirties a measured leaf whose content changed in a
// way the engine cannot observe from style. On any node without a
// measurement callback this is a no-op: style-driven changes dirty nodes
// on their own.
func (n *Node) MarkDirty() {
	if n.measure == nil {
		return
	}
	n.config.tree.MarkContentDirty(n.handle)
	n.markDirty()
}

// markDirty runs the clean-to-dirty transition for this node as the origin
// of a change. The origin's own dirtied callback fires only for measured
// leaves; the transition then propagates to every clean ancestor, whose
// callbacks fire unconditionally on their own clean-to-dirty edge. A node
// that is already dirty fires nothing and stops nothing: its ancestors are
// already dirty by induction.
func (n *Node) markDirty() {
	if n.dirty {
		return
	}
	n.dirty = true
	if n.measure != nil && n.dirtied != nil {
		n.dirtied(n)
	}
	for a := n.parent; a != nil && !a.dirty; a = a.parent {
		a.dirty = true
		if a.dirtied != nil {
			a.dirtied(a)
		}
	}
}

// HasNewLayout reports whether a layout pass has produced fresh geometry
// the caller has not acknowledged yet.
func (n *Node) HasNewLayout() bool {
	return n.hasNewLayout
}

// MarkLayoutSeen acknowledges the node's current geometry. Acknowledging
// twice with no pass in between is a no-op.
func (n *Node) MarkLayoutSeen() {
	n.hasNewLayout = false
}
