// Package flexnode exposes the layout-node compatibility API.
//
// A Node presents the older, richer layout surface (logical start/end
// edges, static positioning, baseline overrides, dirtied callbacks) while
// box computation is delegated to the embedded flexbox engine, which knows
// only physical edges and left-to-right order. The package keeps a shadow
// tree (parent back-references and ordered child lists) in lockstep with
// the engine tree, resolves logical edges against a writing direction
// before every computation, and emulates right-to-left layout by mirroring
// Row and RowReverse around the engine call.
//
// Everything here is single-threaded by contract: no operation may run
// concurrently with another on the same Config, and geometry must not be
// read while a layout pass is in flight.
package flexnode

import (
	"github.com/go-flexkit/flexkit/pkg/engine"
	"github.com/go-flexkit/flexkit/pkg/geometry"
	"github.com/go-flexkit/flexkit/pkg/style"
)

// Errata is a bitmask of compatibility quirks callers can opt into.
// Only ErrataStretchFlexBasis changes engine behavior; the remaining bits
// are stored so configurations written against the richer API keep working.
type Errata uint32

const (
	// ErrataNone applies current engine behavior throughout.
	ErrataNone Errata = 0
	// ErrataStretchFlexBasis restores the legacy stretched flex-basis
	// sizing for layouts built against it.
	ErrataStretchFlexBasis Errata = 1 << 0
	// ErrataAbsolutePercentAgainstInnerSize is accepted for call
	// compatibility; the engine already resolves absolute percentages the
	// legacy way.
	ErrataAbsolutePercentAgainstInnerSize Errata = 1 << 1
	// ErrataAll opts into every known quirk.
	ErrataAll Errata = ErrataStretchFlexBasis | ErrataAbsolutePercentAgainstInnerSize
)

// Config owns one engine tree and the registry of nodes created under it.
// All nodes created from the same Config share that tree. Destroying a
// Config invalidates every node created under it.
type Config struct {
	tree   *engine.Tree
	nodes  map[engine.Handle]*Node
	errata Errata
}

// NewConfig creates a Config with its own engine tree.
func NewConfig() *Config {
	c := &Config{
		tree:  engine.NewTree(engine.Options{}),
		nodes: make(map[engine.Handle]*Node),
	}
	c.tree.SetMeasureDispatch(c.dispatchMeasure)
	return c
}

// SetUseWebDefaults switches nodes created from now on to browser flexbox
// defaults (row main axis, stretched lines). Existing nodes are unaffected.
func (c *Config) SetUseWebDefaults(enabled bool) {
	c.tree.SetUseWebDefaults(enabled)
}

// UseWebDefaults reports whether new nodes get browser flexbox defaults.
func (c *Config) UseWebDefaults() bool {
	return c.tree.UseWebDefaults()
}

// SetErrata selects the compatibility quirks applied by this Config's tree.
func (c *Config) SetErrata(e Errata) {
	c.errata = e
	c.tree.SetLegacyStretchBehaviour(e&ErrataStretchFlexBasis != 0)
}

// Errata returns the currently selected compatibility quirks.
func (c *Config) Errata() Errata {
	return c.errata
}

// Lookup resolves the node wrapper for an engine handle. Registry
// membership tracks engine-tree membership exactly: Lookup returns the
// same object for a node's entire lifetime, and fails (returns nil) for
// handles of freed nodes.
func (c *Config) Lookup(h engine.Handle) *Node {
	return c.nodes[h]
}

// NodeCount returns the number of live nodes registered under this Config.
func (c *Config) NodeCount() int {
	return len(c.nodes)
}

// Destroy frees every node created under this Config and releases the
// engine tree. All nodes created under it become invalid.
func (c *Config) Destroy() {
	for h := range c.nodes {
		c.tree.Release(h)
	}
	c.nodes = make(map[engine.Handle]*Node)
}

// dispatchMeasure routes an engine measurement request for an unmeasured
// leaf back to the registered wrapper's measurement function.
func (c *Config) dispatchMeasure(h engine.Handle, width float64, widthMode style.MeasureMode, height float64, heightMode style.MeasureMode) geometry.Size {
	n := c.Lookup(h)
	if n == nil || n.measure == nil {
		return geometry.Size{}
	}
	return n.measure(width, widthMode, height, heightMode)
}
