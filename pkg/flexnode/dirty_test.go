package flexnode

import (
	"testing"

	"github.com/go-flexkit/flexkit/pkg/geometry"
	"github.com/go-flexkit/flexkit/pkg/style"
)

func fixedMeasure(w, h float64) MeasureFunc {
	return func(availW float64, wm style.MeasureMode, availH float64, hm style.MeasureMode) geometry.Size {
		return geometry.Size{Width: w, Height: h}
	}
}

func TestNode_NewNode_IsClean(t *testing.T) {
	cfg := NewConfig()
	n := New(cfg)

	if n.IsDirty() {
		t.Error("a fresh node should not be dirty")
	}
	if !n.HasNewLayout() {
		t.Error("a fresh node should report hasNewLayout")
	}
}

func TestNode_StyleMutation_DirtiesOnce(t *testing.T) {
	cfg := NewConfig()
	leaf := New(cfg)
	if err := leaf.SetMeasureFunc(fixedMeasure(10, 10)); err != nil {
		t.Fatalf("SetMeasureFunc: %v", err)
	}

	// Clean the node first; SetMeasureFunc itself dirties it.
	if err := leaf.CalculateLayout(100, 100, style.DirectionLTR); err != nil {
		t.Fatalf("CalculateLayout: %v", err)
	}
	if leaf.IsDirty() {
		t.Fatal("node should be clean after a completed layout pass")
	}

	fired := 0
	leaf.SetDirtiedFunc(func(*Node) { fired++ })

	leaf.SetWidth(style.Point(50))
	leaf.SetHeight(style.Point(50))

	if fired != 1 {
		t.Errorf("dirtied callback fired %d times, want 1", fired)
	}
	if !leaf.IsDirty() {
		t.Error("node should be dirty after a style mutation")
	}
}

func TestNode_StyleMutation_NoChangeDoesNotDirty(t *testing.T) {
	cfg := NewConfig()
	n := New(cfg)
	n.SetWidth(style.Point(40))
	if err := n.CalculateLayout(100, 100, style.DirectionLTR); err != nil {
		t.Fatalf("CalculateLayout: %v", err)
	}

	n.SetWidth(style.Point(40))
	if n.IsDirty() {
		t.Error("setting an identical value should not dirty the node")
	}
}

func TestNode_Dirty_PropagatesToAncestors(t *testing.T) {
	cfg := NewConfig()
	root := New(cfg)
	mid := New(cfg)
	leaf := New(cfg)
	if err := root.AddChild(mid); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := mid.AddChild(leaf); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := root.CalculateLayout(100, 100, style.DirectionLTR); err != nil {
		t.Fatalf("CalculateLayout: %v", err)
	}

	rootFired := 0
	midFired := 0
	leafFired := 0
	root.SetDirtiedFunc(func(*Node) { rootFired++ })
	mid.SetDirtiedFunc(func(*Node) { midFired++ })
	leaf.SetDirtiedFunc(func(*Node) { leafFired++ })

	leaf.SetWidth(style.Point(10))

	if !leaf.IsDirty() || !mid.IsDirty() || !root.IsDirty() {
		t.Fatal("dirtiness should propagate up to the root")
	}
	// The originating node has no measure func, so its own callback
	// stays silent; ancestors fire on their own clean-to-dirty edge.
	if leafFired != 0 {
		t.Errorf("leaf callback fired %d times, want 0 (no measure func)", leafFired)
	}
	if midFired != 1 {
		t.Errorf("mid callback fired %d times, want 1", midFired)
	}
	if rootFired != 1 {
		t.Errorf("root callback fired %d times, want 1", rootFired)
	}

	// Already-dirty ancestors do not fire again.
	leaf.SetHeight(style.Point(10))
	if midFired != 1 || rootFired != 1 {
		t.Errorf("callbacks refired on an already-dirty chain: mid=%d root=%d", midFired, rootFired)
	}
}

func TestNode_MarkDirty_RequiresMeasureFunc(t *testing.T) {
	cfg := NewConfig()
	root := New(cfg)
	plain := New(cfg)
	if err := root.AddChild(plain); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := root.CalculateLayout(100, 100, style.DirectionLTR); err != nil {
		t.Fatalf("CalculateLayout: %v", err)
	}

	plain.MarkDirty()
	if plain.IsDirty() || root.IsDirty() {
		t.Error("MarkDirty on a node without a measure func should be a no-op")
	}

	measured := New(cfg)
	if err := measured.SetMeasureFunc(fixedMeasure(5, 5)); err != nil {
		t.Fatalf("SetMeasureFunc: %v", err)
	}
	if err := root.AddChild(measured); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := root.CalculateLayout(100, 100, style.DirectionLTR); err != nil {
		t.Fatalf("CalculateLayout: %v", err)
	}

	measured.MarkDirty()
	if !measured.IsDirty() {
		t.Error("MarkDirty on a measured node should dirty it")
	}
	if !root.IsDirty() {
		t.Error("MarkDirty should propagate to ancestors")
	}
}

func TestNode_LayoutPass_CleansSubtree(t *testing.T) {
	cfg := NewConfig()
	root := New(cfg)
	child := New(cfg)
	if err := root.AddChild(child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	child.SetWidth(style.Point(10))

	if err := root.CalculateLayout(100, 100, style.DirectionLTR); err != nil {
		t.Fatalf("CalculateLayout: %v", err)
	}

	if root.IsDirty() || child.IsDirty() {
		t.Error("every visited node should be clean after the pass")
	}
	if !root.HasNewLayout() || !child.HasNewLayout() {
		t.Error("every visited node should report hasNewLayout after the pass")
	}
}

func TestNode_MarkLayoutSeen_IsIdempotent(t *testing.T) {
	cfg := NewConfig()
	n := New(cfg)
	if err := n.CalculateLayout(100, 100, style.DirectionLTR); err != nil {
		t.Fatalf("CalculateLayout: %v", err)
	}

	n.MarkLayoutSeen()
	if n.HasNewLayout() {
		t.Fatal("HasNewLayout should be false after MarkLayoutSeen")
	}
	n.MarkLayoutSeen()
	if n.HasNewLayout() {
		t.Fatal("repeated MarkLayoutSeen should stay false")
	}
	if n.IsDirty() {
		t.Error("MarkLayoutSeen must not touch the dirty flag")
	}
}

func TestNode_InsertChild_DirtiesParent(t *testing.T) {
	cfg := NewConfig()
	root := New(cfg)
	if err := root.CalculateLayout(100, 100, style.DirectionLTR); err != nil {
		t.Fatalf("CalculateLayout: %v", err)
	}

	fired := 0
	root.SetDirtiedFunc(func(*Node) { fired++ })

	child := New(cfg)
	if err := root.AddChild(child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if !root.IsDirty() {
		t.Error("inserting a child should dirty the parent")
	}
	// The parent is the originating node here and carries no measure
	// func, so its own callback stays silent.
	if fired != 0 {
		t.Errorf("parent dirtied callback fired %d times, want 0", fired)
	}
}
