package flexnode

import (
	"testing"

	"github.com/go-flexkit/flexkit/pkg/engine"
	"github.com/go-flexkit/flexkit/pkg/geometry"
	"github.com/go-flexkit/flexkit/pkg/style"
)

func newTestTree(t *testing.T, childCount int) (*Config, *Node, []*Node) {
	t.Helper()
	cfg := NewConfig()
	root := New(cfg)
	children := make([]*Node, 0, childCount)
	for i := 0; i < childCount; i++ {
		c := New(cfg)
		if err := root.AddChild(c); err != nil {
			t.Fatalf("AddChild(%d): %v", i, err)
		}
		children = append(children, c)
	}
	return cfg, root, children
}

func TestConfig_Lookup_ReturnsSameNode(t *testing.T) {
	cfg, root, children := newTestTree(t, 2)

	if got := cfg.Lookup(root.Handle()); got != root {
		t.Fatalf("Lookup(root) = %p, want %p", got, root)
	}
	for i, c := range children {
		if got := cfg.Lookup(c.Handle()); got != c {
			t.Fatalf("Lookup(child %d) = %p, want %p", i, got, c)
		}
	}
	if got := cfg.NodeCount(); got != 3 {
		t.Fatalf("NodeCount() = %d, want 3", got)
	}
}

func TestNode_InsertChild_Ordering(t *testing.T) {
	cfg := NewConfig()
	root := New(cfg)
	a := New(cfg)
	b := New(cfg)
	c := New(cfg)

	if err := root.InsertChild(a, 0); err != nil {
		t.Fatalf("insert a: %v", err)
	}
	if err := root.InsertChild(c, 1); err != nil {
		t.Fatalf("insert c: %v", err)
	}
	if err := root.InsertChild(b, 1); err != nil {
		t.Fatalf("insert b: %v", err)
	}

	want := []*Node{a, b, c}
	if root.ChildCount() != len(want) {
		t.Fatalf("ChildCount() = %d, want %d", root.ChildCount(), len(want))
	}
	for i, w := range want {
		if got := root.Child(i); got != w {
			t.Errorf("Child(%d) = %p, want %p", i, got, w)
		}
		if got := w.Parent(); got != root {
			t.Errorf("child %d Parent() = %p, want root", i, got)
		}
	}
}

func TestNode_InsertChild_Errors(t *testing.T) {
	cfg := NewConfig()
	root := New(cfg)
	child := New(cfg)

	if err := root.InsertChild(child, 5); err == nil {
		t.Error("InsertChild with out-of-range index should fail")
	}

	other := New(cfg)
	if err := other.AddChild(child); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := root.InsertChild(child, 0); err == nil {
		t.Error("InsertChild of an already-parented node should fail")
	}

	measured := New(cfg)
	err := measured.SetMeasureFunc(func(w float64, wm style.MeasureMode, h float64, hm style.MeasureMode) geometry.Size {
		return geometry.Size{Width: 1, Height: 1}
	})
	if err != nil {
		t.Fatalf("SetMeasureFunc: %v", err)
	}
	if err := measured.InsertChild(New(cfg), 0); err == nil {
		t.Error("InsertChild under a measured node should fail")
	}
}

func TestNode_SetMeasureFunc_RejectsParents(t *testing.T) {
	_, root, _ := newTestTree(t, 1)

	err := root.SetMeasureFunc(func(w float64, wm style.MeasureMode, h float64, hm style.MeasureMode) geometry.Size {
		return geometry.Size{}
	})
	if err == nil {
		t.Fatal("SetMeasureFunc on a node with children should fail")
	}
}

func TestNode_RemoveChild(t *testing.T) {
	_, root, children := newTestTree(t, 3)

	root.RemoveChild(children[1])
	if root.ChildCount() != 2 {
		t.Fatalf("ChildCount() = %d, want 2", root.ChildCount())
	}
	if root.Child(0) != children[0] || root.Child(1) != children[2] {
		t.Error("remaining children out of order after RemoveChild")
	}
	if children[1].Parent() != nil {
		t.Error("removed child still has a parent")
	}

	// Removing a node that is not a child is a no-op.
	stranger := New(root.Config())
	root.RemoveChild(stranger)
	if root.ChildCount() != 2 {
		t.Errorf("ChildCount() = %d after no-op remove, want 2", root.ChildCount())
	}
}

func TestNode_Free_LeavesChildrenAlive(t *testing.T) {
	cfg, root, children := newTestTree(t, 2)
	grandchild := New(cfg)
	if err := children[0].AddChild(grandchild); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	h := children[0].Handle()
	children[0].Free()

	if cfg.Lookup(h) != nil {
		t.Error("freed node still resolvable through its handle")
	}
	if root.ChildCount() != 1 {
		t.Errorf("ChildCount() = %d after Free, want 1", root.ChildCount())
	}
	if cfg.Lookup(grandchild.Handle()) != grandchild {
		t.Error("grandchild should survive its parent's Free")
	}
}

func TestNode_FreeRecursive_ReleasesSubtree(t *testing.T) {
	cfg, root, children := newTestTree(t, 2)
	grandchild := New(cfg)
	if err := children[0].AddChild(grandchild); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	hs := []engine.Handle{root.Handle(), children[0].Handle(), children[1].Handle(), grandchild.Handle()}
	root.FreeRecursive()

	if got := cfg.NodeCount(); got != 0 {
		t.Fatalf("NodeCount() = %d after FreeRecursive, want 0", got)
	}
	for i, h := range hs {
		if cfg.Lookup(h) != nil {
			t.Errorf("handle %d still resolvable after FreeRecursive", i)
		}
	}
}

func TestNode_Reset_RestoresDefaults(t *testing.T) {
	_, root, children := newTestTree(t, 1)
	n := children[0]

	n.SetFlexDirection(style.FlexDirectionRow)
	n.SetMargin(style.EdgeLeft, style.Point(4))
	n.SetContext("payload")
	gc := New(root.Config())
	if err := n.AddChild(gc); err != nil {
		t.Fatalf("AddChild: %v", err)
	}

	n.Reset()

	if n.FlexDirection() != style.FlexDirectionColumn {
		t.Errorf("FlexDirection() = %v after Reset, want column", n.FlexDirection())
	}
	if !n.Margin(style.EdgeLeft).IsUndefined() {
		t.Errorf("Margin(left) = %v after Reset, want undefined", n.Margin(style.EdgeLeft))
	}
	if n.Context() != nil {
		t.Error("Context() should be nil after Reset")
	}
	if n.ChildCount() != 0 {
		t.Errorf("ChildCount() = %d after Reset, want 0", n.ChildCount())
	}
	if n.Parent() != root {
		t.Error("Reset should not detach the node from its parent")
	}
}

func TestNode_CopyStyle_PreservesResolvedDirection(t *testing.T) {
	cfg := NewConfig()
	src := New(cfg)
	dst := New(cfg)

	src.SetFlexDirection(style.FlexDirectionRowReverse)
	src.SetWidth(style.Point(80))
	if err := dst.CalculateLayout(100, 100, style.DirectionRTL); err != nil {
		t.Fatalf("CalculateLayout: %v", err)
	}

	dst.CopyStyle(src)

	if dst.FlexDirection() != style.FlexDirectionRowReverse {
		t.Errorf("FlexDirection() = %v after CopyStyle, want row-reverse", dst.FlexDirection())
	}
	if !dst.Width().Equal(style.Point(80)) {
		t.Errorf("Width() = %v after CopyStyle, want 80pt", dst.Width())
	}
	if dst.ResolvedDirection() != style.DirectionRTL {
		t.Errorf("ResolvedDirection() = %v after CopyStyle, want RTL", dst.ResolvedDirection())
	}
}
