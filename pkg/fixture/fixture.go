// Package fixture loads declarative layout trees from YAML.
//
// A fixture describes a node tree (style per node, optional fixed-size
// measured leaves) plus the available space and writing direction to
// compute it with, and optionally the geometry each node is expected to
// produce. Package tests and the flexdump tool build trees from fixtures
// instead of hand-wiring nodes.
package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-flexkit/flexkit/pkg/errors"
	"github.com/go-flexkit/flexkit/pkg/flexnode"
	"github.com/go-flexkit/flexkit/pkg/geometry"
	"github.com/go-flexkit/flexkit/pkg/style"
)

// Document is one fixture file.
type Document struct {
	// UseWebDefaults applies browser flexbox defaults to every node.
	UseWebDefaults bool `yaml:"useWebDefaults"`
	// Direction is the writing direction for the pass: "ltr", "rtl", or
	// empty to fall back to the root's own declared direction.
	Direction string `yaml:"direction"`
	// AvailableWidth and AvailableHeight constrain the pass; nil means
	// unconstrained, content-driven sizing on that axis.
	AvailableWidth  *float64 `yaml:"availableWidth"`
	AvailableHeight *float64 `yaml:"availableHeight"`
	// Root is the tree to build.
	Root *NodeSpec `yaml:"root"`
}

// NodeSpec describes one node.
type NodeSpec struct {
	// Style maps property names to loose string values ("10", "50%",
	// "auto", "row-reverse", ...).
	Style map[string]string `yaml:"style"`
	// Measure, when set, installs a fixed-size measurement callback.
	Measure *SizeSpec `yaml:"measure"`
	// Children are built and attached in order.
	Children []*NodeSpec `yaml:"children"`
	// Expect is the geometry this node should produce, if the fixture
	// carries expectations.
	Expect *RectSpec `yaml:"expect"`
}

// SizeSpec is a fixed measurement result.
type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RectSpec is an expected box, given as left/top/width/height.
type RectSpec struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Rect converts the expectation to a geometry rect.
func (r RectSpec) Rect() geometry.Rect {
	return geometry.RectFromLTWH(r.Left, r.Top, r.Width, r.Height)
}

// Parse decodes and validates fixture data.
func Parse(data []byte) (*Document, error) {
	const op = "fixture.Parse"
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(op, errors.KindFixture, err)
	}
	if d.Root == nil {
		return nil, errors.New(op, errors.KindFixture, "fixture has no root node")
	}
	if err := d.Root.validate(); err != nil {
		return nil, err
	}
	switch d.Direction {
	case "", "ltr", "rtl", "inherit":
	default:
		return nil, errors.New(op, errors.KindFixture, "unknown direction %q", d.Direction)
	}
	return &d, nil
}

// Load reads and parses a fixture file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap("fixture.Load", errors.KindFixture, err)
	}
	return Parse(data)
}

func (s *NodeSpec) validate() error {
	if s.Measure != nil && len(s.Children) > 0 {
		return errors.New("fixture.Parse", errors.KindFixture, "a measured node cannot have children")
	}
	for key := range s.Style {
		if !knownStyleKey(key) {
			return errors.New("fixture.Parse", errors.KindFixture, "unknown style key %q", key)
		}
	}
	for _, c := range s.Children {
		if err := c.validate(); err != nil {
			return err
		}
	}
	return nil
}

// PassDirection returns the writing direction the fixture requests.
func (d *Document) PassDirection() style.Direction {
	switch d.Direction {
	case "ltr":
		return style.DirectionLTR
	case "rtl":
		return style.DirectionRTL
	default:
		return style.DirectionInherit
	}
}

// Available returns the width and height constraints for the pass, with
// NaN standing in for unconstrained axes.
func (d *Document) Available() (width, height float64) {
	width = flexnode.Unconstrained
	height = flexnode.Unconstrained
	if d.AvailableWidth != nil {
		width = *d.AvailableWidth
	}
	if d.AvailableHeight != nil {
		height = *d.AvailableHeight
	}
	return width, height
}

// Build constructs the fixture's tree under a fresh Config and returns the
// root. The caller owns the returned tree.
func (d *Document) Build() (*flexnode.Node, *flexnode.Config, error) {
	cfg := flexnode.NewConfig()
	cfg.SetUseWebDefaults(d.UseWebDefaults)
	root, err := d.Root.build(cfg)
	if err != nil {
		cfg.Destroy()
		return nil, nil, err
	}
	return root, cfg, nil
}

// Run builds the tree and computes its layout as the fixture requests.
func (d *Document) Run() (*flexnode.Node, *flexnode.Config, error) {
	root, cfg, err := d.Build()
	if err != nil {
		return nil, nil, err
	}
	width, height := d.Available()
	if err := root.CalculateLayout(width, height, d.PassDirection()); err != nil {
		cfg.Destroy()
		return nil, nil, err
	}
	return root, cfg, nil
}

func (s *NodeSpec) build(cfg *flexnode.Config) (*flexnode.Node, error) {
	n := flexnode.New(cfg)
	for key, raw := range s.Style {
		if err := applyStyle(n, key, raw); err != nil {
			return nil, err
		}
	}
	if s.Measure != nil {
		size := geometry.Size{Width: s.Measure.Width, Height: s.Measure.Height}
		err := n.SetMeasureFunc(func(float64, style.MeasureMode, float64, style.MeasureMode) geometry.Size {
			return size
		})
		if err != nil {
			return nil, err
		}
	}
	for i, cs := range s.Children {
		child, err := cs.build(cfg)
		if err != nil {
			return nil, err
		}
		if err := n.InsertChild(child, i); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// Mismatch is one node whose computed geometry differs from the fixture's
// expectation.
type Mismatch struct {
	// Path locates the node: "root", "root.0", "root.0.2", ...
	Path string
	Want geometry.Rect
	Got  geometry.Rect
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: want [%g %g %gx%g], got [%g %g %gx%g]",
		m.Path,
		m.Want.Left, m.Want.Top, m.Want.Width(), m.Want.Height(),
		m.Got.Left, m.Got.Top, m.Got.Width(), m.Got.Height())
}

// Verify compares computed geometry against the fixture's expectations,
// returning one mismatch per differing node. Nodes without an expectation
// are skipped; children are always descended into.
func (d *Document) Verify(root *flexnode.Node) []Mismatch {
	var out []Mismatch
	verifyNode(d.Root, root, "root", &out)
	return out
}

func verifyNode(spec *NodeSpec, n *flexnode.Node, path string, out *[]Mismatch) {
	if n == nil {
		return
	}
	if spec.Expect != nil {
		want := spec.Expect.Rect()
		got := n.LayoutRect()
		if !got.ApproxEqual(want) {
			*out = append(*out, Mismatch{Path: path, Want: want, Got: got})
		}
	}
	for i, cs := range spec.Children {
		verifyNode(cs, n.Child(i), fmt.Sprintf("%s.%d", path, i), out)
	}
}
