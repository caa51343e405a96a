package style

// Physical holds the resolved values for the four physical sides of one
// box-model property family.
type Physical struct {
	Left   Value
	Top    Value
	Right  Value
	Bottom Value
}

// ResolveEdges maps a canonical edge map to physical sides under a writing
// direction. The precedence layers, weakest first:
//
//  1. every side starts at the family default,
//  2. All applies to all four sides,
//  3. Horizontal applies to left and right, Vertical to top and bottom,
//  4. Start and End apply to the side they name under the direction,
//  5. an explicit physical edge always wins for its side.
//
// A slot only participates when it holds a value; explicit auto is a value
// and overrides weaker layers like any other. The result depends solely on
// which slots currently hold values, never on the order they were written.
func ResolveEdges(edges EdgeValues, def Value, direction Direction) Physical {
	p := Physical{Left: def, Top: def, Right: def, Bottom: def}

	if v := edges.Get(EdgeAll); !v.IsUndefined() {
		p.Left, p.Top, p.Right, p.Bottom = v, v, v, v
	}

	if v := edges.Get(EdgeHorizontal); !v.IsUndefined() {
		p.Left, p.Right = v, v
	}
	if v := edges.Get(EdgeVertical); !v.IsUndefined() {
		p.Top, p.Bottom = v, v
	}

	if v := edges.Get(EdgeStart); !v.IsUndefined() {
		if direction == DirectionRTL {
			p.Right = v
		} else {
			p.Left = v
		}
	}
	if v := edges.Get(EdgeEnd); !v.IsUndefined() {
		if direction == DirectionRTL {
			p.Left = v
		} else {
			p.Right = v
		}
	}

	if v := edges.Get(EdgeLeft); !v.IsUndefined() {
		p.Left = v
	}
	if v := edges.Get(EdgeTop); !v.IsUndefined() {
		p.Top = v
	}
	if v := edges.Get(EdgeRight); !v.IsUndefined() {
		p.Right = v
	}
	if v := edges.Get(EdgeBottom); !v.IsUndefined() {
		p.Bottom = v
	}

	return p
}

// ResolveMargin resolves a margin edge map. Unset sides default to auto.
func ResolveMargin(edges EdgeValues, direction Direction) Physical {
	return ResolveEdges(edges, Auto, direction)
}

// ResolveInset resolves a position-offset edge map. Unset sides default to auto.
func ResolveInset(edges EdgeValues, direction Direction) Physical {
	return ResolveEdges(edges, Auto, direction)
}

// ResolvePadding resolves a padding edge map. Unset sides default to zero.
func ResolvePadding(edges EdgeValues, direction Direction) Physical {
	return ResolveEdges(edges, Point(0), direction)
}

// ResolveBorder resolves a border edge map. Border slots only ever hold
// definite lengths; unset sides default to zero.
func ResolveBorder(edges EdgeValues, direction Direction) Physical {
	return ResolveEdges(edges, Point(0), direction)
}
