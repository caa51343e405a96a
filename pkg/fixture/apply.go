package fixture

import (
	"strconv"
	"strings"

	"github.com/go-flexkit/flexkit/pkg/errors"
	"github.com/go-flexkit/flexkit/pkg/flexnode"
	"github.com/go-flexkit/flexkit/pkg/style"
)

// Style keys follow the camelCase property names of the compatibility
// API: dimensions and flex properties verbatim, edge properties as a
// family prefix plus an edge suffix ("marginStart", "paddingHorizontal",
// "borderLeft"), and insets as bare edge names ("left", "start", ...).

var edgeSuffixes = map[string]style.Edge{
	"Left":       style.EdgeLeft,
	"Top":        style.EdgeTop,
	"Right":      style.EdgeRight,
	"Bottom":     style.EdgeBottom,
	"Start":      style.EdgeStart,
	"End":        style.EdgeEnd,
	"Horizontal": style.EdgeHorizontal,
	"Vertical":   style.EdgeVertical,
	"":           style.EdgeAll,
}

var insetKeys = map[string]style.Edge{
	"left":   style.EdgeLeft,
	"top":    style.EdgeTop,
	"right":  style.EdgeRight,
	"bottom": style.EdgeBottom,
	"start":  style.EdgeStart,
	"end":    style.EdgeEnd,
}

func splitEdgeKey(key, family string) (style.Edge, bool) {
	if !strings.HasPrefix(key, family) {
		return 0, false
	}
	edge, ok := edgeSuffixes[key[len(family):]]
	return edge, ok
}

func knownStyleKey(key string) bool {
	switch key {
	case "width", "height", "minWidth", "minHeight", "maxWidth", "maxHeight",
		"flex", "flexGrow", "flexShrink", "flexBasis", "aspectRatio",
		"flexDirection", "direction", "justifyContent", "alignItems",
		"alignSelf", "alignContent", "flexWrap", "overflow", "display",
		"positionType", "boxSizing":
		return true
	}
	if _, ok := insetKeys[key]; ok {
		return true
	}
	for _, family := range []string{"margin", "padding", "border"} {
		if _, ok := splitEdgeKey(key, family); ok {
			return true
		}
	}
	return false
}

func applyStyle(n *flexnode.Node, key, raw string) error {
	const op = "fixture.Build"
	bad := func() error {
		return errors.New(op, errors.KindFixture, "bad value %q for style key %q", raw, key)
	}

	switch key {
	case "width":
		n.SetWidth(style.Parse(raw))
	case "height":
		n.SetHeight(style.Parse(raw))
	case "minWidth":
		n.SetMinWidth(style.Parse(raw))
	case "minHeight":
		n.SetMinHeight(style.Parse(raw))
	case "maxWidth":
		n.SetMaxWidth(style.Parse(raw))
	case "maxHeight":
		n.SetMaxHeight(style.Parse(raw))
	case "flexBasis":
		n.SetFlexBasis(style.Parse(raw))
	case "flex", "flexGrow", "flexShrink", "aspectRatio":
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return bad()
		}
		switch key {
		case "flex":
			n.SetFlex(f)
		case "flexGrow":
			n.SetFlexGrow(f)
		case "flexShrink":
			n.SetFlexShrink(f)
		case "aspectRatio":
			n.SetAspectRatio(f)
		}
	case "flexDirection":
		switch raw {
		case "column":
			n.SetFlexDirection(style.FlexDirectionColumn)
		case "column-reverse":
			n.SetFlexDirection(style.FlexDirectionColumnReverse)
		case "row":
			n.SetFlexDirection(style.FlexDirectionRow)
		case "row-reverse":
			n.SetFlexDirection(style.FlexDirectionRowReverse)
		default:
			return bad()
		}
	case "direction":
		switch raw {
		case "inherit":
			n.SetDirection(style.DirectionInherit)
		case "ltr":
			n.SetDirection(style.DirectionLTR)
		case "rtl":
			n.SetDirection(style.DirectionRTL)
		default:
			return bad()
		}
	case "justifyContent":
		switch raw {
		case "flex-start":
			n.SetJustifyContent(style.JustifyFlexStart)
		case "center":
			n.SetJustifyContent(style.JustifyCenter)
		case "flex-end":
			n.SetJustifyContent(style.JustifyFlexEnd)
		case "space-between":
			n.SetJustifyContent(style.JustifySpaceBetween)
		case "space-around":
			n.SetJustifyContent(style.JustifySpaceAround)
		default:
			return bad()
		}
	case "alignItems", "alignSelf", "alignContent":
		a, ok := parseAlign(raw)
		if !ok {
			return bad()
		}
		switch key {
		case "alignItems":
			n.SetAlignItems(a)
		case "alignSelf":
			n.SetAlignSelf(a)
		case "alignContent":
			n.SetAlignContent(a)
		}
	case "flexWrap":
		switch raw {
		case "no-wrap":
			n.SetFlexWrap(style.WrapNoWrap)
		case "wrap":
			n.SetFlexWrap(style.WrapWrap)
		case "wrap-reverse":
			n.SetFlexWrap(style.WrapWrapReverse)
		default:
			return bad()
		}
	case "overflow":
		switch raw {
		case "visible":
			n.SetOverflow(style.OverflowVisible)
		case "hidden":
			n.SetOverflow(style.OverflowHidden)
		case "scroll":
			n.SetOverflow(style.OverflowScroll)
		default:
			return bad()
		}
	case "display":
		switch raw {
		case "flex":
			n.SetDisplay(style.DisplayFlex)
		case "none":
			n.SetDisplay(style.DisplayNone)
		default:
			return bad()
		}
	case "positionType":
		switch raw {
		case "relative":
			n.SetPositionType(style.PositionTypeRelative)
		case "absolute":
			n.SetPositionType(style.PositionTypeAbsolute)
		case "static":
			n.SetPositionType(style.PositionTypeStatic)
		default:
			return bad()
		}
	case "boxSizing":
		switch raw {
		case "border-box":
			n.SetBoxSizing(style.BoxSizingBorderBox)
		case "content-box":
			n.SetBoxSizing(style.BoxSizingContentBox)
		default:
			return bad()
		}
	default:
		if edge, ok := insetKeys[key]; ok {
			n.SetPosition(edge, style.Parse(raw))
			return nil
		}
		if edge, ok := splitEdgeKey(key, "margin"); ok {
			n.SetMargin(edge, style.Parse(raw))
			return nil
		}
		if edge, ok := splitEdgeKey(key, "padding"); ok {
			n.SetPadding(edge, style.Parse(raw))
			return nil
		}
		if edge, ok := splitEdgeKey(key, "border"); ok {
			f, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return bad()
			}
			n.SetBorder(edge, f)
			return nil
		}
		return errors.New(op, errors.KindFixture, "unknown style key %q", key)
	}
	return nil
}

func parseAlign(raw string) (style.Align, bool) {
	switch raw {
	case "auto":
		return style.AlignAuto, true
	case "flex-start":
		return style.AlignFlexStart, true
	case "center":
		return style.AlignCenter, true
	case "flex-end":
		return style.AlignFlexEnd, true
	case "stretch":
		return style.AlignStretch, true
	case "baseline":
		return style.AlignBaseline, true
	case "space-between":
		return style.AlignSpaceBetween, true
	case "space-around":
		return style.AlignSpaceAround, true
	default:
		return 0, false
	}
}
