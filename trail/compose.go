package trail

// NodeKind discriminates entries in the flat render sequence.
type NodeKind int

const (
	NodeItem NodeKind = iota
	NodeSeparator
	NodeEllipsis
)

// Node is one entry in the composed render sequence.
type Node struct {
	Kind NodeKind

	// Item node fields.
	Item        Item
	ItemIndex   int  // index within the display sequence
	SourceIndex int  // index within the original Items slice
	IsLast      bool // terminal item, rendered as current location
	Disabled    bool // item-level or trail-level
	Interactive bool // hover + click affordance attached

	// Separator node field.
	Separator Separator
}

// Compose flattens a breadcrumb config into its render sequence: items
// interleaved with separators, with the ellipsis marker standing in for
// elided middle segments.
//
// When the trail is truncated, the marker sits after the first item with a
// separator before it and none after; the first trailing item follows the
// marker directly. Downstream renderers must not insert their own
// separator there.
func Compose(cfg Config) []Node {
	display, ellipsis := Truncate(cfg.Items, cfg.MaxVisible)

	nodes := make([]Node, 0, 2*len(display))
	for ix, item := range display {
		isLast := ix == len(display)-1

		if ellipsis && ix == 1 {
			nodes = append(nodes, Node{Kind: NodeSeparator, Separator: cfg.Separator})
			nodes = append(nodes, Node{Kind: NodeEllipsis})
		} else if ix > 0 {
			nodes = append(nodes, Node{Kind: NodeSeparator, Separator: cfg.Separator})
		}

		disabled := cfg.Disabled || item.Disabled
		nodes = append(nodes, Node{
			Kind:        NodeItem,
			Item:        item,
			ItemIndex:   ix,
			SourceIndex: sourceIndex(len(cfg.Items), len(display), ellipsis, ix),
			IsLast:      isLast,
			Disabled:    disabled,
			Interactive: !disabled && !isLast,
		})
	}
	return nodes
}

// sourceIndex maps a display position back to the caller's item index so
// activation callbacks can report positions in the authoritative path.
func sourceIndex(total, shown int, ellipsis bool, ix int) int {
	if ix == 0 {
		return 0
	}
	if ellipsis {
		// Display holds items[0] plus the trailing shown-1 items.
		return total - (shown - 1) + (ix - 1)
	}
	return total - shown + ix
}

// Activatable reports whether the item at display position ix accepts
// activation: it must exist, carry a callback, not be the terminal item,
// and not be disabled at either level.
func Activatable(cfg Config, ix int) bool {
	display, _ := Truncate(cfg.Items, cfg.MaxVisible)
	if ix < 0 || ix >= len(display) {
		return false
	}
	item := display[ix]
	if cfg.Disabled || item.Disabled || item.OnActivate == nil {
		return false
	}
	return ix != len(display)-1
}

// Activate dispatches the item's callback with its source index. The
// terminal item and disabled items are inert even when a callback was
// supplied. Returns whether a callback fired.
func Activate(cfg Config, ix int) bool {
	if !Activatable(cfg, ix) {
		return false
	}
	display, ellipsis := Truncate(cfg.Items, cfg.MaxVisible)
	item := display[ix]
	item.OnActivate(sourceIndex(len(cfg.Items), len(display), ellipsis, ix))
	return true
}
