package trail

// Truncate selects which items stay visible under a display cap.
//
// With no cap every item is shown. When the item count exceeds a cap of at
// least 3, the first item is kept and the trailing cap-2 items follow it,
// with an ellipsis marker standing in for the elided middle; the visible
// count comes out to cap-1. Caps below 3 take a different path entirely:
// the oldest overflow items are silently dropped and no ellipsis is shown.
// The two branches are not interchangeable; callers relying on the marker
// must pass maxVisible >= 3.
func Truncate(items []Item, maxVisible int) (display []Item, ellipsis bool) {
	if maxVisible <= 0 {
		return items, false
	}

	if len(items) > maxVisible && maxVisible >= 3 {
		display = make([]Item, 0, maxVisible-1)
		display = append(display, items[0])
		display = append(display, items[len(items)-(maxVisible-2):]...)
		return display, true
	}

	start := len(items) - maxVisible
	if start < 0 {
		start = 0
	}
	return items[start:], false
}
