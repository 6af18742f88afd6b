package trail

import (
	"testing"
)

func names(items []Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Label
	}
	return out
}

func makeItems(labels ...string) []Item {
	items := make([]Item, len(labels))
	for i, l := range labels {
		items[i] = Item{Label: l}
	}
	return items
}

func equalLabels(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestTruncate covers every branch of the display-selection algorithm.
func TestTruncate(t *testing.T) {
	t.Run("no cap shows everything", func(t *testing.T) {
		items := makeItems("a", "b", "c", "d")
		display, ellipsis := Truncate(items, 0)
		if ellipsis {
			t.Error("ellipsis = true, want false")
		}
		if !equalLabels(names(display), "a", "b", "c", "d") {
			t.Errorf("display = %v, want all items", names(display))
		}
	})

	t.Run("overflow with cap >= 3 keeps first plus trailing", func(t *testing.T) {
		items := makeItems("a", "b", "c", "d", "e", "f")
		display, ellipsis := Truncate(items, 4)
		if !ellipsis {
			t.Error("ellipsis = false, want true")
		}
		// Cap 4 yields first item + trailing 2, length cap-1.
		if !equalLabels(names(display), "a", "e", "f") {
			t.Errorf("display = %v, want [a e f]", names(display))
		}
		if len(display) != 3 {
			t.Errorf("len = %d, want 3", len(display))
		}
	})

	t.Run("under cap shows everything", func(t *testing.T) {
		items := makeItems("a", "b", "c")
		display, ellipsis := Truncate(items, 5)
		if ellipsis {
			t.Error("ellipsis = true, want false")
		}
		if !equalLabels(names(display), "a", "b", "c") {
			t.Errorf("display = %v, want all items", names(display))
		}
	})

	t.Run("exact cap shows everything", func(t *testing.T) {
		items := makeItems("a", "b", "c")
		display, ellipsis := Truncate(items, 3)
		if ellipsis {
			t.Error("ellipsis = true, want false")
		}
		if len(display) != 3 {
			t.Errorf("len = %d, want 3", len(display))
		}
	})

	t.Run("cap below 3 drops oldest with no marker", func(t *testing.T) {
		items := makeItems("a", "b", "c", "d", "e")
		display, ellipsis := Truncate(items, 2)
		if ellipsis {
			t.Error("ellipsis = true, want false (caps below 3 never show the marker)")
		}
		if !equalLabels(names(display), "d", "e") {
			t.Errorf("display = %v, want [d e]", names(display))
		}
	})

	t.Run("cap of 1", func(t *testing.T) {
		items := makeItems("a", "b", "c")
		display, ellipsis := Truncate(items, 1)
		if ellipsis {
			t.Error("ellipsis = true, want false")
		}
		if !equalLabels(names(display), "c") {
			t.Errorf("display = %v, want [c]", names(display))
		}
	})

	t.Run("empty items", func(t *testing.T) {
		display, ellipsis := Truncate(nil, 3)
		if ellipsis {
			t.Error("ellipsis = true, want false")
		}
		if len(display) != 0 {
			t.Errorf("len = %d, want 0", len(display))
		}
	})
}

// TestCompose_Sequence checks separator and ellipsis placement.
func TestCompose_Sequence(t *testing.T) {
	kinds := func(nodes []Node) []NodeKind {
		out := make([]NodeKind, len(nodes))
		for i, n := range nodes {
			out[i] = n.Kind
		}
		return out
	}

	t.Run("plain trail interleaves separators", func(t *testing.T) {
		cfg := Config{Items: makeItems("a", "b", "c")}
		nodes := Compose(cfg)
		want := []NodeKind{NodeItem, NodeSeparator, NodeItem, NodeSeparator, NodeItem}
		got := kinds(nodes)
		if len(got) != len(want) {
			t.Fatalf("node count = %d, want %d", len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("node[%d] = %v, want %v", i, got[i], want[i])
			}
		}
	})

	t.Run("truncated trail: separator before marker, none after", func(t *testing.T) {
		// Five items under a cap of 4 display first + trailing 2, with
		// nothing between the marker and Projects.
		cfg := Config{
			Items:      makeItems("Home", "Documents", "Downloads", "Projects", "GPUI Component"),
			MaxVisible: 4,
		}
		nodes := Compose(cfg)
		want := []NodeKind{
			NodeItem,      // Home
			NodeSeparator, //
			NodeEllipsis,  // …
			NodeItem,      // Projects, directly after the marker
			NodeSeparator, //
			NodeItem,      // GPUI Component
		}
		got := kinds(nodes)
		if len(got) != len(want) {
			t.Fatalf("node count = %d, want %d: %v", len(got), len(want), got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("node[%d] = %v, want %v", i, got[i], want[i])
			}
		}

		if nodes[0].Item.Label != "Home" {
			t.Errorf("first item = %q, want Home", nodes[0].Item.Label)
		}
		if nodes[3].Item.Label != "Projects" {
			t.Errorf("item after marker = %q, want Projects", nodes[3].Item.Label)
		}
		if nodes[5].Item.Label != "GPUI Component" || !nodes[5].IsLast {
			t.Errorf("last item = %q isLast=%v, want GPUI Component true",
				nodes[5].Item.Label, nodes[5].IsLast)
		}
	})

	t.Run("empty trail composes to nothing", func(t *testing.T) {
		if nodes := Compose(Config{}); len(nodes) != 0 {
			t.Errorf("node count = %d, want 0", len(nodes))
		}
	})
}

// TestCompose_SourceIndex checks that display positions map back to the
// caller's item indexes after truncation.
func TestCompose_SourceIndex(t *testing.T) {
	cfg := Config{
		Items:      makeItems("a", "b", "c", "d", "e", "f"),
		MaxVisible: 4, // display: a, e, f
	}
	nodes := Compose(cfg)

	var got []int
	for _, n := range nodes {
		if n.Kind == NodeItem {
			got = append(got, n.SourceIndex)
		}
	}
	want := []int{0, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("item count = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("source index[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

// TestActivate covers the interaction gate around item callbacks.
func TestActivate(t *testing.T) {
	t.Run("middle item fires with source index", func(t *testing.T) {
		fired := -1
		items := makeItems("a", "b", "c")
		for i := range items {
			items[i].OnActivate = func(ix int) { fired = ix }
		}
		cfg := Config{Items: items}
		if !Activate(cfg, 1) {
			t.Fatal("Activate returned false")
		}
		if fired != 1 {
			t.Errorf("fired index = %d, want 1", fired)
		}
	})

	t.Run("last item inert even with callback", func(t *testing.T) {
		fired := false
		items := makeItems("a", "b")
		items[1].OnActivate = func(int) { fired = true }
		cfg := Config{Items: items}
		if Activate(cfg, 1) || fired {
			t.Error("terminal item must not fire")
		}
	})

	t.Run("item-level disabled is inert", func(t *testing.T) {
		fired := false
		items := makeItems("a", "b", "c")
		items[0].OnActivate = func(int) { fired = true }
		items[0].Disabled = true
		cfg := Config{Items: items}
		if Activate(cfg, 0) || fired {
			t.Error("disabled item must not fire")
		}
	})

	t.Run("trail-level disabled overrides everything", func(t *testing.T) {
		fired := false
		items := makeItems("a", "b", "c")
		for i := range items {
			items[i].OnActivate = func(int) { fired = true }
		}
		cfg := Config{Items: items, Disabled: true}
		for ix := range items {
			if Activate(cfg, ix) {
				t.Errorf("item %d fired on a disabled trail", ix)
			}
		}
		if fired {
			t.Error("no callback should fire on a disabled trail")
		}
	})

	t.Run("truncated trail activates with original index", func(t *testing.T) {
		fired := -1
		items := makeItems("a", "b", "c", "d", "e", "f")
		for i := range items {
			items[i].OnActivate = func(ix int) { fired = ix }
		}
		cfg := Config{Items: items, MaxVisible: 4} // display: a, e, f
		if !Activate(cfg, 1) {
			t.Fatal("Activate returned false")
		}
		if fired != 4 {
			t.Errorf("fired index = %d, want 4 (item e)", fired)
		}
	})

	t.Run("out of range", func(t *testing.T) {
		cfg := Config{Items: makeItems("a", "b")}
		if Activate(cfg, -1) || Activate(cfg, 7) {
			t.Error("out-of-range positions must not fire")
		}
	})

	t.Run("no callback", func(t *testing.T) {
		cfg := Config{Items: makeItems("a", "b", "c")}
		if Activate(cfg, 0) {
			t.Error("item without callback must not report firing")
		}
	})
}

func TestSeparatorGlyphs(t *testing.T) {
	cases := []struct {
		name string
		sep  Separator
		want string
	}{
		{"zero value defaults to chevron", Separator{}, "›"},
		{"slash", SeparatorSlash(), "/"},
		{"chevron", SeparatorChevron(), "›"},
		{"dot", SeparatorDot(), "•"},
		{"custom icon", SeparatorIcon("dot"), "•"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sep.Glyph(); got != tc.want {
				t.Errorf("Glyph() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSizeGap(t *testing.T) {
	cases := []struct {
		size Size
		want int
	}{
		{Size{Class: SizeXSmall}, 0},
		{Size{Class: SizeSmall}, 1},
		{Size{Class: SizeMedium}, 1},
		{Size{Class: SizeLarge}, 2},
		{Size{Class: SizeCustom, Cells: 4}, 4},
		{Size{Class: SizeCustom, Cells: -1}, 0},
	}
	for _, tc := range cases {
		if got := tc.size.Gap(); got != tc.want {
			t.Errorf("Gap(%+v) = %d, want %d", tc.size, got, tc.want)
		}
	}
}
