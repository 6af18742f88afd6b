package nav

import (
	"testing"
)

var demoTree = []byte(`{
	"label": "Home",
	"icon": "house",
	"children": [
		{
			"label": "Documents",
			"icon": "folder",
			"children": [
				{
					"label": "Projects",
					"icon": "folder",
					"children": [
						{"label": "GPUI Component"}
					]
				}
			]
		},
		{"label": "Archive", "disabled": true}
	]
}`)

func mustTree(t *testing.T) *Node {
	t.Helper()
	root, err := ParseTree(demoTree)
	if err != nil {
		t.Fatalf("ParseTree failed: %v", err)
	}
	return root
}

func TestParseTree(t *testing.T) {
	t.Run("basic shape", func(t *testing.T) {
		root := mustTree(t)
		if root.Label != "Home" {
			t.Errorf("root label = %q, want Home", root.Label)
		}
		if root.Icon != "house" {
			t.Errorf("root icon = %q, want house", root.Icon)
		}
		if len(root.Children) != 2 {
			t.Fatalf("children = %d, want 2", len(root.Children))
		}
		if !root.Children[1].Disabled {
			t.Error("Archive should be disabled")
		}
	})

	t.Run("unlabeled children skipped", func(t *testing.T) {
		root, err := ParseTree([]byte(`{"label":"x","children":[{"icon":"folder"},{"label":"y"}]}`))
		if err != nil {
			t.Fatalf("ParseTree failed: %v", err)
		}
		if len(root.Children) != 1 || root.Children[0].Label != "y" {
			t.Errorf("children = %v, want just y", root.Children)
		}
	})

	t.Run("missing root label fails", func(t *testing.T) {
		if _, err := ParseTree([]byte(`{"children":[]}`)); err == nil {
			t.Error("expected an error for an unlabeled root")
		}
	})
}

func TestNavigator(t *testing.T) {
	descendAll := func(t *testing.T, n *Navigator, labels ...string) {
		t.Helper()
		for _, l := range labels {
			if err := n.Descend(l); err != nil {
				t.Fatalf("Descend(%s) failed: %v", l, err)
			}
		}
	}

	t.Run("descend and path", func(t *testing.T) {
		n := NewNavigator(mustTree(t))
		descendAll(t, n, "Documents", "Projects", "GPUI Component")

		want := []string{"Home", "Documents", "Projects", "GPUI Component"}
		got := n.Path()
		if len(got) != len(want) {
			t.Fatalf("path = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("path[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("activation truncates to the clicked level", func(t *testing.T) {
		n := NewNavigator(mustTree(t))
		descendAll(t, n, "Documents", "Projects", "GPUI Component")

		n.ActivateItem(1) // Documents
		got := n.Path()
		if len(got) != 2 || got[1] != "Documents" {
			t.Errorf("path after activation = %v, want [Home Documents]", got)
		}
	})

	t.Run("activation out of range is ignored", func(t *testing.T) {
		n := NewNavigator(mustTree(t))
		descendAll(t, n, "Documents")
		n.ActivateItem(5)
		n.ActivateItem(-1)
		if n.Depth() != 2 {
			t.Errorf("depth = %d, want 2", n.Depth())
		}
	})

	t.Run("up stops at root", func(t *testing.T) {
		n := NewNavigator(mustTree(t))
		descendAll(t, n, "Documents")
		n.Up()
		n.Up()
		n.Up()
		if n.Depth() != 1 || n.Current().Label != "Home" {
			t.Errorf("path = %v, want just root", n.Path())
		}
	})

	t.Run("unknown child rejected", func(t *testing.T) {
		n := NewNavigator(mustTree(t))
		if err := n.Descend("Nope"); err == nil {
			t.Error("expected an error for an unknown child")
		}
	})

	t.Run("items wire callbacks except on the leaf", func(t *testing.T) {
		n := NewNavigator(mustTree(t))
		descendAll(t, n, "Documents", "Projects")

		items := n.Items()
		if len(items) != 3 {
			t.Fatalf("items = %d, want 3", len(items))
		}
		for i, item := range items[:len(items)-1] {
			if item.OnActivate == nil {
				t.Errorf("item %d missing callback", i)
			}
		}
		if items[len(items)-1].OnActivate != nil {
			t.Error("leaf item must not carry a callback")
		}

		// Driving the callback navigates the navigator itself.
		items[0].OnActivate(0)
		if n.Depth() != 1 {
			t.Errorf("depth after root activation = %d, want 1", n.Depth())
		}
	})
}
