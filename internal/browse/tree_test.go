package browse

import (
	"fmt"
	"slices"
	"testing"

	"github.com/genricoloni/radiod/internal/domain"
)

func items(ids ...string) []domain.MediaItem {
	out := make([]domain.MediaItem, 0, len(ids))
	for _, id := range ids {
		out = append(out, domain.MediaItem{MediaID: id, Title: "Title " + id, Flags: domain.FlagPlayable})
	}
	return out
}

func TestTree_RootReturnsAllItemsInOrder(t *testing.T) {
	for _, n := range []int{0, 1, 3, 50} {
		t.Run(fmt.Sprintf("%d items", n), func(t *testing.T) {
			ids := make([]string, n)
			for i := range ids {
				ids[i] = fmt.Sprintf("radio_%02d", n-i) // deliberately not sorted
			}
			tree := NewTree(slices.Values(items(ids...)))

			children, ok := tree.Children(RootID)
			if !ok {
				t.Fatal("root must always have children")
			}
			if children == nil {
				t.Fatal("root children must be non-nil")
			}
			if len(children) != n || tree.Len() != n {
				t.Fatalf("expected %d children, got %d (Len %d)", n, len(children), tree.Len())
			}
			for i, c := range children {
				if c.MediaID != ids[i] {
					t.Errorf("position %d: expected %s, got %s", i, ids[i], c.MediaID)
				}
			}
		})
	}
}

func TestTree_NonRootHasNoChildren(t *testing.T) {
	tree := NewTree(slices.Values(items("radio_01", "radio_02")))

	tests := []struct {
		id   string
		kind NodeKind
	}{
		{RootID, NodeRoot},
		{"radio_01", NodeLeaf},
		{"radio_02", NodeLeaf},
		{"radio_99", NodeUnknown},
		{"", NodeUnknown},
	}

	for _, tt := range tests {
		if tt.id != RootID {
			if children, ok := tree.Children(tt.id); ok || children != nil {
				t.Errorf("Children(%q): expected no children, got %v, %v", tt.id, children, ok)
			}
		}
		if got := tree.Kind(tt.id); got != tt.kind {
			t.Errorf("Kind(%q): expected %s, got %s", tt.id, tt.kind, got)
		}
	}
}

func TestTree_Item(t *testing.T) {
	tree := NewTree(slices.Values(items("a", "b", "a")))

	item, ok := tree.Item("b")
	if !ok || item.MediaID != "b" {
		t.Fatalf("expected item b, got %+v, %v", item, ok)
	}
	if _, ok := tree.Item("missing"); ok {
		t.Error("unknown id must not resolve to an item")
	}
	// Duplicates stay in the list, the first one answers lookups
	if tree.Len() != 3 {
		t.Errorf("expected duplicates to be kept, Len = %d", tree.Len())
	}
	if first, _ := tree.Item("a"); first.Title != "Title a" {
		t.Errorf("unexpected item %+v", first)
	}
}
