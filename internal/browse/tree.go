// Package browse maps media ids to their children for media browsers.
//
// The tree is flat:
//
//	__ROOT__
//	 +-- radio_01
//	 +-- radio_02
//	 ...
//
// Children(RootID) returns every station; stations are leaves and have no
// children.
package browse

import (
	"iter"

	"github.com/genricoloni/radiod/internal/domain"
)

// RootID is the media id of the only browsable node
const RootID = "__ROOT__"

// NodeKind classifies a media id within a tree
type NodeKind int

const (
	NodeUnknown NodeKind = iota
	NodeRoot
	NodeLeaf
)

func (k NodeKind) String() string {
	switch k {
	case NodeRoot:
		return "root"
	case NodeLeaf:
		return "leaf"
	default:
		return "unknown"
	}
}

// Tree is an immutable browse tree built from one catalog snapshot
type Tree struct {
	children map[string][]domain.MediaItem
	leaves   map[string]int // media id -> index in the root list
}

// NewTree builds the tree from the items in iteration order.
// The root always exists, even for an empty catalog.
func NewTree(items iter.Seq[domain.MediaItem]) *Tree {
	t := &Tree{
		children: map[string][]domain.MediaItem{RootID: {}},
		leaves:   map[string]int{},
	}
	for item := range items {
		root := t.children[RootID]
		// First occurrence wins for lookups by id; the list keeps everything
		if _, dup := t.leaves[item.MediaID]; !dup {
			t.leaves[item.MediaID] = len(root)
		}
		t.children[RootID] = append(root, item)
	}
	return t
}

// Children returns the children of mediaID. The second value is false when
// the id has no children, which is the case for leaves and unknown ids alike.
func (t *Tree) Children(mediaID string) ([]domain.MediaItem, bool) {
	items, ok := t.children[mediaID]
	return items, ok
}

// Kind tells the root, a known leaf and an unknown id apart
func (t *Tree) Kind(mediaID string) NodeKind {
	if mediaID == RootID {
		return NodeRoot
	}
	if _, ok := t.leaves[mediaID]; ok {
		return NodeLeaf
	}
	return NodeUnknown
}

// Item returns the leaf with the given id
func (t *Tree) Item(mediaID string) (domain.MediaItem, bool) {
	i, ok := t.leaves[mediaID]
	if !ok {
		return domain.MediaItem{}, false
	}
	return t.children[RootID][i], true
}

// Len returns the number of items under the root
func (t *Tree) Len() int {
	return len(t.children[RootID])
}
