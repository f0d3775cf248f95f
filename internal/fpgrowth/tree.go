// FPGrowth - Frequent Pattern Mining over Item Sets
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/fpgrowth

package fpgrowth

// NodeID identifies a node inside a Tree. IDs are stable for the lifetime of
// the tree and are only meaningful for the tree that issued them.
type NodeID int

// RootID is the ID of the item-less root node of every tree.
const RootID NodeID = 0

// noParent marks the root's parent link.
const noParent NodeID = -1

// node is a single FP-tree vertex. The parent link is a back reference used
// for upward traversal only; children are owned by the node.
type node[T comparable] struct {
	item      T
	hasItem   bool
	frequency int
	parent    NodeID
	children  []NodeID
}

// Tree is an FP-tree stored as an arena of nodes.
//
// Item sets inserted into the tree share common prefixes: a path from the
// root to any node represents every inserted item set starting with that
// prefix, and the node's frequency counts those item sets.
type Tree[T comparable] struct {
	nodes []node[T]
}

// NewTree creates a tree holding only the root node.
func NewTree[T comparable]() *Tree[T] {
	return &Tree[T]{
		nodes: []node[T]{{parent: noParent}},
	}
}

// Insert merges an item sequence into the tree starting at the root.
//
// The sequence must already be filtered and sorted by the header table so
// that all item sets share the same global item order. For each item the
// child carrying that item is reused and its frequency incremented, or a new
// child with frequency 1 is appended. The IDs of created nodes are returned
// in creation order so the caller can register them with the header table.
func (t *Tree[T]) Insert(items []T) []NodeID {
	var created []NodeID

	current := RootID
	for _, item := range items {
		child, ok := t.findChild(current, item)
		if ok {
			t.nodes[child].frequency++
		} else {
			child = t.appendChild(current, item)
			created = append(created, child)
		}
		current = child
	}

	return created
}

// findChild returns the child of parent carrying item.
func (t *Tree[T]) findChild(parent NodeID, item T) (NodeID, bool) {
	for _, child := range t.nodes[parent].children {
		if t.nodes[child].item == item {
			return child, true
		}
	}
	return 0, false
}

// appendChild creates a node with frequency 1 under parent.
func (t *Tree[T]) appendChild(parent NodeID, item T) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[T]{
		item:      item,
		hasItem:   true,
		frequency: 1,
		parent:    parent,
	})
	t.nodes[parent].children = append(t.nodes[parent].children, id)
	return id
}

// Len returns the number of nodes, including the root.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Item returns the item carried by a node. The root carries no item.
func (t *Tree[T]) Item(id NodeID) (T, bool) {
	n := t.nodes[id]
	return n.item, n.hasItem
}

// Frequency returns the number of inserted item sets passing through a node.
func (t *Tree[T]) Frequency(id NodeID) int {
	return t.nodes[id].frequency
}

// Parent returns the parent of a node. The root has no parent.
func (t *Tree[T]) Parent(id NodeID) (NodeID, bool) {
	p := t.nodes[id].parent
	return p, p != noParent
}

// Children returns a copy of a node's children in insertion order.
func (t *Tree[T]) Children(id NodeID) []NodeID {
	children := t.nodes[id].children
	out := make([]NodeID, len(children))
	copy(out, children)
	return out
}

// Walk visits every node depth-first in pre-order, starting at the root with
// depth 0. Returning false from fn skips the node's subtree.
func (t *Tree[T]) Walk(fn func(id NodeID, depth int) bool) {
	t.walk(RootID, 0, fn)
}

func (t *Tree[T]) walk(id NodeID, depth int, fn func(id NodeID, depth int) bool) {
	if !fn(id, depth) {
		return
	}
	for _, child := range t.nodes[id].children {
		t.walk(child, depth+1, fn)
	}
}
