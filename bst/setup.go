// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"sort"

	"github.com/bitmark-inc/logger"
)

// Node - a node in the tree
type Node struct {
	left  *Node // left sub-tree
	right *Node // right sub-tree
	value Item  // key
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root   *Node
	count  int
	values []Item // sorted, unique; always the same membership as the nodes
	log    *logger.L
}

// New - create a tree from a slice or array of values
//
// elements can be any Item or plain integer, float or string values;
// all elements must convert to the same item type. Duplicates are
// removed and the resulting tree is balanced.
func New(values interface{}) (*Tree, error) {
	items, err := toItems(values)
	if nil != err {
		return nil, err
	}
	tree := &Tree{
		values: Unique(items),
	}
	tree.Build()
	return tree, nil
}

// NewFromItems - create a balanced tree from a list of items
// nil items are skipped
func NewFromItems(items ...Item) *Tree {
	present := make([]Item, 0, len(items))
	for _, item := range items {
		if nil != item {
			present = append(present, item)
		}
	}
	tree := &Tree{
		values: Unique(present),
	}
	tree.Build()
	return tree
}

// SetLog - attach a logger channel for build/rebalance tracing
func (tree *Tree) SetLog(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Values - sorted copy of the current membership
func (tree *Tree) Values() []Item {
	values := make([]Item, len(tree.values))
	copy(values, tree.values)
	return values
}

// Value - read the key from a node
func (p *Node) Value() Item {
	return p.value
}

// Left - left child or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - right child or nil
func (p *Node) Right() *Node {
	return p.right
}

// position of value in the tracked set, or where it would be inserted
func (tree *Tree) position(value Item) int {
	return sort.Search(len(tree.values), func(i int) bool {
		return tree.values[i].Compare(value) >= 0
	})
}

// add a value to the tracked set
func (tree *Tree) track(value Item) {
	i := tree.position(value)
	tree.values = append(tree.values, nil)
	copy(tree.values[i+1:], tree.values[i:])
	tree.values[i] = value
}

// remove a value from the tracked set
func (tree *Tree) untrack(value Item) {
	i := tree.position(value)
	if i < len(tree.values) && 0 == tree.values[i].Compare(value) {
		tree.values = append(tree.values[:i], tree.values[i+1:]...)
	}
}
