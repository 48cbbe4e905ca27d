// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"sort"
)

// Unique - return a new ascending list with one copy of each distinct item
func Unique(items []Item) []Item {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i int, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})

	n := 0
	for _, item := range sorted {
		if n > 0 && 0 == sorted[n-1].Compare(item) {
			continue
		}
		sorted[n] = item
		n += 1
	}
	return sorted[:n]
}

// Build - create a balanced tree from arbitrary items
// returns the root, nil if there were no items
func Build(items []Item) *Node {
	sorted := Unique(items)
	return build(sorted, 0, len(sorted)-1)
}

// internal: midpoint of the sorted run becomes the sub-tree root
func build(sorted []Item, start int, end int) *Node {
	if start > end {
		return nil
	}
	mid := (start + end) / 2
	return &Node{
		value: sorted[mid],
		left:  build(sorted, start, mid-1),
		right: build(sorted, mid+1, end),
	}
}

// Build - discard the current nodes and build a balanced tree from
// the tracked values
// returns the new root
func (tree *Tree) Build() *Node {
	tree.root = build(tree.values, 0, len(tree.values)-1)
	tree.count = len(tree.values)
	if nil != tree.log {
		tree.log.Debugf("build: nodes: %d  height: %d", tree.count, Height(tree.root))
	}
	return tree.root
}

// Rebalance - rebuild the tree from its current membership
// returns the new root
func (tree *Tree) Rebalance() *Node {
	before := Height(tree.root)
	tree.Build()
	if nil != tree.log {
		tree.log.Infof("rebalance: nodes: %d  height: %d → %d", tree.count, before, Height(tree.root))
	}
	return tree.root
}
