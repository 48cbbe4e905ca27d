// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Find - find a specific item
// returns nil if not found
func (tree *Tree) Find(value Item) *Node {
	if nil == value {
		return nil
	}
	p := tree.root
	for nil != p {
		c := p.value.Compare(value)
		if 0 == c {
			return p
		}
		if c > 0 { // p.value > value
			p = p.left
		} else {
			p = p.right
		}
	}
	return nil
}

// Has - true if value is in the tree
func (tree *Tree) Has(value Item) bool {
	return nil != tree.Find(value)
}

// Depth - number of links from the root to the node holding value
// returns -1 if not found
func (tree *Tree) Depth(value Item) int {
	if nil == value {
		return -1
	}
	depth := 0
	p := tree.root
	for nil != p {
		c := p.value.Compare(value)
		if 0 == c {
			return depth
		}
		if c > 0 {
			p = p.left
		} else {
			p = p.right
		}
		depth += 1
	}
	return -1
}
