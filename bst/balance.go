// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Height - links on the longest path down from node
// an empty sub-tree is -1 and a leaf is 0
func Height(node *Node) int {
	if nil == node {
		return -1
	}
	lh := Height(node.left)
	rh := Height(node.right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// Height - height of the whole tree
func (tree *Tree) Height() int {
	return Height(tree.root)
}

// IsBalanced - true if at every node of the sub-tree the heights of
// the two children differ by at most one
func IsBalanced(node *Node) bool {
	_, ok := balanced(node)
	return ok
}

// IsBalanced - balance check from the root
func (tree *Tree) IsBalanced() bool {
	return IsBalanced(tree.root)
}

// internal: single bottom-up pass returning height and balance
func balanced(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	lh, ok := balanced(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := balanced(p.right)
	if !ok {
		return 0, false
	}
	d := lh - rh
	if d < -1 || d > 1 {
		return 0, false
	}
	if lh > rh {
		return 1 + lh, true
	}
	return 1 + rh, true
}
