// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Delete - removes a specific item from the tree
// returns false if the value was not present
func (tree *Tree) Delete(value Item) bool {
	if nil == value {
		return false
	}
	pp := slot(&tree.root, value)
	if nil == *pp { // key not in tree
		return false
	}
	remove(pp)
	tree.count -= 1
	tree.untrack(value)
	return true
}

// internal: unlink the node at *pp
//
// a node with two children takes the value of its in-order successor
// and that successor is then removed from the right sub-tree; the
// successor has no left child so the second removal is a simple splice
func remove(pp **Node) {
	q := *pp
	switch {
	case nil == q.left:
		*pp = q.right
	case nil == q.right:
		*pp = q.left
	default:
		successor := q.right.first()
		q.value = successor.value
		remove(slot(&q.right, successor.value))
	}
}
