// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Check - verify ordering, node count and that the tracked values
// match the nodes
func (tree *Tree) Check() bool {
	n, ok := tree.check(tree.root, nil, nil)
	if !ok {
		return false
	}
	if n != tree.count || n != len(tree.values) {
		tree.fail("count: %d  expected: %d  tracked: %d", n, tree.count, len(tree.values))
		return false
	}

	i := 0
	ok = true
	tree.InOrder(func(p *Node) {
		if ok && 0 != p.value.Compare(tree.values[i]) {
			tree.fail("node: %v  tracked: %v", p.value, tree.values[i])
			ok = false
		}
		i += 1
	})
	return ok
}

// internal: every value in the sub-tree must lie strictly between
// low and high, nil meaning unbounded
// returns the number of nodes
func (tree *Tree) check(p *Node, low Item, high Item) (int, bool) {
	if nil == p {
		return 0, true
	}
	if nil != low && p.value.Compare(low) <= 0 {
		tree.fail("node: %v  not above: %v", p.value, low)
		return 0, false
	}
	if nil != high && p.value.Compare(high) >= 0 {
		tree.fail("node: %v  not below: %v", p.value, high)
		return 0, false
	}
	nl, ok := tree.check(p.left, low, p.value)
	if !ok {
		return 0, false
	}
	nr, ok := tree.check(p.right, p.value, high)
	if !ok {
		return 0, false
	}
	return 1 + nl + nr, true
}

func (tree *Tree) fail(format string, arguments ...interface{}) {
	if nil != tree.log {
		tree.log.Warnf("check failed: "+format, arguments...)
	}
}
