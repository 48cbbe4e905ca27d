// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - add a new leaf for value, no rebalancing is done
// returns false if the value is nil or was already present
func (tree *Tree) Insert(value Item) bool {
	if nil == value {
		return false
	}
	pp := slot(&tree.root, value)
	if nil != *pp {
		return false
	}
	*pp = &Node{value: value}
	tree.count += 1
	tree.track(value)
	return true
}

// internal: walk down from pp to the link holding value, or to the
// empty link where value would be attached
func slot(pp **Node, value Item) **Node {
	for nil != *pp {
		c := (*pp).value.Compare(value)
		if c > 0 { // (*pp).value > value
			pp = &(*pp).left
		} else if c < 0 { // (*pp).value < value
			pp = &(*pp).right
		} else {
			break
		}
	}
	return pp
}
