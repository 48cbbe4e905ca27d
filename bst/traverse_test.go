// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderedtree/bst"
)

// shape:   4
//        2   6
//       1 3 5 7
var sevenValues = []int{7, 6, 5, 4, 3, 2, 1}

func TestTraversalOrders(t *testing.T) {
	tree := newTree(t, sevenValues)

	assert.Equal(t, ints(1, 2, 3, 4, 5, 6, 7), tree.InOrder(nil), "wrong in-order")
	assert.Equal(t, ints(4, 2, 1, 3, 6, 5, 7), tree.PreOrder(nil), "wrong pre-order")
	assert.Equal(t, ints(1, 3, 2, 5, 7, 6, 4), tree.PostOrder(nil), "wrong post-order")
	assert.Equal(t, ints(4, 2, 6, 1, 3, 5, 7), tree.LevelOrder(nil), "wrong level-order")
}

func TestTraversalVisitor(t *testing.T) {
	tree := newTree(t, sevenValues)

	traversals := map[string]func(bst.Visitor) []bst.Item{
		"in":    tree.InOrder,
		"pre":   tree.PreOrder,
		"post":  tree.PostOrder,
		"level": tree.LevelOrder,
	}

	for name, traverse := range traversals {
		visited := []bst.Item{}
		seen := make(map[*bst.Node]int)
		values := traverse(func(node *bst.Node) {
			visited = append(visited, node.Value())
			seen[node] += 1
		})

		// the sequence is returned even when a visitor is given
		assert.Equal(t, traverse(nil), values, "%s: visitor changed result", name)
		assert.Equal(t, values, visited, "%s: visit order differs from result", name)
		assert.Equal(t, 7, len(seen), "%s: wrong number of nodes visited", name)
		for node, n := range seen {
			assert.Equal(t, 1, n, "%s: node %v visited %d times", name, node.Value(), n)
		}
	}
}

func TestTraversalIsRestartable(t *testing.T) {
	tree := newTree(t, []int{32, 21, 38, 47, 28, 7, 35})

	first := tree.LevelOrder(nil)
	second := tree.LevelOrder(nil)
	assert.Equal(t, first, second, "level-order not deterministic")

	first[0] = bst.Int(-1)
	assert.Equal(t, bst.Int(32), tree.LevelOrder(nil)[0], "result shares storage with tree")
}

func TestTraversalDegenerate(t *testing.T) {
	tree := newTree(t, []int{})
	for _, v := range []int64{1, 2, 3, 4} {
		tree.Insert(bst.Int(v))
	}
	assert.Equal(t, ints(1, 2, 3, 4), tree.InOrder(nil), "wrong in-order")
	assert.Equal(t, ints(1, 2, 3, 4), tree.PreOrder(nil), "wrong pre-order")
	assert.Equal(t, ints(4, 3, 2, 1), tree.PostOrder(nil), "wrong post-order")
	assert.Equal(t, ints(1, 2, 3, 4), tree.LevelOrder(nil), "wrong level-order")
}
