// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Visitor - called once for each node during a traversal
type Visitor func(node *Node)

// InOrder - left, node, right; values are returned in ascending order
// visit may be nil
func (tree *Tree) InOrder(visit Visitor) []Item {
	values := make([]Item, 0, tree.count)
	return inOrder(tree.root, visit, values)
}

func inOrder(p *Node, visit Visitor, values []Item) []Item {
	if nil == p {
		return values
	}
	values = inOrder(p.left, visit, values)
	if nil != visit {
		visit(p)
	}
	values = append(values, p.value)
	return inOrder(p.right, visit, values)
}

// PreOrder - node, left, right
// visit may be nil
func (tree *Tree) PreOrder(visit Visitor) []Item {
	values := make([]Item, 0, tree.count)
	return preOrder(tree.root, visit, values)
}

func preOrder(p *Node, visit Visitor, values []Item) []Item {
	if nil == p {
		return values
	}
	if nil != visit {
		visit(p)
	}
	values = append(values, p.value)
	values = preOrder(p.left, visit, values)
	return preOrder(p.right, visit, values)
}

// PostOrder - left, right, node
// visit may be nil
func (tree *Tree) PostOrder(visit Visitor) []Item {
	values := make([]Item, 0, tree.count)
	return postOrder(tree.root, visit, values)
}

func postOrder(p *Node, visit Visitor, values []Item) []Item {
	if nil == p {
		return values
	}
	values = postOrder(p.left, visit, values)
	values = postOrder(p.right, visit, values)
	if nil != visit {
		visit(p)
	}
	return append(values, p.value)
}

// LevelOrder - breadth first, left to right within each level
//
// the values are always returned, even when visit is supplied
func (tree *Tree) LevelOrder(visit Visitor) []Item {
	values := make([]Item, 0, tree.count)
	if nil == tree.root {
		return values
	}
	queue := []*Node{tree.root}
	for len(queue) > 0 {
		p := queue[0]
		queue[0] = nil
		queue = queue[1:]

		if nil != visit {
			visit(p)
		}
		values = append(values, p.value)

		if nil != p.left {
			queue = append(queue, p.left)
		}
		if nil != p.right {
			queue = append(queue, p.right)
		}
	}
	return values
}
