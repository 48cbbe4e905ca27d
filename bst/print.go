// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
	"strings"
)

// connector strings for the print routine
const (
	leftConnector  = "└── "
	rightConnector = "┌── "
	verticalIndent = "│   "
	blankIndent    = "    "
)

// Render - write a text graphic of the tree to w, right sub-tree
// above each node and left sub-tree below
// returns the number of levels printed
func (tree *Tree) Render(w io.Writer) int {
	if nil == tree.root {
		return 0
	}
	return render(w, tree.root, "", true)
}

// String - the rendered tree
func (tree *Tree) String() string {
	s := strings.Builder{}
	tree.Render(&s)
	return s.String()
}

// internal print - returns the depth of the sub-tree
func render(w io.Writer, p *Node, prefix string, isLeft bool) int {
	rd := 0
	ld := 0
	if nil != p.right {
		t := blankIndent
		if isLeft {
			t = verticalIndent
		}
		rd = render(w, p.right, prefix+t, false)
	}

	c := rightConnector
	if isLeft {
		c = leftConnector
	}
	fmt.Fprintf(w, "%s%s%v\n", prefix, c, p.value)

	if nil != p.left {
		t := verticalIndent
		if isLeft {
			t = blankIndent
		}
		ld = render(w, p.left, prefix+t, true)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
