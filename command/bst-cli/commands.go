// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/orderedtree/bst"
	"github.com/bitmark-inc/orderedtree/fault"
)

// create the tree from the command arguments
func makeTree(c *cli.Context, globals globalFlags) (*bst.Tree, error) {
	values := make([]int64, 0, len(c.Args()))
	for _, s := range c.Args() {
		v, err := parseValue(s)
		if nil != err {
			return nil, err
		}
		values = append(values, v)
	}

	if !globals.sequential {
		return bst.New(values)
	}

	tree := bst.NewFromItems()
	for _, v := range values {
		tree.Insert(bst.Int(v))
	}
	return tree, nil
}

func parseValue(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidValue
	}
	return v, nil
}

// the --value option of the current command
func requiredValue(c *cli.Context) (bst.Int, error) {
	s := c.String("value")
	if "" == s {
		return 0, fault.ErrMissingValue
	}
	v, err := parseValue(s)
	if nil != err {
		return 0, err
	}
	return bst.Int(v), nil
}

func printValues(w io.Writer, values []bst.Item) {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprintf("%v", v)
	}
	fmt.Fprintf(w, "%s\n", strings.Join(s, " "))
}

func printBalance(w io.Writer, tree *bst.Tree) {
	fmt.Fprintf(w, "count: %d  height: %d  balanced: %t\n", tree.Count(), tree.Height(), tree.IsBalanced())
}

func runBuild(c *cli.Context, globals globalFlags) error {
	tree, err := makeTree(c, globals)
	if nil != err {
		return err
	}
	w := c.App.Writer
	tree.Render(w)
	printBalance(w, tree)
	return nil
}

func runPrint(c *cli.Context, globals globalFlags) error {
	tree, err := makeTree(c, globals)
	if nil != err {
		return err
	}
	tree.Render(c.App.Writer)
	return nil
}

func runTraverse(c *cli.Context, globals globalFlags) error {
	tree, err := makeTree(c, globals)
	if nil != err {
		return err
	}

	var values []bst.Item
	switch strings.ToLower(c.String("order")) {
	case "in", "":
		values = tree.InOrder(nil)
	case "pre":
		values = tree.PreOrder(nil)
	case "post":
		values = tree.PostOrder(nil)
	case "level":
		values = tree.LevelOrder(nil)
	default:
		return fault.ErrInvalidTraversalOrder
	}
	printValues(c.App.Writer, values)
	return nil
}

func runFind(c *cli.Context, globals globalFlags) error {
	value, err := requiredValue(c)
	if nil != err {
		return err
	}
	tree, err := makeTree(c, globals)
	if nil != err {
		return err
	}
	if !tree.Has(value) {
		return fault.ErrValueNotFound
	}
	fmt.Fprintf(c.App.Writer, "found: %d  depth: %d\n", value, tree.Depth(value))
	return nil
}

func runInsert(c *cli.Context, globals globalFlags) error {
	value, err := requiredValue(c)
	if nil != err {
		return err
	}
	tree, err := makeTree(c, globals)
	if nil != err {
		return err
	}
	w := c.App.Writer
	if !tree.Insert(value) {
		fmt.Fprintf(w, "already present: %d\n", value)
	}
	printValues(w, tree.InOrder(nil))
	if globals.verbose {
		tree.Render(w)
	}
	printBalance(w, tree)
	return nil
}

func runDelete(c *cli.Context, globals globalFlags) error {
	value, err := requiredValue(c)
	if nil != err {
		return err
	}
	tree, err := makeTree(c, globals)
	if nil != err {
		return err
	}
	w := c.App.Writer
	if !tree.Delete(value) {
		fmt.Fprintf(w, "not present: %d\n", value)
	}
	printValues(w, tree.InOrder(nil))
	if globals.verbose {
		tree.Render(w)
	}
	printBalance(w, tree)
	return nil
}

func runBalance(c *cli.Context, globals globalFlags) error {
	tree, err := makeTree(c, globals)
	if nil != err {
		return err
	}
	printBalance(c.App.Writer, tree)
	return nil
}

func runRebalance(c *cli.Context, globals globalFlags) error {
	tree, err := makeTree(c, globals)
	if nil != err {
		return err
	}
	w := c.App.Writer
	printBalance(w, tree)
	tree.Rebalance()
	if globals.verbose {
		tree.Render(w)
	}
	printBalance(w, tree)
	if !tree.IsBalanced() {
		return fault.ErrUnbalancedAfterRebuild
	}
	return nil
}
