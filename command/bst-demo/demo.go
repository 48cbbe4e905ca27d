// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedtree/bst"
	"github.com/bitmark-inc/orderedtree/fault"
)

// run the demonstration, writing the results to w
func runDemo(w io.Writer, options *Configuration, log *logger.L) error {

	values, err := randomValues(options.Random)
	if nil != err {
		return err
	}
	log.Infof("initial values: %v", values)

	tree, err := bst.New(values)
	if nil != err {
		return err
	}
	tree.SetLog(logger.New("bst"))

	fmt.Fprintf(w, "values: %v\n", values)
	tree.Render(w)
	if err := report(w, tree, log, "build"); nil != err {
		return err
	}
	printOrders(w, tree)

	extra, err := randomValues(options.Unbalance)
	if nil != err {
		return err
	}
	added := 0
	for _, v := range extra {
		if tree.Insert(bst.Int(v)) {
			added += 1
		}
	}
	log.Infof("inserted: %d of %v", added, extra)

	fmt.Fprintf(w, "\ninserted: %v\n", extra)
	tree.Render(w)
	if err := report(w, tree, log, "insert"); nil != err {
		return err
	}

	tree.Rebalance()

	fmt.Fprintf(w, "\nrebalanced\n")
	tree.Render(w)
	if err := report(w, tree, log, "rebalance"); nil != err {
		return err
	}
	if !tree.IsBalanced() {
		fault.Criticalf("tree unbalanced after rebalance: height: %d", tree.Height())
		return fault.ErrUnbalancedAfterRebuild
	}
	printOrders(w, tree)

	return nil
}

// print balance and verify the tree
func report(w io.Writer, tree *bst.Tree, log *logger.L, step string) error {
	balanced := tree.IsBalanced()
	fmt.Fprintf(w, "count: %d  height: %d  balanced: %t\n", tree.Count(), tree.Height(), balanced)
	log.Infof("%s: count: %d  height: %d  balanced: %t", step, tree.Count(), tree.Height(), balanced)

	if !tree.Check() {
		fault.Criticalf("inconsistent tree after: %s", step)
		return fault.ErrInconsistentTree
	}
	return nil
}

func printOrders(w io.Writer, tree *bst.Tree) {
	orders := []struct {
		name     string
		traverse func(bst.Visitor) []bst.Item
	}{
		{"level", tree.LevelOrder},
		{"pre", tree.PreOrder},
		{"post", tree.PostOrder},
		{"in", tree.InOrder},
	}
	for _, order := range orders {
		s := make([]string, 0, tree.Count())
		order.traverse(func(node *bst.Node) {
			s = append(s, fmt.Sprintf("%v", node.Value()))
		})
		fmt.Fprintf(w, "%-5s order: %s\n", order.name, strings.Join(s, " "))
	}
}
