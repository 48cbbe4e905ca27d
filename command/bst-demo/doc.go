// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bst-demo - exercise a tree with random values
//
// builds a balanced tree from random values, prints it in every
// traversal order, then inserts larger values to unbalance it and
// rebalances it again.  The counts and ranges come from a Lua
// configuration file, see bst-demo.conf.sample.
package main
