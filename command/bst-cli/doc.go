// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bst-cli - one shot operations on a tree built from the integer
// arguments
//
// the tree is built balanced from the arguments unless --sequential
// is given, in which case the arguments are inserted one at a time in
// the order given.
package main
