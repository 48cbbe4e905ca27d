// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree that is built
// balanced from a set of values and can be explicitly rebalanced
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// The tree holds keys only; each distinct key is stored once.  New
// and Build deduplicate and sort the values then split repeatedly at
// the midpoint, so a freshly built tree is always height balanced.
// Insert and Delete keep the ordering but never rotate, so a run of
// skewed inserts degrades the tree towards a list until Rebalance is
// called.
//
// Inserting a key that is already present is a no-op, and deleting or
// finding an absent key simply reports false/nil.  A nil item is never
// stored and is always absent.
//
// All items in one tree must have the same dynamic type.  New reports
// mixed types as fault.ErrMixedItems, but Insert, Delete and Find pass
// the argument straight to Compare, so an item of another type panics
// in the Compare type assertion of the built-in key types.
package bst
