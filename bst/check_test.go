// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"testing"
)

// check must reject trees whose nodes were altered behind its back
func TestCheckDetectsCorruption(t *testing.T) {
	tree := NewFromItems(Int(1), Int(2), Int(3), Int(4), Int(5), Int(6), Int(7))
	if !tree.Check() {
		t.Fatalf("new tree inconsistent")
	}

	// ordering: a value in the left sub-tree above the root
	tree.root.left.right.value = Int(5)
	if tree.Check() {
		t.Errorf("ordering violation not detected")
	}
	tree.root.left.right.value = Int(3)

	// count
	tree.count += 1
	if tree.Check() {
		t.Errorf("count mismatch not detected")
	}
	tree.count -= 1

	// tracked values out of step with the nodes
	tree.values[0] = Int(0)
	if tree.Check() {
		t.Errorf("tracked value mismatch not detected")
	}
	tree.values[0] = Int(1)

	if !tree.Check() {
		t.Errorf("restored tree inconsistent")
	}
}

func TestTracking(t *testing.T) {
	tree := NewFromItems()
	for _, v := range []Int{5, 1, 9, 3, 7} {
		tree.track(v)
	}
	expected := []Int{1, 3, 5, 7, 9}
	for i, v := range expected {
		if tree.values[i] != v {
			t.Fatalf("tracked[%d]: %v  expected: %v", i, tree.values[i], v)
		}
	}

	tree.untrack(Int(4))
	if 5 != len(tree.values) {
		t.Errorf("absent value untracked: %v", tree.values)
	}
	tree.untrack(Int(1))
	tree.untrack(Int(9))
	if 3 != len(tree.values) || Int(3) != tree.values[0] || Int(7) != tree.values[2] {
		t.Errorf("wrong tracked values: %v", tree.values)
	}
}
