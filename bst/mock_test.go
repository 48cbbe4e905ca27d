// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/orderedtree/bst"
	"github.com/bitmark-inc/orderedtree/bst/mocks"
)

func TestFindOnEmptyTreeDoesNotCompare(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockItem(ctl)
	m.EXPECT().Compare(gomock.Any()).Times(0)

	tree := bst.NewFromItems()
	assert.Nil(t, tree.Find(m), "found in empty tree")
}

func TestFindComparesNodeWithProbe(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	stored := mocks.NewMockItem(ctl)
	probe := mocks.NewMockItem(ctl)

	tree := bst.NewFromItems(stored)

	stored.EXPECT().Compare(probe).Return(0).Times(1)
	p := tree.Find(probe)
	if assert.NotNil(t, p, "equal item not found") {
		assert.Equal(t, stored, p.Value(), "wrong node")
	}
}

func TestInsertRoutesByComparator(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	stored := mocks.NewMockItem(ctl)
	smaller := mocks.NewMockItem(ctl)

	tree := bst.NewFromItems(stored)

	gomock.InOrder(
		stored.EXPECT().Compare(smaller).Return(+1), // descend
		stored.EXPECT().Compare(smaller).Return(+1), // tracked value position
	)
	assert.True(t, tree.Insert(smaller), "insert failed")
	assert.Equal(t, smaller, tree.Root().Left().Value(), "smaller item not placed left")
	assert.Nil(t, tree.Root().Right(), "unexpected right child")
}
