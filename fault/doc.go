// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances and last resort logging
//
// Provides a single instance of each error so callers compare with ==
// or test the class with the IsErr... functions, never by matching
// message text.  Tree operations only return InvalidError values from
// construction; absent values are reported as nil/false results.
package fault
