// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"crypto/rand"
	"encoding/binary"
)

// generate count values in the range [minimum, maximum)
func randomValues(r RangeType) ([]int64, error) {
	if err := r.validate(); nil != err {
		return nil, err
	}

	span := uint64(r.Maximum - r.Minimum)
	values := make([]int64, r.Count)
	buffer := make([]byte, 8)
	for i := range values {
		if _, err := rand.Read(buffer); nil != err {
			return nil, err
		}
		values[i] = r.Minimum + int64(binary.BigEndian.Uint64(buffer)%span)
	}
	return values, nil
}
