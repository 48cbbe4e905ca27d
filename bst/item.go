// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"math"
	"reflect"

	"github.com/bitmark-inc/orderedtree/fault"
)

// Item - a key item must implement the Compare function
//
// Compare returns a negative number if the item is less than the
// argument, zero if equal and a positive number if greater
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Int - signed integer key
type Int int64

// Uint - unsigned integer key
type Uint uint64

// Float - floating point key, NaN orders below every other value
// and equal to itself
type Float float64

// String - string key, ordered bytewise
type String string

// Compare - Item interface for Int
func (i Int) Compare(x interface{}) int {
	j := x.(Int)
	if i < j {
		return -1
	}
	if i > j {
		return +1
	}
	return 0
}

// Compare - Item interface for Uint
func (i Uint) Compare(x interface{}) int {
	j := x.(Uint)
	if i < j {
		return -1
	}
	if i > j {
		return +1
	}
	return 0
}

// Compare - Item interface for Float
func (f Float) Compare(x interface{}) int {
	g := x.(Float)
	fn := math.IsNaN(float64(f))
	gn := math.IsNaN(float64(g))
	switch {
	case fn && gn:
		return 0
	case fn:
		return -1
	case gn:
		return +1
	case f < g:
		return -1
	case f > g:
		return +1
	}
	return 0
}

// Compare - Item interface for String
func (s String) Compare(x interface{}) int {
	t := x.(String)
	if s < t {
		return -1
	}
	if s > t {
		return +1
	}
	return 0
}

// convert a slice or array of items or plain scalars to a list of
// items all of the same dynamic type
func toItems(values interface{}) ([]Item, error) {

	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(values)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fault.ErrNotSequence
	}

	items := make([]Item, rv.Len())
	first := reflect.Type(nil)
	for i := 0; i < rv.Len(); i += 1 {
		item, err := toItem(rv.Index(i))
		if nil != err {
			return nil, err
		}
		t := reflect.TypeOf(item)
		if nil == first {
			first = t
		} else if t != first {
			return nil, fault.ErrMixedItems
		}
		items[i] = item
	}
	return items, nil
}

// convert a single element
func toItem(v reflect.Value) (Item, error) {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, fault.ErrInvalidItem
		}
		v = v.Elem()
	}

	if v.CanInterface() {
		if item, ok := v.Interface().(Item); ok {
			return item, nil
		}
	}

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(v.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Float(v.Float()), nil
	case reflect.String:
		return String(v.String()), nil
	default:
		return nil, fault.ErrInvalidItem
	}
}
