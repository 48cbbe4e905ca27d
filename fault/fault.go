// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrConfigurationNotTable  = InvalidError("configuration is not a table")
	ErrInconsistentTree       = ProcessError("inconsistent tree")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidItem            = InvalidError("invalid item")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidRange           = InvalidError("invalid range")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidTraversalOrder  = InvalidError("invalid traversal order")
	ErrInvalidValue           = InvalidError("invalid value")
	ErrMixedItems             = InvalidError("mixed item types")
	ErrMissingValue           = InvalidError("missing value")
	ErrNotFoundConfigFile     = NotFoundError("config file is not found")
	ErrNotSequence            = InvalidError("values are not a sequence")
	ErrValueNotFound          = NotFoundError("value not found")
	ErrUnbalancedAfterRebuild = ProcessError("unbalanced after rebuild")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
