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
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrDuplicateOptionAlias    = ExistsError("duplicate option alias")
	ErrDuplicateOptionName     = ExistsError("duplicate option name")
	ErrInvalidConfiguration    = InvalidError("configuration must return a table")
	ErrInvalidDuplicate        = InvalidError("invalid duplicate handling")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidOptionAlias      = InvalidError("invalid option alias")
	ErrInvalidOptionKind       = InvalidError("invalid option kind")
	ErrInvalidOptionName       = InvalidError("invalid option name")
	ErrInvalidTransform        = InvalidError("invalid transform")
	ErrMissingConfigFile       = NotFoundError("configuration file is required")
	ErrMissingValue            = InvalidError("missing value")
	ErrNotTransformable        = ProcessError("value cannot be transformed")
	ErrUnknownArgument         = NotFoundError("unknown argument")
	ErrUnknownTransform        = NotFoundError("unknown transform")
	ErrUnsupportedConfigFormat = NotFoundError("unsupported configuration format")
	ErrUnsupportedDefault      = InvalidError("unsupported default value type")
)

// the error interface base method
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
