// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bitmark-inc/parseargs/fault"
)

// Code - discriminant for parse errors
type Code string

// error codes
const (
	UnknownArgument Code = "UNKNOWN_ARGUMENT"
	MissingValue    Code = "MISSING_VALUE"
)

// Error - a parse failure
//
// Argument is the raw argument for UnknownArgument and the canonical
// option name for MissingValue; Inputs is the complete argument list
type Error struct {
	Code     Code
	Argument string
	Inputs   []string
}

// Record - plain form of an Error for logging or JSON output
type Record struct {
	Code     Code     `json:"code"`
	Argument string   `json:"argument"`
	Inputs   []string `json:"tokens"`
	Message  string   `json:"message"`
}

func (e *Error) Error() string {
	switch e.Code {
	case MissingValue:
		return fmt.Sprintf("missing value for option: %s", e.Argument)
	default:
		return fmt.Sprintf("unknown argument: %s", e.Argument)
	}
}

// Unwrap - the fault class so errors.Is can match without the details
func (e *Error) Unwrap() error {
	switch e.Code {
	case MissingValue:
		return fault.ErrMissingValue
	default:
		return fault.ErrUnknownArgument
	}
}

// Record - convert to a plain structure
func (e *Error) Record() Record {
	return Record{
		Code:     e.Code,
		Argument: e.Argument,
		Inputs:   append([]string{}, e.Inputs...),
		Message:  e.Error(),
	}
}

// MarshalJSON - encode as the record
func (e *Error) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Record())
}

// IsErrUnknownArgument - determine if an error is an unknown argument
func IsErrUnknownArgument(err error) bool {
	return hasCode(err, UnknownArgument)
}

// IsErrMissingValue - determine if an error is a missing value
func IsErrMissingValue(err error) bool {
	return hasCode(err, MissingValue)
}

func hasCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return code == e.Code
	}
	return false
}

func (p *parser) unknown(item string) error {
	return &Error{
		Code:     UnknownArgument,
		Argument: item,
		Inputs:   append([]string{}, p.inputs...),
	}
}

func (p *parser) missing(o *Option) error {
	return &Error{
		Code:     MissingValue,
		Argument: o.Name,
		Inputs:   append([]string{}, p.inputs...),
	}
}
