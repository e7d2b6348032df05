// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"encoding/json"
	"fmt"
)

// OptionsMap - resolved values keyed by canonical option name
type OptionsMap map[string]interface{}

// Result - output of Parse
type Result struct {
	Positional []string
	Options    OptionsMap
}

func newResult() *Result {
	return &Result{
		Positional: make([]string, 0, 10),
		Options:    make(OptionsMap),
	}
}

// Has - true if the option was given or defaulted
func (r *Result) Has(name string) bool {
	_, ok := r.Options[name]
	return ok
}

// StringValue - the value of an option as a string
//
// an accumulated list yields its last item, a missing option yields ""
func (r *Result) StringValue(name string) string {
	value, ok := r.Options[name]
	if !ok {
		return ""
	}
	return stringOf(last(value))
}

// BoolValue - the value of a flag
//
// an accumulated list yields its last item
func (r *Result) BoolValue(name string) bool {
	b, ok := last(r.Options[name]).(bool)
	return ok && b
}

// StringList - every value of an option as strings
//
// a single value becomes a one item list, a missing option is nil
func (r *Result) StringList(name string) []string {
	value, ok := r.Options[name]
	if !ok {
		return nil
	}
	list, ok := value.([]interface{})
	if !ok {
		return []string{stringOf(value)}
	}
	s := make([]string, len(list))
	for i, item := range list {
		s[i] = stringOf(item)
	}
	return s
}

// MarshalJSON - options as top level keys with positionals under "_"
func (r *Result) MarshalJSON() ([]byte, error) {
	m := make(map[string]interface{}, len(r.Options)+1)
	for name, value := range r.Options {
		m[name] = value
	}
	m[positionalKey] = r.Positional
	return json.Marshal(m)
}

func last(value interface{}) interface{} {
	if list, ok := value.([]interface{}); ok {
		if 0 == len(list) {
			return nil
		}
		return list[len(list)-1]
	}
	return value
}

func stringOf(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}
