// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"regexp"
)

// class of a raw argument
type class int

const (
	positional class = iota
	terminator
	candidate
)

const terminatorToken = "--"

// integers and decimals with an optional sign, e.g. -5 or -2.5
var numeric = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// classify an argument, for an option candidate also return the
// number of leading hyphens
func classify(item string) (class, int) {
	if terminatorToken == item {
		return terminator, 0
	}
	if len(item) < 2 {
		return positional, 0 // includes a bare "-"
	}
	if numeric.MatchString(item) {
		return positional, 0
	}
	if '-' != item[0] {
		return positional, 0
	}
	n := 0
	for n < len(item) && '-' == item[n] {
		n += 1
	}
	return candidate, n
}

// split "name=value" on the first equals sign
func split(s string) (name string, value string, inline bool) {
	for i := 0; i < len(s); i += 1 {
		if '=' == s[i] {
			return s[:i], s[i+1:], true
		}
	}
	return s, "", false
}
