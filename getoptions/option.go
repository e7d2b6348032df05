// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"github.com/bitmark-inc/parseargs/fault"
)

// Kind - whether an option takes a value
type Kind int

// option kinds
const (
	Flag  Kind = iota // boolean, never consumes an argument
	Value             // requires a value
)

// Duplicate - how repeated occurrences of an option combine
type Duplicate int

// duplicate handling
const (
	LastWins   Duplicate = iota // overwrite with the newest value
	FirstWins                   // keep the earliest value
	Accumulate                  // collect every value into a list
)

// TransformFunc - post-process the final value of an option
type TransformFunc func(value interface{}) (interface{}, error)

// Option - declaration of a single option
//
// Default is used when the option never occurs, nil means no default
// Transform is applied after defaults, nil means no transform
type Option struct {
	Name      string
	Alias     rune
	Kind      Kind
	Default   interface{}
	Duplicate Duplicate
	Transform TransformFunc
}

func (k Kind) String() string {
	switch k {
	case Flag:
		return "flag"
	case Value:
		return "value"
	default:
		return "*unknown*"
	}
}

// ParseKind - convert a configuration string to a kind
func ParseKind(s string) (Kind, error) {
	switch s {
	case "flag":
		return Flag, nil
	case "value":
		return Value, nil
	default:
		return Flag, fault.ErrInvalidOptionKind
	}
}

func (d Duplicate) String() string {
	switch d {
	case LastWins:
		return "last-wins"
	case FirstWins:
		return "first-wins"
	case Accumulate:
		return "accumulate"
	default:
		return "*unknown*"
	}
}

// ParseDuplicate - convert a configuration string to a duplicate
// handling, empty string selects the default
func ParseDuplicate(s string) (Duplicate, error) {
	switch s {
	case "", "last-wins":
		return LastWins, nil
	case "first-wins":
		return FirstWins, nil
	case "accumulate":
		return Accumulate, nil
	default:
		return LastWins, fault.ErrInvalidDuplicate
	}
}
