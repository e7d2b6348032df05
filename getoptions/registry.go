// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/bitmark-inc/parseargs/fault"
)

const (
	negationPrefix = "no-"
	positionalKey  = "_"
)

// lookup tables built fresh for each parse
//
// a repeated name or alias is not an error here, the later
// declaration replaces the earlier one
type registry struct {
	byName  map[string]*Option
	byAlias map[rune]string
	order   []string // first declaration order of names
}

func newRegistry(options []Option) *registry {
	r := &registry{
		byName:  make(map[string]*Option, len(options)),
		byAlias: make(map[rune]string, len(options)),
		order:   make([]string, 0, len(options)),
	}
	for i := range options {
		o := &options[i]
		if _, ok := r.byName[o.Name]; !ok {
			r.order = append(r.order, o.Name)
		}
		r.byName[o.Name] = o
		if 0 != o.Alias {
			r.byAlias[o.Alias] = o.Name
		}
	}
	return r
}

func (r *registry) lookupName(name string) (*Option, bool) {
	o, ok := r.byName[name]
	return o, ok
}

func (r *registry) lookupAlias(alias rune) (*Option, bool) {
	name, ok := r.byAlias[alias]
	if !ok {
		return nil, false
	}
	return r.lookupName(name)
}

// Validate - check a list of options for declarations that could not
// be reached from the command line
//
// Parse does not call this; it is for programs that build their
// option list from external configuration
func Validate(options []Option) error {
	names := make(map[string]struct{}, len(options))
	aliases := make(map[rune]string, len(options))

	for _, o := range options {
		if !validName(o.Name) {
			return fmt.Errorf("option %q: %w", o.Name, fault.ErrInvalidOptionName)
		}
		if _, ok := names[o.Name]; ok {
			return fmt.Errorf("option %q: %w", o.Name, fault.ErrDuplicateOptionName)
		}
		names[o.Name] = struct{}{}

		if Flag != o.Kind && Value != o.Kind {
			return fmt.Errorf("option %q: %w", o.Name, fault.ErrInvalidOptionKind)
		}
		if o.Duplicate < LastWins || o.Duplicate > Accumulate {
			return fmt.Errorf("option %q: %w", o.Name, fault.ErrInvalidDuplicate)
		}

		if 0 == o.Alias {
			continue
		}
		if !validAlias(o.Alias) {
			return fmt.Errorf("option %q alias %q: %w", o.Name, o.Alias, fault.ErrInvalidOptionAlias)
		}
		if previous, ok := aliases[o.Alias]; ok {
			return fmt.Errorf("option %q alias %q already used by %q: %w", o.Name, o.Alias, previous, fault.ErrDuplicateOptionAlias)
		}
		aliases[o.Alias] = o.Name
	}
	return nil
}

// a name must be reachable as --name, so it cannot start with a
// hyphen, contain an equals sign or be shadowed by negation
func validName(name string) bool {
	if "" == name || positionalKey == name {
		return false
	}
	if strings.HasPrefix(name, "-") || strings.HasPrefix(name, negationPrefix) {
		return false
	}
	return !strings.ContainsAny(name, "= \t\r\n")
}

// digits are excluded since -5 is always a number
func validAlias(alias rune) bool {
	switch {
	case '-' == alias, '=' == alias:
		return false
	case unicode.IsDigit(alias), unicode.IsSpace(alias):
		return false
	default:
		return unicode.IsPrint(alias)
	}
}
