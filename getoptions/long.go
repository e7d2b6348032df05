// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"strings"
)

// process: --name  --name=value  --no-name
func (p *parser) long(item string) error {
	name, value, inline := split(item[2:])

	if strings.HasPrefix(name, negationPrefix) {
		o, ok := p.registry.lookupName(name[len(negationPrefix):])
		if !ok || Flag != o.Kind {
			return p.unknown(item)
		}
		p.store(o, false) // any inline value is ignored
		return nil
	}

	o, ok := p.registry.lookupName(name)
	if !ok {
		return p.unknown(item)
	}
	return p.assign(o, value, inline)
}

// set the value of an option that ends an argument
//
// flags never consume the next argument; value options take the
// inline value or the next argument if it is not an option
func (p *parser) assign(o *Option, value string, inline bool) error {
	if Flag == o.Kind {
		p.store(o, !(inline && "false" == value))
		return nil
	}
	if inline {
		p.store(o, value)
		return nil
	}
	if next, ok := p.lookahead(); ok {
		p.store(o, next)
		return nil
	}
	return p.missing(o)
}

// consume the following argument if it can be a value
func (p *parser) lookahead() (string, bool) {
	i := p.index + 1
	if i >= len(p.inputs) {
		return "", false
	}
	if c, _ := classify(p.inputs[i]); positional != c {
		return "", false
	}
	p.index = i
	return p.inputs[i], true
}
