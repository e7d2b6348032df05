// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

import (
	"os"
	"path/filepath"
)

// state for a single parse
type parser struct {
	inputs   []string
	index    int
	registry *registry
	result   *Result
}

// GetOS - parse the OS command-line
func GetOS(options []Option) (program string, result *Result, err error) {
	program = filepath.Base(os.Args[0])
	result, err = Parse(os.Args[1:], options)
	return
}

// Parse - get options from array
//
// on error the result is nil; the error is an *Error except for
// failures returned by a Transform, which are passed through unchanged
func Parse(inputs []string, options []Option) (*Result, error) {
	p := &parser{
		inputs:   inputs,
		registry: newRegistry(options),
		result:   newResult(),
	}

	if err := p.scan(); nil != err {
		return nil, err
	}

	p.applyDefaults()

	if err := p.applyTransforms(); nil != err {
		return nil, err
	}
	return p.result, nil
}

// single left to right pass over the inputs
func (p *parser) scan() error {
	for p.index = 0; p.index < len(p.inputs); p.index += 1 {
		item := p.inputs[p.index]

		c, hyphens := classify(item)
		switch c {
		case terminator:
			p.result.Positional = append(p.result.Positional, p.inputs[p.index+1:]...)
			return nil

		case positional:
			p.result.Positional = append(p.result.Positional, item)

		case candidate:
			var err error
			switch hyphens {
			case 1:
				err = p.short(item)
			case 2:
				err = p.long(item)
			default:
				err = p.unknown(item)
			}
			if nil != err {
				return err
			}
		}
	}
	return nil
}
