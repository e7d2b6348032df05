// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

// store a value, combining with any previous value for the option
func (p *parser) store(o *Option, value interface{}) {
	options := p.result.Options

	existing, ok := options[o.Name]
	if !ok {
		options[o.Name] = value
		return
	}

	switch o.Duplicate {
	case FirstWins:
		// keep the existing value
	case Accumulate:
		if list, ok := existing.([]interface{}); ok {
			options[o.Name] = append(list, value)
		} else {
			options[o.Name] = []interface{}{existing, value}
		}
	default:
		options[o.Name] = value
	}
}
