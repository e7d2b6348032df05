// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

// fill in defaults for options that never occurred
func (p *parser) applyDefaults() {
	for _, name := range p.registry.order {
		if _, ok := p.result.Options[name]; ok {
			continue
		}
		o := p.registry.byName[name]
		if nil != o.Default {
			p.result.Options[name] = o.Default
		}
	}
}

// apply each transform once, to parsed and default values alike
//
// a transform error is returned unchanged
func (p *parser) applyTransforms() error {
	for _, name := range p.registry.order {
		o := p.registry.byName[name]
		if nil == o.Transform {
			continue
		}
		value, ok := p.result.Options[name]
		if !ok {
			continue
		}
		transformed, err := o.Transform(value)
		if nil != err {
			return err
		}
		p.result.Options[name] = transformed
	}
	return nil
}
