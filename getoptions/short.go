// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions

// process: -x  -xyz  -ovalue  -o=value  -o value
func (p *parser) short(item string) error {
	cluster, value, inline := split(item[1:])

	letters := []rune(cluster)
	if 0 == len(letters) {
		return p.unknown(item)
	}

	last := len(letters) - 1
	for i, letter := range letters[:last] {
		o, ok := p.registry.lookupAlias(letter)
		if !ok {
			continue // unknown letters before the last are ignored
		}
		if Value == o.Kind {
			// rest of the cluster is the value
			p.store(o, string(letters[i+1:]))
			return nil
		}
		p.store(o, true)
	}

	o, ok := p.registry.lookupAlias(letters[last])
	if !ok {
		return p.unknown(item)
	}
	return p.assign(o, value, inline)
}
