// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"unicode/utf8"

	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/parseargs/fault"
	"github.com/bitmark-inc/parseargs/getoptions"
)

// GetOptions - convert the declarations to parser options
//
// options holding Lua transforms share the configuration's Lua state,
// so they must not be used by more than one goroutine at a time
func (c *Configuration) GetOptions(log *logger.L) ([]getoptions.Option, error) {
	options := make([]getoptions.Option, 0, len(c.Options))

	for _, declaration := range c.Options {
		o, err := c.option(declaration)
		if nil != err {
			return nil, fmt.Errorf("option %q: %w", declaration.Name, err)
		}
		if nil != log {
			log.Debugf("option: %s  alias: %q  kind: %s  duplicate: %s  default: %#v  transform: %v",
				o.Name, o.Alias, o.Kind, o.Duplicate, o.Default, nil != o.Transform)
		}
		options = append(options, o)
	}
	return options, nil
}

func (c *Configuration) option(declaration OptionType) (getoptions.Option, error) {
	kind, err := getoptions.ParseKind(declaration.Kind)
	if nil != err {
		return getoptions.Option{}, err
	}

	duplicate, err := getoptions.ParseDuplicate(declaration.Duplicate)
	if nil != err {
		return getoptions.Option{}, err
	}

	alias := rune(0)
	if "" != declaration.Alias {
		r, size := utf8.DecodeRuneInString(declaration.Alias)
		if utf8.RuneError == r || size != len(declaration.Alias) {
			return getoptions.Option{}, fault.ErrInvalidOptionAlias
		}
		alias = r
	}

	transform, err := c.transform(declaration.Transform)
	if nil != err {
		return getoptions.Option{}, err
	}

	return getoptions.Option{
		Name:      declaration.Name,
		Alias:     alias,
		Kind:      kind,
		Default:   declaration.Default,
		Duplicate: duplicate,
		Transform: transform,
	}, nil
}

func (c *Configuration) transform(t interface{}) (getoptions.TransformFunc, error) {
	switch v := t.(type) {
	case nil:
		return nil, nil
	case string:
		if "" == v {
			return nil, nil
		}
		return BuiltinTransform(v)
	case *lua.LFunction:
		return c.luaTransform(v), nil
	default:
		return nil, fault.ErrInvalidTransform
	}
}
