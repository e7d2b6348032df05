// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/parseargs/fault"
)

var mapperOption = gluamapper.Option{
	NameFunc: func(s string) string {
		return s
	},
	TagName: "gluamapper",
}

type luaReader struct{}

// Read - read and execute a Lua file and assign the results to the
// configuration structure
//
// the Lua state stays open so that Lua transform functions can be
// called; it is released by Configuration.Close
func (luaReader) Read(fileName string, config *Configuration) error {
	L := lua.NewState()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	// execute configuration
	if err := L.DoFile(fileName); err != nil {
		L.Close()
		return err
	}

	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		L.Close()
		return fault.ErrInvalidConfiguration
	}

	mapper := gluamapper.Mapper{Option: mapperOption}
	if err := mapper.Map(table, config); nil != err {
		L.Close()
		return err
	}

	config.state = L
	return nil
}

// wrap a Lua function as a transform
func (c *Configuration) luaTransform(fn *lua.LFunction) func(interface{}) (interface{}, error) {
	return func(value interface{}) (interface{}, error) {
		L := c.state
		if nil == L {
			return nil, fault.ErrInvalidTransform
		}
		err := L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, toLuaValue(L, value))
		if nil != err {
			return nil, err
		}
		result := L.Get(-1)
		L.Pop(1)
		return gluamapper.ToGoValue(result, mapperOption), nil
	}
}

// convert a parsed option value to Lua
func toLuaValue(L *lua.LState, value interface{}) lua.LValue {
	switch v := value.(type) {
	case nil:
		return lua.LNil
	case string:
		return lua.LString(v)
	case bool:
		return lua.LBool(v)
	case int:
		return lua.LNumber(v)
	case int64:
		return lua.LNumber(v)
	case float64:
		return lua.LNumber(v)
	case []string:
		t := L.NewTable()
		for _, item := range v {
			t.Append(lua.LString(item))
		}
		return t
	case []interface{}:
		t := L.NewTable()
		for _, item := range v {
			t.Append(toLuaValue(L, item))
		}
		return t
	default:
		if lv, ok := value.(lua.LValue); ok {
			return lv
		}
		return lua.LString(stringOf(value))
	}
}
