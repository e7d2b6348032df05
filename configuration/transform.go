// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bitmark-inc/parseargs/fault"
	"github.com/bitmark-inc/parseargs/getoptions"
)

// builtin transforms by configuration name
//
// the scalar transforms apply to each item of an accumulated list
var builtinTransforms = map[string]getoptions.TransformFunc{
	"integer": eachItem(toInteger),
	"float":   eachItem(toFloat),
	"boolean": eachItem(toBoolean),
	"upper":   eachItem(onString(strings.ToUpper)),
	"lower":   eachItem(onString(strings.ToLower)),
	"trim":    eachItem(onString(strings.TrimSpace)),
	"split":   split,
	"count":   count,
}

// BuiltinTransform - lookup a transform by name
func BuiltinTransform(name string) (getoptions.TransformFunc, error) {
	t, ok := builtinTransforms[name]
	if !ok {
		return nil, fmt.Errorf("transform %q: %w", name, fault.ErrUnknownTransform)
	}
	return t, nil
}

func eachItem(f getoptions.TransformFunc) getoptions.TransformFunc {
	return func(value interface{}) (interface{}, error) {
		list, ok := value.([]interface{})
		if !ok {
			return f(value)
		}
		result := make([]interface{}, len(list))
		for i, item := range list {
			v, err := f(item)
			if nil != err {
				return nil, err
			}
			result[i] = v
		}
		return result, nil
	}
}

func onString(f func(string) string) getoptions.TransformFunc {
	return func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, notTransformable(value)
		}
		return f(s), nil
	}
}

func toInteger(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return nil, notTransformable(value)
		}
		return int(v), nil
	default:
		return nil, notTransformable(value)
	}
}

func toFloat(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	default:
		return nil, notTransformable(value)
	}
}

func toBoolean(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		return strconv.ParseBool(strings.TrimSpace(v))
	case bool:
		return v, nil
	default:
		return nil, notTransformable(value)
	}
}

// comma separated string to a list of trimmed strings; for an
// accumulated list every item is split and the results joined
func split(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case string:
		if "" == v {
			return []string{}, nil
		}
		items := strings.Split(v, ",")
		for i, item := range items {
			items[i] = strings.TrimSpace(item)
		}
		return items, nil
	case []interface{}:
		all := []string{}
		for _, item := range v {
			s, err := split(item)
			if nil != err {
				return nil, err
			}
			all = append(all, s.([]string)...)
		}
		return all, nil
	default:
		return nil, notTransformable(value)
	}
}

// number of occurrences, e.g. for -vvv
func count(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case nil:
		return 0, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case []interface{}:
		n := 0
		for _, item := range v {
			if false != item {
				n += 1
			}
		}
		return n, nil
	default:
		return 1, nil
	}
}

func notTransformable(value interface{}) error {
	return fmt.Errorf("%w: %#v", fault.ErrNotTransformable, value)
}

func stringOf(value interface{}) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
