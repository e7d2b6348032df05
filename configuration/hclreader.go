// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/zclconf/go-cty/cty"

	"github.com/bitmark-inc/parseargs/fault"
)

// HCL layout:
//
//   option "message" {
//     alias   = "m"
//     kind    = "value"
//     default = ""
//   }
//   logging {
//     directory = "log"
//   }
type hclConfiguration struct {
	Options []hclOption `hcl:"option,block"`
	Logging *LoggerType `hcl:"logging,block"`
}

type hclOption struct {
	Name      string    `hcl:"name,label"`
	Alias     string    `hcl:"alias,optional"`
	Kind      string    `hcl:"kind,optional"`
	Default   cty.Value `hcl:"default,optional"`
	Duplicate string    `hcl:"duplicate,optional"`
	Transform string    `hcl:"transform,optional"`
}

type hclReader struct{}

// Read - decode an HCL file over the defaults
func (hclReader) Read(fileName string, config *Configuration) error {
	var h hclConfiguration
	if err := hclsimple.DecodeFile(fileName, nil, &h); nil != err {
		return err
	}

	for _, o := range h.Options {
		def, err := ctyToGo(o.Default)
		if nil != err {
			return err
		}
		option := OptionType{
			Name:      o.Name,
			Alias:     o.Alias,
			Kind:      o.Kind,
			Default:   def,
			Duplicate: o.Duplicate,
		}
		if "" != o.Transform {
			option.Transform = o.Transform
		}
		config.Options = append(config.Options, option)
	}

	if nil != h.Logging {
		mergeLogging(&config.Logging, h.Logging)
	}
	return nil
}

// convert a scalar default value
func ctyToGo(v cty.Value) (interface{}, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsKnown() {
		return nil, fault.ErrUnsupportedDefault
	}
	t := v.Type()
	switch {
	case t.Equals(cty.String):
		return v.AsString(), nil
	case t.Equals(cty.Bool):
		return v.True(), nil
	case t.Equals(cty.Number):
		bf := v.AsBigFloat()
		if bf.IsInt() {
			i, _ := bf.Int64()
			return int(i), nil
		}
		f, _ := bf.Float64()
		return f, nil
	default:
		return nil, fault.ErrUnsupportedDefault
	}
}

// only the items that were set replace the defaults
func mergeLogging(dst *LoggerType, src *LoggerType) {
	if "" != src.Directory {
		dst.Directory = src.Directory
	}
	if "" != src.File {
		dst.File = src.File
	}
	if 0 != src.Size {
		dst.Size = src.Size
	}
	if 0 != src.Count {
		dst.Count = src.Count
	}
	if src.Console {
		dst.Console = true
	}
	for tag, level := range src.Levels {
		dst.Levels[tag] = level
	}
}
