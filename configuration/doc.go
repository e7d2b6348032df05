// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - read option declarations from a file
//
// the format is selected by the file extension:
//   .lua         - Lua script returning a table; most of base Lua is
//                  available, and a transform may be a Lua function
//   .yaml .yml   - YAML document
//   .toml        - TOML document
//   .hcl         - HCL with one "option" block per option
//
// only Lua accepts a function as a transform, the other formats take
// the name of a builtin transform
//
// paths in the logging section are relative to the directory
// containing the configuration file
package configuration
