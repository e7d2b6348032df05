// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/BurntSushi/toml"
)

type tomlReader struct{}

// Read - decode a TOML file over the defaults
func (tomlReader) Read(fileName string, config *Configuration) error {
	_, err := toml.DecodeFile(fileName, config)
	return err
}
