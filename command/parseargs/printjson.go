// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"

	"github.com/bitmark-inc/parseargs/fault"
	"github.com/bitmark-inc/parseargs/getoptions"
)

func printJson(title string, message interface{}) {
	b, err := json.MarshalIndent(message, "", "  ")
	fault.PanicIfError("printjson marshal", err)

	if "" == title {
		fmt.Printf("%s\n", b)
	} else {
		fmt.Printf("%s:\n%s\n", title, b)
	}
}

var errorColour = color.New(color.FgRed, color.Bold)

// text for a parse error, the record as JSON or a coloured message
func formatError(err error, asJSON bool) string {
	if e, ok := err.(*getoptions.Error); ok && asJSON {
		b, jsonErr := json.MarshalIndent(e.Record(), "", "  ")
		if nil == jsonErr {
			return string(b)
		}
	}
	return errorColour.Sprintf("error: %s", err)
}
