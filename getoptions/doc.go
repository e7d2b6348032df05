// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package getoptions - command-line options processing
//
// Parses options of the forms:
//   -x                    - flag x (or value option x taking the next argument)
//   -xyz                  - cluster: flags x and y, then z
//   -ovalue               - value option o with attached value
//   -o=value  -o value    - value option o
//   --option              - flag option (or value option taking the next argument)
//   --option=value        - set value
//   --no-option           - set flag option to false
//   --                    - stop option parsing
//
// Note:
//   Negative numbers such as -5 or -2.5 are never options; they are
//   positional arguments or values.
//   Unknown letters inside a cluster (other than the last) are ignored,
//   an unknown last letter or unknown long option is an error.
//   Repeated options follow the per-option Duplicate setting:
//   LastWins (default), FirstWins or Accumulate into a list.
//   Defaults fill options that never occurred, then transforms are
//   applied to every option that has a value.
//
// Returns:
//   Result.Positional     - []string  (all non-option arguments and everything after --)
//   Result.Options        - map["option"]=value  (canonical names only, never aliases)
package getoptions
