// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions_test

import (
	"testing"

	"github.com/bitmark-inc/parseargs/getoptions"
)

func TestDuplicateLastWins(t *testing.T) {
	options := []getoptions.Option{
		{Name: "output", Kind: getoptions.Value, Default: ""},
	}
	tests := []testItem{
		{
			in: []string{"--output", "a.txt", "--output", "b.txt"},
			op: getoptions.OptionsMap{"output": "b.txt"},
			ar: []string{},
		},
	}
	runTests(t, options, tests)
}

func TestDuplicateFirstWins(t *testing.T) {
	options := []getoptions.Option{
		{Name: "output", Alias: 'o', Kind: getoptions.Value, Default: "", Duplicate: getoptions.FirstWins},
		{Name: "quiet", Alias: 'q', Kind: getoptions.Flag, Duplicate: getoptions.FirstWins},
	}
	tests := []testItem{
		{
			in: []string{"--output", "a.txt", "-ob.txt", "--output=c.txt"},
			op: getoptions.OptionsMap{"output": "a.txt"},
			ar: []string{},
		},
		{
			in: []string{"--no-quiet", "-q"},
			op: getoptions.OptionsMap{"output": "", "quiet": false},
			ar: []string{},
		},
	}
	runTests(t, options, tests)
}

func TestDuplicateAccumulate(t *testing.T) {
	options := []getoptions.Option{
		{Name: "tag", Alias: 't', Kind: getoptions.Value, Default: "none", Duplicate: getoptions.Accumulate},
		{Name: "verbose", Alias: 'v', Kind: getoptions.Flag, Duplicate: getoptions.Accumulate},
	}
	tests := []testItem{
		{
			// single occurrence is not a list
			in: []string{"--tag", "v1"},
			op: getoptions.OptionsMap{"tag": "v1"},
			ar: []string{},
		},
		{
			in: []string{"--tag", "v1", "-tv2"},
			op: getoptions.OptionsMap{"tag": []interface{}{"v1", "v2"}},
			ar: []string{},
		},
		{
			in: []string{"--tag", "v1", "-t=v2", "x", "--tag=v3"},
			op: getoptions.OptionsMap{"tag": []interface{}{"v1", "v2", "v3"}},
			ar: []string{"x"},
		},
		{
			in: []string{"-vvv", "--no-verbose"},
			op: getoptions.OptionsMap{"tag": "none", "verbose": []interface{}{true, true, true, false}},
			ar: []string{},
		},
		{
			in: []string{},
			op: getoptions.OptionsMap{"tag": "none"},
			ar: []string{},
		},
	}
	runTests(t, options, tests)
}

// a repeated declaration replaces the earlier one
func TestRepeatedDeclaration(t *testing.T) {
	options := []getoptions.Option{
		{Name: "mode", Alias: 'm', Kind: getoptions.Flag},
		{Name: "other", Alias: 'm', Kind: getoptions.Flag},
		{Name: "mode", Kind: getoptions.Value, Default: "fast"},
	}
	tests := []testItem{
		{
			in: []string{"--mode", "slow", "-m"},
			op: getoptions.OptionsMap{"mode": "slow", "other": true},
			ar: []string{},
		},
		{
			in: []string{},
			op: getoptions.OptionsMap{"mode": "fast"},
			ar: []string{},
		},
	}
	runTests(t, options, tests)
}
