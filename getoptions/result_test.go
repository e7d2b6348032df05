// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/parseargs/getoptions"
)

func TestResultAccessors(t *testing.T) {
	options := []getoptions.Option{
		{Name: "include", Alias: 'I', Kind: getoptions.Value, Duplicate: getoptions.Accumulate},
		{Name: "output", Alias: 'o', Kind: getoptions.Value, Default: "a.out"},
		{Name: "debug", Alias: 'g', Kind: getoptions.Flag, Duplicate: getoptions.Accumulate},
		{Name: "strip", Alias: 's', Kind: getoptions.Flag},
		{Name: "jobs", Alias: 'j', Kind: getoptions.Value, Default: 4},
	}

	result, err := getoptions.Parse([]string{"-I/usr/include", "-I", "lib", "-gg", "--no-debug", "main.c"}, options)
	require.Nil(t, err, "parse error")

	assert.True(t, result.Has("include"), "include missing")
	assert.False(t, result.Has("strip"), "strip present")

	assert.Equal(t, []string{"/usr/include", "lib"}, result.StringList("include"), "wrong include list")
	assert.Equal(t, "lib", result.StringValue("include"), "wrong last include")
	assert.Equal(t, []string{"a.out"}, result.StringList("output"), "wrong output list")
	assert.Equal(t, "a.out", result.StringValue("output"), "wrong output")
	assert.Equal(t, "4", result.StringValue("jobs"), "wrong jobs")
	assert.Nil(t, result.StringList("strip"), "absent option list")
	assert.Equal(t, "", result.StringValue("strip"), "absent option string")

	assert.False(t, result.BoolValue("debug"), "last debug should be false")
	assert.False(t, result.BoolValue("strip"), "absent flag should be false")
	assert.False(t, result.BoolValue("output"), "string is not a flag")
	assert.Equal(t, []string{"main.c"}, result.Positional, "wrong positional")
}

func TestResultJSON(t *testing.T) {
	options := []getoptions.Option{
		{Name: "all", Alias: 'a', Kind: getoptions.Flag},
		{Name: "message", Alias: 'm', Kind: getoptions.Value, Default: ""},
	}

	result, err := getoptions.Parse([]string{"-am", "hello", "x", "--", "-y"}, options)
	require.Nil(t, err, "parse error")

	b, err := json.Marshal(result)
	require.Nil(t, err, "marshal error")
	assert.JSONEq(t, `{"_":["x","-y"],"all":true,"message":"hello"}`, string(b), "wrong JSON")

	result, err = getoptions.Parse(nil, nil)
	require.Nil(t, err, "parse error")
	b, err = json.Marshal(result)
	require.Nil(t, err, "marshal error")
	assert.JSONEq(t, `{"_":[]}`, string(b), "wrong empty JSON")
}
