// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package getoptions_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/parseargs/fault"
	"github.com/bitmark-inc/parseargs/getoptions"
)

func TestUnknownArgument(t *testing.T) {
	tests := []struct {
		in       []string
		argument string
	}{
		{[]string{"--unknown"}, "--unknown"},
		{[]string{"x", "--unknown=1", "y"}, "--unknown=1"},
		{[]string{"--no-unknown"}, "--no-unknown"},
		{[]string{"--no-count"}, "--no-count"}, // negation of a value option
		{[]string{"-x"}, "-x"},
		{[]string{"-ax"}, "-ax"}, // last letter of a cluster must be known
		{[]string{"-a5"}, "-a5"},
		{[]string{"---all"}, "---all"},
		{[]string{"-=x"}, "-=x"},
		{[]string{"--=x"}, "--=x"},
		{[]string{"--count", "3", "--bad", "--", "--other"}, "--bad"},
	}

	for i, s := range tests {
		result, err := getoptions.Parse(s.in, commonOptions)
		if nil == err {
			t.Errorf("%d: %q  unexpected success: %#v", i, s.in, result)
			continue
		}
		assert.Nil(t, result, "%d: result returned with error", i)

		var e *getoptions.Error
		require.True(t, errors.As(err, &e), "%d: wrong error type: %T", i, err)
		assert.Equal(t, getoptions.UnknownArgument, e.Code, "%d: wrong code", i)
		assert.Equal(t, s.argument, e.Argument, "%d: wrong argument", i)
		assert.Equal(t, s.in, e.Inputs, "%d: wrong inputs", i)
		assert.True(t, getoptions.IsErrUnknownArgument(err), "%d: not unknown argument", i)
		assert.False(t, getoptions.IsErrMissingValue(err), "%d: reported as missing value", i)
		assert.True(t, errors.Is(err, fault.ErrUnknownArgument), "%d: not a fault unknown argument", i)
	}
}

func TestUnknownArgumentWithoutOptions(t *testing.T) {
	_, err := getoptions.Parse([]string{"--unknown"}, nil)
	require.NotNil(t, err, "expected error")
	assert.Equal(t, "unknown argument: --unknown", err.Error(), "wrong message")
}

func TestMissingValue(t *testing.T) {
	tests := []struct {
		in       []string
		argument string
	}{
		{[]string{"--count"}, "count"},
		{[]string{"--count", "--all"}, "count"},
		{[]string{"--output", "--"}, "output"},
		{[]string{"-c"}, "count"},
		{[]string{"-abc", "-a"}, "count"},
		{[]string{"-o", "--", "file"}, "output"},
	}

	for i, s := range tests {
		result, err := getoptions.Parse(s.in, commonOptions)
		if nil == err {
			t.Errorf("%d: %q  unexpected success: %#v", i, s.in, result)
			continue
		}
		assert.Nil(t, result, "%d: result returned with error", i)

		var e *getoptions.Error
		require.True(t, errors.As(err, &e), "%d: wrong error type: %T", i, err)
		assert.Equal(t, getoptions.MissingValue, e.Code, "%d: wrong code", i)
		assert.Equal(t, s.argument, e.Argument, "%d: wrong argument", i)
		assert.True(t, getoptions.IsErrMissingValue(err), "%d: not missing value", i)
		assert.True(t, errors.Is(err, fault.ErrMissingValue), "%d: not a fault missing value", i)
	}
}

func TestMissingValueScenario(t *testing.T) {
	options := []getoptions.Option{
		{Name: "port", Kind: getoptions.Value, Default: "3000"},
	}
	_, err := getoptions.Parse([]string{"--port"}, options)
	require.NotNil(t, err, "expected error")

	e, ok := err.(*getoptions.Error)
	require.True(t, ok, "wrong error type: %T", err)
	assert.Equal(t, "port", e.Argument, "wrong argument")
	assert.Equal(t, "missing value for option: port", e.Error(), "wrong message")
}

func TestErrorRecord(t *testing.T) {
	in := []string{"a", "--nope"}
	_, err := getoptions.Parse(in, nil)
	require.NotNil(t, err, "expected error")

	e := err.(*getoptions.Error)
	r := e.Record()
	assert.Equal(t, getoptions.Record{
		Code:     getoptions.UnknownArgument,
		Argument: "--nope",
		Inputs:   []string{"a", "--nope"},
		Message:  "unknown argument: --nope",
	}, r, "wrong record")

	// the record must not share the input array
	in[0] = "changed"
	assert.Equal(t, "a", r.Inputs[0], "record aliases the inputs")

	b, err := json.Marshal(e)
	require.Nil(t, err, "marshal error")
	assert.JSONEq(t, `{"code":"UNKNOWN_ARGUMENT","argument":"--nope","tokens":["a","--nope"],"message":"unknown argument: --nope"}`, string(b), "wrong JSON")
}
