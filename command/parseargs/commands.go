// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/parseargs/configuration"
	"github.com/bitmark-inc/parseargs/fault"
	"github.com/bitmark-inc/parseargs/getoptions"
)

type outputSettings struct {
	quiet      bool
	jsonErrors bool
}

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--json-errors] --config-file=FILE command [-- arguments...]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")
		fmt.Printf("  config-test                (cfg)    - check the configuration file and list its options\n\n")
		fmt.Printf("  parse [-- ARGS...]         (p)      - parse ARGS with the configured options\n")
		fmt.Printf("                                        and print the result as JSON\n\n")

	default:
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration command handler
//
// commands that use the declared options
func processConfigCommand(arguments []string, theConfiguration *configuration.Configuration, settings outputSettings, log *logger.L) bool {

	if 0 == len(arguments) {
		return false
	}
	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "config-test", "cfg":
		options, err := declaredOptions(theConfiguration)
		if nil != err {
			fault.Criticalf("configuration: %q  error: %s", theConfiguration.FileName(), err)
			exitwithstatus.Message("configuration: %q  error: %s", theConfiguration.FileName(), err)
		}
		for _, o := range options {
			log.Infof("option: %s  kind: %s", o.Name, o.Kind)
		}
		if !settings.quiet {
			printJson("options", describeOptions(options))
		}

	case "parse", "p":
		log.Debugf("arguments: %q", arguments)
		result, err := parseArguments(theConfiguration, arguments)
		if nil != err {
			log.Errorf("parse error: %s", err)
			fmt.Fprintln(os.Stderr, formatError(err, settings.jsonErrors))
			exitwithstatus.Exit(1)
		}
		log.Debugf("positional: %q", result.Positional)
		if !settings.quiet {
			printJson("", result)
		}

	default:
		return false
	}

	return true
}

// convert and check the options from the configuration
func declaredOptions(theConfiguration *configuration.Configuration) ([]getoptions.Option, error) {
	options, err := theConfiguration.GetOptions(logger.New("config"))
	if nil != err {
		return nil, err
	}
	if err := getoptions.Validate(options); nil != err {
		return nil, err
	}
	return options, nil
}

// parse the arguments with the declared options
//
// configuration problems are logged as critical, parse errors are returned
func parseArguments(theConfiguration *configuration.Configuration, arguments []string) (*getoptions.Result, error) {
	options, err := declaredOptions(theConfiguration)
	if nil != err {
		fault.Criticalf("configuration: %q  error: %s", theConfiguration.FileName(), err)
		return nil, err
	}
	return getoptions.Parse(arguments, options)
}

// printable summary of an option
type optionSummary struct {
	Name      string      `json:"name"`
	Alias     string      `json:"alias,omitempty"`
	Kind      string      `json:"kind"`
	Duplicate string      `json:"duplicate"`
	Default   interface{} `json:"default,omitempty"`
	Transform bool        `json:"transform"`
}

func describeOptions(options []getoptions.Option) []optionSummary {
	summary := make([]optionSummary, len(options))
	for i, o := range options {
		alias := ""
		if 0 != o.Alias {
			alias = string(o.Alias)
		}
		summary[i] = optionSummary{
			Name:      o.Name,
			Alias:     alias,
			Kind:      o.Kind.String(),
			Duplicate: o.Duplicate.String(),
			Default:   o.Default,
			Transform: nil != o.Transform,
		}
	}
	return summary
}
