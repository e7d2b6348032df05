// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/parseargs/configuration"
	"github.com/bitmark-inc/parseargs/fault"
	"github.com/bitmark-inc/parseargs/getoptions"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// options of this program
var flags = []getoptions.Option{
	{Name: "help", Alias: 'h', Kind: getoptions.Flag},
	{Name: "verbose", Alias: 'v', Kind: getoptions.Flag},
	{Name: "quiet", Alias: 'q', Kind: getoptions.Flag},
	{Name: "version", Alias: 'V', Kind: getoptions.Flag},
	{Name: "json-errors", Alias: 'j', Kind: getoptions.Flag},
	{Name: "config-file", Alias: 'c', Kind: getoptions.Value, Duplicate: getoptions.Accumulate},
}

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	program, options, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if options.BoolValue("version") {
		processSetupCommand(program, []string{"version"})
		return
	}

	if options.BoolValue("help") {
		processSetupCommand(program, []string{"help"})
		return
	}

	arguments := options.Positional

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	configurationFiles := options.StringList("config-file")
	if 1 != len(configurationFiles) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(configurationFiles))
	}

	// read options and parse the configuration file
	configurationFile := configurationFiles[0]
	theConfiguration, err := configuration.GetConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}
	defer theConfiguration.Close()

	// start logging
	logging := theConfiguration.LoggerConfiguration()
	if options.BoolValue("verbose") {
		logging.Levels["main"] = "debug"
		logging.Levels["config"] = "debug"
	}
	if err = os.MkdirAll(logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q creation failed, error: %s", program, logging.Directory, err)
	}
	if err = logger.Initialise(logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("configuration: %q", theConfiguration.FileName())

	settings := outputSettings{
		quiet:      options.BoolValue("quiet"),
		jsonErrors: options.BoolValue("json-errors"),
	}

	// these commands require the configuration
	if !processConfigCommand(arguments, theConfiguration, settings, log) {
		processSetupCommand(program, []string{"help"})
	}
}
