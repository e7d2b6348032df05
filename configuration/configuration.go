// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/parseargs/fault"
)

// basic defaults (directories and files are relative to the directory of the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "parseargs.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		"config":          "info",
		logger.DefaultTag: "critical",
	}
)

// LoggerType - logging section
type LoggerType struct {
	Directory string            `gluamapper:"directory" yaml:"directory" toml:"directory" hcl:"directory,optional"`
	File      string            `gluamapper:"file" yaml:"file" toml:"file" hcl:"file,optional"`
	Size      int               `gluamapper:"size" yaml:"size" toml:"size" hcl:"size,optional"`
	Count     int               `gluamapper:"count" yaml:"count" toml:"count" hcl:"count,optional"`
	Console   bool              `gluamapper:"console" yaml:"console" toml:"console" hcl:"console,optional"`
	Levels    map[string]string `gluamapper:"levels" yaml:"levels" toml:"levels" hcl:"levels,optional"`
}

// OptionType - declaration of one command-line option
//
// Transform is the name of a builtin transform or, from a Lua
// configuration, a Lua function
type OptionType struct {
	Name      string      `gluamapper:"name" yaml:"name" toml:"name"`
	Alias     string      `gluamapper:"alias" yaml:"alias" toml:"alias"`
	Kind      string      `gluamapper:"kind" yaml:"kind" toml:"kind"`
	Default   interface{} `gluamapper:"default" yaml:"default" toml:"default"`
	Duplicate string      `gluamapper:"duplicate" yaml:"duplicate" toml:"duplicate"`
	Transform interface{} `gluamapper:"transform" yaml:"transform" toml:"transform"`
}

// Configuration - the decoded configuration file
type Configuration struct {
	Options []OptionType `gluamapper:"options" yaml:"options" toml:"options"`
	Logging LoggerType   `gluamapper:"logging" yaml:"logging" toml:"logging"`

	fileName string
	state    *lua.LState // kept open for Lua transforms
}

// Reader - decode a configuration file over the defaults in config
type Reader interface {
	Read(fileName string, config *Configuration) error
}

// readers by file extension
var readers = map[string]Reader{
	".lua":  luaReader{},
	".yaml": yamlReader{},
	".yml":  yamlReader{},
	".toml": tomlReader{},
	".hcl":  hclReader{},
}

// GetConfiguration - will read decode and verify the configuration
//
// the caller must Close the result
func GetConfiguration(configurationFileName string) (*Configuration, error) {
	if "" == configurationFileName {
		return nil, fault.ErrMissingConfigFile
	}
	reader, ok := readers[strings.ToLower(filepath.Ext(configurationFileName))]
	if !ok {
		return nil, fault.ErrUnsupportedConfigFormat
	}
	return ReadConfiguration(configurationFileName, reader)
}

// ReadConfiguration - read using a specific reader
func ReadConfiguration(configurationFileName string, reader Reader) (*Configuration, error) {
	if "" == configurationFileName {
		return nil, fault.ErrMissingConfigFile
	}

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	config := &Configuration{
		Options: []OptionType{},
		Logging: LoggerType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels.clone(),
		},
		fileName: configurationFileName,
	}

	if err := reader.Read(configurationFileName, config); nil != err {
		config.Close()
		return nil, err
	}

	// force all relevant items to be absolute paths
	config.Logging.Directory = ensureAbsolute(dataDirectory, config.Logging.Directory)
	if 0 == len(config.Logging.Levels) {
		config.Logging.Levels = defaultLogLevels.clone()
	}

	return config, nil
}

// FileName - absolute path of the configuration file
func (c *Configuration) FileName() string {
	return c.fileName
}

// LoggerConfiguration - settings for logger.Initialise
func (c *Configuration) LoggerConfiguration() logger.Configuration {
	levels := make(map[string]string, len(c.Logging.Levels))
	for tag, level := range c.Logging.Levels {
		levels[tag] = level
	}
	return logger.Configuration{
		Directory: c.Logging.Directory,
		File:      c.Logging.File,
		Size:      c.Logging.Size,
		Count:     c.Logging.Count,
		Console:   c.Logging.Console,
		Levels:    levels,
	}
}

// Close - release the Lua state, if any
func (c *Configuration) Close() {
	if nil != c.state {
		c.state.Close()
		c.state = nil
	}
}

func (m LoglevelMap) clone() LoglevelMap {
	c := make(LoglevelMap, len(m))
	for tag, level := range m {
		c[tag] = level
	}
	return c
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
