// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/orderedtree/configuration"
	"github.com/bitmark-inc/orderedtree/fault"
)

// basic defaults (directories and files are relative to the directory
// holding the configuration file)
const (
	defaultLogDirectory = "log"
	defaultLogFile      = "bst-demo.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRandomCount      = 15
	defaultRandomMaximum    = 100
	defaultUnbalanceCount   = 5
	defaultUnbalanceMinimum = 100
	defaultUnbalanceMaximum = 200
)

// LoglevelMap - to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// RangeType - how many values to generate and their limits
type RangeType struct {
	Count   int   `gluamapper:"count" json:"count"`
	Minimum int64 `gluamapper:"minimum" json:"minimum"`
	Maximum int64 `gluamapper:"maximum" json:"maximum"`
}

// Configuration - the whole configuration file
type Configuration struct {
	Random    RangeType            `gluamapper:"random" json:"random"`
	Unbalance RangeType            `gluamapper:"unbalance" json:"unbalance"`
	Logging   logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		Random: RangeType{
			Count:   defaultRandomCount,
			Minimum: 0,
			Maximum: defaultRandomMaximum,
		},
		Unbalance: RangeType{
			Count:   defaultUnbalanceCount,
			Minimum: defaultUnbalanceMinimum,
			Maximum: defaultUnbalanceMaximum,
		},
		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	if err := options.Random.validate(); nil != err {
		return nil, err
	}
	if err := options.Unbalance.validate(); nil != err {
		return nil, err
	}

	// make log directory absolute and ensure it exists
	if !filepath.IsAbs(options.Logging.Directory) {
		options.Logging.Directory = filepath.Join(dataDirectory, options.Logging.Directory)
	}
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}

func (r RangeType) validate() error {
	if r.Count < 0 {
		return fault.ErrInvalidCount
	}
	if r.Maximum <= r.Minimum {
		return fault.ErrInvalidRange
	}
	return nil
}
