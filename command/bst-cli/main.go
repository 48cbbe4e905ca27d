// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

type globalFlags struct {
	verbose    bool
	sequential bool
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp()
	if err := app.Run(os.Args); nil != err {
		exitwithstatus.Message("%s: error: %s", app.Name, err)
	}
}

func newApp() *cli.App {
	globals := globalFlags{}

	app := cli.NewApp()
	app.Name = "bst-cli"
	app.Usage = "binary search tree operations on integer values"
	app.Version = version
	app.HideVersion = true
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:        "verbose, v",
			Usage:       " print the tree after changes",
			Destination: &globals.verbose,
		},
		cli.BoolFlag{
			Name:        "sequential, s",
			Usage:       " insert values in argument order instead of building balanced",
			Destination: &globals.sequential,
		},
	}

	valueFlag := cli.StringFlag{
		Name:  "value, n",
		Value: "",
		Usage: "*integer value",
	}

	app.Commands = []cli.Command{
		{
			Name:      "build",
			Usage:     "build a tree and show its shape",
			ArgsUsage: "VALUE...",
			Action: func(c *cli.Context) error {
				return runBuild(c, globals)
			},
		},
		{
			Name:      "print",
			Usage:     "display the tree",
			ArgsUsage: "VALUE...",
			Action: func(c *cli.Context) error {
				return runPrint(c, globals)
			},
		},
		{
			Name:      "traverse",
			Usage:     "list values in a traversal order",
			ArgsUsage: "VALUE...",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "order, o",
					Value: "in",
					Usage: " in|pre|post|level [in]",
				},
			},
			Action: func(c *cli.Context) error {
				return runTraverse(c, globals)
			},
		},
		{
			Name:      "find",
			Usage:     "find a value and report its depth",
			ArgsUsage: "VALUE...\n   (* = required)",
			Flags:     []cli.Flag{valueFlag},
			Action: func(c *cli.Context) error {
				return runFind(c, globals)
			},
		},
		{
			Name:      "insert",
			Usage:     "insert a value",
			ArgsUsage: "VALUE...\n   (* = required)",
			Flags:     []cli.Flag{valueFlag},
			Action: func(c *cli.Context) error {
				return runInsert(c, globals)
			},
		},
		{
			Name:      "delete",
			Usage:     "delete a value",
			ArgsUsage: "VALUE...\n   (* = required)",
			Flags:     []cli.Flag{valueFlag},
			Action: func(c *cli.Context) error {
				return runDelete(c, globals)
			},
		},
		{
			Name:      "balance",
			Usage:     "report height and balance",
			ArgsUsage: "VALUE...",
			Action: func(c *cli.Context) error {
				return runBalance(c, globals)
			},
		},
		{
			Name:      "rebalance",
			Usage:     "rebalance and report height and balance before and after",
			ArgsUsage: "VALUE...",
			Action: func(c *cli.Context) error {
				return runRebalance(c, globals)
			},
		},
	}
	return app
}
