// Copyright 2026 The DelftProto Authors
// This file is part of the DelftProto VM.
//
// The DelftProto VM is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The DelftProto VM is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the DelftProto VM. If not, see <http://www.gnu.org/licenses/>.

// Command protohost is a simulation harness for the DelftProto execution
// engine: it installs one compiled script on N independent Machines and
// drives them through a scripted number of rounds, exchanging each node's
// exports across a full-mesh stand-in for a real radio transport. It is a
// development and test harness, not a production radio stack.
package main

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/urfave/cli.v1"

	"github.com/delftproto/protovm/internal/xlog"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config",
		Usage: "path to a TOML scenario file",
	}
	listenFlag = cli.StringFlag{
		Name:  "introspect",
		Usage: "address to serve the debug introspection endpoint on, e.g. :8766",
	}
	verboseFlag = cli.BoolFlag{
		Name:  "verbose",
		Usage: "enable debug-level logging",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "protohost"
	app.Usage = "run a DelftProto script across a simulated neighborhood"
	app.Flags = []cli.Flag{configFlag, listenFlag, verboseFlag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	if ctx.Bool(verboseFlag.Name) {
		xlog.SetLevel(xlog.LvlDebug)
	}

	cfgPath := ctx.String(configFlag.Name)
	if cfgPath == "" {
		return cli.NewExitError("missing required -config flag", 1)
	}
	scenario, err := loadScenario(cfgPath)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("loading scenario: %v", err), 1)
	}

	code, err := os.ReadFile(scenario.ScriptPath)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("reading script: %v", err), 1)
	}

	log := xlog.New("component", "protohost")
	sim := newSimulation(scenario, code, log)
	if listen := ctx.String(listenFlag.Name); listen != "" {
		sim.serveIntrospect(listen)
	} else if scenario.Listen != "" {
		sim.serveIntrospect(scenario.Listen)
	}

	return sim.run(context.Background())
}
