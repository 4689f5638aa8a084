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

package main

import (
	"os"

	"github.com/naoina/toml"
	"github.com/pkg/errors"
)

// Scenario describes one simulation run: how many nodes, which compiled
// script to install on each, and how the round clock is paced.
type Scenario struct {
	NodeCount   int     `toml:"node_count"`
	ScriptPath  string  `toml:"script_path"`
	RoundPeriod float64 `toml:"round_period_seconds"`
	Rounds      int     `toml:"rounds"`
	Seed        int64   `toml:"seed"`
	ExportsSize int     `toml:"exports_size"`
	Listen      string  `toml:"introspect_listen"`
}

func defaultScenario() Scenario {
	return Scenario{
		NodeCount:   3,
		RoundPeriod: 1,
		Rounds:      5,
		ExportsSize: 1,
	}
}

func loadScenario(path string) (Scenario, error) {
	cfg := defaultScenario()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	if err := toml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "decoding scenario %s", path)
	}
	if cfg.NodeCount < 1 {
		return cfg, errors.Errorf("scenario %s: node_count must be at least 1", path)
	}
	if cfg.ScriptPath == "" {
		return cfg, errors.Errorf("scenario %s: script_path is required", path)
	}
	return cfg, nil
}
