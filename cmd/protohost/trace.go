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
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// renderRoundTable prints one row per node: its display tag and thread 0's
// current result.
func renderRoundTable(w io.Writer, round int, nodes []*node) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"round", "node", "result"})

	roundLabel := color.New(color.FgCyan).Sprint(strconv.Itoa(round))
	for _, n := range nodes {
		table.Append([]string{roundLabel, n.tag, n.machine.Result(0).String()})
	}
	table.Render()
}
