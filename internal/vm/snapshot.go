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

package vm

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/delftproto/protovm/internal/value"
)

// ThreadSnapshot is a read-only view of one thread table entry, for the
// introspection endpoint and trace tooling. It never exposes VM-internal
// mutation points.
type ThreadSnapshot struct {
	Index         int     `json:"index"`
	Triggered     bool    `json:"triggered"`
	Active        bool    `json:"active"`
	Result        string  `json:"result"`
	LastTime      float64 `json:"last_time"`
	DesiredPeriod float64 `json:"desired_period"`
}

// StateCellSnapshot is a read-only view of one state cell.
type StateCellSnapshot struct {
	Index      int    `json:"index"`
	Data       string `json:"data"`
	IsExecuted bool   `json:"is_executed"`
	Owner      int    `json:"owner"`
}

// NeighborSnapshot is a read-only view of one hood entry.
type NeighborSnapshot struct {
	ID      string   `json:"id"`
	Imports []string `json:"imports"`
}

// Snapshot is the full point-in-time picture of a Machine the introspection
// endpoint serializes as JSON.
type Snapshot struct {
	Self      string              `json:"self"`
	Finished  bool                `json:"finished"`
	Threads   []ThreadSnapshot    `json:"threads"`
	State     []StateCellSnapshot `json:"state"`
	Neighbors []NeighborSnapshot  `json:"neighbors"`
}

// Snapshot captures the machine's current threads, state cells, and hood
// for read-only inspection. It never mutates and is safe to call between
// Run calls.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{Self: string(m.self), Finished: m.Finished()}

	if m.threads != nil {
		for i, t := range m.threads.threads {
			s.Threads = append(s.Threads, ThreadSnapshot{
				Index:         i,
				Triggered:     t.triggered,
				Active:        t.active,
				Result:        t.result.String(),
				LastTime:      t.lastTime,
				DesiredPeriod: t.desiredPeriod,
			})
		}
	}
	if m.state != nil {
		for i, c := range m.state.cells {
			s.State = append(s.State, StateCellSnapshot{
				Index:      i,
				Data:       c.data.String(),
				IsExecuted: c.isExecuted,
				Owner:      int(c.owner),
			})
		}
	}
	if m.hood != nil {
		for i := 0; i < m.hood.Len(); i++ {
			n := m.hood.At(i)
			imports := make([]string, len(n.Imports))
			for j, v := range n.Imports {
				imports[j] = v.String()
			}
			s.Neighbors = append(s.Neighbors, NeighborSnapshot{ID: string(n.ID), Imports: imports})
		}
	}
	return s
}

// Dump pretty-prints a Value's full tuple graph for fault diagnostics.
func Dump(v value.Value) string {
	return spew.Sdump(v)
}
