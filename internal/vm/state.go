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

import "github.com/delftproto/protovm/internal/value"

// ThreadID indexes the thread table.
type ThreadID int

// stateCell is the per-index feedback memory: {data, is_executed,
// owner_thread}, all zeroed at install.
type stateCell struct {
	data       value.Value
	isExecuted bool
	owner      ThreadID
}

// stateTable holds every state cell sized once by DEF_VM/DEF_VM_EX.
type stateTable struct {
	cells []stateCell
}

func newStateTable(size int) *stateTable {
	return &stateTable{cells: make([]stateCell, size)}
}

func (t *stateTable) get(i int) *stateCell {
	if i < 0 || i >= len(t.cells) {
		panic(newFault(ProgrammerBug, 0, "state", "index out of range"))
	}
	return &t.cells[i]
}

// gcThread implements runCallback's per-round collection: for every cell
// owned by thread, untouched cells (is_executed == false) have their data
// reset to undefined; touched cells have is_executed cleared for the next
// round.
func (t *stateTable) gcThread(thread ThreadID) {
	for i := range t.cells {
		c := &t.cells[i]
		if c.owner != thread {
			continue
		}
		if !c.isExecuted {
			c.data = value.Undef
		} else {
			c.isExecuted = false
		}
	}
}
