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

// opInitFeedback implements INIT_FEEDBACK i: the initializer address is
// only invoked while state[i].data remains undefined; afterwards the
// stored value is returned directly. The continuation carries the cell
// index so nested calls inside the initializer cannot corrupt it.
func opInitFeedback(m *Machine) {
	i := int(m.cursor.NextVLQ())
	f := m.exec.Pop()
	cell := m.state.get(i)
	cell.isExecuted = true
	cell.owner = ThreadID(m.threads.current)
	if !cell.data.IsUndefined() {
		m.exec.Push(cell.data)
		return
	}
	m.call(f.AddressOffset(), func(mm *Machine) {
		v := mm.exec.Pop()
		mm.state.get(i).data = v
		mm.exec.Push(v)
	})
}

// opSetFeedback writes the top of stack, without popping it, into
// state[i].data and marks the cell executed for this round.
func opSetFeedback(m *Machine) {
	i := int(m.cursor.NextVLQ())
	v := m.exec.Top()
	cell := m.state.get(i)
	cell.data = v
	cell.isExecuted = true
	cell.owner = ThreadID(m.threads.current)
}

// opFeedback is the deprecated FEEDBACK i: pop v, store it, mark
// executed, drop one additional stack item, and re-push v. The extra drop
// is historical but binary compatibility requires it.
func opFeedback(m *Machine) {
	i := int(m.cursor.NextVLQ())
	v := m.exec.Pop()
	cell := m.state.get(i)
	cell.data = v
	cell.isExecuted = true
	cell.owner = ThreadID(m.threads.current)
	m.exec.Pop()
	m.exec.Push(v)
}
