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

func opRet(m *Machine) {
	m.retn()
}

// opAll preserves the top element while dropping n elements counted from
// the top, inclusive of that same element. ALL 3 on [1,2,3,4] leaves
// [1,4]: the top (4) is one of the 3 dropped, then restored.
func opAll(m *Machine) {
	top := m.exec.Top()
	n := m.cursor.NextVLQ()
	for i := uint32(0); i < n; i++ {
		m.exec.Pop()
	}
	m.exec.Push(top)
}

func opNop(m *Machine) {}

func opMux(m *Machine) {
	falseV := m.exec.Pop()
	trueV := m.exec.Pop()
	cond := m.exec.Pop()
	if cond.Bool() {
		m.exec.Push(trueV)
	} else {
		m.exec.Push(falseV)
	}
}

// opVMux is MUX's MIT-deprecated variant: additionally stores the chosen
// value's deep copy into globals[g].
func opVMux(m *Machine) {
	g := int(m.cursor.NextVLQ())
	falseV := m.exec.Pop()
	trueV := m.exec.Pop()
	cond := m.exec.Pop()
	chosen := falseV
	if cond.Bool() {
		chosen = trueV
	}
	copied := chosen.Copy()
	m.globals.Set(g, copied)
	m.exec.Push(copied)
}

func opIf(m *Machine) {
	n := m.cursor.NextVLQ()
	if m.exec.Pop().Bool() {
		m.cursor.Skip(n)
	}
}

func opIf16(m *Machine) {
	n := uint32(m.cursor.NextU16())
	if m.exec.Pop().Bool() {
		m.cursor.Skip(n)
	}
}

func opJmp(m *Machine) {
	m.cursor.Skip(m.cursor.NextVLQ())
}

func opJmp16(m *Machine) {
	m.cursor.Skip(uint32(m.cursor.NextU16()))
}
