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

func opNulTup(m *Machine) {
	m.exec.Push(value.NewTuple(0))
}

// opFabTup pops n values and pushes them as a tuple in original stack
// order: the element that was deepest among the n popped slots becomes
// index 0.
func opFabTup(m *Machine) {
	n := int(m.cursor.NextVLQ())
	tmp := make([]value.Value, n)
	for i := n - 1; i >= 0; i-- {
		tmp[i] = m.exec.Pop()
	}
	t := value.NewTuple(n)
	for _, v := range tmp {
		t.Push(v)
	}
	m.exec.Push(t)
}

func opFabVec(m *Machine) {
	n := int(m.cursor.NextVLQ())
	v := m.exec.Pop()
	t := value.NewTuple(n)
	for i := 0; i < n; i++ {
		t.Push(v.Copy())
	}
	m.exec.Push(t)
}

func opFabNumVec(m *Machine) {
	n := int(m.cursor.NextVLQ())
	m.exec.Push(numVec(n))
}

// opElt pops a number index, then a tuple, and pushes tuple[index].
// An out-of-range index is a bug in the bytecode.
func opElt(m *Machine) {
	idx := int(m.exec.Pop().Number())
	t := m.exec.Pop()
	if !t.IsTuple() || idx < 0 || idx >= t.Len() {
		m.fault(ProgrammerBug, "ELT", "tuple index out of range")
	}
	m.exec.Push(t.Elem(idx))
}

// opLen pushes 1 for a number operand, else the tuple size.
func opLen(m *Machine) {
	v := m.exec.Pop()
	m.exec.Push(value.Num(float32(v.Len())))
}
