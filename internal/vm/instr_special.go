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

// opApply calls a function on a tuple of arguments. The argument tuple
// and function address are consumed up front (nothing else observes the
// execution stack before control transfers into the callee); the
// continuation drops the pushed arguments from the environment and leaves
// the return value on top of the execution stack.
func opApply(m *Machine) {
	args := m.exec.Pop()
	faddr := m.exec.Pop()
	n := args.Len()
	for i := 0; i < n; i++ {
		m.env.Push(args.Elem(i))
	}
	m.call(faddr.AddressOffset(), func(mm *Machine) {
		for i := 0; i < n; i++ {
			mm.env.Pop()
		}
	})
}

// opTupMap implements TUP_MAP. Iterator state (the result-in-progress
// tuple and the current index) lives in the closures captured here rather
// than on a shared machine field, so nested TUP_MAP/FOLD invocations each
// carry their own independent state.
func opTupMap(m *Machine) {
	t := m.exec.Pop()
	faddr := m.exec.Pop()
	n := t.Len()
	if n == 0 {
		m.exec.Push(value.NewTuple(0))
		return
	}
	result := value.NewTuple(n)
	idx := 0
	var callNext func(mm *Machine)
	var step continuation
	callNext = func(mm *Machine) {
		mm.env.Push(t.Elem(idx))
		mm.call(faddr.AddressOffset(), step)
	}
	step = func(mm *Machine) {
		v := mm.exec.Pop()
		mm.env.Pop()
		result.Push(v)
		idx++
		if idx < n {
			callNext(mm)
		} else {
			mm.exec.Push(result)
		}
	}
	callNext(m)
}

// opFold implements FOLD: see opTupMap's note on closure-based iterator
// state.
func opFold(m *Machine) {
	t := m.exec.Pop()
	acc := m.exec.Pop()
	faddr := m.exec.Pop()
	n := t.Len()
	if n == 0 {
		m.exec.Push(acc)
		return
	}
	idx := 0
	var callNext func(mm *Machine)
	var step continuation
	callNext = func(mm *Machine) {
		mm.env.Push(acc)
		mm.env.Push(t.Elem(idx))
		mm.call(faddr.AddressOffset(), step)
	}
	step = func(mm *Machine) {
		acc = mm.exec.Pop()
		mm.env.Pop()
		mm.env.Pop()
		idx++
		if idx < n {
			callNext(mm)
		} else {
			mm.exec.Push(acc)
		}
	}
	callNext(m)
}

// opVFold is FOLD's MIT-deprecated variant: an extra index byte names a
// global that receives a copy of the final accumulator.
func opVFold(m *Machine) {
	g := int(m.cursor.NextVLQ())
	t := m.exec.Pop()
	acc := m.exec.Pop()
	faddr := m.exec.Pop()
	n := t.Len()
	finish := func(mm *Machine, result value.Value) {
		mm.globals.Set(g, result.Copy())
		mm.exec.Push(result)
	}
	if n == 0 {
		finish(m, acc)
		return
	}
	idx := 0
	var callNext func(mm *Machine)
	var step continuation
	callNext = func(mm *Machine) {
		mm.env.Push(acc)
		mm.env.Push(t.Elem(idx))
		mm.call(faddr.AddressOffset(), step)
	}
	step = func(mm *Machine) {
		acc = mm.exec.Pop()
		mm.env.Pop()
		mm.env.Pop()
		idx++
		if idx < n {
			callNext(mm)
		} else {
			finish(mm, acc)
		}
	}
	callNext(m)
}

// opMap is TUP_MAP's MIT-deprecated variant (MAP), same extra-index
// writeback convention as opVFold.
func opMap(m *Machine) {
	g := int(m.cursor.NextVLQ())
	t := m.exec.Pop()
	faddr := m.exec.Pop()
	n := t.Len()
	if n == 0 {
		r := value.NewTuple(0)
		m.globals.Set(g, r)
		m.exec.Push(r)
		return
	}
	result := value.NewTuple(n)
	idx := 0
	var callNext func(mm *Machine)
	var step continuation
	callNext = func(mm *Machine) {
		mm.env.Push(t.Elem(idx))
		mm.call(faddr.AddressOffset(), step)
	}
	step = func(mm *Machine) {
		v := mm.exec.Pop()
		mm.env.Pop()
		result.Push(v)
		idx++
		if idx < n {
			callNext(mm)
		} else {
			mm.globals.Set(g, result.Copy())
			mm.exec.Push(result)
		}
	}
	callNext(m)
}

// opTup is the MIT-deprecated TUP: FAB_TUP with an extra index byte
// writeback, preserved for binary compatibility.
func opTup(m *Machine) {
	g := int(m.cursor.NextVLQ())
	n := int(m.cursor.NextVLQ())
	tmp := make([]value.Value, n)
	for i := n - 1; i >= 0; i-- {
		tmp[i] = m.exec.Pop()
	}
	t := value.NewTuple(n)
	for _, v := range tmp {
		t.Push(v)
	}
	m.globals.Set(g, t.Copy())
	m.exec.Push(t)
}
