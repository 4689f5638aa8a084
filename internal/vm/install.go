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

// opDefVM implements the MIT-compatible installation prologue:
// fixed-width fields, one thread created and activated, self inserted
// into the hood at position 0, the sentinel continuation preserved across
// a callback-stack resize to depth 3.
func opDefVM(m *Machine) {
	if m.mode != MITCompatible {
		m.fault(ProgrammerBug, "DEF_VM", "script built for MIT-compatible mode but machine run in Extended mode")
	}
	_ = m.cursor.NextU8() // export_len: reserved, unused
	exportsSize := int(m.cursor.NextU8())
	globalsSize := int(m.cursor.NextU16())
	stateSize := int(m.cursor.NextU8())
	stackSize := int(m.cursor.NextU16())
	envSize := int(m.cursor.NextU8())

	m.installSizes(stackSize, envSize, globalsSize, 1, stateSize, exportsSize, 3)
	m.threads.current = 0
	m.threads.get(0).active = true
}

// opDefVMEx implements the extended, all-VLQ installation prologue.
func opDefVMEx(m *Machine) {
	if m.mode != Extended {
		m.fault(ProgrammerBug, "DEF_VM_EX", "script built for Extended mode but machine run in MIT-compatible mode")
	}
	stackSize := int(m.cursor.NextVLQ())
	envSize := int(m.cursor.NextVLQ())
	globalsSize := int(m.cursor.NextVLQ())
	threadsSize := int(m.cursor.NextVLQ())
	stateSize := int(m.cursor.NextVLQ())
	exportsSize := int(m.cursor.NextVLQ())
	maxDepth := int(m.cursor.NextVLQ())

	m.installSizes(stackSize, envSize, globalsSize, threadsSize, stateSize, exportsSize, maxDepth)
	m.threads.current = 0
}

func (m *Machine) installSizes(stackSize, envSize, globalsSize, threadsSize, stateSize, exportsSize, maxDepth int) {
	m.exec = newValueStack(stackSize)
	m.env = newValueStack(envSize)
	m.globals = newGlobalsStack(globalsSize)
	m.threads = newThreadTable(threadsSize)
	m.state = newStateTable(stateSize)
	m.exportsSize = exportsSize
	m.hood = newNeighborhood(exportsSize)
	m.hood.installSelf(m.self)
	m.resetCallbacks(maxDepth)
}

// opExit terminates installation by clearing the callback stack.
func opExit(m *Machine) {
	m.callback.Truncate(0)
}

// opDefFun pushes the current instruction pointer onto globals as an
// address and skips over the inline function body.
func opDefFun(m *Machine) {
	size := m.cursor.NextVLQ()
	m.globals.Push(value.Addr(m.cursor.PC()))
	m.cursor.Skip(size)
}

func defFunN(n uint32) handler {
	return func(m *Machine) {
		m.globals.Push(value.Addr(m.cursor.PC()))
		m.cursor.Skip(n)
	}
}

// opDef pushes an arbitrary literal number read as a global (DEF).
func opDef(m *Machine) {
	m.globals.Push(value.Num(m.nextFloat()))
}

// opDefTup builds a tuple of n globals-declared literal numbers.
func opDefTup(m *Machine) {
	n := m.cursor.NextVLQ()
	t := value.NewTuple(int(n))
	for i := uint32(0); i < n; i++ {
		t.Push(value.Num(m.nextFloat()))
	}
	m.globals.Push(t)
}

// opDefVec builds a tuple of n copies of one literal value.
func opDefVec(m *Machine) {
	n := m.cursor.NextVLQ()
	v := value.Num(m.nextFloat())
	t := value.NewTuple(int(n))
	for i := uint32(0); i < n; i++ {
		t.Push(v)
	}
	m.globals.Push(t)
}

// opDefNumVec builds a tuple of n zeros.
func opDefNumVec(m *Machine) {
	n := m.cursor.NextVLQ()
	pushNumVec(m, int(n))
}

func defNumVecN(n int) handler {
	return func(m *Machine) { pushNumVec(m, n) }
}

func pushNumVec(m *Machine, n int) {
	m.globals.Push(numVec(n))
}

// numVec builds a fresh tuple of n zeros, shared by FAB_NUM_VEC and the
// DEF_NUM_VEC installation family.
func numVec(n int) value.Value {
	t := value.NewTuple(n)
	for i := 0; i < n; i++ {
		t.Push(value.Num(0))
	}
	return t
}

// nextFloat reads a 4-byte IEEE-754 binary32 literal, the same encoding
// used by LIT_FLO.
func (m *Machine) nextFloat() float32 {
	return decodeFloat32(m.cursor.NextU16(), m.cursor.NextU16())
}
