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

// Package vm is the bytecode interpreter: the tagged-value execution
// engine, its call/return continuation discipline, the thread scheduler,
// the neighborhood folding protocol, and the full instruction set.
package vm

import (
	"github.com/delftproto/protovm/internal/mathlib"
	"github.com/delftproto/protovm/internal/script"
	"github.com/delftproto/protovm/internal/stack"
	"github.com/delftproto/protovm/internal/value"
	"github.com/delftproto/protovm/internal/xlog"
)

// Mode selects the installation-prologue dialect: DEF_VM's fixed-width
// MIT-compatible fields, or DEF_VM_EX's all-VLQ fields. A machine accepts
// exactly one dialect; a script built for the other faults at install.
type Mode int

const (
	MITCompatible Mode = iota
	Extended
)

// continuation is the opaque function reference pushed onto the callback
// stack by call(). A nil continuation is the install-time sentinel and the
// top-level "no one is waiting for this value" marker.
type continuation func(m *Machine)

// PlatformHook handles opcodes absent from the dispatch table, which is
// where a platform grafts its I/O instructions (LEDs, buttons, radio
// control) onto the engine. It may push a sentinel Value or do nothing;
// it must never panic, so a hardware fault can never unwind through the
// VM.
type PlatformHook func(m *Machine, opcode byte)

func defaultPlatformHook(m *Machine, opcode byte) {}

// Machine owns every VM-internal structure for one node: stacks, state,
// threads, hood, and the code cursor.
type Machine struct {
	mode Mode
	log  xlog.Logger
	math mathlib.MathLib
	hook PlatformHook

	self      NodeID
	numericID float32
	dispatch  [256]handler

	code   *script.Script
	cursor *script.Cursor

	exec     *stack.Stack[value.Value]
	env      *stack.Stack[value.Value]
	globals  *stack.Globals[value.Value]
	callback *stack.Stack[continuation]

	state   *stateTable
	threads *threadTable
	hood    *Neighborhood

	exportsSize int

	startTime float64
}

// New constructs a Machine ready for Install. math and hook may be nil, in
// which case mathlib.NewDefault(0) and a no-op hook are used. numericID is
// the value MID pushes; the host derives it from self however it likes
// (e.g. truncating a UUID), since NodeID itself need not be numeric.
func New(mode Mode, self NodeID, numericID float32, math mathlib.MathLib, hook PlatformHook, log xlog.Logger) *Machine {
	if math == nil {
		math = mathlib.NewDefault(0)
	}
	if hook == nil {
		hook = defaultPlatformHook
	}
	m := &Machine{mode: mode, self: self, numericID: numericID, math: math, hook: hook, log: log}
	m.buildDispatch()
	return m
}

// Install loads a script and begins installation: the host then calls
// Step until Finished.
func (m *Machine) Install(code []byte) {
	m.code = &script.Script{Code: code}
	m.cursor = script.NewCursor(m.code)
	m.callback = stack.New[continuation](1)
	m.callback.Push(nil)
}

// Finished reports whether the callback stack is empty: either
// installation/a round has fully completed, or the VM never started one.
func (m *Machine) Finished() bool {
	return m.callback == nil || m.callback.Empty()
}

// Run starts the next pending thread, round-robin from the thread after
// the one that ran last. If no thread is pending the round is a no-op and
// Finished() is already true.
func (m *Machine) Run(now float64) {
	m.startTime = now
	idx := m.threads.nextPending()
	if idx < 0 {
		return
	}
	t := m.threads.get(idx)
	t.triggered = false
	entry := m.globals.Peek(idx).AddressOffset()
	m.threads.current = idx
	m.cursor.Jump(entry)
	m.callback.Push(m.runCallback)
}

func (m *Machine) runCallback(mm *Machine) {
	idx := mm.threads.current
	t := mm.threads.get(idx)
	t.result = mm.exec.Pop()
	t.lastTime = mm.startTime
	t.hasRun = true
	mm.state.gcThread(ThreadID(idx))
	mm.threads.advance(idx)
}

// Step executes exactly one opcode, converting any Fault raised by an
// instruction body or a low-level helper (stacks, cursor) into a returned
// error. Faults never propagate as language-level exceptions past the VM
// boundary; there is no user-level exception mechanism.
func (m *Machine) Step() (err error) {
	defer func() {
		if r := recover(); r != nil {
			pc := uint32(0)
			if m.cursor != nil {
				pc = m.cursor.PC()
			}
			switch f := r.(type) {
			case *Fault:
				// State and thread table lookups raise faults without
				// a program counter; attach the current one.
				if f.PC == 0 {
					f.PC = pc
				}
				err = f
			case *stack.Fault:
				err = newFault(ProgrammerBug, pc, f.Op, f.Msg)
			case *script.Fault:
				err = newFault(ProgrammerBug, pc, f.Op, f.Msg)
			default:
				panic(r)
			}
		}
	}()
	op := m.cursor.NextU8()
	h := m.dispatch[op]
	if h == nil {
		m.hook(m, op)
		return nil
	}
	h(m)
	return nil
}

// call pushes a continuation (possibly nil) onto the callback stack and
// the current instruction pointer onto the execution stack, then jumps to
// the target.
func (m *Machine) call(addr uint32, cb continuation) {
	m.callback.Push(cb)
	m.exec.Push(value.Addr(m.cursor.PC()))
	m.cursor.Jump(addr)
}

// retn is call's inverse: pop the continuation and the return value; if
// callers remain, pop a return address and jump there; push the return
// value back unless this was a true top-level return with no
// continuation; finally invoke the continuation synchronously if one was
// registered.
func (m *Machine) retn() {
	cb := m.callback.Pop()
	result := m.exec.Pop()
	if !m.callback.Empty() {
		addr := m.exec.Pop()
		m.cursor.Jump(addr.AddressOffset())
	}
	if !(m.callback.Empty() && cb == nil) {
		m.exec.Push(result)
	}
	if cb != nil {
		cb(m)
	}
}

// resetCallbacks preserves the top continuation while reallocating the
// callback stack to depth, per DEF_VM/DEF_VM_EX's installation prologue.
func (m *Machine) resetCallbacks(depth int) {
	cb := m.callback.Pop()
	m.callback = stack.New[continuation](depth)
	m.callback.Push(cb)
}

// Interrupt triggers every thread marked by CTRL_C_TRIGGER, converting a
// host-delivered signal into thread triggers. Setting trigger flags is
// the only state a signal path may touch; the host must still drive the
// triggered threads through Run/Step on its own goroutine.
func (m *Machine) Interrupt() {
	if m.threads == nil {
		return
	}
	for _, t := range m.threads.threads {
		if t.interruptTriggered {
			t.triggered = true
		}
	}
}

// Result returns thread idx's last recorded result.
func (m *Machine) Result(idx int) value.Value {
	return m.threads.get(idx).result
}

// Self returns this machine's own neighbor record.
func (m *Machine) Self() *Neighbor {
	return m.hood.Self()
}

// Hood exposes the neighborhood for host-facing Upsert/Remove between
// rounds. Imports must only be mutated between Run calls, never during a
// step.
func (m *Machine) Hood() *Neighborhood {
	return m.hood
}

func (m *Machine) fault(class Class, op, msg string) {
	pc := uint32(0)
	if m.cursor != nil {
		pc = m.cursor.PC()
	}
	panic(newFault(class, pc, op, msg))
}
