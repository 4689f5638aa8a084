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

import "fmt"

// Class is the error taxonomy from the engine's failure semantics:
// ProgrammerBug, ResourceExhaustion, HostSignal, PlatformFault. Only the
// first two can originate inside instruction bodies. The engine never
// raises HostSignal or PlatformFault: Interrupt turns a host signal into
// thread triggers, and a PlatformHook has no error return.
type Class int

const (
	ProgrammerBug Class = iota
	ResourceExhaustion
	HostSignal
	PlatformFault
)

func (c Class) String() string {
	switch c {
	case ProgrammerBug:
		return "ProgrammerBug"
	case ResourceExhaustion:
		return "ResourceExhaustion"
	case HostSignal:
		return "HostSignal"
	case PlatformFault:
		return "PlatformFault"
	default:
		return "Unknown"
	}
}

// Fault is the typed panic value raised by instruction bodies and the
// state and thread table lookups on a bytecode invariant violation; the
// stacks' and cursor's own fault types are converted to it at Step. No
// opcode throws a user-visible exception; instead a Fault unwinds through
// the dispatch and is returned as an error at the Machine.Step boundary,
// carrying the opcode offset for diagnosis.
type Fault struct {
	Class Class
	Op    string
	Msg   string
	PC    uint32
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s at pc=%d (%s): %s", f.Class, f.PC, f.Op, f.Msg)
}

func newFault(class Class, pc uint32, op, msg string) *Fault {
	return &Fault{Class: class, Op: op, Msg: msg, PC: pc}
}
