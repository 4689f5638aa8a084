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

// moveToEnv pops n values off the execution stack and pushes them onto
// the environment stack in their original (bottom-to-top) order, which is
// LET's binding rule.
func moveToEnv(m *Machine, n int) {
	tmp := make([]value.Value, n)
	for i := n - 1; i >= 0; i-- {
		tmp[i] = m.exec.Pop()
	}
	for _, v := range tmp {
		m.env.Push(v)
	}
}

func opLet(m *Machine) {
	n := int(m.cursor.NextVLQ())
	moveToEnv(m, n)
}

func letN(n int) handler {
	return func(m *Machine) { moveToEnv(m, n) }
}

func opPopLet(m *Machine) {
	n := m.cursor.NextVLQ()
	for i := uint32(0); i < n; i++ {
		m.env.Pop()
	}
}

func opRef(m *Machine) {
	k := int(m.cursor.NextVLQ())
	m.exec.Push(m.env.Peek(k))
}

func refN(k int) handler {
	return func(m *Machine) { m.exec.Push(m.env.Peek(k)) }
}
