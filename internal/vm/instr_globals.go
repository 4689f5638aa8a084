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

func opGloRef(m *Machine) {
	i := int(m.cursor.NextVLQ())
	m.exec.Push(m.globals.At(i))
}

func opGloRef16(m *Machine) {
	i := int(m.cursor.NextU16())
	m.exec.Push(m.globals.At(i))
}

func gloRefN(i int) handler {
	return func(m *Machine) { m.exec.Push(m.globals.At(i)) }
}
