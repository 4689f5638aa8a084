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

import (
	"math"

	"github.com/delftproto/protovm/internal/value"
)

func litN(n float32) handler {
	return func(m *Machine) { m.exec.Push(value.Num(n)) }
}

func opLit8(m *Machine) {
	m.exec.Push(value.Num(float32(m.cursor.NextU8())))
}

func opLit16(m *Machine) {
	m.exec.Push(value.Num(float32(m.cursor.NextU16())))
}

func opLit(m *Machine) {
	m.exec.Push(value.Num(float32(m.cursor.NextVLQ())))
}

func opLitFlo(m *Machine) {
	m.exec.Push(value.Num(m.nextFloat()))
}

func opInf(m *Machine) {
	m.exec.Push(value.Num(float32(math.Inf(1))))
}

func opNegInf(m *Machine) {
	m.exec.Push(value.Num(float32(math.Inf(-1))))
}
