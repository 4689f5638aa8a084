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

	"github.com/delftproto/protovm/internal/stack"
	"github.com/delftproto/protovm/internal/value"
)

func newValueStack(capacity int) *stack.Stack[value.Value] {
	return stack.New[value.Value](capacity)
}

func newGlobalsStack(capacity int) *stack.Globals[value.Value] {
	return stack.NewGlobals[value.Value](capacity)
}

// decodeFloat32 reconstructs an IEEE-754 binary32 literal from two 16-bit
// big-endian halves. All multi-byte fields in the bytecode are big-endian.
func decodeFloat32(hi, lo uint16) float32 {
	bits := uint32(hi)<<16 | uint32(lo)
	return math.Float32frombits(bits)
}

func encodeFloat32(f float32) (hi, lo uint16) {
	bits := math.Float32bits(f)
	return uint16(bits >> 16), uint16(bits & 0xFFFF)
}
