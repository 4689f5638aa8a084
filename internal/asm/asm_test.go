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

package asm_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/delftproto/protovm/internal/asm"
	"github.com/delftproto/protovm/internal/script"
)

func TestVLQRoundTrip(t *testing.T) {
	cases := []uint32{0, 1, 63, 127, 128, 129, 16383, 16384, 2097151, 2097152, 1<<28 - 1}

	for _, v := range cases {
		code := asm.New().VLQ(v).Build()
		cur := script.NewCursor(&script.Script{Code: code})
		require.Equal(t, v, cur.NextVLQ(), "value %d", v)
	}
}

// TestVLQRoundTripFuzzed covers the space between the boundary table's
// values with seeded random draws, so a regression away from the exact
// shift-before-merge decoding order can't hide between the boundaries.
func TestVLQRoundTripFuzzed(t *testing.T) {
	f := fuzz.NewWithSeed(1)
	var v uint32
	for i := 0; i < 1000; i++ {
		f.Fuzz(&v)
		v &= 1<<28 - 1
		code := asm.New().VLQ(v).Build()
		cur := script.NewCursor(&script.Script{Code: code})
		require.Equal(t, v, cur.NextVLQ(), "value %d", v)
	}
}

func TestVLQKnownEncoding(t *testing.T) {
	require.Equal(t, []byte{0x00}, asm.New().VLQ(0).Build())
	require.Equal(t, []byte{0x7F}, asm.New().VLQ(127).Build())
	require.Equal(t, []byte{0x81, 0x00}, asm.New().VLQ(128).Build())
}

func TestFloat32RoundTrip(t *testing.T) {
	code := asm.New().Float32(3.5).Build()
	cur := script.NewCursor(&script.Script{Code: code})
	hi := cur.NextU16()
	lo := cur.NextU16()
	require.Equal(t, uint16(0x4060), hi)
	require.Equal(t, uint16(0x0000), lo)
}

func TestBuildReturnsIndependentCopy(t *testing.T) {
	b := asm.New().U8(1).U8(2)
	out1 := b.Build()
	b.U8(3)
	out2 := b.Build()

	require.Equal(t, []byte{1, 2}, out1)
	require.Equal(t, []byte{1, 2, 3}, out2)
}
