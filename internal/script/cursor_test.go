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

package script

import "testing"

func TestNextU8Advances(t *testing.T) {
	c := NewCursor(&Script{Code: []byte{0x01, 0x02}})
	if c.NextU8() != 1 || c.NextU8() != 2 {
		t.Fatalf("unexpected byte sequence")
	}
	if c.PC() != 2 {
		t.Fatalf("expected pc 2, got %d", c.PC())
	}
}

func TestNextU16BigEndian(t *testing.T) {
	c := NewCursor(&Script{Code: []byte{0x01, 0x02}})
	if got := c.NextU16(); got != 0x0102 {
		t.Fatalf("expected 0x0102, got 0x%x", got)
	}
}

func TestNextVLQSingleByte(t *testing.T) {
	c := NewCursor(&Script{Code: []byte{0x05}})
	if got := c.NextVLQ(); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestNextVLQMultiByte(t *testing.T) {
	// 0x81 0x00 -> first byte has continuation bit set: value = 1, then
	// shifted left 7 -> 128; second byte contributes 0, no continuation.
	c := NewCursor(&Script{Code: []byte{0x81, 0x00}})
	if got := c.NextVLQ(); got != 128 {
		t.Fatalf("expected 128, got %d", got)
	}
}

func TestSkipForwardOnly(t *testing.T) {
	c := NewCursor(&Script{Code: []byte{0, 1, 2, 3, 4}})
	c.Skip(3)
	if c.PC() != 3 {
		t.Fatalf("expected pc 3, got %d", c.PC())
	}
	if c.NextU8() != 3 {
		t.Fatalf("expected byte 3 at pc 3")
	}
}

func TestJumpArbitrary(t *testing.T) {
	c := NewCursor(&Script{Code: []byte{0, 1, 2, 3}})
	c.Jump(2)
	if c.NextU8() != 2 {
		t.Fatalf("expected byte at index 2")
	}
	c.Jump(0)
	if c.NextU8() != 0 {
		t.Fatalf("expected byte at index 0 after rewind jump")
	}
}

func TestReadPastEndFaults(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected fault panic")
		}
		if _, ok := r.(*Fault); !ok {
			t.Fatalf("expected *Fault, got %T", r)
		}
	}()
	c := NewCursor(&Script{Code: []byte{}})
	c.NextU8()
}
