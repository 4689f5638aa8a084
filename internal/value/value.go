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

// Package value implements the VM's tagged Value type with its four
// variants (undefined, number, tuple, address), plus the reference-counted
// shared tuple that backs the tuple variant.
package value

import "fmt"

// Kind tags which variant of Value is live.
type Kind uint8

const (
	Undefined Kind = iota
	Number
	Tuple
	Address
)

func (k Kind) String() string {
	switch k {
	case Undefined:
		return "undefined"
	case Number:
		return "number"
	case Tuple:
		return "tuple"
	case Address:
		return "address"
	default:
		return "invalid"
	}
}

// Value is a tagged union: exactly one variant is live at a time.
type Value struct {
	kind Kind
	num  float32
	addr uint32
	tup  *tupleData
}

// tupleData is the heap-allocated, reference-counted, growable backing
// store for the tuple variant. Multiple Values may alias the same
// tupleData; Copy() duplicates it element-wise into a fresh tupleData with
// refs reset to 1. The counter is a plain int: the VM is single-threaded
// and tuples never cross OS thread boundaries.
type tupleData struct {
	refs  int
	elems []Value
}

// Undef is the zero Value: the "not set" bottom.
var Undef = Value{}

// Num constructs a number Value. Booleans are encoded as numbers: 0 is
// false, anything else is true.
func Num(n float32) Value { return Value{kind: Number, num: n} }

// Bool encodes a boolean as the canonical 0/1 number.
func Bool(b bool) Value {
	if b {
		return Num(1)
	}
	return Num(0)
}

// Addr constructs an address Value: an offset into the installed script.
func Addr(offset uint32) Value { return Value{kind: Address, addr: offset} }

// NewTuple constructs an empty tuple Value with the given initial capacity
// hint. Capacity only ever grows; shrink is not supported.
func NewTuple(capacityHint int) Value {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return Value{kind: Tuple, tup: &tupleData{refs: 1, elems: make([]Value, 0, capacityHint)}}
}

func (v Value) Kind() Kind       { return v.kind }
func (v Value) IsUndefined() bool { return v.kind == Undefined }
func (v Value) IsNumber() bool   { return v.kind == Number }
func (v Value) IsTuple() bool    { return v.kind == Tuple }
func (v Value) IsAddress() bool  { return v.kind == Address }

// Bool reports whether a number Value is "truthy" (non-zero).
func (v Value) Bool() bool {
	return v.Number() != 0
}

// Number reads the number variant. Reading the wrong variant is a caller
// bug (invariant V1); it returns 0 rather than panicking so that arithmetic
// on a stray undefined doesn't itself crash the round.
func (v Value) Number() float32 {
	if v.kind != Number {
		return 0
	}
	return v.num
}

// AddressOffset reads the address variant.
func (v Value) AddressOffset() uint32 {
	if v.kind != Address {
		return 0
	}
	return v.addr
}

// Len returns the tuple length, or 1 for a number (the LEN opcode treats
// a bare number as a 1-element vector).
func (v Value) Len() int {
	if v.kind == Tuple {
		return len(v.tup.elems)
	}
	return 1
}

// Elem returns the i-th element of a tuple. An out-of-range index is a
// caller bug; it returns Undef defensively.
func (v Value) Elem(i int) Value {
	if v.kind != Tuple || i < 0 || i >= len(v.tup.elems) {
		return Undef
	}
	return v.tup.elems[i]
}

// Push appends to the shared backing vector. Every Value that aliases this
// tuple's handle observes the new length immediately, because the slice
// header lives in the shared tupleData, not in Value itself.
func (v Value) Push(elem Value) {
	if v.kind != Tuple {
		return
	}
	v.tup.elems = append(v.tup.elems, elem)
}

// Instances returns the number of live handles sharing this tuple's
// backing store. Non-tuple values report 1.
func (v Value) Instances() int {
	if v.kind != Tuple {
		return 1
	}
	return v.tup.refs
}

// Retain increments the tuple's reference count and returns the same
// Value, for use whenever a tuple handle is aliased onto a stack.
func (v Value) Retain() Value {
	if v.kind == Tuple {
		v.tup.refs++
	}
	return v
}

// Release decrements the tuple's reference count. It does not free
// anything explicitly; the Go garbage collector reclaims the tupleData
// once no Value references it. The counter exists purely to keep the
// documented instances() semantics observable.
func (v Value) Release() {
	if v.kind == Tuple && v.tup.refs > 0 {
		v.tup.refs--
	}
}

// Copy performs invariant V2: copy() of a tuple duplicates element-wise
// into a fresh handle (instances() of the result is 1); copy() of any
// other variant is a plain value copy.
func (v Value) Copy() Value {
	if v.kind != Tuple {
		return v
	}
	elems := make([]Value, len(v.tup.elems))
	for i, e := range v.tup.elems {
		elems[i] = e.Retain()
	}
	return Value{kind: Tuple, tup: &tupleData{refs: 1, elems: elems}}
}

func (v Value) String() string {
	switch v.kind {
	case Undefined:
		return "undefined"
	case Number:
		return fmt.Sprintf("%g", v.num)
	case Address:
		return fmt.Sprintf("@%d", v.addr)
	case Tuple:
		return fmt.Sprintf("tuple(len=%d,refs=%d)", len(v.tup.elems), v.tup.refs)
	default:
		return "?"
	}
}
