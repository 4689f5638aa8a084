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

package value

import "testing"

func TestNumberRoundTrip(t *testing.T) {
	v := Num(3.5)
	if !v.IsNumber() {
		t.Fatalf("expected number kind, got %s", v.Kind())
	}
	if v.Number() != 3.5 {
		t.Fatalf("expected 3.5, got %v", v.Number())
	}
}

func TestBoolEncoding(t *testing.T) {
	if !Bool(true).Bool() {
		t.Fatalf("Bool(true) should be truthy")
	}
	if Bool(false).Bool() {
		t.Fatalf("Bool(false) should be falsy")
	}
	if !Num(-1).Bool() {
		t.Fatalf("any nonzero number should be truthy")
	}
}

func TestTuplePushAliasing(t *testing.T) {
	t1 := NewTuple(2)
	alias := t1 // same handle, same backing store
	t1.Push(Num(1))
	t1.Push(Num(2))

	if alias.Len() != 2 {
		t.Fatalf("alias should observe pushes made through t1, got len=%d", alias.Len())
	}
	if alias.Elem(0).Number() != 1 || alias.Elem(1).Number() != 2 {
		t.Fatalf("alias elements mismatch")
	}
}

func TestTupleCopyIsIndependent(t *testing.T) {
	t1 := NewTuple(1)
	t1.Push(Num(10))

	t2 := t1.Copy()
	t2.Push(Num(20))

	if t1.Len() != 1 {
		t.Fatalf("copy should not affect original length, got %d", t1.Len())
	}
	if t2.Len() != 2 {
		t.Fatalf("copy should have its own independent backing store, got %d", t2.Len())
	}
}

func TestTupleCopyResetsInstances(t *testing.T) {
	t1 := NewTuple(0)
	t1.Retain()
	if t1.Instances() != 2 {
		t.Fatalf("expected 2 instances after retain, got %d", t1.Instances())
	}
	t2 := t1.Copy()
	if t2.Instances() != 1 {
		t.Fatalf("copy should reset instances to 1, got %d", t2.Instances())
	}
}

func TestLenOfNumberIsOne(t *testing.T) {
	if Num(42).Len() != 1 {
		t.Fatalf("Len() of a number must be 1")
	}
}

func TestElemOutOfRange(t *testing.T) {
	tup := NewTuple(0)
	tup.Push(Num(1))
	if !tup.Elem(5).IsUndefined() {
		t.Fatalf("out of range Elem should be undefined, not panic")
	}
}
