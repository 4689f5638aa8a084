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

// pop2 pops the top two execution-stack values as (a, b) where b was on
// top; binary opcodes compute "a OP b".
func (m *Machine) pop2() (a, b value.Value) {
	b = m.exec.Pop()
	a = m.exec.Pop()
	return
}

// elemAt returns v's i-th element for elementwise ops: the element itself
// for a tuple, or the scalar repeated for a number (MUL/DIV's
// scalar-on-one-side broadcast; for zero-padding between two tuples of
// different length use zeroPadAt instead).
func elemAt(v value.Value, i int) float32 {
	if v.IsTuple() {
		return v.Elem(i).Number()
	}
	return v.Number()
}

// zeroPadAt returns v's i-th element, or 0 if i is past its length (the
// zero-padding rule for elementwise ops between two tuples of unequal
// length).
func zeroPadAt(v value.Value, i int) float32 {
	if i < v.Len() {
		return elemAt(v, i)
	}
	return 0
}

// elementwise applies f to a and b, broadcasting a bare number across a
// tuple operand (scalar broadcast) or zero-padding when both are tuples of
// unequal length. This is MUL/DIV's rule: the scalar side is a single
// factor applied to every element of the vector side.
func elementwise(a, b value.Value, f func(x, y float32) float32) value.Value {
	if a.IsNumber() && b.IsNumber() {
		return value.Num(f(a.Number(), b.Number()))
	}
	if a.IsTuple() && b.IsNumber() {
		out := value.NewTuple(a.Len())
		for i := 0; i < a.Len(); i++ {
			out.Push(value.Num(f(elemAt(a, i), b.Number())))
		}
		return out
	}
	if a.IsNumber() && b.IsTuple() {
		out := value.NewTuple(b.Len())
		for i := 0; i < b.Len(); i++ {
			out.Push(value.Num(f(a.Number(), elemAt(b, i))))
		}
		return out
	}
	n := a.Len()
	if b.Len() > n {
		n = b.Len()
	}
	out := value.NewTuple(n)
	for i := 0; i < n; i++ {
		out.Push(value.Num(f(zeroPadAt(a, i), zeroPadAt(b, i))))
	}
	return out
}

// zeroPadElementwise applies f to a and b treating a bare number as a
// 1-element tuple, zero-padded against the other operand's length, so a
// scalar only ever affects index 0. This is ADD/SUB/DOT's rule, distinct
// from elementwise's scalar-broadcast rule used by MUL/DIV.
func zeroPadElementwise(a, b value.Value, f func(x, y float32) float32) value.Value {
	if a.IsNumber() && b.IsNumber() {
		return value.Num(f(a.Number(), b.Number()))
	}
	n := a.Len()
	if b.Len() > n {
		n = b.Len()
	}
	out := value.NewTuple(n)
	for i := 0; i < n; i++ {
		out.Push(value.Num(f(zeroPadAt(a, i), zeroPadAt(b, i))))
	}
	return out
}

func unary(v value.Value, f func(x float32) float32) value.Value {
	if !v.IsTuple() {
		return value.Num(f(v.Number()))
	}
	out := value.NewTuple(v.Len())
	for i := 0; i < v.Len(); i++ {
		out.Push(value.Num(f(v.Elem(i).Number())))
	}
	return out
}

// compare returns -1/0/1 comparing a and b. Tuple comparisons are
// lexicographic: elementwise up to the shorter length, then shorter is
// less.
func compare(a, b value.Value) int {
	if a.IsNumber() && b.IsNumber() {
		switch {
		case a.Number() < b.Number():
			return -1
		case a.Number() > b.Number():
			return 1
		default:
			return 0
		}
	}
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		av, bv := elemAt(a, i), elemAt(b, i)
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}
	switch {
	case a.Len() < b.Len():
		return -1
	case a.Len() > b.Len():
		return 1
	default:
		return 0
	}
}

func opAdd(m *Machine) { a, b := m.pop2(); m.exec.Push(zeroPadElementwise(a, b, func(x, y float32) float32 { return x + y })) }
func opSub(m *Machine) { a, b := m.pop2(); m.exec.Push(zeroPadElementwise(a, b, func(x, y float32) float32 { return x - y })) }
func opMul(m *Machine) { a, b := m.pop2(); m.exec.Push(elementwise(a, b, func(x, y float32) float32 { return x * y })) }
func opDiv(m *Machine) { a, b := m.pop2(); m.exec.Push(elementwise(a, b, func(x, y float32) float32 { return x / y })) }

// opDot pushes the zero-padded, element-wise product of a and b as a
// tuple (a Hadamard product, not a scalar reduction). Both operands are
// treated as tuples, so DOT on two plain numbers still yields a
// 1-element tuple.
func opDot(m *Machine) {
	a, b := m.pop2()
	n := a.Len()
	if b.Len() > n {
		n = b.Len()
	}
	out := value.NewTuple(n)
	for i := 0; i < n; i++ {
		out.Push(value.Num(zeroPadAt(a, i) * zeroPadAt(b, i)))
	}
	m.exec.Push(out)
}

// opAbs pushes the absolute value of a number, or the Euclidean magnitude
// sqrt(sum of squares) of a tuple as a single Number.
func opAbs(m *Machine) {
	v := m.exec.Pop()
	if v.IsNumber() {
		x := v.Number()
		if x < 0 {
			x = -x
		}
		m.exec.Push(value.Num(x))
		return
	}
	var s float32
	for i := 0; i < v.Len(); i++ {
		e := v.Elem(i).Number()
		s += e * e
	}
	m.exec.Push(value.Num(m.math.Sqrt(s)))
}

// opMax pushes whichever whole operand, a or b, lexicographically compares
// greater (not an elementwise per-index maximum).
func opMax(m *Machine) {
	a, b := m.pop2()
	if compare(a, b) > 0 {
		m.exec.Push(a)
	} else {
		m.exec.Push(b)
	}
}

// opMin pushes whichever whole operand, a or b, lexicographically compares
// smaller (not an elementwise per-index minimum).
func opMin(m *Machine) {
	a, b := m.pop2()
	if compare(a, b) < 0 {
		m.exec.Push(a)
	} else {
		m.exec.Push(b)
	}
}

func opEq(m *Machine)  { a, b := m.pop2(); m.exec.Push(value.Bool(compare(a, b) == 0)) }
func opNeq(m *Machine) { a, b := m.pop2(); m.exec.Push(value.Bool(compare(a, b) != 0)) }
func opLt(m *Machine)  { a, b := m.pop2(); m.exec.Push(value.Bool(compare(a, b) < 0)) }
func opLte(m *Machine) { a, b := m.pop2(); m.exec.Push(value.Bool(compare(a, b) <= 0)) }
func opGt(m *Machine)  { a, b := m.pop2(); m.exec.Push(value.Bool(compare(a, b) > 0)) }
func opGte(m *Machine) { a, b := m.pop2(); m.exec.Push(value.Bool(compare(a, b) >= 0)) }

// opRnd pops max then min and pushes a uniform random number in
// [min, max], delegating the underlying randomness to the host's MathLib.
// Tuple operands draw one sample per element, zero-padded like ADD/SUB.
func opRnd(m *Machine) {
	a, b := m.pop2()
	m.exec.Push(zeroPadElementwise(a, b, func(x, y float32) float32 {
		return x + m.math.Random()*(y-x)
	}))
}

// opMod returns a non-negative remainder even when the dividend is
// negative, unlike REM.
func opMod(m *Machine) {
	a, b := m.pop2()
	m.exec.Push(elementwise(a, b, func(x, y float32) float32 {
		if y < 0 {
			y = -y
		}
		r := modFloat32(x, y)
		if r < 0 {
			r += y
		}
		return r
	}))
}

func opRem(m *Machine) {
	a, b := m.pop2()
	m.exec.Push(elementwise(a, b, modFloat32))
}

func modFloat32(x, y float32) float32 {
	if y == 0 {
		return 0
	}
	q := float32(int32(x / y))
	return x - q*y
}

func opNot(m *Machine) {
	v := m.exec.Pop()
	m.exec.Push(value.Bool(v.Number() == 0))
}

func opSin(m *Machine)   { v := m.exec.Pop(); m.exec.Push(unary(v, m.math.Sin)) }
func opCos(m *Machine)   { v := m.exec.Pop(); m.exec.Push(unary(v, m.math.Cos)) }
func opSqrt(m *Machine)  { v := m.exec.Pop(); m.exec.Push(unary(v, m.math.Sqrt)) }
func opLog(m *Machine)   { v := m.exec.Pop(); m.exec.Push(unary(v, m.math.Log)) }
func opAtan2(m *Machine) { a, b := m.pop2(); m.exec.Push(elementwise(a, b, m.math.Atan2)) }
func opPow(m *Machine)   { a, b := m.pop2(); m.exec.Push(elementwise(a, b, m.math.Pow)) }
