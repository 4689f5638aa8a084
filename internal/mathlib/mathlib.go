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

// Package mathlib defines the injected math primitives a Machine delegates
// to its host: the trig, root, power, log, and random opcodes call out to
// a MathLib rather than hard-coding a single implementation, so embedded
// platforms can supply their own. The default implementation wraps the
// standard math and math/rand packages.
package mathlib

import (
	"math"
	"math/rand"
)

// MathLib is the set of numeric primitives a Machine cannot implement
// itself without committing to one policy (e.g. which random source).
// Hosts may substitute a deterministic or hardware-backed implementation.
type MathLib interface {
	Sin(x float32) float32
	Cos(x float32) float32
	Atan2(y, x float32) float32
	Sqrt(x float32) float32
	Pow(base, exp float32) float32
	Log(x float32) float32
	Random() float32 // uniform in [0, 1)
}

// Default is a MathLib backed by the standard library. Create it with
// NewDefault, which seeds its random source; the zero value has no
// random source.
type Default struct {
	rng *rand.Rand
}

// NewDefault creates a Default MathLib with the given seed, so simulation
// runs can be reproduced.
func NewDefault(seed int64) *Default {
	return &Default{rng: rand.New(rand.NewSource(seed))}
}

func (d *Default) Sin(x float32) float32      { return float32(math.Sin(float64(x))) }
func (d *Default) Cos(x float32) float32      { return float32(math.Cos(float64(x))) }
func (d *Default) Atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }
func (d *Default) Sqrt(x float32) float32     { return float32(math.Sqrt(float64(x))) }
func (d *Default) Pow(base, exp float32) float32 {
	return float32(math.Pow(float64(base), float64(exp)))
}
func (d *Default) Log(x float32) float32 { return float32(math.Log(float64(x))) }
func (d *Default) Random() float32       { return d.rng.Float32() }
