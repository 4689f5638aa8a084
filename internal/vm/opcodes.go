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

// Opcode is a single dispatched bytecode instruction, 0-255. handler
// implements its body against a *Machine.
type Opcode byte

type handler func(m *Machine)

// Opcodes beyond this table fall through to the platform hook, which
// defaults to a no-op; there is no reserved iota block for platform
// instructions.
const (
	// --- install / lifecycle ---
	OpDefVM Opcode = iota
	OpDefVMEx
	OpDefFun
	OpDefFunN0
	OpDefFunN1
	OpDefFunN2
	OpDefFunN3
	OpDef
	OpDefTup
	OpDefVec
	OpDefNumVec
	OpDefNumVecN0
	OpDefNumVecN1
	OpDefNumVecN2
	OpDefNumVecN3
	OpExit

	// --- control flow ---
	OpRet
	OpAll
	OpNop
	OpMux
	OpVMux
	OpIf
	OpIf16
	OpJmp
	OpJmp16

	// --- literals ---
	OpLitN0
	OpLitN1
	OpLitN2
	OpLitN3
	OpLit8
	OpLit16
	OpLit
	OpLitFlo
	OpInf
	OpNegInf

	// --- environment ---
	OpLet
	OpLetN0
	OpLetN1
	OpLetN2
	OpLetN3
	OpPopLet
	OpRef
	OpRefN0
	OpRefN1
	OpRefN2

	// --- globals ---
	OpGloRef
	OpGloRef16
	OpGloRefN0
	OpGloRefN1
	OpGloRefN2

	// --- arithmetic / comparison ---
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpDot
	OpAbs
	OpMax
	OpMin
	OpEq
	OpNeq
	OpLt
	OpLte
	OpGt
	OpGte
	OpRnd // RND: uniform random between two bounds, drawn from the host PRNG
	OpMod
	OpRem
	OpNot
	OpSin
	OpCos
	OpAtan2
	OpSqrt
	OpPow
	OpLog

	// --- tuples ---
	OpNulTup
	OpFabTup
	OpFabVec
	OpFabNumVec
	OpElt
	OpLen

	// --- feedback ---
	OpInitFeedback
	OpSetFeedback
	OpFeedback

	// --- special forms ---
	OpApply
	OpTupMap
	OpFold
	OpVFold
	OpMap
	OpTup

	// --- threads ---
	OpActivate
	OpDeactivate
	OpTrigger
	OpResult
	OpDT
	OpSetDT

	// --- hood ---
	OpMID
	OpFoldHood
	OpFoldHoodPlus
	OpVFoldHood
	OpVFoldHoodPlus

	// --- host signal extension ---
	OpCtrlCTrigger
	OpCtrlCNoTrigger

	opcodeCount int = iota
)

func init() {
	if opcodeCount > 256 {
		panic("vm: opcode table overflow")
	}
}
