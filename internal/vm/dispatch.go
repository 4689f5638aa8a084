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

// buildDispatch wires every Opcode to its handler in the 256-entry
// dispatch table. Fused-operand variants (LIT_N, LET_N, REF_N, GLO_REF_N,
// DEF_FUN_N, DEF_NUM_VEC_N) are distinct opcodes rather than one opcode
// carrying an operand byte, keeping the encoding binary-compatible with
// existing installers.
func (m *Machine) buildDispatch() {
	d := &m.dispatch

	d[OpDefVM] = opDefVM
	d[OpDefVMEx] = opDefVMEx
	d[OpDefFun] = opDefFun
	d[OpDefFunN0] = defFunN(0)
	d[OpDefFunN1] = defFunN(1)
	d[OpDefFunN2] = defFunN(2)
	d[OpDefFunN3] = defFunN(3)
	d[OpDef] = opDef
	d[OpDefTup] = opDefTup
	d[OpDefVec] = opDefVec
	d[OpDefNumVec] = opDefNumVec
	d[OpDefNumVecN0] = defNumVecN(0)
	d[OpDefNumVecN1] = defNumVecN(1)
	d[OpDefNumVecN2] = defNumVecN(2)
	d[OpDefNumVecN3] = defNumVecN(3)
	d[OpExit] = opExit

	d[OpRet] = opRet
	d[OpAll] = opAll
	d[OpNop] = opNop
	d[OpMux] = opMux
	d[OpVMux] = opVMux
	d[OpIf] = opIf
	d[OpIf16] = opIf16
	d[OpJmp] = opJmp
	d[OpJmp16] = opJmp16

	d[OpLitN0] = litN(0)
	d[OpLitN1] = litN(1)
	d[OpLitN2] = litN(2)
	d[OpLitN3] = litN(3)
	d[OpLit8] = opLit8
	d[OpLit16] = opLit16
	d[OpLit] = opLit
	d[OpLitFlo] = opLitFlo
	d[OpInf] = opInf
	d[OpNegInf] = opNegInf

	d[OpLet] = opLet
	d[OpLetN0] = letN(0)
	d[OpLetN1] = letN(1)
	d[OpLetN2] = letN(2)
	d[OpLetN3] = letN(3)
	d[OpPopLet] = opPopLet
	d[OpRef] = opRef
	d[OpRefN0] = refN(0)
	d[OpRefN1] = refN(1)
	d[OpRefN2] = refN(2)

	d[OpGloRef] = opGloRef
	d[OpGloRef16] = opGloRef16
	d[OpGloRefN0] = gloRefN(0)
	d[OpGloRefN1] = gloRefN(1)
	d[OpGloRefN2] = gloRefN(2)

	d[OpAdd] = opAdd
	d[OpSub] = opSub
	d[OpMul] = opMul
	d[OpDiv] = opDiv
	d[OpDot] = opDot
	d[OpAbs] = opAbs
	d[OpMax] = opMax
	d[OpMin] = opMin
	d[OpEq] = opEq
	d[OpNeq] = opNeq
	d[OpLt] = opLt
	d[OpLte] = opLte
	d[OpGt] = opGt
	d[OpGte] = opGte
	d[OpRnd] = opRnd
	d[OpMod] = opMod
	d[OpRem] = opRem
	d[OpNot] = opNot
	d[OpSin] = opSin
	d[OpCos] = opCos
	d[OpAtan2] = opAtan2
	d[OpSqrt] = opSqrt
	d[OpPow] = opPow
	d[OpLog] = opLog

	d[OpNulTup] = opNulTup
	d[OpFabTup] = opFabTup
	d[OpFabVec] = opFabVec
	d[OpFabNumVec] = opFabNumVec
	d[OpElt] = opElt
	d[OpLen] = opLen

	d[OpInitFeedback] = opInitFeedback
	d[OpSetFeedback] = opSetFeedback
	d[OpFeedback] = opFeedback

	d[OpApply] = opApply
	d[OpTupMap] = opTupMap
	d[OpFold] = opFold
	d[OpVFold] = opVFold
	d[OpMap] = opMap
	d[OpTup] = opTup

	d[OpActivate] = opActivate
	d[OpDeactivate] = opDeactivate
	d[OpTrigger] = opTrigger
	d[OpResult] = opResult
	d[OpDT] = opDT
	d[OpSetDT] = opSetDT

	d[OpMID] = opMID
	d[OpFoldHood] = opFoldHood
	d[OpFoldHoodPlus] = opFoldHoodPlus
	d[OpVFoldHood] = opVFoldHood
	d[OpVFoldHoodPlus] = opVFoldHoodPlus

	d[OpCtrlCTrigger] = opCtrlCTrigger
	d[OpCtrlCNoTrigger] = opCtrlCNoTrigger
}
