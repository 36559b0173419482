/*
 * m8 - Instruction variant set.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package isa

import "github.com/rlowe/m8/bits"

// Mnemonic names one row of the instruction table.
type Mnemonic uint8

const (
	NOP Mnemonic = iota
	SSJ
	RSF
	SSF
	RSJ
	RET
	LPB
	STR
	LOD
	INC
	DEC
	MOV
	ADD
	SUB
	BOR
	AND
	GRT
	LES
	CMP
	INP
	OUT
	RSP
	SEP
	BRN
	LDI
)

var mnemonicNames = [...]string{
	NOP: "NOP", SSJ: "SSJ", RSF: "RSF", SSF: "SSF", RSJ: "RSJ", RET: "RET",
	LPB: "LPB", STR: "STR", LOD: "LOD", INC: "INC", DEC: "DEC", MOV: "MOV",
	ADD: "ADD", SUB: "SUB", BOR: "BOR", AND: "AND", GRT: "GRT", LES: "LES",
	CMP: "CMP", INP: "INP", OUT: "OUT", RSP: "RSP", SEP: "SEP", BRN: "BRN",
	LDI: "LDI",
}

func (m Mnemonic) String() string {
	if int(m) < len(mnemonicNames) {
		return mnemonicNames[m]
	}
	return "???"
}

// Instruction is a decoded instruction word. Every variant carries
// the Mnemonic plus precisely the operand fields the instruction
// table names for it; fields an instruction doesn't use are left at
// their zero Uint and must not be read.
type Instruction struct {
	Mnemonic Mnemonic

	RegisterID bits.Uint // STR, LOD, INC, DEC, ADD, SUB, BOR, AND, GRT, LES, CMP
	From       bits.Uint // MOV
	To         bits.Uint // MOV
	PortID     bits.Uint // INP, OUT
	PinID      bits.Uint // RSP, SEP
	Immediate  bits.Uint // LPB, BRN, LDI
}
