/*
 * m8 - Architectural constants.
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

// Package isa is the single source of truth for the instruction set:
// the bit widths the architecture is built from, and the
// mnemonic/pattern/operand table that the encoder and decoder are
// generated from.
package isa

// Architectural bit widths.
const (
	WorkingBits     uint8 = 4
	PCBits          uint8 = 6
	PABits          uint8 = 4
	InstructionBits uint8 = 8
	PortBits        uint8 = 4

	NumRegisters = 4
	NumPorts     = 4
	NumPins      = 4

	RegisterIndexBits uint8 = 2
	PortIndexBits     uint8 = 2
	PinIndexBits      uint8 = 2
)

// ProgramMemorySize = 2^(PCBits+PABits).
const ProgramMemorySize = 1 << (uint(PCBits) + uint(PABits))

// WorkingMemorySize = 2^(2*WorkingBits).
const WorkingMemorySize = 1 << (2 * uint(WorkingBits))

// Register ids: 0 is the ALU's accumulator, 1-3 are the X, Y, Z
// general registers.
const (
	RegAccumulator = 0
	RegX           = 1
	RegY           = 2
	RegZ           = 3
)
