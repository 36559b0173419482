/*
 * m8 - Arithmetic/logic unit.
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

// Package alu implements the machine's single accumulator register
// and the arithmetic, bitwise, and comparison operations against it.
// Comparison ops return a bool for the CPU to route into the status
// flag; they never mutate the accumulator.
package alu

import "github.com/rlowe/m8/bits"

// ALU holds the accumulator register (register id 0).
type ALU struct {
	width       uint8
	accumulator bits.Uint
}

// New returns an ALU whose accumulator is zeroed, width bits wide.
func New(width uint8) *ALU {
	return &ALU{width: width, accumulator: bits.Zero(width)}
}

// Accumulator returns the current accumulator value.
func (a *ALU) Accumulator() bits.Uint {
	return a.accumulator
}

// SetAccumulator loads the accumulator directly, used by LDI on
// register id 0.
func (a *ALU) SetAccumulator(v bits.Uint) {
	a.accumulator = v.WidenOrNarrow(a.width)
}

// Add sets accumulator to accumulator + v, wrapping.
func (a *ALU) Add(v bits.Uint) {
	a.accumulator = a.accumulator.Add(v)
}

// Sub sets accumulator to accumulator - v, wrapping.
func (a *ALU) Sub(v bits.Uint) {
	a.accumulator = a.accumulator.Sub(v)
}

// Bor sets accumulator to accumulator | v.
func (a *ALU) Bor(v bits.Uint) {
	a.accumulator = a.accumulator.Or(v)
}

// And sets accumulator to accumulator & v.
func (a *ALU) And(v bits.Uint) {
	a.accumulator = a.accumulator.And(v)
}

// Cmp reports whether accumulator == v.
func (a *ALU) Cmp(v bits.Uint) bool {
	return a.accumulator.Equal(v)
}

// Grt reports whether accumulator > v.
func (a *ALU) Grt(v bits.Uint) bool {
	return a.accumulator.Greater(v)
}

// Les reports whether accumulator < v.
func (a *ALU) Les(v bits.Uint) bool {
	return a.accumulator.Less(v)
}
